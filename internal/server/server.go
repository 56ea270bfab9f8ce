// Package server exposes a morphy Resolver as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/resolve?form=<word>&pos=<tag-or-name>
//	POST /api/resolve/batch   body: {"tokens":[{"form":"...","pos":"..."}]}
//	GET  /api/stats
//	GET  /healthz
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/wordnet-go/morphy"
)

// maxBodyBytes bounds the size of a batch request body.
const maxBodyBytes = 1 << 20

// ---- JSON types ---------------------------------------------------------

type resolveResponse struct {
	Form   string   `json:"form"`
	POS    string   `json:"pos"`
	Lemmas []string `json:"lemmas"`
}

type batchToken struct {
	Form string `json:"form"`
	POS  string `json:"pos"`
}

type batchRequest struct {
	Tokens []batchToken `json:"tokens"`
}

type batchResult struct {
	Form   string   `json:"form"`
	POS    string   `json:"pos,omitempty"`
	Lemmas []string `json:"lemmas,omitempty"`
	Error  string   `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchResult `json:"results"`
}

type posCounts struct {
	Lemmas     int `json:"lemmas"`
	Exceptions int `json:"exceptions"`
}

type statsResponse struct {
	Forms int                  `json:"forms"`
	POS   map[string]posCounts `json:"pos"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// resolveToken normalizes form, parses pos and resolves.
func resolveToken(res morphy.Resolver, form, pos string) (string, morphy.PartOfSpeech, []string, error) {
	form = morphy.NormalizeForm(form)
	p, err := morphy.ParsePartOfSpeech(pos)
	if err != nil {
		return form, 0, nil, err
	}
	lemmas, err := res.Resolve(form, p)
	return form, p, lemmas, err
}

// ---- handlers -----------------------------------------------------------

func handleResolve(res morphy.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		form, pos := q.Get("form"), q.Get("pos")
		if form == "" || pos == "" {
			writeError(w, http.StatusBadRequest, "'form' and 'pos' query parameters are required")
			return
		}
		form, p, lemmas, err := resolveToken(res, form, pos)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		status := http.StatusOK
		if len(lemmas) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, resolveResponse{Form: form, POS: p.String(), Lemmas: lemmas})
	}
}

func handleBatch(res morphy.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body batchRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&body); err != nil || len(body.Tokens) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'tokens' array")
			return
		}

		out := make([]batchResult, 0, len(body.Tokens))
		for _, tok := range body.Tokens {
			form, p, lemmas, err := resolveToken(res, tok.Form, tok.POS)
			if err != nil {
				out = append(out, batchResult{Form: form, Error: err.Error()})
				continue
			}
			out = append(out, batchResult{Form: form, POS: p.String(), Lemmas: lemmas})
		}
		writeJSON(w, http.StatusOK, batchResponse{Results: out})
	}
}

func handleStats(st morphy.Stats) http.HandlerFunc {
	resp := statsResponse{Forms: st.Forms, POS: make(map[string]posCounts)}
	for _, pos := range morphy.PartsOfSpeech {
		resp.POS[pos.String()] = posCounts{Lemmas: st.Lemmas[pos], Exceptions: st.Exceptions[pos]}
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

// NewHandler returns the HTTP handler for res. st is reported by
// /api/stats; allowedOrigins configures CORS.
func NewHandler(res morphy.Resolver, st morphy.Stats, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/resolve", handleResolve(res)).Methods(http.MethodGet)
	r.HandleFunc("/api/resolve/batch", handleBatch(res)).Methods(http.MethodPost)
	r.HandleFunc("/api/stats", handleStats(st)).Methods(http.MethodGet)
	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}
