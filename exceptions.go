package morphy

import (
	"github.com/pkg/errors"
)

// Exception is one line of a WordNet exception list: an irregular
// inflected form and its base forms, in source order.
type Exception struct {
	Form  string
	Bases []string
}

// ExceptionTable maps irregular inflected forms to their candidate base
// forms, with one table per part of speech. Every part of speech has a
// table, possibly empty. An ExceptionTable is never modified after
// construction.
type ExceptionTable struct {
	byPOS [numPOS]map[string][]string
}

func newExceptionTable() *ExceptionTable {
	t := &ExceptionTable{}
	for i := range t.byPOS {
		t.byPOS[i] = make(map[string][]string)
	}
	return t
}

// NewExceptionTable builds an ExceptionTable from per-part-of-speech
// exception records. When a form occurs twice for the same part of speech
// the later record wins.
func NewExceptionTable(records map[PartOfSpeech][]Exception) (*ExceptionTable, error) {
	t := newExceptionTable()
	for pos, excs := range records {
		if !pos.Valid() {
			return nil, errors.Wrapf(ErrInvalidPartOfSpeech, "exception table: %d", pos)
		}
		for _, e := range excs {
			t.byPOS[pos][e.Form] = append([]string(nil), e.Bases...)
		}
	}
	return t, nil
}

// Lookup returns the base forms recorded for form under pos. ok is false
// when there is no entry, which is different from an entry without bases.
func (t *ExceptionTable) Lookup(form string, pos PartOfSpeech) (bases []string, ok bool) {
	if t == nil || !pos.Valid() {
		return nil, false
	}
	bases, ok = t.byPOS[pos][form]
	return bases, ok
}

// Len returns the number of exception entries for pos.
func (t *ExceptionTable) Len(pos PartOfSpeech) int {
	if t == nil || !pos.Valid() {
		return 0
	}
	return len(t.byPOS[pos])
}
