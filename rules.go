package morphy

import "strings"

// Rule is a suffix substitution: a form ending in Old yields a candidate
// with Old replaced by New.
type Rule struct {
	Old string
	New string
}

// Apply rewrites form if it ends in r.Old.
func (r Rule) Apply(form string) (string, bool) {
	if !strings.HasSuffix(form, r.Old) {
		return "", false
	}
	return form[:len(form)-len(r.Old)] + r.New, true
}

// substitutions is the morphy detachment table. Rules are tried in the
// order listed and every matching rule contributes a candidate.
//
// ves→f does not recover -fe lemmas (knives yields knif); WordNet's
// exception list covers those.
var substitutions = [numPOS][]Rule{
	Noun: {
		{"s", ""},
		{"ses", "s"},
		{"ves", "f"},
		{"xes", "x"},
		{"zes", "z"},
		{"ches", "ch"},
		{"shes", "sh"},
		{"men", "man"},
		{"ies", "y"},
	},
	Verb: {
		{"s", ""},
		{"ies", "y"},
		{"es", "e"},
		{"es", ""},
		{"ed", "e"},
		{"ed", ""},
		{"ing", "e"},
		{"ing", ""},
	},
	Adjective: {
		{"er", ""},
		{"est", ""},
		{"er", "e"},
		{"est", "e"},
	},
	Adverb: nil,
}

// maxNewSuffix is the length of the longest replacement suffix in the table.
var maxNewSuffix = func() int {
	n := 0
	for _, rules := range substitutions {
		for _, r := range rules {
			n = max(n, len(r.New))
		}
	}
	return n
}()

// Rules returns a copy of the substitution rules for pos, in application
// order. Invalid parts of speech have no rules.
func Rules(pos PartOfSpeech) []Rule {
	if !pos.Valid() {
		return nil
	}
	return append([]Rule(nil), substitutions[pos]...)
}
