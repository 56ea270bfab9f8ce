package morphy

import (
	"github.com/pkg/errors"
)

// posSet is a bit set of parts of speech, bit i for ordinal i.
type posSet uint8

func (s posSet) has(p PartOfSpeech) bool {
	return s&(1<<p) != 0
}

func (s posSet) with(p PartOfSpeech) posSet {
	return s | 1<<p
}

// list returns the members of s in ordinal order.
func (s posSet) list() []PartOfSpeech {
	var out []PartOfSpeech
	for _, p := range PartsOfSpeech {
		if s.has(p) {
			out = append(out, p)
		}
	}
	return out
}

// LemmaSet records, for every known lemma, the parts of speech it is a
// lemma for. A form absent from the set is not a lemma for any part of
// speech. A LemmaSet is never modified after construction.
type LemmaSet struct {
	forms map[string]posSet
}

// NewLemmaSet builds a LemmaSet from per-part-of-speech lists of lemmas.
// A lemma listed under several parts of speech gets all of them.
func NewLemmaSet(lemmas map[PartOfSpeech][]string) (*LemmaSet, error) {
	s := &LemmaSet{forms: make(map[string]posSet)}
	for pos, forms := range lemmas {
		if !pos.Valid() {
			return nil, errors.Wrapf(ErrInvalidPartOfSpeech, "lemma set: %d", pos)
		}
		for _, form := range forms {
			s.add(form, pos)
		}
	}
	return s, nil
}

func (s *LemmaSet) add(form string, pos PartOfSpeech) {
	s.forms[form] = s.forms[form].with(pos)
}

// Contains reports whether form is a known lemma for pos.
func (s *LemmaSet) Contains(form string, pos PartOfSpeech) bool {
	if s == nil {
		return false
	}
	return s.forms[form].has(pos)
}

// PartsOfSpeech returns the parts of speech form is a lemma for, in
// ordinal order, or nil if form is unknown.
func (s *LemmaSet) PartsOfSpeech(form string) []PartOfSpeech {
	if s == nil {
		return nil
	}
	return s.forms[form].list()
}

// Len returns the number of distinct lemma strings.
func (s *LemmaSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.forms)
}

// Count returns the number of lemmas recorded for pos.
func (s *LemmaSet) Count(pos PartOfSpeech) int {
	if s == nil {
		return 0
	}
	n := 0
	for _, set := range s.forms {
		if set.has(pos) {
			n++
		}
	}
	return n
}
