package morphy

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// PartOfSpeech is the coarse grammatical category a lemma is looked up under.
// The numeric values are the ordinals stored in snapshots.
type PartOfSpeech uint8

const (
	Adjective PartOfSpeech = iota
	Adverb
	Noun
	Verb

	numPOS = int(Verb) + 1
)

// PartsOfSpeech lists every part of speech in ordinal order.
var PartsOfSpeech = [numPOS]PartOfSpeech{Adjective, Adverb, Noun, Verb}

var (
	// ErrUnrecognizedTag is returned when a tag does not map to a part of speech.
	ErrUnrecognizedTag = errors.New("unrecognized part-of-speech tag")
	// ErrInvalidPartOfSpeech is returned when a PartOfSpeech value is out of range.
	ErrInvalidPartOfSpeech = errors.New("invalid part of speech")
)

var posNames = [numPOS]string{
	Adjective: "adjective",
	Adverb:    "adverb",
	Noun:      "noun",
	Verb:      "verb",
}

// wordNetNames are the file-name parts used by the WordNet database files
// (index.noun, verb.exc, ...).
var wordNetNames = [numPOS]string{
	Adjective: "adj",
	Adverb:    "adv",
	Noun:      "noun",
	Verb:      "verb",
}

// Valid reports whether p is one of the four known parts of speech.
func (p PartOfSpeech) Valid() bool {
	return int(p) < numPOS
}

func (p PartOfSpeech) String() string {
	if !p.Valid() {
		return "PartOfSpeech(" + strconv.Itoa(int(p)) + ")"
	}
	return posNames[p]
}

// WordNetName returns the short name WordNet uses in its file names.
func (p PartOfSpeech) WordNetName() string {
	if !p.Valid() {
		return ""
	}
	return wordNetNames[p]
}

// FromPennTag maps a Penn Treebank tag to a part of speech by its first
// letter: J adjective, V verb, R adverb, N noun. Any other tag yields
// ErrUnrecognizedTag; there is no default.
func FromPennTag(tag string) (PartOfSpeech, error) {
	switch {
	case strings.HasPrefix(tag, "J"):
		return Adjective, nil
	case strings.HasPrefix(tag, "V"):
		return Verb, nil
	case strings.HasPrefix(tag, "R"):
		return Adverb, nil
	case strings.HasPrefix(tag, "N"):
		return Noun, nil
	}
	return 0, errors.Wrapf(ErrUnrecognizedTag, "tag %q", tag)
}

// ParsePartOfSpeech accepts either a part-of-speech name ("noun", "adj",
// "adverb", ... in any case) or a Penn Treebank tag.
func ParsePartOfSpeech(s string) (PartOfSpeech, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adjective", "adj":
		return Adjective, nil
	case "adverb", "adv":
		return Adverb, nil
	case "noun":
		return Noun, nil
	case "verb":
		return Verb, nil
	}
	return FromPennTag(strings.TrimSpace(s))
}
