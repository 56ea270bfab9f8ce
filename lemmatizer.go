// Package morphy derives the base form of inflected English words the way
// WordNet's morphy does: irregular forms come from exception lists, regular
// ones from an ordered table of suffix substitutions, and every candidate is
// checked against the set of known lemmas.
package morphy

// Lemmatizer holds the lemma set and exception table and answers Resolve
// queries. It is immutable once built, so a single Lemmatizer can be shared
// between goroutines without locking.
type Lemmatizer struct {
	// lemmas answers "is this form a lemma for this part of speech".
	lemmas *LemmaSet

	// exceptions maps irregular forms to base forms, per part of speech.
	exceptions *ExceptionTable
}

// New returns a Lemmatizer over the given tables. A nil table is treated
// as empty.
func New(lemmas *LemmaSet, exceptions *ExceptionTable) *Lemmatizer {
	if lemmas == nil {
		lemmas = &LemmaSet{forms: make(map[string]posSet)}
	}
	if exceptions == nil {
		exceptions = newExceptionTable()
	}
	return &Lemmatizer{lemmas: lemmas, exceptions: exceptions}
}

// Lemmas returns the lemma set.
func (l *Lemmatizer) Lemmas() *LemmaSet {
	return l.lemmas
}

// Exceptions returns the exception table.
func (l *Lemmatizer) Exceptions() *ExceptionTable {
	return l.exceptions
}

// Stats holds table sizes, mostly for logging.
type Stats struct {
	// Forms is the number of distinct lemma strings.
	Forms int
	// Lemmas counts lemmas per part of speech.
	Lemmas map[PartOfSpeech]int
	// Exceptions counts exception entries per part of speech.
	Exceptions map[PartOfSpeech]int
}

// Stats reports the table sizes of l.
func (l *Lemmatizer) Stats() Stats {
	st := Stats{
		Forms:      l.lemmas.Len(),
		Lemmas:     make(map[PartOfSpeech]int, numPOS),
		Exceptions: make(map[PartOfSpeech]int, numPOS),
	}
	for _, pos := range PartsOfSpeech {
		st.Lemmas[pos] = l.lemmas.Count(pos)
		st.Exceptions[pos] = l.exceptions.Len(pos)
	}
	return st
}
