package morphy

import (
	"github.com/pkg/errors"
)

// Resolve returns the lemmas of form under pos, in a deterministic order
// and without duplicates. An empty, non-nil slice means no lemma was found.
//
// If form has an exception entry, only form and its listed base forms are
// considered. Otherwise the substitution rules are applied to form; if
// neither form nor any candidate is a lemma, the rules are applied again to
// the candidates of the previous round until a round finds a lemma or no
// rule matches any more.
func (l *Lemmatizer) Resolve(form string, pos PartOfSpeech) ([]string, error) {
	if !pos.Valid() {
		return nil, errors.Wrapf(ErrInvalidPartOfSpeech, "resolve %q", form)
	}

	if bases, ok := l.exceptions.Lookup(form, pos); ok {
		forms := make([]string, 0, len(bases)+1)
		forms = append(forms, form)
		forms = append(forms, bases...)
		return l.filter(forms, pos), nil
	}

	rules := substitutions[pos]
	generated := substitute(rules, []string{form})
	if found := l.filter(append([]string{form}, generated...), pos); len(found) > 0 {
		return found, nil
	}

	// Each productive round shortens the candidates, so the bound is only
	// reached by a rule table that can rewrite forever.
	for round := 0; len(generated) > 0 && round <= len(form)+maxNewSuffix; round++ {
		generated = substitute(rules, appendUnique(nil, generated...))
		if found := l.filter(generated, pos); len(found) > 0 {
			return found, nil
		}
	}
	return []string{}, nil
}

// substitute applies every rule to every form, form-major, and returns the
// candidates in that order. Duplicates are kept.
func substitute(rules []Rule, forms []string) []string {
	var out []string
	for _, form := range forms {
		for _, r := range rules {
			if c, ok := r.Apply(form); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// filter keeps the forms that are lemmas for pos, first occurrence only.
func (l *Lemmatizer) filter(forms []string, pos PartOfSpeech) []string {
	out := []string{}
	seen := make(map[string]bool, len(forms))
	for _, f := range forms {
		if seen[f] {
			continue
		}
		seen[f] = true
		if l.lemmas.Contains(f, pos) {
			out = append(out, f)
		}
	}
	return out
}

// appendUnique appends the strings of ss not already seen, preserving order.
func appendUnique(dst []string, ss ...string) []string {
	seen := make(map[string]bool, len(dst)+len(ss))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			dst = append(dst, s)
		}
	}
	return dst
}
