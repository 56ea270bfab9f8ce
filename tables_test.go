package morphy

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestLemmaSet(t *testing.T) {
	s, err := NewLemmaSet(map[PartOfSpeech][]string{
		Noun: {"run", "dog", "ice_cream"},
		Verb: {"run", "dog"},
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		form string
		pos  PartOfSpeech
		want bool
	}{
		{"run", Noun, true},
		{"run", Verb, true},
		{"run", Adjective, false},
		{"ice_cream", Noun, true},
		{"ice cream", Noun, false},
		{"cat", Noun, false},
		{"run", PartOfSpeech(9), false},
	}
	for _, tt := range tests {
		if got := s.Contains(tt.form, tt.pos); got != tt.want {
			t.Errorf("Contains(%q, %v) = %v, want %v", tt.form, tt.pos, got, tt.want)
		}
	}

	if got, want := s.PartsOfSpeech("run"), []PartOfSpeech{Noun, Verb}; !reflect.DeepEqual(got, want) {
		t.Errorf("PartsOfSpeech(run) = %v, want %v", got, want)
	}
	if got := s.PartsOfSpeech("cat"); got != nil {
		t.Errorf("PartsOfSpeech(cat) = %v, want nil", got)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if s.Count(Noun) != 3 || s.Count(Verb) != 2 || s.Count(Adverb) != 0 {
		t.Errorf("Count: noun=%d verb=%d adv=%d", s.Count(Noun), s.Count(Verb), s.Count(Adverb))
	}
}

func TestLemmaSetInvalid(t *testing.T) {
	_, err := NewLemmaSet(map[PartOfSpeech][]string{PartOfSpeech(7): {"x"}})
	if !errors.Is(err, ErrInvalidPartOfSpeech) {
		t.Errorf("NewLemmaSet with bad pos: err = %v", err)
	}

	var nilSet *LemmaSet
	if nilSet.Contains("x", Noun) || nilSet.Len() != 0 || nilSet.Count(Noun) != 0 {
		t.Error("nil LemmaSet is not empty")
	}
}

func TestExceptionTable(t *testing.T) {
	table, err := NewExceptionTable(map[PartOfSpeech][]Exception{
		Noun: {
			{Form: "geese", Bases: []string{"goose"}},
			{Form: "axes", Bases: []string{"ax", "axis"}},
			{Form: "geese", Bases: []string{"gander"}},
			{Form: "fish"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got, ok := table.Lookup("geese", Noun); !ok || !reflect.DeepEqual(got, []string{"gander"}) {
		t.Errorf("Lookup(geese) = %q, %v; want last record", got, ok)
	}
	if got, ok := table.Lookup("axes", Noun); !ok || !reflect.DeepEqual(got, []string{"ax", "axis"}) {
		t.Errorf("Lookup(axes) = %q, %v", got, ok)
	}
	if got, ok := table.Lookup("fish", Noun); !ok || len(got) != 0 {
		t.Errorf("Lookup(fish) = %q, %v; want empty entry", got, ok)
	}
	if _, ok := table.Lookup("geese", Verb); ok {
		t.Error("Lookup(geese, Verb) found an entry")
	}
	if _, ok := table.Lookup("geese", PartOfSpeech(5)); ok {
		t.Error("Lookup with invalid pos found an entry")
	}
	for _, pos := range PartsOfSpeech {
		want := 0
		if pos == Noun {
			want = 3
		}
		if table.Len(pos) != want {
			t.Errorf("Len(%v) = %d, want %d", pos, table.Len(pos), want)
		}
	}

	if _, err := NewExceptionTable(map[PartOfSpeech][]Exception{PartOfSpeech(4): nil}); !errors.Is(err, ErrInvalidPartOfSpeech) {
		t.Errorf("NewExceptionTable with bad pos: err = %v", err)
	}
}

func TestExceptionTableCopiesBases(t *testing.T) {
	bases := []string{"goose"}
	table, _ := NewExceptionTable(map[PartOfSpeech][]Exception{Noun: {{Form: "geese", Bases: bases}}})
	bases[0] = "changed"
	if got, _ := table.Lookup("geese", Noun); got[0] != "goose" {
		t.Errorf("table shares the caller's slice: %q", got)
	}
}

func TestRules(t *testing.T) {
	want := map[PartOfSpeech][]Rule{
		Noun: {
			{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
			{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
		},
		Verb: {
			{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
			{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
		},
		Adjective: {{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"}},
	}
	for _, pos := range PartsOfSpeech {
		got := Rules(pos)
		if len(got) != len(want[pos]) {
			t.Errorf("Rules(%v) has %d rules, want %d", pos, len(got), len(want[pos]))
			continue
		}
		for i := range got {
			if got[i] != want[pos][i] {
				t.Errorf("Rules(%v)[%d] = %v, want %v", pos, i, got[i], want[pos][i])
			}
		}
	}

	r := Rules(Noun)
	r[0] = Rule{"x", "y"}
	if Rules(Noun)[0] != (Rule{"s", ""}) {
		t.Error("Rules returned the table itself")
	}
	if Rules(PartOfSpeech(8)) != nil {
		t.Error("Rules(invalid) not nil")
	}
}

func TestRuleApply(t *testing.T) {
	tests := []struct {
		rule Rule
		form string
		want string
		ok   bool
	}{
		{Rule{"ies", "y"}, "cities", "city", true},
		{Rule{"s", ""}, "s", "", true},
		{Rule{"men", "man"}, "women", "woman", true},
		{Rule{"ing", "e"}, "sing", "se", true},
		{Rule{"ing", ""}, "ring", "r", true},
		{Rule{"es", "e"}, "cats", "", false},
		{Rule{"s", ""}, "", "", false},
	}
	for _, tt := range tests {
		got, ok := tt.rule.Apply(tt.form)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%v.Apply(%q) = %q, %v; want %q, %v", tt.rule, tt.form, got, ok, tt.want, tt.ok)
		}
	}
}
