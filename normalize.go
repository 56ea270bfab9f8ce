package morphy

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeForm brings free text into the shape WordNet uses for lemmas:
// NFC, lower case, and collocation words joined by underscores
// ("Ice  Cream" → "ice_cream"). Resolve does not normalize its input.
func NormalizeForm(s string) string {
	s = norm.NFC.String(s)
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.ToLower(strings.Join(fields, "_"))
}
