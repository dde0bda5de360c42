package catalog

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics removes combining marks from s, so "café" becomes "cafe".
// It backs the noDiacritic SQL function and normalizes search queries, which
// must both apply the exact same mapping.
//
// The chain is built per call: chained transformers carry state and are not
// safe for concurrent reuse, and the SQL engine may invoke this from any
// connection goroutine.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
