package toklex

import (
	"strings"
	"unicode"
)

// SpaceClass is the spacing discipline of a punctuation symbol, used by
// the detokenizer: LEFT suppresses the space after the symbol, RIGHT the
// space before it, NONE both, CENTER neither.
type SpaceClass int

const (
	SpaceLeft   SpaceClass = 1
	SpaceCenter SpaceClass = 2
	SpaceRight  SpaceClass = 3
	SpaceNone   SpaceClass = 4
)

// Icelandic quotation runs „low to high-left“: the low forms open, the
// high-left forms close.
var leftPunct = map[string]bool{
	"(": true, "[": true, "{": true,
	"„": true, "‚": true, "«": true, "¿": true, "¡": true,
}

var rightPunct = map[string]bool{
	")": true, "]": true, "}": true,
	"“": true, "”": true, "‘": true, "’": true, "»": true,
	".": true, ",": true, ";": true, ":": true, "!": true, "?": true,
	"…": true, "%": true, "‰": true,
}

var nonePunct = map[string]bool{
	"/": true,
}

// punctValue computes the whitespace class and canonical form of a
// punctuation surface. Straight quotes are ambiguous between opening and
// closing; the refiner resolves them with its quote-state and overrides
// the value returned here.
func punctValue(txt string) PunctVal {
	norm := txt
	switch {
	case strings.Count(txt, ".") == len(txt) && len(txt) >= 2:
		norm = "…"
	case txt == "...":
		norm = "…"
	case isDashRun(txt):
		norm = "—"
	case txt == `"`:
		norm = "“"
	case txt == "'":
		norm = "‘"
	}
	cls := SpaceCenter
	switch {
	case leftPunct[norm]:
		cls = SpaceLeft
	case rightPunct[norm]:
		cls = SpaceRight
	case nonePunct[norm]:
		cls = SpaceNone
	case isDashRun(norm) || norm == "—" || norm == "–" || norm == "-":
		cls = SpaceCenter
	}
	return PunctVal{Space: cls, Norm: norm}
}

func isDashRun(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDashRune(r) {
			return false
		}
	}
	return true
}

// isPunctSurface reports whether every rune of the surface is punctuation
// or symbol, i.e. the token carries no letters or digits.
func isPunctSurface(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
