package toklex

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Token is the unit flowing through the pipeline.
//
// Txt is the normalized surface (whitespace coalesced to single spaces,
// possibly rewritten by number-locale or glyph options). Original is the
// source slice as it appeared, including any whitespace that separated the
// token from its predecessor. Offsets maps each rune of Txt to the rune
// index in Original where it came from; merges concatenate it, splits
// slice it, so character spans can be reconstructed after any number of
// pipeline transformations.
//
// Tokens are immutable once emitted by a stage.
type Token struct {
	Kind     Kind
	Txt      string
	Original string
	Val      Value
	Offsets  []int
}

// Value is the kind-specific payload of a token. The concrete type is
// determined by the token kind; kinds without extra data carry nil.
type Value interface {
	isValue()
}

// TimeVal is the payload of TIME tokens: hour, minute, second.
type TimeVal struct {
	Hour, Min, Sec int
}

// DateVal is the payload of DATEABS/DATEREL tokens. Zero fields mean
// "unspecified" (DATEREL), e.g. (0, 1, 3) is "January 3rd, some year".
type DateVal struct {
	Year, Month, Day int
}

// TimestampVal is the payload of TIMESTAMPABS/TIMESTAMPREL tokens.
type TimestampVal struct {
	Year, Month, Day int
	Hour, Min, Sec   int
}

// NumberVal is the payload of NUMBER tokens.
type NumberVal struct {
	Float float64
}

// OrdinalVal is the payload of ORDINAL tokens.
type OrdinalVal struct {
	N int
}

// YearVal is the payload of YEAR tokens; negative for years BCE. For a
// year range, Y is the first year of the range.
type YearVal struct {
	Y int
}

// PercentVal is the payload of PERCENT tokens. Permille values are stored
// divided by ten so the field is always in percent.
type PercentVal struct {
	Float float64
}

// NumLetterVal is the payload of NUMWLETTER tokens such as "10b".
type NumLetterVal struct {
	N      int
	Letter string
}

// TelVal is the payload of TELNO tokens: the normalized "NNN-NNNN" form
// plus a country code (default "354").
type TelVal struct {
	Number string
	CC     string
}

// AmountVal is the payload of AMOUNT tokens: a quantity and an ISO 4217
// currency code.
type AmountVal struct {
	Amount float64
	ISO    string
}

// MeasureVal is the payload of MEASUREMENT tokens: an SI base unit and
// the magnitude converted into that unit.
type MeasureVal struct {
	Unit  string
	Value float64
}

// PunctVal is the payload of PUNCTUATION tokens: the spacing discipline
// of the symbol and its canonical form.
type PunctVal struct {
	Space SpaceClass
	Norm  string
}

// StringVal is the payload of SSN, USERNAME and SERIALNUMBER tokens.
type StringVal struct {
	S string
}

// Meaning is one abbreviation expansion in the morphological convention
// (wordform, variant, pos, category, stem, inflection).
type Meaning struct {
	Wordform   string
	Variant    string
	POS        string
	Category   string
	Stem       string
	Inflection string
}

// MeaningsVal is the payload of WORD tokens that matched the abbreviation
// dictionary: the list of possible expansions.
type MeaningsVal []Meaning

func (TimeVal) isValue()      {}
func (DateVal) isValue()      {}
func (TimestampVal) isValue() {}
func (NumberVal) isValue()    {}
func (OrdinalVal) isValue()   {}
func (YearVal) isValue()      {}
func (PercentVal) isValue()   {}
func (NumLetterVal) isValue() {}
func (TelVal) isValue()       {}
func (AmountVal) isValue()    {}
func (MeasureVal) isValue()   {}
func (PunctVal) isValue()     {}
func (StringVal) isValue()    {}
func (MeaningsVal) isValue()  {}

// String returns a debug representation, e.g. WORD("sl.").
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Txt)
}

// identityOffsets builds the offset map for a freshly scanned token whose
// Txt is Original with skip leading runes (the whitespace prefix) removed.
func identityOffsets(txt string, skip int) []int {
	offs := make([]int, 0, utf8.RuneCountInString(txt))
	for i := range utf8.RuneCountInString(txt) {
		offs = append(offs, skip+i)
	}
	return offs
}

// newToken builds a content token whose Original is whitespace + surface
// and whose Txt equals the surface.
func newToken(kind Kind, ws, surface string, val Value) Token {
	return Token{
		Kind:     kind,
		Txt:      surface,
		Original: ws + surface,
		Val:      val,
		Offsets:  identityOffsets(surface, utf8.RuneCountInString(ws)),
	}
}

// sentinel builds a marker token with empty surfaces.
func sentinel(kind Kind) Token {
	return Token{Kind: kind}
}

// mergeTokens concatenates a run of adjacent tokens into one of the given
// kind. Joiner separates the normalized surfaces; each joiner rune maps to
// the first rune of the following token's Original. Originals concatenate
// verbatim so the reconstruction invariant survives the merge.
func mergeTokens(kind Kind, val Value, joiner string, toks ...Token) Token {
	var txt, orig strings.Builder
	offs := make([]int, 0, 16)
	shift := 0
	for i, t := range toks {
		if i > 0 {
			for range utf8.RuneCountInString(joiner) {
				offs = append(offs, shift)
			}
			txt.WriteString(joiner)
		}
		for _, o := range t.Offsets {
			offs = append(offs, o+shift)
		}
		txt.WriteString(t.Txt)
		orig.WriteString(t.Original)
		shift += utf8.RuneCountInString(t.Original)
	}
	return Token{Kind: kind, Txt: txt.String(), Original: orig.String(), Val: val, Offsets: offs}
}

// mergeAdjacent merges a run of adjacent tokens, deriving each gap's
// normalized separator from the source: a space when the tokens were
// separated, nothing when they touched.
func mergeAdjacent(kind Kind, val Value, toks ...Token) Token {
	var txt, orig strings.Builder
	offs := make([]int, 0, 16)
	shift := 0
	for i, t := range toks {
		if i > 0 {
			if mergeJoiner(t) == " " {
				offs = append(offs, shift)
				txt.WriteString(" ")
			}
		}
		for _, o := range t.Offsets {
			offs = append(offs, o+shift)
		}
		txt.WriteString(t.Txt)
		orig.WriteString(t.Original)
		shift += utf8.RuneCountInString(t.Original)
	}
	return Token{Kind: kind, Txt: txt.String(), Original: orig.String(), Val: val, Offsets: offs}
}

// mergeJoiner picks the normalized separator for a surface-preserving
// merge: a single space when the right-hand token was separated from the
// left in the source, nothing when they were adjacent.
func mergeJoiner(right Token) string {
	if strings.IndexFunc(right.Original, isSpaceRune) == 0 && right.Original != "" {
		return " "
	}
	return ""
}

// withTxt replaces the normalized surface of a token while keeping its
// Original. Used for wrong-form abbreviation correction and punctuation
// normalization. The offset map keeps the existing entries for the leading
// runes, repeats the last entry for any extra runes, and clamps every
// entry into the range of Original.
func withTxt(t Token, txt string) Token {
	n := utf8.RuneCountInString(txt)
	origLen := utf8.RuneCountInString(t.Original)
	offs := make([]int, n)
	for i := range n {
		o := i
		if len(t.Offsets) > 0 {
			if i < len(t.Offsets) {
				o = t.Offsets[i]
			} else {
				o = t.Offsets[len(t.Offsets)-1]
			}
		}
		if o >= origLen {
			o = origLen - 1
		}
		offs[i] = o
	}
	t.Txt = txt
	t.Offsets = offs
	return t
}

// splitToken partitions a token's surface at rune index n of Txt into two
// tokens of the given kinds. The Original is cut at the original-offset of
// the split point so concatenation still reproduces the source.
func splitToken(t Token, n int, leftKind, rightKind Kind, leftVal, rightVal Value) (Token, Token) {
	txtRunes := []rune(t.Txt)
	origRunes := []rune(t.Original)
	cut := len(origRunes)
	if n < len(t.Offsets) {
		cut = t.Offsets[n]
	}
	left := Token{
		Kind:     leftKind,
		Txt:      string(txtRunes[:n]),
		Original: string(origRunes[:cut]),
		Val:      leftVal,
		Offsets:  append([]int(nil), t.Offsets[:n]...),
	}
	rightOffs := make([]int, 0, len(t.Offsets)-n)
	for _, o := range t.Offsets[n:] {
		rightOffs = append(rightOffs, o-cut)
	}
	right := Token{
		Kind:     rightKind,
		Txt:      string(txtRunes[n:]),
		Original: string(origRunes[cut:]),
		Val:      rightVal,
		Offsets:  rightOffs,
	}
	return left, right
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
