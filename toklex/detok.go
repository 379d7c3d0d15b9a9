package toklex

import (
	"regexp"
	"strings"
)

// Detokenize reconstructs a text from a token sequence: one space between
// tokens except where the punctuation whitespace class says otherwise.
// LEFT suppresses the space after a symbol, RIGHT the space before it,
// NONE both, CENTER neither. With normalize, punctuation surfaces are
// replaced by their canonical forms before joining.
func Detokenize(toks []Token, normalize bool) string {
	var b strings.Builder
	suppressNext := false
	first := true
	for _, t := range toks {
		if t.Kind.Sentinel() {
			continue
		}
		surface := t.Txt
		cls := SpaceCenter
		if v, ok := t.Val.(PunctVal); ok {
			cls = v.Space
			if normalize && v.Norm != "" {
				surface = v.Norm
			}
		}
		if surface == "" {
			continue
		}
		if !first && !suppressNext && cls != SpaceRight && cls != SpaceNone {
			b.WriteByte(' ')
		}
		b.WriteString(surface)
		suppressNext = cls == SpaceLeft || cls == SpaceNone
		first = false
	}
	return b.String()
}

// CorrectSpaces rewrites a degraded input with canonical token spacing:
// the identity composition tokenize -> detokenize.
func CorrectSpaces(s string) string {
	return Detokenize(Tokenize(s, DefaultOptions()).All(), false)
}

var blankLineRe = regexp.MustCompile(`\n[ \t\r]*\n[ \t\r\n]*`)

// MarkParagraphs converts blank-line separators into explicit paragraph
// markers: each paragraph is wrapped in "[[" and "]]".
func MarkParagraphs(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	paras := blankLineRe.Split(s, -1)
	var b strings.Builder
	for i, p := range paras {
		p = strings.Join(strings.Fields(p), " ")
		if p == "" {
			continue
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("[[ ")
		b.WriteString(p)
		b.WriteString(" ]]")
	}
	return b.String()
}

func joinParts(parts []string) string {
	return strings.Join(parts, " ")
}

func trimLeadingSpace(s string) string {
	return strings.TrimLeft(s, " \t\n\r\v\f")
}
