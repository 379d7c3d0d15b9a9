package toklex

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Input preprocessing. Runs before the rough tokenizer so that every
// downstream pattern can assume precomposed letters and plain spaces.
// The preprocessed string is the reference text for the reconstruction
// invariant: concatenating token originals reproduces it exactly.

// compositeGlyphs folds vowel + combining acute (U+0301) or combining
// diaeresis (U+0308) into the precomposed Icelandic letters. Any other
// base/mark combination passes through untouched.
var compositeGlyphs = map[[2]rune]rune{
	{'a', 0x0301}: 'á', {'A', 0x0301}: 'Á',
	{'e', 0x0301}: 'é', {'E', 0x0301}: 'É',
	{'i', 0x0301}: 'í', {'I', 0x0301}: 'Í',
	{'o', 0x0301}: 'ó', {'O', 0x0301}: 'Ó',
	{'u', 0x0301}: 'ú', {'U', 0x0301}: 'Ú',
	{'y', 0x0301}: 'ý', {'Y', 0x0301}: 'Ý',
	{'o', 0x0308}: 'ö', {'O', 0x0308}: 'Ö',
	{'a', 0x0308}: 'ä', {'A', 0x0308}: 'Ä',
	{'e', 0x0308}: 'ë', {'E', 0x0308}: 'Ë',
	{'u', 0x0308}: 'ü', {'U', 0x0308}: 'Ü',
}

func foldCompositeGlyphs(s string) string {
	if !strings.ContainsRune(s, 0x0301) && !strings.ContainsRune(s, 0x0308) {
		return s
	}
	in := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(in); i++ {
		if i+1 < len(in) {
			if folded, ok := compositeGlyphs[[2]rune{in[i], in[i+1]}]; ok {
				b.WriteRune(folded)
				i++
				continue
			}
		}
		b.WriteRune(in[i])
	}
	return b.String()
}

// htmlEscapes lists the named entities that are expanded when the option
// is on. Numeric entities are deliberately not expanded. &shy; vanishes,
// &nbsp; becomes a plain space.
var htmlEscapes = map[string]string{
	"&aacute;": "á", "&Aacute;": "Á",
	"&eacute;": "é", "&Eacute;": "É",
	"&iacute;": "í", "&Iacute;": "Í",
	"&oacute;": "ó", "&Oacute;": "Ó",
	"&uacute;": "ú", "&Uacute;": "Ú",
	"&yacute;": "ý", "&Yacute;": "Ý",
	"&eth;": "ð", "&ETH;": "Ð",
	"&thorn;": "þ", "&THORN;": "Þ",
	"&aelig;": "æ", "&AElig;": "Æ",
	"&ouml;": "ö", "&Ouml;": "Ö",
	"&auml;": "ä", "&Auml;": "Ä",
	"&euml;": "ë", "&Euml;": "Ë",
	"&uuml;": "ü", "&Uuml;": "Ü",
	"&amp;": "&", "&lt;": "<", "&gt;": ">",
	"&quot;": "\"", "&apos;": "'",
	"&ndash;": "–", "&mdash;": "—",
	"&hellip;": "…",
	"&lsquo;":  "‘", "&rsquo;": "’",
	"&ldquo;": "“", "&rdquo;": "”",
	"&bdquo;": "„", "&sbquo;": "‚",
	"&filig;": "fi", "&fllig;": "fl",
	"&shy;":  "",
	"&nbsp;": " ",
}

func replaceHTMLEscapes(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '&' {
			if end := strings.IndexByte(s[i:], ';'); end > 0 && end <= 12 {
				if repl, ok := htmlEscapes[s[i:i+end+1]]; ok {
					b.WriteString(repl)
					i += end + 1
					continue
				}
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// invisibleCleaner removes zero-width characters and rewrites nonbreaking
// space variants to plain spaces. Built as a transform chain so the same
// machinery can run over readers as well as strings.
var invisibleCleaner = transform.Chain(
	runes.Remove(runes.Predicate(isInvisibleRune)),
	runes.Map(func(r rune) rune {
		switch r {
		case '\u00a0', '\u2007', '\u202f': // nbsp, figure space, narrow nbsp
			return ' '
		}
		return r
	}),
)

func isInvisibleRune(r rune) bool {
	switch r {
	case '\u200b', '\u2060', '\ufeff', '\u00ad':
		return true
	}
	return false
}

func stripInvisible(s string) string {
	out, _, err := transform.String(invisibleCleaner, s)
	if err != nil {
		return s
	}
	return out
}

// preprocess applies the optional input rewrites in their documented
// order. The result is what the reconstruction invariant is stated over.
func preprocess(s string, opts Options) string {
	if opts.ReplaceCompositeGlyphs {
		s = foldCompositeGlyphs(s)
	}
	if opts.ReplaceHTMLEscapes {
		s = replaceHTMLEscapes(s)
	}
	return stripInvisible(s)
}
