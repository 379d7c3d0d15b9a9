package toklex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(src tokenSource) []Token {
	var toks []Token
	for {
		t, ok := src.Next()
		if !ok {
			return toks
		}
		toks = append(toks, t)
	}
}

func TestSplitChunk(t *testing.T) {
	test := func(chunk string, expected ...string) func(*testing.T) {
		return func(t *testing.T) {
			got := splitChunk(chunk)
			assert.Equal(t, expected, got)
			assert.Equal(t, chunk, strings.Join(got, ""), "pieces must reproduce the chunk")
		}
	}

	t.Run("", test("orð", "orð"))
	t.Run("", test("(sjá", "(", "sjá"))
	t.Run("", test("bók,", "bók", ","))
	t.Run("", test("bók),", "bók", ")", ","))
	t.Run("", test("3.janúar", "3.", "janúar"))
	t.Run("", test("o.s.frv.", "o.s.frv."))
	t.Run("", test("rafbíl.", "rafbíl."))
	t.Run("", test("14:30", "14:30"))
	t.Run("", test("orð:", "orð", ":"))
	t.Run("", test("og/eða", "og", "/", "eða"))
	t.Run("", test("3/4", "3/4"))
	t.Run("", test("12/11/2024", "12/11/2024"))
	t.Run("", test("1914-1918", "1914-1918"))
	t.Run("", test("-1918", "-1918"))
	t.Run("", test("fjölskyldu-", "fjölskyldu-"))
	t.Run("", test("---", "---"))
	t.Run("", test("—", "—"))
	t.Run("", test("hún...", "hún", "..."))
	t.Run("", test("„Hann“", "„", "Hann", "“"))
	t.Run("", test(`"Hann"`, `"`, "Hann", `"`))
	t.Run("", test("$100", "$", "100"))
	t.Run("", test("€100", "€", "100"))
	t.Run("", test("42%", "42%"))
	t.Run("", test("H2O", "H2O"))
	t.Run("", test("https://mbl.is/frettir", "https://mbl.is/frettir"))
	t.Run("", test("https://mbl.is/frettir.", "https://mbl.is/frettir", "."))
	t.Run("", test("jon@mbl.is", "jon@mbl.is"))
	t.Run("", test("spurning?!", "spurning", "?", "!"))
}

func TestRawScannerOriginals(t *testing.T) {
	test := func(input string) func(*testing.T) {
		return func(t *testing.T) {
			toks := drain(newRawScanner(input, DefaultOptions()))
			var b strings.Builder
			for _, tok := range toks {
				b.WriteString(tok.Original)
			}
			assert.Equal(t, input, b.String())
			for _, tok := range toks {
				if tok.Kind.Sentinel() {
					continue
				}
				require.Len(t, tok.Offsets, len([]rune(tok.Txt)))
			}
		}
	}

	t.Run("", test("Ég kom heim."))
	t.Run("", test("  leading whitespace"))
	t.Run("", test("trailing whitespace   \n"))
	t.Run("", test("ég   keypti\tbíl"))
	t.Run("", test("fyrsta línan\n\nönnur línan\n"))
	t.Run("", test("„Gott!“ sagði hún."))
}

func TestRawScannerBlankLine(t *testing.T) {
	toks := drain(newRawScanner("fyrri hluti\n\nseinni hluti", DefaultOptions()))
	var kinds []Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []Kind{Unknown, Unknown, SSplit, Unknown, Unknown}, kinds)
	// the blank line itself is carried by the next token
	assert.Equal(t, "\n\nseinni", toks[3].Original)
}

func TestRawScannerOneSentPerLine(t *testing.T) {
	opts := DefaultOptions()
	opts.OneSentPerLine = true
	toks := drain(newRawScanner("ein lína\nönnur lína", opts))
	var splits int
	for _, tok := range toks {
		if tok.Kind == SSplit {
			splits++
		}
	}
	assert.Equal(t, 1, splits)
}

func TestRawScannerWhitespaceOnly(t *testing.T) {
	assert.Empty(t, drain(newRawScanner("   \n\t  ", DefaultOptions())))
	assert.Empty(t, drain(newRawScanner("", DefaultOptions())))
}

func TestPreprocess(t *testing.T) {
	t.Run("composite glyphs", func(t *testing.T) {
		// "a" + combining acute folds into the precomposed letter
		assert.Equal(t, "árós", foldCompositeGlyphs("árós"))
		assert.Equal(t, "Örn", foldCompositeGlyphs("Örn"))
		// other combining marks pass through
		assert.Equal(t, "ç", foldCompositeGlyphs("ç"))
	})

	t.Run("html escapes", func(t *testing.T) {
		assert.Equal(t, "árið", replaceHTMLEscapes("&aacute;ri&eth;"))
		assert.Equal(t, "fiskur", replaceHTMLEscapes("&filig;skur"))
		assert.Equal(t, "orð", replaceHTMLEscapes("or&shy;&eth;"))
		assert.Equal(t, "a b", replaceHTMLEscapes("a&nbsp;b"))
		// numeric entities are not expanded
		assert.Equal(t, "&#225;", replaceHTMLEscapes("&#225;"))
	})

	t.Run("invisible runes", func(t *testing.T) {
		assert.Equal(t, "orð", stripInvisible("or​ð﻿"))
		assert.Equal(t, "a b", stripInvisible("a b"))
	})
}
