package toklex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetokenize(t *testing.T) {
	detok := func(input string, normalize bool) string {
		return Detokenize(Tokenize(input, DefaultOptions()).All(), normalize)
	}

	test := func(input, expected string) func(*testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, expected, detok(input, false))
		}
	}

	t.Run("", test("Ég kom heim.", "Ég kom heim."))
	t.Run("", test("Ég  kom   heim .", "Ég kom heim."))
	t.Run("", test("Hann ( sá gamli ) kom.", "Hann (sá gamli) kom."))
	t.Run("", test("epli , perur og bananar", "epli, perur og bananar"))
	t.Run("", test("Hvað ?", "Hvað?"))
	t.Run("", test("„ Halló “", "„Halló“"))
	t.Run("", test("og / eða", "og/eða"))
}

func TestDetokenizeNormalize(t *testing.T) {
	toks := Tokenize(`Hann sagði "nei" og fór ...`, DefaultOptions()).All()
	assert.Equal(t, `Hann sagði „nei“ og fór…`, Detokenize(toks, true))
}

func TestCorrectSpaces(t *testing.T) {
	test := func(input, expected string) func(*testing.T) {
		return func(t *testing.T) {
			got := CorrectSpaces(input)
			assert.Equal(t, expected, got)
			// idempotence
			assert.Equal(t, got, CorrectSpaces(got))
		}
	}

	t.Run("", test("Ég  kom   heim .", "Ég kom heim."))
	t.Run("", test("Hún sagði : nei", "Hún sagði: nei"))
	t.Run("", test("tölva ,skjár og mús", "tölva, skjár og mús"))
}

func TestMarkParagraphs(t *testing.T) {
	assert.Equal(t, "[[ Fyrsta. ]] [[ Önnur. ]]",
		MarkParagraphs("Fyrsta.\n\nÖnnur."))
	assert.Equal(t, "[[ Ein lína og önnur. ]]",
		MarkParagraphs("Ein lína\nog önnur."))
	assert.Equal(t, "", MarkParagraphs("   \n\n  "))
}
