// Package tokka is the high-level surface of the Icelandic tokenizer:
// thin wrappers over the toklex pipeline plus the CSV and JSON format
// writers used by the command line tool.
package tokka

import (
	"github.com/ordstofa/tokka/toklex"
)

// Re-exported core types, so that most callers only import this package.
type (
	Token   = toklex.Token
	Kind    = toklex.Kind
	Options = toklex.Options
)

// DefaultOptions returns the documented option defaults.
func DefaultOptions() Options {
	return toklex.DefaultOptions()
}

// Tokenize runs the full deep tokenization including sentence markers.
func Tokenize(text string, opts Options) *toklex.Stream {
	return toklex.Tokenize(text, opts)
}

// SplitIntoSentences yields one string per sentence, tokens joined by
// single spaces.
func SplitIntoSentences(text string, opts Options) *toklex.SentenceStream {
	return toklex.SplitIntoSentences(text, opts)
}

// Detokenize reconstructs a text from tokens using the punctuation
// spacing rules.
func Detokenize(toks []Token, normalize bool) string {
	return toklex.Detokenize(toks, normalize)
}

// CorrectSpaces normalizes the spacing of a degraded input.
func CorrectSpaces(s string) string {
	return toklex.CorrectSpaces(s)
}

// MarkParagraphs converts blank-line separators to paragraph markers.
func MarkParagraphs(s string) string {
	return toklex.MarkParagraphs(s)
}
