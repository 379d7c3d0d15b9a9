package toklex

// Options control optional pipeline behavior. The zero value is NOT the
// default; use DefaultOptions.
type Options struct {
	// ConvertNumbers accepts English-locale numerics on input and rewrites
	// the normalized surface to Icelandic locale (1,234.56 -> 1.234,56).
	ConvertNumbers bool

	// ConvertMeasurements normalizes degree notation, e.g. "200° C" -> "200 °C".
	ConvertMeasurements bool

	// ReplaceCompositeGlyphs folds combining acute/diaeresis marks into
	// precomposed Icelandic letters before scanning. On by default.
	ReplaceCompositeGlyphs bool

	// ReplaceHTMLEscapes expands named HTML entities (&aacute; etc.).
	// Numeric entities are never expanded.
	ReplaceHTMLEscapes bool

	// OneSentPerLine treats every newline as a hard sentence boundary.
	OneSentPerLine bool

	// Original requests original token surfaces in shallow output modes.
	Original bool

	// CoalescePercent merges a number followed by "prósent" and similar
	// words into a PERCENT token.
	CoalescePercent bool

	// Normalize uses canonical punctuation forms in emitted surfaces
	// (Icelandic quotes, ellipsis, en-dash in year ranges).
	Normalize bool
}

// DefaultOptions returns the documented defaults: everything off except
// composite-glyph folding.
func DefaultOptions() Options {
	return Options{ReplaceCompositeGlyphs: true}
}
