// Package toklex turns Icelandic text into a stream of typed,
// sentence-delimited tokens.
//
// The tokenizer is a linear cascade of lazy stages, each a cursor over
// the previous one with a few tokens of lookahead: a rough whitespace and
// punctuation scanner, a per-token particle classifier, an abbreviation
// and punctuation refiner, two phrase coalescers around a date/time
// recognizer, and a sentence segmenter. Every token keeps its original
// source slice and an offset map from the normalized surface back into
// it, so that concatenating the originals of all tokens reproduces the
// (preprocessed) input byte for byte.
//
// The pipeline is total: no input makes it fail. All functions are safe
// for concurrent use; the abbreviation dictionary and pattern tables are
// immutable after their one-shot initialization.
package toklex

// Tokenize runs the full pipeline over the input using the built-in
// abbreviation dictionary. The returned stream is lazy; tokens are
// produced on demand.
func Tokenize(text string, opts Options) *Stream {
	return TokenizeWithDict(text, DefaultAbbrevDict(), opts)
}

// TokenizeWithDict runs the full pipeline with a caller-supplied
// abbreviation dictionary, typically loaded via LoadAbbrevFile.
func TokenizeWithDict(text string, dict *AbbrevDict, opts Options) *Stream {
	raw := newRawScanner(text, opts)
	particles := newParticleParser(raw, dict, opts)
	refined := newRefiner(particles, dict, opts)
	phrased := newCoalescer(refined, opts, false)
	dated := newDateParser(phrased, opts)
	final := newCoalescer(dated, opts, true)
	return &Stream{src: newSegmenter(final, dict, opts)}
}

// SentenceStream yields one string per sentence, lazily.
type SentenceStream struct {
	src  *Stream
	opts Options
}

// SplitIntoSentences tokenizes the input and yields sentences as
// strings, token surfaces joined by single spaces.
func SplitIntoSentences(text string, opts Options) *SentenceStream {
	return &SentenceStream{src: Tokenize(text, opts), opts: opts}
}

// Next returns the next sentence, or ok=false at end of input.
func (ss *SentenceStream) Next() (string, bool) {
	var parts []string
	for {
		t, ok := ss.src.Next()
		if !ok {
			return "", false
		}
		switch t.Kind {
		case SEnd:
			return joinParts(parts), true
		case XEnd:
			if len(parts) > 0 {
				return joinParts(parts), true
			}
			return "", false
		}
		if t.Kind.Sentinel() {
			continue
		}
		if ss.opts.Original {
			parts = append(parts, trimLeadingSpace(t.Original))
		} else {
			parts = append(parts, t.Txt)
		}
	}
}

// All drains the remaining sentences.
func (ss *SentenceStream) All() []string {
	var sents []string
	for {
		s, ok := ss.Next()
		if !ok {
			return sents
		}
		sents = append(sents, s)
	}
}
