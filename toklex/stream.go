package toklex

// The pipeline is a linear composition of lazy stages. Each stage is a
// cursor over the previous one, pulling tokens on demand and keeping at
// most a few tokens of lookahead; no stage ever materializes the full
// stream.

// tokenSource is implemented by every pipeline stage.
type tokenSource interface {
	// Next returns the next token, or ok=false at end of stream.
	Next() (Token, bool)
}

// lookahead wraps a source with a small pushback buffer so stages can
// peek a bounded number of tokens ahead while deciding on a merge.
type lookahead struct {
	src tokenSource
	buf []Token
}

func newLookahead(src tokenSource) *lookahead {
	return &lookahead{src: src}
}

func (la *lookahead) Next() (Token, bool) {
	if len(la.buf) > 0 {
		t := la.buf[0]
		la.buf = la.buf[1:]
		return t, true
	}
	return la.src.Next()
}

// Peek returns the n-th upcoming token (0-based) without consuming it.
func (la *lookahead) Peek(n int) (Token, bool) {
	for len(la.buf) <= n {
		t, ok := la.src.Next()
		if !ok {
			return Token{}, false
		}
		la.buf = append(la.buf, t)
	}
	return la.buf[n], true
}

// Skip consumes n tokens that were already peeked.
func (la *lookahead) Skip(n int) {
	la.buf = la.buf[n:]
}

// Stream is the public face of a running pipeline: a single-consumer
// iterator over the final token sequence.
type Stream struct {
	src tokenSource
}

// Next returns the next token, or ok=false when the stream is exhausted.
func (s *Stream) Next() (Token, bool) {
	return s.src.Next()
}

// All drains the stream into a slice. Mostly useful in tests and small
// inputs; large inputs should consume lazily via Next.
func (s *Stream) All() []Token {
	var toks []Token
	for {
		t, ok := s.Next()
		if !ok {
			return toks
		}
		toks = append(toks, t)
	}
}
