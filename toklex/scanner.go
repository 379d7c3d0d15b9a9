package toklex

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"
)

// rawScanner is the rough tokenizer: a cursor over the preprocessed input
// that splits on whitespace and on interior punctuation, attributing the
// whitespace before a token to that token's Original. Trailing whitespace
// at end-of-input is attributed to the last token, which is why the
// scanner always holds one produced token back until it has seen what
// follows it.
type rawScanner struct {
	input   string
	pos     int
	opts    Options
	queue   []Token
	started bool
	eof     bool
}

func newRawScanner(input string, opts Options) *rawScanner {
	return &rawScanner{input: preprocess(input, opts), opts: opts}
}

func (s *rawScanner) Next() (Token, bool) {
	for {
		// Hold the newest token back until eof is decided, so that
		// trailing whitespace can still be appended to it.
		if len(s.queue) > 1 || (s.eof && len(s.queue) > 0) {
			t := s.queue[0]
			s.queue = s.queue[1:]
			return t, true
		}
		if s.eof {
			return Token{}, false
		}
		s.scanStep()
	}
}

// scanStep consumes one whitespace run plus the following chunk, appending
// the resulting tokens to the queue.
func (s *rawScanner) scanStep() {
	wsStart := s.pos
	for s.pos < len(s.input) {
		r, w := utf8.DecodeRuneInString(s.input[s.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		s.pos += w
	}
	ws := s.input[wsStart:s.pos]

	if s.started && s.hardBoundary(ws) && s.pos < len(s.input) {
		s.queue = append(s.queue, sentinel(SSplit))
	}

	if s.pos >= len(s.input) {
		s.eof = true
		if ws != "" {
			s.attachTrailing(ws)
		}
		return
	}

	chunkStart := s.pos
	for s.pos < len(s.input) {
		r, w := utf8.DecodeRuneInString(s.input[s.pos:])
		if unicode.IsSpace(r) {
			break
		}
		s.pos += w
	}
	chunk := s.input[chunkStart:s.pos]

	for i, piece := range splitChunk(chunk) {
		lead := ""
		if i == 0 {
			lead = ws
		}
		s.queue = append(s.queue, newToken(Unknown, lead, piece, nil))
	}
	s.started = true
}

// hardBoundary reports whether a whitespace run forces a sentence split:
// a blank line, or any newline in one-sentence-per-line mode.
func (s *rawScanner) hardBoundary(ws string) bool {
	if s.opts.OneSentPerLine {
		return strings.Contains(ws, "\n")
	}
	return strings.Count(ws, "\n") >= 2
}

// attachTrailing appends end-of-input whitespace to the last content
// token in the queue. Whitespace-only input produces no tokens at all.
func (s *rawScanner) attachTrailing(ws string) {
	for i := len(s.queue) - 1; i >= 0; i-- {
		if !s.queue[i].Kind.Sentinel() {
			s.queue[i].Original += ws
			return
		}
	}
}

// splitChunk cuts a whitespace-free chunk into rough token surfaces.
// Concatenating the pieces reproduces the chunk.
func splitChunk(chunk string) []string {
	// paragraph markers from mark_paragraphs stay whole
	if chunk == "[[" || chunk == "]]" {
		return []string{chunk}
	}

	// URLs and e-mails keep their interior punctuation; only a single
	// trailing sentence punctuation rune is peeled off.
	if looksLikeURL(chunk) || looksLikeEmail(chunk) {
		if r, w := lastRune(chunk); w > 0 && strings.ContainsRune(".,;:!?", r) {
			return []string{chunk[:len(chunk)-w], chunk[len(chunk)-w:]}
		}
		return []string{chunk}
	}

	runes := []rune(chunk)
	var pieces []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			pieces = append(pieces, string(cur))
			cur = cur[:0]
		}
	}
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		var prev, next rune
		if i > 0 {
			prev = runes[i-1]
		}
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		switch {
		case r == ',' && isDigitRune(prev) && isDigitRune(next):
			// a comma inside a number stays: "3,14", "1,234.56"
			cur = append(cur, r)
		case alwaysSplits(r):
			flush()
			pieces = append(pieces, string(r))
		case r == ':' && !(isDigitRune(prev) && isDigitRune(next)):
			flush()
			pieces = append(pieces, string(r))
		case r == '/' && !(isDigitRune(prev) && isDigitRune(next)):
			flush()
			pieces = append(pieces, string(r))
		case r == '.' && next == '.':
			// a run of dots becomes a single token
			flush()
			j := i
			for j < len(runes) && runes[j] == '.' {
				j++
			}
			pieces = append(pieces, string(runes[i:j]))
			i = j - 1
		case r == '.' && isDigitRune(prev) && unicode.IsLetter(next):
			// "3.janúar": the dot stays with the digits
			cur = append(cur, r)
			flush()
		case isDashRune(r) && next == r:
			// consecutive identical dashes form one token
			flush()
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			pieces = append(pieces, string(runes[i:j]))
			i = j - 1
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return pieces
}

// alwaysSplits reports whether the rune is always a token of its own
// inside a chunk. splitChunk makes one exception: a comma between two
// digits stays inside the number.
func alwaysSplits(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', ',', ';', '!', '?',
		'"', '«', '»', '„', '“', '”', '‚', '‘', '’', '…', '|',
		'$', '€', '£', '¥':
		return true
	}
	return false
}

func isDashRune(r rune) bool {
	return r == '-' || r == '–' || r == '—'
}

func isDigitRune(r rune) bool {
	return r >= '0' && r <= '9'
}

// isWordRune reports whether the rune can occur inside a word. Identifier
// continuation characters cover the Icelandic alphabet and then some.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || xid.Continue(r)
}

func looksLikeURL(chunk string) bool {
	if strings.Contains(chunk, "://") {
		return true
	}
	return strings.HasPrefix(chunk, "www.") && strings.Count(chunk, ".") >= 2
}

func looksLikeEmail(chunk string) bool {
	at := strings.IndexByte(chunk, '@')
	if at <= 0 || at == len(chunk)-1 {
		return false
	}
	return strings.IndexByte(chunk[at+1:], '.') > 0
}

func lastRune(s string) (rune, int) {
	return utf8.DecodeLastRuneInString(s)
}
