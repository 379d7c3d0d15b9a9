package toklex

import (
	"strings"
)

// refiner is the third stage: it extends abbreviations across adjacent
// period tokens, resolves straight-quote direction, rewrites punctuation
// surfaces when normalization is requested, and collapses composite-word
// continuations ("fjölskyldu- og húsdýragarðurinn") into single words.
type refiner struct {
	la   *lookahead
	dict *AbbrevDict
	opts Options

	doubleQuoteOpen bool
	singleQuoteOpen bool
}

func newRefiner(src tokenSource, dict *AbbrevDict, opts Options) *refiner {
	return &refiner{la: newLookahead(src), dict: dict, opts: opts}
}

func (r *refiner) Next() (Token, bool) {
	t, ok := r.la.Next()
	if !ok {
		return Token{}, false
	}
	if t.Kind.Sentinel() {
		return t, true
	}

	switch t.Kind {
	case Word:
		if merged, ok := r.extendAbbrev(t); ok {
			t = merged
		}
		if merged, ok := r.coalesceComposite(t); ok {
			t = merged
		}
	case Punctuation:
		t = r.refinePunct(t)
	}
	return t, true
}

// extendAbbrev greedily joins a word with following period tokens while
// the combined surface stays in the dictionary, preferring the longest
// hit. This catches abbreviations whose final period was scanned apart.
func (r *refiner) extendAbbrev(t Token) (Token, bool) {
	merged := false
	for {
		p, ok := r.la.Peek(0)
		if !ok || p.Kind != Punctuation || p.Txt != "." || mergeJoiner(p) != "" {
			break
		}
		meanings, canon, ok := r.dict.Lookup(t.Txt + ".")
		if !ok {
			break
		}
		r.la.Skip(1)
		t = mergeAdjacent(Word, MeaningsVal(meanings), t, p)
		if !strings.EqualFold(canon, t.Txt) {
			t = withTxt(t, canon)
		}
		merged = true
	}
	return t, merged
}

// coalesceComposite collapses the dash-conjoined compound patterns
// "X- og Y", "X og -Y" and the iterated "A-, B- og C-..." into a single
// WORD whose surface is the joined phrase.
func (r *refiner) coalesceComposite(t Token) (Token, bool) {
	isConj := func(tok Token) bool {
		return tok.Kind == Word && (tok.Txt == "og" || tok.Txt == "eða")
	}

	if strings.HasSuffix(t.Txt, "-") {
		seq := []Token{t}
		n := 0
		for {
			p0, ok0 := r.la.Peek(n)
			if !ok0 {
				return t, false
			}
			if p0.Kind == Punctuation && p0.Txt == "," {
				p1, ok1 := r.la.Peek(n + 1)
				if ok1 && p1.Kind == Word && strings.HasSuffix(p1.Txt, "-") {
					seq = append(seq, p0, p1)
					n += 2
					continue
				}
				return t, false
			}
			if isConj(p0) {
				p1, ok1 := r.la.Peek(n + 1)
				if ok1 && p1.Kind == Word {
					seq = append(seq, p0, p1)
					r.la.Skip(n + 2)
					return mergeAdjacent(Word, nil, seq...), true
				}
			}
			return t, false
		}
	}

	// "X og -Y": the dash leads the second conjunct
	if p0, ok := r.la.Peek(0); ok && isConj(p0) {
		if p1, ok := r.la.Peek(1); ok && p1.Kind == Word && strings.HasPrefix(p1.Txt, "-") {
			r.la.Skip(2)
			return mergeAdjacent(Word, nil, t, p0, p1), true
		}
	}
	return t, false
}

// refinePunct resolves straight quotes against the open/close state and
// applies surface normalization when requested.
func (r *refiner) refinePunct(t Token) Token {
	val, _ := t.Val.(PunctVal)
	switch t.Txt {
	case `"`:
		if r.doubleQuoteOpen {
			val = PunctVal{Space: SpaceRight, Norm: "“"}
		} else {
			val = PunctVal{Space: SpaceLeft, Norm: "„"}
		}
		r.doubleQuoteOpen = !r.doubleQuoteOpen
		t.Val = val
	case "'":
		if r.singleQuoteOpen {
			val = PunctVal{Space: SpaceRight, Norm: "‘"}
		} else {
			val = PunctVal{Space: SpaceLeft, Norm: "‚"}
		}
		r.singleQuoteOpen = !r.singleQuoteOpen
		t.Val = val
	}
	if r.opts.Normalize && val.Norm != "" && val.Norm != t.Txt {
		t = withTxt(t, val.Norm)
		t.Val = val
	}
	return t
}
