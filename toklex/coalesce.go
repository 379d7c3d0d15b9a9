package toklex

import "strings"

// coalescer implements the two phrase-merging stages. The first pass runs
// before date recognition and builds measurements, symbol-currency
// amounts and percentages; the final pass runs after it and handles
// currencies written as words.
type coalescer struct {
	la    *lookahead
	opts  Options
	final bool
}

func newCoalescer(src tokenSource, opts Options, final bool) *coalescer {
	return &coalescer{la: newLookahead(src), opts: opts, final: final}
}

func (c *coalescer) Next() (Token, bool) {
	t, ok := c.la.Next()
	if !ok {
		return Token{}, false
	}
	if t.Kind.Sentinel() {
		return t, true
	}
	if c.final {
		return c.nextFinal(t), true
	}
	return c.nextFirst(t), true
}

func (c *coalescer) nextFirst(t Token) Token {
	switch t.Kind {
	case Number:
		num := t.Val.(NumberVal)

		// number + unit symbol -> measurement; a lone degree sign scans
		// as punctuation but still opens a unit
		if p0, ok := c.la.Peek(0); ok && (p0.Kind == Word || (p0.Kind == Punctuation && p0.Txt == "°")) {
			if p0.Txt == "°" {
				if p1, ok := c.la.Peek(1); ok && p1.Kind == Word && (p1.Txt == "C" || p1.Txt == "F") {
					c.la.Skip(2)
					return c.measurement(num.Float, "°"+p1.Txt, t, p0, p1)
				}
			}
			if u, ok := lookupUnit(p0.Txt); ok && u.Base != "°" {
				c.la.Skip(1)
				return c.measurement(num.Float, p0.Txt, t, p0)
			}
			if c.opts.CoalescePercent && percentWords[p0.Txt] {
				c.la.Skip(1)
				return mergeAdjacent(Percent, PercentVal{Float: num.Float}, t, p0)
			}
		}

		// number + percent sign token -> percent
		if p0, ok := c.la.Peek(0); ok && p0.Kind == Punctuation && (p0.Txt == "%" || p0.Txt == "‰") {
			c.la.Skip(1)
			v := num.Float
			if p0.Txt == "‰" {
				v /= 10
			}
			return mergeAdjacent(Percent, PercentVal{Float: v}, t, p0)
		}

		// number [multiplier] + trailing currency symbol -> amount
		if merged, ok := c.amountAfterNumber(t, num.Float); ok {
			return merged
		}

	case Punctuation:
		// currency symbol + number [multiplier] -> amount
		if iso, ok := currencySymbols[t.Txt]; ok {
			if p0, ok := c.la.Peek(0); ok && p0.Kind == Number {
				amount := p0.Val.(NumberVal).Float
				// the symbol attaches tightly to the number
				merged := mergeTokens(Amount, nil, "", t, p0)
				n := 1
				if p1, ok := c.la.Peek(1); ok {
					if mult, ok := multiplierWord(p1); ok {
						amount *= mult
						merged = mergeAdjacent(Amount, nil, merged, p1)
						n = 2
					}
				}
				c.la.Skip(n)
				merged.Val = AmountVal{Amount: amount, ISO: iso}
				return merged
			}
		}
	}
	return t
}

// amountAfterNumber handles "1.000 $" and "2 millj. $".
func (c *coalescer) amountAfterNumber(t Token, amount float64) (Token, bool) {
	toks := []Token{t}
	n := 0
	if p, ok := c.la.Peek(n); ok {
		if mult, ok := multiplierWord(p); ok {
			amount *= mult
			toks = append(toks, p)
			n++
		}
	}
	p, ok := c.la.Peek(n)
	if !ok || p.Kind != Punctuation {
		return t, false
	}
	iso, ok := currencySymbols[p.Txt]
	if !ok {
		return t, false
	}
	toks = append(toks, p)
	c.la.Skip(n + 1)
	return mergeAdjacent(Amount, AmountVal{Amount: amount, ISO: iso}, toks...), true
}

func (c *coalescer) measurement(v float64, unit string, toks ...Token) Token {
	u, _ := lookupUnit(unit)
	m := mergeAdjacent(Measurement, MeasureVal{Unit: u.Base, Value: v*u.Factor + u.Offset}, toks...)
	if c.opts.ConvertMeasurements && strings.HasPrefix(unit, "°") {
		m = withTxt(m, toks[0].Txt+" "+unit)
	}
	return m
}

func (c *coalescer) nextFinal(t Token) Token {
	switch t.Kind {
	case Number:
		amount := t.Val.(NumberVal).Float
		toks := []Token{t}
		n := 0
		if p, ok := c.la.Peek(n); ok {
			if mult, ok := multiplierWord(p); ok {
				amount *= mult
				toks = append(toks, p)
				n++
			}
		}
		if p, ok := c.la.Peek(n); ok && p.Kind == Word {
			if iso, ok := currencyWords[p.Txt]; ok {
				toks = append(toks, p)
				c.la.Skip(n + 1)
				return mergeAdjacent(Amount, AmountVal{Amount: amount, ISO: iso}, toks...)
			}
		}

	case Word:
		// "kr. 500" and other currency-first phrasings
		if iso, ok := currencyWords[t.Txt]; ok {
			if p0, ok := c.la.Peek(0); ok && p0.Kind == Number {
				amount := p0.Val.(NumberVal).Float
				toks := []Token{t, p0}
				if p1, ok := c.la.Peek(1); ok {
					if mult, ok := multiplierWord(p1); ok {
						amount *= mult
						toks = append(toks, p1)
					}
				}
				c.la.Skip(len(toks) - 1)
				return mergeAdjacent(Amount, AmountVal{Amount: amount, ISO: iso}, toks...)
			}
		}
	}
	return t
}

// multiplierWord recognizes magnitude words like "þús." and "millj.".
func multiplierWord(t Token) (float64, bool) {
	if t.Kind != Word {
		return 0, false
	}
	mult, ok := amountMultipliers[t.Txt]
	return mult, ok
}
