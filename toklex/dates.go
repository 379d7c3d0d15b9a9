package toklex

import (
	"strings"
)

// dateParser is the fifth stage: it assembles DATEABS, DATEREL,
// TIMESTAMPABS, TIMESTAMPREL, TIME and YEAR tokens from sequences of
// ordinals, month names, numeric dates and clock expressions. Longest
// match wins; a sequence is only merged when the resulting date is valid.
type dateParser struct {
	la   *lookahead
	opts Options
}

func newDateParser(src tokenSource, opts Options) *dateParser {
	return &dateParser{la: newLookahead(src), opts: opts}
}

// monthNames maps lowercase Icelandic month names and their dotted
// abbreviations to month numbers. Names are matched case-insensitively,
// so a capitalized "Ágúst" after an ordinal reads as the month.
var monthNames = map[string]int{
	"janúar": 1, "jan.": 1,
	"febrúar": 2, "feb.": 2,
	"mars": 3, "mar.": 3,
	"apríl": 4, "apr.": 4,
	"maí": 5,
	"júní": 6, "jún.": 6,
	"júlí": 7, "júl.": 7,
	"ágúst": 8, "ág.": 8, "ágú.": 8,
	"september": 9, "sep.": 9, "sept.": 9,
	"október": 10, "okt.": 10,
	"nóvember": 11, "nóv.": 11,
	"desember": 12, "des.": 12,
}

// clockWordNumbers maps the spelled-out hours of clock expressions.
var clockWordNumbers = map[string]int{
	"eitt": 1, "tvö": 2, "þrjú": 3, "fjögur": 4,
	"fimm": 5, "sex": 6, "sjö": 7, "átta": 8,
	"níu": 9, "tíu": 10, "ellefu": 11, "tólf": 12,
}

func monthNumber(t Token) (int, bool) {
	if t.Kind != Word {
		return 0, false
	}
	m, ok := monthNames[strings.ToLower(t.Txt)]
	return m, ok
}

func (d *dateParser) Next() (Token, bool) {
	t, ok := d.la.Next()
	if !ok {
		return Token{}, false
	}
	if t.Kind.Sentinel() {
		return t, true
	}

	switch t.Kind {
	case Ordinal:
		if merged, ok := d.ordinalDate(t); ok {
			t = merged
		}
	case Word:
		if merged, ok := d.monthYear(t); ok {
			t = merged
		} else if merged, ok := d.clockTime(t); ok {
			t = merged
		}
	case Year:
		if merged, ok := d.yearRange(t); ok {
			t = merged
		} else if merged, ok := d.yearEpoch(t); ok {
			t = merged
		}
	case Number:
		// three-digit years only read as years next to an epoch marker
		if v := t.Val.(NumberVal).Float; v == float64(int(v)) && int(v) >= 1 && int(v) <= 2100 {
			yt := t
			yt.Kind = Year
			yt.Val = YearVal{Y: int(v)}
			if merged, ok := d.yearEpoch(yt); ok {
				t = merged
			}
		}
	}

	// a fresh date token may still pick up a following clock time
	switch t.Kind {
	case DateAbs, DateRel:
		if merged, ok := d.dateTime(t); ok {
			t = merged
		}
	}
	return t, true
}

// ordinalDate builds "3. janúar" and "3. janúar 2020".
func (d *dateParser) ordinalDate(t Token) (Token, bool) {
	day := t.Val.(OrdinalVal).N
	p0, ok := d.la.Peek(0)
	if !ok {
		return t, false
	}
	month, ok := monthNumber(p0)
	if !ok || !isValidDate(0, month, day) {
		return t, false
	}
	if p1, ok := d.la.Peek(1); ok && p1.Kind == Year {
		year := p1.Val.(YearVal).Y
		if isValidDate(year, month, day) {
			d.la.Skip(2)
			return mergeTokens(DateAbs, DateVal{Year: year, Month: month, Day: day}, " ", t, p0, p1), true
		}
	}
	d.la.Skip(1)
	return mergeTokens(DateRel, DateVal{Month: month, Day: day}, " ", t, p0), true
}

// monthYear builds "janúar 2020" -> DATEREL(y, m, 0).
func (d *dateParser) monthYear(t Token) (Token, bool) {
	month, ok := monthNumber(t)
	if !ok {
		return t, false
	}
	p0, ok := d.la.Peek(0)
	if !ok || p0.Kind != Year {
		return t, false
	}
	d.la.Skip(1)
	return mergeTokens(DateRel, DateVal{Year: p0.Val.(YearVal).Y, Month: month}, " ", t, p0), true
}

// clockTime builds TIME from "kl. 15:30", "klukkan tvö" and
// "klukkan hálf tvö".
func (d *dateParser) clockTime(t Token) (Token, bool) {
	if t.Txt != "kl." && !strings.EqualFold(t.Txt, "klukkan") {
		return t, false
	}
	p0, ok := d.la.Peek(0)
	if !ok {
		return t, false
	}
	switch {
	case p0.Kind == Time:
		d.la.Skip(1)
		return mergeTokens(Time, p0.Val, " ", t, p0), true
	case p0.Kind == Number:
		if h := int(p0.Val.(NumberVal).Float); h >= 0 && h <= 23 && float64(h) == p0.Val.(NumberVal).Float {
			d.la.Skip(1)
			return mergeTokens(Time, TimeVal{Hour: h}, " ", t, p0), true
		}
	case p0.Kind == Word && strings.EqualFold(p0.Txt, "hálf"):
		if p1, ok := d.la.Peek(1); ok && p1.Kind == Word {
			if h, ok := clockWordNumbers[strings.ToLower(p1.Txt)]; ok {
				d.la.Skip(2)
				return mergeTokens(Time, TimeVal{Hour: h - 1, Min: 30}, " ", t, p0, p1), true
			}
		}
	case p0.Kind == Word:
		if h, ok := clockWordNumbers[strings.ToLower(p0.Txt)]; ok {
			d.la.Skip(1)
			return mergeTokens(Time, TimeVal{Hour: h}, " ", t, p0), true
		}
	}
	return t, false
}

// dateTime extends a date with "kl. 10:30" or a bare clock time into a
// timestamp.
func (d *dateParser) dateTime(t Token) (Token, bool) {
	date := t.Val.(DateVal)
	toks := []Token{t}
	n := 0
	if p, ok := d.la.Peek(n); ok && p.Kind == Word &&
		(p.Txt == "kl." || strings.EqualFold(p.Txt, "klukkan")) {
		toks = append(toks, p)
		n++
	}
	p, ok := d.la.Peek(n)
	if !ok || p.Kind != Time {
		return t, false
	}
	clock := p.Val.(TimeVal)
	toks = append(toks, p)
	d.la.Skip(n + 1)
	kind := TimestampRel
	if t.Kind == DateAbs {
		kind = TimestampAbs
	}
	val := TimestampVal{
		Year: date.Year, Month: date.Month, Day: date.Day,
		Hour: clock.Hour, Min: clock.Min, Sec: clock.Sec,
	}
	return mergeTokens(kind, val, " ", toks...), true
}

// yearRange merges "1914-1918" (already split into year, dash, year by
// the particle stage) back into a single year-range token. Only adjacent
// tokens merge; "1914 -1918" stays two years.
func (d *dateParser) yearRange(t Token) (Token, bool) {
	p0, ok := d.la.Peek(0)
	if !ok || p0.Kind != Punctuation || !isDashRun(p0.Txt) || mergeJoiner(p0) != "" {
		return t, false
	}
	p1, ok := d.la.Peek(1)
	if !ok || p1.Kind != Year || mergeJoiner(p1) != "" {
		return t, false
	}
	d.la.Skip(2)
	merged := mergeTokens(Year, t.Val, "", t, p0, p1)
	if d.opts.Normalize {
		merged = withTxt(merged, t.Txt+"–"+p1.Txt)
	}
	return merged, true
}

// yearEpoch folds "874 f.Kr." / "874 e.Kr." into a single year token,
// negative for BCE.
func (d *dateParser) yearEpoch(t Token) (Token, bool) {
	p0, ok := d.la.Peek(0)
	if !ok || p0.Kind != Word {
		return t, false
	}
	y := t.Val.(YearVal).Y
	switch p0.Txt {
	case "f.Kr.":
		y = -y
	case "e.Kr.":
	default:
		return t, false
	}
	d.la.Skip(1)
	return mergeTokens(Year, YearVal{Y: y}, " ", t, p0), true
}

// isValidDate checks a Gregorian date. A zero year or day means
// "unspecified" and is not checked; the month must always be 1..12. An
// unspecified year admits February 29th.
func isValidDate(year, month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	if day == 0 {
		return true
	}
	if day < 1 || day > monthLength(year, month) {
		return false
	}
	return true
}

func monthLength(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	}
	// February
	if year == 0 || isLeapYear(year) {
		return 29
	}
	return 28
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
