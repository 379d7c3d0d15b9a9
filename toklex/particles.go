package toklex

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"
)

// particleParser is the second stage: it classifies each rough token in
// isolation against ordered patterns, first match winning, and splits off
// trailing punctuation that turned out not to belong to the token.
type particleParser struct {
	src      tokenSource
	dict     *AbbrevDict
	opts     Options
	out      []Token
	prevKind Kind
}

func newParticleParser(src tokenSource, dict *AbbrevDict, opts Options) *particleParser {
	return &particleParser{src: src, dict: dict, opts: opts}
}

func (p *particleParser) Next() (Token, bool) {
	for len(p.out) == 0 {
		t, ok := p.src.Next()
		if !ok {
			return Token{}, false
		}
		if t.Kind.Sentinel() {
			return t, true
		}
		p.classify(t)
	}
	t := p.out[0]
	p.out = p.out[1:]
	if !t.Kind.Sentinel() {
		p.prevKind = t.Kind
	}
	return t, true
}

var (
	reTimeTok   = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	reDateISO   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	reDateDMY   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	reDateYMD   = regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})$`)
	reDateDotted = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	reDateRelSl = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
	reDateRelDt = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.$`)
	reSSNTok    = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})-\d{4}$`)
	reTelDashed = regexp.MustCompile(`^\d{3}-\d{4}$`)
	reTelBare   = regexp.MustCompile(`^\d{7}$`)
	reHashtag   = regexp.MustCompile(`^#\pL[\pL\pN_]*$`)
	reUsername  = regexp.MustCompile(`^@[\pL\pN_]+$`)
	rePercent   = regexp.MustCompile(`^(-?\d+(?:[.,]\d+)*)([%‰])$`)
	reYearRange = regexp.MustCompile(`^(\d{4})-(\d{4})$`)
	reSerial    = regexp.MustCompile(`^\d+(?:-\d+)+$`)
	reNumLetter = regexp.MustCompile(`^(\d+)(\pL)$`)
	reNumSuffix = regexp.MustCompile(`^(-?\d+(?:[.,]\d+)*)(\PN+)$`)
	reOrdinal   = regexp.MustCompile(`^(\d{1,2})\.$`)
	reRomanOrd  = regexp.MustCompile(`^([IVXLCDM]+)\.$`)
	reNumDot    = regexp.MustCompile(`^(-?\d[\d.,]*?)\.$`)
	reMolecule  = regexp.MustCompile(`^(?:[A-Z][a-z]?\d*)+$`)
	reDomainTok = regexp.MustCompile(`^[\pL\pN-]+(?:\.[\pL\pN-]+)+$`)
	reWordTok   = regexp.MustCompile(`^-?\pL[\pL\pN’'-]*$`)
	reDigitWord = regexp.MustCompile(`^\d+\pL+$`)
)

// classify turns one rough token into one or more typed tokens, appended
// to the output queue.
func (p *particleParser) classify(t Token) {
	txt := t.Txt

	switch {
	case isPunctSurface(txt):
		t.Kind = Punctuation
		t.Val = punctValue(txt)
		p.emit(t)

	case p.classifyTime(t):
	case p.classifyDate(t):
	case p.classifySSN(t):
	case p.classifyTel(t):

	case looksLikeURL(txt):
		t.Kind = URL
		p.emit(t)

	case looksLikeEmail(txt) && validDomain(txt[strings.IndexByte(txt, '@')+1:]):
		t.Kind = Email
		p.emit(t)

	case reHashtag.MatchString(txt):
		t.Kind = Hashtag
		p.emit(t)

	case reUsername.MatchString(txt):
		t.Kind = Username
		t.Val = StringVal{S: txt[1:]}
		p.emit(t)

	case p.classifyPercent(t):
	case p.classifyYearRange(t):

	case reSerial.MatchString(txt):
		t.Kind = SerialNumber
		t.Val = StringVal{S: txt}
		p.emit(t)

	case p.classifyNumUnit(t):

	case reNumLetter.MatchString(txt):
		m := reNumLetter.FindStringSubmatch(txt)
		n, _ := strconv.Atoi(m[1])
		t.Kind = NumWLetter
		t.Val = NumLetterVal{N: n, Letter: m[2]}
		p.emit(t)

	case p.classifyOrdinal(t):
	case p.classifyNumber(t):

	case reMolecule.MatchString(txt) && strings.ContainsFunc(txt, unicode.IsDigit):
		t.Kind = Molecule
		p.emit(t)

	case reDomainTok.MatchString(txt) && validDomain(txt):
		t.Kind = Domain
		p.emit(t)

	case isUnitSurface(txt):
		// measurement unit symbols such as "°C" or "m²" that are not
		// plain words; the phrase coalescer merges them with a number
		t.Kind = Word
		p.emit(t)

	case p.classifyWord(t):
	case p.classifyDottedTail(t):

	default:
		t.Kind = Unknown
		p.emit(t)
	}
}

// classifyDottedTail retries a token whose trailing sentence period hid a
// match, e.g. a domain, year range or molecule at the end of a sentence.
// The period splits off and the base is classified on its own.
func (p *particleParser) classifyDottedTail(t Token) bool {
	base, ok := strings.CutSuffix(t.Txt, ".")
	if !ok || base == "" || strings.HasSuffix(base, ".") {
		return false
	}
	retry := reYearRange.MatchString(base) ||
		reSerial.MatchString(base) ||
		reTelDashed.MatchString(base) ||
		reTimeTok.MatchString(base) ||
		(reDomainTok.MatchString(base) && validDomain(base)) ||
		(reMolecule.MatchString(base) && strings.ContainsFunc(base, unicode.IsDigit))
	if !retry {
		return false
	}
	n := utf8.RuneCountInString(t.Txt) - 1
	left, right := splitToken(t, n, Unknown, Punctuation, nil, punctValue("."))
	p.classify(left)
	p.emit(right)
	return true
}

func (p *particleParser) emit(toks ...Token) {
	p.out = append(p.out, toks...)
}

// emitSplitDot splits the final "." off a token and emits both halves.
func (p *particleParser) emitSplitDot(t Token, leftKind Kind, leftVal Value) {
	n := utf8.RuneCountInString(t.Txt) - 1
	left, right := splitToken(t, n, leftKind, Punctuation, leftVal, punctValue("."))
	p.emit(left, right)
}

func (p *particleParser) classifyTime(t Token) bool {
	m := reTimeTok.FindStringSubmatch(t.Txt)
	if m == nil {
		return false
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	sec := 0
	if m[3] != "" {
		sec, _ = strconv.Atoi(m[3])
	}
	if h > 23 || min > 59 || sec > 59 {
		return false
	}
	t.Kind = Time
	t.Val = TimeVal{Hour: h, Min: min, Sec: sec}
	p.emit(t)
	return true
}

func (p *particleParser) classifyDate(t Token) bool {
	type form struct {
		re      *regexp.Regexp
		y, m, d int // submatch index per field, 0 for absent
	}
	for _, f := range []form{
		{reDateISO, 1, 2, 3},
		{reDateDMY, 3, 2, 1},
		{reDateYMD, 1, 2, 3},
		{reDateDotted, 3, 2, 1},
		{reDateRelSl, 0, 2, 1},
		{reDateRelDt, 0, 2, 1},
	} {
		m := f.re.FindStringSubmatch(t.Txt)
		if m == nil {
			continue
		}
		year := 0
		if f.y != 0 {
			year, _ = strconv.Atoi(m[f.y])
		}
		month, _ := strconv.Atoi(m[f.m])
		day, _ := strconv.Atoi(m[f.d])
		if !isValidDate(year, month, day) {
			continue
		}
		if f.y != 0 {
			t.Kind = DateAbs
		} else {
			t.Kind = DateRel
		}
		t.Val = DateVal{Year: year, Month: month, Day: day}
		p.emit(t)
		return true
	}
	return false
}

func (p *particleParser) classifySSN(t Token) bool {
	m := reSSNTok.FindStringSubmatch(t.Txt)
	if m == nil {
		return false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if !isValidDate(0, month, day) {
		return false
	}
	t.Kind = SSN
	t.Val = StringVal{S: t.Txt}
	p.emit(t)
	return true
}

func (p *particleParser) classifyTel(t Token) bool {
	switch {
	case reTelDashed.MatchString(t.Txt):
		t.Kind = Telno
		t.Val = TelVal{Number: t.Txt, CC: "354"}
	case reTelBare.MatchString(t.Txt):
		norm := t.Txt[:3] + "-" + t.Txt[3:]
		t = withTxt(t, norm)
		t.Kind = Telno
		t.Val = TelVal{Number: norm, CC: "354"}
	default:
		return false
	}
	p.emit(t)
	return true
}

func (p *particleParser) classifyPercent(t Token) bool {
	m := rePercent.FindStringSubmatch(t.Txt)
	if m == nil {
		return false
	}
	v, _, ok := parseNumber(m[1], p.opts.ConvertNumbers)
	if !ok {
		return false
	}
	if m[2] == "‰" {
		v /= 10
	}
	t.Kind = Percent
	t.Val = PercentVal{Float: v}
	p.emit(t)
	return true
}

// classifyYearRange splits "1914-1918" into YEAR - YEAR, and turns
// "-1918" after a year into a dash plus a second year instead of a
// negative number.
func (p *particleParser) classifyYearRange(t Token) bool {
	if m := reYearRange.FindStringSubmatch(t.Txt); m != nil {
		y1, _ := strconv.Atoi(m[1])
		y2, _ := strconv.Atoi(m[2])
		if isYearish(y1) && isYearish(y2) {
			first, rest := splitToken(t, 4, Year, Unknown, YearVal{Y: y1}, nil)
			dash, second := splitToken(rest, 1, Punctuation, Year, punctValue("-"), YearVal{Y: y2})
			p.emit(first, dash, second)
			return true
		}
	}
	if p.prevKind == Year && strings.HasPrefix(t.Txt, "-") {
		if y, err := strconv.Atoi(t.Txt[1:]); err == nil && isYearish(y) {
			dash, year := splitToken(t, 1, Punctuation, Year, punctValue("-"), YearVal{Y: y})
			p.emit(dash, year)
			return true
		}
	}
	return false
}

// classifyNumUnit splits "64kWst" into a number and a unit word for the
// phrase coalescer to merge into a MEASUREMENT.
func (p *particleParser) classifyNumUnit(t Token) bool {
	m := reNumSuffix.FindStringSubmatch(t.Txt)
	if m == nil {
		return false
	}
	if _, ok := lookupUnit(m[2]); !ok {
		return false
	}
	v, norm, ok := parseNumber(m[1], p.opts.ConvertNumbers)
	if !ok {
		return false
	}
	n := utf8.RuneCountInString(m[1])
	num, unit := splitToken(t, n, Number, Word, NumberVal{Float: v}, nil)
	if norm != m[1] {
		num = withTxt(num, norm)
	}
	p.emit(num, unit)
	return true
}

func (p *particleParser) classifyOrdinal(t Token) bool {
	if m := reOrdinal.FindStringSubmatch(t.Txt); m != nil {
		n, _ := strconv.Atoi(m[1])
		t.Kind = Ordinal
		t.Val = OrdinalVal{N: n}
		p.emit(t)
		return true
	}
	if m := reRomanOrd.FindStringSubmatch(t.Txt); m != nil {
		if n, ok := parseRoman(m[1]); ok {
			t.Kind = Ordinal
			t.Val = OrdinalVal{N: n}
			p.emit(t)
			return true
		}
	}
	// longer digit runs with a trailing period are a number or a year
	// followed by sentence punctuation
	if m := reNumDot.FindStringSubmatch(t.Txt); m != nil {
		if v, norm, ok := parseNumber(m[1], p.opts.ConvertNumbers); ok {
			kind, val := numberOrYear(m[1], v)
			p.emitSplitDotNumber(t, m[1], norm, kind, val)
			return true
		}
	}
	return false
}

func (p *particleParser) emitSplitDotNumber(t Token, body, norm string, kind Kind, val Value) {
	n := utf8.RuneCountInString(body)
	left, right := splitToken(t, n, kind, Punctuation, val, punctValue("."))
	if norm != body {
		left = withTxt(left, norm)
	}
	p.emit(left, right)
}

func (p *particleParser) classifyNumber(t Token) bool {
	if r, sz := utf8.DecodeRuneInString(t.Txt); sz == len(t.Txt) {
		if v, ok := fractionGlyphs[r]; ok {
			t.Kind = Number
			t.Val = NumberVal{Float: v}
			p.emit(t)
			return true
		}
	}
	v, norm, ok := parseNumber(t.Txt, p.opts.ConvertNumbers)
	if !ok {
		return false
	}
	kind, val := numberOrYear(t.Txt, v)
	if norm != t.Txt {
		t = withTxt(t, norm)
	}
	t.Kind = kind
	t.Val = val
	p.emit(t)
	return true
}

// numberOrYear decides whether a bare integer surface reads as a year.
func numberOrYear(surface string, v float64) (Kind, Value) {
	if len(surface) == 4 && !strings.ContainsAny(surface, ".,-") {
		if y := int(v); isYearish(y) {
			return Year, YearVal{Y: y}
		}
	}
	return Number, NumberVal{Float: v}
}

func isYearish(y int) bool {
	return y >= 1100 && y <= 2100
}

func (p *particleParser) classifyWord(t Token) bool {
	txt := t.Txt

	// abbreviation dictionary hit, surface taken with its periods;
	// a wrong form is corrected in the normalized surface, but mere
	// sentence-initial capitalization is left alone
	if meanings, canon, ok := p.dict.Lookup(txt); ok {
		if !strings.EqualFold(canon, txt) {
			t = withTxt(t, canon)
		}
		t.Kind = Word
		t.Val = MeaningsVal(meanings)
		p.emit(t)
		return true
	}

	if reWordTok.MatchString(txt) {
		t.Kind = Word
		p.emit(t)
		return true
	}

	// plain word with a trailing period that is not a known abbreviation:
	// the period is sentence punctuation
	if base, ok := strings.CutSuffix(txt, "."); ok && reWordTok.MatchString(base) {
		p.emitSplitDot(t, Word, nil)
		return true
	}

	// kludgy ordinals ("1sti", "3ja") pass through as words
	if reDigitWord.MatchString(txt) {
		t.Kind = Word
		p.emit(t)
		return true
	}

	return false
}

// validDomain reports whether the host has a known public suffix managed
// by ICANN plus at least one label in front of it.
func validDomain(host string) bool {
	host = strings.TrimSuffix(host, ".")
	suffix, icann := publicsuffix.PublicSuffix(strings.ToLower(host))
	if !icann || suffix == "" {
		return false
	}
	return len(host) > len(suffix)+1
}
