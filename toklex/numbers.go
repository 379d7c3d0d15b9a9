package toklex

import (
	"regexp"
	"strconv"
	"strings"
)

// Number surface parsing. The default locale is Icelandic: '.' groups
// thousands and ',' marks the decimal. With ConvertNumbers the English
// locale is accepted on input and the normalized surface is rewritten to
// Icelandic form. An ambiguous single-group string is read according to
// the selected locale.

var (
	reNumIcelandic = regexp.MustCompile(`^-?\d{1,3}(?:\.\d{3})+(?:,\d+)?$`)
	reNumEnglish   = regexp.MustCompile(`^-?\d{1,3}(?:,\d{3})+(?:\.\d+)?$`)
	reNumPlain     = regexp.MustCompile(`^-?\d+$`)
	reNumDecimalIS = regexp.MustCompile(`^-?\d+,\d+$`)
	reNumDecimalEN = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// parseNumber reads a numeric surface. It returns the value, the
// normalized (Icelandic-locale) surface, and whether the surface was a
// number at all.
func parseNumber(s string, convert bool) (float64, string, bool) {
	switch {
	case reNumPlain.MatchString(s):
		v, err := strconv.ParseFloat(s, 64)
		return v, s, err == nil
	case reNumIcelandic.MatchString(s):
		v, err := strconv.ParseFloat(icelandicToFloatForm(s), 64)
		return v, s, err == nil
	case reNumDecimalIS.MatchString(s):
		v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
		return v, s, err == nil
	case convert && reNumEnglish.MatchString(s):
		v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
		return v, englishToIcelandicForm(s), err == nil
	case convert && reNumDecimalEN.MatchString(s):
		v, err := strconv.ParseFloat(s, 64)
		return v, strings.Replace(s, ".", ",", 1), err == nil
	case !convert && reNumDecimalEN.MatchString(s):
		// "3.14" has no valid Icelandic grouping; read the dot as a
		// decimal point but leave the surface alone.
		v, err := strconv.ParseFloat(s, 64)
		return v, s, err == nil
	}
	return 0, "", false
}

func icelandicToFloatForm(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.Replace(s, ",", ".", 1)
}

func englishToIcelandicForm(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ',':
			b.WriteRune('.')
		case '.':
			b.WriteRune(',')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fractionGlyphs maps Unicode vulgar fraction characters to their exact
// rational value.
var fractionGlyphs = map[rune]float64{
	'¼': 1.0 / 4, '½': 1.0 / 2, '¾': 3.0 / 4,
	'⅐': 1.0 / 7, '⅑': 1.0 / 9, '⅒': 1.0 / 10,
	'⅓': 1.0 / 3, '⅔': 2.0 / 3,
	'⅕': 1.0 / 5, '⅖': 2.0 / 5, '⅗': 3.0 / 5, '⅘': 4.0 / 5,
	'⅙': 1.0 / 6, '⅚': 5.0 / 6,
	'⅛': 1.0 / 8, '⅜': 3.0 / 8, '⅝': 5.0 / 8, '⅞': 7.0 / 8,
}

var romanValues = map[byte]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

var reRoman = regexp.MustCompile(`^M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// parseRoman reads a Roman numeral in the range I..MMM.
func parseRoman(s string) (int, bool) {
	if s == "" || !reRoman.MatchString(s) {
		return 0, false
	}
	total := 0
	for i := 0; i < len(s); i++ {
		v := romanValues[s[i]]
		if i+1 < len(s) && romanValues[s[i+1]] > v {
			total -= v
		} else {
			total += v
		}
	}
	if total < 1 || total > 3000 {
		return 0, false
	}
	return total, true
}
