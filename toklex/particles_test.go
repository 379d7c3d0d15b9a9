package toklex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// particleTokens runs the first two stages only.
func particleTokens(input string, opts Options) []Token {
	return drain(newParticleParser(newRawScanner(input, opts), DefaultAbbrevDict(), opts))
}

func TestParticleClassification(t *testing.T) {
	test := func(input string, kind Kind, txt string, val Value) func(*testing.T) {
		return func(t *testing.T) {
			toks := particleTokens(input, DefaultOptions())
			require.NotEmpty(t, toks)
			assert.Equal(t, kind, toks[0].Kind)
			assert.Equal(t, txt, toks[0].Txt)
			if val != nil {
				assert.Equal(t, val, toks[0].Val)
			}
		}
	}

	t.Run("", test("14:30", Time, "14:30", TimeVal{Hour: 14, Min: 30}))
	t.Run("", test("14:30:59", Time, "14:30:59", TimeVal{Hour: 14, Min: 30, Sec: 59}))
	t.Run("", test("25:30", Unknown, "25:30", nil))

	t.Run("", test("2024-11-12", DateAbs, "2024-11-12", DateVal{Year: 2024, Month: 11, Day: 12}))
	t.Run("", test("12/11/2024", DateAbs, "12/11/2024", DateVal{Year: 2024, Month: 11, Day: 12}))
	t.Run("", test("2024/11/12", DateAbs, "2024/11/12", DateVal{Year: 2024, Month: 11, Day: 12}))
	t.Run("", test("12.11.2024", DateAbs, "12.11.2024", DateVal{Year: 2024, Month: 11, Day: 12}))
	t.Run("", test("12/11", DateRel, "12/11", DateVal{Month: 11, Day: 12}))
	t.Run("", test("12.11.", DateRel, "12.11.", DateVal{Month: 11, Day: 12}))

	t.Run("", test("120674-3389", SSN, "120674-3389", StringVal{S: "120674-3389"}))
	t.Run("", test("552-1234", Telno, "552-1234", TelVal{Number: "552-1234", CC: "354"}))
	t.Run("", test("5521234", Telno, "552-1234", TelVal{Number: "552-1234", CC: "354"}))

	t.Run("", test("https://mbl.is/frettir", URL, "https://mbl.is/frettir", nil))
	t.Run("", test("www.mbl.is", URL, "www.mbl.is", nil))
	t.Run("", test("jon@mbl.is", Email, "jon@mbl.is", nil))
	t.Run("", test("mbl.is", Domain, "mbl.is", nil))
	t.Run("", test("#sumar", Hashtag, "#sumar", nil))
	t.Run("", test("@jon", Username, "@jon", StringVal{S: "jon"}))

	t.Run("", test("42%", Percent, "42%", PercentVal{Float: 42}))
	t.Run("", test("12‰", Percent, "12‰", PercentVal{Float: 1.2}))

	t.Run("", test("123-456-789", SerialNumber, "123-456-789", StringVal{S: "123-456-789"}))
	t.Run("", test("10b", NumWLetter, "10b", NumLetterVal{N: 10, Letter: "b"}))

	t.Run("", test("3.", Ordinal, "3.", OrdinalVal{N: 3}))
	t.Run("", test("17.", Ordinal, "17.", OrdinalVal{N: 17}))
	t.Run("", test("XIV.", Ordinal, "XIV.", OrdinalVal{N: 14}))
	t.Run("", test("MMXX.", Ordinal, "MMXX.", OrdinalVal{N: 2020}))

	t.Run("", test("42", Number, "42", NumberVal{Float: 42}))
	t.Run("", test("-5", Number, "-5", NumberVal{Float: -5}))
	t.Run("", test("30.000", Number, "30.000", NumberVal{Float: 30000}))
	t.Run("", test("3,14", Number, "3,14", NumberVal{Float: 3.14}))
	t.Run("", test("½", Number, "½", NumberVal{Float: 0.5}))
	t.Run("", test("1918", Year, "1918", YearVal{Y: 1918}))
	t.Run("", test("2500", Number, "2500", NumberVal{Float: 2500}))

	t.Run("", test("H2O", Molecule, "H2O", nil))
	t.Run("", test("CO2", Molecule, "CO2", nil))

	t.Run("", test("orð", Word, "orð", nil))
	t.Run("", test("1sti", Word, "1sti", nil))
	t.Run("", test("3ja", Word, "3ja", nil))

	t.Run("", test(",", Punctuation, ",", PunctVal{Space: SpaceRight, Norm: ","}))
	t.Run("", test("...", Punctuation, "...", PunctVal{Space: SpaceRight, Norm: "…"}))
}

func TestParticleAbbreviations(t *testing.T) {
	toks := particleTokens("sl.", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, Word, toks[0].Kind)
	meanings, ok := toks[0].Val.(MeaningsVal)
	require.True(t, ok)
	require.NotEmpty(t, meanings)
	assert.Equal(t, "síðastliðinn", meanings[0].Wordform)

	// multi-period abbreviation stays one token, period attached
	toks = particleTokens("o.s.frv.", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, "o.s.frv.", toks[0].Txt)

	// wrong-dot form corrected in the normalized surface only
	toks = particleTokens("osfrv.", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, "o.s.frv.", toks[0].Txt)
	assert.Equal(t, "osfrv.", toks[0].Original)

	// sentence-initial capitalization matches but is not rewritten
	toks = particleTokens("Sl.", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, "Sl.", toks[0].Txt)
	_, ok = toks[0].Val.(MeaningsVal)
	assert.True(t, ok)
}

func TestParticleTrailingDot(t *testing.T) {
	// unknown word: the period splits off
	toks := particleTokens("rafbíl.", DefaultOptions())
	require.Len(t, toks, 2)
	assert.Equal(t, Word, toks[0].Kind)
	assert.Equal(t, "rafbíl", toks[0].Txt)
	assert.Equal(t, Punctuation, toks[1].Kind)
	assert.Equal(t, ".", toks[1].Txt)
	assert.Equal(t, PunctVal{Space: SpaceRight, Norm: "."}, toks[1].Val)

	// long number: the period splits off and the digits stay a number
	toks = particleTokens("30.000.", DefaultOptions())
	require.Len(t, toks, 2)
	assert.Equal(t, Number, toks[0].Kind)
	assert.Equal(t, NumberVal{Float: 30000}, toks[0].Val)

	// four-digit year keeps its kind
	toks = particleTokens("1918.", DefaultOptions())
	require.Len(t, toks, 2)
	assert.Equal(t, Year, toks[0].Kind)

	// domain at sentence end
	toks = particleTokens("mbl.is.", DefaultOptions())
	require.Len(t, toks, 2)
	assert.Equal(t, Domain, toks[0].Kind)
	assert.Equal(t, "mbl.is", toks[0].Txt)
}

func TestParticleNumberLocale(t *testing.T) {
	opts := DefaultOptions()
	opts.ConvertNumbers = true
	toks := particleTokens("1,234.56", opts)
	require.Len(t, toks, 1)
	assert.Equal(t, Number, toks[0].Kind)
	assert.Equal(t, "1.234,56", toks[0].Txt)
	assert.Equal(t, "1,234.56", toks[0].Original)
	assert.Equal(t, NumberVal{Float: 1234.56}, toks[0].Val)
}

func TestParticleYearRange(t *testing.T) {
	// adjacent years split into year-dash-year for the date stage
	toks := particleTokens("1914-1918", DefaultOptions())
	require.Len(t, toks, 3)
	assert.Equal(t, Year, toks[0].Kind)
	assert.Equal(t, Punctuation, toks[1].Kind)
	assert.Equal(t, Year, toks[2].Kind)

	// a dash before digits after a year is not a minus sign
	toks = particleTokens("1914 -1918", DefaultOptions())
	require.Len(t, toks, 3)
	assert.Equal(t, Year, toks[0].Kind)
	assert.Equal(t, Punctuation, toks[1].Kind)
	assert.Equal(t, Year, toks[2].Kind)
	assert.Equal(t, YearVal{Y: 1918}, toks[2].Val)
}

func TestParticleNumberUnitSplit(t *testing.T) {
	toks := particleTokens("64kWst", DefaultOptions())
	require.Len(t, toks, 2)
	assert.Equal(t, Number, toks[0].Kind)
	assert.Equal(t, "64", toks[0].Txt)
	assert.Equal(t, Word, toks[1].Kind)
	assert.Equal(t, "kWst", toks[1].Txt)
	assert.Equal(t, "64kWst", toks[0].Original+toks[1].Original)
}

func TestParseNumber(t *testing.T) {
	test := func(s string, convert bool, want float64, wantNorm string) func(*testing.T) {
		return func(t *testing.T) {
			got, norm, ok := parseNumber(s, convert)
			require.True(t, ok)
			assert.Equal(t, want, got)
			assert.Equal(t, wantNorm, norm)
		}
	}
	t.Run("", test("42", false, 42, "42"))
	t.Run("", test("-42", false, -42, "-42"))
	t.Run("", test("1.234", false, 1234, "1.234"))
	t.Run("", test("1.234.567", false, 1234567, "1.234.567"))
	t.Run("", test("1.234,56", false, 1234.56, "1.234,56"))
	t.Run("", test("3,14", false, 3.14, "3,14"))
	t.Run("", test("3.14", false, 3.14, "3.14"))
	t.Run("", test("1,234.56", true, 1234.56, "1.234,56"))
	t.Run("", test("1,234,567", true, 1234567, "1.234.567"))

	_, _, ok := parseNumber("12a", false)
	assert.False(t, ok)
	_, _, ok = parseNumber("1.23.456", false)
	assert.False(t, ok)
}

func TestParseRoman(t *testing.T) {
	for s, want := range map[string]int{
		"I": 1, "IV": 4, "IX": 9, "XIV": 14, "XL": 40,
		"XC": 90, "CM": 900, "MMXX": 2020, "MMM": 3000,
	} {
		got, ok := parseRoman(s)
		require.True(t, ok, s)
		assert.Equal(t, want, got, s)
	}
	for _, s := range []string{"", "IIII", "VX", "ABC", "MMMM"} {
		_, ok := parseRoman(s)
		assert.False(t, ok, s)
	}
}
