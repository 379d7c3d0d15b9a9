package toklex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contentTokens runs the full pipeline and drops the sentence markers.
func contentTokens(input string, opts Options) []Token {
	var toks []Token
	for _, t := range Tokenize(input, opts).All() {
		if !t.Kind.Sentinel() {
			toks = append(toks, t)
		}
	}
	return toks
}

func TestOrdinalMonth(t *testing.T) {
	toks := contentTokens("3. janúar", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, DateRel, toks[0].Kind)
	assert.Equal(t, "3. janúar", toks[0].Txt)
	assert.Equal(t, DateVal{Month: 1, Day: 3}, toks[0].Val)

	// no whitespace in the source; the normalized surface still gets one
	toks = contentTokens("3.janúar", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, "3. janúar", toks[0].Txt)
	assert.Equal(t, "3.janúar", toks[0].Original)

	// capitalized month after an ordinal is the month, not a name
	toks = contentTokens("17. Ágúst", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, DateRel, toks[0].Kind)
	assert.Equal(t, DateVal{Month: 8, Day: 17}, toks[0].Val)
}

func TestOrdinalMonthYear(t *testing.T) {
	toks := contentTokens("17. júní 1944", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, DateAbs, toks[0].Kind)
	assert.Equal(t, "17. júní 1944", toks[0].Txt)
	assert.Equal(t, DateVal{Year: 1944, Month: 6, Day: 17}, toks[0].Val)
}

func TestMonthYear(t *testing.T) {
	toks := contentTokens("janúar 2020", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, DateRel, toks[0].Kind)
	assert.Equal(t, DateVal{Year: 2020, Month: 1}, toks[0].Val)
}

func TestInvalidDateNotMerged(t *testing.T) {
	// the 30th of February does not exist; tokens pass through unchanged
	toks := contentTokens("30. febrúar", DefaultOptions())
	require.Len(t, toks, 2)
	assert.Equal(t, Ordinal, toks[0].Kind)
	assert.Equal(t, Word, toks[1].Kind)

	// numeric date 31/02 is not read as a relative date
	toks = contentTokens("31/02", DefaultOptions())
	require.NotEqual(t, DateRel, toks[0].Kind)
}

func TestTimestamps(t *testing.T) {
	toks := contentTokens("12.11.2024 kl. 15:30", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, TimestampAbs, toks[0].Kind)
	assert.Equal(t, TimestampVal{Year: 2024, Month: 11, Day: 12, Hour: 15, Min: 30}, toks[0].Val)

	toks = contentTokens("12.11. kl. 15:30", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, TimestampRel, toks[0].Kind)
	assert.Equal(t, TimestampVal{Month: 11, Day: 12, Hour: 15, Min: 30}, toks[0].Val)
}

func TestClockExpressions(t *testing.T) {
	toks := contentTokens("kl. 15:30", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, Time, toks[0].Kind)
	assert.Equal(t, "kl. 15:30", toks[0].Txt)
	assert.Equal(t, TimeVal{Hour: 15, Min: 30}, toks[0].Val)

	toks = contentTokens("klukkan tvö", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, Time, toks[0].Kind)
	assert.Equal(t, TimeVal{Hour: 2}, toks[0].Val)

	toks = contentTokens("klukkan hálf tvö", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, Time, toks[0].Kind)
	assert.Equal(t, "klukkan hálf tvö", toks[0].Txt)
	assert.Equal(t, TimeVal{Hour: 1, Min: 30}, toks[0].Val)
}

func TestYearRangeMerge(t *testing.T) {
	toks := contentTokens("1914-1918", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, Year, toks[0].Kind)
	assert.Equal(t, "1914-1918", toks[0].Txt)
	assert.Equal(t, YearVal{Y: 1914}, toks[0].Val)

	opts := DefaultOptions()
	opts.Normalize = true
	toks = contentTokens("1914-1918", opts)
	require.Len(t, toks, 1)
	assert.Equal(t, "1914–1918", toks[0].Txt)
	assert.Equal(t, "1914-1918", toks[0].Original)

	// spaced years stay apart
	toks = contentTokens("1914 -1918", DefaultOptions())
	require.Len(t, toks, 3)
	assert.Equal(t, Year, toks[0].Kind)
	assert.Equal(t, Year, toks[2].Kind)
}

func TestYearEpoch(t *testing.T) {
	toks := contentTokens("874 f.Kr.", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, Year, toks[0].Kind)
	assert.Equal(t, YearVal{Y: -874}, toks[0].Val)

	toks = contentTokens("1944 e.Kr.", DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, YearVal{Y: 1944}, toks[0].Val)
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, isValidDate(2024, 2, 29))
	assert.False(t, isValidDate(2023, 2, 29))
	assert.True(t, isValidDate(2000, 2, 29))
	assert.False(t, isValidDate(1900, 2, 29))
	assert.False(t, isValidDate(2024, 4, 31))
	assert.False(t, isValidDate(2024, 13, 1))
	assert.False(t, isValidDate(2024, 0, 1))
	// an unspecified year admits a leap day
	assert.True(t, isValidDate(0, 2, 29))
}
