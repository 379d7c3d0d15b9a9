package tokka

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ordstofa/tokka/toklex"
)

// WriteSentences writes the default line-per-sentence output.
func WriteSentences(w io.Writer, text string, opts Options) error {
	bw := bufio.NewWriter(w)
	ss := toklex.SplitIntoSentences(text, opts)
	for {
		sent, ok := ss.Next()
		if !ok {
			break
		}
		if _, err := fmt.Fprintln(bw, sent); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCSV writes one row per token: kind,txt,value,original,offsets.
// Tuples are encoded a|b|c and offsets joined with dashes; sentences are
// separated by an all-empty row with kind 0.
func WriteCSV(w io.Writer, stream *toklex.Stream, opts Options) error {
	cw := csv.NewWriter(w)
	for {
		t, ok := stream.Next()
		if !ok {
			break
		}
		switch t.Kind {
		case toklex.SBegin, toklex.PBegin, toklex.PEnd, toklex.XEnd:
			continue
		case toklex.SEnd:
			if err := cw.Write([]string{"0", "", "", "", ""}); err != nil {
				return err
			}
			continue
		}
		txt := t.Txt
		if opts.Original {
			txt = t.Original
		}
		row := []string{
			strconv.Itoa(int(t.Kind)),
			txt,
			csvValue(t.Val),
			t.Original,
			joinOffsets(t.Offsets),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func joinOffsets(offs []int) string {
	if len(offs) == 0 {
		return ""
	}
	parts := make([]string, len(offs))
	for i, o := range offs {
		parts[i] = strconv.Itoa(o)
	}
	return strings.Join(parts, "-")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// csvValue flattens a token value into the a|b|c tuple form.
func csvValue(v toklex.Value) string {
	switch val := v.(type) {
	case nil:
		return ""
	case toklex.TimeVal:
		return fmt.Sprintf("%d|%d|%d", val.Hour, val.Min, val.Sec)
	case toklex.DateVal:
		return fmt.Sprintf("%d|%d|%d", val.Year, val.Month, val.Day)
	case toklex.TimestampVal:
		return fmt.Sprintf("%d|%d|%d|%d|%d|%d", val.Year, val.Month, val.Day, val.Hour, val.Min, val.Sec)
	case toklex.NumberVal:
		return formatFloat(val.Float)
	case toklex.OrdinalVal:
		return strconv.Itoa(val.N)
	case toklex.YearVal:
		return strconv.Itoa(val.Y)
	case toklex.PercentVal:
		return formatFloat(val.Float)
	case toklex.NumLetterVal:
		return fmt.Sprintf("%d|%s", val.N, val.Letter)
	case toklex.TelVal:
		return val.Number + "|" + val.CC
	case toklex.AmountVal:
		return formatFloat(val.Amount) + "|" + val.ISO
	case toklex.MeasureVal:
		return val.Unit + "|" + formatFloat(val.Value)
	case toklex.PunctVal:
		return strconv.Itoa(int(val.Space)) + "|" + val.Norm
	case toklex.StringVal:
		return val.S
	case toklex.MeaningsVal:
		parts := make([]string, len(val))
		for i, m := range val {
			parts[i] = strings.Join([]string{
				m.Wordform, m.Variant, m.POS, m.Category, m.Stem, m.Inflection,
			}, "|")
		}
		return strings.Join(parts, ";")
	}
	return ""
}

type jsonToken struct {
	K string `json:"k"`
	T string `json:"t,omitempty"`
	V any    `json:"v,omitempty"`
	O string `json:"o,omitempty"`
	S string `json:"s,omitempty"`
}

// WriteJSON writes one JSON object per line per token. Sentence markers
// emit {"k":"BEGIN SENT"} and {"k":"END SENT"}.
func WriteJSON(w io.Writer, stream *toklex.Stream, opts Options) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for {
		t, ok := stream.Next()
		if !ok {
			break
		}
		if t.Kind == toklex.SSplit || t.Kind == toklex.XEnd {
			continue
		}
		jt := jsonToken{K: t.Kind.String()}
		if !t.Kind.Sentinel() {
			jt.T = t.Txt
			if opts.Original {
				jt.T = t.Original
			}
			jt.V = jsonValue(t.Val)
			jt.O = t.Original
			jt.S = joinOffsets(t.Offsets)
		}
		if err := enc.Encode(jt); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// jsonValue renders a token value as the JSON payload: tuples become
// arrays, scalars stay scalars.
func jsonValue(v toklex.Value) any {
	switch val := v.(type) {
	case nil:
		return nil
	case toklex.TimeVal:
		return []int{val.Hour, val.Min, val.Sec}
	case toklex.DateVal:
		return []int{val.Year, val.Month, val.Day}
	case toklex.TimestampVal:
		return []int{val.Year, val.Month, val.Day, val.Hour, val.Min, val.Sec}
	case toklex.NumberVal:
		return val.Float
	case toklex.OrdinalVal:
		return val.N
	case toklex.YearVal:
		return val.Y
	case toklex.PercentVal:
		return val.Float
	case toklex.NumLetterVal:
		return []any{val.N, val.Letter}
	case toklex.TelVal:
		return []string{val.Number, val.CC}
	case toklex.AmountVal:
		return []any{val.Amount, val.ISO}
	case toklex.MeasureVal:
		return []any{val.Unit, val.Value}
	case toklex.PunctVal:
		return []any{int(val.Space), val.Norm}
	case toklex.MeaningsVal:
		out := make([][]string, len(val))
		for i, m := range val {
			out[i] = []string{m.Wordform, m.Variant, m.POS, m.Category, m.Stem, m.Inflection}
		}
		return out
	}
	return nil
}
