package toklex

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
)

// DumpTokens writes a readable representation of a token stream, one
// token per line, for debugging pipeline stages.
func DumpTokens(w io.Writer, toks []Token) {
	for _, t := range toks {
		if t.Val != nil {
			fmt.Fprintf(w, "%s %q %s\n", t.Kind, t.Txt, repr.String(t.Val))
		} else {
			fmt.Fprintf(w, "%s %q\n", t.Kind, t.Txt)
		}
	}
}
