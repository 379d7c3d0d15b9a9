package toklex

// Kind classifies a token. The numeric values are part of the wire format
// (CSV output, downstream consumers) and must never be renumbered.
type Kind int

const (
	Punctuation  Kind = 1
	Time         Kind = 2
	Date         Kind = 3 // reserved
	Year         Kind = 4
	Number       Kind = 5
	Word         Kind = 6
	Telno        Kind = 7
	Percent      Kind = 8
	URL          Kind = 9
	Ordinal      Kind = 10
	Timestamp    Kind = 11 // reserved
	Currency     Kind = 12 // reserved
	Amount       Kind = 13
	Person       Kind = 14 // reserved
	Email        Kind = 15
	Entity       Kind = 16 // reserved
	Unknown      Kind = 17
	DateAbs      Kind = 18
	DateRel      Kind = 19
	TimestampAbs Kind = 20
	TimestampRel Kind = 21
	Measurement  Kind = 22
	NumWLetter   Kind = 23
	Domain       Kind = 24
	Hashtag      Kind = 25
	Molecule     Kind = 26
	SSN          Kind = 27
	Username     Kind = 28
	SerialNumber Kind = 29
	Company      Kind = 30 // reserved

	// Sentinel kinds. S_SPLIT is internal to the pipeline; the others
	// delimit sentences and paragraphs in the output stream.
	SSplit Kind = 10000
	PBegin Kind = 10001
	PEnd   Kind = 10002
	SBegin Kind = 11001
	SEnd   Kind = 11002
	XEnd   Kind = 12001
)

func (k Kind) String() string {
	return kindToDescription[k]
}

func (k Kind) GoString() string {
	return kindToDescription[k]
}

// Sentinel reports whether the kind is a sentence/paragraph marker rather
// than a content token.
func (k Kind) Sentinel() bool {
	return k >= SSplit
}

func init() {
	// make sure we panic if a description isn't declared
	for k := Punctuation; k <= Company; k++ {
		if kindToDescription[k] == "" {
			panic("you have not updated kindToDescription")
		}
	}
}

var kindToDescription = map[Kind]string{
	Punctuation:  "PUNCTUATION",
	Time:         "TIME",
	Date:         "DATE",
	Year:         "YEAR",
	Number:       "NUMBER",
	Word:         "WORD",
	Telno:        "TELNO",
	Percent:      "PERCENT",
	URL:          "URL",
	Ordinal:      "ORDINAL",
	Timestamp:    "TIMESTAMP",
	Currency:     "CURRENCY",
	Amount:       "AMOUNT",
	Person:       "PERSON",
	Email:        "EMAIL",
	Entity:       "ENTITY",
	Unknown:      "UNKNOWN",
	DateAbs:      "DATEABS",
	DateRel:      "DATEREL",
	TimestampAbs: "TIMESTAMPABS",
	TimestampRel: "TIMESTAMPREL",
	Measurement:  "MEASUREMENT",
	NumWLetter:   "NUMWLETTER",
	Domain:       "DOMAIN",
	Hashtag:      "HASHTAG",
	Molecule:     "MOLECULE",
	SSN:          "SSN",
	Username:     "USERNAME",
	SerialNumber: "SERIALNUMBER",
	Company:      "COMPANY",

	SSplit: "SPLIT SENT",
	PBegin: "BEGIN PARA",
	PEnd:   "END PARA",
	SBegin: "BEGIN SENT",
	SEnd:   "END SENT",
	XEnd:   "END TOKEN",
}
