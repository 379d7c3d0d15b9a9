package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ordstofa/tokka"
	"github.com/ordstofa/tokka/toklex"
)

var (
	rootCmd = &cobra.Command{
		Use:          "tokenize [flags] [infile [outfile]]",
		Short:        "tokenize",
		SilenceUsage: true,
		Long: `Tokenizer for Icelandic text. Reads UTF-8 text from stdin or a file,
splits it into typed tokens and sentences, and writes one sentence per
line, or one token per line with --csv or --json.`,
		Args: cobra.MaximumNArgs(2),
		RunE: run,
	}

	csvOut         bool
	jsonOut        bool
	normalize      bool
	oneSentPerLine bool
	originalOut    bool
	convertMeas    bool
	coalescePct    bool
	keepGlyphs     bool
	htmlEscapes    bool
	convertNums    bool
	markParas      bool
	debugDump      bool
	abbrevFile     string
	configFile     string
)

// Execute executes the root command.
func Execute() error {
	flags := rootCmd.Flags()
	flags.BoolVar(&csvOut, "csv", false, "one token per line in CSV format")
	flags.BoolVar(&jsonOut, "json", false, "one token per line in JSON format")
	flags.BoolVarP(&normalize, "normalize", "n", false, "normalized punctuation in output surfaces")
	flags.BoolVarP(&oneSentPerLine, "one-sent-per-line", "s", false, "every newline is a sentence boundary")
	flags.BoolVarP(&originalOut, "original", "o", false, "original token surfaces in output")
	flags.BoolVarP(&convertMeas, "convert-measurements", "m", false, "normalize degree notation (200° C -> 200 °C)")
	flags.BoolVarP(&coalescePct, "coalesce-percent", "p", false, "merge a number and a following percent word")
	flags.BoolVarP(&keepGlyphs, "keep-composite-glyphs", "g", false, "do not fold combining marks into precomposed letters")
	flags.BoolVarP(&htmlEscapes, "replace-html-escapes", "e", false, "expand named HTML entities")
	flags.BoolVarP(&convertNums, "convert-numbers", "c", false, "accept English number locale, normalize to Icelandic")
	flags.BoolVar(&markParas, "mark-paragraphs", false, "wrap paragraphs in [[ ]] markers and exit")
	flags.BoolVar(&debugDump, "debug", false, "dump the token stream to stderr")
	flags.StringVar(&abbrevFile, "abbrev-file", "", "abbreviation configuration file merged over the built-in dictionary")
	flags.StringVar(&configFile, "config", "", "tokka.yaml configuration file (default: ./tokka.yaml if present)")
	rootCmd.AddCommand(versionCmd)
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	logger := logrus.StandardLogger()

	cfg, err := loadConfig(configFile)
	if err != nil {
		logger.WithError(err).Error("could not load configuration")
		return err
	}
	opts := cfg.options()
	applyFlags(cmd, &opts)

	dict := toklex.DefaultAbbrevDict()
	if path := firstNonEmpty(abbrevFile, cfg.AbbrevFile); path != "" {
		dict, err = toklex.LoadAbbrevFile(path)
		if err != nil {
			logger.WithError(err).Error("could not load abbreviation file")
			return err
		}
	}

	in := os.Stdin
	if len(args) >= 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			logger.WithError(err).Error("could not open input")
			return err
		}
		defer f.Close()
		in = f
	}
	out := os.Stdout
	if len(args) == 2 && args[1] != "-" {
		f, err := os.Create(args[1])
		if err != nil {
			logger.WithError(err).Error("could not open output")
			return err
		}
		defer f.Close()
		out = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		logger.WithError(err).Error("read failed")
		return err
	}
	text := string(data)

	if markParas {
		_, err := io.WriteString(out, tokka.MarkParagraphs(text)+"\n")
		return err
	}

	if debugDump {
		toklex.DumpTokens(os.Stderr, toklex.TokenizeWithDict(text, dict, opts).All())
	}

	stream := toklex.TokenizeWithDict(text, dict, opts)
	switch {
	case csvOut:
		err = tokka.WriteCSV(out, stream, opts)
	case jsonOut:
		err = tokka.WriteJSON(out, stream, opts)
	default:
		err = writeSentenceStream(out, stream, opts)
	}
	if err != nil {
		logger.WithError(err).Error("write failed")
	}
	return err
}

// applyFlags overrides config-file options with explicitly set flags.
func applyFlags(cmd *cobra.Command, opts *tokka.Options) {
	set := func(name string, dst *bool, val bool) {
		if cmd.Flags().Changed(name) {
			*dst = val
		}
	}
	set("normalize", &opts.Normalize, normalize)
	set("one-sent-per-line", &opts.OneSentPerLine, oneSentPerLine)
	set("original", &opts.Original, originalOut)
	set("convert-measurements", &opts.ConvertMeasurements, convertMeas)
	set("coalesce-percent", &opts.CoalescePercent, coalescePct)
	set("keep-composite-glyphs", &opts.ReplaceCompositeGlyphs, !keepGlyphs)
	set("replace-html-escapes", &opts.ReplaceHTMLEscapes, htmlEscapes)
	set("convert-numbers", &opts.ConvertNumbers, convertNums)
}

func writeSentenceStream(w io.Writer, stream *toklex.Stream, opts tokka.Options) error {
	var sent []string
	for {
		t, ok := stream.Next()
		if !ok {
			return nil
		}
		switch {
		case t.Kind == toklex.SEnd:
			if _, err := io.WriteString(w, strings.Join(sent, " ")+"\n"); err != nil {
				return err
			}
			sent = sent[:0]
		case !t.Kind.Sentinel():
			if opts.Original {
				sent = append(sent, strings.TrimSpace(t.Original))
			} else {
				sent = append(sent, t.Txt)
			}
		}
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
