package cmd

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ordstofa/tokka"
)

// Config is the optional tokka.yaml configuration file: default option
// values plus the path of an abbreviation file. Explicit command line
// flags override it. Option fields are pointers so that a partial file
// only overrides the options it actually mentions; anything absent keeps
// the documented default.
type Config struct {
	Options struct {
		ConvertNumbers         *bool `yaml:"convert_numbers"`
		ConvertMeasurements    *bool `yaml:"convert_measurements"`
		ReplaceCompositeGlyphs *bool `yaml:"replace_composite_glyphs"`
		ReplaceHTMLEscapes     *bool `yaml:"replace_html_escapes"`
		OneSentPerLine         *bool `yaml:"one_sent_per_line"`
		Original               *bool `yaml:"original"`
		CoalescePercent        *bool `yaml:"coalesce_percent"`
		Normalize              *bool `yaml:"normalize"`
	} `yaml:"options"`
	AbbrevFile string `yaml:"abbrev_file"`
}

func (c Config) options() tokka.Options {
	opts := tokka.DefaultOptions()
	overlay := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	overlay(&opts.ConvertNumbers, c.Options.ConvertNumbers)
	overlay(&opts.ConvertMeasurements, c.Options.ConvertMeasurements)
	overlay(&opts.ReplaceCompositeGlyphs, c.Options.ReplaceCompositeGlyphs)
	overlay(&opts.ReplaceHTMLEscapes, c.Options.ReplaceHTMLEscapes)
	overlay(&opts.OneSentPerLine, c.Options.OneSentPerLine)
	overlay(&opts.Original, c.Options.Original)
	overlay(&opts.CoalescePercent, c.Options.CoalescePercent)
	overlay(&opts.Normalize, c.Options.Normalize)
	return opts
}

// loadConfig reads the named file, or ./tokka.yaml when none is given.
// A missing default file is not an error; a missing named file is.
func loadConfig(path string) (Config, error) {
	var result Config
	named := path != ""
	if !named {
		path = "tokka.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !named && errors.Is(err, os.ErrNotExist) {
			return result, nil
		}
		return result, err
	}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return result, err
	}
	return result, nil
}
