package chatbot

import (
	_ "embed"
	"errors"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var defaultKeywordsYAML []byte

// Keywords is the command keyword table.
type Keywords struct {
	Suggest  []string `yaml:"suggest" json:"suggest"`
	Generate []string `yaml:"generate" json:"generate"`
}

var defaultKeywords = sync.OnceValue(func() Keywords {
	kw, err := ParseKeywords(defaultKeywordsYAML)
	if err != nil {
		panic(err)
	}
	return kw
})

// DefaultKeywords returns the embedded keyword table.
func DefaultKeywords() Keywords {
	kw := defaultKeywords()
	return Keywords{
		Suggest:  append([]string(nil), kw.Suggest...),
		Generate: append([]string(nil), kw.Generate...),
	}
}

// ParseKeywords decodes a YAML keyword table.
// Keywords are lower-cased and trimmed; blank entries are dropped.
func ParseKeywords(data []byte) (Keywords, error) {
	var kw Keywords
	if err := yaml.Unmarshal(data, &kw); err != nil {
		return Keywords{}, errors.Join(ErrFailedToParseKeywords, err)
	}
	kw = kw.normalize()
	if len(kw.Suggest) == 0 || len(kw.Generate) == 0 {
		return Keywords{}, ErrNoKeywords
	}
	return kw, nil
}

// LoadKeywords reads and parses a YAML keyword file.
func LoadKeywords(path string) (Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Keywords{}, errors.Join(ErrFailedToReadKeywords, err)
	}
	return ParseKeywords(data)
}

func (k Keywords) normalize() Keywords {
	return Keywords{
		Suggest:  normalizeList(k.Suggest),
		Generate: normalizeList(k.Generate),
	}
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(fold(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// fold lower-cases s for keyword matching.
// A Caser is stateful, so one is created per call.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
