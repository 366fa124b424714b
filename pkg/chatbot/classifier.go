package chatbot

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Intent is the action selected for a chat input.
type Intent string

const (
	IntentSuggest  Intent = "suggest"
	IntentGenerate Intent = "generate"
	IntentAnalyze  Intent = "analyze"
	IntentHelp     Intent = "help"
)

// Bounds of input treated as a literal password: [MinPasswordLength, MaxPasswordLength).
const (
	MinPasswordLength = 4
	MaxPasswordLength = 50
)

// Classifier selects an Intent for chat input.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	keywords Keywords
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithKeywords replaces the default keyword table.
// Tables missing either keyword set are ignored.
func WithKeywords(kw Keywords) ClassifierOption {
	return func(c *Classifier) {
		kw = kw.normalize()
		if len(kw.Suggest) > 0 && len(kw.Generate) > 0 {
			c.keywords = kw
		}
	}
}

// NewClassifier creates a Classifier using DefaultKeywords unless overridden.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{keywords: DefaultKeywords()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the intent for input.
// Suggest keywords win over generate keywords when both are present.
func (c *Classifier) Classify(input string) Intent {
	folded := fold(input)
	switch {
	case containsAny(folded, c.keywords.Suggest):
		return IntentSuggest
	case containsAny(folded, c.keywords.Generate):
		return IntentGenerate
	case LooksLikePassword(input):
		return IntentAnalyze
	default:
		return IntentHelp
	}
}

// LooksLikePassword reports whether input is 4 to 49 characters long and
// contains no whitespace.
func LooksLikePassword(input string) bool {
	n := utf8.RuneCountInString(input)
	if n < MinPasswordLength || n >= MaxPasswordLength {
		return false
	}
	return !strings.ContainsFunc(input, unicode.IsSpace)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
