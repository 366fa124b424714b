package suggestion

import (
	"github.com/dmitrymomot/passguard/pkg/generator"
	"github.com/dmitrymomot/passguard/pkg/strength"
)

// Suggestion is a generated candidate password with its analysis.
type Suggestion struct {
	Password    string            `json:"password"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Analysis    strength.Analysis `json:"analysis"`
}

// Preset describes how one suggestion is generated.
type Preset struct {
	Type           string
	Description    string
	Length         int
	IncludeSpecial bool
}

var presets = []Preset{
	{Type: "Standard", Description: "Balanced password of medium length", Length: 12, IncludeSpecial: true},
	{Type: "Enhanced", Description: "Long password with maximum protection", Length: 16, IncludeSpecial: true},
	{Type: "Simple", Description: "No special characters, for legacy systems", Length: 10, IncludeSpecial: false},
	{Type: "Maximum", Description: "Extra long, for critical data", Length: 20, IncludeSpecial: true},
}

// Presets returns a copy of the suggestion table in build order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PasswordGenerator produces a password of the given length.
type PasswordGenerator interface {
	Generate(length int, includeSpecial bool) string
}

// Builder composes a generator with the strength analyzer.
type Builder struct {
	gen PasswordGenerator
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithGenerator sets the password generator. Nil is ignored.
func WithGenerator(g PasswordGenerator) BuilderOption {
	return func(b *Builder) {
		if g != nil {
			b.gen = g
		}
	}
}

// NewBuilder creates a Builder backed by generator.New() unless overridden.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{gen: generator.New()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns one suggestion per preset, in preset order.
func (b *Builder) Build() []Suggestion {
	out := make([]Suggestion, 0, len(presets))
	for _, p := range presets {
		pwd := b.gen.Generate(p.Length, p.IncludeSpecial)
		out = append(out, Suggestion{
			Password:    pwd,
			Type:        p.Type,
			Description: p.Description,
			Analysis:    strength.Analyze(pwd),
		})
	}
	return out
}

var std = NewBuilder()

// Build returns the suggestion set using the default builder.
func Build() []Suggestion {
	return std.Build()
}
