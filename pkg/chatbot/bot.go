package chatbot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/passguard/pkg/generator"
	"github.com/dmitrymomot/passguard/pkg/logger"
	"github.com/dmitrymomot/passguard/pkg/strength"
	"github.com/dmitrymomot/passguard/pkg/suggestion"
)

// Parameters of the password produced for IntentGenerate.
const (
	GeneratedLength         = 16
	GeneratedIncludeSpecial = true
)

// PasswordGenerator produces a random password.
type PasswordGenerator interface {
	Generate(length int, includeSpecial bool) string
}

// SuggestionBuilder produces the labeled suggestion set.
type SuggestionBuilder interface {
	Build() []suggestion.Suggestion
}

// Bot answers chat input. It is safe for concurrent use when its
// collaborators are.
type Bot struct {
	classifier  *Classifier
	generator   PasswordGenerator
	suggestions SuggestionBuilder
	typingDelay time.Duration
	log         *slog.Logger
}

// Option configures a Bot.
type Option func(*Bot)

// WithClassifier sets the input classifier.
func WithClassifier(c *Classifier) Option {
	return func(b *Bot) {
		if c != nil {
			b.classifier = c
		}
	}
}

// WithGenerator sets the generator used for IntentGenerate.
func WithGenerator(g PasswordGenerator) Option {
	return func(b *Bot) {
		if g != nil {
			b.generator = g
		}
	}
}

// WithSuggestionBuilder sets the builder used for IntentSuggest.
func WithSuggestionBuilder(s SuggestionBuilder) Option {
	return func(b *Bot) {
		if s != nil {
			b.suggestions = s
		}
	}
}

// WithTypingDelay makes Reply wait d before answering.
func WithTypingDelay(d time.Duration) Option {
	return func(b *Bot) {
		b.typingDelay = max(d, 0)
	}
}

// WithLogger sets the logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bot) {
		if l != nil {
			b.log = l
		}
	}
}

// NewBot creates a Bot with default collaborators.
func NewBot(opts ...Option) *Bot {
	gen := generator.New()
	b := &Bot{
		classifier:  NewClassifier(),
		generator:   gen,
		suggestions: suggestion.NewBuilder(suggestion.WithGenerator(gen)),
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Classifier returns the bot's classifier.
func (b *Bot) Classifier() *Classifier {
	return b.classifier
}

// Reply classifies input and composes the bot's answer.
// It returns ErrEmptyInput for blank input and the context error if ctx ends
// during the typing delay.
func (b *Bot) Reply(ctx context.Context, input string) (Message, error) {
	if strings.TrimSpace(input) == "" {
		return Message{}, ErrEmptyInput
	}

	start := time.Now()
	if err := b.wait(ctx); err != nil {
		return Message{}, err
	}

	intent := b.classifier.Classify(input)
	msg := b.compose(intent, input)

	attrs := []any{
		logger.Component("chatbot"),
		logger.Intent(string(intent)),
		logger.Duration(time.Since(start)),
	}
	if msg.Analysis != nil {
		attrs = append(attrs, logger.Score(msg.Analysis.Score), logger.Strength(string(msg.Analysis.Strength)))
	}
	b.log.DebugContext(ctx, "chat reply composed", attrs...)

	return msg, nil
}

func (b *Bot) compose(intent Intent, input string) Message {
	switch intent {
	case IntentSuggest:
		msg := newBotMessage(intent, suggestText)
		msg.Suggestions = b.suggestions.Build()
		return msg

	case IntentGenerate:
		pwd := b.generator.Generate(GeneratedLength, GeneratedIncludeSpecial)
		a := strength.Analyze(pwd)
		msg := newBotMessage(intent, generatedText(pwd, a))
		msg.Analysis = &a
		return msg

	case IntentAnalyze:
		a := strength.Analyze(input)
		msg := newBotMessage(intent, analysisText(a))
		msg.Analysis = &a
		return msg

	default:
		return newBotMessage(IntentHelp, helpText)
	}
}

func (b *Bot) wait(ctx context.Context) error {
	if b.typingDelay <= 0 {
		return nil
	}
	t := time.NewTimer(b.typingDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
