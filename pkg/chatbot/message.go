package chatbot

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/passguard/pkg/strength"
	"github.com/dmitrymomot/passguard/pkg/suggestion"
)

// Message is a chat transcript entry.
type Message struct {
	ID          uuid.UUID               `json:"id"`
	Text        string                  `json:"text"`
	IsBot       bool                    `json:"is_bot"`
	Intent      Intent                  `json:"intent,omitempty"`
	Timestamp   time.Time               `json:"timestamp"`
	Analysis    *strength.Analysis      `json:"password_analysis,omitempty"`
	Suggestions []suggestion.Suggestion `json:"password_suggestions,omitempty"`
}

// NewUserMessage wraps user input as a transcript entry.
func NewUserMessage(text string) Message {
	return Message{
		ID:        uuid.New(),
		Text:      text,
		Timestamp: time.Now(),
	}
}

// Greeting returns the bot's opening message.
func Greeting() Message {
	return newBotMessage(IntentHelp, greetingText)
}

func newBotMessage(intent Intent, text string) Message {
	return Message{
		ID:        uuid.New(),
		Text:      text,
		IsBot:     true,
		Intent:    intent,
		Timestamp: time.Now(),
	}
}
