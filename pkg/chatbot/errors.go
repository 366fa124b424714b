package chatbot

import "errors"

var (
	// ErrEmptyInput is returned when the chat input is blank.
	ErrEmptyInput = errors.New("chat input is empty")

	// ErrNoKeywords is returned when a keyword table has no suggest or no generate keywords.
	ErrNoKeywords = errors.New("keyword table must define suggest and generate keywords")

	// ErrFailedToParseKeywords is returned when a keyword document is not valid YAML.
	ErrFailedToParseKeywords = errors.New("failed to parse keyword table")

	// ErrFailedToReadKeywords is returned when a keyword file cannot be read.
	ErrFailedToReadKeywords = errors.New("failed to read keyword file")
)
