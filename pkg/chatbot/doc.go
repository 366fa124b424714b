// Package chatbot turns free-text chat input into password analysis,
// generation or suggestion replies.
//
// A Classifier maps input to an Intent by case-insensitive keyword matching
// in a fixed priority order: suggestion keywords first, then generation
// keywords, then a "looks like a password" check (4 to 49 characters, no
// whitespace), and finally a help fallback. The keyword table is plain
// configuration: the default is embedded YAML and can be replaced with
// LoadKeywords or ParseKeywords.
//
// A Bot classifies input and composes a reply Message carrying the
// human-readable text plus the structured payload (a strength.Analysis or a
// list of suggestion.Suggestion) that a UI renders as strength indicators.
//
// # Usage
//
//	bot := chatbot.NewBot(chatbot.WithLogger(log))
//
//	msg, err := bot.Reply(ctx, "generate password")
//	if err != nil {
//		// chatbot.ErrEmptyInput or a context error
//	}
//	fmt.Println(msg.Text)
//
// # Keyword configuration
//
//	suggest:
//	  - suggest
//	  - options
//	generate:
//	  - generate
//
//	kw, err := chatbot.LoadKeywords("keywords.yaml")
//	bot := chatbot.NewBot(chatbot.WithClassifier(chatbot.NewClassifier(chatbot.WithKeywords(kw))))
//
// The bot never logs chat text, since it usually is a password.
package chatbot
