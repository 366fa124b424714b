package chat

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/passguard/handler"
	"github.com/dmitrymomot/passguard/pkg/chatbot"
	"github.com/dmitrymomot/passguard/pkg/generator"
	"github.com/dmitrymomot/passguard/pkg/suggestion"
)

// Responder answers chat input.
type Responder interface {
	Reply(ctx context.Context, input string) (chatbot.Message, error)
}

// RouterOptions configures the chat module. Nil fields fall back to the
// package defaults; Websocket and RateLimit are mounted only when set.
type RouterOptions struct {
	Bot         Responder
	Generator   chatbot.PasswordGenerator
	Suggestions chatbot.SuggestionBuilder

	Websocket http.Handler
	RateLimit func(http.Handler) http.Handler
	Logger    *slog.Logger
}

type service struct {
	bot         Responder
	generator   chatbot.PasswordGenerator
	suggestions chatbot.SuggestionBuilder
	log         *slog.Logger
	errs        handler.ErrorHandler
}

// Router creates the chat module router.
func Router(opts RouterOptions) chi.Router {
	s := &service{
		bot:         opts.Bot,
		generator:   opts.Generator,
		suggestions: opts.Suggestions,
		log:         opts.Logger,
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	if s.generator == nil {
		s.generator = generator.New()
	}
	if s.suggestions == nil {
		s.suggestions = suggestion.NewBuilder()
	}
	if s.bot == nil {
		s.bot = chatbot.NewBot(
			chatbot.WithGenerator(s.generator),
			chatbot.WithSuggestionBuilder(s.suggestions),
			chatbot.WithLogger(s.log),
		)
	}
	s.errs = handler.NewErrorHandler(s.log, handler.WithErrorToast(ErrorToast, ToastsTarget))

	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[empty](s.errs),
	))

	r.Group(func(r chi.Router) {
		if opts.RateLimit != nil {
			r.Use(opts.RateLimit)
		}

		r.Post("/chat/messages", handler.Wrap(s.postMessage,
			handler.WithBinder[chatSignals](handler.DataStar()),
			handler.WithErrorHandler[chatSignals](s.errs),
		))

		r.Route("/api", s.api)

		if opts.Websocket != nil {
			r.Handle("/ws", opts.Websocket)
		}
	})

	return r
}

type empty struct{}
