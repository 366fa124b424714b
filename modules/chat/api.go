package chat

import (
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/passguard/handler"
	"github.com/dmitrymomot/passguard/pkg/binder"
	"github.com/dmitrymomot/passguard/pkg/generator"
	"github.com/dmitrymomot/passguard/pkg/logger"
	"github.com/dmitrymomot/passguard/pkg/qrcode"
	"github.com/dmitrymomot/passguard/pkg/strength"
	"github.com/dmitrymomot/passguard/pkg/validator"
)

// Request limits.
const (
	DefaultGenerateLength = 16
	MaxGenerateLength     = 128
	MaxPasswordLength     = 256
	MaxChatLength         = 1000
)

type analyzeRequest struct {
	Password string `json:"password"`
}

type generateRequest struct {
	Length         *int  `json:"length"`
	IncludeSpecial *bool `json:"include_special"`
}

type generateResponse struct {
	Password string            `json:"password"`
	Analysis strength.Analysis `json:"analysis"`
}

type chatRequest struct {
	Text string `json:"text"`
}

type qrcodeRequest struct {
	Password string `json:"password"`
	Size     int    `json:"size"`
}

func (s *service) api(r chi.Router) {
	r.Post("/analyze", handler.Wrap(s.analyze,
		handler.WithBinder[analyzeRequest](binder.JSON()),
		handler.WithErrorHandler[analyzeRequest](s.errs),
	))
	r.Post("/generate", handler.Wrap(s.generate,
		handler.WithBinder[generateRequest](binder.JSON()),
		handler.WithErrorHandler[generateRequest](s.errs),
	))
	r.Get("/suggestions", handler.Wrap(s.suggest,
		handler.WithErrorHandler[empty](s.errs),
	))
	r.Post("/chat", handler.Wrap(s.chat,
		handler.WithBinder[chatRequest](binder.JSON()),
		handler.WithErrorHandler[chatRequest](s.errs),
	))
	r.Post("/qrcode", handler.Wrap(s.qrcode,
		handler.WithBinder[qrcodeRequest](binder.JSON()),
		handler.WithErrorHandler[qrcodeRequest](s.errs),
	))
}

func (s *service) analyze(ctx handler.Context, req analyzeRequest) handler.Response {
	if err := validator.Apply(
		validator.MaxLen("password", req.Password, MaxPasswordLength),
	); err != nil {
		return handler.Error(err)
	}

	a := strength.Analyze(req.Password)
	s.log.DebugContext(ctx, "password analyzed",
		logger.Component("chat"), logger.Score(a.Score), logger.Strength(string(a.Strength)))
	return handler.JSON(a)
}

func (s *service) generate(_ handler.Context, req generateRequest) handler.Response {
	special := true
	if req.IncludeSpecial != nil {
		special = *req.IncludeSpecial
	}
	length := DefaultGenerateLength
	if req.Length != nil {
		length = *req.Length
	}

	if err := validator.Apply(
		validator.Range("length", length, generator.MinLength(special), MaxGenerateLength),
	); err != nil {
		return handler.Error(err)
	}

	pw := s.generator.Generate(length, special)
	return handler.JSON(generateResponse{Password: pw, Analysis: strength.Analyze(pw)})
}

func (s *service) suggest(handler.Context, empty) handler.Response {
	return handler.JSON(s.suggestions.Build())
}

func (s *service) chat(ctx handler.Context, req chatRequest) handler.Response {
	if err := validator.Apply(
		validator.Required("text", req.Text),
		validator.MaxLen("text", req.Text, MaxChatLength),
	); err != nil {
		return handler.Error(err)
	}

	msg, err := s.bot.Reply(ctx, req.Text)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(msg)
}

func (s *service) qrcode(_ handler.Context, req qrcodeRequest) handler.Response {
	rules := []validator.Rule{
		validator.Required("password", req.Password),
		validator.MaxLen("password", req.Password, MaxPasswordLength),
	}
	if req.Size != 0 {
		rules = append(rules, validator.Range("size", req.Size, qrcode.MinSize, qrcode.MaxSize))
	}
	if err := validator.Apply(rules...); err != nil {
		return handler.Error(err)
	}

	png, err := qrcode.Generate(req.Password, req.Size)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Blob("image/png", png)
}
