package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/passguard/pkg/logger"
	"github.com/dmitrymomot/passguard/pkg/requestid"
)

type errorHandlerConfig struct {
	toast       func(message string) templ.Component
	toastTarget string
	toastMode   TemplOption
}

// ErrorHandlerOption configures NewErrorHandler.
type ErrorHandlerOption func(*errorHandlerConfig)

// WithErrorToast renders DataStar failures with c, appended to target.
func WithErrorToast(c func(message string) templ.Component, target string) ErrorHandlerOption {
	return func(cfg *errorHandlerConfig) {
		if c != nil {
			cfg.toast = c
		}
		if target != "" {
			cfg.toastTarget = target
		}
	}
}

// NewErrorHandler logs failures and answers with the JSON error envelope.
// DataStar requests get a toast patch instead when WithErrorToast is set.
// Client errors log at warn level, server errors at error level.
func NewErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) ErrorHandler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	cfg := &errorHandlerConfig{
		toastTarget: "#toasts",
		toastMode:   WithPatchMode(PatchAppend),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status, code, msg := classify(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Component("handler"),
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status", status),
			slog.String("code", code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		if cfg.toast != nil && IsDataStar(r) {
			resp := Templ(cfg.toast(msg), WithTarget(cfg.toastTarget), cfg.toastMode)
			if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
				log.ErrorContext(r.Context(), "failed to render error toast",
					logger.Component("handler"), logger.Error(rerr))
			}
			return
		}

		if rerr := JSONError(err).Render(ctx.ResponseWriter(), r); rerr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Component("handler"), logger.Error(rerr))
		}
	}
}
