package handler

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/dmitrymomot/passguard/pkg/binder"
	"github.com/dmitrymomot/passguard/pkg/validator"
)

var (
	ErrNilResponse       = errors.New("handler returned nil response")
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)

// HTTPError carries a status code and a machine-readable key.
type HTTPError struct {
	Code int
	Key  string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

func (e HTTPError) Error() string { return e.Key }

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad_request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not_found")
	ErrRequestTooLarge     = NewHTTPError(http.StatusRequestEntityTooLarge, "request_too_large")
	ErrUnsupportedMedia    = NewHTTPError(http.StatusUnsupportedMediaType, "unsupported_media_type")
	ErrUnprocessableEntity = NewHTTPError(http.StatusUnprocessableEntity, "unprocessable_entity")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too_many_requests")
	ErrInternal            = NewHTTPError(http.StatusInternalServerError, "internal_error")
)

// ValidationError maps field names to messages.
type ValidationError map[string][]string

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// classify maps err to a status, an error code and a client-safe message.
func classify(err error) (status int, code, message string) {
	var (
		httpErr HTTPError
		valErr  ValidationError
	)
	if ve, ok := validator.Extract(err); ok {
		return http.StatusUnprocessableEntity, "validation_error", ve.Error()
	}
	switch {
	case errors.As(err, &valErr):
		return http.StatusUnprocessableEntity, "validation_error", valErr.Error()
	case errors.As(err, &httpErr):
		return httpErr.Code, httpErr.Key, http.StatusText(httpErr.Code)
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, ErrUnsupportedMedia.Key, err.Error()
	case errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, ErrRequestTooLarge.Key, err.Error()
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return http.StatusBadRequest, ErrBadRequest.Key, err.Error()
	default:
		return http.StatusInternalServerError, ErrInternal.Key, http.StatusText(http.StatusInternalServerError)
	}
}

// details returns per-field messages for validation failures.
func details(err error) map[string][]string {
	if ve, ok := validator.Extract(err); ok {
		return ve.Fields()
	}
	var valErr ValidationError
	if errors.As(err, &valErr) && len(valErr) > 0 {
		return valErr
	}
	return nil
}
