package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passguard/handler"
)

func dataStarPost(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/chat/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Datastar-Request", "true")
	return req
}

func TestSSE(t *testing.T) {
	t.Parallel()

	t.Run("rejects plain requests", func(t *testing.T) {
		t.Parallel()
		called := false
		resp := handler.SSE(func(handler.StreamContext) error {
			called = true
			return nil
		})
		err := resp.Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
		assert.ErrorIs(t, err, handler.ErrBadRequest)
		assert.False(t, called)
	})

	t.Run("streams events", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		resp := handler.SSE(func(s handler.StreamContext) error {
			if err := s.SendComponent(text("first"), handler.WithTarget("#messages"), handler.WithPatchMode(handler.PatchAppend)); err != nil {
				return err
			}
			if err := s.SendMultiple(handler.Patch(text("second")), handler.Patch(text("third"))); err != nil {
				return err
			}
			if err := s.SendSignals(map[string]any{"text": ""}); err != nil {
				return err
			}
			return s.Remove("#typing")
		})
		require.NoError(t, resp.Render(rec, dataStarPost(`{}`)))

		body := rec.Body.String()
		assert.Equal(t, 4, strings.Count(body, "datastar-patch-elements"))
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, "#typing")
		assert.Less(t, strings.Index(body, "first"), strings.Index(body, "third"))
	})

	t.Run("handler error is returned", func(t *testing.T) {
		t.Parallel()
		resp := handler.SSE(func(handler.StreamContext) error { return handler.ErrNotFound })
		err := resp.Render(httptest.NewRecorder(), dataStarPost(`{}`))
		assert.ErrorIs(t, err, handler.ErrNotFound)
	})
}

func TestDataStarBinder(t *testing.T) {
	t.Parallel()

	type signals struct {
		Text string `json:"text"`
	}

	t.Run("reads signals", func(t *testing.T) {
		t.Parallel()
		var got signals
		require.NoError(t, handler.DataStar()(dataStarPost(`{"text":"Tr0ub4dor&3"}`), &got))
		assert.Equal(t, "Tr0ub4dor&3", got.Text)
	})

	t.Run("plain request", func(t *testing.T) {
		t.Parallel()
		var got signals
		err := handler.DataStar()(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)), &got)
		assert.ErrorIs(t, err, handler.ErrBadRequest)
	})

	t.Run("malformed signals", func(t *testing.T) {
		t.Parallel()
		var got signals
		err := handler.DataStar()(dataStarPost(`{not json`), &got)
		var ve handler.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve, "signals")
	})
}
