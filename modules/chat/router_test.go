package chat_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passguard/modules/chat"
	"github.com/dmitrymomot/passguard/pkg/chatbot"
	"github.com/dmitrymomot/passguard/pkg/ratelimiter"
	"github.com/dmitrymomot/passguard/pkg/strength"
	"github.com/dmitrymomot/passguard/pkg/suggestion"
)

type envelope[T any] struct {
	Data  T `json:"data"`
	Error *struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Details map[string][]string `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestAnalyze(t *testing.T) {
	t.Parallel()
	r := chat.Router(chat.RouterOptions{})

	rec := do(t, r, http.MethodPost, "/api/analyze", `{"password":"Tr0ub4dor&3"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode[strength.Analysis](t, rec)
	assert.Equal(t, strength.Analyze("Tr0ub4dor&3"), env.Data)
	assert.Equal(t, 75, env.Data.Score)
	assert.Equal(t, strength.Strong, env.Data.Strength)

	t.Run("empty password is analyzed", func(t *testing.T) {
		t.Parallel()
		rec := do(t, r, http.MethodPost, "/api/analyze", `{"password":""}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"issues":["Password is too short"]`)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		t.Parallel()
		rec := do(t, r, http.MethodPost, "/api/analyze", `{"pass":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`password=x`))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()
	r := chat.Router(chat.RouterOptions{})

	type generated struct {
		Password string            `json:"password"`
		Analysis strength.Analysis `json:"analysis"`
	}

	tests := []struct {
		name       string
		body       string
		wantLength int
		special    bool
	}{
		{name: "defaults", body: `{}`, wantLength: chat.DefaultGenerateLength, special: true},
		{name: "explicit", body: `{"length":24,"include_special":true}`, wantLength: 24, special: true},
		{name: "no special", body: `{"length":10,"include_special":false}`, wantLength: 10},
		{name: "minimum without special", body: `{"length":3,"include_special":false}`, wantLength: 3},
		{name: "maximum", body: `{"length":128}`, wantLength: 128, special: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, r, http.MethodPost, "/api/generate", tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			env := decode[generated](t, rec)
			assert.Equal(t, tt.wantLength, utf8.RuneCountInString(env.Data.Password))
			assert.Equal(t, strength.Analyze(env.Data.Password), env.Data.Analysis)
			if !tt.special {
				assert.True(t, strings.IndexFunc(env.Data.Password, func(r rune) bool {
					return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
				}) < 0, env.Data.Password)
			}
		})
	}

	invalid := []struct {
		name string
		body string
	}{
		{name: "below minimum with special", body: `{"length":3}`},
		{name: "below minimum without special", body: `{"length":2,"include_special":false}`},
		{name: "zero", body: `{"length":0}`},
		{name: "above maximum", body: `{"length":129}`},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, r, http.MethodPost, "/api/generate", tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			env := decode[json.RawMessage](t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "validation_error", env.Error.Code)
			assert.Contains(t, env.Error.Details, "length")
		})
	}
}

func TestSuggestions(t *testing.T) {
	t.Parallel()
	r := chat.Router(chat.RouterOptions{})

	rec := do(t, r, http.MethodGet, "/api/suggestions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode[[]suggestion.Suggestion](t, rec)
	require.Len(t, env.Data, 4)
	for i, p := range suggestion.Presets() {
		assert.Equal(t, p.Type, env.Data[i].Type)
		assert.Len(t, env.Data[i].Password, p.Length)
		assert.Equal(t, strength.Analyze(env.Data[i].Password), env.Data[i].Analysis)
	}
}

func TestChatAPI(t *testing.T) {
	t.Parallel()
	r := chat.Router(chat.RouterOptions{})

	t.Run("generate intent", func(t *testing.T) {
		t.Parallel()
		rec := do(t, r, http.MethodPost, "/api/chat", `{"text":"Please GENERATE one"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		env := decode[chatbot.Message](t, rec)
		assert.True(t, env.Data.IsBot)
		assert.Equal(t, chatbot.IntentGenerate, env.Data.Intent)
		require.NotNil(t, env.Data.Analysis)
		assert.True(t, strings.HasPrefix(env.Data.Text, "Here is a strong password for you: **"))
	})

	t.Run("suggest intent", func(t *testing.T) {
		t.Parallel()
		rec := do(t, r, http.MethodPost, "/api/chat", `{"text":"give me options"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[chatbot.Message](t, rec).Data.Suggestions, 4)
	})

	t.Run("blank text", func(t *testing.T) {
		t.Parallel()
		rec := do(t, r, http.MethodPost, "/api/chat", `{"text":"  "}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		env := decode[json.RawMessage](t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, []string{"field is required"}, env.Error.Details["text"])
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()
		body, err := json.Marshal(map[string]string{"text": strings.Repeat("a", chat.MaxChatLength+1)})
		require.NoError(t, err)
		rec := do(t, r, http.MethodPost, "/api/chat", string(body))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestQRCode(t *testing.T) {
	t.Parallel()
	r := chat.Router(chat.RouterOptions{})

	rec := do(t, r, http.MethodPost, "/api/qrcode", `{"password":"Xk9#mPq2$vLwZr7!","size":128}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG\r\n\x1a\n")))

	for name, body := range map[string]string{
		"blank password": `{"password":""}`,
		"size too small": `{"password":"abc","size":10}`,
		"size too large": `{"password":"abc","size":4096}`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, r, http.MethodPost, "/api/qrcode", body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestPage(t *testing.T) {
	t.Parallel()
	r := chat.Router(chat.RouterOptions{})

	rec := do(t, r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, `id="messages"`)
	assert.Contains(t, body, `id="toasts"`)
	assert.Contains(t, body, chat.DataStarScript)
	assert.Contains(t, body, `class="message bot"`)
}

func chatMessage(text string) *http.Request {
	body, _ := json.Marshal(map[string]string{"text": text})
	req := httptest.NewRequest(http.MethodPost, "/chat/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Datastar-Request", "true")
	return req
}

func TestPostMessage(t *testing.T) {
	t.Parallel()
	r := chat.Router(chat.RouterOptions{
		Bot: chatbot.NewBot(chatbot.WithTypingDelay(10 * time.Millisecond)),
	})

	t.Run("streams bubbles", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, chatMessage("a<b>c1"))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, body, "#messages")
		assert.Contains(t, body, `class="message user"`)
		assert.Contains(t, body, "a&lt;b&gt;c1")
		assert.NotContains(t, body, "a<b>c1")
		assert.Contains(t, body, `id="typing"`)
		assert.Contains(t, body, "datastar-patch-signals")

		userAt := strings.Index(body, `class="message user"`)
		typingAt := strings.Index(body, `id="typing"`)
		botAt := strings.Index(body, `class="message bot"`)
		assert.Less(t, userAt, typingAt)
		assert.Less(t, typingAt, botAt)
		assert.Contains(t, body[botAt:], "Password analysis")
	})

	t.Run("blank text shows toast", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, chatMessage(" "))

		body := rec.Body.String()
		assert.Contains(t, body, "#toasts")
		assert.Contains(t, body, `class="toast"`)
		assert.NotContains(t, body, `class="message user"`)
	})

	t.Run("plain form post rejected", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/chat/messages", strings.NewReader(`{"text":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	r := chat.Router(chat.RouterOptions{
		RateLimit: ratelimiter.Middleware(bucket, ratelimiter.ClientIPKey),
	})

	for range 2 {
		assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/api/suggestions", "").Code)
	}
	rec := do(t, r, http.MethodGet, "/api/suggestions", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// the page itself is not limited
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/", "").Code)
}

func TestWebsocketMount(t *testing.T) {
	t.Parallel()

	t.Run("mounted", func(t *testing.T) {
		t.Parallel()
		r := chat.Router(chat.RouterOptions{
			Websocket: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			}),
		})
		assert.Equal(t, http.StatusTeapot, do(t, r, http.MethodGet, "/ws", "").Code)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		r := chat.Router(chat.RouterOptions{})
		assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/ws", "").Code)
	})
}
