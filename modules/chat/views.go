package chat

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/passguard/pkg/chatbot"
	"github.com/dmitrymomot/passguard/pkg/strength"
	"github.com/dmitrymomot/passguard/pkg/suggestion"
)

// Element selectors the page and the SSE patches agree on.
const (
	MessagesTarget = "#messages"
	TypingTarget   = "#typing"
	ToastsTarget   = "#toasts"
)

// DataStarScript is the client bundle loaded by Page.
const DataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

const pageStyle = `
body{font-family:system-ui,sans-serif;margin:0;background:#f4f5f7}
main{max-width:720px;margin:0 auto;padding:1rem;display:flex;flex-direction:column;height:100vh;box-sizing:border-box}
#messages{flex:1;overflow-y:auto}
.message{margin:.5rem 0;padding:.75rem 1rem;border-radius:.75rem;max-width:85%;white-space:pre-wrap}
.message.user{margin-left:auto;background:#2563eb;color:#fff}
.message.bot{background:#fff}
.strength-weak{color:#dc2626}.strength-medium{color:#d97706}.strength-strong{color:#16a34a}.strength-excellent{color:#059669}
.password{font-family:ui-monospace,monospace}
.toast{position:fixed;bottom:1rem;right:1rem;background:#dc2626;color:#fff;padding:.75rem 1rem;border-radius:.5rem}
form{display:flex;gap:.5rem}
form input{flex:1;padding:.75rem;border-radius:.5rem;border:1px solid #ccc}
`

// Page renders the full chat document with the greeting as its first
// message.
func Page(greeting chatbot.Message) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>PassGuard</title><style>` + pageStyle + `</style>`)
		b.WriteString(`<script type="module" src="` + DataStarScript + `"></script></head><body><main>`)
		b.WriteString(`<h1>PassGuard</h1><div id="messages">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := MessageBubble(greeting).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`+
			`<form data-signals="{text: ''}" data-on-submit__prevent="@post('/chat/messages')">`+
			`<input type="text" name="text" data-bind-text autocomplete="off" placeholder="Type a password or ask for suggestions">`+
			`<button type="submit">Send</button></form>`+
			`<div id="toasts"></div></main></body></html>`)
		return err
	})
}

// MessageBubble renders one transcript entry, including any analysis or
// suggestions it carries.
func MessageBubble(m chatbot.Message) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		side := "user"
		if m.IsBot {
			side = "bot"
		}

		var b strings.Builder
		fmt.Fprintf(&b, `<div class="message %s" id="msg-%s">`, side, m.ID)
		fmt.Fprintf(&b, `<div class="text">%s</div>`, templ.EscapeString(m.Text))
		if m.Analysis != nil {
			writeAnalysis(&b, *m.Analysis)
		}
		if len(m.Suggestions) > 0 {
			writeSuggestions(&b, m.Suggestions)
		}
		fmt.Fprintf(&b, `<time datetime="%s">%s</time></div>`,
			m.Timestamp.UTC().Format("2006-01-02T15:04:05Z"), m.Timestamp.Format("15:04"))

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeAnalysis(b *strings.Builder, a strength.Analysis) {
	fmt.Fprintf(b, `<div class="analysis strength-%s"><meter min="0" max="100" value="%d"></meter> %d/100 %s</div>`,
		a.Strength, a.Score, a.Score, templ.EscapeString(a.Strength.Title()))
}

func writeSuggestions(b *strings.Builder, items []suggestion.Suggestion) {
	b.WriteString(`<ul class="suggestions">`)
	for _, s := range items {
		fmt.Fprintf(b, `<li><strong>%s</strong> <span class="password">%s</span> <small>%s</small>`,
			templ.EscapeString(s.Type), templ.EscapeString(s.Password), templ.EscapeString(s.Description))
		writeAnalysis(b, s.Analysis)
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
}

// TypingIndicator is shown while the bot composes a reply.
func TypingIndicator() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="typing" class="message bot typing">...</div>`)
		return err
	})
}

// ErrorToast renders a transient error notice.
func ErrorToast(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="toast" role="alert">`+templ.EscapeString(message)+`</div>`)
		return err
	})
}
