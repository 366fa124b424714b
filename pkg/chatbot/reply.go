package chatbot

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/passguard/pkg/strength"
)

const (
	greetingText = "Hi! I am your cybersecurity assistant. Send me a password and I will analyze how strong it is, " +
		`or type "suggest passwords" to get a few options.`

	helpText = `Send me a password to analyze, "suggest passwords" for options, ` +
		`or "generate password" to create one.`

	suggestText = "Here are several strong passwords to choose from:"
)

func generatedText(password string, a strength.Analysis) string {
	return fmt.Sprintf(
		"Here is a strong password for you: **%s**\n\nThis password has excellent protection; cracking it would take %s.",
		password, a.EstimatedCrackTime,
	)
}

func analysisText(a strength.Analysis) string {
	var b strings.Builder
	b.WriteString("Password analysis complete!\n\n")
	fmt.Fprintf(&b, "**Security score:** %d/100\n", a.Score)
	fmt.Fprintf(&b, "**Protection level:** %s\n", a.Strength.Title())
	fmt.Fprintf(&b, "**Time to crack:** %s\n\n", a.EstimatedCrackTime)

	if len(a.Issues) > 0 {
		b.WriteString("**Problems:**\n")
		writeBullets(&b, a.Issues)
		b.WriteString("\n\n")
	}
	if len(a.Suggestions) > 0 {
		b.WriteString("**Recommendations:**\n")
		writeBullets(&b, a.Suggestions)
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeBullets(b *strings.Builder, items []string) {
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(item)
	}
}
