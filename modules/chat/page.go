package chat

import (
	"github.com/dmitrymomot/passguard/handler"
	"github.com/dmitrymomot/passguard/pkg/chatbot"
	"github.com/dmitrymomot/passguard/pkg/validator"
)

type chatSignals struct {
	Text string `json:"text"`
}

func (s *service) page(handler.Context, empty) handler.Response {
	return handler.Templ(Page(chatbot.Greeting()))
}

// postMessage streams the user's bubble, a typing indicator and then the
// bot's reply into the transcript.
func (s *service) postMessage(_ handler.Context, req chatSignals) handler.Response {
	if err := validator.Apply(
		validator.Required("text", req.Text),
		validator.MaxLen("text", req.Text, MaxChatLength),
	); err != nil {
		return handler.Error(err)
	}

	appendTo := []handler.TemplOption{
		handler.WithTarget(MessagesTarget),
		handler.WithPatchMode(handler.PatchAppend),
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendComponent(MessageBubble(chatbot.NewUserMessage(req.Text)), appendTo...); err != nil {
			return err
		}
		if err := stream.SendSignals(map[string]any{"text": ""}); err != nil {
			return err
		}
		if err := stream.SendComponent(TypingIndicator(), appendTo...); err != nil {
			return err
		}

		reply, err := s.bot.Reply(stream, req.Text)
		if rerr := stream.Remove(TypingTarget); rerr != nil {
			return rerr
		}
		if err != nil {
			return err
		}
		return stream.SendComponent(MessageBubble(reply), appendTo...)
	})
}
