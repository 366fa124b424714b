// Package chat mounts the password assistant: a JSON API, the websocket
// transport and a server-rendered chat page driven by DataStar.
//
// Usage:
//
//	bot := chatbot.NewBot(chatbot.WithLogger(log))
//	hub := chatws.NewHub(bot)
//	r.Mount("/", chat.Router(chat.RouterOptions{
//		Bot:       bot,
//		Websocket: hub,
//		RateLimit: ratelimiter.Middleware(bucket, ratelimiter.ClientIPKey),
//		Logger:    log,
//	}))
//
// Routes:
//
//	POST /api/analyze      {"password"}                  -> strength.Analysis
//	POST /api/generate     {"length", "include_special"} -> {"password", "analysis"}
//	GET  /api/suggestions                                -> []suggestion.Suggestion
//	POST /api/chat         {"text"}                      -> chatbot.Message
//	POST /api/qrcode       {"password", "size"}          -> image/png
//	GET  /ws                                             -> websocket chat
//	GET  /                                               -> chat page
//	POST /chat/messages    DataStar signals {"text"}     -> SSE patches
package chat
