// Package chatws serves the password chat over websockets.
//
// A Hub tracks connected clients. Each client sends JSON text frames of the
// form {"text": "..."} and receives one Envelope per frame, addressed to that
// client only:
//
//	{"type": "message", "data": <chatbot.Message>, "timestamp": 1700000000}
//	{"type": "error", "data": {"message": "..."}, "timestamp": 1700000000}
//
// Usage:
//
//	hub := chatws.NewHub(bot, chatws.WithLogger(log))
//	go hub.Run(ctx)
//	r.Get("/ws", hub.ServeHTTP)
//
// Clients that do not drain their send buffer are disconnected. Connections
// are kept alive with ping frames and dropped when pongs stop arriving.
package chatws
