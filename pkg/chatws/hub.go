package chatws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/passguard/pkg/chatbot"
	"github.com/dmitrymomot/passguard/pkg/logger"
)

// Responder answers one chat input. *chatbot.Bot implements it.
type Responder interface {
	Reply(ctx context.Context, input string) (chatbot.Message, error)
}

// Hub tracks websocket chat clients.
type Hub struct {
	responder Responder
	upgrader  websocket.Upgrader
	log       *slog.Logger

	sendBuffer     int
	maxMessageSize int64
	writeWait      time.Duration
	pongWait       time.Duration

	register   chan *client
	unregister chan *client
	done       chan struct{}
	running    atomic.Bool

	mu      sync.RWMutex
	clients map[*client]struct{}
}

// NewHub creates a Hub answering with r. Call Run before serving.
func NewHub(r Responder, opts ...Option) *Hub {
	h := &Hub{
		responder:      r,
		log:            slog.New(slog.DiscardHandler),
		sendBuffer:     DefaultSendBuffer,
		maxMessageSize: DefaultMaxMessageSize,
		writeWait:      DefaultWriteWait,
		pongWait:       DefaultPongWait,
		register:       make(chan *client),
		unregister:     make(chan *client),
		done:           make(chan struct{}),
		clients:        make(map[*client]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run processes client registrations until ctx is done, then disconnects
// every client. It may be called once; later calls return ErrHubClosed.
func (h *Hub) Run(ctx context.Context) error {
	if !h.running.CompareAndSwap(false, true) {
		return ErrHubClosed
	}
	defer close(h.done)

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()
			h.log.DebugContext(ctx, "chat client connected",
				logger.Component("chatws"), logger.ClientID(c.id))

		case c := <-h.unregister:
			h.mu.Lock()
			delete(h.clients, c)
			h.mu.Unlock()
			h.log.DebugContext(ctx, "chat client disconnected",
				logger.Component("chatws"), logger.ClientID(c.id))

		case <-ctx.Done():
			h.mu.Lock()
			n := len(h.clients)
			for c := range h.clients {
				c.close(websocket.CloseGoingAway)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			h.log.InfoContext(ctx, "chat hub stopped",
				logger.Component("chatws"), slog.Int("clients", n))
			return nil
		}
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and starts the client's pumps.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	select {
	case <-h.done:
		http.Error(w, ErrHubClosed.Error(), http.StatusServiceUnavailable)
		return
	default:
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WarnContext(r.Context(), "websocket upgrade failed",
			logger.Component("chatws"), logger.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	c := &client{
		id:     uuid.NewString(),
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, h.sendBuffer),
		cancel: cancel,
	}

	select {
	case h.register <- c:
	case <-h.done:
		c.close(websocket.CloseGoingAway)
		return
	}

	go c.writePump()
	go c.readPump(ctx)
}

// respond turns one inbound frame into an outbound one. A non-nil error
// ends the connection.
func (h *Hub) respond(ctx context.Context, c *client, msgType int, data []byte) ([]byte, error) {
	var in Inbound
	if msgType != websocket.TextMessage || json.Unmarshal(data, &in) != nil {
		h.log.DebugContext(ctx, "invalid chat frame",
			logger.Component("chatws"), logger.ClientID(c.id))
		return encode(TypeError, ErrorData{Message: ErrInvalidFrame.Error()}, time.Now())
	}

	msg, err := h.responder.Reply(ctx, in.Text)
	switch {
	case errors.Is(err, chatbot.ErrEmptyInput):
		return encode(TypeError, ErrorData{Message: err.Error()}, time.Now())
	case err != nil:
		return nil, err
	}
	return encode(TypeMessage, msg, time.Now())
}

func (h *Hub) pingPeriod() time.Duration {
	return h.pongWait * 9 / 10
}
