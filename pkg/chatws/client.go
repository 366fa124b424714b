package chatws

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/passguard/pkg/logger"
)

type client struct {
	id     string
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	cancel context.CancelFunc

	closeOnce sync.Once
}

// close sends a close frame and tears the connection down. Safe to call
// from any goroutine.
func (c *client) close(code int) {
	c.closeOnce.Do(func() {
		c.cancel()
		deadline := time.Now().Add(c.hub.writeWait)
		_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, ""), deadline)
		_ = c.conn.Close()
	})
}

// readPump is the only sender on c.send and closes it on exit.
func (c *client) readPump(ctx context.Context) {
	defer func() {
		close(c.send)
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.cancel()
	}()

	c.conn.SetReadLimit(c.hub.maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.hub.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.hub.pongWait))
	})

	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				c.hub.log.DebugContext(ctx, "chat connection lost",
					logger.Component("chatws"), logger.ClientID(c.id), logger.Error(err))
			}
			return
		}

		frame, err := c.hub.respond(ctx, c, msgType, data)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				c.hub.log.ErrorContext(ctx, "failed to answer chat frame",
					logger.Component("chatws"), logger.ClientID(c.id), logger.Error(err))
			}
			return
		}

		select {
		case c.send <- frame:
		default:
			c.hub.log.WarnContext(ctx, "dropping slow chat client",
				logger.Component("chatws"), logger.ClientID(c.id), logger.Error(ErrSlowClient))
			c.close(websocket.ClosePolicyViolation)
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(c.hub.pingPeriod())
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
