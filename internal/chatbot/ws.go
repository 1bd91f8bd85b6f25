package chatbot

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Event types exchanged over /ws/chat.
const (
	EventMessage = "message"
	EventTyping  = "typing"
	EventError   = "error"
	EventReset   = "reset"
)

// clientEvent is the incoming WebSocket message format.
type clientEvent struct {
	Type string `json:"type"` // "message" or "reset"
	Text string `json:"text"`
}

// serverEvent is the outgoing WebSocket message format.
type serverEvent struct {
	Type     string    `json:"type"`
	Message  *Message  `json:"message,omitempty"`
	Messages []Message `json:"messages,omitempty"`
	Error    string    `json:"error,omitempty"`
}

type wsHandler struct {
	engine *Engine
	cfg    Config
	logger *zap.Logger
}

// ServeHTTP runs one chat session per connection. Messages are handled in order,
// so text sent while a reply is pending queues behind it.
func (h *wsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	conv := NewConversation(h.engine, h.cfg.ReplyDelay)
	h.send(conn, serverEvent{Type: EventReset, Messages: conv.Messages()})

	ctx := r.Context()
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read", zap.Error(err))
			}
			return
		}

		var ev clientEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			h.sendError(conn, "invalid message format")
			continue
		}

		switch ev.Type {
		case EventMessage:
			user, err := conv.Post(ev.Text)
			if errors.Is(err, ErrEmptyMessage) {
				h.sendError(conn, err.Error())
				continue
			}
			h.send(conn, serverEvent{Type: EventMessage, Message: &user})
			h.send(conn, serverEvent{Type: EventTyping})
			if err := Wait(ctx, conv.Delay()); err != nil {
				return
			}
			reply := conv.Respond(user.Text)
			h.send(conn, serverEvent{Type: EventMessage, Message: &reply})
		case EventReset:
			conv.Reset()
			h.send(conn, serverEvent{Type: EventReset, Messages: conv.Messages()})
		default:
			h.sendError(conn, "unknown message type: "+ev.Type)
		}
	}
}

func (h *wsHandler) send(conn *websocket.Conn, ev serverEvent) {
	if err := conn.WriteJSON(ev); err != nil {
		h.logger.Warn("websocket write", zap.Error(err))
	}
}

func (h *wsHandler) sendError(conn *websocket.Conn, msg string) {
	h.send(conn, serverEvent{Type: EventError, Error: msg})
}
