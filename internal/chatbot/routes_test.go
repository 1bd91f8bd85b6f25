package chatbot

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, delay time.Duration) (*chi.Mux, *Conversation) {
	t.Helper()
	engine := newTestEngine()
	conv := NewConversation(engine, 0)
	r := chi.NewRouter()
	RegisterRoutes(r, engine, conv, Config{ReplyDelay: delay}, nil)
	return r, conv
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReplyAPI(t *testing.T) {
	r, conv := setupRouter(t, 0)

	w := post(r, "/api/chat/reply", `{"message":"I'm worried about exams"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var msg Message
	require.NoError(t, json.NewDecoder(w.Body).Decode(&msg))
	assert.Equal(t, KindSuggestion, msg.Kind)
	assert.Equal(t, SenderBot, msg.Sender)

	// The stateless endpoint does not touch the shared conversation.
	assert.Len(t, conv.Messages(), 1)
}

func TestReplyAPIRejectsBlank(t *testing.T) {
	r, _ := setupRouter(t, 0)
	for _, body := range []string{`{"message":"   "}`, `{}`, `nope`} {
		w := post(r, "/api/chat/reply", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestMessagesAPI(t *testing.T) {
	r, _ := setupRouter(t, 0)

	w := post(r, "/api/chat/messages", `{"message":"feeling down"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var ex exchangeResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&ex))
	assert.Equal(t, "feeling down", ex.User.Text)
	assert.Equal(t, KindSuggestion, ex.Reply.Kind)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/messages", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var msgs []Message
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&msgs))
	assert.Len(t, msgs, 3)

	w = post(r, "/api/chat/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&msgs))
	require.Len(t, msgs, 1)
	assert.Equal(t, Greeting, msgs[0].Text)
}

func TestQuickResponsesAPI(t *testing.T) {
	r, _ := setupRouter(t, 0)
	req := httptest.NewRequest(http.MethodGet, "/api/chat/quick-responses", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got []string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, QuickResponses, got)
}

func dialChat(t *testing.T, delay time.Duration) *websocket.Conn {
	t.Helper()
	r, _ := setupRouter(t, delay)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err, "websocket dial")
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) serverEvent {
	t.Helper()
	var ev serverEvent
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestWebSocketChat(t *testing.T) {
	conn := dialChat(t, 20*time.Millisecond)

	hello := readEvent(t, conn)
	assert.Equal(t, EventReset, hello.Type)
	require.Len(t, hello.Messages, 1)
	assert.Equal(t, Greeting, hello.Messages[0].Text)

	require.NoError(t, conn.WriteJSON(clientEvent{Type: EventMessage, Text: "I feel hopeless"}))

	echo := readEvent(t, conn)
	assert.Equal(t, EventMessage, echo.Type)
	require.NotNil(t, echo.Message)
	assert.Equal(t, SenderUser, echo.Message.Sender)

	assert.Equal(t, EventTyping, readEvent(t, conn).Type)

	reply := readEvent(t, conn)
	assert.Equal(t, EventMessage, reply.Type)
	require.NotNil(t, reply.Message)
	assert.Equal(t, KindCrisis, reply.Message.Kind)
}

func TestWebSocketQueuesDuringDelay(t *testing.T) {
	conn := dialChat(t, 30*time.Millisecond)
	readEvent(t, conn)

	require.NoError(t, conn.WriteJSON(clientEvent{Type: EventMessage, Text: "first"}))
	require.NoError(t, conn.WriteJSON(clientEvent{Type: EventMessage, Text: "worried"}))

	var order []string
	for i := 0; i < 6; i++ {
		ev := readEvent(t, conn)
		if ev.Type == EventMessage {
			order = append(order, string(ev.Message.Sender))
		}
	}
	assert.Equal(t, []string{"user", "bot", "user", "bot"}, order)
}

func TestWebSocketErrors(t *testing.T) {
	conn := dialChat(t, 0)
	readEvent(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	ev := readEvent(t, conn)
	assert.Equal(t, EventError, ev.Type)
	assert.Equal(t, "invalid message format", ev.Error)

	require.NoError(t, conn.WriteJSON(clientEvent{Type: EventMessage, Text: "  "}))
	ev = readEvent(t, conn)
	assert.Equal(t, EventError, ev.Type)
	assert.Equal(t, ErrEmptyMessage.Error(), ev.Error)

	require.NoError(t, conn.WriteJSON(clientEvent{Type: "shout"}))
	ev = readEvent(t, conn)
	assert.Equal(t, EventError, ev.Type)
	assert.Contains(t, ev.Error, "unknown message type")
}

func TestWebSocketReset(t *testing.T) {
	conn := dialChat(t, 0)
	readEvent(t, conn)

	require.NoError(t, conn.WriteJSON(clientEvent{Type: EventMessage, Text: "hi"}))
	for i := 0; i < 3; i++ {
		readEvent(t, conn)
	}

	require.NoError(t, conn.WriteJSON(clientEvent{Type: EventReset}))
	ev := readEvent(t, conn)
	assert.Equal(t, EventReset, ev.Type)
	assert.Len(t, ev.Messages, 1)
}
