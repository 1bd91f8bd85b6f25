package chatbot

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Config controls the chat transports.
type Config struct {
	ReplyDelay time.Duration
}

// RegisterRoutes mounts the websocket chat and the JSON chat API.
// conv is the shared session behind /api/chat/messages.
func RegisterRoutes(r chi.Router, engine *Engine, conv *Conversation, cfg Config, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.Handle("/ws/chat", &wsHandler{engine: engine, cfg: cfg, logger: logger})

	r.Route("/api/chat", func(r chi.Router) {
		r.Post("/reply", handleReply(engine))
		r.Get("/messages", handleMessages(conv))
		r.Post("/messages", handleSend(conv))
		r.Post("/reset", handleReset(conv))
		r.Get("/quick-responses", handleQuickResponses())
	})
}

type textRequest struct {
	Message string `json:"message"`
}

type exchangeResponse struct {
	User  Message `json:"user"`
	Reply Message `json:"reply"`
}

func handleReply(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req textRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			writeError(w, http.StatusBadRequest, ErrEmptyMessage.Error())
			return
		}
		writeJSON(w, http.StatusOK, engine.Reply(req.Message))
	}
}

func handleMessages(conv *Conversation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, conv.Messages())
	}
}

func handleSend(conv *Conversation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req textRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		user, reply, err := conv.Send(r.Context(), req.Message)
		switch {
		case errors.Is(err, ErrEmptyMessage):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			// Client went away during the reply delay.
			return
		}
		writeJSON(w, http.StatusOK, exchangeResponse{User: user, Reply: reply})
	}
}

func handleReset(conv *Conversation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conv.Reset()
		writeJSON(w, http.StatusOK, conv.Messages())
	}
}

func handleQuickResponses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, QuickResponses)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
