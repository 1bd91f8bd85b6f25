package site

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mindcare-edu/mindcare/internal/chatbot"
	"github.com/mindcare-edu/mindcare/internal/content"
	"github.com/mindcare-edu/mindcare/internal/mood"
	"github.com/mindcare-edu/mindcare/internal/validation"
)

// recentEntries is how many journal entries the mood page lists.
const recentEntries = 5

// Handler serves the HTML pages.
type Handler struct {
	catalog  *content.Catalog
	renderer *Renderer
	tracker  *mood.Tracker
	conv     *chatbot.Conversation
	validate *validation.Validator
	index    []SearchEntry
	logger   *zap.Logger
}

// NewHandler builds the page handler. conv is the chat session shown on /chatbot.
func NewHandler(catalog *content.Catalog, tracker *mood.Tracker, conv *chatbot.Conversation, logger *zap.Logger) (*Handler, error) {
	renderer, err := NewRenderer(catalog.Site)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		catalog:  catalog,
		renderer: renderer,
		tracker:  tracker,
		conv:     conv,
		validate: validation.New(),
		index:    BuildSearchIndex(catalog),
		logger:   logger,
	}, nil
}

// RegisterRoutes mounts the content pages, the interactive pages and the static assets.
func RegisterRoutes(r chi.Router, h *Handler) {
	for _, p := range h.catalog.Pages {
		r.Get(p.Path, h.handlePage(p))
	}
	r.Post("/contact", h.handleContact())

	r.Get("/chatbot", h.handleChat())
	r.Post("/chatbot", h.handleChatPost())
	r.Post("/chatbot/reset", h.handleChatReset())

	r.Get("/mood-tracker", h.handleMood())
	r.Post("/mood-tracker", h.handleMoodPost())

	r.Get("/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/app.js", serveAsset("text/javascript; charset=utf-8", jsContent))
	r.Get("/search-index.json", h.handleSearchIndex())
	r.Get("/api/search", h.handleSearch())

	r.NotFound(h.handleNotFound())
}

func (h *Handler) handlePage(p content.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.writePage(w, http.StatusOK, func(buf *bytes.Buffer) error {
			return h.renderer.Page(buf, p, nil, nil)
		})
	}
}

func (h *Handler) handleContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := h.catalog.Page("/contact")
		if !ok {
			h.handleNotFound()(w, r)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		submitted := ParseContactForm(r.PostForm)
		form, notice := submitted.Submit(h.validate)
		status := http.StatusOK
		if notice.Variant == "destructive" {
			status = http.StatusUnprocessableEntity
		} else {
			h.logger.Info("contact message received", zap.String("contact_type", submitted.ContactType))
		}
		h.writePage(w, status, func(buf *bytes.Buffer) error {
			return h.renderer.Page(buf, p, &State{Contact: form}, &notice)
		})
	}
}

func (h *Handler) chatView() ChatView {
	return ChatView{
		Disclaimer:     chatbot.Disclaimer,
		DelayMS:        h.conv.Delay().Milliseconds(),
		Messages:       h.conv.Messages(),
		QuickResponses: chatbot.QuickResponses,
	}
}

func (h *Handler) handleChat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.writePage(w, http.StatusOK, func(buf *bytes.Buffer) error {
			return h.renderer.Chat(buf, h.chatView())
		})
	}
}

// handleChatPost is the no-script fallback. The reply is immediate and the
// browser is redirected back to the transcript.
func (h *Handler) handleChatPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		if user, err := h.conv.Post(r.PostForm.Get("message")); err == nil {
			h.conv.Respond(user.Text)
		}
		http.Redirect(w, r, "/chatbot", http.StatusSeeOther)
	}
}

func (h *Handler) handleChatReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.conv.Reset()
		http.Redirect(w, r, "/chatbot", http.StatusSeeOther)
	}
}

func (h *Handler) moodView(form *mood.Form, notice *Notice) MoodView {
	entries := h.tracker.Entries()
	if len(entries) > recentEntries {
		entries = entries[:recentEntries]
	}
	return MoodView{
		Levels:   mood.Levels,
		Emotions: mood.Emotions,
		Form:     form,
		Summary:  h.tracker.Summary(),
		Recent:   entries,
		Notice:   notice,
	}
}

func (h *Handler) handleMood() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.writePage(w, http.StatusOK, func(buf *bytes.Buffer) error {
			return h.renderer.Mood(buf, h.moodView(mood.NewForm(), nil))
		})
	}
}

func (h *Handler) handleMoodPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		form := parseMoodForm(r)
		n := form.Submit(r.Context(), h.tracker)
		status := http.StatusOK
		if n.Variant == mood.VariantDestructive {
			status = http.StatusUnprocessableEntity
		}
		h.writePage(w, status, func(buf *bytes.Buffer) error {
			return h.renderer.Mood(buf, h.moodView(form, noticeFrom(n)))
		})
	}
}

// parseMoodForm rebuilds the form state from a submission. A missing or
// malformed mood leaves the level unset so the tracker rejects it.
func parseMoodForm(r *http.Request) *mood.Form {
	form := mood.NewForm()
	level, err := strconv.Atoi(r.PostForm.Get("mood"))
	if err != nil {
		level = 0
	}
	form.SelectMood(mood.Level(level))
	for _, label := range r.PostForm["emotions"] {
		if !form.Selected(label) {
			form.ToggleEmotion(label)
		}
	}
	form.Notes = r.PostForm.Get("notes")
	return form
}

func (h *Handler) handleSearchIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, h.index)
	}
}

func (h *Handler) handleSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
			return
		}
		limit := 8
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 20 {
				limit = n
			}
		}
		results := Search(h.index, q, limit)
		if results == nil {
			results = []SearchEntry{}
		}
		writeJSON(w, http.StatusOK, results)
	}
}

func (h *Handler) handleNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug("page not found", zap.String("path", r.URL.Path))
		h.writePage(w, http.StatusNotFound, func(buf *bytes.Buffer) error {
			return h.renderer.NotFound(buf)
		})
	}
}

// writePage renders into a buffer first so a template error still yields a clean 500.
func (h *Handler) writePage(w http.ResponseWriter, status int, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		h.logger.Error("rendering page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
