package mood

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the mood tracker API routes.
func RegisterRoutes(r chi.Router, tracker *Tracker) {
	r.Route("/api/mood", func(r chi.Router) {
		r.Get("/entries", handleList(tracker))
		r.Post("/entries", handleLog(tracker))
		r.Get("/summary", handleSummary(tracker))
		r.Get("/catalog", handleCatalog())
	})
}

type logResponse struct {
	Entry   Entry  `json:"entry"`
	Warning string `json:"warning,omitempty"`
}

type catalogResponse struct {
	Levels   []LevelInfo `json:"levels"`
	Emotions []Emotion   `json:"emotions"`
}

func handleList(tracker *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := tracker.Entries()
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 && n < len(entries) {
				entries = entries[:n]
			}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func handleLog(tracker *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entry, err := tracker.Log(r.Context(), in)
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, logResponse{Entry: entry})
		case errors.Is(err, ErrPersist):
			writeJSON(w, http.StatusCreated, logResponse{Entry: entry, Warning: err.Error()})
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
	}
}

func handleSummary(tracker *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, tracker.Summary())
	}
}

func handleCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalogResponse{Levels: Levels, Emotions: Emotions})
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
