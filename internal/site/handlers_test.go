package site

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mindcare-edu/mindcare/internal/chatbot"
	"github.com/mindcare-edu/mindcare/internal/kv"
	"github.com/mindcare-edu/mindcare/internal/mood"
)

type testSite struct {
	router  chi.Router
	tracker *mood.Tracker
	conv    *chatbot.Conversation
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()
	repo := mood.NewSlotRepository(kv.NewMemoryStore(), "mindcare-mood-history", zap.NewNop())
	tracker := mood.NewTracker(context.Background(), repo)
	engine := chatbot.NewEngine(chatbot.WithRand(rand.New(rand.NewPCG(1, 2))))
	conv := chatbot.NewConversation(engine, 0)

	h, err := NewHandler(loadCatalog(t), tracker, conv, zap.NewNop())
	require.NoError(t, err)
	r := chi.NewRouter()
	RegisterRoutes(r, h)
	return &testSite{router: r, tracker: tracker, conv: conv}
}

func (s *testSite) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *testSite) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestContentRoutes(t *testing.T) {
	s := newTestSite(t)
	for _, path := range []string{"/", "/about", "/features", "/how-it-works", "/tech-stack", "/impact", "/future-vision", "/contact"} {
		rec := s.get(path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"), path)
	}
}

func TestNotFound(t *testing.T) {
	s := newTestSite(t)
	rec := s.get("/does-not-exist")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oops! Page not found")
}

func TestAssets(t *testing.T) {
	s := newTestSite(t)

	rec := s.get("/style.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")

	rec = s.get("/app.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/ws/chat")
}

func TestChatPage(t *testing.T) {
	s := newTestSite(t)
	rec := s.get("/chatbot")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "MindCare AI, your personal mental health companion")
	assert.Contains(t, body, `<script src="/app.js"></script>`)
	assert.Contains(t, body, `class="btn btn-primary active"`)
}

func TestChatFormPost(t *testing.T) {
	s := newTestSite(t)

	rec := s.postForm("/chatbot", url.Values{"message": {"I'm feeling anxious"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/chatbot", rec.Header().Get("Location"))

	msgs := s.conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, chatbot.SenderUser, msgs[1].Sender)
	assert.Equal(t, chatbot.KindSuggestion, msgs[2].Kind)

	body := s.get("/chatbot").Body.String()
	assert.Contains(t, body, "Coping Strategy")
}

func TestChatFormPostBlank(t *testing.T) {
	s := newTestSite(t)
	rec := s.postForm("/chatbot", url.Values{"message": {"   "}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Len(t, s.conv.Messages(), 1)
}

func TestChatReset(t *testing.T) {
	s := newTestSite(t)
	s.postForm("/chatbot", url.Values{"message": {"hello"}})
	require.Len(t, s.conv.Messages(), 3)

	rec := s.postForm("/chatbot/reset", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Len(t, s.conv.Messages(), 1)
}

func TestMoodPage(t *testing.T) {
	s := newTestSite(t)
	rec := s.get("/mood-tracker")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `value="3" checked`)
	assert.Contains(t, body, "N/A")
	assert.Contains(t, body, "Not enough data yet")
	assert.Contains(t, body, "No mood entries yet. Start tracking your mood above!")
}

func TestMoodFormPost(t *testing.T) {
	s := newTestSite(t)

	rec := s.postForm("/mood-tracker", url.Values{
		"mood":     {"4"},
		"emotions": {"Happy", "Grateful", "Happy"},
		"notes":    {"  good day  "},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mood logged successfully!")

	entries := s.tracker.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, mood.LevelGood, entries[0].Mood)
	assert.Equal(t, []string{"Happy", "Grateful"}, entries[0].Emotions)
	assert.Equal(t, "good day", entries[0].Notes)
	assert.Contains(t, rec.Body.String(), "1 total entries logged")
}

func TestMoodFormPostRejected(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		want   string
	}{
		{"missing mood", url.Values{"notes": {"kept text"}}, "Please select a mood"},
		{"garbage mood", url.Values{"mood": {"lots"}, "notes": {"kept text"}}, "Please select a mood"},
		{"unknown emotion", url.Values{"mood": {"2"}, "emotions": {"Bored"}, "notes": {"kept text"}}, "Please check your entry"},
		{"mood out of range", url.Values{"mood": {"9"}, "notes": {"kept text"}}, "Please check your entry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSite(t)
			rec := s.postForm("/mood-tracker", tt.values)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.Contains(t, rec.Body.String(), "kept text")
			assert.Zero(t, s.tracker.Len())
		})
	}
}

func TestContactPost(t *testing.T) {
	s := newTestSite(t)

	rec := s.postForm("/contact", url.Values{"name": {"Ada Lovelace"}, "email": {"ada@uni.edu"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing Information")
	assert.Contains(t, rec.Body.String(), `value="Ada Lovelace"`)

	rec = s.postForm("/contact", url.Values{
		"name":        {"Ada Lovelace"},
		"email":       {"ada@uni.edu"},
		"contactType": {"university"},
		"message":     {"We would like to partner."},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Message Sent Successfully!")
	assert.NotContains(t, rec.Body.String(), `value="Ada Lovelace"`)
}

func TestSearchEndpoints(t *testing.T) {
	s := newTestSite(t)

	rec := s.get("/search-index.json")
	require.Equal(t, http.StatusOK, rec.Code)
	var index []SearchEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &index))
	assert.Len(t, index, 8)

	rec = s.get("/api/search?q=crisis&limit=3")
	require.Equal(t, http.StatusOK, rec.Code)
	var hits []SearchEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hits))
	assert.NotEmpty(t, hits)
	assert.LessOrEqual(t, len(hits), 3)

	rec = s.get("/api/search")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"query is required"}`, rec.Body.String())
}
