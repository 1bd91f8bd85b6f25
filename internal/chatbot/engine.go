package chatbot

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ReplyObserver is told the kind of every reply. internal/metrics implements it.
type ReplyObserver interface {
	ChatReplied(kind string)
}

// Engine picks a canned reply for user text.
type Engine struct {
	rules    []Rule
	fallback []string

	mu  sync.Mutex
	rnd *rand.Rand

	now      func() time.Time
	newID    func() string
	observer ReplyObserver
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRules replaces the rule list.
func WithRules(rules []Rule) EngineOption {
	return func(e *Engine) { e.rules = rules }
}

// WithFallback replaces the fallback pool.
func WithFallback(replies []string) EngineOption {
	return func(e *Engine) { e.fallback = replies }
}

// WithRand sets the source used to pick fallback replies.
func WithRand(r *rand.Rand) EngineOption {
	return func(e *Engine) { e.rnd = r }
}

// WithClock overrides the time source for message timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithReplyObserver registers an observer for replies.
func WithReplyObserver(o ReplyObserver) EngineOption {
	return func(e *Engine) { e.observer = o }
}

// NewEngine creates an engine with the default rules and fallback pool.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		rules:    DefaultRules,
		fallback: FallbackReplies,
		rnd:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reply returns the bot message for text.
func (e *Engine) Reply(text string) Message {
	body, kind := e.match(strings.ToLower(text))
	if e.observer != nil {
		e.observer.ChatReplied(string(kind))
	}
	return Message{
		ID:        e.newID(),
		Text:      body,
		Sender:    SenderBot,
		Kind:      kind,
		Timestamp: e.now(),
	}
}

func (e *Engine) match(lower string) (string, Kind) {
	for _, r := range e.rules {
		if r.Match(lower) {
			return r.Reply, r.Kind
		}
	}
	if len(e.fallback) == 0 {
		return "", KindNormal
	}
	e.mu.Lock()
	i := e.rnd.IntN(len(e.fallback))
	e.mu.Unlock()
	return e.fallback[i], KindNormal
}

// userMessage stamps text as a user message.
func (e *Engine) userMessage(text string) Message {
	return Message{
		ID:        e.newID(),
		Text:      text,
		Sender:    SenderUser,
		Kind:      KindNormal,
		Timestamp: e.now(),
	}
}

// greeting is the opening bot message.
func (e *Engine) greeting() Message {
	return Message{
		ID:        e.newID(),
		Text:      Greeting,
		Sender:    SenderBot,
		Kind:      KindNormal,
		Timestamp: e.now(),
	}
}
