package chatbot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrEmptyMessage is returned when the user sends only whitespace.
var ErrEmptyMessage = errors.New("message is empty")

// Conversation is the message log of one chat session.
type Conversation struct {
	engine *Engine
	delay  time.Duration

	mu       sync.Mutex
	messages []Message
}

// NewConversation starts a conversation with the greeting. delay is the pause
// before each reply in Send.
func NewConversation(engine *Engine, delay time.Duration) *Conversation {
	c := &Conversation{engine: engine, delay: delay}
	c.Reset()
	return c
}

// Reset clears the log back to the greeting.
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = []Message{c.engine.greeting()}
}

// Messages returns a copy of the log, oldest first.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Post records user text. The reply is produced separately by Respond.
func (c *Conversation) Post(text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}
	msg := c.engine.userMessage(text)
	c.append(msg)
	return msg, nil
}

// Respond records and returns the bot reply to text.
func (c *Conversation) Respond(text string) Message {
	reply := c.engine.Reply(text)
	c.append(reply)
	return reply
}

// Send posts text, waits the reply delay and responds. If ctx ends during the
// delay the user message stays in the log and ctx.Err() is returned.
func (c *Conversation) Send(ctx context.Context, text string) (user, bot Message, err error) {
	user, err = c.Post(text)
	if err != nil {
		return Message{}, Message{}, err
	}
	if err := Wait(ctx, c.delay); err != nil {
		return user, Message{}, err
	}
	return user, c.Respond(user.Text), nil
}

// Delay returns the configured reply delay.
func (c *Conversation) Delay() time.Duration { return c.delay }

func (c *Conversation) append(m Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, m)
}

// Wait blocks for d or until ctx is done.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
