package chatbot

import "time"

// Kind tags a bot message so the UI can style it.
type Kind string

const (
	KindNormal     Kind = "normal"
	KindSuggestion Kind = "suggestion"
	KindCrisis     Kind = "crisis"
)

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one line of a conversation.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Kind      Kind      `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}
