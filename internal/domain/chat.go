package domain

import "time"

// ConversationKind separates household chats from cross-language ones
type ConversationKind string

const (
	KindFamily ConversationKind = "family"
	KindGlobal ConversationKind = "global"
)

// Conversation is a chat thread shown in the chat list
type Conversation struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"`
	Kind     ConversationKind `json:"kind"`
	Language string           `json:"language,omitempty"`
	Unread   int              `json:"unread"`
	Messages []Message        `json:"messages,omitempty"`
}

// LastMessage returns the most recent message, or nil for an empty thread
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}

// Message is a single chat line. Translation is supplied with the message
// and is never computed.
type Message struct {
	Sender      string    `json:"sender"`
	Text        string    `json:"text"`
	Translation string    `json:"translation,omitempty"`
	SentAt      time.Time `json:"sent_at"`
}
