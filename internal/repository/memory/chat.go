package memory

import (
	"time"

	"familiaconnect/internal/domain"
)

// ChatStore implements repository.ChatRepository over a fixed set of
// conversations. Nothing is ever sent or stored.
type ChatStore struct {
	conversations []domain.Conversation
}

// NewChatStore creates a chat store over the given conversations
func NewChatStore(conversations []domain.Conversation) *ChatStore {
	return &ChatStore{conversations: conversations}
}

// NewSampleChatStore creates a chat store with the sample family and global chats
func NewSampleChatStore(now time.Time) *ChatStore {
	at := func(ago time.Duration) time.Time { return now.Add(-ago) }

	return NewChatStore([]domain.Conversation{
		{
			ID: 1, Name: "Family Group", Kind: domain.KindFamily, Unread: 3,
			Messages: []domain.Message{
				{Sender: "Mom", Text: "Don't forget Sarah's soccer practice today at 3:30!", SentAt: at(50 * time.Minute)},
				{Sender: "Dad", Text: "I'll pick her up after work.", SentAt: at(40 * time.Minute)},
				{Sender: "Sarah", Text: "Thanks Dad! Can we get pizza after?", SentAt: at(30 * time.Minute)},
				{Sender: "Mom", Text: "Who's picking up groceries today?", SentAt: at(10 * time.Minute)},
			},
		},
		{
			ID: 2, Name: "Mom", Kind: domain.KindFamily,
			Messages: []domain.Message{
				{Sender: "Mom", Text: "Can you help Max with his homework tonight?", SentAt: at(time.Hour)},
			},
		},
		{
			ID: 3, Name: "Sarah", Kind: domain.KindFamily, Unread: 1,
			Messages: []domain.Message{
				{Sender: "Sarah", Text: "I finished cleaning my room!", SentAt: at(2 * time.Hour)},
			},
		},
		{
			ID: 4, Name: "Max", Kind: domain.KindFamily,
			Messages: []domain.Message{
				{Sender: "Max", Text: "Can I go to Jake's house on Saturday?", SentAt: at(24 * time.Hour)},
			},
		},
		{
			ID: 5, Name: "Grandparents (Spanish)", Kind: domain.KindGlobal, Language: "es", Unread: 2,
			Messages: []domain.Message{
				{Sender: "Grandma", Text: "¿Cómo están los niños?", Translation: "How are the children?", SentAt: at(3 * time.Hour)},
				{Sender: "Mom", Text: "They are doing great! Sarah won her soccer game yesterday.", Translation: "¡Les va muy bien! Sarah ganó su partido de fútbol ayer.", SentAt: at(3*time.Hour - 5*time.Minute)},
				{Sender: "Grandma", Text: "¡Qué maravilloso! Estamos muy orgullosos.", Translation: "How wonderful! We are very proud.", SentAt: at(3*time.Hour - 10*time.Minute)},
			},
		},
		{
			ID: 6, Name: "Cousins (French)", Kind: domain.KindGlobal, Language: "fr",
			Messages: []domain.Message{
				{Sender: "Claire", Text: "Nous viendrons vous rendre visite cet été", Translation: "We will come visit you this summer", SentAt: at(24 * time.Hour)},
			},
		},
		{
			ID: 7, Name: "Exchange Student (Japanese)", Kind: domain.KindGlobal, Language: "ja", Unread: 1,
			Messages: []domain.Message{
				{Sender: "Yuki", Text: "来週あなたの家に泊まってもいいですか？", Translation: "Can I stay at your home next week?", SentAt: at(48 * time.Hour)},
			},
		},
	})
}

// ListConversations returns every conversation
func (s *ChatStore) ListConversations() []domain.Conversation {
	out := make([]domain.Conversation, len(s.conversations))
	copy(out, s.conversations)
	return out
}

// GetConversation returns a conversation by id
func (s *ChatStore) GetConversation(id int) (*domain.Conversation, error) {
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			c := s.conversations[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}
