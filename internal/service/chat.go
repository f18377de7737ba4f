package service

import (
	"familiaconnect/internal/domain"
	"familiaconnect/internal/repository"
)

// ChatService gives read-only access to conversations
type ChatService struct {
	chatRepo repository.ChatRepository
}

// NewChatService creates a new chat service
func NewChatService(chatRepo repository.ChatRepository) *ChatService {
	return &ChatService{chatRepo: chatRepo}
}

// Conversations returns the chat list split into family and global chats
func (s *ChatService) Conversations() (family, global []domain.Conversation) {
	for _, c := range s.chatRepo.ListConversations() {
		if c.Kind == domain.KindGlobal {
			global = append(global, c)
		} else {
			family = append(family, c)
		}
	}
	return family, global
}

// Conversation returns a single thread with its messages
func (s *ChatService) Conversation(id int) (*domain.Conversation, error) {
	return s.chatRepo.GetConversation(id)
}
