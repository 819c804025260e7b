package repository

import "letteron-backend/internal/chat/domain"

// ConversationRepository defines the interface for chat history access
type ConversationRepository interface {
	// Create appends one message to a letter's conversation.
	Create(message *domain.ConversationMessage) error

	// FindByLetter returns a letter's conversation oldest first, capped at
	// limit messages.
	FindByLetter(letterID string, limit int) ([]*domain.ConversationMessage, error)

	// DeleteByLetter clears a letter's conversation and returns how many
	// messages were removed.
	DeleteByLetter(letterID string) (int, error)
}
