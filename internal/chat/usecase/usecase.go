package usecase

import (
	"context"

	"letteron-backend/internal/chat/dto"
)

// ChatUsecase defines the interface for letter chat business logic
type ChatUsecase interface {
	// Chat answers a question about one of the caller's letters and
	// appends both turns to the conversation history.
	Chat(ctx context.Context, userID string, req *dto.ChatRequest) (*dto.ChatResponse, error)

	// ClearHistory wipes the conversation for one of the caller's letters.
	ClearHistory(userID, letterID string) (int, error)
}
