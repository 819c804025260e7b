package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"letteron-backend/internal/chat/domain"
	"letteron-backend/internal/chat/dto"
	"letteron-backend/internal/chat/repository"
	letterrepo "letteron-backend/internal/letter/repository"
	"letteron-backend/pkg/analysis"
)

const historyLimit = 50

type chatUsecase struct {
	conversationRepo repository.ConversationRepository
	letterRepo       letterrepo.LetterRepository
	analyzer         analysis.Analyzer
}

// NewChatUsecase creates a new chat usecase
func NewChatUsecase(
	conversationRepo repository.ConversationRepository,
	letterRepo letterrepo.LetterRepository,
	analyzer analysis.Analyzer,
) ChatUsecase {
	return &chatUsecase{
		conversationRepo: conversationRepo,
		letterRepo:       letterRepo,
		analyzer:         analyzer,
	}
}

func (u *chatUsecase) Chat(ctx context.Context, userID string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	letter, err := u.letterRepo.FindByID(req.LetterID)
	if err != nil {
		return nil, err
	}
	if letter == nil || letter.UserID != userID {
		return nil, errors.New("letter not found")
	}

	history, err := u.conversationRepo.FindByLetter(req.LetterID, historyLimit)
	if err != nil {
		return nil, err
	}

	prompt := analysis.ChatPrompt(
		letter.Subject,
		letter.SenderName,
		string(letter.LetterCategory),
		letter.Content,
		renderHistory(history),
		req.Message,
	)

	reply, err := u.analyzer.Complete(ctx, req.Message, prompt, analysis.CompletionOptions{
		Temperature: 0.7,
		MaxTokens:   1000,
		History:     toMessages(history),
	})
	if err != nil {
		log.Printf("[Chat] Completion failed for letter %s: %v", req.LetterID, err)
		return nil, errors.New("error generating chat response")
	}

	userTurn := &domain.ConversationMessage{
		LetterID: req.LetterID,
		UserID:   userID,
		Role:     domain.RoleUser,
		Content:  req.Message,
	}
	assistantTurn := &domain.ConversationMessage{
		LetterID: req.LetterID,
		UserID:   userID,
		Role:     domain.RoleAssistant,
		Content:  reply,
	}
	if err := u.conversationRepo.Create(userTurn); err != nil {
		return nil, err
	}
	if err := u.conversationRepo.Create(assistantTurn); err != nil {
		return nil, err
	}

	full := make([]dto.ChatMessage, 0, len(history)+2)
	for _, m := range history {
		full = append(full, dto.ChatMessage{Role: m.Role, Content: m.Content})
	}
	full = append(full,
		dto.ChatMessage{Role: domain.RoleUser, Content: req.Message},
		dto.ChatMessage{Role: domain.RoleAssistant, Content: reply},
	)

	return &dto.ChatResponse{Message: reply, ConversationHistory: full}, nil
}

func (u *chatUsecase) ClearHistory(userID, letterID string) (int, error) {
	letter, err := u.letterRepo.FindByID(letterID)
	if err != nil {
		return 0, err
	}
	if letter == nil || letter.UserID != userID {
		return 0, errors.New("letter not found")
	}
	return u.conversationRepo.DeleteByLetter(letterID)
}

// renderHistory formats prior turns for the prompt template.
func renderHistory(history []*domain.ConversationMessage) string {
	var b strings.Builder
	for _, m := range history {
		label := "Assistant"
		if m.Role == domain.RoleUser {
			label = "User"
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}
	return b.String()
}

func toMessages(history []*domain.ConversationMessage) []analysis.Message {
	if len(history) == 0 {
		return nil
	}
	out := make([]analysis.Message, 0, len(history))
	for _, m := range history {
		out = append(out, analysis.Message{Role: m.Role, Content: m.Content})
	}
	return out
}
