package repository

import (
	"time"

	"letteron-backend/internal/chat/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormConversationRepository implements ConversationRepository using GORM
type gormConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new GORM-based ConversationRepository
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &gormConversationRepository{db: db}
}

func (r *gormConversationRepository) Create(message *domain.ConversationMessage) error {
	if message.MessageID == "" {
		message.MessageID = uuid.New().String()
	}
	if message.CreatedAt == 0 {
		message.CreatedAt = time.Now().UnixNano()
	}
	return r.db.Create(message).Error
}

func (r *gormConversationRepository) FindByLetter(letterID string, limit int) ([]*domain.ConversationMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var messages []*domain.ConversationMessage
	err := r.db.Where("letter_id = ?", letterID).
		Order("created_at ASC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

func (r *gormConversationRepository) DeleteByLetter(letterID string) (int, error) {
	result := r.db.Delete(&domain.ConversationMessage{}, "letter_id = ?", letterID)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}
