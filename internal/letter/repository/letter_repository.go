package repository

import (
	"errors"
	"time"

	"letteron-backend/internal/letter/domain"
	"letteron-backend/internal/letter/dto"

	"gorm.io/gorm"
)

// gormLetterRepository implements LetterRepository using GORM
type gormLetterRepository struct {
	db *gorm.DB
}

// NewLetterRepository creates a new GORM-based LetterRepository
func NewLetterRepository(db *gorm.DB) LetterRepository {
	return &gormLetterRepository{db: db}
}

func (r *gormLetterRepository) Create(letter *domain.Letter) error {
	if letter.RecordCreatedAt == 0 {
		letter.RecordCreatedAt = time.Now().Unix()
	}
	return r.db.Create(letter).Error
}

func (r *gormLetterRepository) FindByID(id string) (*domain.Letter, error) {
	var letter domain.Letter
	err := r.db.Where("letter_id = ?", id).First(&letter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &letter, nil
}

func (r *gormLetterRepository) FindByUser(userID string, filters dto.ListFilters) ([]*domain.Letter, error) {
	query := r.db.Model(&domain.Letter{}).Where("user_id = ?", userID)

	if filters.Archived != nil {
		query = query.Where("archived = ?", *filters.Archived)
	}
	if filters.Deleted != nil {
		query = query.Where("deleted = ?", *filters.Deleted)
	}
	if filters.Flagged != nil {
		query = query.Where("flagged = ?", *filters.Flagged)
	}
	if filters.Snoozed != nil {
		query = query.Where("snoozed = ?", *filters.Snoozed)
	}
	if filters.Category != nil {
		query = query.Where("letter_category = ?", *filters.Category)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}

	var letters []*domain.Letter
	err := query.Order("record_created_at DESC").Limit(limit).Find(&letters).Error
	return letters, err
}

func (r *gormLetterRepository) Update(id string, updates map[string]interface{}) (*domain.Letter, error) {
	result := r.db.Model(&domain.Letter{}).Where("letter_id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindByID(id)
}

func (r *gormLetterRepository) Delete(id string) error {
	return r.db.Delete(&domain.Letter{}, "letter_id = ?", id).Error
}

func (r *gormLetterRepository) Search(userID, q string, limit int) ([]*domain.Letter, error) {
	if limit <= 0 {
		limit = 20
	}

	pattern := "%" + q + "%"
	var letters []*domain.Letter
	err := r.db.Where("user_id = ?", userID).
		Where("subject ILIKE ? OR sender_name ILIKE ? OR content ILIKE ? OR ocr_text ILIKE ?",
			pattern, pattern, pattern, pattern).
		Order("record_created_at DESC").
		Limit(limit).
		Find(&letters).Error
	return letters, err
}
