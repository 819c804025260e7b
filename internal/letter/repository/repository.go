package repository

import (
	"letteron-backend/internal/letter/domain"
	"letteron-backend/internal/letter/dto"
)

// LetterRepository defines the interface for letter data access
type LetterRepository interface {
	// Create persists a fully materialized letter.
	Create(letter *domain.Letter) error

	// FindByID finds a letter by its ID, soft-deleted records included.
	FindByID(id string) (*domain.Letter, error)

	// FindByUser lists an owner's letters newest first, applying the given
	// flag/category filters.
	FindByUser(userID string, filters dto.ListFilters) ([]*domain.Letter, error)

	// Update applies a field-level partial update.
	Update(id string, updates map[string]interface{}) (*domain.Letter, error)

	// Delete removes the record permanently.
	Delete(id string) error

	// Search matches q as a case-insensitive substring over subject,
	// sender name, content and OCR text, scoped to the owner.
	Search(userID, q string, limit int) ([]*domain.Letter, error)
}
