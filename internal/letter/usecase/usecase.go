package usecase

import (
	"context"
	"errors"

	"letteron-backend/internal/letter/dto"
)

// ValidationError marks caller mistakes so that delivery can answer 400
// instead of the generic processing error.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// IsValidation reports whether err is a caller input error.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// LetterUsecase defines the interface for letter business logic
type LetterUsecase interface {
	// ProcessImages runs the ingestion pipeline: validate, upload, OCR,
	// analyze, materialize. It is the only way letters are created.
	ProcessImages(ctx context.Context, userID string, files []dto.UploadedImage) (*dto.ImageProcessResponse, error)

	// ListLetters lists the owner's letters, newest first.
	ListLetters(userID string, filters dto.ListFilters) ([]dto.LetterResponse, error)

	// GetLetter returns one owner-checked letter.
	GetLetter(userID, letterID string) (*dto.LetterResponse, error)

	// UpdateLetter applies a field-level partial update.
	UpdateLetter(userID, letterID string, updates *dto.LetterUpdate) (*dto.LetterResponse, error)

	// DeleteLetter soft-deletes by default; permanent removes the record
	// and every stored image for the letter.
	DeleteLetter(ctx context.Context, userID, letterID string, permanent bool) error

	// Snooze hides the letter until a future timestamp.
	Snooze(userID, letterID, snoozeUntil string) (*dto.LetterResponse, error)

	// Archive moves the letter out of the default view.
	Archive(userID, letterID string) (*dto.LetterResponse, error)

	// Restore clears archived, snoozed and deleted together.
	Restore(userID, letterID string) (*dto.LetterResponse, error)

	// Translate renders the letter's content in the target language and
	// merges it into the letter's translation map.
	Translate(ctx context.Context, userID, letterID, targetLanguage string) (*dto.TranslationResponse, error)

	// Search matches q as a substring across subject, sender, content and
	// OCR text, owner-scoped.
	Search(userID, q string, limit int) (*dto.SearchResponse, error)
}
