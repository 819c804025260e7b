package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"letteron-backend/internal/letter/domain"
	"letteron-backend/internal/letter/dto"
	"letteron-backend/internal/letter/repository"
	"letteron-backend/pkg/analysis"
	"letteron-backend/pkg/config"
	"letteron-backend/pkg/ocr"
	"letteron-backend/pkg/storage"
)

type letterUsecase struct {
	letterRepo repository.LetterRepository
	store      storage.ObjectStore
	extractor  ocr.Extractor
	analyzer   analysis.Analyzer
	cfg        *config.Config
	now        func() time.Time
}

// NewLetterUsecase creates a new letter usecase
func NewLetterUsecase(
	letterRepo repository.LetterRepository,
	store storage.ObjectStore,
	extractor ocr.Extractor,
	analyzer analysis.Analyzer,
	cfg *config.Config,
) LetterUsecase {
	return &letterUsecase{
		letterRepo: letterRepo,
		store:      store,
		extractor:  extractor,
		analyzer:   analyzer,
		cfg:        cfg,
		now:        time.Now,
	}
}

// ownedLetter loads a letter and checks ownership. A missing letter and a
// foreign letter produce the same error so callers cannot probe ids.
func (u *letterUsecase) ownedLetter(userID, letterID string) (*domain.Letter, error) {
	letter, err := u.letterRepo.FindByID(letterID)
	if err != nil {
		return nil, err
	}
	if letter == nil || letter.UserID != userID {
		return nil, errors.New("letter not found")
	}
	return letter, nil
}

func (u *letterUsecase) respond(letter *domain.Letter) (*dto.LetterResponse, error) {
	resp := dto.FromDomain(letter)
	return &resp, nil
}

func (u *letterUsecase) ListLetters(userID string, filters dto.ListFilters) ([]dto.LetterResponse, error) {
	letters, err := u.letterRepo.FindByUser(userID, filters)
	if err != nil {
		return nil, err
	}
	return dto.FromDomainList(letters), nil
}

func (u *letterUsecase) GetLetter(userID, letterID string) (*dto.LetterResponse, error) {
	letter, err := u.ownedLetter(userID, letterID)
	if err != nil {
		return nil, err
	}
	return u.respond(letter)
}

func (u *letterUsecase) UpdateLetter(userID, letterID string, updates *dto.LetterUpdate) (*dto.LetterResponse, error) {
	letter, err := u.ownedLetter(userID, letterID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if updates.Subject != nil {
		fields["subject"] = *updates.Subject
	}
	if updates.LetterCategory != nil {
		category := domain.LetterCategory(*updates.LetterCategory)
		if !category.IsValid() {
			return nil, &ValidationError{Msg: fmt.Sprintf("invalid letter category: %s", *updates.LetterCategory)}
		}
		fields["letter_category"] = category
	}
	if updates.ActionStatus != nil {
		status := domain.ActionStatus(*updates.ActionStatus)
		if !status.IsValid() {
			return nil, &ValidationError{Msg: fmt.Sprintf("invalid action status: %s", *updates.ActionStatus)}
		}
		fields["action_status"] = status
	}
	if updates.ActionDueDate != nil {
		fields["action_due_date"] = *updates.ActionDueDate
	}
	if updates.Flagged != nil {
		fields["flagged"] = *updates.Flagged
	}
	if updates.Read != nil {
		fields["read"] = *updates.Read
	}
	if updates.UserNote != nil {
		fields["user_note"] = *updates.UserNote
	}
	if updates.Archived != nil {
		fields["archived"] = *updates.Archived
	}
	if updates.Snoozed != nil {
		fields["snoozed"] = *updates.Snoozed
	}
	if updates.SnoozeUntil != nil {
		fields["snooze_until"] = *updates.SnoozeUntil
	}

	if len(fields) == 0 {
		return u.respond(letter)
	}

	updated, err := u.letterRepo.Update(letterID, fields)
	if err != nil {
		return nil, err
	}
	return u.respond(updated)
}

func (u *letterUsecase) DeleteLetter(ctx context.Context, userID, letterID string, permanent bool) error {
	if _, err := u.ownedLetter(userID, letterID); err != nil {
		return err
	}

	if !permanent {
		_, err := u.letterRepo.Update(letterID, map[string]interface{}{"deleted": true})
		return err
	}

	if err := u.letterRepo.Delete(letterID); err != nil {
		return err
	}
	if _, err := u.store.DeleteLetterImages(ctx, letterID); err != nil {
		// The record is already gone; orphaned objects are only a cost issue.
		log.Printf("[Letter] Failed to delete images for letter %s: %v", letterID, err)
	}
	return nil
}

func (u *letterUsecase) Snooze(userID, letterID, snoozeUntil string) (*dto.LetterResponse, error) {
	if _, err := u.ownedLetter(userID, letterID); err != nil {
		return nil, err
	}

	until, err := time.Parse(time.RFC3339, snoozeUntil)
	if err != nil {
		return nil, &ValidationError{Msg: "snooze_until must be an RFC3339 timestamp"}
	}
	if !until.After(u.now()) {
		return nil, &ValidationError{Msg: "snooze time must be in the future"}
	}

	letter, err := u.letterRepo.Update(letterID, map[string]interface{}{
		"snoozed":      true,
		"snooze_until": snoozeUntil,
	})
	if err != nil {
		return nil, err
	}
	return u.respond(letter)
}

func (u *letterUsecase) Archive(userID, letterID string) (*dto.LetterResponse, error) {
	if _, err := u.ownedLetter(userID, letterID); err != nil {
		return nil, err
	}
	letter, err := u.letterRepo.Update(letterID, map[string]interface{}{"archived": true})
	if err != nil {
		return nil, err
	}
	return u.respond(letter)
}

func (u *letterUsecase) Restore(userID, letterID string) (*dto.LetterResponse, error) {
	if _, err := u.ownedLetter(userID, letterID); err != nil {
		return nil, err
	}
	// snooze_until is kept on purpose so the client can show when the
	// letter had been snoozed to.
	letter, err := u.letterRepo.Update(letterID, map[string]interface{}{
		"archived": false,
		"snoozed":  false,
		"deleted":  false,
	})
	if err != nil {
		return nil, err
	}
	return u.respond(letter)
}

func (u *letterUsecase) Translate(ctx context.Context, userID, letterID, targetLanguage string) (*dto.TranslationResponse, error) {
	letter, err := u.ownedLetter(userID, letterID)
	if err != nil {
		return nil, err
	}
	if targetLanguage == "" {
		return nil, &ValidationError{Msg: "target_language is required"}
	}

	source := letter.Content
	if source == "" {
		source = letter.OCRText
	}
	if source == "" {
		return nil, &ValidationError{Msg: "letter has no content to translate"}
	}

	translated, err := u.analyzer.Complete(ctx, source, analysis.TranslatePrompt(targetLanguage, source), analysis.CompletionOptions{
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		log.Printf("[Letter] Translation failed for letter %s: %v", letterID, err)
		return nil, errors.New("error translating letter")
	}

	translations := letter.TranslatedContent
	if translations == nil {
		translations = domain.StringMap{}
	}
	translations[targetLanguage] = translated

	if _, err := u.letterRepo.Update(letterID, map[string]interface{}{"translated_content": translations}); err != nil {
		return nil, err
	}

	return &dto.TranslationResponse{TranslatedContent: translated, Language: targetLanguage}, nil
}

func (u *letterUsecase) Search(userID, q string, limit int) (*dto.SearchResponse, error) {
	if q == "" {
		return &dto.SearchResponse{Results: []dto.LetterResponse{}, Total: 0, Query: q}, nil
	}
	letters, err := u.letterRepo.Search(userID, q, limit)
	if err != nil {
		return nil, err
	}
	results := dto.FromDomainList(letters)
	return &dto.SearchResponse{Results: results, Total: len(results), Query: q}, nil
}
