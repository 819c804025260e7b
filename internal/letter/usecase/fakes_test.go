package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"letteron-backend/internal/letter/domain"
	"letteron-backend/internal/letter/dto"
	"letteron-backend/pkg/analysis"
	"letteron-backend/pkg/config"
	"letteron-backend/pkg/ocr"
	"letteron-backend/pkg/storage"
)

type fakeLetterRepo struct {
	letters    map[string]*domain.Letter
	created    []*domain.Letter
	updates    []map[string]interface{}
	deletedIDs []string
	createErr  error
}

func newFakeLetterRepo() *fakeLetterRepo {
	return &fakeLetterRepo{letters: map[string]*domain.Letter{}}
}

func (r *fakeLetterRepo) Create(letter *domain.Letter) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, letter)
	r.letters[letter.LetterID] = letter
	return nil
}

func (r *fakeLetterRepo) FindByID(id string) (*domain.Letter, error) {
	return r.letters[id], nil
}

func (r *fakeLetterRepo) FindByUser(userID string, filters dto.ListFilters) ([]*domain.Letter, error) {
	var out []*domain.Letter
	for _, l := range r.letters {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLetterRepo) Update(id string, updates map[string]interface{}) (*domain.Letter, error) {
	letter, ok := r.letters[id]
	if !ok {
		return nil, errors.New("letter not found")
	}
	r.updates = append(r.updates, updates)
	for k, v := range updates {
		switch k {
		case "subject":
			letter.Subject = v.(string)
		case "archived":
			letter.Archived = v.(bool)
		case "deleted":
			letter.Deleted = v.(bool)
		case "snoozed":
			letter.Snoozed = v.(bool)
		case "snooze_until":
			s := v.(string)
			letter.SnoozeUntil = &s
		case "read":
			letter.Read = v.(bool)
		case "flagged":
			letter.Flagged = v.(bool)
		case "user_note":
			letter.UserNote = v.(string)
		case "letter_category":
			letter.LetterCategory = v.(domain.LetterCategory)
		case "action_status":
			letter.ActionStatus = v.(domain.ActionStatus)
		case "translated_content":
			letter.TranslatedContent = v.(domain.StringMap)
		}
	}
	return letter, nil
}

func (r *fakeLetterRepo) Delete(id string) error {
	r.deletedIDs = append(r.deletedIDs, id)
	delete(r.letters, id)
	return nil
}

func (r *fakeLetterRepo) Search(userID, q string, limit int) ([]*domain.Letter, error) {
	return nil, nil
}

type uploadCall struct {
	letterID string
	filename string
}

type fakeStore struct {
	uploads     []uploadCall
	failAfter   int // fail the (failAfter+1)th upload; -1 never fails
	cleanedUp   []string
	deleteCount int
}

func newFakeStore() *fakeStore {
	return &fakeStore{failAfter: -1}
}

func (s *fakeStore) UploadLetterImage(ctx context.Context, content []byte, letterID, filename, contentType string) (*storage.UploadResult, error) {
	if s.failAfter >= 0 && len(s.uploads) >= s.failAfter {
		return nil, errors.New("boom")
	}
	s.uploads = append(s.uploads, uploadCall{letterID: letterID, filename: filename})
	key := fmt.Sprintf("letters/%s/%s", letterID, filename)
	return &storage.UploadResult{Key: key, URL: "https://example.test/" + key}, nil
}

func (s *fakeStore) PresignURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "https://example.test/" + key, nil
}

func (s *fakeStore) DeleteLetterImages(ctx context.Context, letterID string) (int, error) {
	s.cleanedUp = append(s.cleanedUp, letterID)
	return s.deleteCount, nil
}

type fakeExtractor struct {
	pages   []ocr.PageResult
	err     error
	gotKeys []string
}

func (e *fakeExtractor) ExtractText(ctx context.Context, keys []string) ([]ocr.PageResult, error) {
	e.gotKeys = keys
	if e.err != nil {
		return nil, e.err
	}
	if e.pages != nil {
		return e.pages, nil
	}
	pages := make([]ocr.PageResult, 0, len(keys))
	for i, k := range keys {
		pages = append(pages, ocr.PageResult{Key: k, Text: fmt.Sprintf("page %d", i+1), Confidence: 99})
	}
	return pages, nil
}

type fakeAnalyzer struct {
	extraction  *analysis.Extraction
	analyzeErr  error
	completion  string
	completeErr error
	gotText     string
	gotPrompt   string
	completions int
}

func (a *fakeAnalyzer) Analyze(ctx context.Context, text string) (*analysis.Extraction, error) {
	a.gotText = text
	if a.analyzeErr != nil {
		return nil, a.analyzeErr
	}
	if a.extraction != nil {
		return a.extraction, nil
	}
	return &analysis.Extraction{
		Subject:      analysis.DefaultSubject,
		Sender:       analysis.DefaultSender,
		Category:     analysis.DefaultCategory,
		ActionStatus: analysis.DefaultActionStatus,
		AISuggestion: analysis.DefaultSuggestion,
	}, nil
}

func (a *fakeAnalyzer) Complete(ctx context.Context, text, prompt string, opts analysis.CompletionOptions) (string, error) {
	a.gotPrompt = prompt
	a.completions++
	if a.completeErr != nil {
		return "", a.completeErr
	}
	return a.completion, nil
}

func testConfig() *config.Config {
	return &config.Config{
		MaxUploadSizeMB:   1,
		MaxFilesPerUpload: 3,
		AllowedImageTypes: []string{"image/jpeg", "image/png"},
	}
}

func newTestUsecase(repo *fakeLetterRepo, store *fakeStore, extractor *fakeExtractor, analyzer *fakeAnalyzer) *letterUsecase {
	u := NewLetterUsecase(repo, store, extractor, analyzer, testConfig()).(*letterUsecase)
	u.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return u
}
