package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"letteron-backend/internal/letter/domain"
	"letteron-backend/internal/letter/dto"
)

// ProcessImages is the ingestion pipeline. Steps run in order: validate
// every file up front, upload to object storage under a fresh letter id,
// OCR the whole batch, analyze the merged text, then persist the letter.
// Any failure after the first upload triggers a best-effort cleanup of the
// letter's storage prefix so no orphaned objects accumulate.
func (u *letterUsecase) ProcessImages(ctx context.Context, userID string, files []dto.UploadedImage) (*dto.ImageProcessResponse, error) {
	if len(files) == 0 {
		return nil, &ValidationError{Msg: "no files provided"}
	}
	if len(files) > u.cfg.MaxFilesPerUpload {
		return nil, &ValidationError{Msg: fmt.Sprintf("too many files: maximum %d per upload", u.cfg.MaxFilesPerUpload)}
	}
	for _, f := range files {
		if int64(len(f.Content)) > u.cfg.MaxUploadSizeBytes() {
			return nil, &ValidationError{Msg: fmt.Sprintf("file %s exceeds the %dMB size limit", f.Filename, u.cfg.MaxUploadSizeMB)}
		}
		if !u.cfg.IsAllowedImageType(f.ContentType) {
			return nil, &ValidationError{Msg: fmt.Sprintf("file %s has unsupported type %s", f.Filename, f.ContentType)}
		}
	}

	letterID := uuid.New().String()
	log.Printf("[Letter] Processing %d image(s) for user %s as letter %s", len(files), userID, letterID)

	keys := make([]string, 0, len(files))
	urls := make([]string, 0, len(files))
	attachments := make(domain.AttachmentList, 0, len(files))
	for _, f := range files {
		result, err := u.store.UploadLetterImage(ctx, f.Content, letterID, f.Filename, f.ContentType)
		if err != nil {
			log.Printf("[Letter] Upload failed for %s: %v", f.Filename, err)
			u.cleanup(ctx, letterID)
			return nil, errors.New("error processing images")
		}
		keys = append(keys, result.Key)
		urls = append(urls, result.URL)
		attachments = append(attachments, domain.Attachment{
			Name: f.Filename,
			Size: formatSize(len(f.Content)),
			Type: f.ContentType,
			URL:  result.URL,
		})
	}

	pages, err := u.extractor.ExtractText(ctx, keys)
	if err != nil {
		log.Printf("[Letter] OCR failed for letter %s: %v", letterID, err)
		u.cleanup(ctx, letterID)
		return nil, errors.New("error processing images")
	}

	texts := make([]string, 0, len(pages))
	for _, page := range pages {
		if page.Error != "" {
			log.Printf("[Letter] OCR page error for %s: %s", page.Key, page.Error)
			continue
		}
		if page.Text != "" {
			texts = append(texts, page.Text)
		}
	}
	ocrText := strings.Join(texts, "; ")

	extraction, err := u.analyzer.Analyze(ctx, ocrText)
	if err != nil {
		log.Printf("[Letter] Analysis failed for letter %s: %v", letterID, err)
		u.cleanup(ctx, letterID)
		return nil, errors.New("error processing images")
	}

	now := u.now().UTC().Unix()
	letter := &domain.Letter{
		LetterID:        letterID,
		UserID:          userID,
		Subject:         extraction.Subject,
		SenderName:      extraction.Sender,
		Content:         ocrText,
		OCRText:         ocrText,
		OriginalImages:  domain.StringSlice(urls),
		Attachments:     attachments,
		LetterCategory:  domain.ParseCategory(extraction.Category),
		ActionStatus:    domain.ParseActionStatus(extraction.ActionStatus),
		ActionDueDate:   extraction.ActionDueDate,
		HasReminder:     extraction.HasReminder,
		AISuggestion:    extraction.AISuggestion,
		LetterDate:      now,
		RecordCreatedAt: now,
	}

	if err := u.letterRepo.Create(letter); err != nil {
		log.Printf("[Letter] Failed to persist letter %s: %v", letterID, err)
		u.cleanup(ctx, letterID)
		return nil, errors.New("error processing images")
	}

	return &dto.ImageProcessResponse{
		LetterID:       letter.LetterID,
		Subject:        letter.Subject,
		Sender:         letter.SenderName,
		Content:        letter.Content,
		LetterCategory: letter.LetterCategory,
		ActionStatus:   letter.ActionStatus,
		HasReminder:    letter.HasReminder,
		ActionDueDate:  letter.ActionDueDate,
		AISuggestion:   letter.AISuggestion,
		OriginalImages: urls,
	}, nil
}

// formatSize renders a byte count the way the client displays it, e.g.
// "156 KB".
func formatSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%d KB", n/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func (u *letterUsecase) cleanup(ctx context.Context, letterID string) {
	if n, err := u.store.DeleteLetterImages(ctx, letterID); err != nil {
		log.Printf("[Letter] Cleanup failed for letter %s: %v", letterID, err)
	} else if n > 0 {
		log.Printf("[Letter] Cleaned up %d object(s) for aborted letter %s", n, letterID)
	}
}
