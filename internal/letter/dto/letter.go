package dto

import (
	"time"

	"letteron-backend/internal/letter/domain"
)

// UploadedImage is one file received by the ingestion endpoint.
type UploadedImage struct {
	Content     []byte
	Filename    string
	ContentType string
}

// LetterUpdate lists the fields a PATCH may change; nil means untouched.
type LetterUpdate struct {
	Subject        *string `json:"subject,omitempty"`
	LetterCategory *string `json:"letter_category,omitempty"`
	ActionStatus   *string `json:"action_status,omitempty"`
	ActionDueDate  *string `json:"action_due_date,omitempty"`
	Flagged        *bool   `json:"flagged,omitempty"`
	Read           *bool   `json:"read,omitempty"`
	UserNote       *string `json:"user_note,omitempty"`
	Archived       *bool   `json:"archived,omitempty"`
	Snoozed        *bool   `json:"snoozed,omitempty"`
	SnoozeUntil    *string `json:"snooze_until,omitempty"`
}

// ListFilters narrow a per-owner listing.
type ListFilters struct {
	Archived *bool
	Deleted  *bool
	Flagged  *bool
	Snoozed  *bool
	Category *string
	Limit    int
}

// ImageProcessResponse is returned by POST /letters/process-images.
type ImageProcessResponse struct {
	LetterID       string                `json:"letter_id"`
	Subject        string                `json:"subject"`
	Sender         string                `json:"sender"`
	Content        string                `json:"content"`
	LetterCategory domain.LetterCategory `json:"letterCategory"`
	ActionStatus   domain.ActionStatus   `json:"actionStatus"`
	HasReminder    bool                  `json:"hasReminder"`
	ActionDueDate  *string               `json:"actionDueDate"`
	AISuggestion   string                `json:"aiSuggestion"`
	OriginalImages []string              `json:"originalImages"`
}

// LetterResponse is the API view of a letter; the camelCase field names
// match the frontend contract.
type LetterResponse struct {
	ID              string                `json:"id"`
	Subject         string                `json:"subject"`
	SenderName      string                `json:"sender_name"`
	SenderEmail     string                `json:"sender_email"`
	Content         string                `json:"content"`
	Date            string                `json:"date"`
	RecordCreatedAt string                `json:"recordCreatedAt"`
	Read            bool                  `json:"read"`
	Flagged         bool                  `json:"flagged"`
	Snoozed         bool                  `json:"snoozed"`
	SnoozeUntil     *string               `json:"snoozeUntil,omitempty"`
	Archived        bool                  `json:"archived"`
	Deleted         bool                  `json:"deleted"`
	LetterCategory  domain.LetterCategory `json:"letterCategory"`
	ActionStatus    domain.ActionStatus   `json:"actionStatus"`
	ActionDueDate   *string               `json:"actionDueDate,omitempty"`
	HasReminder     bool                  `json:"hasReminder"`
	AISuggestion    string                `json:"aiSuggestion"`
	UserNote        string                `json:"userNote"`
	Translated      map[string]string     `json:"translatedContent,omitempty"`
	Attachments     []domain.Attachment   `json:"attachments,omitempty"`
	OriginalImages  []string              `json:"originalImages"`
}

// TranslationRequest is the payload for POST /letters/:id/translate.
type TranslationRequest struct {
	TargetLanguage string `json:"target_language" binding:"required"`
}

// TranslationResponse returns one translation.
type TranslationResponse struct {
	TranslatedContent string `json:"translated_content"`
	Language          string `json:"language"`
}

// SnoozeRequest is the payload for POST /letters/:id/snooze.
type SnoozeRequest struct {
	SnoozeUntil string `json:"snooze_until" binding:"required"`
}

// SearchResponse wraps owner-scoped search results.
type SearchResponse struct {
	Results []LetterResponse `json:"results"`
	Total   int              `json:"total"`
	Query   string           `json:"query"`
}

// FromDomain shapes a stored letter for the response surface.
func FromDomain(l *domain.Letter) LetterResponse {
	return LetterResponse{
		ID:              l.LetterID,
		Subject:         l.Subject,
		SenderName:      l.SenderName,
		SenderEmail:     l.SenderEmail,
		Content:         l.Content,
		Date:            time.Unix(l.LetterDate, 0).UTC().Format(time.RFC3339),
		RecordCreatedAt: time.Unix(l.RecordCreatedAt, 0).UTC().Format(time.RFC3339),
		Read:            l.Read,
		Flagged:         l.Flagged,
		Snoozed:         l.Snoozed,
		SnoozeUntil:     l.SnoozeUntil,
		Archived:        l.Archived,
		Deleted:         l.Deleted,
		LetterCategory:  l.LetterCategory,
		ActionStatus:    l.ActionStatus,
		ActionDueDate:   l.ActionDueDate,
		HasReminder:     l.HasReminder,
		AISuggestion:    l.AISuggestion,
		UserNote:        l.UserNote,
		Translated:      l.TranslatedContent,
		Attachments:     l.Attachments,
		OriginalImages:  l.OriginalImages,
	}
}

// FromDomainList converts a listing, never returning nil so handlers emit
// [] instead of null.
func FromDomainList(letters []*domain.Letter) []LetterResponse {
	out := make([]LetterResponse, 0, len(letters))
	for _, l := range letters {
		out = append(out, FromDomain(l))
	}
	return out
}
