package dto

import "letteron-backend/internal/reminder/domain"

// CreateReminderRequest is the payload for POST /reminders.
type CreateReminderRequest struct {
	LetterID     string `json:"letter_id" binding:"required"`
	ReminderTime int64  `json:"reminder_time" binding:"required"`
	Message      string `json:"message"`
}

// UpdateReminderRequest is the payload for PATCH /reminders/:id.
type UpdateReminderRequest struct {
	ReminderTime *int64  `json:"reminder_time,omitempty"`
	Message      *string `json:"message,omitempty"`
}

// ReminderResponse mirrors the stored reminder.
type ReminderResponse struct {
	ID           string `json:"id"`
	LetterID     string `json:"letter_id"`
	UserID       string `json:"user_id"`
	ReminderTime int64  `json:"reminder_time"`
	Message      string `json:"message"`
	Sent         bool   `json:"sent"`
	CreatedAt    int64  `json:"created_at"`
}

// FromDomain shapes a reminder for the response surface.
func FromDomain(r *domain.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:           r.ReminderID,
		LetterID:     r.LetterID,
		UserID:       r.UserID,
		ReminderTime: r.ReminderTime,
		Message:      r.Message,
		Sent:         r.Sent,
		CreatedAt:    r.CreatedAt,
	}
}

// FromDomainList converts a listing, never returning nil.
func FromDomainList(reminders []*domain.Reminder) []ReminderResponse {
	out := make([]ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, FromDomain(r))
	}
	return out
}
