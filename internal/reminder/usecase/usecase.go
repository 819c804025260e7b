package usecase

import "letteron-backend/internal/reminder/dto"

// ReminderUsecase defines the interface for reminder business logic
type ReminderUsecase interface {
	// CreateReminder schedules a reminder on one of the caller's letters
	// and marks the letter as having a reminder.
	CreateReminder(userID string, req *dto.CreateReminderRequest) (*dto.ReminderResponse, error)

	// ListReminders lists the caller's reminders, soonest first.
	ListReminders(userID string) ([]dto.ReminderResponse, error)

	// GetReminder returns one owner-checked reminder.
	GetReminder(userID, reminderID string) (*dto.ReminderResponse, error)

	// UpdateReminder changes the time or message of a pending reminder.
	UpdateReminder(userID, reminderID string, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error)

	// DeleteReminder removes a reminder and clears the letter's
	// has_reminder flag when it was the last one.
	DeleteReminder(userID, reminderID string) error
}
