package repository

import "letteron-backend/internal/reminder/domain"

// ReminderRepository defines the interface for reminder data access
type ReminderRepository interface {
	// Create persists a new reminder.
	Create(reminder *domain.Reminder) error

	// FindByID finds a reminder by its ID, returning nil when absent.
	FindByID(id string) (*domain.Reminder, error)

	// FindByUser lists all of an owner's reminders, soonest first.
	FindByUser(userID string) ([]*domain.Reminder, error)

	// Update applies a field-level partial update.
	Update(id string, updates map[string]interface{}) (*domain.Reminder, error)

	// Delete removes the reminder.
	Delete(id string) error

	// FindPending returns unsent reminders due at or before now.
	FindPending(now int64) ([]*domain.Reminder, error)

	// ClaimSent flips sent from false to true and reports whether this
	// caller won the claim.
	ClaimSent(id string) (bool, error)
}
