package repository

import (
	"errors"
	"time"

	"letteron-backend/internal/reminder/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormReminderRepository implements ReminderRepository using GORM
type gormReminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new GORM-based ReminderRepository
func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &gormReminderRepository{db: db}
}

func (r *gormReminderRepository) Create(reminder *domain.Reminder) error {
	if reminder.ReminderID == "" {
		reminder.ReminderID = uuid.New().String()
	}
	if reminder.CreatedAt == 0 {
		reminder.CreatedAt = time.Now().Unix()
	}
	return r.db.Create(reminder).Error
}

func (r *gormReminderRepository) FindByID(id string) (*domain.Reminder, error) {
	var reminder domain.Reminder
	err := r.db.Where("reminder_id = ?", id).First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *gormReminderRepository) FindByUser(userID string) ([]*domain.Reminder, error) {
	var reminders []*domain.Reminder
	err := r.db.Where("user_id = ?", userID).
		Order("reminder_time ASC").
		Find(&reminders).Error
	return reminders, err
}

func (r *gormReminderRepository) Update(id string, updates map[string]interface{}) (*domain.Reminder, error) {
	result := r.db.Model(&domain.Reminder{}).Where("reminder_id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindByID(id)
}

func (r *gormReminderRepository) Delete(id string) error {
	return r.db.Delete(&domain.Reminder{}, "reminder_id = ?", id).Error
}

func (r *gormReminderRepository) FindPending(now int64) ([]*domain.Reminder, error) {
	var reminders []*domain.Reminder
	err := r.db.Where("reminder_time <= ? AND sent = ?", now, false).
		Order("reminder_time ASC").
		Find(&reminders).Error
	return reminders, err
}

// ClaimSent uses a conditional update so concurrent dispatchers cannot both
// deliver the same reminder.
func (r *gormReminderRepository) ClaimSent(id string) (bool, error) {
	result := r.db.Model(&domain.Reminder{}).
		Where("reminder_id = ? AND sent = ?", id, false).
		Update("sent", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
