package usecase

import (
	"errors"
	"time"

	letterrepo "letteron-backend/internal/letter/repository"
	"letteron-backend/internal/reminder/domain"
	"letteron-backend/internal/reminder/dto"
	"letteron-backend/internal/reminder/repository"
)

type reminderUsecase struct {
	reminderRepo repository.ReminderRepository
	letterRepo   letterrepo.LetterRepository
	now          func() time.Time
}

// NewReminderUsecase creates a new reminder usecase
func NewReminderUsecase(reminderRepo repository.ReminderRepository, letterRepo letterrepo.LetterRepository) ReminderUsecase {
	return &reminderUsecase{
		reminderRepo: reminderRepo,
		letterRepo:   letterRepo,
		now:          time.Now,
	}
}

func (u *reminderUsecase) ownedReminder(userID, reminderID string) (*domain.Reminder, error) {
	reminder, err := u.reminderRepo.FindByID(reminderID)
	if err != nil {
		return nil, err
	}
	if reminder == nil || reminder.UserID != userID {
		return nil, errors.New("reminder not found")
	}
	return reminder, nil
}

func (u *reminderUsecase) CreateReminder(userID string, req *dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	letter, err := u.letterRepo.FindByID(req.LetterID)
	if err != nil {
		return nil, err
	}
	if letter == nil || letter.UserID != userID {
		return nil, errors.New("letter not found")
	}
	if req.ReminderTime <= u.now().Unix() {
		return nil, errors.New("reminder time must be in the future")
	}

	reminder := &domain.Reminder{
		UserID:       userID,
		LetterID:     req.LetterID,
		ReminderTime: req.ReminderTime,
		Message:      req.Message,
		CreatedAt:    u.now().Unix(),
	}
	if err := u.reminderRepo.Create(reminder); err != nil {
		return nil, err
	}

	if _, err := u.letterRepo.Update(req.LetterID, map[string]interface{}{"has_reminder": true}); err != nil {
		return nil, err
	}

	resp := dto.FromDomain(reminder)
	return &resp, nil
}

func (u *reminderUsecase) ListReminders(userID string) ([]dto.ReminderResponse, error) {
	reminders, err := u.reminderRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return dto.FromDomainList(reminders), nil
}

func (u *reminderUsecase) GetReminder(userID, reminderID string) (*dto.ReminderResponse, error) {
	reminder, err := u.ownedReminder(userID, reminderID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromDomain(reminder)
	return &resp, nil
}

func (u *reminderUsecase) UpdateReminder(userID, reminderID string, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error) {
	if _, err := u.ownedReminder(userID, reminderID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.ReminderTime != nil {
		if *req.ReminderTime <= u.now().Unix() {
			return nil, errors.New("reminder time must be in the future")
		}
		updates["reminder_time"] = *req.ReminderTime
	}
	if req.Message != nil {
		updates["message"] = *req.Message
	}

	if len(updates) == 0 {
		return u.GetReminder(userID, reminderID)
	}

	reminder, err := u.reminderRepo.Update(reminderID, updates)
	if err != nil {
		return nil, err
	}
	resp := dto.FromDomain(reminder)
	return &resp, nil
}

func (u *reminderUsecase) DeleteReminder(userID, reminderID string) error {
	reminder, err := u.ownedReminder(userID, reminderID)
	if err != nil {
		return err
	}

	if err := u.reminderRepo.Delete(reminderID); err != nil {
		return err
	}

	// clear the letter flag only when no other reminder points at it
	remaining, err := u.reminderRepo.FindByUser(userID)
	if err != nil {
		return err
	}
	for _, r := range remaining {
		if r.LetterID == reminder.LetterID {
			return nil
		}
	}
	_, err = u.letterRepo.Update(reminder.LetterID, map[string]interface{}{"has_reminder": false})
	return err
}
