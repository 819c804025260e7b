package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	letterdomain "letteron-backend/internal/letter/domain"
	letterdto "letteron-backend/internal/letter/dto"
	"letteron-backend/internal/reminder/domain"
	"letteron-backend/internal/reminder/dto"
)

type fakeReminderRepo struct {
	reminders map[string]*domain.Reminder
	deleted   []string
	seq       int
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: map[string]*domain.Reminder{}}
}

func (r *fakeReminderRepo) Create(reminder *domain.Reminder) error {
	if reminder.ReminderID == "" {
		r.seq++
		reminder.ReminderID = fmt.Sprintf("r%d", r.seq)
	}
	r.reminders[reminder.ReminderID] = reminder
	return nil
}

func (r *fakeReminderRepo) FindByID(id string) (*domain.Reminder, error) {
	return r.reminders[id], nil
}

func (r *fakeReminderRepo) FindByUser(userID string) ([]*domain.Reminder, error) {
	var out []*domain.Reminder
	for _, rem := range r.reminders {
		if rem.UserID == userID {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (r *fakeReminderRepo) Update(id string, updates map[string]interface{}) (*domain.Reminder, error) {
	rem, ok := r.reminders[id]
	if !ok {
		return nil, errors.New("reminder not found")
	}
	if v, ok := updates["reminder_time"]; ok {
		rem.ReminderTime = v.(int64)
	}
	if v, ok := updates["message"]; ok {
		rem.Message = v.(string)
	}
	if v, ok := updates["sent"]; ok {
		rem.Sent = v.(bool)
	}
	return rem, nil
}

func (r *fakeReminderRepo) Delete(id string) error {
	r.deleted = append(r.deleted, id)
	delete(r.reminders, id)
	return nil
}

func (r *fakeReminderRepo) FindPending(now int64) ([]*domain.Reminder, error) {
	var out []*domain.Reminder
	for _, rem := range r.reminders {
		if !rem.Sent && rem.ReminderTime <= now {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (r *fakeReminderRepo) ClaimSent(id string) (bool, error) {
	rem, ok := r.reminders[id]
	if !ok || rem.Sent {
		return false, nil
	}
	rem.Sent = true
	return true, nil
}

type fakeLetterRepo struct {
	letters map[string]*letterdomain.Letter
	updates map[string][]map[string]interface{}
}

func newFakeLetterRepo() *fakeLetterRepo {
	return &fakeLetterRepo{
		letters: map[string]*letterdomain.Letter{},
		updates: map[string][]map[string]interface{}{},
	}
}

func (r *fakeLetterRepo) Create(letter *letterdomain.Letter) error {
	r.letters[letter.LetterID] = letter
	return nil
}

func (r *fakeLetterRepo) FindByID(id string) (*letterdomain.Letter, error) {
	return r.letters[id], nil
}

func (r *fakeLetterRepo) FindByUser(userID string, filters letterdto.ListFilters) ([]*letterdomain.Letter, error) {
	return nil, nil
}

func (r *fakeLetterRepo) Update(id string, updates map[string]interface{}) (*letterdomain.Letter, error) {
	letter, ok := r.letters[id]
	if !ok {
		return nil, errors.New("letter not found")
	}
	r.updates[id] = append(r.updates[id], updates)
	if v, ok := updates["has_reminder"]; ok {
		letter.HasReminder = v.(bool)
	}
	return letter, nil
}

func (r *fakeLetterRepo) Delete(id string) error {
	delete(r.letters, id)
	return nil
}

func (r *fakeLetterRepo) Search(userID, q string, limit int) ([]*letterdomain.Letter, error) {
	return nil, nil
}

var testClock = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestUsecase(reminderRepo *fakeReminderRepo, letterRepo *fakeLetterRepo) *reminderUsecase {
	u := NewReminderUsecase(reminderRepo, letterRepo).(*reminderUsecase)
	u.now = func() time.Time { return testClock }
	return u
}

func seedLetter(repo *fakeLetterRepo, id, userID string) {
	repo.letters[id] = &letterdomain.Letter{LetterID: id, UserID: userID}
}

func TestCreateReminderMarksLetter(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	letterRepo := newFakeLetterRepo()
	seedLetter(letterRepo, "l1", "owner")
	u := newTestUsecase(reminderRepo, letterRepo)

	resp, err := u.CreateReminder("owner", &dto.CreateReminderRequest{
		LetterID:     "l1",
		ReminderTime: testClock.Unix() + 3600,
		Message:      "pay the bill",
	})
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}
	if resp.ID == "" || resp.Sent {
		t.Errorf("unexpected response: %+v", resp)
	}
	if !letterRepo.letters["l1"].HasReminder {
		t.Errorf("letter has_reminder not set")
	}
}

func TestCreateReminderRejectsPastTime(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	letterRepo := newFakeLetterRepo()
	seedLetter(letterRepo, "l1", "owner")
	u := newTestUsecase(reminderRepo, letterRepo)

	_, err := u.CreateReminder("owner", &dto.CreateReminderRequest{
		LetterID:     "l1",
		ReminderTime: testClock.Unix() - 1,
	})
	if err == nil || err.Error() != "reminder time must be in the future" {
		t.Errorf("err = %v", err)
	}
	// the boundary itself is also rejected
	_, err = u.CreateReminder("owner", &dto.CreateReminderRequest{
		LetterID:     "l1",
		ReminderTime: testClock.Unix(),
	})
	if err == nil {
		t.Errorf("now() should not be a valid reminder time")
	}
	if len(reminderRepo.reminders) != 0 {
		t.Errorf("nothing should have been stored")
	}
}

func TestCreateReminderForeignLetter(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	letterRepo := newFakeLetterRepo()
	seedLetter(letterRepo, "l1", "owner")
	u := newTestUsecase(reminderRepo, letterRepo)

	_, err := u.CreateReminder("intruder", &dto.CreateReminderRequest{
		LetterID:     "l1",
		ReminderTime: testClock.Unix() + 3600,
	})
	if err == nil || err.Error() != "letter not found" {
		t.Errorf("foreign letter must look missing, got %v", err)
	}
}

func TestUpdateReminderValidatesNewTime(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	letterRepo := newFakeLetterRepo()
	seedLetter(letterRepo, "l1", "owner")
	u := newTestUsecase(reminderRepo, letterRepo)

	created, err := u.CreateReminder("owner", &dto.CreateReminderRequest{
		LetterID:     "l1",
		ReminderTime: testClock.Unix() + 3600,
	})
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}

	past := testClock.Unix() - 10
	if _, err := u.UpdateReminder("owner", created.ID, &dto.UpdateReminderRequest{ReminderTime: &past}); err == nil {
		t.Errorf("past time update should be rejected")
	}

	msg := "new note"
	resp, err := u.UpdateReminder("owner", created.ID, &dto.UpdateReminderRequest{Message: &msg})
	if err != nil {
		t.Fatalf("UpdateReminder: %v", err)
	}
	if resp.Message != "new note" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestDeleteReminderRecomputesLetterFlag(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	letterRepo := newFakeLetterRepo()
	seedLetter(letterRepo, "l1", "owner")
	u := newTestUsecase(reminderRepo, letterRepo)

	first, _ := u.CreateReminder("owner", &dto.CreateReminderRequest{LetterID: "l1", ReminderTime: testClock.Unix() + 100})
	second, _ := u.CreateReminder("owner", &dto.CreateReminderRequest{LetterID: "l1", ReminderTime: testClock.Unix() + 200})

	if err := u.DeleteReminder("owner", first.ID); err != nil {
		t.Fatalf("DeleteReminder: %v", err)
	}
	if !letterRepo.letters["l1"].HasReminder {
		t.Errorf("flag cleared while another reminder remains")
	}

	if err := u.DeleteReminder("owner", second.ID); err != nil {
		t.Fatalf("DeleteReminder: %v", err)
	}
	if letterRepo.letters["l1"].HasReminder {
		t.Errorf("flag should clear after the last reminder goes")
	}
}

func TestDeleteReminderForeignOwner(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	letterRepo := newFakeLetterRepo()
	seedLetter(letterRepo, "l1", "owner")
	u := newTestUsecase(reminderRepo, letterRepo)

	created, _ := u.CreateReminder("owner", &dto.CreateReminderRequest{LetterID: "l1", ReminderTime: testClock.Unix() + 100})

	err := u.DeleteReminder("intruder", created.ID)
	if err == nil || err.Error() != "reminder not found" {
		t.Errorf("foreign delete must look missing, got %v", err)
	}
	if len(reminderRepo.deleted) != 0 {
		t.Errorf("nothing should have been deleted")
	}
}
