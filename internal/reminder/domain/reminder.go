package domain

// Reminder schedules a one-shot notification tied to a letter. Times are
// unix seconds; Sent flips exactly once when the dispatcher claims it.
type Reminder struct {
	ReminderID   string `json:"reminder_id" gorm:"primaryKey"`
	UserID       string `json:"user_id" gorm:"index"`
	LetterID     string `json:"letter_id" gorm:"index"`
	ReminderTime int64  `json:"reminder_time" gorm:"index"`
	Message      string `json:"message"`
	Sent         bool   `json:"sent"`
	CreatedAt    int64  `json:"created_at"`
}
