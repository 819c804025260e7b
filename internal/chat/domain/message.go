package domain

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationMessage is one turn of the per-letter chat history.
type ConversationMessage struct {
	MessageID string `json:"message_id" gorm:"primaryKey"`
	LetterID  string `json:"letter_id" gorm:"index"`
	UserID    string `json:"user_id" gorm:"index"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at" gorm:"index"`
}
