package dto

// ChatMessage is one turn of the conversation as the API presents it.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload for POST /chat.
type ChatRequest struct {
	LetterID string `json:"letter_id" binding:"required"`
	Message  string `json:"message" binding:"required,min=1"`
}

// ChatResponse carries the assistant's reply plus the updated history.
type ChatResponse struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatMessage `json:"conversation_history"`
}
