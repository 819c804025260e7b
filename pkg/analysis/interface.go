package analysis

import "context"

// Message is one turn of a conversation forwarded to the LLM function.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionOptions tune a raw completion request.
type CompletionOptions struct {
	Temperature float64
	MaxTokens   int
	History     []Message
}

// Extraction is the strictly-typed result of analyzing a letter's text.
// Every field is populated after Normalize, either from the model output or
// from its documented default.
type Extraction struct {
	Subject       string   `json:"subject"`
	Sender        string   `json:"sender"`
	Category      string   `json:"category"`
	ActionStatus  string   `json:"action_status"`
	HasReminder   bool     `json:"has_reminder"`
	ActionDueDate *string  `json:"action_due_date"`
	AISuggestion  string   `json:"ai_suggestion"`

	// Advisory fields, not required downstream.
	Summary    string   `json:"summary,omitempty"`
	KeyPoints  []string `json:"key_points,omitempty"`
	Amount     string   `json:"amount,omitempty"`
	Confidence string   `json:"confidence,omitempty"`

	// Raw holds a truncated copy of the model output when parsing failed.
	Raw string `json:"-"`
}

// Analyzer is the interface for the external LLM service.
// Implement this interface to substitute fakes in tests or swap providers.
type Analyzer interface {
	// Analyze runs structured extraction over OCR text. Malformed model
	// output degrades to defaults via Normalize; an error is returned only
	// for transport or service level failures.
	Analyze(ctx context.Context, text string) (*Extraction, error)

	// Complete runs a raw completion with the given prompt, used for chat
	// and translation.
	Complete(ctx context.Context, text, prompt string, opts CompletionOptions) (string, error)
}
