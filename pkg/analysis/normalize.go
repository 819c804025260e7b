package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Field defaults used whenever the model omits a required field or produces
// output that is not JSON at all.
const (
	DefaultSubject      = "Untitled Letter"
	DefaultSender       = "Unknown Sender"
	DefaultCategory     = "miscellaneous"
	DefaultActionStatus = "no-action-needed"
	DefaultSuggestion   = "Review this letter and decide if any action is needed."
)

const rawDiagnosticLimit = 500

// rawExtraction mirrors Extraction with pointers so that an absent field can
// be told apart from a zero value.
type rawExtraction struct {
	Subject       *string     `json:"subject"`
	Sender        *string     `json:"sender"`
	Category      *string     `json:"category"`
	ActionStatus  *string     `json:"action_status"`
	HasReminder   *bool       `json:"has_reminder"`
	ActionDueDate *string     `json:"action_due_date"`
	AISuggestion  *string     `json:"ai_suggestion"`
	Summary       string      `json:"summary"`
	KeyPoints     []string    `json:"key_points"`
	Amount        interface{} `json:"amount"`
	Confidence    string      `json:"confidence"`
}

func defaultExtraction(raw string) *Extraction {
	return &Extraction{
		Subject:      DefaultSubject,
		Sender:       DefaultSender,
		Category:     DefaultCategory,
		ActionStatus: DefaultActionStatus,
		HasReminder:  false,
		AISuggestion: DefaultSuggestion,
		Confidence:   "low",
		Raw:          truncate(raw, rawDiagnosticLimit),
	}
}

// Normalize turns a loosely-structured model response into a fully-populated
// Extraction. Models tend to wrap JSON in prose or code fences, so the
// payload is taken as the substring between the first '{' and the last '}'.
// Normalize never fails: unparseable input yields the all-defaults result
// with a low-confidence marker, a parsed object has each missing field
// filled individually.
func Normalize(raw string) *Extraction {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return defaultExtraction(raw)
	}

	var parsed rawExtraction
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return defaultExtraction(raw)
	}

	result := &Extraction{
		Subject:      DefaultSubject,
		Sender:       DefaultSender,
		Category:     DefaultCategory,
		ActionStatus: DefaultActionStatus,
		AISuggestion: DefaultSuggestion,
		Summary:      parsed.Summary,
		KeyPoints:    parsed.KeyPoints,
		Confidence:   parsed.Confidence,
	}

	if parsed.Subject != nil {
		result.Subject = *parsed.Subject
	}
	if parsed.Sender != nil {
		result.Sender = *parsed.Sender
	}
	if parsed.Category != nil {
		result.Category = *parsed.Category
	}
	if parsed.ActionStatus != nil {
		result.ActionStatus = *parsed.ActionStatus
	}
	if parsed.HasReminder != nil {
		result.HasReminder = *parsed.HasReminder
	}
	if parsed.ActionDueDate != nil && *parsed.ActionDueDate != "" {
		result.ActionDueDate = parsed.ActionDueDate
	}
	if parsed.AISuggestion != nil {
		result.AISuggestion = *parsed.AISuggestion
	}
	if parsed.Amount != nil {
		result.Amount = fmt.Sprint(parsed.Amount)
	}

	return result
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
