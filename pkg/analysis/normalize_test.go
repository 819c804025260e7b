package analysis

import (
	"strings"
	"testing"
)

func TestNormalizeCompleteResponse(t *testing.T) {
	raw := `{
		"subject": "Electricity Bill",
		"sender": "City Power Co",
		"category": "financial-billing",
		"action_status": "require-action",
		"has_reminder": true,
		"action_due_date": "2024-02-01",
		"ai_suggestion": "Pay before the due date.",
		"summary": "A bill.",
		"amount": "50.00",
		"confidence": "high"
	}`

	got := Normalize(raw)

	if got.Subject != "Electricity Bill" {
		t.Errorf("Subject = %q", got.Subject)
	}
	if got.Sender != "City Power Co" {
		t.Errorf("Sender = %q", got.Sender)
	}
	if got.Category != "financial-billing" {
		t.Errorf("Category = %q", got.Category)
	}
	if got.ActionStatus != "require-action" {
		t.Errorf("ActionStatus = %q", got.ActionStatus)
	}
	if !got.HasReminder {
		t.Error("HasReminder = false, want true")
	}
	if got.ActionDueDate == nil || *got.ActionDueDate != "2024-02-01" {
		t.Errorf("ActionDueDate = %v", got.ActionDueDate)
	}
	if got.AISuggestion != "Pay before the due date." {
		t.Errorf("AISuggestion = %q", got.AISuggestion)
	}
	if got.Amount != "50.00" {
		t.Errorf("Amount = %q", got.Amount)
	}
	if got.Confidence != "high" {
		t.Errorf("Confidence = %q", got.Confidence)
	}
}

func TestNormalizeStripsSurroundingProse(t *testing.T) {
	raw := "Sure! Here is the analysis you asked for:\n```json\n" +
		`{"subject": "Tax Notice", "sender": "IRS"}` +
		"\n```\nLet me know if you need anything else."

	got := Normalize(raw)

	if got.Subject != "Tax Notice" {
		t.Errorf("Subject = %q, want %q", got.Subject, "Tax Notice")
	}
	if got.Sender != "IRS" {
		t.Errorf("Sender = %q, want %q", got.Sender, "IRS")
	}
}

func TestNormalizeFillsMissingFieldsIndividually(t *testing.T) {
	got := Normalize(`{"subject": "Kept", "has_reminder": true}`)

	if got.Subject != "Kept" {
		t.Errorf("present field overwritten: Subject = %q", got.Subject)
	}
	if !got.HasReminder {
		t.Error("present field overwritten: HasReminder = false")
	}
	if got.Sender != DefaultSender {
		t.Errorf("Sender = %q, want default %q", got.Sender, DefaultSender)
	}
	if got.Category != DefaultCategory {
		t.Errorf("Category = %q, want default %q", got.Category, DefaultCategory)
	}
	if got.ActionStatus != DefaultActionStatus {
		t.Errorf("ActionStatus = %q, want default %q", got.ActionStatus, DefaultActionStatus)
	}
	if got.ActionDueDate != nil {
		t.Errorf("ActionDueDate = %v, want nil", got.ActionDueDate)
	}
	if got.AISuggestion != DefaultSuggestion {
		t.Errorf("AISuggestion = %q, want default", got.AISuggestion)
	}
}

func TestNormalizeInvalidJSONYieldsFullDefaults(t *testing.T) {
	for _, raw := range []string{
		"the model refused to answer",
		"{not json at all]",
		"",
		"}{",
	} {
		got := Normalize(raw)

		if got.Subject != DefaultSubject || got.Sender != DefaultSender ||
			got.Category != DefaultCategory || got.ActionStatus != DefaultActionStatus {
			t.Errorf("Normalize(%q) did not return full defaults: %+v", raw, got)
		}
		if got.HasReminder {
			t.Errorf("Normalize(%q) HasReminder = true, want false", raw)
		}
		if got.Confidence != "low" {
			t.Errorf("Normalize(%q) Confidence = %q, want low", raw, got.Confidence)
		}
	}
}

func TestNormalizeRetainsTruncatedRawOnFailure(t *testing.T) {
	raw := "garbage " + strings.Repeat("x", 2*rawDiagnosticLimit)

	got := Normalize(raw)

	if len(got.Raw) != rawDiagnosticLimit {
		t.Errorf("len(Raw) = %d, want %d", len(got.Raw), rawDiagnosticLimit)
	}
	if !strings.HasPrefix(got.Raw, "garbage ") {
		t.Errorf("Raw does not retain the original prefix: %q", got.Raw[:20])
	}
}

func TestNormalizeNullDueDateStaysNil(t *testing.T) {
	got := Normalize(`{"subject": "S", "action_due_date": null}`)
	if got.ActionDueDate != nil {
		t.Errorf("ActionDueDate = %v, want nil", got.ActionDueDate)
	}

	got = Normalize(`{"action_due_date": ""}`)
	if got.ActionDueDate != nil {
		t.Errorf("empty string due date should stay nil, got %v", got.ActionDueDate)
	}
}

func TestNormalizeNumericAmount(t *testing.T) {
	got := Normalize(`{"amount": 42.5}`)
	if got.Amount != "42.5" {
		t.Errorf("Amount = %q, want %q", got.Amount, "42.5")
	}
}
