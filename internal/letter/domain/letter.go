package domain

// LetterCategory classifies a letter into one of 15 domain categories.
type LetterCategory string

const (
	CategoryOfficialGovernment     LetterCategory = "official-government"
	CategoryFinancialBilling       LetterCategory = "financial-billing"
	CategoryBankingInsurance       LetterCategory = "banking-insurance"
	CategoryEmploymentHR           LetterCategory = "employment-hr"
	CategoryEducationAcademic      LetterCategory = "education-academic"
	CategoryHealthcareMedical      LetterCategory = "healthcare-medical"
	CategoryLegalCompliance        LetterCategory = "legal-compliance"
	CategoryLogisticsDelivery      LetterCategory = "logistics-delivery"
	CategoryPersonalSocial         LetterCategory = "personal-social"
	CategoryRealEstateUtilities    LetterCategory = "real-estate-utilities"
	CategorySubscriptionMembership LetterCategory = "subscription-membership"
	CategoryMarketingPromotions    LetterCategory = "marketing-promotions"
	CategoryTravelTicketing        LetterCategory = "travel-ticketing"
	CategoryNonprofitNGO           LetterCategory = "nonprofit-ngo"
	CategoryMiscellaneous          LetterCategory = "miscellaneous"
)

var validCategories = map[LetterCategory]bool{
	CategoryOfficialGovernment:     true,
	CategoryFinancialBilling:       true,
	CategoryBankingInsurance:       true,
	CategoryEmploymentHR:           true,
	CategoryEducationAcademic:      true,
	CategoryHealthcareMedical:      true,
	CategoryLegalCompliance:        true,
	CategoryLogisticsDelivery:      true,
	CategoryPersonalSocial:         true,
	CategoryRealEstateUtilities:    true,
	CategorySubscriptionMembership: true,
	CategoryMarketingPromotions:    true,
	CategoryTravelTicketing:        true,
	CategoryNonprofitNGO:           true,
	CategoryMiscellaneous:          true,
}

// ParseCategory maps an arbitrary string onto the enumeration, falling back
// to miscellaneous for anything unknown.
func ParseCategory(s string) LetterCategory {
	if validCategories[LetterCategory(s)] {
		return LetterCategory(s)
	}
	return CategoryMiscellaneous
}

func (c LetterCategory) IsValid() bool {
	return validCategories[c]
}

// ActionStatus tracks whether a letter needs the user to do something.
type ActionStatus string

const (
	ActionRequired   ActionStatus = "require-action"
	ActionDone       ActionStatus = "action-done"
	ActionNoneNeeded ActionStatus = "no-action-needed"
)

// IsValid reports whether the status is one of the declared values.
func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionRequired, ActionDone, ActionNoneNeeded:
		return true
	}
	return false
}

// ParseActionStatus maps an arbitrary string onto the enumeration, falling
// back to no-action-needed.
func ParseActionStatus(s string) ActionStatus {
	switch ActionStatus(s) {
	case ActionRequired, ActionDone, ActionNoneNeeded:
		return ActionStatus(s)
	default:
		return ActionNoneNeeded
	}
}

// Attachment describes a supplementary file kept with a letter.
type Attachment struct {
	Name string `json:"name"`
	Size string `json:"size"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Letter represents one piece of physical mail and its digital analysis.
type Letter struct {
	LetterID string `json:"letter_id" gorm:"primaryKey"`
	UserID   string `json:"user_id" gorm:"index;not null"`

	Subject     string `json:"subject"`
	SenderName  string `json:"sender_name"`
	SenderEmail string `json:"sender_email"`
	Content     string `json:"content"`
	OCRText     string `json:"ocr_text"`

	OriginalImages StringSlice    `json:"original_images" gorm:"type:jsonb"`
	Attachments    AttachmentList `json:"attachments,omitempty" gorm:"type:jsonb"`

	LetterCategory LetterCategory `json:"letter_category" gorm:"default:miscellaneous"`
	ActionStatus   ActionStatus   `json:"action_status" gorm:"default:no-action-needed"`
	ActionDueDate  *string        `json:"action_due_date,omitempty"`
	HasReminder    bool           `json:"has_reminder" gorm:"default:false"`

	AISuggestion      string    `json:"ai_suggestion"`
	UserNote          string    `json:"user_note"`
	TranslatedContent StringMap `json:"translated_content,omitempty" gorm:"type:jsonb"`

	Read        bool    `json:"read" gorm:"default:false"`
	Flagged     bool    `json:"flagged" gorm:"default:false"`
	Archived    bool    `json:"archived" gorm:"default:false"`
	Deleted     bool    `json:"deleted" gorm:"default:false"` // soft-delete marker
	Snoozed     bool    `json:"snoozed" gorm:"default:false"`
	SnoozeUntil *string `json:"snooze_until,omitempty"`

	LetterDate      int64 `json:"letter_date"`
	RecordCreatedAt int64 `json:"record_created_at" gorm:"index"`
}
