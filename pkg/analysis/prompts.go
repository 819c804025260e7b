package analysis

import "strings"

const analyzePrompt = `You are an assistant that analyzes scanned physical letters.

Analyze the letter text below and return a single JSON object with exactly these fields:
- "subject": short title for the letter
- "sender": name of the sending person or organization
- "category": one of official-government, financial-billing, banking-insurance, employment-hr, education-academic, healthcare-medical, legal-compliance, logistics-delivery, personal-social, real-estate-utilities, subscription-membership, marketing-promotions, travel-ticketing, nonprofit-ngo, miscellaneous
- "action_status": one of require-action, action-done, no-action-needed
- "has_reminder": true if the letter mentions a deadline worth a reminder
- "action_due_date": ISO date of the deadline, or null
- "ai_suggestion": one sentence telling the user what to do with this letter
- "summary": two sentence summary
- "key_points": array of the most important facts
- "amount": monetary amount mentioned, or ""
- "confidence": "high", "medium" or "low"

Return ONLY the JSON object, no other text.

LETTER TEXT:
{{OCR_TEXT}}`

const chatPrompt = `You are a helpful assistant answering questions about a scanned letter.

LETTER
Subject: {{SUBJECT}}
Sender: {{SENDER}}
Category: {{CATEGORY}}
Content:
{{LETTER_CONTENT}}

CONVERSATION SO FAR
{{CONVERSATION_HISTORY}}

Answer the user's message based on the letter above. Be concise and concrete.

User: {{USER_MESSAGE}}`

const translatePromptPrefix = "Translate the following text to "

// AnalyzePrompt embeds OCR text into the structured extraction template.
func AnalyzePrompt(ocrText string) string {
	return strings.ReplaceAll(analyzePrompt, "{{OCR_TEXT}}", ocrText)
}

// ChatPrompt fills the chat template with letter context and history.
func ChatPrompt(subject, sender, category, content, history, userMessage string) string {
	if history == "" {
		history = "No previous conversation."
	}
	p := chatPrompt
	p = strings.ReplaceAll(p, "{{SUBJECT}}", subject)
	p = strings.ReplaceAll(p, "{{SENDER}}", sender)
	p = strings.ReplaceAll(p, "{{CATEGORY}}", category)
	p = strings.ReplaceAll(p, "{{LETTER_CONTENT}}", content)
	p = strings.ReplaceAll(p, "{{CONVERSATION_HISTORY}}", history)
	p = strings.ReplaceAll(p, "{{USER_MESSAGE}}", userMessage)
	return p
}

// TranslatePrompt asks for a plain translation into the target language.
func TranslatePrompt(targetLanguage, content string) string {
	return translatePromptPrefix + targetLanguage + ":\n\n" + content
}
