package ai

import "healthmate-server/internal/models"

// Static fallback values substituted when a model response cannot be parsed
// or is missing required fields. They are deliberately generic and non-empty
// so the workflow never observes a parse failure, only transport errors.

func fallbackAnalysis() *models.MedicalAnalysis {
	return &models.MedicalAnalysis{
		KeyFindings:         []string{"Report received but automatic extraction was inconclusive."},
		PotentialConditions: []string{"Unable to determine from the provided text."},
		UrgencyLevel:        models.UrgencyMedium,
		Questions: []string{
			"What symptoms are you currently experiencing?",
			"How long have you had these symptoms?",
			"Are you currently taking any medications?",
		},
	}
}

func fallbackReport() *models.GeneratedReport {
	return &models.GeneratedReport{
		Content: "We could not produce a detailed report from your information at this time. " +
			"Your medical report has been received. Please consult your healthcare provider " +
			"to review the original document and discuss your symptoms in person.",
		Recommendations: []string{
			"Schedule an appointment with your healthcare provider to review this report.",
			"Keep a record of any new or worsening symptoms.",
		},
	}
}

func fallbackChatReply(lang models.Language) string {
	if lang == models.LanguageHindi {
		return "माफ करें, मैं अभी आपकी मदद नहीं कर सकता। कृपया बाद में कोशिश करें।"
	}
	return "Sorry, I cannot help you right now. Please try again later."
}
