package core

import (
	"errors"
	"regexp"
	"strings"

	"healthmate-server/internal/models"
)

// ErrEmptyInput is returned when a heuristic is given empty or
// whitespace-only text.
var ErrEmptyInput = errors.New("no text provided")

var (
	assessmentPattern = regexp.MustCompile(`(?i)assessment|diagnosis|impression`)
	planPattern       = regexp.MustCompile(`(?i)plan|management|follow[- ]?up`)
	vitalsPattern     = regexp.MustCompile(`(?i)bp|blood pressure|hr|heart rate|rr|respiratory rate|temp|temperature|spo2`)
)

// Issue strings appended for each missing clinical signal, in fixed order.
const (
	issueMissingAssessment = "Missing assessment/diagnosis section."
	issueMissingPlan       = "Missing plan/management details."
	issueMissingVitals     = "No vitals found (BP/HR/RR/Temp/SpO2)."
)

// staticSuggestions is a fixed documentation checklist. It is returned
// unchanged for every note; it is not derived from the note content.
var staticSuggestions = []string{
	"Add a concise Assessment/Impression summarizing the case.",
	"Include an explicit Plan with medications, investigations, and follow-up.",
	"Document key vitals and abnormal lab values with dates.",
	"Use consistent units and include patient identifiers as appropriate.",
}

// Score rates the completeness of a clinical note on a 0-100 scale.
// The score is a length component (1 point per 20 characters, capped at 60)
// plus fixed bonuses for the presence of assessment (15), plan (15) and
// vitals (10) vocabulary. Pure and deterministic.
func Score(note string) (*models.QualityAssessment, error) {
	if strings.TrimSpace(note) == "" {
		return nil, ErrEmptyInput
	}

	hasAssessment := assessmentPattern.MatchString(note)
	hasPlan := planPattern.MatchString(note)
	hasVitals := vitalsPattern.MatchString(note)
	lengthScore := len(note) / 20
	if lengthScore > 60 {
		lengthScore = 60
	}

	score := lengthScore
	if hasAssessment {
		score += 15
	}
	if hasPlan {
		score += 15
	}
	if hasVitals {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	issues := []string{}
	if !hasAssessment {
		issues = append(issues, issueMissingAssessment)
	}
	if !hasPlan {
		issues = append(issues, issueMissingPlan)
	}
	if !hasVitals {
		issues = append(issues, issueMissingVitals)
	}

	suggestions := make([]string, len(staticSuggestions))
	copy(suggestions, staticSuggestions)

	return &models.QualityAssessment{
		Score:       score,
		Issues:      issues,
		Suggestions: suggestions,
	}, nil
}
