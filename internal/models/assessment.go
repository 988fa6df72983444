package models

// QualityAssessment is the result of the heuristic note scorer.
// Score is always within [0,100]; Issues carries one entry per missing
// clinical signal; Suggestions is a static documentation checklist.
type QualityAssessment struct {
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// Insight is a single labelled data point extracted by the summarizer.
type Insight struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Trend string `json:"trend,omitempty"`
}

// SummaryResult pairs the composed summary text with its insights.
type SummaryResult struct {
	Summary  string    `json:"summary"`
	Insights []Insight `json:"insights"`
}
