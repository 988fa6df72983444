package core

import (
	"fmt"
	"regexp"
	"strings"

	"healthmate-server/internal/models"
)

// SummaryMode selects the audience of a heuristic summary.
type SummaryMode string

const (
	ModePatient   SummaryMode = "patient"
	ModeClinician SummaryMode = "doctor"
)

const longReportThreshold = 400

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	numberPattern = regexp.MustCompile(`\d+\.?\d*`)
)

// Summarize produces a short extractive summary of a note: the first three
// sentences as the gist, wrapped in a mode-specific header and closing line,
// plus three fixed-label insights. The summary is heuristic, not generated.
func Summarize(note string, mode SummaryMode) (*models.SummaryResult, error) {
	if strings.TrimSpace(note) == "" {
		return nil, ErrEmptyInput
	}

	normalized := whitespaceRun.ReplaceAllString(note, " ")
	sentences := splitSentences(normalized)

	take := sentences
	if len(take) > 3 {
		take = take[:3]
	}
	gist := strings.Join(take, " ")

	numbers := extractNumbers(note, 5)
	values := "n/a"
	if len(numbers) > 0 {
		values = strings.Join(numbers, ", ")
	}

	trend := "short"
	if len(note) > longReportThreshold {
		trend = "long"
	}

	insights := []models.Insight{
		{Label: "Key Values Found", Value: values},
		{Label: "Report Length", Value: fmt.Sprintf("%d chars", len(note)), Trend: trend},
		{Label: "Sentence Count", Value: fmt.Sprintf("%d", len(sentences))},
	}

	header := "Summary"
	closing := "What it means: This simplifies your report into the most important points. Please consult with your healthcare provider for medical decisions."
	if mode == ModeClinician {
		header = "Technical Overview"
		closing = "Clinical note: Extractive summary for documentation review. Verify findings against the full record before making care decisions."
	}
	summary := fmt.Sprintf("%s: %s\n\n%s", header, gist, closing)

	return &models.SummaryResult{Summary: summary, Insights: insights}, nil
}

// splitSentences cuts text after runs of sentence punctuation that are
// followed by whitespace, keeping the punctuation with its sentence. Empty
// fragments are dropped.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
			continue
		}
		// Consume the full punctuation run.
		end := i
		for end+1 < len(runes) && (runes[end+1] == '.' || runes[end+1] == '!' || runes[end+1] == '?') {
			end++
		}
		if end+1 < len(runes) && runes[end+1] == ' ' {
			s := strings.TrimSpace(string(runes[start : end+1]))
			if s != "" {
				sentences = append(sentences, s)
			}
			start = end + 2
		}
		i = end
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// extractNumbers returns up to max numeric substrings (integer or decimal)
// in order of first occurrence. A bare trailing dot is not part of a number.
func extractNumbers(text string, max int) []string {
	matches := numberPattern.FindAllString(text, max)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSuffix(m, "."))
	}
	return out
}
