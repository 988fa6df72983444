package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmptyInput(t *testing.T) {
	_, err := Summarize("  \n ", ModePatient)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSummarizeTakesFirstThreeSentences(t *testing.T) {
	note := "First finding. Second finding! Third finding? Fourth finding. Fifth."

	result, err := Summarize(note, ModePatient)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Summary, "Summary: First finding. Second finding! Third finding?"))
	assert.NotContains(t, result.Summary, "Fourth")
}

func TestSummarizeModeHeaders(t *testing.T) {
	note := "Blood work normal. No acute distress."

	patient, err := Summarize(note, ModePatient)
	require.NoError(t, err)
	clinician, err := Summarize(note, ModeClinician)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(patient.Summary, "Summary:"))
	assert.Contains(t, patient.Summary, "healthcare provider")
	assert.True(t, strings.HasPrefix(clinician.Summary, "Technical Overview:"))
	assert.Contains(t, clinician.Summary, "full record")
}

func TestSummarizeInsights(t *testing.T) {
	note := "BP was 120/80 with temperature 37.5 and pulse 72. Stable overnight."

	result, err := Summarize(note, ModePatient)
	require.NoError(t, err)
	require.Len(t, result.Insights, 3)

	assert.Equal(t, "Key Values Found", result.Insights[0].Label)
	assert.Equal(t, "120, 80, 37.5, 72", result.Insights[0].Value)

	assert.Equal(t, "Report Length", result.Insights[1].Label)
	assert.Equal(t, "short", result.Insights[1].Trend)

	assert.Equal(t, "Sentence Count", result.Insights[2].Label)
	assert.Equal(t, "2", result.Insights[2].Value)
}

func TestSummarizeNoNumbers(t *testing.T) {
	result, err := Summarize("No numeric values here.", ModePatient)
	require.NoError(t, err)
	assert.Equal(t, "n/a", result.Insights[0].Value)
}

func TestSummarizeLongTrend(t *testing.T) {
	note := strings.Repeat("Detailed observation of the patient condition. ", 12)
	require.Greater(t, len(note), longReportThreshold)

	result, err := Summarize(note, ModeClinician)
	require.NoError(t, err)
	assert.Equal(t, "long", result.Insights[1].Trend)
}

func TestSummarizeNoSentenceBoundary(t *testing.T) {
	// A fragment without terminal punctuation is still one sentence.
	result, err := Summarize("ongoing observation without punctuation", ModePatient)
	require.NoError(t, err)
	assert.Equal(t, "1", result.Insights[2].Value)
	assert.Contains(t, result.Summary, "ongoing observation without punctuation")
}

func TestSummarizeIdempotent(t *testing.T) {
	note := "Glucose 5.6 on admission. Discharged after 2 days. Follow-up in 14 days."

	first, err := Summarize(note, ModeClinician)
	require.NoError(t, err)
	second, err := Summarize(note, ModeClinician)
	require.NoError(t, err)

	assert.Equal(t, first.Insights, second.Insights)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestSplitSentencesCollapsedRuns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "ellipsis kept with sentence",
			text: "Wait... then proceed. Done.",
			want: []string{"Wait...", "then proceed.", "Done."},
		},
		{
			name: "no trailing space after final period",
			text: "One. Two.",
			want: []string{"One.", "Two."},
		},
		{
			name: "punctuation without following space does not split",
			text: "Ver 2.1 deployed. Next step",
			want: []string{"Ver 2.1 deployed.", "Next step"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitSentences(tt.text))
		})
	}
}
