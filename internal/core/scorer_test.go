package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		_, err := Score(input)
		assert.ErrorIs(t, err, ErrEmptyInput, "input %q", input)
	}
}

func TestScoreBareNote(t *testing.T) {
	// No clinical vocabulary at all; only the length component counts.
	note := "Patient reports headache."

	result, err := Score(note)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Score) // floor(24/20) = 1
	assert.Len(t, result.Issues, 3)
	assert.Len(t, result.Suggestions, 4)
}

func TestScoreCompleteNote(t *testing.T) {
	note := "Assessment: migraine. Plan: ibuprofen. BP 120/80."

	result, err := Score(note)
	require.NoError(t, err)

	lengthScore := len(note) / 20
	assert.Equal(t, lengthScore+40, result.Score)
	assert.Empty(t, result.Issues)
}

func TestScoreSignals(t *testing.T) {
	tests := []struct {
		name       string
		note       string
		wantBonus  int
		wantIssues []string
	}{
		{
			name:      "vitals only",
			note:      "heart rate recorded at rest",
			wantBonus: 10,
			wantIssues: []string{
				"Missing assessment/diagnosis section.",
				"Missing plan/management details.",
			},
		},
		{
			name:      "assessment only",
			note:      "clinical IMPRESSION noted today",
			wantBonus: 15,
			wantIssues: []string{
				"Missing plan/management details.",
				"No vitals found (BP/HR/RR/Temp/SpO2).",
			},
		},
		{
			name:      "plan via follow-up spelling",
			note:      "needs a follow up visit next week",
			wantBonus: 15,
			wantIssues: []string{
				"Missing assessment/diagnosis section.",
				"No vitals found (BP/HR/RR/Temp/SpO2).",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Score(tt.note)
			require.NoError(t, err)
			assert.Equal(t, len(tt.note)/20+tt.wantBonus, result.Score)
			assert.Equal(t, tt.wantIssues, result.Issues)
		})
	}
}

func TestScoreClampedAt100(t *testing.T) {
	// Long enough for the 60-point length cap plus all three bonuses.
	note := strings.Repeat("Assessment and plan with BP readings. ", 40)

	result, err := Score(note)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
}

func TestScoreSuggestionsAreStatic(t *testing.T) {
	a, err := Score("short note")
	require.NoError(t, err)
	b, err := Score("Assessment: detailed. Plan: full workup. BP 130/85, temperature normal.")
	require.NoError(t, err)

	assert.Equal(t, a.Suggestions, b.Suggestions)
	assert.Len(t, a.Suggestions, 4)
}
