package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"healthmate-server/internal/models"
)

type fakeReportModel struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeReportModel) CompleteJSON(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

type fakeChatModel struct {
	response string
	err      error
}

func (f *fakeChatModel) Generate(_ context.Context, _ string) (string, error) {
	return f.response, f.err
}

func newTestService(reports ReportModel, chat ChatModel) *Service {
	return NewService(reports, chat, zap.NewNop())
}

func reportData() *models.ReportData {
	return &models.ReportData{
		PatientResponses: map[string]string{"How long?": "Two weeks"},
		OriginalReport:   "Patient presents with persistent cough.",
		Analysis: &models.MedicalAnalysis{
			KeyFindings:  []string{"persistent cough"},
			UrgencyLevel: models.UrgencyLow,
			Questions:    []string{"How long?"},
		},
	}
}

func TestAnalyzeReportParsesValidResponse(t *testing.T) {
	model := &fakeReportModel{response: `{
		"keyFindings": ["elevated blood pressure"],
		"potentialConditions": ["hypertension"],
		"urgencyLevel": "high",
		"questions": ["Do you have headaches?", "Any vision changes?"]
	}`}
	svc := newTestService(model, nil)

	analysis, err := svc.AnalyzeReport(context.Background(), "BP 160/100 recorded")
	require.NoError(t, err)

	assert.Equal(t, models.UrgencyHigh, analysis.UrgencyLevel)
	assert.Len(t, analysis.Questions, 2)
	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "BP 160/100 recorded")
}

func TestAnalyzeReportUnparseableResponseFallsBack(t *testing.T) {
	svc := newTestService(&fakeReportModel{response: "not json"}, nil)

	analysis, err := svc.AnalyzeReport(context.Background(), "some report")
	require.NoError(t, err)

	assert.Len(t, analysis.Questions, 3)
	assert.Equal(t, models.UrgencyMedium, analysis.UrgencyLevel)
	assert.NotEmpty(t, analysis.KeyFindings)
}

func TestAnalyzeReportMissingQuestionsFallsBack(t *testing.T) {
	svc := newTestService(&fakeReportModel{response: `{"keyFindings":["x"],"questions":[]}`}, nil)

	analysis, err := svc.AnalyzeReport(context.Background(), "some report")
	require.NoError(t, err)
	assert.Len(t, analysis.Questions, 3)
}

func TestAnalyzeReportInvalidUrgencyNormalized(t *testing.T) {
	svc := newTestService(&fakeReportModel{response: `{"urgencyLevel":"critical","questions":["q1"]}`}, nil)

	analysis, err := svc.AnalyzeReport(context.Background(), "some report")
	require.NoError(t, err)
	assert.Equal(t, models.UrgencyMedium, analysis.UrgencyLevel)
	assert.Equal(t, []string{"q1"}, analysis.Questions)
}

func TestAnalyzeReportTransportErrorPropagates(t *testing.T) {
	svc := newTestService(&fakeReportModel{err: errors.New("connection refused")}, nil)

	_, err := svc.AnalyzeReport(context.Background(), "some report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGenerateReportAppendsDisclaimer(t *testing.T) {
	model := &fakeReportModel{response: `{"content":"You have a mild cough.","recommendations":["Rest","Drink fluids"]}`}
	svc := newTestService(model, nil)

	report, err := svc.GenerateReport(context.Background(), models.ReportPersonal, reportData())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(report.Content, "You have a mild cough."))
	assert.Contains(t, report.Content, "DISCLAIMER")
	assert.Equal(t, []string{"Rest", "Drink fluids"}, report.Recommendations)
}

func TestGenerateReportFencedJSONAccepted(t *testing.T) {
	model := &fakeReportModel{response: "```json\n{\"content\":\"Clinical assessment follows.\",\"recommendations\":[\"CBC panel\"]}\n```"}
	svc := newTestService(model, nil)

	report, err := svc.GenerateReport(context.Background(), models.ReportProfessional, reportData())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(report.Content, "Clinical assessment follows."))
}

func TestGenerateReportFallbackIsNonEmpty(t *testing.T) {
	svc := newTestService(&fakeReportModel{response: `{"content":"   "}`}, nil)

	report, err := svc.GenerateReport(context.Background(), models.ReportPersonal, reportData())
	require.NoError(t, err)

	assert.NotEmpty(t, strings.TrimSpace(report.Content))
	assert.GreaterOrEqual(t, len(report.Recommendations), 1)
}

func TestGenerateReportInvalidKindRejected(t *testing.T) {
	svc := newTestService(&fakeReportModel{}, nil)

	_, err := svc.GenerateReport(context.Background(), models.ReportKind("summary"), reportData())
	require.Error(t, err)
}

func TestGenerateReportPromptSelection(t *testing.T) {
	model := &fakeReportModel{response: `{"content":"ok","recommendations":["r"]}`}
	svc := newTestService(model, nil)

	_, err := svc.GenerateReport(context.Background(), models.ReportProfessional, reportData())
	require.NoError(t, err)
	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "Differential diagnosis")
	assert.Contains(t, model.prompts[0], "persistent cough")
}

func TestChatReply(t *testing.T) {
	svc := newTestService(nil, &fakeChatModel{response: "Paracetamol relieves pain and fever."})

	reply, err := svc.ChatReply(context.Background(), "What is paracetamol used for?", models.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol relieves pain and fever.", reply)
}

func TestChatReplyEmptyResponseFallsBack(t *testing.T) {
	svc := newTestService(nil, &fakeChatModel{response: "  "})

	en, err := svc.ChatReply(context.Background(), "question", models.LanguageEnglish)
	require.NoError(t, err)
	assert.Contains(t, en, "try again later")

	hi, err := svc.ChatReply(context.Background(), "question", models.LanguageHindi)
	require.NoError(t, err)
	assert.NotEqual(t, en, hi)
}

func TestChatReplyTransportErrorPropagates(t *testing.T) {
	svc := newTestService(nil, &fakeChatModel{err: errors.New("quota exceeded")})

	_, err := svc.ChatReply(context.Background(), "question", models.LanguageEnglish)
	require.Error(t, err)
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}
