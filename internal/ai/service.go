package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"healthmate-server/internal/models"
)

// Service wraps prompt construction, model invocation and response
// validation for the three AI operations. Parse and validation failures are
// absorbed by static fallbacks; transport failures propagate to the caller.
type Service struct {
	reports ReportModel
	chat    ChatModel
	logger  *zap.Logger
}

// NewService constructs the adapter around already-constructed model clients.
func NewService(reports ReportModel, chat ChatModel, logger *zap.Logger) *Service {
	return &Service{reports: reports, chat: chat, logger: logger}
}

// AnalyzeReport extracts findings, conditions, urgency and follow-up
// questions from raw report text. A malformed model response yields the
// fallback analysis, never an error.
func (s *Service) AnalyzeReport(ctx context.Context, text string) (*models.MedicalAnalysis, error) {
	raw, err := s.reports.CompleteJSON(ctx, analyzePrompt(text))
	if err != nil {
		return nil, fmt.Errorf("failed to analyze medical report: %w", err)
	}

	var analysis models.MedicalAnalysis
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &analysis); err != nil {
		s.logger.Warn("analysis response did not parse, using fallback", zap.Error(err))
		return fallbackAnalysis(), nil
	}
	if len(analysis.Questions) == 0 {
		s.logger.Warn("analysis response missing questions, using fallback")
		return fallbackAnalysis(), nil
	}
	if !analysis.UrgencyLevel.Valid() {
		analysis.UrgencyLevel = models.UrgencyMedium
	}
	return &analysis, nil
}

// GenerateReport produces the final patient-facing or clinician-facing
// report from the accumulated workflow data, with the disclaimer appended.
// A malformed model response yields the fallback report, never an error.
func (s *Service) GenerateReport(ctx context.Context, kind models.ReportKind, data *models.ReportData) (*models.GeneratedReport, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("invalid report type %q", kind)
	}

	raw, err := s.reports.CompleteJSON(ctx, reportPrompt(kind, data))
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s report: %w", kind, err)
	}

	report := &models.GeneratedReport{}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), report); err != nil {
		s.logger.Warn("report response did not parse, using fallback", zap.Error(err))
		report = fallbackReport()
	} else if strings.TrimSpace(report.Content) == "" {
		s.logger.Warn("report response missing content, using fallback")
		report = fallbackReport()
	}
	if len(report.Recommendations) == 0 {
		report.Recommendations = fallbackReport().Recommendations
	}

	report.Content += "\n\n" + disclaimer
	return report, nil
}

// ChatReply answers a health question in the requested language. An empty
// model reply degrades to a canned apology in the same language; transport
// failures propagate.
func (s *Service) ChatReply(ctx context.Context, question string, lang models.Language) (string, error) {
	reply, err := s.chat.Generate(ctx, chatPrompt(question, lang))
	if err != nil {
		return "", fmt.Errorf("chatbot request failed: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		return fallbackChatReply(lang), nil
	}
	return reply, nil
}

// stripCodeFence removes a surrounding markdown code fence, which some
// models emit around JSON despite instructions.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
