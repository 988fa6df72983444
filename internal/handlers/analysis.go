package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healthmate-server/internal/ai"
	"healthmate-server/internal/models"
	"healthmate-server/internal/utils"
)

// AnalysisHandler serves the stateless AI report endpoints: analyze-report
// and generate-report.
type AnalysisHandler struct {
	ai      *ai.Service
	timeout time.Duration
	logger  *zap.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(svc *ai.Service, timeout time.Duration, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{ai: svc, timeout: timeout, logger: logger}
}

// AnalyzeReportRequest represents the request body for report analysis.
type AnalyzeReportRequest struct {
	Text string `json:"text"`
}

// AnalyzeReport extracts findings and follow-up questions from report text.
func (h *AnalysisHandler) AnalyzeReport(c *gin.Context) {
	var req AnalyzeReportRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		utils.BadRequest(c, "No text provided")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	analysis, err := h.ai.AnalyzeReport(ctx, req.Text)
	if err != nil {
		h.logger.Error("report analysis failed", zap.Error(err))
		utils.InternalServerError(c, "Failed to analyze report")
		return
	}

	utils.Success(c, "Report analyzed", gin.H{"analysis": analysis})
}

// GenerateReportRequest represents the request body for report generation.
type GenerateReportRequest struct {
	ReportData *models.ReportData `json:"reportData" binding:"required"`
	ReportType models.ReportKind  `json:"reportType" binding:"required"`
}

// GenerateReport produces the final personal or professional report.
func (h *AnalysisHandler) GenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if !req.ReportType.Valid() {
		utils.BadRequest(c, "Invalid report type")
		return
	}
	if req.ReportData.Analysis == nil || strings.TrimSpace(req.ReportData.OriginalReport) == "" {
		utils.BadRequest(c, "Missing required data")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	report, err := h.ai.GenerateReport(ctx, req.ReportType, req.ReportData)
	if err != nil {
		h.logger.Error("report generation failed",
			zap.String("reportType", string(req.ReportType)),
			zap.Error(err))
		utils.InternalServerError(c, "Failed to generate report")
		return
	}

	utils.Success(c, "Report generated", gin.H{"report": report})
}
