package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healthmate-server/internal/ai"
	"healthmate-server/internal/models"
	"healthmate-server/internal/utils"
	"healthmate-server/internal/workflow"
)

// WorkflowHandler exposes the report analysis workflow over HTTP: one
// session per traversal of upload -> questions -> report-type -> final-report.
type WorkflowHandler struct {
	sessions *workflow.Manager
	ai       *ai.Service
	timeout  time.Duration
	logger   *zap.Logger
}

// NewWorkflowHandler creates a new WorkflowHandler.
func NewWorkflowHandler(sessions *workflow.Manager, svc *ai.Service, timeout time.Duration, logger *zap.Logger) *WorkflowHandler {
	return &WorkflowHandler{sessions: sessions, ai: svc, timeout: timeout, logger: logger}
}

func (h *WorkflowHandler) session(c *gin.Context) (*workflow.Session, bool) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Workflow session not found")
		return nil, false
	}
	return session, true
}

// CreateSession starts a new workflow session at the profile step.
func (h *WorkflowHandler) CreateSession(c *gin.Context) {
	session := h.sessions.Create()
	utils.Created(c, "Workflow session created", session.Snapshot())
}

// GetSession returns a snapshot of the session state.
func (h *WorkflowHandler) GetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	utils.Success(c, "Workflow session fetched", session.Snapshot())
}

// Start moves the session from the profile step to the upload step.
func (h *WorkflowHandler) Start(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	if err := session.Start(); err != nil {
		utils.Conflict(c, err.Error())
		return
	}
	utils.Success(c, "Workflow started", session.Snapshot())
}

// GiveConsent records the one-time data-processing acknowledgment.
func (h *WorkflowHandler) GiveConsent(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.GiveConsent()
	utils.Success(c, "Consent recorded", session.Snapshot())
}

// AnalyzeRequest represents the request body for workflow analysis.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// Analyze runs the AI analysis for the uploaded report text and, on
// success, advances the session to the questions step.
func (h *WorkflowHandler) Analyze(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req AnalyzeRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := session.BeginAnalysis(req.Text); err != nil {
		h.rejectTransition(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	analysis, err := h.ai.AnalyzeReport(ctx, req.Text)
	if err != nil {
		session.FailAnalysis()
		h.logger.Error("workflow analysis failed",
			zap.String("sessionId", session.ID()),
			zap.Error(err))
		utils.InternalServerError(c, "Failed to analyze report")
		return
	}

	if err := session.CompleteAnalysis(analysis); err != nil {
		utils.InternalServerError(c, "Invalid analysis received")
		return
	}

	utils.Success(c, "Report analyzed", session.Snapshot())
}

// AnswerRequest represents the request body for a question answer.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// SubmitAnswer records the answer to the current question and advances the
// question pointer, or moves to report-type selection after the last one.
func (h *WorkflowHandler) SubmitAnswer(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req AnswerRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := session.SubmitAnswer(req.Answer); err != nil {
		h.rejectTransition(c, err)
		return
	}

	utils.Success(c, "Answer recorded", session.Snapshot())
}

// ReportRequest represents the request body for final report generation.
type ReportRequest struct {
	ReportType models.ReportKind `json:"reportType" binding:"required"`
}

// GenerateReport runs the second AI call with the accumulated note, analysis
// and answers, and advances the session to the final-report step.
func (h *WorkflowHandler) GenerateReport(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req ReportRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := session.BeginGeneration(req.ReportType); err != nil {
		h.rejectTransition(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	report, err := h.ai.GenerateReport(ctx, req.ReportType, session.ReportData())
	if err != nil {
		session.FailGeneration()
		h.logger.Error("workflow report generation failed",
			zap.String("sessionId", session.ID()),
			zap.Error(err))
		utils.InternalServerError(c, "Failed to generate report")
		return
	}

	if err := session.CompleteGeneration(report); err != nil {
		utils.InternalServerError(c, "Invalid report received")
		return
	}

	utils.Success(c, "Report generated", session.Snapshot())
}

// Reset clears the session back to the profile step.
func (h *WorkflowHandler) Reset(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.Reset()
	utils.Success(c, "Workflow reset", session.Snapshot())
}

// rejectTransition maps workflow errors onto response codes: in-flight
// duplicates conflict, everything else is a bad request.
func (h *WorkflowHandler) rejectTransition(c *gin.Context, err error) {
	if errors.Is(err, workflow.ErrRequestInFlight) {
		utils.Conflict(c, err.Error())
		return
	}
	utils.BadRequest(c, err.Error())
}
