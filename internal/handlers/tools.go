package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"healthmate-server/internal/core"
	"healthmate-server/internal/utils"
)

// ToolsHandler serves the doctor-facing heuristic tools: note quality
// verification and extractive summarization. Both are pure functions with no
// upstream dependencies.
type ToolsHandler struct{}

// NewToolsHandler creates a new ToolsHandler.
func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

// VerifyRequest represents the request body for note verification.
type VerifyRequest struct {
	Text string `json:"text"`
}

// Verify scores a clinical note for documentation completeness.
func (h *ToolsHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	assessment, err := core.Score(req.Text)
	if err != nil {
		if errors.Is(err, core.ErrEmptyInput) {
			utils.BadRequest(c, "No text provided")
			return
		}
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, "Note verified", assessment)
}

// SummaryRequest represents the request body for note summarization.
type SummaryRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode" binding:"omitempty,oneof=patient doctor"`
}

// Summarize produces a heuristic summary with insights. Mode defaults to
// patient-friendly output; "doctor" selects the technical variant.
func (h *ToolsHandler) Summarize(c *gin.Context) {
	var req SummaryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	mode := core.ModePatient
	if req.Mode == string(core.ModeClinician) {
		mode = core.ModeClinician
	}

	result, err := core.Summarize(req.Text, mode)
	if err != nil {
		if errors.Is(err, core.ErrEmptyInput) {
			utils.BadRequest(c, "No text provided")
			return
		}
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, "Summary generated", result)
}
