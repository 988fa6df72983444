package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healthmate-server/internal/ai"
	"healthmate-server/internal/chat"
	"healthmate-server/internal/core"
	"healthmate-server/internal/models"
	"healthmate-server/internal/utils"
)

// ChatbotHandler serves the stateless chatbot endpoint and the chat session
// surface backing the floating assistant widget.
type ChatbotHandler struct {
	ai       *ai.Service
	sessions *chat.Store
	speaker  chat.Speaker
	timeout  time.Duration
	logger   *zap.Logger
}

// NewChatbotHandler creates a new ChatbotHandler.
func NewChatbotHandler(svc *ai.Service, sessions *chat.Store, speaker chat.Speaker, timeout time.Duration, logger *zap.Logger) *ChatbotHandler {
	return &ChatbotHandler{
		ai:       svc,
		sessions: sessions,
		speaker:  speaker,
		timeout:  timeout,
		logger:   logger,
	}
}

// ChatbotRequest represents the request body for a one-shot chatbot call.
type ChatbotRequest struct {
	Question string `json:"question"`
	Language string `json:"language" binding:"omitempty,oneof=en hi"`
	Context  string `json:"context"`
}

// Ask answers a single health question. When no language flag is supplied,
// the question text is inspected for Devanagari script and Hindi keywords.
func (h *ChatbotHandler) Ask(c *gin.Context) {
	var req ChatbotRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		utils.BadRequest(c, "Question is required")
		return
	}

	lang := models.Language(req.Language)
	if !lang.Valid() {
		lang = core.DetectLanguage(req.Question)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	reply, err := h.ai.ChatReply(ctx, req.Question, lang)
	if err != nil {
		h.logger.Error("chatbot request failed", zap.Error(err))
		utils.InternalServerError(c, "Sorry, I encountered an error. Please try again.")
		return
	}

	utils.Success(c, "Question answered", gin.H{
		"response":         reply,
		"detectedLanguage": lang,
	})
}

// CreateSession starts a new chat session seeded with the greeting.
func (h *ChatbotHandler) CreateSession(c *gin.Context) {
	session := h.sessions.Create()
	utils.Created(c, "Chat session created", gin.H{
		"sessionId":  session.ID(),
		"language":   session.Language(),
		"transcript": session.Transcript(),
	})
}

// GetSession returns the transcript of an existing session.
func (h *ChatbotHandler) GetSession(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Chat session not found")
		return
	}
	utils.Success(c, "Chat session fetched", gin.H{
		"sessionId":  session.ID(),
		"language":   session.Language(),
		"transcript": session.Transcript(),
	})
}

// SendMessageRequest represents the request body for a chat session message.
type SendMessageRequest struct {
	Content  string `json:"content"`
	Language string `json:"language" binding:"omitempty,oneof=en hi"`
}

// SendMessage appends a user message, obtains the assistant reply, appends
// it, and hands the reply to the speech-output port. One outstanding send
// per session.
func (h *ChatbotHandler) SendMessage(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Chat session not found")
		return
	}

	var req SendMessageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		utils.BadRequest(c, "Question is required")
		return
	}

	if req.Language != "" {
		session.SetLanguage(models.Language(req.Language))
	} else if core.DetectLanguage(req.Content) == models.LanguageHindi {
		session.SetLanguage(models.LanguageHindi)
	}
	lang := session.Language()

	if err := session.BeginSend(req.Content); err != nil {
		utils.Conflict(c, "A reply is still pending for this session")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	reply, err := h.ai.ChatReply(ctx, req.Content, lang)
	if err != nil {
		session.FailSend()
		h.logger.Error("chat session reply failed",
			zap.String("sessionId", session.ID()),
			zap.Error(err))
		utils.InternalServerError(c, "Sorry, I encountered an error. Please try again.")
		return
	}
	session.CompleteSend(reply)

	// Speech output is best effort; a synthesis failure never blocks the
	// transcript.
	h.speaker.Speak(reply, lang, chat.SpeechEvents{
		OnError: func(err error) {
			h.logger.Warn("speech synthesis failed",
				zap.String("sessionId", session.ID()),
				zap.Error(err))
		},
	})

	utils.Success(c, "Message sent", gin.H{
		"response":         reply,
		"detectedLanguage": lang,
		"transcript":       session.Transcript(),
	})
}
