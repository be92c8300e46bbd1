package handlers

import (
	"context"
	"net/http"

	"github.com/SAP-F-2025/kumi-math-service/internal/services"
	"github.com/SAP-F-2025/kumi-math-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	BaseHandler
	assessmentService services.AssessmentService
}

func NewSessionHandler(assessmentService services.AssessmentService, logger utils.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler:       NewBaseHandler(logger),
		assessmentService: assessmentService,
	}
}

// StartSession begins a timed assessment for a child
// @Router /assessments/sessions [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req services.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondBindError(c, err)
		return
	}

	sess, err := h.assessmentService.Start(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Assessment session started", "session_id", sess.ID, "child_id", req.ChildID)
	h.RespondWithSuccess(c, http.StatusCreated, "Assessment session started", sess)
}

// GetSession returns the current state of a session
// @Router /assessments/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	h.transition(c, "Session retrieved", h.assessmentService.Get)
}

// SubmitAnswer records the selected option for a question
// @Router /assessments/sessions/{id}/answers [post]
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondBindError(c, err)
		return
	}

	sess, err := h.assessmentService.Answer(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Answer recorded", sess)
}

// @Router /assessments/sessions/{id}/next [post]
func (h *SessionHandler) NextQuestion(c *gin.Context) {
	h.transition(c, "Moved to next question", h.assessmentService.Next)
}

// @Router /assessments/sessions/{id}/prev [post]
func (h *SessionHandler) PrevQuestion(c *gin.Context) {
	h.transition(c, "Moved to previous question", h.assessmentService.Prev)
}

// @Router /assessments/sessions/{id}/pause [post]
func (h *SessionHandler) PauseSession(c *gin.Context) {
	h.transition(c, "Session paused", h.assessmentService.Pause)
}

// @Router /assessments/sessions/{id}/resume [post]
func (h *SessionHandler) ResumeSession(c *gin.Context) {
	h.transition(c, "Session resumed", h.assessmentService.Resume)
}

// FinishSession submits the session and scores it
// @Router /assessments/sessions/{id}/finish [post]
func (h *SessionHandler) FinishSession(c *gin.Context) {
	h.transition(c, "Session submitted", h.assessmentService.Finish)
}

func (h *SessionHandler) transition(c *gin.Context, message string, fn func(context.Context, string) (*services.SessionResponse, error)) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	sess, err := fn(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, message, sess)
}
