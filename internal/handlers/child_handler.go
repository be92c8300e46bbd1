package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/kumi-math-service/internal/services"
	"github.com/SAP-F-2025/kumi-math-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ChildHandler struct {
	BaseHandler
	childService        services.ChildService
	resultService       services.ResultService
	learningPathService services.LearningPathService
	dashboardService    services.DashboardService
}

func NewChildHandler(
	childService services.ChildService,
	resultService services.ResultService,
	learningPathService services.LearningPathService,
	dashboardService services.DashboardService,
	logger utils.Logger,
) *ChildHandler {
	return &ChildHandler{
		BaseHandler:         NewBaseHandler(logger),
		childService:        childService,
		resultService:       resultService,
		learningPathService: learningPathService,
		dashboardService:    dashboardService,
	}
}

// CreateChild registers a child profile
// @Router /children [post]
func (h *ChildHandler) CreateChild(c *gin.Context) {
	var req services.CreateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondBindError(c, err)
		return
	}

	child, err := h.childService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Child created", "child_id", child.ID)
	h.RespondWithSuccess(c, http.StatusCreated, "Child created successfully", child)
}

// ListChildren lists children with pagination
// @Router /children [get]
func (h *ChildHandler) ListChildren(c *gin.Context) {
	var req services.ListChildrenRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.RespondBindError(c, err)
		return
	}

	resp, err := h.childService.List(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Children retrieved successfully", resp)
}

// GetChild retrieves a child profile
// @Router /children/{id} [get]
func (h *ChildHandler) GetChild(c *gin.Context) {
	id := ParseUintIDParam(c, "id")
	if id == 0 {
		return
	}

	child, err := h.childService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Child retrieved successfully", child)
}

// GetDashboard returns the parent dashboard overview for a child
// @Router /children/{id}/dashboard [get]
func (h *ChildHandler) GetDashboard(c *gin.Context) {
	id := ParseUintIDParam(c, "id")
	if id == 0 {
		return
	}

	overview, err := h.dashboardService.Overview(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Dashboard retrieved successfully", overview)
}

// ListResults lists a child's assessment results, newest first
// @Router /children/{id}/results [get]
func (h *ChildHandler) ListResults(c *gin.Context) {
	id := ParseUintIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.ListResultsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.RespondBindError(c, err)
		return
	}

	resp, err := h.resultService.ListByChild(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Results retrieved successfully", resp)
}

// GetLatestResult returns the child's most recent assessment result
// @Router /children/{id}/results/latest [get]
func (h *ChildHandler) GetLatestResult(c *gin.Context) {
	id := ParseUintIDParam(c, "id")
	if id == 0 {
		return
	}

	result, err := h.resultService.Latest(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Latest result retrieved successfully", result)
}

// GetLearningPath returns the weekly practice plan
// @Router /children/{id}/learning-path [get]
func (h *ChildHandler) GetLearningPath(c *gin.Context) {
	id := ParseUintIDParam(c, "id")
	if id == 0 {
		return
	}

	plan, err := h.learningPathService.Plan(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Learning path retrieved successfully", plan)
}

// CompleteActivity marks a planned activity as done
// @Router /children/{id}/activities/{activity_id}/complete [post]
func (h *ChildHandler) CompleteActivity(c *gin.Context) {
	id := ParseUintIDParam(c, "id")
	if id == 0 {
		return
	}
	activityID := ParseStringIDParam(c, "activity_id")
	if activityID == "" {
		return
	}

	plan, err := h.learningPathService.CompleteActivity(c.Request.Context(), id, activityID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Activity completed", "child_id", id, "activity_id", activityID)
	h.RespondWithSuccess(c, http.StatusOK, "Activity completed", plan)
}
