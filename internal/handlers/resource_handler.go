package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/kumi-math-service/internal/resources"
	"github.com/SAP-F-2025/kumi-math-service/internal/services"
	"github.com/SAP-F-2025/kumi-math-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	BaseHandler
	resourceService services.ResourceService
}

func NewResourceHandler(resourceService services.ResourceService, logger utils.Logger) *ResourceHandler {
	return &ResourceHandler{
		BaseHandler:     NewBaseHandler(logger),
		resourceService: resourceService,
	}
}

// ListConcepts returns the fixed concept catalog in display order
// @Router /concepts [get]
func (h *ResourceHandler) ListConcepts(c *gin.Context) {
	h.RespondWithSuccess(c, http.StatusOK, "Concepts retrieved successfully", h.resourceService.Concepts(c.Request.Context()))
}

// ListResources filters the resource library by concept, type and text
// @Router /resources [get]
func (h *ResourceHandler) ListResources(c *gin.Context) {
	var filter resources.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.RespondBindError(c, err)
		return
	}

	items, err := h.resourceService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Resources retrieved successfully", gin.H{
		"resources": items,
		"total":     len(items),
	})
}

// @Router /resources/types [get]
func (h *ResourceHandler) ListResourceTypes(c *gin.Context) {
	h.RespondWithSuccess(c, http.StatusOK, "Resource types retrieved successfully", h.resourceService.Types(c.Request.Context()))
}
