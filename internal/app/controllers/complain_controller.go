package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/app/services"
	"github.com/emre/schoolhub/internal/middleware"
)

// ComplainController handles complaint operations
type ComplainController struct {
	complainService *services.ComplainService
}

// NewComplainController creates a new ComplainController
func NewComplainController(complainService *services.ComplainService) *ComplainController {
	return &ComplainController{complainService: complainService}
}

// Create records a complaint
// @Summary Submit a complaint
// @Tags complains
// @Accept json
// @Produce json
// @Param request body dto.ComplainCreateRequest true "Complaint information"
// @Success 200 {object} models.Complain
// @Router /complains [post]
func (c *ComplainController) Create(ctx *gin.Context) {
	var req dto.ComplainCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	complain, err := c.complainService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, complain)
}

// List retrieves all complaints of a school
// @Summary List school complaints
// @Tags complains
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {array} models.Complain
// @Router /schools/{id}/complains [get]
func (c *ComplainController) List(ctx *gin.Context) {
	schoolID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	complains, err := c.complainService.List(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, complains)
}
