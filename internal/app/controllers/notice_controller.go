package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/app/services"
	"github.com/emre/schoolhub/internal/middleware"
)

// NoticeController handles school notice operations
type NoticeController struct {
	noticeService *services.NoticeService
}

// NewNoticeController creates a new NoticeController
func NewNoticeController(noticeService *services.NoticeService) *NoticeController {
	return &NoticeController{noticeService: noticeService}
}

// Create adds a notice
// @Summary Create a notice
// @Tags notices
// @Accept json
// @Produce json
// @Param request body dto.NoticeCreateRequest true "Notice information"
// @Success 200 {object} models.Notice
// @Router /notices [post]
func (c *NoticeController) Create(ctx *gin.Context) {
	var req dto.NoticeCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	notice, err := c.noticeService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notice)
}

// List retrieves all notices of a school
// @Summary List school notices
// @Tags notices
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {array} models.Notice
// @Router /schools/{id}/notices [get]
func (c *NoticeController) List(ctx *gin.Context) {
	schoolID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	notices, err := c.noticeService.List(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notices)
}

// Update replaces the notice fields
// @Summary Update a notice
// @Tags notices
// @Accept json
// @Produce json
// @Param id path int true "Notice ID"
// @Param request body dto.NoticeUpdateRequest true "New notice content"
// @Success 200 {object} models.Notice
// @Router /notices/{id} [put]
func (c *NoticeController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.NoticeUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	notice, err := c.noticeService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notice)
}

// DeleteOne removes one notice
// @Summary Delete a notice
// @Tags notices
// @Produce json
// @Param id path int true "Notice ID"
// @Success 200 {object} models.Notice "The deleted notice"
// @Router /notices/{id} [delete]
func (c *NoticeController) DeleteOne(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	notice, err := c.noticeService.DeleteOne(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notice)
}

// DeleteAllForSchool removes every notice of a school
// @Summary Delete school notices
// @Tags notices
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {object} dto.DeleteResult
// @Router /schools/{id}/notices [delete]
func (c *NoticeController) DeleteAllForSchool(ctx *gin.Context) {
	schoolID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.noticeService.DeleteAllForSchool(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResult{DeletedCount: deleted})
}
