package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/app/services"
	"github.com/emre/schoolhub/internal/middleware"
)

// SubjectController handles subject management operations
type SubjectController struct {
	subjectService *services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService *services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// CreateBatch handles batch subject creation
// @Summary Create subjects
// @Description Inserts all subjects of the batch atomically. One duplicate code rejects the whole batch.
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body dto.SubjectCreateRequest true "Subjects for one class"
// @Success 200 {array} models.Subject
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [post]
func (c *SubjectController) CreateBatch(ctx *gin.Context) {
	var req dto.SubjectCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	subjects, err := c.subjectService.CreateBatch(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subjects)
}

// ListForSchool retrieves all subjects of a school
// @Summary List school subjects
// @Tags subjects
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {array} models.Subject
// @Router /schools/{id}/subjects [get]
func (c *SubjectController) ListForSchool(ctx *gin.Context) {
	schoolID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subjects, err := c.subjectService.ListForSchool(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subjects)
}

// ListForClass retrieves all subjects of a class
// @Summary List class subjects
// @Tags subjects
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {array} models.Subject
// @Router /classes/{id}/subjects [get]
func (c *SubjectController) ListForClass(ctx *gin.Context) {
	classID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subjects, err := c.subjectService.ListForClass(ctx, classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subjects)
}

// ListFreeForClass retrieves the class subjects with no assigned teacher
// @Summary List unassigned class subjects
// @Tags subjects
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {array} models.Subject
// @Router /classes/{id}/subjects/free [get]
func (c *SubjectController) ListFreeForClass(ctx *gin.Context) {
	classID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subjects, err := c.subjectService.ListFreeForClass(ctx, classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subjects)
}

// GetDetail retrieves one subject
// @Summary Get subject detail
// @Tags subjects
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} models.Subject
// @Router /subjects/{id} [get]
func (c *SubjectController) GetDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subject, err := c.subjectService.GetDetail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subject)
}

// DeleteOne removes one subject, detaching any teacher teaching it.
// Attendance and exam history referencing the subject stays.
// @Summary Delete a subject
// @Tags subjects
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} models.Subject "The deleted subject"
// @Router /subjects/{id} [delete]
func (c *SubjectController) DeleteOne(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subject, err := c.subjectService.DeleteOne(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subject)
}

// DeleteAllForClass removes all subjects of a class
// @Summary Delete class subjects
// @Tags subjects
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} dto.DeleteResult
// @Router /classes/{id}/subjects [delete]
func (c *SubjectController) DeleteAllForClass(ctx *gin.Context) {
	classID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.subjectService.DeleteAllForClass(ctx, classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResult{DeletedCount: deleted})
}

// DeleteAllForSchool removes all subjects of a school
// @Summary Delete school subjects
// @Tags subjects
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {object} dto.DeleteResult
// @Router /schools/{id}/subjects [delete]
func (c *SubjectController) DeleteAllForSchool(ctx *gin.Context) {
	schoolID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.subjectService.DeleteAllForSchool(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResult{DeletedCount: deleted})
}
