package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/app/services"
	"github.com/emre/schoolhub/internal/middleware"
)

// SclassController handles class management operations
type SclassController struct {
	sclassService *services.SclassService
}

// NewSclassController creates a new SclassController
func NewSclassController(sclassService *services.SclassService) *SclassController {
	return &SclassController{sclassService: sclassService}
}

// Create handles class creation
// @Summary Create a class
// @Description Adds a class to the admin's school. Class names are unique per school.
// @Tags classes
// @Accept json
// @Produce json
// @Param request body dto.SclassCreateRequest true "Class information"
// @Success 200 {object} models.Sclass
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [post]
func (c *SclassController) Create(ctx *gin.Context) {
	var req dto.SclassCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	sclass, err := c.sclassService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sclass)
}

// List retrieves the classes of a school
// @Summary List school classes
// @Tags classes
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {array} models.Sclass
// @Router /schools/{id}/classes [get]
func (c *SclassController) List(ctx *gin.Context) {
	schoolID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	sclasses, err := c.sclassService.List(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sclasses)
}

// GetDetail retrieves one class
// @Summary Get class detail
// @Tags classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} models.Sclass
// @Router /classes/{id} [get]
func (c *SclassController) GetDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	sclass, err := c.sclassService.GetDetail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sclass)
}

// ListStudents retrieves the students of one class
// @Summary List class students
// @Tags classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {array} models.Student
// @Router /classes/{id}/students [get]
func (c *SclassController) ListStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	students, err := c.sclassService.ListStudents(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// DeleteOne removes one class together with its students, subjects and
// teachers
// @Summary Delete a class
// @Tags classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} models.Sclass "The deleted class"
// @Failure 500 {object} dto.ErrorResponse "A dependent store failed during teardown"
// @Router /classes/{id} [delete]
func (c *SclassController) DeleteOne(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	sclass, _, err := c.sclassService.DeleteOne(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sclass)
}

// DeleteAllForSchool removes every class of a school with their dependents
// @Summary Delete all school classes
// @Tags classes
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {object} dto.DeleteResult
// @Router /schools/{id}/classes [delete]
func (c *SclassController) DeleteAllForSchool(ctx *gin.Context) {
	schoolID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	deleted, _, err := c.sclassService.DeleteAllForSchool(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResult{DeletedCount: deleted})
}
