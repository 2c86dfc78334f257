package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/app/services"
	"github.com/emre/schoolhub/internal/middleware"
)

// TeacherController handles teacher accounts and subject assignment
type TeacherController struct {
	teacherService *services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService *services.TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

// Register handles teacher registration
// @Summary Register a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.TeacherRegisterRequest true "Teacher information"
// @Success 200 {object} models.Teacher
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /teachers/register [post]
func (c *TeacherController) Register(ctx *gin.Context) {
	var req dto.TeacherRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	teacher, err := c.teacherService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// Login handles teacher login
// @Summary Log in as teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.TeacherLoginRequest true "Credentials"
// @Success 200 {object} dto.TeacherLoginResponse
// @Router /teachers/login [post]
func (c *TeacherController) Login(ctx *gin.Context) {
	var req dto.TeacherLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	result, err := c.teacherService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// List retrieves all teachers of a school
// @Summary List school teachers
// @Tags teachers
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {array} models.Teacher
// @Router /schools/{id}/teachers [get]
func (c *TeacherController) List(ctx *gin.Context) {
	schoolID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teachers, err := c.teacherService.List(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teachers)
}

// GetDetail retrieves one teacher
// @Summary Get teacher detail
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} models.Teacher
// @Router /teachers/{id} [get]
func (c *TeacherController) GetDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetDetail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// AssignSubject assigns a subject to a teacher, updating both sides
// @Summary Assign a subject to a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Param request body dto.TeacherSubjectRequest true "Subject to assign"
// @Success 200 {object} models.Teacher
// @Router /teachers/{id}/subject [put]
func (c *TeacherController) AssignSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.TeacherSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	teacher, err := c.teacherService.AssignSubject(ctx, id, req.SubjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// DeleteOne removes one teacher
// @Summary Delete a teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} models.Teacher "The deleted teacher"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteOne(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teacher, err := c.teacherService.DeleteOne(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// DeleteAllForSchool removes every teacher of a school
// @Summary Delete school teachers
// @Tags teachers
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {object} dto.DeleteResult
// @Router /schools/{id}/teachers [delete]
func (c *TeacherController) DeleteAllForSchool(ctx *gin.Context) {
	schoolID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.teacherService.DeleteAllForSchool(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResult{DeletedCount: deleted})
}

// DeleteAllForClass removes every teacher assigned to a class
// @Summary Delete class teachers
// @Tags teachers
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} dto.DeleteResult
// @Router /classes/{id}/teachers [delete]
func (c *TeacherController) DeleteAllForClass(ctx *gin.Context) {
	classID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.teacherService.DeleteAllForClass(ctx, classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResult{DeletedCount: deleted})
}
