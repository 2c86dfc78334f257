package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/app/services"
	"github.com/emre/schoolhub/internal/middleware"
)

// StudentController handles student accounts, attendance and exam results
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Register handles student registration
// @Summary Register a student
// @Description Creates a student account. The roll number is unique within the school and class.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRegisterRequest true "Student information"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/register [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.StudentRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// Login handles student login with roll number and name
// @Summary Log in as student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "Credentials"
// @Success 200 {object} dto.StudentLoginResponse
// @Router /students/login [post]
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	result, err := c.studentService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// ListForSchool retrieves all students of a school
// @Summary List school students
// @Tags students
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {array} models.Student
// @Router /schools/{id}/students [get]
func (c *StudentController) ListForSchool(ctx *gin.Context) {
	schoolID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	students, err := c.studentService.ListForSchool(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetDetail retrieves one student with attendance and exam results
// @Summary Get student detail
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Router /students/{id} [get]
func (c *StudentController) GetDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetDetail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// Update applies a partial student update
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.StudentUpdateRequest true "Fields to change"
// @Success 200 {object} models.Student
// @Router /students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.StudentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// DeleteOne removes one student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student "The deleted student"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteOne(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.DeleteOne(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// DeleteAllForSchool removes every student of a school
// @Summary Delete school students
// @Tags students
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {object} dto.DeleteResult
// @Router /schools/{id}/students [delete]
func (c *StudentController) DeleteAllForSchool(ctx *gin.Context) {
	schoolID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.studentService.DeleteAllForSchool(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResult{DeletedCount: deleted})
}

// DeleteAllForClass removes every student of a class
// @Summary Delete class students
// @Tags students
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} dto.DeleteResult
// @Router /classes/{id}/students [delete]
func (c *StudentController) DeleteAllForClass(ctx *gin.Context) {
	classID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.studentService.DeleteAllForClass(ctx, classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResult{DeletedCount: deleted})
}

// RecordAttendance records one attendance entry for a subject and date
// @Summary Record attendance
// @Description Appends one attendance status. A second entry for the same subject and date is rejected.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.AttendanceRequest true "Attendance entry"
// @Success 200 {object} models.AttendanceEntry
// @Router /students/{id}/attendance [put]
func (c *StudentController) RecordAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	entry, err := c.studentService.RecordAttendance(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

// UpdateExamResult records one exam mark, replacing a previous mark for
// the same subject
// @Summary Record an exam result
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.ExamResultRequest true "Exam result"
// @Success 200 {object} models.ExamResult
// @Router /students/{id}/exam-result [put]
func (c *StudentController) UpdateExamResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ExamResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	result, err := c.studentService.UpdateExamResult(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// RemoveAttendance removes one student's attendance history, optionally
// scoped to a single subject via the subjectId query parameter
// @Summary Remove student attendance
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Param subjectId query int false "Limit removal to one subject"
// @Success 200 {object} dto.ModifyResult
// @Router /students/{id}/attendance [delete]
func (c *StudentController) RemoveAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var (
		modified int64
		err      error
	)
	if raw := ctx.Query("subjectId"); raw != "" {
		subjectID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID").
					WithDetails("subjectId must be a valid number")))
			return
		}
		modified, err = c.studentService.RemoveAttendanceForSubject(ctx, id, subjectID)
	} else {
		modified, err = c.studentService.RemoveAttendanceAll(ctx, id)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ModifyResult{ModifiedCount: modified})
}

// ClearAttendanceBySubject removes every student's attendance for one subject
// @Summary Clear subject attendance
// @Tags students
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.ModifyResult
// @Router /subjects/{id}/attendance [delete]
func (c *StudentController) ClearAttendanceBySubject(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	modified, err := c.studentService.ClearAttendanceBySubject(ctx, subjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ModifyResult{ModifiedCount: modified})
}

// ClearAttendanceBySchool removes the attendance of every student of a school
// @Summary Clear school attendance
// @Tags students
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {object} dto.ModifyResult
// @Router /schools/{id}/attendance [delete]
func (c *StudentController) ClearAttendanceBySchool(ctx *gin.Context) {
	schoolID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	modified, err := c.studentService.ClearAttendanceBySchool(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ModifyResult{ModifiedCount: modified})
}
