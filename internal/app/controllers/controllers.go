package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/app/services"
)

// Controllers holds all the controller instances
type Controllers struct {
	AdminController    *AdminController
	SclassController   *SclassController
	SubjectController  *SubjectController
	TeacherController  *TeacherController
	StudentController  *StudentController
	NoticeController   *NoticeController
	ComplainController *ComplainController
	ProfileController  *ProfileController
}

// NewControllers initializes all controllers
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AdminController:    NewAdminController(svcs.AdminService),
		SclassController:   NewSclassController(svcs.SclassService),
		SubjectController:  NewSubjectController(svcs.SubjectService),
		TeacherController:  NewTeacherController(svcs.TeacherService),
		StudentController:  NewStudentController(svcs.StudentService),
		NoticeController:   NewNoticeController(svcs.NoticeService),
		ComplainController: NewComplainController(svcs.ComplainService),
		ProfileController:  NewProfileController(svcs.AdminService, svcs.StudentService, svcs.TeacherService),
	}
}

// parseIDParam reads a numeric path parameter; on failure it writes the
// 400 response and reports false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID").
				WithDetails(name+" must be a valid number")))
		return 0, false
	}
	return id, true
}
