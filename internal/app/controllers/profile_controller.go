package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/app/services"
	"github.com/emre/schoolhub/internal/middleware"
)

// ProfileController resolves the authenticated account from token claims.
type ProfileController struct {
	adminService   *services.AdminService
	studentService *services.StudentService
	teacherService *services.TeacherService
}

// NewProfileController creates a new ProfileController
func NewProfileController(adminService *services.AdminService, studentService *services.StudentService, teacherService *services.TeacherService) *ProfileController {
	return &ProfileController{
		adminService:   adminService,
		studentService: studentService,
		teacherService: teacherService,
	}
}

// GetProfile returns the account behind the bearer token
// @Summary Get the authenticated account
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Admin "Admin, student or teacher record per the token role"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	accountID := ctx.GetInt64(middleware.ContextAccountID)
	role := ctx.GetString(middleware.ContextRole)

	var (
		account interface{}
		err     error
	)
	switch role {
	case models.RoleAdmin:
		account, err = c.adminService.GetDetail(ctx, accountID)
	case models.RoleStudent:
		account, err = c.studentService.GetDetail(ctx, accountID)
	case models.RoleTeacher:
		account, err = c.teacherService.GetDetail(ctx, accountID)
	default:
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
		return
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, account)
}
