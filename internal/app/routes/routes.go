package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/schoolhub/internal/app/controllers"
	"github.com/emre/schoolhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Admin accounts
	admins := v1.Group("/admins")
	{
		admins.POST("/register", ctrls.AdminController.Register)
		admins.POST("/login", ctrls.AdminController.Login)
		admins.GET("/:id", ctrls.AdminController.GetDetail)
	}

	// Classes; deleting a class cascades to its students, subjects and
	// teachers
	classes := v1.Group("/classes")
	{
		classes.POST("", ctrls.SclassController.Create)
		classes.GET("/:id", ctrls.SclassController.GetDetail)
		classes.GET("/:id/students", ctrls.SclassController.ListStudents)
		classes.GET("/:id/subjects", ctrls.SubjectController.ListForClass)
		classes.GET("/:id/subjects/free", ctrls.SubjectController.ListFreeForClass)
		classes.DELETE("/:id", ctrls.SclassController.DeleteOne)
		classes.DELETE("/:id/students", ctrls.StudentController.DeleteAllForClass)
		classes.DELETE("/:id/subjects", ctrls.SubjectController.DeleteAllForClass)
		classes.DELETE("/:id/teachers", ctrls.TeacherController.DeleteAllForClass)
	}

	// Subjects
	subjects := v1.Group("/subjects")
	{
		subjects.POST("", ctrls.SubjectController.CreateBatch)
		subjects.GET("/:id", ctrls.SubjectController.GetDetail)
		subjects.DELETE("/:id", ctrls.SubjectController.DeleteOne)
		subjects.DELETE("/:id/attendance", ctrls.StudentController.ClearAttendanceBySubject)
	}

	// Students
	students := v1.Group("/students")
	{
		students.POST("/register", ctrls.StudentController.Register)
		students.POST("/login", ctrls.StudentController.Login)
		students.GET("/:id", ctrls.StudentController.GetDetail)
		students.PUT("/:id", ctrls.StudentController.Update)
		students.DELETE("/:id", ctrls.StudentController.DeleteOne)
		students.PUT("/:id/attendance", ctrls.StudentController.RecordAttendance)
		students.DELETE("/:id/attendance", ctrls.StudentController.RemoveAttendance)
		students.PUT("/:id/exam-result", ctrls.StudentController.UpdateExamResult)
	}

	// Teachers
	teachers := v1.Group("/teachers")
	{
		teachers.POST("/register", ctrls.TeacherController.Register)
		teachers.POST("/login", ctrls.TeacherController.Login)
		teachers.GET("/:id", ctrls.TeacherController.GetDetail)
		teachers.PUT("/:id/subject", ctrls.TeacherController.AssignSubject)
		teachers.DELETE("/:id", ctrls.TeacherController.DeleteOne)
	}

	// Notices
	notices := v1.Group("/notices")
	{
		notices.POST("", ctrls.NoticeController.Create)
		notices.PUT("/:id", ctrls.NoticeController.Update)
		notices.DELETE("/:id", ctrls.NoticeController.DeleteOne)
	}

	// Complains
	v1.POST("/complains", ctrls.ComplainController.Create)

	// School-scoped collections
	schools := v1.Group("/schools")
	{
		schools.GET("/:id/classes", ctrls.SclassController.List)
		schools.GET("/:id/subjects", ctrls.SubjectController.ListForSchool)
		schools.GET("/:id/students", ctrls.StudentController.ListForSchool)
		schools.GET("/:id/teachers", ctrls.TeacherController.List)
		schools.GET("/:id/notices", ctrls.NoticeController.List)
		schools.GET("/:id/complains", ctrls.ComplainController.List)
		schools.DELETE("/:id/classes", ctrls.SclassController.DeleteAllForSchool)
		schools.DELETE("/:id/subjects", ctrls.SubjectController.DeleteAllForSchool)
		schools.DELETE("/:id/students", ctrls.StudentController.DeleteAllForSchool)
		schools.DELETE("/:id/teachers", ctrls.TeacherController.DeleteAllForSchool)
		schools.DELETE("/:id/notices", ctrls.NoticeController.DeleteAllForSchool)
		schools.DELETE("/:id/attendance", ctrls.StudentController.ClearAttendanceBySchool)
	}

	// Authenticated routes
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/profile", ctrls.ProfileController.GetProfile)
	}
}
