package dto

import "github.com/emre/schoolhub/internal/app/models"

// TeacherRegisterRequest carries the teacher registration payload. The
// subject assignment is optional at registration time.
type TeacherRegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	SchoolID       int64  `json:"schoolId" binding:"required"`
	TeachSclassID  int64  `json:"teachSclassId" binding:"required"`
	TeachSubjectID *int64 `json:"teachSubjectId"`
}

// TeacherLoginRequest carries the teacher login payload.
type TeacherLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TeacherLoginResponse is the teacher record plus the issued access token.
type TeacherLoginResponse struct {
	models.Teacher
	Token string `json:"token,omitempty"`
}

// TeacherSubjectRequest assigns a subject to a teacher.
type TeacherSubjectRequest struct {
	SubjectID int64 `json:"subjectId" binding:"required"`
}
