package dto

import (
	"time"

	"github.com/emre/schoolhub/internal/app/models"
)

// StudentRegisterRequest carries the student registration payload.
type StudentRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	RollNum  int    `json:"rollNum" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	SclassID int64  `json:"sclassId" binding:"required"`
	AdminID  int64  `json:"adminId" binding:"required"`
}

// StudentLoginRequest carries the student login payload. Students log in
// with roll number and name rather than an email.
type StudentLoginRequest struct {
	RollNum     int    `json:"rollNum" binding:"required"`
	StudentName string `json:"studentName" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// StudentLoginResponse is the student record plus the issued access token.
type StudentLoginResponse struct {
	models.Student
	Token string `json:"token,omitempty"`
}

// StudentUpdateRequest carries a partial student update. Nil fields are
// left untouched; a non-nil password is re-hashed before storage.
type StudentUpdateRequest struct {
	Name     *string `json:"name"`
	RollNum  *int    `json:"rollNum"`
	Password *string `json:"password"`
	SclassID *int64  `json:"sclassId"`
}

// AttendanceRequest records one attendance status for a subject on a date.
type AttendanceRequest struct {
	SubjectID int64     `json:"subjectId" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	Status    string    `json:"status" binding:"required,oneof=Present Absent"`
}

// ExamResultRequest upserts one exam mark for a subject.
type ExamResultRequest struct {
	SubjectID     int64 `json:"subjectId" binding:"required"`
	MarksObtained int   `json:"marksObtained" binding:"min=0"`
}

// RemoveAttendanceRequest scopes a per-student attendance removal to one
// subject.
type RemoveAttendanceRequest struct {
	SubjectID int64 `json:"subjectId" binding:"required"`
}
