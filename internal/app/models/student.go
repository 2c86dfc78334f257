package models

import "time"

// Attendance statuses
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// Student defines a student account based on the 'students' table. The
// roll number is unique within (school, class).
type Student struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	Name     string `json:"name" db:"name" example:"Alice"`
	RollNum  int    `json:"rollNum" db:"roll_num" example:"123"`
	Password string `json:"password,omitempty" db:"password"`
	SclassID int64  `json:"sclassId" db:"sclass_id" example:"1"`
	SchoolID int64  `json:"schoolId" db:"school_id" example:"1"`
	Role     string `json:"role" db:"role" example:"Student"`

	// Relations (populated when needed)
	SclassName  *ClassInfo        `json:"sclassName,omitempty"`
	School      *SchoolInfo       `json:"school,omitempty"`
	Attendance  []AttendanceEntry `json:"attendance,omitempty"`
	ExamResults []ExamResult      `json:"examResult,omitempty"`
}

// AttendanceEntry is one attendance record based on the
// 'student_attendance' table. At most one entry exists per
// (student, subject, date); the history per subject is unbounded.
type AttendanceEntry struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	StudentID int64     `json:"studentId" db:"student_id" example:"1"`
	SubjectID int64     `json:"subjectId" db:"subject_id" example:"1"`
	Date      time.Time `json:"date" db:"date" example:"2025-03-10T00:00:00Z"`
	Status    string    `json:"status" db:"status" example:"Present"`

	// SubName carries the resolved subject name when detailing a student.
	SubName *SubjectInfo `json:"subName,omitempty"`
}

// ExamResult is one exam mark based on the 'exam_results' table; at most
// one row exists per (student, subject) and repeated submissions upsert.
type ExamResult struct {
	ID            int64 `json:"id" db:"id" example:"1"`
	StudentID     int64 `json:"studentId" db:"student_id" example:"1"`
	SubjectID     int64 `json:"subjectId" db:"subject_id" example:"1"`
	MarksObtained int   `json:"marksObtained" db:"marks_obtained" example:"60"`

	SubName *SubjectInfo `json:"subName,omitempty"`
}
