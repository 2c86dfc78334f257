package models

// Teacher defines a teacher account based on the 'teachers' table. A
// teacher teaches at most one subject; the assignment is optional.
type Teacher struct {
	ID             int64  `json:"id" db:"id" example:"1"`
	Name           string `json:"name" db:"name" example:"John Smith"`
	Email          string `json:"email" db:"email" example:"john@school.example"`
	Password       string `json:"password,omitempty" db:"password"`
	Role           string `json:"role" db:"role" example:"Teacher"`
	SchoolID       int64  `json:"schoolId" db:"school_id" example:"1"`
	TeachSubjectID *int64 `json:"teachSubjectId,omitempty" db:"teach_subject_id"`
	TeachSclassID  int64  `json:"teachSclassId" db:"teach_sclass_id" example:"1"`

	// Relations (populated when needed)
	TeachSubject *SubjectInfo `json:"teachSubject,omitempty"`
	TeachSclass  *ClassInfo   `json:"teachSclass,omitempty"`
	School       *SchoolInfo  `json:"school,omitempty"`
}

// TeacherInfo is a teacher reference resolved to its display name only.
type TeacherInfo struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"John Smith"`
}
