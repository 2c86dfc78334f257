package models

// Subject defines a taught subject based on the 'subjects' table. The
// subject code is unique within its school, not within its class.
type Subject struct {
	ID        int64  `json:"id" db:"id" example:"1"`
	SubName   string `json:"subName" db:"sub_name" example:"Mathematics"`
	SubCode   string `json:"subCode" db:"sub_code" example:"MATH101"`
	Sessions  int    `json:"sessions" db:"sessions" example:"10"`
	SclassID  int64  `json:"sclassId" db:"sclass_id" example:"1"`
	SchoolID  int64  `json:"schoolId" db:"school_id" example:"1"`
	TeacherID *int64 `json:"teacherId,omitempty" db:"teacher_id"`

	// Relations (populated when needed)
	SclassName *ClassInfo   `json:"sclassName,omitempty"`
	School     *SchoolInfo  `json:"school,omitempty"`
	Teacher    *TeacherInfo `json:"teacher,omitempty"`
}

// SubjectInfo is a subject reference resolved to its display fields only.
type SubjectInfo struct {
	ID       int64  `json:"id" example:"1"`
	SubName  string `json:"subName" example:"Mathematics"`
	Sessions int    `json:"sessions,omitempty" example:"10"`
}
