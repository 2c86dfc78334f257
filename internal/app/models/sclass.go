package models

// Sclass defines a school class based on the 'sclasses' table. The class
// name is unique within its school only.
type Sclass struct {
	ID         int64  `json:"id" db:"id" example:"1"`
	SclassName string `json:"sclassName" db:"sclass_name" example:"Class 1"`
	SchoolID   int64  `json:"schoolId" db:"school_id" example:"1"`

	// School carries the resolved owner name when listing/detailing.
	School *SchoolInfo `json:"school,omitempty"`
}

// SchoolInfo is the owner reference resolved to its display name only.
type SchoolInfo struct {
	ID         int64  `json:"id" example:"1"`
	SchoolName string `json:"schoolName" example:"Riverside High"`
}

// ClassInfo is a class reference resolved to its display name only.
type ClassInfo struct {
	ID         int64  `json:"id" example:"1"`
	SclassName string `json:"sclassName" example:"Class 1"`
}
