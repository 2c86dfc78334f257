package models

// RoleAdmin, RoleStudent and RoleTeacher are the account role labels
// carried on every persisted account row and inside JWT claims.
const (
	RoleAdmin   = "Admin"
	RoleStudent = "Student"
	RoleTeacher = "Teacher"
)

// Admin defines the school owner account based on the 'admins' table.
// An admin is the tenant root: every other entity carries its id as the
// school reference.
type Admin struct {
	ID         int64  `json:"id" db:"id" example:"1"`
	Name       string `json:"name" db:"name" example:"Jane Doe"`
	Email      string `json:"email" db:"email" example:"jane@school.example"`
	Password   string `json:"password,omitempty" db:"password"`
	SchoolName string `json:"schoolName" db:"school_name" example:"Riverside High"`
	Role       string `json:"role" db:"role" example:"Admin"`
}
