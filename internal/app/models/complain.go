package models

import "time"

// Complain defines a complaint submitted by a student, based on the
// 'complains' table.
type Complain struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	UserID      int64     `json:"userId" db:"user_id" example:"1"`
	Date        time.Time `json:"date" db:"date" example:"2025-03-10T00:00:00Z"`
	Description string    `json:"description" db:"description" example:"Projector broken in room 4"`
	SchoolID    int64     `json:"schoolId" db:"school_id" example:"1"`
}
