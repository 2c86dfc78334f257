package models

import "time"

// Notice defines a school notice based on the 'notices' table.
type Notice struct {
	ID       int64     `json:"id" db:"id" example:"1"`
	Title    string    `json:"title" db:"title" example:"Exam schedule"`
	Details  string    `json:"details" db:"details" example:"Finals start on Monday"`
	Date     time.Time `json:"date" db:"date" example:"2025-03-10T00:00:00Z"`
	SchoolID int64     `json:"schoolId" db:"school_id" example:"1"`
}
