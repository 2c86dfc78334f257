package dto

import "time"

// ComplainCreateRequest carries the complaint creation payload.
type ComplainCreateRequest struct {
	UserID      int64     `json:"userId" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description" binding:"required"`
	SchoolID    int64     `json:"schoolId" binding:"required"`
}
