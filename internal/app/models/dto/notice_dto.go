package dto

import "time"

// NoticeCreateRequest carries the notice creation payload.
type NoticeCreateRequest struct {
	Title   string    `json:"title" binding:"required"`
	Details string    `json:"details" binding:"required"`
	Date    time.Time `json:"date" binding:"required"`
	AdminID int64     `json:"adminId" binding:"required"`
}

// NoticeUpdateRequest carries a full notice field replacement.
type NoticeUpdateRequest struct {
	Title   string    `json:"title" binding:"required"`
	Details string    `json:"details" binding:"required"`
	Date    time.Time `json:"date" binding:"required"`
}
