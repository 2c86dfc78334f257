package dto

// SclassCreateRequest carries the class creation payload.
type SclassCreateRequest struct {
	SclassName string `json:"sclassName" binding:"required"`
	AdminID    int64  `json:"adminId" binding:"required"`
}
