package dto

// SubjectInput is one subject inside a batch creation request.
type SubjectInput struct {
	SubName  string `json:"subName" binding:"required"`
	SubCode  string `json:"subCode" binding:"required"`
	Sessions int    `json:"sessions" binding:"required,min=1"`
}

// SubjectCreateRequest carries a batch of subjects for one class. The
// batch inserts atomically: one duplicate code rejects the whole batch.
type SubjectCreateRequest struct {
	Subjects []SubjectInput `json:"subjects" binding:"required,min=1,dive"`
	AdminID  int64          `json:"adminId" binding:"required"`
	SclassID int64          `json:"sclassId" binding:"required"`
}
