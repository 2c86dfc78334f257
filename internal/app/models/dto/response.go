package dto

// MessageResponse is the body used for every domain-level outcome that
// carries only a message: not-found markers, duplicate constraints and
// empty bulk deletes. It always travels with status 200.
type MessageResponse struct {
	Message string `json:"message" example:"No sclasses found"`
}

// DeleteResult reports how many rows a bulk delete removed.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount" example:"3"`
}

// ModifyResult reports how many rows a bulk update touched.
type ModifyResult struct {
	ModifiedCount int64 `json:"modifiedCount" example:"3"`
}
