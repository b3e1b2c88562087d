package dto

// CreateSubjectRequest adds a subject to the catalog.
type CreateSubjectRequest struct {
	Name string `json:"name" validate:"required"`
}
