package dto

// UpdateLabelRequest renames a tag or ingredient
type UpdateLabelRequest struct {
	Name string `json:"name" binding:"required"`
}
