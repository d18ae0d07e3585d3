package model

// ChangeUnitDTO is the body of a unit change request, sent as JSON or as a form post.
// Unit is lower-cased before validation.
type ChangeUnitDTO struct {
	Unit string `json:"unit" form:"unit" validate:"required,oneof=c f celsius fahrenheit"`
}
