package dto

// CreateScholarRequest enrols a new scholar together with the owning user
// account. RequiredHoursPerMonth falls back to the program default when
// omitted.
type CreateScholarRequest struct {
	Email                 string `json:"email" validate:"required,email"`
	Password              string `json:"password" validate:"required,min=8"`
	FirstName             string `json:"firstName" validate:"required,min=1,max=100"`
	LastName              string `json:"lastName" validate:"max=100"`
	ScholarCode           string `json:"scholarCode" validate:"required,min=2,max=50"`
	Level                 string `json:"level" validate:"required,min=1,max=50"`
	RequiredHoursPerMonth int    `json:"requiredHoursPerMonth" validate:"omitempty,min=1"`
}

// UpdateScholarRequest patches the mutable scholarship attributes. Nil fields
// are left untouched; IsActive false performs a soft deactivation.
type UpdateScholarRequest struct {
	Level                 *string `json:"level" validate:"omitempty,min=1,max=50"`
	RequiredHoursPerMonth *int    `json:"requiredHoursPerMonth" validate:"omitempty,min=1"`
	IsActive              *bool   `json:"isActive"`
}
