package dto

// CreateActivityRequest is the scholar-facing payload for logging volunteer
// work. ActivityDate uses the YYYY-MM-DD wire format.
type CreateActivityRequest struct {
	CategoryID   *string `json:"categoryId" validate:"omitempty,uuid"`
	Title        string  `json:"title" validate:"required,min=3,max=200"`
	Description  string  `json:"description" validate:"max=2000"`
	ActivityDate string  `json:"activityDate" validate:"required,datetime=2006-01-02"`
	Hours        int     `json:"hours" validate:"required,min=1,max=24"`
}

// ReviewActivityRequest carries the reviewer's optional note when approving
// or rejecting a pending activity.
type ReviewActivityRequest struct {
	Comment string `json:"comment" validate:"max=1000"`
}
