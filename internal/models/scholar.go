package models

import "time"

// Scholar extends a user with scholarship-program attributes. A scholar is
// owned by exactly one user and is never hard-deleted; deactivation flips
// IsActive.
type Scholar struct {
	ID                    string    `db:"id" json:"id"`
	UserID                string    `db:"user_id" json:"user_id"`
	ScholarCode           string    `db:"scholar_code" json:"scholar_code"`
	Level                 string    `db:"level" json:"level"`
	RequiredHoursPerMonth int       `db:"required_hours_per_month" json:"required_hours_per_month"`
	IsActive              bool      `db:"is_active" json:"is_active"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at" json:"updated_at"`
}

// ScholarWithUser joins a scholar with the owning user's identity fields.
type ScholarWithUser struct {
	Scholar
	UserEmail     string `db:"user_email" json:"user_email"`
	UserFirstName string `db:"user_first_name" json:"user_first_name"`
	UserLastName  string `db:"user_last_name" json:"user_last_name"`
}

// DisplayName returns the scholar's human-readable name.
func (s ScholarWithUser) DisplayName() string {
	switch {
	case s.UserFirstName == "":
		return s.UserLastName
	case s.UserLastName == "":
		return s.UserFirstName
	default:
		return s.UserFirstName + " " + s.UserLastName
	}
}

// ScholarStats summarises one scholar's activity history. Hour totals cover
// approved activities only; counts cover all statuses over all time.
type ScholarStats struct {
	ScholarID          string `json:"scholarId"`
	TotalHours         int    `json:"totalHours"`
	CurrentMonthHours  int    `json:"currentMonthHours"`
	PendingActivities  int    `json:"pendingActivities"`
	ApprovedActivities int    `json:"approvedActivities"`
	RejectedActivities int    `json:"rejectedActivities"`
}
