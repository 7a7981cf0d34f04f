package models

import "time"

// ActivityStatus captures the review lifecycle of a logged activity.
// The only legal transitions are pending→approved and pending→rejected;
// a reviewed activity never regresses to pending.
type ActivityStatus string

const (
	ActivityStatusPending  ActivityStatus = "pending"
	ActivityStatusApproved ActivityStatus = "approved"
	ActivityStatusRejected ActivityStatus = "rejected"
)

// Valid reports whether the status is one of the known values.
func (s ActivityStatus) Valid() bool {
	switch s {
	case ActivityStatusPending, ActivityStatusApproved, ActivityStatusRejected:
		return true
	default:
		return false
	}
}

// MinActivityHours and MaxActivityHours bound a single activity submission.
const (
	MinActivityHours = 1
	MaxActivityHours = 24
)

// Activity is a single logged unit of volunteer work submitted by a scholar.
// ActivityDate is the calendar date the work occurred, distinct from the
// submission timestamp.
type Activity struct {
	ID            string         `db:"id" json:"id"`
	ScholarID     string         `db:"scholar_id" json:"scholar_id"`
	CategoryID    *string        `db:"category_id" json:"category_id,omitempty"`
	Title         string         `db:"title" json:"title"`
	Description   string         `db:"description" json:"description"`
	ActivityDate  time.Time      `db:"activity_date" json:"activity_date"`
	Hours         int            `db:"hours" json:"hours"`
	Status        ActivityStatus `db:"status" json:"status"`
	ReviewedBy    *string        `db:"reviewed_by" json:"reviewed_by,omitempty"`
	ReviewComment *string        `db:"review_comment" json:"review_comment,omitempty"`
	ReviewedAt    *time.Time     `db:"reviewed_at" json:"reviewed_at,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// ActivityDetail joins an activity with scholar, owner, category, and
// reviewer display data for the admin review queue.
type ActivityDetail struct {
	Activity
	ScholarCode      string  `db:"scholar_code" json:"scholar_code"`
	ScholarLevel     string  `db:"scholar_level" json:"scholar_level"`
	ScholarFirstName string  `db:"scholar_first_name" json:"scholar_first_name"`
	ScholarLastName  string  `db:"scholar_last_name" json:"scholar_last_name"`
	CategoryName     *string `db:"category_name" json:"category_name,omitempty"`
	ReviewerName     *string `db:"reviewer_name" json:"reviewer_name,omitempty"`
}

// ActivityCategory is reference data describing a kind of volunteer work.
type ActivityCategory struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Icon        string    `db:"icon" json:"icon"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
