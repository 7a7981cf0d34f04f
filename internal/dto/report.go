package dto

import "github.com/noah-isme/scholar-hours-api/internal/models"

// MonthlyReportRow is one scholar's compliance line for a target month.
// Hours are split by review status: rejected activities are counted but
// their hours never contribute to either total.
type MonthlyReportRow struct {
	ScholarCode        string `json:"scholarId"`
	ScholarName        string `json:"scholarName"`
	ScholarLevel       string `json:"scholarLevel"`
	RequiredHours      int    `json:"requiredHours"`
	CompletedHours     int    `json:"completedHours"`
	PendingHours       int    `json:"pendingHours"`
	ApprovedActivities int    `json:"approvedActivities"`
	PendingActivities  int    `json:"pendingActivities"`
	RejectedActivities int    `json:"rejectedActivities"`
	IsCompliant        bool   `json:"isCompliant"`
}

// DashboardStats aggregates program-wide counters for the admin dashboard,
// windowed to the current month where noted.
type DashboardStats struct {
	TotalScholars    int `json:"totalScholars"`
	ActiveThisMonth  int `json:"activeThisMonth"`
	PendingApprovals int `json:"pendingApprovals"`
	HoursThisMonth   int `json:"hoursThisMonth"`
}

// ScholarWithStats pairs a scholar roster entry with its computed stats for
// the admin scholar listing.
type ScholarWithStats struct {
	models.ScholarWithUser
	Stats models.ScholarStats `json:"stats"`
}
