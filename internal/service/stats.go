package service

import (
	"fmt"
	"time"

	"github.com/noah-isme/scholar-hours-api/internal/dto"
	"github.com/noah-isme/scholar-hours-api/internal/models"
	appErrors "github.com/noah-isme/scholar-hours-api/pkg/errors"
)

// monthWindow returns the [start, end) bounds of a calendar month in the
// given location. time.Date normalises month 13 to January of the next
// year, which handles the December rollover.
func monthWindow(year, month int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, loc)
	return start, end
}

// currentMonthWindow derives the month bounds containing now, in now's location.
func currentMonthWindow(now time.Time) (time.Time, time.Time) {
	return monthWindow(now.Year(), int(now.Month()), now.Location())
}

// inWindow reports whether d falls in [start, end): inclusive start,
// exclusive end.
func inWindow(d, start, end time.Time) bool {
	return !d.Before(start) && d.Before(end)
}

// localDate re-anchors a stored activity date to midnight in loc. DATE
// columns decode at UTC midnight, so comparing that raw instant against
// bounds built in another location would shift the calendar day.
func localDate(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// validateReportMonth rejects malformed report targets before any
// aggregation runs. Months are 1-indexed and never clamped.
func validateReportMonth(year, month int) error {
	if year < 1000 || year > 9999 {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("year %d is not a 4-digit year", year))
	}
	if month < 1 || month > 12 {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("month %d is out of range 1-12", month))
	}
	return nil
}

// ComputeScholarStats summarises one scholar's complete activity set. Hour
// totals count approved activities only; the current-month total is further
// restricted to activities dated inside the month containing now. Status
// counts cover all time. Empty input yields all-zero stats, never an error.
func ComputeScholarStats(scholarID string, activities []models.Activity, now time.Time) models.ScholarStats {
	start, end := currentMonthWindow(now)
	stats := models.ScholarStats{ScholarID: scholarID}

	for _, activity := range activities {
		switch activity.Status {
		case models.ActivityStatusApproved:
			stats.ApprovedActivities++
			stats.TotalHours += activity.Hours
			if inWindow(localDate(activity.ActivityDate, now.Location()), start, end) {
				stats.CurrentMonthHours += activity.Hours
			}
		case models.ActivityStatusPending:
			stats.PendingActivities++
		case models.ActivityStatusRejected:
			stats.RejectedActivities++
		}
	}

	return stats
}

// BuildMonthlyReport produces one compliance row per scholar for the target
// (year, month). Activities are filtered to the month window, bucketed by
// status, and compared against each scholar's required hours. Rejected
// activities are counted but their hours contribute to neither total. Row
// order follows the scholar slice, so a stable input yields a stable report.
func BuildMonthlyReport(year, month int, loc *time.Location, scholars []models.ScholarWithUser, activitiesByScholar map[string][]models.Activity) ([]dto.MonthlyReportRow, error) {
	if err := validateReportMonth(year, month); err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}
	start, end := monthWindow(year, month, loc)

	rows := make([]dto.MonthlyReportRow, 0, len(scholars))
	for _, scholar := range scholars {
		row := dto.MonthlyReportRow{
			ScholarCode:   scholar.ScholarCode,
			ScholarName:   scholar.DisplayName(),
			ScholarLevel:  scholar.Level,
			RequiredHours: scholar.RequiredHoursPerMonth,
		}

		for _, activity := range activitiesByScholar[scholar.ID] {
			if !inWindow(localDate(activity.ActivityDate, loc), start, end) {
				continue
			}
			switch activity.Status {
			case models.ActivityStatusApproved:
				row.ApprovedActivities++
				row.CompletedHours += activity.Hours
			case models.ActivityStatusPending:
				row.PendingActivities++
				row.PendingHours += activity.Hours
			case models.ActivityStatusRejected:
				row.RejectedActivities++
			}
		}

		row.IsCompliant = row.CompletedHours >= scholar.RequiredHoursPerMonth
		rows = append(rows, row)
	}

	return rows, nil
}

// BuildDashboardStats aggregates program-wide counters from one month's
// activity snapshot.
func BuildDashboardStats(totalScholars int, monthActivities []models.Activity) dto.DashboardStats {
	stats := dto.DashboardStats{TotalScholars: totalScholars}

	activeScholars := make(map[string]struct{})
	for _, activity := range monthActivities {
		activeScholars[activity.ScholarID] = struct{}{}
		switch activity.Status {
		case models.ActivityStatusPending:
			stats.PendingApprovals++
		case models.ActivityStatusApproved:
			stats.HoursThisMonth += activity.Hours
		}
	}
	stats.ActiveThisMonth = len(activeScholars)

	return stats
}
