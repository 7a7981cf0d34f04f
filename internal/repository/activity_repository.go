package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/scholar-hours-api/internal/models"
)

const activityColumns = `a.id, a.scholar_id, a.category_id, a.title, a.description, a.activity_date, a.hours, a.status, a.reviewed_by, a.review_comment, a.reviewed_at, a.created_at, a.updated_at`

// ActivityRepository manages persistence for logged activities. Activities
// are never deleted; the review transition is the only mutation after create.
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository constructs an ActivityRepository.
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create inserts a new activity submission. Status is always pending on entry.
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = now
	}
	activity.UpdatedAt = now
	activity.Status = models.ActivityStatusPending
	const query = `INSERT INTO activities (id, scholar_id, category_id, title, description, activity_date, hours, status, created_at, updated_at)
        VALUES (:id, :scholar_id, :category_id, :title, :description, :activity_date, :hours, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, activity); err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

// FindByID fetches a single activity.
func (r *ActivityRepository) FindByID(ctx context.Context, id string) (*models.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities a WHERE a.id = $1`, activityColumns)
	var activity models.Activity
	if err := r.db.GetContext(ctx, &activity, query, id); err != nil {
		return nil, err
	}
	return &activity, nil
}

// ListByScholar returns the complete activity history of one scholar, most
// recent activity date first.
func (r *ActivityRepository) ListByScholar(ctx context.Context, scholarID string) ([]models.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities a WHERE a.scholar_id = $1 ORDER BY a.activity_date DESC`, activityColumns)
	var activities []models.Activity
	if err := r.db.SelectContext(ctx, &activities, query, scholarID); err != nil {
		return nil, fmt.Errorf("list activities by scholar: %w", err)
	}
	return activities, nil
}

// ListRecentByScholar returns the newest N activities of one scholar.
func (r *ActivityRepository) ListRecentByScholar(ctx context.Context, scholarID string, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 10
	}
	query := fmt.Sprintf(`SELECT %s FROM activities a WHERE a.scholar_id = $1 ORDER BY a.activity_date DESC LIMIT $2`, activityColumns)
	var activities []models.Activity
	if err := r.db.SelectContext(ctx, &activities, query, scholarID, limit); err != nil {
		return nil, fmt.Errorf("list recent activities: %w", err)
	}
	return activities, nil
}

// ListByScholarIDs returns all activities belonging to the given scholars,
// keyed by scholar. The report generator consumes this snapshot.
func (r *ActivityRepository) ListByScholarIDs(ctx context.Context, scholarIDs []string) (map[string][]models.Activity, error) {
	result := make(map[string][]models.Activity, len(scholarIDs))
	if len(scholarIDs) == 0 {
		return result, nil
	}
	query, args, err := sqlx.In(fmt.Sprintf(`SELECT %s FROM activities a WHERE a.scholar_id IN (?)`, activityColumns), scholarIDs)
	if err != nil {
		return nil, fmt.Errorf("build activities query: %w", err)
	}
	query = r.db.Rebind(query)
	var activities []models.Activity
	if err := r.db.SelectContext(ctx, &activities, query, args...); err != nil {
		return nil, fmt.Errorf("list activities by scholars: %w", err)
	}
	for _, activity := range activities {
		result[activity.ScholarID] = append(result[activity.ScholarID], activity)
	}
	return result, nil
}

// ListInWindow returns all activities whose activity_date falls in
// [start, end). The dashboard aggregates over this set. Bounds are sent as
// calendar dates so the DATE column comparison is zone-independent.
func (r *ActivityRepository) ListInWindow(ctx context.Context, start, end time.Time) ([]models.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities a WHERE a.activity_date >= $1::date AND a.activity_date < $2::date`, activityColumns)
	var activities []models.Activity
	if err := r.db.SelectContext(ctx, &activities, query, start.Format("2006-01-02"), end.Format("2006-01-02")); err != nil {
		return nil, fmt.Errorf("list activities in window: %w", err)
	}
	return activities, nil
}

// ListWithDetails returns activities joined with scholar, owner, category,
// and reviewer display data, newest submission first. limit <= 0 means all.
func (r *ActivityRepository) ListWithDetails(ctx context.Context, limit int) ([]models.ActivityDetail, error) {
	query := fmt.Sprintf(`SELECT %s,
        s.scholar_code, s.level AS scholar_level, u.first_name AS scholar_first_name, u.last_name AS scholar_last_name,
        c.name AS category_name,
        CASE WHEN rv.id IS NULL THEN NULL ELSE rv.first_name || ' ' || rv.last_name END AS reviewer_name
        FROM activities a
        JOIN scholars s ON s.id = a.scholar_id
        JOIN users u ON u.id = s.user_id
        LEFT JOIN activity_categories c ON c.id = a.category_id
        LEFT JOIN users rv ON rv.id = a.reviewed_by
        ORDER BY a.created_at DESC`, activityColumns)
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}
	var details []models.ActivityDetail
	if err := r.db.SelectContext(ctx, &details, query, args...); err != nil {
		return nil, fmt.Errorf("list activities with details: %w", err)
	}
	return details, nil
}

// SetStatus applies the review transition. The WHERE guard enforces the
// single pending→{approved,rejected} transition at the store boundary:
// zero rows affected means the activity was absent or already reviewed.
func (r *ActivityRepository) SetStatus(ctx context.Context, id string, status models.ActivityStatus, reviewerID string, comment *string, reviewedAt time.Time) (bool, error) {
	const query = `UPDATE activities SET status = $2, reviewed_by = $3, review_comment = $4, reviewed_at = $5, updated_at = $5
        WHERE id = $1 AND status = $6`
	res, err := r.db.ExecContext(ctx, query, id, status, reviewerID, comment, reviewedAt, models.ActivityStatusPending)
	if err != nil {
		return false, fmt.Errorf("set activity status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set activity status result: %w", err)
	}
	return affected > 0, nil
}
