package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/scholar-hours-api/internal/models"
)

const scholarWithUserColumns = `s.id, s.user_id, s.scholar_code, s.level, s.required_hours_per_month, s.is_active, s.created_at, s.updated_at,
        u.email AS user_email, u.first_name AS user_first_name, u.last_name AS user_last_name`

// ScholarRepository manages persistence for scholar records.
type ScholarRepository struct {
	db *sqlx.DB
}

// NewScholarRepository constructs a ScholarRepository.
func NewScholarRepository(db *sqlx.DB) *ScholarRepository {
	return &ScholarRepository{db: db}
}

// ListWithUsers returns all scholars joined with their owning user, ordered
// by user name so report rows come out in a stable order.
func (r *ScholarRepository) ListWithUsers(ctx context.Context) ([]models.ScholarWithUser, error) {
	query := fmt.Sprintf(`SELECT %s FROM scholars s JOIN users u ON u.id = s.user_id ORDER BY u.first_name, u.last_name, s.scholar_code`, scholarWithUserColumns)
	var scholars []models.ScholarWithUser
	if err := r.db.SelectContext(ctx, &scholars, query); err != nil {
		return nil, fmt.Errorf("list scholars: %w", err)
	}
	return scholars, nil
}

// FindByID fetches one scholar with user details.
func (r *ScholarRepository) FindByID(ctx context.Context, id string) (*models.ScholarWithUser, error) {
	query := fmt.Sprintf(`SELECT %s FROM scholars s JOIN users u ON u.id = s.user_id WHERE s.id = $1`, scholarWithUserColumns)
	var scholar models.ScholarWithUser
	if err := r.db.GetContext(ctx, &scholar, query, id); err != nil {
		return nil, err
	}
	return &scholar, nil
}

// FindByUserID resolves the scholar profile owned by a user.
func (r *ScholarRepository) FindByUserID(ctx context.Context, userID string) (*models.ScholarWithUser, error) {
	query := fmt.Sprintf(`SELECT %s FROM scholars s JOIN users u ON u.id = s.user_id WHERE s.user_id = $1`, scholarWithUserColumns)
	var scholar models.ScholarWithUser
	if err := r.db.GetContext(ctx, &scholar, query, userID); err != nil {
		return nil, err
	}
	return &scholar, nil
}

// ExistsByCode checks whether a scholar code is taken, optionally excluding an ID.
func (r *ScholarRepository) ExistsByCode(ctx context.Context, code string, excludeID string) (bool, error) {
	query := "SELECT 1 FROM scholars WHERE scholar_code = $1"
	args := []interface{}{code}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check scholar code: %w", err)
	}
	return true, nil
}

// Count returns the total number of scholar records.
func (r *ScholarRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM scholars"); err != nil {
		return 0, fmt.Errorf("count scholars: %w", err)
	}
	return total, nil
}

// Create inserts a new scholar record.
func (r *ScholarRepository) Create(ctx context.Context, scholar *models.Scholar) error {
	if scholar.ID == "" {
		scholar.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if scholar.CreatedAt.IsZero() {
		scholar.CreatedAt = now
	}
	scholar.UpdatedAt = now
	const query = `INSERT INTO scholars (id, user_id, scholar_code, level, required_hours_per_month, is_active, created_at, updated_at)
        VALUES (:id, :user_id, :scholar_code, :level, :required_hours_per_month, :is_active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, scholar); err != nil {
		return fmt.Errorf("create scholar: %w", err)
	}
	return nil
}

// Update modifies level, required hours and active flag of a scholar.
func (r *ScholarRepository) Update(ctx context.Context, scholar *models.Scholar) error {
	scholar.UpdatedAt = time.Now().UTC()
	const query = `UPDATE scholars SET scholar_code = :scholar_code, level = :level, required_hours_per_month = :required_hours_per_month, is_active = :is_active, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, scholar); err != nil {
		return fmt.Errorf("update scholar: %w", err)
	}
	return nil
}
