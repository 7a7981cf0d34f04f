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

// CategoryRepository manages activity category reference data.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository constructs a CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListAll returns every category ordered by name.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]models.ActivityCategory, error) {
	const query = `SELECT id, name, description, icon, created_at FROM activity_categories ORDER BY name`
	var categories []models.ActivityCategory
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ExistsByName checks for a category name collision.
func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists int
	if err := r.db.GetContext(ctx, &exists, "SELECT 1 FROM activity_categories WHERE name = $1 LIMIT 1", name); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check category name: %w", err)
	}
	return true, nil
}

// Create inserts a new category.
func (r *CategoryRepository) Create(ctx context.Context, category *models.ActivityCategory) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO activity_categories (id, name, description, icon, created_at)
        VALUES (:id, :name, :description, :icon, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, category); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}
