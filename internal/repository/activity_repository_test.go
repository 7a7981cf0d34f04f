package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholar-hours-api/internal/models"
)

func newActivityMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func activityRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "scholar_id", "category_id", "title", "description", "activity_date", "hours", "status", "reviewed_by", "review_comment", "reviewed_at", "created_at", "updated_at"})
}

func TestActivityRepositoryCreateForcesPending(t *testing.T) {
	db, mock, cleanup := newActivityMock(t)
	defer cleanup()
	repo := NewActivityRepository(db)

	mock.ExpectExec("INSERT INTO activities").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	activity := &models.Activity{
		ScholarID:    "s1",
		Title:        "Beach cleanup",
		ActivityDate: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		Hours:        4,
		Status:       models.ActivityStatusApproved,
	}
	err := repo.Create(context.Background(), activity)
	require.NoError(t, err)
	assert.NotEmpty(t, activity.ID)
	assert.Equal(t, models.ActivityStatusPending, activity.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepositoryListByScholar(t *testing.T) {
	db, mock, cleanup := newActivityMock(t)
	defer cleanup()
	repo := NewActivityRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT .+ FROM activities a WHERE a.scholar_id = .+ ORDER BY a.activity_date DESC").
		WithArgs("s1").
		WillReturnRows(activityRows().
			AddRow("a1", "s1", nil, "Tutoring session", "", now, 2, "approved", nil, nil, nil, now, now).
			AddRow("a2", "s1", nil, "Food bank", "", now.AddDate(0, 0, -3), 3, "pending", nil, nil, nil, now, now))

	activities, err := repo.ListByScholar(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, models.ActivityStatusApproved, activities[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepositoryListByScholarIDs(t *testing.T) {
	db, mock, cleanup := newActivityMock(t)
	defer cleanup()
	repo := NewActivityRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT .+ FROM activities a WHERE a.scholar_id IN").
		WithArgs("s1", "s2").
		WillReturnRows(activityRows().
			AddRow("a1", "s1", nil, "Tutoring", "", now, 2, "approved", nil, nil, nil, now, now).
			AddRow("a2", "s2", nil, "Cleanup", "", now, 5, "pending", nil, nil, nil, now, now).
			AddRow("a3", "s1", nil, "Mentoring", "", now, 1, "rejected", nil, nil, nil, now, now))

	byScholar, err := repo.ListByScholarIDs(context.Background(), []string{"s1", "s2"})
	require.NoError(t, err)
	assert.Len(t, byScholar["s1"], 2)
	assert.Len(t, byScholar["s2"], 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepositoryListByScholarIDsEmpty(t *testing.T) {
	db, _, cleanup := newActivityMock(t)
	defer cleanup()
	repo := NewActivityRepository(db)

	byScholar, err := repo.ListByScholarIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, byScholar)
}

func TestActivityRepositorySetStatus(t *testing.T) {
	db, mock, cleanup := newActivityMock(t)
	defer cleanup()
	repo := NewActivityRepository(db)

	reviewedAt := time.Now().UTC()
	comment := "verified with host organisation"
	mock.ExpectExec("UPDATE activities SET status = .+ WHERE id = .+ AND status = .+").
		WithArgs("a1", models.ActivityStatusApproved, "admin1", &comment, reviewedAt, models.ActivityStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.SetStatus(context.Background(), "a1", models.ActivityStatusApproved, "admin1", &comment, reviewedAt)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepositorySetStatusAlreadyReviewed(t *testing.T) {
	db, mock, cleanup := newActivityMock(t)
	defer cleanup()
	repo := NewActivityRepository(db)

	reviewedAt := time.Now().UTC()
	mock.ExpectExec("UPDATE activities SET status = .+ WHERE id = .+ AND status = .+").
		WithArgs("a1", models.ActivityStatusRejected, "admin1", nil, reviewedAt, models.ActivityStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.SetStatus(context.Background(), "a1", models.ActivityStatusRejected, "admin1", nil, reviewedAt)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepositoryListInWindow(t *testing.T) {
	db, mock, cleanup := newActivityMock(t)
	defer cleanup()
	repo := NewActivityRepository(db)

	loc := time.FixedZone("UTC-5", -5*3600)
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, loc)
	end := time.Date(2024, time.July, 1, 0, 0, 0, 0, loc)
	mock.ExpectQuery("SELECT .+ FROM activities a WHERE a.activity_date >= .+ AND a.activity_date < .+").
		WithArgs("2024-06-01", "2024-07-01").
		WillReturnRows(activityRows().
			AddRow("a1", "s1", nil, "Tutoring", "", start, 2, "approved", nil, nil, nil, start, start))

	activities, err := repo.ListInWindow(context.Background(), start, end)
	require.NoError(t, err)
	assert.Len(t, activities, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
