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

func newScholarMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func scholarRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "scholar_code", "level", "required_hours_per_month", "is_active", "created_at", "updated_at", "user_email", "user_first_name", "user_last_name"})
}

func TestScholarRepositoryListWithUsers(t *testing.T) {
	db, mock, cleanup := newScholarMock(t)
	defer cleanup()
	repo := NewScholarRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery("FROM scholars s JOIN users u ON u.id = s.user_id ORDER BY u.first_name, u.last_name, s.scholar_code").
		WillReturnRows(scholarRows().
			AddRow("s1", "u1", "SCH-001", "undergraduate", 20, true, now, now, "ana@example.com", "Ana", "Lima").
			AddRow("s2", "u2", "SCH-002", "graduate", 10, false, now, now, "bruno@example.com", "Bruno", "Reis"))

	scholars, err := repo.ListWithUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, scholars, 2)
	assert.Equal(t, "Ana Lima", scholars[0].DisplayName())
	assert.Equal(t, 20, scholars[0].RequiredHoursPerMonth)
	assert.False(t, scholars[1].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScholarRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newScholarMock(t)
	defer cleanup()
	repo := NewScholarRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery("FROM scholars s JOIN users u ON u.id = s.user_id WHERE s.id = .+").
		WithArgs("s1").
		WillReturnRows(scholarRows().
			AddRow("s1", "u1", "SCH-001", "undergraduate", 20, true, now, now, "ana@example.com", "Ana", "Lima"))

	scholar, err := repo.FindByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "SCH-001", scholar.ScholarCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScholarRepositoryExistsByCode(t *testing.T) {
	db, mock, cleanup := newScholarMock(t)
	defer cleanup()
	repo := NewScholarRepository(db)

	mock.ExpectQuery("SELECT 1 FROM scholars WHERE scholar_code = .+ LIMIT 1").
		WithArgs("SCH-001").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM scholars WHERE scholar_code = .+ LIMIT 1").
		WithArgs("SCH-999").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	exists, err := repo.ExistsByCode(context.Background(), "SCH-001", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCode(context.Background(), "SCH-999", "")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScholarRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newScholarMock(t)
	defer cleanup()
	repo := NewScholarRepository(db)

	mock.ExpectExec("INSERT INTO scholars").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	scholar := &models.Scholar{UserID: "u1", ScholarCode: "SCH-001", Level: "undergraduate", RequiredHoursPerMonth: 20, IsActive: true}
	err := repo.Create(context.Background(), scholar)
	require.NoError(t, err)
	assert.NotEmpty(t, scholar.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScholarRepositoryCount(t *testing.T) {
	db, mock, cleanup := newScholarMock(t)
	defer cleanup()
	repo := NewScholarRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM scholars`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
