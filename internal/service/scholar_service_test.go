package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/scholar-hours-api/internal/dto"
	"github.com/noah-isme/scholar-hours-api/internal/models"
	appErrors "github.com/noah-isme/scholar-hours-api/pkg/errors"
)

type mockScholarStore struct {
	scholars map[string]models.ScholarWithUser
	codes    map[string]string
	updated  []models.Scholar
}

func (m *mockScholarStore) ListWithUsers(ctx context.Context) ([]models.ScholarWithUser, error) {
	out := make([]models.ScholarWithUser, 0, len(m.scholars))
	for _, s := range m.scholars {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockScholarStore) FindByID(ctx context.Context, id string) (*models.ScholarWithUser, error) {
	if s, ok := m.scholars[id]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockScholarStore) FindByUserID(ctx context.Context, userID string) (*models.ScholarWithUser, error) {
	for _, s := range m.scholars {
		if s.UserID == userID {
			return &s, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockScholarStore) ExistsByCode(ctx context.Context, code string, excludeID string) (bool, error) {
	if id, ok := m.codes[code]; ok {
		if excludeID == "" || id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockScholarStore) Create(ctx context.Context, scholar *models.Scholar) error {
	if m.scholars == nil {
		m.scholars = make(map[string]models.ScholarWithUser)
	}
	if scholar.ID == "" {
		scholar.ID = "generated"
	}
	m.scholars[scholar.ID] = models.ScholarWithUser{Scholar: *scholar}
	return nil
}

func (m *mockScholarStore) Update(ctx context.Context, scholar *models.Scholar) error {
	m.updated = append(m.updated, *scholar)
	if s, ok := m.scholars[scholar.ID]; ok {
		s.Scholar = *scholar
		m.scholars[scholar.ID] = s
	}
	return nil
}

type mockUserStore struct {
	byEmail map[string]models.User
	created []models.User
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return &u, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = "user-generated"
	}
	m.created = append(m.created, *user)
	return nil
}

type mockScholarActivities struct {
	byScholar map[string][]models.Activity
}

func (m *mockScholarActivities) ListByScholar(ctx context.Context, scholarID string) ([]models.Activity, error) {
	return m.byScholar[scholarID], nil
}

func (m *mockScholarActivities) ListByScholarIDs(ctx context.Context, scholarIDs []string) (map[string][]models.Activity, error) {
	return m.byScholar, nil
}

func newScholarService(repo *mockScholarStore, users *mockUserStore, activities *mockScholarActivities) *ScholarService {
	return NewScholarService(repo, users, activities, nil, validator.New(), zap.NewNop(), 20, time.UTC)
}

func TestScholarServiceCreate(t *testing.T) {
	repo := &mockScholarStore{codes: map[string]string{}}
	users := &mockUserStore{}
	svc := newScholarService(repo, users, &mockScholarActivities{})

	scholar, err := svc.Create(context.Background(), dto.CreateScholarRequest{
		Email:                 "ana@example.com",
		Password:              "supersecret",
		FirstName:             "Ana",
		LastName:              "Lima",
		ScholarCode:           "SCH-001",
		Level:                 "undergraduate",
		RequiredHoursPerMonth: 15,
	})
	require.NoError(t, err)
	assert.True(t, scholar.IsActive)
	assert.Equal(t, 15, scholar.RequiredHoursPerMonth)

	require.Len(t, users.created, 1)
	user := users.created[0]
	assert.Equal(t, models.RoleScholar, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
}

func TestScholarServiceCreateDefaultsRequiredHours(t *testing.T) {
	svc := newScholarService(&mockScholarStore{codes: map[string]string{}}, &mockUserStore{}, &mockScholarActivities{})

	scholar, err := svc.Create(context.Background(), dto.CreateScholarRequest{
		Email:       "ana@example.com",
		Password:    "supersecret",
		FirstName:   "Ana",
		ScholarCode: "SCH-001",
		Level:       "undergraduate",
	})
	require.NoError(t, err)
	assert.Equal(t, 20, scholar.RequiredHoursPerMonth)
}

func TestScholarServiceCreateDuplicateCode(t *testing.T) {
	repo := &mockScholarStore{codes: map[string]string{"SCH-001": "other"}}
	svc := newScholarService(repo, &mockUserStore{}, &mockScholarActivities{})

	_, err := svc.Create(context.Background(), dto.CreateScholarRequest{
		Email:       "ana@example.com",
		Password:    "supersecret",
		FirstName:   "Ana",
		ScholarCode: "SCH-001",
		Level:       "undergraduate",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Status, appErrors.FromError(err).Status)
}

func TestScholarServiceCreateDuplicateEmail(t *testing.T) {
	users := &mockUserStore{byEmail: map[string]models.User{
		"ana@example.com": {ID: "u1", Email: "ana@example.com"},
	}}
	svc := newScholarService(&mockScholarStore{codes: map[string]string{}}, users, &mockScholarActivities{})

	_, err := svc.Create(context.Background(), dto.CreateScholarRequest{
		Email:       "ana@example.com",
		Password:    "supersecret",
		FirstName:   "Ana",
		ScholarCode: "SCH-001",
		Level:       "undergraduate",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Status, appErrors.FromError(err).Status)
}

func TestScholarServiceUpdateDeactivates(t *testing.T) {
	repo := &mockScholarStore{scholars: map[string]models.ScholarWithUser{
		"s1": {Scholar: models.Scholar{ID: "s1", ScholarCode: "SCH-001", Level: "undergraduate", RequiredHoursPerMonth: 20, IsActive: true}},
	}}
	svc := newScholarService(repo, &mockUserStore{}, &mockScholarActivities{})

	inactive := false
	scholar, err := svc.Update(context.Background(), "s1", dto.UpdateScholarRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, scholar.IsActive)
	assert.Equal(t, 20, scholar.RequiredHoursPerMonth, "untouched fields keep their values")
}

func TestScholarServiceWritesInvalidateAggregates(t *testing.T) {
	repo := &mockScholarStore{
		codes: map[string]string{},
		scholars: map[string]models.ScholarWithUser{
			"s1": {Scholar: models.Scholar{ID: "s1", ScholarCode: "SCH-001", Level: "undergraduate", RequiredHoursPerMonth: 20, IsActive: true}},
		},
	}
	cacheSpy := &mockInvalidator{}
	svc := NewScholarService(repo, &mockUserStore{}, &mockScholarActivities{}, cacheSpy, validator.New(), zap.NewNop(), 20, time.UTC)

	_, err := svc.Create(context.Background(), dto.CreateScholarRequest{
		Email:       "ana@example.com",
		Password:    "supersecret",
		FirstName:   "Ana",
		ScholarCode: "SCH-002",
		Level:       "undergraduate",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cacheSpy.calls, "creating a scholar changes report membership")

	hours := 10
	_, err = svc.Update(context.Background(), "s1", dto.UpdateScholarRequest{RequiredHoursPerMonth: &hours})
	require.NoError(t, err)
	assert.Equal(t, 2, cacheSpy.calls, "changing the monthly threshold must not serve stale compliance")
}

func TestScholarServiceUpdateNotFound(t *testing.T) {
	svc := newScholarService(&mockScholarStore{}, &mockUserStore{}, &mockScholarActivities{})

	_, err := svc.Update(context.Background(), "missing", dto.UpdateScholarRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestScholarServiceStats(t *testing.T) {
	repo := &mockScholarStore{scholars: map[string]models.ScholarWithUser{
		"s1": {Scholar: models.Scholar{ID: "s1", UserID: "u1", IsActive: true}},
	}}
	now := time.Now().UTC()
	activities := &mockScholarActivities{byScholar: map[string][]models.Activity{
		"s1": {
			{ScholarID: "s1", ActivityDate: now, Hours: 5, Status: models.ActivityStatusApproved},
			{ScholarID: "s1", ActivityDate: now.AddDate(0, -2, 0), Hours: 3, Status: models.ActivityStatusApproved},
			{ScholarID: "s1", ActivityDate: now, Hours: 2, Status: models.ActivityStatusPending},
		},
	}}
	svc := newScholarService(repo, &mockUserStore{}, activities)

	stats, err := svc.Stats(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 8, stats.TotalHours)
	assert.Equal(t, 5, stats.CurrentMonthHours)
	assert.Equal(t, 1, stats.PendingActivities)

	_, err = svc.Stats(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestScholarServiceListAttachesStats(t *testing.T) {
	repo := &mockScholarStore{scholars: map[string]models.ScholarWithUser{
		"s1": {Scholar: models.Scholar{ID: "s1", ScholarCode: "SCH-001", IsActive: true}},
	}}
	now := time.Now().UTC()
	activities := &mockScholarActivities{byScholar: map[string][]models.Activity{
		"s1": {{ScholarID: "s1", ActivityDate: now, Hours: 7, Status: models.ActivityStatusApproved}},
	}}
	svc := newScholarService(repo, &mockUserStore{}, activities)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 7, list[0].Stats.TotalHours)
	assert.Equal(t, "s1", list[0].Stats.ScholarID)
}
