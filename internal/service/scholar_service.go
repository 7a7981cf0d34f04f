package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/scholar-hours-api/internal/dto"
	"github.com/noah-isme/scholar-hours-api/internal/models"
	appErrors "github.com/noah-isme/scholar-hours-api/pkg/errors"
)

type scholarStore interface {
	ListWithUsers(ctx context.Context) ([]models.ScholarWithUser, error)
	FindByID(ctx context.Context, id string) (*models.ScholarWithUser, error)
	FindByUserID(ctx context.Context, userID string) (*models.ScholarWithUser, error)
	ExistsByCode(ctx context.Context, code string, excludeID string) (bool, error)
	Create(ctx context.Context, scholar *models.Scholar) error
	Update(ctx context.Context, scholar *models.Scholar) error
}

type scholarUserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type scholarActivityStore interface {
	ListByScholar(ctx context.Context, scholarID string) ([]models.Activity, error)
	ListByScholarIDs(ctx context.Context, scholarIDs []string) (map[string][]models.Activity, error)
}

// ScholarService manages scholar enrolment, lifecycle, and per-scholar stats.
type ScholarService struct {
	repo         scholarStore
	users        scholarUserStore
	activities   scholarActivityStore
	cache        cacheInvalidator
	validator    *validator.Validate
	logger       *zap.Logger
	defaultHours int
	loc          *time.Location
	now          func() time.Time
}

// NewScholarService constructs the scholar service. defaultHours seeds
// RequiredHoursPerMonth when a create request omits it; loc anchors the
// current-month window used for stats.
func NewScholarService(repo scholarStore, users scholarUserStore, activities scholarActivityStore, cache cacheInvalidator, validate *validator.Validate, logger *zap.Logger, defaultHours int, loc *time.Location) *ScholarService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultHours <= 0 {
		defaultHours = 20
	}
	if loc == nil {
		loc = time.UTC
	}
	return &ScholarService{
		repo:         repo,
		users:        users,
		activities:   activities,
		cache:        cache,
		validator:    validate,
		logger:       logger,
		defaultHours: defaultHours,
		loc:          loc,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// List returns the full roster with per-scholar stats attached. Activities
// for the whole roster are fetched in one round trip and bucketed in memory.
func (s *ScholarService) List(ctx context.Context) ([]dto.ScholarWithStats, error) {
	scholars, err := s.repo.ListWithUsers(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list scholars")
	}
	ids := make([]string, 0, len(scholars))
	for _, scholar := range scholars {
		ids = append(ids, scholar.ID)
	}
	byScholar, err := s.activities.ListByScholarIDs(ctx, ids)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scholar activities")
	}

	now := s.now().In(s.loc)
	result := make([]dto.ScholarWithStats, 0, len(scholars))
	for _, scholar := range scholars {
		result = append(result, dto.ScholarWithStats{
			ScholarWithUser: scholar,
			Stats:           ComputeScholarStats(scholar.ID, byScholar[scholar.ID], now),
		})
	}
	return result, nil
}

// Get returns one scholar by id.
func (s *ScholarService) Get(ctx context.Context, id string) (*models.ScholarWithUser, error) {
	scholar, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "scholar not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scholar")
	}
	return scholar, nil
}

// GetByUserID returns the scholar profile owned by a user account.
func (s *ScholarService) GetByUserID(ctx context.Context, userID string) (*models.ScholarWithUser, error) {
	scholar, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "scholar profile not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scholar")
	}
	return scholar, nil
}

// Stats computes the activity summary for one scholar by id.
func (s *ScholarService) Stats(ctx context.Context, id string) (*models.ScholarStats, error) {
	scholar, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.statsFor(ctx, scholar.ID)
}

// StatsByUserID computes the activity summary for the scholar owned by a
// user account.
func (s *ScholarService) StatsByUserID(ctx context.Context, userID string) (*models.ScholarStats, error) {
	scholar, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.statsFor(ctx, scholar.ID)
}

func (s *ScholarService) statsFor(ctx context.Context, scholarID string) (*models.ScholarStats, error) {
	activities, err := s.activities.ListByScholar(ctx, scholarID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scholar activities")
	}
	stats := ComputeScholarStats(scholarID, activities, s.now().In(s.loc))
	return &stats, nil
}

// Create enrols a scholar along with the owning user account.
func (s *ScholarService) Create(ctx context.Context, req dto.CreateScholarRequest) (*models.Scholar, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid scholar payload")
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "email already registered")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate email")
	}
	exists, err := s.repo.ExistsByCode(ctx, req.ScholarCode, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate scholar code")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "scholar code already used")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleScholar,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}

	requiredHours := req.RequiredHoursPerMonth
	if requiredHours <= 0 {
		requiredHours = s.defaultHours
	}
	scholar := &models.Scholar{
		UserID:                user.ID,
		ScholarCode:           req.ScholarCode,
		Level:                 req.Level,
		RequiredHoursPerMonth: requiredHours,
		IsActive:              true,
	}
	if err := s.repo.Create(ctx, scholar); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create scholar")
	}

	s.invalidate(ctx)
	s.logger.Info("scholar enrolled",
		zap.String("scholar_id", scholar.ID),
		zap.String("scholar_code", scholar.ScholarCode))
	return scholar, nil
}

// Update patches a scholar's mutable attributes. Setting IsActive false is a
// soft deactivation; history and past reports are unaffected.
func (s *ScholarService) Update(ctx context.Context, id string, req dto.UpdateScholarRequest) (*models.Scholar, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid scholar payload")
	}
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "scholar not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scholar")
	}

	scholar := detail.Scholar
	if req.Level != nil {
		scholar.Level = *req.Level
	}
	if req.RequiredHoursPerMonth != nil {
		scholar.RequiredHoursPerMonth = *req.RequiredHoursPerMonth
	}
	if req.IsActive != nil {
		scholar.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, &scholar); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update scholar")
	}

	s.invalidate(ctx)
	s.logger.Info("scholar updated", zap.String("scholar_id", scholar.ID), zap.Bool("is_active", scholar.IsActive))
	return &scholar, nil
}

// Roster writes change who appears in reports and what threshold applies, so
// cached aggregates are dropped the same way activity writes drop them.
func (s *ScholarService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.InvalidateAggregates(ctx)
	}
}
