package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/scholar-hours-api/internal/dto"
	"github.com/noah-isme/scholar-hours-api/internal/models"
	appErrors "github.com/noah-isme/scholar-hours-api/pkg/errors"
)

type activityStore interface {
	Create(ctx context.Context, activity *models.Activity) error
	FindByID(ctx context.Context, id string) (*models.Activity, error)
	ListByScholar(ctx context.Context, scholarID string) ([]models.Activity, error)
	ListRecentByScholar(ctx context.Context, scholarID string, limit int) ([]models.Activity, error)
	ListWithDetails(ctx context.Context, limit int) ([]models.ActivityDetail, error)
	SetStatus(ctx context.Context, id string, status models.ActivityStatus, reviewerID string, comment *string, reviewedAt time.Time) (bool, error)
}

type scholarResolver interface {
	FindByID(ctx context.Context, id string) (*models.ScholarWithUser, error)
	FindByUserID(ctx context.Context, userID string) (*models.ScholarWithUser, error)
}

type cacheInvalidator interface {
	InvalidateAggregates(ctx context.Context)
}

// ActivityService handles activity submission and the review workflow.
type ActivityService struct {
	repo      activityStore
	scholars  scholarResolver
	cache     cacheInvalidator
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewActivityService constructs the activity service.
func NewActivityService(repo activityStore, scholars scholarResolver, cache cacheInvalidator, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ActivityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{
		repo:      repo,
		scholars:  scholars,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create logs a new activity for the scholar owned by userID. New activities
// always start pending regardless of payload.
func (s *ActivityService) Create(ctx context.Context, userID string, req dto.CreateActivityRequest) (*models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid activity payload")
	}
	activityDate, err := time.ParseInLocation("2006-01-02", req.ActivityDate, time.UTC)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "activityDate must use the YYYY-MM-DD format")
	}
	scholar, err := s.scholars.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "scholar profile not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scholar")
	}
	if !scholar.IsActive {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "scholar account is inactive")
	}

	activity := &models.Activity{
		ScholarID:    scholar.ID,
		CategoryID:   req.CategoryID,
		Title:        req.Title,
		Description:  req.Description,
		ActivityDate: activityDate,
		Hours:        req.Hours,
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create activity")
	}

	s.invalidate(ctx)
	s.logger.Info("activity submitted",
		zap.String("activity_id", activity.ID),
		zap.String("scholar_id", scholar.ID),
		zap.Int("hours", activity.Hours))
	return activity, nil
}

// ListForUser returns the full activity history for the scholar owned by
// userID, newest activity date first.
func (s *ActivityService) ListForUser(ctx context.Context, userID string) ([]models.Activity, error) {
	scholar, err := s.resolveScholar(ctx, userID)
	if err != nil {
		return nil, err
	}
	activities, err := s.repo.ListByScholar(ctx, scholar.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list activities")
	}
	return activities, nil
}

// ListRecentForUser returns the scholar's most recently submitted activities.
func (s *ActivityService) ListRecentForUser(ctx context.Context, userID string, limit int) ([]models.Activity, error) {
	if limit <= 0 || limit > 50 {
		limit = 5
	}
	scholar, err := s.resolveScholar(ctx, userID)
	if err != nil {
		return nil, err
	}
	activities, err := s.repo.ListRecentByScholar(ctx, scholar.ID, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list recent activities")
	}
	return activities, nil
}

// ListDetails returns the admin review queue with scholar, category, and
// reviewer display data joined in.
func (s *ActivityService) ListDetails(ctx context.Context, limit int) ([]models.ActivityDetail, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	details, err := s.repo.ListWithDetails(ctx, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list activity details")
	}
	return details, nil
}

// Review settles a pending activity as approved or rejected. Reviewer
// identity, comment, and timestamp are written in the same statement that
// flips the status, and the statement only matches pending rows, so a
// concurrent double review loses cleanly.
func (s *ActivityService) Review(ctx context.Context, id string, status models.ActivityStatus, reviewerID string, req dto.ReviewActivityRequest) (*models.Activity, error) {
	if status != models.ActivityStatusApproved && status != models.ActivityStatusRejected {
		return nil, appErrors.Clone(appErrors.ErrValidation, "review status must be approved or rejected")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid review payload")
	}

	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "activity not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load activity")
	}
	if activity.Status != models.ActivityStatusPending {
		return nil, appErrors.ErrAlreadyReviewed
	}

	var comment *string
	if req.Comment != "" {
		comment = &req.Comment
	}
	reviewedAt := s.now()
	updated, err := s.repo.SetStatus(ctx, id, status, reviewerID, comment, reviewedAt)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to review activity")
	}
	if !updated {
		return nil, appErrors.ErrAlreadyReviewed
	}

	activity.Status = status
	activity.ReviewedBy = &reviewerID
	activity.ReviewComment = comment
	activity.ReviewedAt = &reviewedAt

	s.invalidate(ctx)
	s.metrics.RecordReview(string(status))
	s.logger.Info("activity reviewed",
		zap.String("activity_id", id),
		zap.String("status", string(status)),
		zap.String("reviewer_id", reviewerID))
	return activity, nil
}

func (s *ActivityService) resolveScholar(ctx context.Context, userID string) (*models.ScholarWithUser, error) {
	scholar, err := s.scholars.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "scholar profile not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scholar")
	}
	return scholar, nil
}

func (s *ActivityService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.InvalidateAggregates(ctx)
	}
}
