package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/scholar-hours-api/internal/dto"
	"github.com/noah-isme/scholar-hours-api/internal/models"
	appErrors "github.com/noah-isme/scholar-hours-api/pkg/errors"
)

type categoryStore interface {
	ListAll(ctx context.Context) ([]models.ActivityCategory, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, category *models.ActivityCategory) error
}

// CategoryService manages the activity category reference data.
type CategoryService struct {
	repo      categoryStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCategoryService constructs the category service.
func NewCategoryService(repo categoryStore, validate *validator.Validate, logger *zap.Logger) *CategoryService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryService{repo: repo, validator: validate, logger: logger}
}

// List returns all categories ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]models.ActivityCategory, error) {
	categories, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list categories")
	}
	return categories, nil
}

// Create adds a new category, rejecting duplicate names.
func (s *CategoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*models.ActivityCategory, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid category payload")
	}
	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate category name")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "category name already used")
	}

	category := &models.ActivityCategory{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create category")
	}
	return category, nil
}
