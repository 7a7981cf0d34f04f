package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholar-hours-api/internal/dto"
	"github.com/noah-isme/scholar-hours-api/internal/service"
	appErrors "github.com/noah-isme/scholar-hours-api/pkg/errors"
	"github.com/noah-isme/scholar-hours-api/pkg/response"
)

// CategoryHandler exposes activity category endpoints.
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler constructs CategoryHandler.
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List godoc
// @Summary List activity categories
// @Tags Categories
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, categories, nil)
}

// Create godoc
// @Summary Create activity category
// @Tags Categories
// @Accept json
// @Produce json
// @Param payload body dto.CreateCategoryRequest true "Category payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	category, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, category)
}
