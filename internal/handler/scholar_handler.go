package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholar-hours-api/internal/dto"
	"github.com/noah-isme/scholar-hours-api/internal/service"
	appErrors "github.com/noah-isme/scholar-hours-api/pkg/errors"
	"github.com/noah-isme/scholar-hours-api/pkg/response"
)

// ScholarHandler exposes scholar roster endpoints.
type ScholarHandler struct {
	scholars *service.ScholarService
}

// NewScholarHandler constructs ScholarHandler.
func NewScholarHandler(scholars *service.ScholarService) *ScholarHandler {
	return &ScholarHandler{scholars: scholars}
}

// List godoc
// @Summary List scholars with stats
// @Tags Scholars
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /scholars [get]
func (h *ScholarHandler) List(c *gin.Context) {
	scholars, err := h.scholars.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, scholars, nil)
}

// Get godoc
// @Summary Get scholar detail
// @Tags Scholars
// @Produce json
// @Param id path string true "Scholar ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /scholars/{id} [get]
func (h *ScholarHandler) Get(c *gin.Context) {
	scholar, err := h.scholars.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, scholar, nil)
}

// Stats godoc
// @Summary Get scholar activity stats
// @Tags Scholars
// @Produce json
// @Param id path string true "Scholar ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /scholars/{id}/stats [get]
func (h *ScholarHandler) Stats(c *gin.Context) {
	stats, err := h.scholars.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// Create godoc
// @Summary Enrol scholar
// @Tags Scholars
// @Accept json
// @Produce json
// @Param payload body dto.CreateScholarRequest true "Scholar payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /scholars [post]
func (h *ScholarHandler) Create(c *gin.Context) {
	var req dto.CreateScholarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	scholar, err := h.scholars.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, scholar)
}

// Update godoc
// @Summary Update scholar
// @Tags Scholars
// @Accept json
// @Produce json
// @Param id path string true "Scholar ID"
// @Param payload body dto.UpdateScholarRequest true "Scholar payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /scholars/{id} [put]
func (h *ScholarHandler) Update(c *gin.Context) {
	var req dto.UpdateScholarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	scholar, err := h.scholars.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, scholar, nil)
}

// Profile godoc
// @Summary Current scholar profile
// @Tags Scholar Portal
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /scholar/profile [get]
func (h *ScholarHandler) Profile(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	scholar, err := h.scholars.GetByUserID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, scholar, nil)
}

// MyStats godoc
// @Summary Current scholar activity stats
// @Tags Scholar Portal
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /scholar/stats [get]
func (h *ScholarHandler) MyStats(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	stats, err := h.scholars.StatsByUserID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}
