package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholar-hours-api/internal/dto"
	"github.com/noah-isme/scholar-hours-api/internal/models"
	"github.com/noah-isme/scholar-hours-api/internal/service"
	appErrors "github.com/noah-isme/scholar-hours-api/pkg/errors"
	"github.com/noah-isme/scholar-hours-api/pkg/response"
)

// ActivityHandler exposes activity submission and review endpoints.
type ActivityHandler struct {
	activities *service.ActivityService
}

// NewActivityHandler constructs ActivityHandler.
func NewActivityHandler(activities *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// Create godoc
// @Summary Submit activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param payload body dto.CreateActivityRequest true "Activity payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /activities [post]
func (h *ActivityHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	activity, err := h.activities.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, activity)
}

// ListMine godoc
// @Summary Current scholar activity history
// @Tags Scholar Portal
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /scholar/activities [get]
func (h *ActivityHandler) ListMine(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	activities, err := h.activities.ListForUser(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, activities, nil)
}

// ListMineRecent godoc
// @Summary Current scholar recent activities
// @Tags Scholar Portal
// @Produce json
// @Param limit query int false "Max rows"
// @Success 200 {object} response.Envelope
// @Router /scholar/activities/recent [get]
func (h *ActivityHandler) ListMineRecent(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	activities, err := h.activities.ListRecentForUser(c.Request.Context(), claims.UserID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, activities, nil)
}

// List godoc
// @Summary List activities for review
// @Tags Activities
// @Produce json
// @Param limit query int false "Max rows"
// @Success 200 {object} response.Envelope
// @Router /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	details, err := h.activities.ListDetails(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, details, nil)
}

// ListRecent godoc
// @Summary Most recently submitted activities
// @Tags Activities
// @Produce json
// @Param limit query int false "Max rows"
// @Success 200 {object} response.Envelope
// @Router /activities/recent [get]
func (h *ActivityHandler) ListRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	details, err := h.activities.ListDetails(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, details, nil)
}

// Approve godoc
// @Summary Approve pending activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param payload body dto.ReviewActivityRequest false "Review payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /activities/{id}/approve [post]
func (h *ActivityHandler) Approve(c *gin.Context) {
	h.review(c, models.ActivityStatusApproved)
}

// Reject godoc
// @Summary Reject pending activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param payload body dto.ReviewActivityRequest false "Review payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /activities/{id}/reject [post]
func (h *ActivityHandler) Reject(c *gin.Context) {
	h.review(c, models.ActivityStatusRejected)
}

func (h *ActivityHandler) review(c *gin.Context, status models.ActivityStatus) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.ReviewActivityRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
			return
		}
	}
	activity, err := h.activities.Review(c.Request.Context(), c.Param("id"), status, claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, activity, nil)
}
