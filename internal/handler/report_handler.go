package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholar-hours-api/internal/service"
	appErrors "github.com/noah-isme/scholar-hours-api/pkg/errors"
	"github.com/noah-isme/scholar-hours-api/pkg/response"
)

// ReportHandler exposes the monthly compliance report endpoints.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Monthly godoc
// @Summary Monthly compliance report
// @Tags Reports
// @Produce json
// @Param month query string true "Target month (YYYY-MM)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /reports/monthly [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	year, month, err := parseMonthParam(c.Query("month"))
	if err != nil {
		response.Error(c, err)
		return
	}
	rows, err := h.reports.Monthly(c.Request.Context(), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil)
}

// Export godoc
// @Summary Export monthly compliance report
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param month query string true "Target month (YYYY-MM)"
// @Param format query string true "Export format (csv or pdf)"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /reports/monthly/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	year, month, err := parseMonthParam(c.Query("month"))
	if err != nil {
		response.Error(c, err)
		return
	}
	format := service.ReportFormat(c.DefaultQuery("format", "csv"))
	doc, err := h.reports.Export(c.Request.Context(), year, month, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

// parseMonthParam accepts only the strict YYYY-MM wire format.
func parseMonthParam(raw string) (int, int, error) {
	if raw == "" {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, "month query parameter is required")
	}
	parsed, err := time.Parse("2006-01", raw)
	if err != nil {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, "month must use the YYYY-MM format")
	}
	return parsed.Year(), int(parsed.Month()), nil
}
