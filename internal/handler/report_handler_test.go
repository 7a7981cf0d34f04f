package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholar-hours-api/internal/models"
	"github.com/noah-isme/scholar-hours-api/internal/service"
	"github.com/noah-isme/scholar-hours-api/pkg/response"
)

type reportScholarsMock struct {
	scholars []models.ScholarWithUser
	calls    int
}

func (m *reportScholarsMock) ListWithUsers(ctx context.Context) ([]models.ScholarWithUser, error) {
	m.calls++
	return m.scholars, nil
}

type reportActivitiesMock struct {
	byScholar map[string][]models.Activity
}

func (m *reportActivitiesMock) ListByScholarIDs(ctx context.Context, scholarIDs []string) (map[string][]models.Activity, error) {
	return m.byScholar, nil
}

func newGinContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func newReportHandler(scholars *reportScholarsMock) *ReportHandler {
	svc := service.NewReportService(scholars, &reportActivitiesMock{}, nil, nil, nil, time.UTC, 0)
	return NewReportHandler(svc)
}

func TestReportHandlerMonthly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	scholars := &reportScholarsMock{scholars: []models.ScholarWithUser{{
		Scholar: models.Scholar{ID: "s1", ScholarCode: "SCH-001", RequiredHoursPerMonth: 20},
		UserFirstName: "Ana", UserLastName: "Lima",
	}}}
	handler := newReportHandler(scholars)

	c, w := newGinContext(http.MethodGet, "/reports/monthly?month=2024-06", nil)
	handler.Monthly(c)

	require.Equal(t, http.StatusOK, w.Code)
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Nil(t, env.Error)
	assert.NotNil(t, env.Data)
}

func TestReportHandlerMonthlyMissingMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	scholars := &reportScholarsMock{}
	handler := newReportHandler(scholars)

	c, w := newGinContext(http.MethodGet, "/reports/monthly", nil)
	handler.Monthly(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, scholars.calls)
}

func TestReportHandlerMonthlyBadFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	scholars := &reportScholarsMock{}
	handler := newReportHandler(scholars)

	for _, raw := range []string{"2024-13", "June 2024", "202406", "2024-6"} {
		c, w := newGinContext(http.MethodGet, "/reports/monthly?month="+raw, nil)
		handler.Monthly(c)
		require.Equal(t, http.StatusBadRequest, w.Code, "month=%s", raw)
	}
	assert.Zero(t, scholars.calls)
}

func TestReportHandlerExportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	scholars := &reportScholarsMock{scholars: []models.ScholarWithUser{{
		Scholar: models.Scholar{ID: "s1", ScholarCode: "SCH-001", RequiredHoursPerMonth: 20},
		UserFirstName: "Ana", UserLastName: "Lima",
	}}}
	handler := newReportHandler(scholars)

	c, w := newGinContext(http.MethodGet, "/reports/monthly/export?month=2024-06&format=csv", nil)
	handler.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "monthly-report-2024-06.csv")
	assert.Contains(t, w.Body.String(), "SCH-001")
}

func TestReportHandlerExportUnknownFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newReportHandler(&reportScholarsMock{})

	c, w := newGinContext(http.MethodGet, "/reports/monthly/export?month=2024-06&format=xlsx", nil)
	handler.Export(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
