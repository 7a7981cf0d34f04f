package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/scholar-hours-api/internal/models"
	appErrors "github.com/noah-isme/scholar-hours-api/pkg/errors"
)

type mockReportScholars struct {
	scholars []models.ScholarWithUser
	err      error
	calls    int
}

func (m *mockReportScholars) ListWithUsers(ctx context.Context) ([]models.ScholarWithUser, error) {
	m.calls++
	return m.scholars, m.err
}

type mockReportActivities struct {
	byScholar map[string][]models.Activity
	err       error
}

func (m *mockReportActivities) ListByScholarIDs(ctx context.Context, scholarIDs []string) (map[string][]models.Activity, error) {
	return m.byScholar, m.err
}

func TestReportServiceMonthly(t *testing.T) {
	scholars := &mockReportScholars{scholars: []models.ScholarWithUser{
		scholarWithUser("s1", "SCH-001", "Ana", "Lima", 10),
		scholarWithUser("s2", "SCH-002", "Bruno", "Reis", 20),
	}}
	activities := &mockReportActivities{byScholar: map[string][]models.Activity{
		"s1": {activity("s1", date(2024, time.June, 5), 12, models.ActivityStatusApproved)},
		"s2": {activity("s2", date(2024, time.June, 5), 12, models.ActivityStatusApproved)},
	}}
	svc := NewReportService(scholars, activities, nil, nil, zap.NewNop(), time.UTC, time.Minute)

	rows, err := svc.Monthly(context.Background(), 2024, 6)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].IsCompliant)
	assert.False(t, rows[1].IsCompliant)
}

func TestReportServiceMonthlyInvalidMonth(t *testing.T) {
	scholars := &mockReportScholars{}
	svc := NewReportService(scholars, &mockReportActivities{}, nil, nil, zap.NewNop(), time.UTC, time.Minute)

	_, err := svc.Monthly(context.Background(), 2024, 13)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
	assert.Zero(t, scholars.calls, "validation must reject before any store access")
}

func TestReportServiceMonthlyStoreFailure(t *testing.T) {
	scholars := &mockReportScholars{err: errors.New("connection reset")}
	svc := NewReportService(scholars, &mockReportActivities{}, nil, nil, zap.NewNop(), time.UTC, time.Minute)

	rows, err := svc.Monthly(context.Background(), 2024, 6)
	require.Error(t, err)
	assert.Nil(t, rows)
}

func TestReportServiceExportCSV(t *testing.T) {
	scholars := &mockReportScholars{scholars: []models.ScholarWithUser{
		scholarWithUser("s1", "SCH-001", "Ana", "Lima", 10),
	}}
	activities := &mockReportActivities{byScholar: map[string][]models.Activity{
		"s1": {activity("s1", date(2024, time.June, 5), 12, models.ActivityStatusApproved)},
	}}
	svc := NewReportService(scholars, activities, nil, nil, zap.NewNop(), time.UTC, time.Minute)

	doc, err := svc.Export(context.Background(), 2024, 6, ReportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "monthly-report-2024-06.csv", doc.Filename)
	assert.Equal(t, "text/csv", doc.ContentType)
	content := string(doc.Content)
	assert.True(t, strings.Contains(content, "SCH-001"))
	assert.True(t, strings.Contains(content, "Ana Lima"))
	assert.True(t, strings.Contains(content, "YES"))
}

func TestReportServiceExportPDF(t *testing.T) {
	scholars := &mockReportScholars{scholars: []models.ScholarWithUser{
		scholarWithUser("s1", "SCH-001", "Ana", "Lima", 10),
	}}
	svc := NewReportService(scholars, &mockReportActivities{}, nil, nil, zap.NewNop(), time.UTC, time.Minute)

	doc, err := svc.Export(context.Background(), 2024, 6, ReportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "monthly-report-2024-06.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.NotEmpty(t, doc.Content)
}

func TestReportServiceExportUnknownFormat(t *testing.T) {
	svc := NewReportService(&mockReportScholars{}, &mockReportActivities{}, nil, nil, zap.NewNop(), time.UTC, time.Minute)

	_, err := svc.Export(context.Background(), 2024, 6, ReportFormat("xlsx"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}
