package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/scholar-hours-api/internal/dto"
	"github.com/noah-isme/scholar-hours-api/internal/models"
	appErrors "github.com/noah-isme/scholar-hours-api/pkg/errors"
	"github.com/noah-isme/scholar-hours-api/pkg/export"
)

// ReportFormat identifies a monthly report export encoding.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
	ReportFormatPDF ReportFormat = "pdf"
)

type reportScholarStore interface {
	ListWithUsers(ctx context.Context) ([]models.ScholarWithUser, error)
}

type reportActivityStore interface {
	ListByScholarIDs(ctx context.Context, scholarIDs []string) (map[string][]models.Activity, error)
}

// ReportExport bundles a rendered monthly report document.
type ReportExport struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportService builds the monthly compliance report and its exports.
type ReportService struct {
	scholars   reportScholarStore
	activities reportActivityStore
	cache      *CacheService
	metrics    *MetricsService
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	logger     *zap.Logger
	loc        *time.Location
	cacheTTL   time.Duration
}

// NewReportService constructs the report service. loc anchors month window
// boundaries; cache and metrics may be nil.
func NewReportService(scholars reportScholarStore, activities reportActivityStore, cache *CacheService, metrics *MetricsService, logger *zap.Logger, loc *time.Location, cacheTTL time.Duration) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &ReportService{
		scholars:   scholars,
		activities: activities,
		cache:      cache,
		metrics:    metrics,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		logger:     logger,
		loc:        loc,
		cacheTTL:   cacheTTL,
	}
}

// Monthly produces one compliance row per enrolled scholar for the target
// month. Rows are ordered by the roster's stable ordering; any store failure
// fails the whole report rather than returning a partial one.
func (s *ReportService) Monthly(ctx context.Context, year, month int) ([]dto.MonthlyReportRow, error) {
	if err := validateReportMonth(year, month); err != nil {
		return nil, err
	}

	key := fmt.Sprintf(monthlyReportCacheFmt, year, month)
	if s.cache != nil {
		var cached []dto.MonthlyReportRow
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			s.metrics.RecordReportGeneration("cache")
			return cached, nil
		}
	}

	scholars, err := s.scholars.ListWithUsers(ctx)
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

	rows, err := BuildMonthlyReport(year, month, s.loc, scholars, byScholar)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, rows, s.cacheTTL)
	}
	s.metrics.RecordReportGeneration("fresh")
	s.logger.Info("monthly report generated",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("scholars", len(rows)))
	return rows, nil
}

// Export renders the monthly report as a downloadable CSV or PDF document.
func (s *ReportService) Export(ctx context.Context, year, month int, format ReportFormat) (*ReportExport, error) {
	if format != ReportFormatCSV && format != ReportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	rows, err := s.Monthly(ctx, year, month)
	if err != nil {
		return nil, err
	}

	data := reportDataset(rows)
	period := fmt.Sprintf("%04d-%02d", year, month)

	switch format {
	case ReportFormatCSV:
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv report")
		}
		return &ReportExport{
			Filename:    fmt.Sprintf("monthly-report-%s.csv", period),
			ContentType: "text/csv",
			Content:     content,
		}, nil
	default:
		compliant := 0
		for _, row := range rows {
			if row.IsCompliant {
				compliant++
			}
		}
		summary := fmt.Sprintf("%d of %d scholars compliant", compliant, len(rows))
		content, err := s.pdf.Render(data, fmt.Sprintf("Monthly Compliance Report %s", period), summary)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf report")
		}
		return &ReportExport{
			Filename:    fmt.Sprintf("monthly-report-%s.pdf", period),
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	}
}

func reportDataset(rows []dto.MonthlyReportRow) export.Dataset {
	data := export.Dataset{
		Headers: []string{"Scholar ID", "Name", "Level", "Required Hours", "Completed Hours", "Pending Hours", "Approved", "Pending", "Rejected", "Compliant"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		compliant := "NO"
		if row.IsCompliant {
			compliant = "YES"
		}
		data.Rows = append(data.Rows, []string{
			row.ScholarCode,
			row.ScholarName,
			row.ScholarLevel,
			strconv.Itoa(row.RequiredHours),
			strconv.Itoa(row.CompletedHours),
			strconv.Itoa(row.PendingHours),
			strconv.Itoa(row.ApprovedActivities),
			strconv.Itoa(row.PendingActivities),
			strconv.Itoa(row.RejectedActivities),
			compliant,
		})
	}
	return data
}
