package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bukutamu/internal/domain"
	"bukutamu/internal/repository"

	"go.uber.org/zap"
)

// ReportService builds password-protected exports.
type ReportService interface {
	Options() ReportOptions
	Export(ctx context.Context, req ExportReportRequest) (*domain.Report, error)
}

// ExportReportRequest is one export attempt from the report panel.
type ExportReportRequest struct {
	Password   string     `json:"password"`
	ReportType PeriodKind `json:"reportType"`
	Year       ReportYear `json:"year"`
}

// ReportYear is the annual picker value. The report panel sends it either as a
// number or as a numeric string; an empty string or null means the current year.
type ReportYear int

func (y *ReportYear) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*y = 0
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*y = 0
			return nil
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid report year %s: %w", string(b), err)
	}
	*y = ReportYear(n)
	return nil
}

// ReportOptions feeds the report type and year pickers.
type ReportOptions struct {
	Types []PeriodOption `json:"types"`
	Years []int          `json:"years"`
}

type reportService struct {
	guestsRepo repository.GuestsRepository
	verifier   ExportVerifier
	title      string
	firstYear  int
	now        func() time.Time
	logger     *zap.Logger
}

// ReportServiceDeps groups the collaborators of NewReportService.
type ReportServiceDeps struct {
	GuestsRepo repository.GuestsRepository
	Verifier   ExportVerifier
	Title      string
	FirstYear  int
	Now        func() time.Time
	Logger     *zap.Logger
}

func NewReportService(deps ReportServiceDeps) ReportService {
	s := &reportService{
		guestsRepo: deps.GuestsRepo,
		verifier:   deps.Verifier,
		title:      deps.Title,
		firstYear:  deps.FirstYear,
		now:        deps.Now,
		logger:     deps.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *reportService) Options() ReportOptions {
	return ReportOptions{
		Types: PeriodOptions,
		Years: ReportYears(s.firstYear, s.now()),
	}
}

// Export checks the password before anything else; a failed check reads no data.
func (s *reportService) Export(ctx context.Context, req ExportReportRequest) (*domain.Report, error) {
	if s.verifier == nil || !s.verifier.Verify(req.Password) {
		s.logger.Warn("export rejected: wrong password", zap.String("report_type", string(req.ReportType)))
		return nil, ErrWrongPassword
	}

	period, err := ResolvePeriod(req.ReportType, s.now(), int(req.Year))
	if err != nil {
		return nil, err
	}

	guests, err := s.guestsRepo.ListGuestsInRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load guests for %s report: %w", period.Kind, err)
	}

	report, err := FormatReport(guests, period, s.title)
	if err != nil {
		return nil, err
	}

	s.logger.Info("report exported",
		zap.String("report_type", string(period.Kind)),
		zap.String("file", report.FileName),
		zap.Int("rows", len(report.Rows)),
	)
	return report, nil
}
