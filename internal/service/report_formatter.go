package service

import (
	"strconv"
	"unicode/utf8"

	"bukutamu/internal/domain"
)

const (
	DefaultReportTitle = "Buku Tamu Bapperida Lombok Barat"
	ReportSheetName    = "Data Tamu"

	missingCell = "-"
)

// FormatReport turns guests, already sorted newest first, into export rows for period.
// The newest guest gets the highest sequence number (len(guests)), the oldest gets 1.
// An empty input yields ErrNoReportData rather than an empty report.
func FormatReport(guests []*domain.Guest, period Period, title string) (*domain.Report, error) {
	if len(guests) == 0 {
		return nil, ErrNoReportData
	}
	if title == "" {
		title = DefaultReportTitle
	}

	loc := period.Start.Location()
	total := len(guests)
	rows := make([]domain.ReportRow, 0, total)
	for i, g := range guests {
		rows = append(rows, domain.ReportRow{
			SequenceNumber: total - i,
			RegNumber:      g.RegNumber,
			FullName:       g.FullName(),
			NationalID:     orDash(g.NationalID),
			Origin:         g.Origin,
			Position:       orDash(g.Position),
			Department:     orDash(g.Department),
			ContactNumber:  orDash(&g.ContactNumber),
			Purpose:        g.Purpose,
			Satisfaction:   orDash(g.Satisfaction),
			VisitDate:      formatVisitDate(g.CreatedAt.In(loc)),
		})
	}

	headers := append([]string(nil), domain.ReportHeaders...)
	return &domain.Report{
		Title:        title,
		SheetName:    ReportSheetName,
		FileName:     period.Label + ".xlsx",
		Start:        period.Start,
		End:          period.End,
		Headers:      headers,
		Rows:         rows,
		ColumnWidths: ColumnWidths(headers, rows),
	}, nil
}

// ColumnWidths sizes each column to its longest header or cell, counted in characters.
func ColumnWidths(headers []string, rows []domain.ReportRow) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, r := range rows {
		for i, c := range r.Cells() {
			if i >= len(widths) {
				break
			}
			if n := utf8.RuneCountInString(cellText(c)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func cellText(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case int:
		return strconv.Itoa(c)
	default:
		return ""
	}
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return missingCell
	}
	return *s
}
