package service

import (
	"fmt"
	"time"
)

// PeriodKind selects a report's date window.
type PeriodKind string

const (
	PeriodDaily         PeriodKind = "daily"
	PeriodWeekly        PeriodKind = "weekly"
	PeriodMonthly       PeriodKind = "monthly"
	PeriodPreviousMonth PeriodKind = "previousMonth"
	PeriodAnnual        PeriodKind = "annual"
)

// Period is an inclusive local-time window plus the file label for it.
type Period struct {
	Kind  PeriodKind
	Start time.Time
	End   time.Time
	Label string
}

// PeriodOption is one entry of the report type picker.
type PeriodOption struct {
	Value PeriodKind `json:"value"`
	Label string     `json:"label"`
}

// PeriodOptions lists the supported kinds in picker order.
var PeriodOptions = []PeriodOption{
	{Value: PeriodDaily, Label: "Laporan Harian (hari ini)"},
	{Value: PeriodWeekly, Label: "Laporan Mingguan (7 hari terakhir)"},
	{Value: PeriodMonthly, Label: "Laporan Bulanan (bulan ini)"},
	{Value: PeriodPreviousMonth, Label: "Laporan Bulan Sebelumnya"},
	{Value: PeriodAnnual, Label: "Cetak Laporan Tahunan"},
}

// ResolvePeriod maps kind to its window relative to now, in now's location.
// year is only read for PeriodAnnual; zero or negative means now's year.
func ResolvePeriod(kind PeriodKind, now time.Time, year int) (Period, error) {
	loc := now.Location()
	y, m, d := now.Date()
	today := startOfDay(now)

	p := Period{Kind: kind, End: now}
	switch kind {
	case PeriodDaily:
		p.Start = today
		p.Label = "Laporan_Tamu_Harian_" + dateKey(now)
	case PeriodWeekly:
		p.Start = time.Date(y, m, d-6, 0, 0, 0, 0, loc)
		p.Label = "Laporan_Tamu_Mingguan_" + dateKey(now)
	case PeriodMonthly:
		p.Start = startOfMonth(now)
		p.Label = fmt.Sprintf("Laporan_Tamu_Bulanan_%s-%04d", monthName(m), y)
	case PeriodPreviousMonth:
		p.Start = time.Date(y, m-1, 1, 0, 0, 0, 0, loc)
		// Day 0 of this month is the last day of the previous one.
		p.End = time.Date(y, m, 0, 23, 59, 59, int(999*time.Millisecond), loc)
		p.Label = fmt.Sprintf("Laporan_Tamu_Bulan_Sebelumnya_%s-%04d", monthName(p.Start.Month()), p.Start.Year())
	case PeriodAnnual:
		if year <= 0 {
			year = y
		}
		p.Start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		p.End = time.Date(year, time.December, 31, 23, 59, 59, int(999*time.Millisecond), loc)
		p.Label = fmt.Sprintf("Laporan_Tamu_Tahunan_%d", year)
	default:
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidReportType, string(kind))
	}
	return p, nil
}

// ReportYears lists firstYear .. now.Year()+1, newest first.
func ReportYears(firstYear int, now time.Time) []int {
	last := now.Year() + 1
	if firstYear > last {
		firstYear = last
	}
	years := make([]int, 0, last-firstYear+1)
	for y := last; y >= firstYear; y-- {
		years = append(years, y)
	}
	return years
}
