package service

import (
	"testing"
	"time"

	"bukutamu/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReport_SequenceAndCells(t *testing.T) {
	period, err := ResolvePeriod(PeriodMonthly, at(2024, time.March, 20, 9, 0), 0)
	require.NoError(t, err)

	guests := make([]*domain.Guest, 0, 5)
	for day := 20; day >= 16; day-- {
		guests = append(guests, guestAt(at(2024, time.March, day, 9, 5), ""))
	}
	guests[0].NationalID = strPtr("5201010101010001")
	guests[0].Position = strPtr("Staf")
	guests[0].Department = strPtr("Sekretariat")
	guests[0].Satisfaction = strPtr("Puas")

	report, err := FormatReport(guests, period, "")
	require.NoError(t, err)

	assert.Equal(t, DefaultReportTitle, report.Title)
	assert.Equal(t, ReportSheetName, report.SheetName)
	assert.Equal(t, "Laporan_Tamu_Bulanan_Maret-2024.xlsx", report.FileName)
	assert.Equal(t, domain.ReportHeaders, report.Headers)
	require.Len(t, report.Rows, 5)

	seq := make([]int, 0, 5)
	for _, r := range report.Rows {
		seq = append(seq, r.SequenceNumber)
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, seq)

	first := report.Rows[0]
	assert.Equal(t, "Budi Santoso", first.FullName)
	assert.Equal(t, "5201010101010001", first.NationalID)
	assert.Equal(t, "Sekretariat", first.Department)
	assert.Equal(t, "Puas", first.Satisfaction)
	assert.Equal(t, "20 Maret 2024, 09:05", first.VisitDate)

	last := report.Rows[4]
	assert.Equal(t, "-", last.NationalID)
	assert.Equal(t, "-", last.Position)
	assert.Equal(t, "-", last.Department)
	assert.Equal(t, "-", last.Satisfaction)
	assert.Equal(t, "081234567890", last.ContactNumber)
}

func TestFormatReport_VisitDateInPeriodLocation(t *testing.T) {
	period, err := ResolvePeriod(PeriodDaily, at(2024, time.March, 15, 9, 0), 0)
	require.NoError(t, err)
	g := guestAt(time.Date(2024, time.March, 15, 0, 45, 0, 0, time.UTC), "")

	report, err := FormatReport([]*domain.Guest{g}, period, "Buku Tamu")
	require.NoError(t, err)
	assert.Equal(t, "Buku Tamu", report.Title)
	assert.Equal(t, "15 Maret 2024, 08:45", report.Rows[0].VisitDate)
}

func TestFormatReport_Empty(t *testing.T) {
	period, err := ResolvePeriod(PeriodDaily, at(2024, time.March, 15, 9, 0), 0)
	require.NoError(t, err)

	report, err := FormatReport(nil, period, "")
	assert.ErrorIs(t, err, ErrNoReportData)
	assert.Nil(t, report)
}

func TestColumnWidths(t *testing.T) {
	headers := []string{"No.", "Nama"}
	rows := []domain.ReportRow{
		{SequenceNumber: 12345, RegNumber: "x"},
	}
	// Cells beyond the header count are ignored.
	assert.Equal(t, []int{5, 4}, ColumnWidths(headers, rows))

	withAccent := []domain.ReportRow{{SequenceNumber: 1, RegNumber: "Çağrı Öztürk"}}
	assert.Equal(t, []int{3, 12}, ColumnWidths([]string{"No.", "Reg"}, withAccent))
}
