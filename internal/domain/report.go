package domain

import "time"

// ReportRow is one exported guest, already rendered to strings.
type ReportRow struct {
	SequenceNumber int
	RegNumber      string
	FullName       string
	NationalID     string
	Origin         string
	Position       string
	Department     string
	ContactNumber  string
	Purpose        string
	Satisfaction   string
	VisitDate      string
}

// Cells returns the row in ReportHeaders order.
func (r ReportRow) Cells() []any {
	return []any{
		r.SequenceNumber,
		r.RegNumber,
		r.FullName,
		r.NationalID,
		r.Origin,
		r.Position,
		r.Department,
		r.ContactNumber,
		r.Purpose,
		r.Satisfaction,
		r.VisitDate,
	}
}

// ReportHeaders are the spreadsheet column labels.
var ReportHeaders = []string{
	"No.",
	"No. Registrasi",
	"Nama Lengkap",
	"NIK",
	"Instansi/Lembaga/Domisili",
	"Jabatan",
	"Bidang",
	"Nomor Kontak",
	"Keperluan",
	"Kepuasan Layanan",
	"Tanggal Kunjungan",
}

// Report is a formatted export ready to be written as a workbook.
type Report struct {
	Title        string
	SheetName    string
	FileName     string
	Start        time.Time
	End          time.Time
	Headers      []string
	Rows         []ReportRow
	ColumnWidths []int // one per header, in characters
}

// ColumnCount is the width of the merged title row.
func (r *Report) ColumnCount() int {
	return len(r.Headers)
}
