package httpapi

import (
	"bytes"
	"fmt"

	"bukutamu/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	reportTitleRow  = 1
	reportHeaderRow = 3
	reportFirstRow  = 4
)

// GenerateGuestReportExcel renders report as a single-sheet workbook:
// a merged title row, a blank row, the header row, then one row per guest.
func GenerateGuestReportExcel(report *domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	// Note: Don't defer Close() here, because WriteTo needs the file to be open

	sheet := report.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	cols := report.ColumnCount()
	lastCol, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to convert column number: %w", err)
	}

	// Title
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create title style: %w", err)
	}
	titleCell := fmt.Sprintf("A%d", reportTitleRow)
	titleEnd := fmt.Sprintf("%s%d", lastCol, reportTitleRow)
	if err := f.SetCellValue(sheet, titleCell, report.Title); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set title: %w", err)
	}
	if err := f.MergeCell(sheet, titleCell, titleEnd); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to merge title cells: %w", err)
	}
	if err := f.SetCellStyle(sheet, titleCell, titleEnd, titleStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set title style: %w", err)
	}

	// Header
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	headerStart := fmt.Sprintf("A%d", reportHeaderRow)
	headerEnd := fmt.Sprintf("%s%d", lastCol, reportHeaderRow)
	if err := f.SetSheetRow(sheet, headerStart, &report.Headers); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	if err := f.SetCellStyle(sheet, headerStart, headerEnd, headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	// Rows
	for i, row := range report.Rows {
		cell := fmt.Sprintf("A%d", reportFirstRow+i)
		cells := row.Cells()
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", reportFirstRow+i, err)
		}
	}

	// Column widths are the measured character counts, unpadded
	for i, width := range report.ColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, float64(width)); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	// Keep title and header visible
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      reportHeaderRow,
		TopLeftCell: fmt.Sprintf("A%d", reportFirstRow),
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}

	return buf.Bytes(), nil
}
