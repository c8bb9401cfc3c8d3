package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"bukutamu/internal/service"

	"go.uber.org/zap"
)

// ReportHandler serves the export panel.
type ReportHandler struct {
	reportService service.ReportService
	logger        *zap.Logger
}

func NewReportHandler(reportService service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reportService: reportService, logger: logger}
}

// ServeHTTP routes:
//   - GET  /api/v1/reports/options
//   - POST /api/v1/reports/export
func (h *ReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch strings.TrimSuffix(r.URL.Path, "/") {
	case "/api/v1/reports/options":
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		writeJSON(w, http.StatusOK, Ok(h.reportService.Options()))
	case "/api/v1/reports/export":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		h.Export(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// Export answers with the workbook on success and with an envelope otherwise.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req service.ExportReportRequest
	if err := readBodyJSON(r, maxBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid body"))
		return
	}

	report, err := h.reportService.Export(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			writeJSON(w, http.StatusOK, Fail("Password Salah"))
		case errors.Is(err, service.ErrInvalidReportType):
			writeJSON(w, http.StatusOK, Fail("Jenis laporan tidak valid."))
		case errors.Is(err, service.ErrNoReportData):
			writeJSON(w, http.StatusOK, Warn("Tidak Ada Data"))
		default:
			h.logger.Error("Export report failed", zap.Error(err))
			writeJSON(w, http.StatusOK, Fail(fmt.Sprintf("Gagal mengekspor data: %v", err)))
		}
		return
	}

	data, err := GenerateGuestReportExcel(report)
	if err != nil {
		h.logger.Error("GenerateGuestReportExcel failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(fmt.Sprintf("Gagal mengekspor data: %v", err)))
		return
	}

	writeXLSX(w, report.FileName, len(report.Rows), data)
}
