package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"bukutamu/internal/domain"
	"bukutamu/internal/service"

	"go.uber.org/zap"
)

const idempotencyHeader = "Idempotency-Key"

// GuestHandler serves the kiosk registration form.
type GuestHandler struct {
	guestService service.GuestService
	logger       *zap.Logger
}

func NewGuestHandler(guestService service.GuestService, logger *zap.Logger) *GuestHandler {
	return &GuestHandler{guestService: guestService, logger: logger}
}

// ServeHTTP routes:
//   - POST /api/v1/guests
//   - GET  /api/v1/guests/options
//   - GET  /api/v1/guests/reg-number
func (h *GuestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch strings.TrimSuffix(r.URL.Path, "/") {
	case "/api/v1/guests":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		h.Register(w, r)
	case "/api/v1/guests/options":
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		h.Options(w, r)
	case "/api/v1/guests/reg-number":
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		h.RegNumber(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type formOptions struct {
	Purposes           []string `json:"purposes"`
	Departments        []string `json:"departments"`
	SatisfactionLevels []string `json:"satisfactionLevels"`
}

func (h *GuestHandler) Options(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Ok(formOptions{
		Purposes:           domain.PurposeOptions,
		Departments:        domain.DepartmentOptions,
		SatisfactionLevels: domain.SatisfactionLevels,
	}))
}

func (h *GuestHandler) RegNumber(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Ok(map[string]string{
		"regNumber": h.guestService.NextRegNumber(r.Context()),
	}))
}

func (h *GuestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var form service.RegistrationForm
	if err := readBodyJSON(r, maxBodyBytes, &form); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid body"))
		return
	}

	resp, err := h.guestService.Register(r.Context(), service.RegisterGuestRequest{
		Form:           form,
		IdempotencyKey: strings.TrimSpace(r.Header.Get(idempotencyHeader)),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIncompleteForm):
			writeJSON(w, http.StatusOK, Fail("Formulir Tidak Lengkap"))
		case errors.Is(err, service.ErrInvalidOption):
			writeJSON(w, http.StatusOK, Fail("Pilihan tidak valid"))
		case errors.Is(err, service.ErrDuplicateSubmission):
			writeJSON(w, http.StatusOK, Fail("Data sudah terkirim"))
		default:
			h.logger.Error("Register guest failed", zap.Error(err))
			writeJSON(w, http.StatusOK, Fail(fmt.Sprintf("Gagal mengirim data: %v", err)))
		}
		return
	}

	writeJSON(w, http.StatusOK, Ok(resp))
}
