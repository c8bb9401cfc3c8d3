package httpapi

import (
	"fmt"
	"net/http"

	"bukutamu/internal/domain"
	"bukutamu/internal/service"

	"go.uber.org/zap"
)

// DashboardHandler serves GET /api/v1/dashboard.
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, logger: logger}
}

// dashboardView adds the bar scale the panel draws the weekly trend with.
type dashboardView struct {
	*domain.DashboardSnapshot
	MaxDailyCount int `json:"maxDailyCount"`
}

func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	snap, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		h.logger.Error("GetDashboard failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(fmt.Sprintf("Gagal memuat statistik: %v", err)))
		return
	}

	writeJSON(w, http.StatusOK, Ok(dashboardView{
		DashboardSnapshot: snap,
		MaxDailyCount:     snap.MaxDailyCount(),
	}))
}
