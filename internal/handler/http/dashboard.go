package http

import (
	"log/slog"
	"net/http"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/dashboard"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Admin(w http.ResponseWriter, r *http.Request)
	Staff(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Admin implements DashboardHandler.
func (h *DashboardHandlerImpl) Admin(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.Admin(r.Context())
	if err != nil {
		slog.Error("Admin dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

// Staff implements DashboardHandler.
func (h *DashboardHandlerImpl) Staff(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	start, end, err := rangeFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := h.dashboardService.Staff(r.Context(), userID, start, end)
	if err != nil {
		slog.Error("Staff dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}
