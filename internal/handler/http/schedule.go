package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/schedule"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// List implements ScheduleHandler.
func (h *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	hours, err := h.scheduleService.List(r.Context())
	if err != nil {
		slog.Error("List working hours service error", "error", err)
		response.HandleError(w, err)
		return
	}

	out := make([]schedule.WorkingHoursResponse, 0, len(hours))
	for _, wh := range hours {
		out = append(out, schedule.ToResponse(wh))
	}

	response.Success(w, out)
}

// Update implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actorID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req schedule.UpdateWorkingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update working hours decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.scheduleService.Update(r.Context(), req, actorID); err != nil {
		slog.Error("Update working hours service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Working hours updated", nil)
}
