package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/report"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	TimeIn(w http.ResponseWriter, r *http.Request)
	TimeOut(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	SaveNote(w http.ResponseWriter, r *http.Request)
	MyTimesheet(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// TimeIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) TimeIn(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	sheet, err := h.attendanceService.ClockIn(r.Context(), userID)
	if err != nil {
		slog.Error("TimeIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timed in", attendance.ToResponse(sheet))
}

// TimeOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) TimeOut(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	sheet, err := h.attendanceService.ClockOut(r.Context(), userID)
	if err != nil {
		slog.Error("TimeOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timed out", attendance.ToResponse(sheet))
}

// Status implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	status, err := h.attendanceService.TimeStatus(r.Context(), userID)
	if err != nil {
		slog.Error("Status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// SaveNote implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SaveNote(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.SaveNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveNote decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.SaveNote(r.Context(), userID, req.Note); err != nil {
		slog.Error("SaveNote service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Note saved", nil)
}

// MyTimesheet implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MyTimesheet(w http.ResponseWriter, r *http.Request) {
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

	sheets, err := h.attendanceService.MyTimesheet(r.Context(), userID, start, end)
	if err != nil {
		slog.Error("MyTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.ToResponses(sheets))
}

// rangeFromQuery reads optional start_date/end_date query parameters and
// falls back to the default reporting window.
func rangeFromQuery(r *http.Request) (time.Time, time.Time, error) {
	q := attendance.RangeQuery{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if err := q.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start, end := report.DefaultWindow(today)

	if q.StartDate != "" {
		start, _ = time.Parse("2006-01-02", q.StartDate)
	}
	if q.EndDate != "" {
		end, _ = time.Parse("2006-01-02", q.EndDate)
	}

	return start, end, nil
}
