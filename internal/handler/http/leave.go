package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

const maxLeaveUploadBytes = 10 << 20 // 10 MB

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Submit implements LeaveHandler. The request arrives as a multipart form so
// a supporting document can ride along.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxLeaveUploadBytes); err != nil {
		slog.Error("Submit parse form error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := leave.SubmitLeaveRequest{
		UserID:    userID,
		LeaveType: r.FormValue("leave_type"),
		StartDate: r.FormValue("start_date"),
		EndDate:   r.FormValue("end_date"),
		Reason:    r.FormValue("reason"),
	}

	file, header, err := r.FormFile("document")
	if err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = header
	}

	created, err := h.leaveService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Submit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", leave.ToResponse(created))
}

// MyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) MyRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.leaveService.ListMine(r.Context(), userID)
	if err != nil {
		slog.Error("MyRequests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.ToResponses(requests))
}

// Pending implements LeaveHandler.
func (h *LeaveHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListPending(r.Context())
	if err != nil {
		slog.Error("Pending service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.ToResponses(requests))
}

// Decide implements LeaveHandler.
func (h *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req leave.DecideLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.LeaveID == "" {
		req.LeaveID = chi.URLParam(r, "id")
	}

	decided, err := h.leaveService.Decide(r.Context(), req)
	if err != nil {
		slog.Error("Decide service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+string(decided.Status), leave.ToResponse(decided))
}
