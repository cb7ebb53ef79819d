package http

import (
	"log/slog"
	"net/http"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/report"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	TimeOwed(w http.ResponseWriter, r *http.Request)
	TimeOwedPDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// TimeOwed implements ReportHandler.
func (h *ReportHandlerImpl) TimeOwed(w http.ResponseWriter, r *http.Request) {
	results, err := h.reportService.TimeOwedLeaderboard(r.Context())
	if err != nil {
		slog.Error("TimeOwed service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// TimeOwedPDF implements ReportHandler.
func (h *ReportHandlerImpl) TimeOwedPDF(w http.ResponseWriter, r *http.Request) {
	pdf, err := h.reportService.TimeOwedLeaderboardPDF(r.Context())
	if err != nil {
		slog.Error("TimeOwedPDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="time-owed-report.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
