package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/report"
)

// TimeOwedLeaderboardPDF implements report.ReportService.
func (s *ReportServiceImpl) TimeOwedLeaderboardPDF(ctx context.Context) ([]byte, error) {
	results, err := s.TimeOwedLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Time Owed Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(20, 8, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(90, 8, "Staff Member", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, "Time Owed", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	for i, r := range results {
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(90, 8, r.Username, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, formatMinutes(r.TotalMinutesOwed), "1", 1, "R", false, 0, "")
	}

	if len(results) == 0 {
		pdf.CellFormat(170, 8, "No attendance records yet", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

// formatMinutes renders signed minutes as "+2h 15m" style text. Positive
// values are a deficit, negative values are banked overtime.
func formatMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%dh %02dm", sign, minutes/60, minutes%60)
}

var _ report.ReportService = (*ReportServiceImpl)(nil)
