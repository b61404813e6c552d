package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/junipershade/petal/internal/models"
)

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildReport renders the user's profile and recent period history as a PDF
// document.
func (service *ExportService) BuildReport(user *models.User, logs []models.PeriodLog) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Petal Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, fmt.Sprintf("Petal Report for %s", user.Name), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "User Information", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	writeInfoRow(pdf, "Name", user.Name)
	writeInfoRow(pdf, "Email", user.Email)
	age := "Not specified"
	if user.Age != nil {
		age = strconv.Itoa(*user.Age)
	}
	writeInfoRow(pdf, "Age", age)
	conditions := strings.Join(user.ConditionNames(), ", ")
	if conditions == "" {
		conditions = "None"
	}
	writeInfoRow(pdf, "Health Conditions", conditions)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Period History", "", 1, "L", false, 0, "")

	if len(logs) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, "No period data available", "", 1, "L", false, 0, "")
	} else {
		widths := []float64{30, 30, 18, 22, 90}
		headers := []string{"Expected", "Actual", "Delay", "Duration", "Notes"}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 210, 225)
		for i, header := range headers {
			pdf.CellFormat(widths[i], 7, header, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 10)
		for _, entry := range logs {
			pdf.CellFormat(widths[0], 7, entry.ExpectedDate.Format("2006-01-02"), "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1], 7, formatOptionalDate(entry.ActualStartDate), "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[2], 7, strconv.Itoa(entry.DelayDays), "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[3], 7, formatOptionalInt(entry.Duration), "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[4], 7, truncateCell(entry.Notes, 60), "1", 0, "L", false, 0, "")
			pdf.Ln(-1)
		}
	}

	var output bytes.Buffer
	if err := pdf.Output(&output); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return output.Bytes(), nil
}

// ReportFileName builds the attachment name for a generated report.
func (service *ExportService) ReportFileName(user *models.User, today time.Time) string {
	name := strings.ReplaceAll(strings.TrimSpace(user.Name), " ", "_")
	if name == "" {
		name = "user"
	}
	return fmt.Sprintf("petal_report_%s_%s.pdf", name, today.Format("20060102"))
}

func writeInfoRow(pdf *fpdf.Fpdf, label string, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(45, 7, label, "1", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(145, 7, value, "1", 1, "L", false, 0, "")
}

func formatOptionalDate(value *time.Time) string {
	if value == nil {
		return "Not logged"
	}
	return value.Format("2006-01-02")
}

func formatOptionalInt(value *int) string {
	if value == nil {
		return "Not specified"
	}
	return strconv.Itoa(*value)
}

func truncateCell(value string, limit int) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) <= limit {
		return trimmed
	}
	return trimmed[:limit-3] + "..."
}
