package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/harentsoaR/carewave-api/internal/models"
)

func newDocument() (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	// Core fonts are cp1252; translate UTF-8 input so accented names survive.
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

func header(pdf *gofpdf.Fpdf, tr func(string) string, subtitle string) {
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(14, 165, 233)
	pdf.CellFormat(0, 10, tr(ClinicName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, tr(subtitle), "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

// addDetail adds a label/value row
func addDetail(pdf *gofpdf.Fpdf, tr func(string) string, label, value string, bold bool) {
	if bold {
		pdf.SetFont("Arial", "B", 11)
	} else {
		pdf.SetFont("Arial", "", 10)
	}
	pdf.CellFormat(55, 9, tr(label), "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 9, tr(value), "1", 1, "", false, 0, "")
}

func section(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(249, 250, 251)
	pdf.CellFormat(0, 9, tr(title), "1", 1, "C", true, 0, "")
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error generating pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// InvoicePDF renders a billing record as a one-page PDF invoice.
func InvoicePDF(record models.BillingWithPatient) ([]byte, error) {
	pdf, tr := newDocument()
	header(pdf, tr, "Invoice #"+record.InvoiceNumber)

	section(pdf, tr, "Bill To")
	addDetail(pdf, tr, "Patient", record.PatientName, false)
	addDetail(pdf, tr, "Date", FormatDate(record.Date), false)
	addDetail(pdf, tr, "Status", record.PaymentStatus, false)

	insurance := record.InsuranceDetails
	if insurance == "" {
		insurance = "No insurance information provided"
	}
	section(pdf, tr, "Insurance Details")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 7, tr(insurance), "1", "L", false)

	section(pdf, tr, "Services")
	if len(record.Services) == 0 {
		addDetail(pdf, tr, "No services listed", "-", false)
	}
	for _, s := range record.Services {
		addDetail(pdf, tr, s, "-", false)
	}
	addDetail(pdf, tr, "Total", fmt.Sprintf("$%.2f", record.Amount), true)

	pdf.Ln(12)
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 6, tr("Thank you for choosing "+ClinicName), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr("For any inquiries, please contact "+BillingEmail), "", 1, "C", false, 0, "")

	return output(pdf)
}

// ReportPDF renders the dashboard statistics as a PDF report.
func ReportPDF(title string, stats *models.DashboardStats, generated time.Time) ([]byte, error) {
	pdf, tr := newDocument()
	header(pdf, tr, title)

	section(pdf, tr, "Overview")
	addDetail(pdf, tr, "Total patients", fmt.Sprint(stats.TotalPatients), false)
	addDetail(pdf, tr, "Total appointments", fmt.Sprint(stats.TotalAppointments), false)
	addDetail(pdf, tr, "Appointments today", fmt.Sprint(stats.TodayAppointments), false)
	addDetail(pdf, tr, "Upcoming appointments", fmt.Sprint(stats.UpcomingAppointments), false)

	section(pdf, tr, "Monthly patient visits")
	for _, m := range stats.MonthlyPatientVisits {
		addDetail(pdf, tr, m.Month, fmt.Sprint(m.Visits), false)
	}

	section(pdf, tr, "Department distribution")
	if len(stats.DepartmentDistribution) == 0 {
		addDetail(pdf, tr, "No appointments recorded", "-", false)
	}
	for _, d := range stats.DepartmentDistribution {
		addDetail(pdf, tr, d.Department, fmt.Sprint(d.Patients), false)
	}

	section(pdf, tr, "Appointment status")
	for _, s := range stats.AppointmentStatus {
		addDetail(pdf, tr, s.Status, fmt.Sprint(s.Count), false)
	}

	section(pdf, tr, "Revenue")
	for _, r := range stats.RevenueData {
		addDetail(pdf, tr, r.Month, fmt.Sprintf("$%.2f", r.Amount), false)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 6, tr("Generated by "+ClinicName), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Date: "+generated.Format("Jan 2, 2006"), "", 1, "C", false, 0, "")

	return output(pdf)
}
