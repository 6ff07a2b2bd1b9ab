package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/harentsoaR/carewave-api/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// InvoiceHTML renders a print-ready invoice page that opens the browser's
// print dialog on load.
func InvoiceHTML(record models.BillingWithPatient) ([]byte, error) {
	data := struct {
		Clinic        string
		Email         string
		InvoiceNumber string
		PatientName   string
		Date          string
		Status        string
		Insurance     string
		Services      []string
		Total         string
	}{
		Clinic:        ClinicName,
		Email:         BillingEmail,
		InvoiceNumber: record.InvoiceNumber,
		PatientName:   record.PatientName,
		Date:          FormatDate(record.Date),
		Status:        record.PaymentStatus,
		Insurance:     record.InsuranceDetails,
		Services:      record.Services,
		Total:         fmt.Sprintf("%.2f", record.Amount),
	}
	return execute("invoice.html", data)
}

// DocumentHTML wraps trusted HTML content in a printable report page.
func DocumentHTML(title string, content template.HTML, generated time.Time) ([]byte, error) {
	data := struct {
		Clinic    string
		Title     string
		Content   template.HTML
		Generated string
	}{
		Clinic:    ClinicName,
		Title:     title,
		Content:   content,
		Generated: generated.Format("Jan 2, 2006"),
	}
	return execute("document.html", data)
}

// ReportHTML renders the dashboard statistics as a printable report.
func ReportHTML(title string, stats *models.DashboardStats, generated time.Time) ([]byte, error) {
	body, err := execute("report.html", stats)
	if err != nil {
		return nil, err
	}
	return DocumentHTML(title, template.HTML(body), generated)
}

func execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("error rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
