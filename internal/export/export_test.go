package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/carewave-api/internal/models"
)

func sampleRecord() models.BillingWithPatient {
	id := "p-1"
	return models.BillingWithPatient{
		BillingRecord: models.BillingRecord{
			ID:               "b-1",
			PatientID:        &id,
			Amount:           1234.5,
			PaymentStatus:    models.PaymentPending,
			Date:             "2025-03-15",
			InsuranceDetails: "NHIF, Plan \"Gold\"",
			InvoiceNumber:    "INV-2025-AB12",
			Services:         []string{"Consultation", "<b>X-Ray</b>"},
		},
		PatientName: "Otieno <script>alert(1)</script>",
	}
}

func TestGenerateInvoiceNumber(t *testing.T) {
	for i := 0; i < 50; i++ {
		n, err := GenerateInvoiceNumber()
		require.NoError(t, err)
		assert.Regexp(t, `^INV-2025-[A-Z0-9]{4}$`, n)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 15, 2025", FormatDate("2025-03-15"))
	assert.Equal(t, "not a date", FormatDate("not a date"))
}

func TestBillingCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BillingCSV(&buf, []models.BillingWithPatient{sampleRecord()}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, billingCSVHeader, rows[0])
	assert.Equal(t, []string{"INV-2025-AB12", "Otieno <script>alert(1)</script>", "2025-03-15", "1234.50", "Pending", "NHIF, Plan \"Gold\""}, rows[1])
}

func TestBillingCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BillingCSV(&buf, nil))
	assert.Equal(t, strings.Join(billingCSVHeader, ",")+"\n", buf.String())
}

func TestInvoiceHTMLEscapes(t *testing.T) {
	page, err := InvoiceHTML(sampleRecord())
	require.NoError(t, err)
	html := string(page)
	assert.Contains(t, html, "INV-2025-AB12")
	assert.Contains(t, html, "Mar 15, 2025")
	assert.Contains(t, html, "1234.50")
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.NotContains(t, html, "<b>X-Ray</b>")
}

func TestInvoicePDF(t *testing.T) {
	pdf, err := InvoicePDF(sampleRecord())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestReportDocuments(t *testing.T) {
	stats := &models.DashboardStats{
		TotalPatients:     3,
		TotalAppointments: 7,
		MonthlyPatientVisits: []models.MonthlyVisits{
			{Month: "Jan", Visits: 2},
		},
		DepartmentDistribution: []models.DepartmentPatients{{Department: "Cardiology & Vascular", Patients: 2}},
		AppointmentStatus:      []models.StatusCount{{Status: "Scheduled", Count: 5}},
		RevenueData:            []models.MonthlyRevenue{{Month: "Jan", Amount: 99.9}},
	}
	generated := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	page, err := ReportHTML("Clinic Analytics Report", stats, generated)
	require.NoError(t, err)
	html := string(page)
	assert.Contains(t, html, "<title>Clinic Analytics Report</title>")
	assert.Contains(t, html, "Cardiology &amp; Vascular")
	assert.Contains(t, html, "99.90")
	assert.Contains(t, html, "Jun 1, 2025")

	pdf, err := ReportPDF("Clinic Analytics Report", stats, generated)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}
