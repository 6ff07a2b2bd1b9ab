package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/harentsoaR/carewave-api/internal/models"
)

var billingCSVHeader = []string{"Invoice Number", "Patient Name", "Date", "Amount", "Status", "Insurance Details"}

// BillingCSV writes one header line and one line per record.
func BillingCSV(w io.Writer, records []models.BillingWithPatient) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(billingCSVHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.InvoiceNumber,
			r.PatientName,
			r.Date,
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
			r.PaymentStatus,
			r.InsuranceDetails,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
