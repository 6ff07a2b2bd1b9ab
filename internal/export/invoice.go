// Package export renders billing and analytics data as CSV, printable HTML
// and PDF documents.
package export

import (
	"crypto/rand"
	"math/big"
	"time"
)

const (
	ClinicName   = "CareWave Clinic Management System"
	BillingEmail = "billing@carewave.com"

	invoicePrefix   = "INV-2025-"
	invoiceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateInvoiceNumber returns INV-2025- followed by four random characters
// from [A-Z0-9]. Numbers are random, not sequenced, and may collide.
func GenerateInvoiceNumber() (string, error) {
	suffix := make([]byte, 4)
	max := big.NewInt(int64(len(invoiceAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = invoiceAlphabet[n.Int64()]
	}
	return invoicePrefix + string(suffix), nil
}

// FormatDate renders an ISO date as "Mar 15, 2025". Unparseable input is
// returned unchanged.
func FormatDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}
