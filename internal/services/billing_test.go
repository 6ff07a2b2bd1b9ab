package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/carewave-api/internal/models"
)

func strPtr(s string) *string { return &s }

func ptr[T any](v T) *T { return &v }

func TestBillingCreateGeneratesInvoiceNumber(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	svc := NewBillingService(s, nil)
	p := addPatient(t, s, "Njeri Koech", "555-0108")

	b, err := svc.Create(ctx, models.BillingInput{PatientID: &p.ID, Amount: ptr(150.0), PaymentStatus: models.PaymentPaid, Date: "2025-03-10", Services: []string{"Consultation", " ", "X-Ray"}})
	require.NoError(t, err)
	assert.Regexp(t, `^INV-2025-[A-Z0-9]{4}$`, b.InvoiceNumber)
	assert.Equal(t, []string{"Consultation", "X-Ray"}, b.Services)

	got, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Njeri Koech", got.PatientName)
	assert.Equal(t, 150.0, got.Amount)

	kept, err := svc.Create(ctx, models.BillingInput{Amount: ptr(20.0), PaymentStatus: models.PaymentPending, Date: "2025-03-11", InvoiceNumber: "INV-2025-KEEP"})
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-KEEP", kept.InvoiceNumber)
}

func TestBillingWithoutPatientIsUnknown(t *testing.T) {
	ctx := context.Background()
	svc := NewBillingService(newStore(), nil)

	b, err := svc.Create(ctx, models.BillingInput{PatientID: strPtr(""), Amount: ptr(75.0), PaymentStatus: models.PaymentPending, Date: "2025-04-01"})
	require.NoError(t, err)
	assert.Nil(t, b.PatientID)

	got, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UnknownPatient, got.PatientName)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.UnknownPatient, all[0].PatientName)
}

func TestBillingCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewBillingService(newStore(), nil)

	tests := []struct {
		name string
		in   models.BillingInput
		msg  string
	}{
		{"missing", models.BillingInput{Amount: ptr(10.0)}, "Missing required fields: paymentStatus, date"},
		{"missing amount", models.BillingInput{PaymentStatus: "Paid", Date: "2025-01-01"}, "Missing required fields: amount"},
		{"nothing", models.BillingInput{}, "Missing required fields: amount, paymentStatus, date"},
		{"negative amount", models.BillingInput{Amount: ptr(-1.0), PaymentStatus: "Paid", Date: "2025-01-01"}, "amount cannot be negative"},
		{"bad status", models.BillingInput{Amount: ptr(1.0), PaymentStatus: "Refunded", Date: "2025-01-01"}, "paymentStatus must be one of Paid, Pending, Overdue, Cancelled"},
		{"unknown patient", models.BillingInput{PatientID: strPtr("nope"), Amount: ptr(1.0), PaymentStatus: "Paid", Date: "2025-01-01"}, "patientId does not reference an existing patient"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.msg, verr.Message)
		})
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBillingCreateAcceptsExplicitZeroAmount(t *testing.T) {
	ctx := context.Background()
	svc := NewBillingService(newStore(), nil)

	b, err := svc.Create(ctx, models.BillingInput{Amount: ptr(0.0), PaymentStatus: models.PaymentCancelled, Date: "2025-01-20"})
	require.NoError(t, err)
	assert.Zero(t, b.Amount)
	assert.NotEmpty(t, b.ID)
}

func TestBillingExportCSV(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	svc := NewBillingService(s, nil)
	p := addPatient(t, s, "Otieno Wanjiru", "555-0109")
	q := addPatient(t, s, "Achieng Kimani", "555-0110")

	_, err := svc.Create(ctx, models.BillingInput{PatientID: &p.ID, Amount: ptr(100.0), PaymentStatus: models.PaymentPaid, Date: "2025-02-01"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.BillingInput{PatientID: &q.ID, Amount: ptr(40.0), PaymentStatus: models.PaymentOverdue, Date: "2025-02-02"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, &buf, ""))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	buf.Reset()
	require.NoError(t, svc.ExportCSV(ctx, &buf, q.ID))
	rows, err = csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[1], "Achieng Kimani")
}

func TestBillingInvoiceDocuments(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	svc := NewBillingService(s, nil)
	p := addPatient(t, s, "Mwangi <Kamau>", "555-0111")
	b, err := svc.Create(ctx, models.BillingInput{PatientID: &p.ID, Amount: ptr(99.5), PaymentStatus: models.PaymentPaid, Date: "2025-05-05", Services: []string{"Cleaning"}})
	require.NoError(t, err)

	pdf, record, err := svc.InvoicePDF(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Equal(t, b.InvoiceNumber, record.InvoiceNumber)

	page, _, err := svc.InvoiceHTML(ctx, b.ID)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Mwangi &lt;Kamau&gt;")
	assert.Contains(t, string(page), b.InvoiceNumber)

	_, _, err = svc.InvoicePDF(ctx, "missing")
	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestBillingEmailInvoice(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	disabled := NewBillingService(s, nil)
	_, err := disabled.EmailInvoice(ctx, "any", "")
	assert.ErrorIs(t, err, ErrMailerDisabled)

	mailer := newFakeMailer()
	svc := NewBillingService(s, NewNotificationServiceWithMailer(mailer, "billing@carewave.com"))
	p := addPatient(t, s, "Wanjiku Odhiambo", "wanjiku@example.com")
	b, err := svc.Create(ctx, models.BillingInput{PatientID: &p.ID, Amount: ptr(250.0), PaymentStatus: models.PaymentPending, Date: "2025-05-06"})
	require.NoError(t, err)

	to, err := svc.EmailInvoice(ctx, b.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "wanjiku@example.com", to)

	to, err = svc.EmailInvoice(ctx, b.ID, "accounts@insurer.example")
	require.NoError(t, err)
	assert.Equal(t, "accounts@insurer.example", to)

	sent := mailer.messages()
	require.Len(t, sent, 2)
	assert.Equal(t, []string{"Invoice " + b.InvoiceNumber}, sent[0].GetHeader("Subject"))

	phone := addPatient(t, s, "Kamau Ouma", "555-0112")
	c, err := svc.Create(ctx, models.BillingInput{PatientID: &phone.ID, Amount: ptr(5.0), PaymentStatus: models.PaymentPaid, Date: "2025-05-07"})
	require.NoError(t, err)
	_, err = svc.EmailInvoice(ctx, c.ID, "")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "no valid email address for this invoice", verr.Message)
}

func TestBillingUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewBillingService(newStore(), nil)
	b, err := svc.Create(ctx, models.BillingInput{Amount: ptr(10.0), PaymentStatus: models.PaymentPending, Date: "2025-01-15"})
	require.NoError(t, err)

	paid := models.PaymentPaid
	updated, err := svc.Update(ctx, b.ID, models.BillingUpdate{PaymentStatus: &paid})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)

	negative := -5.0
	_, err = svc.Update(ctx, b.ID, models.BillingUpdate{Amount: &negative})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	require.NoError(t, svc.Delete(ctx, b.ID))
	var nf *NotFoundError
	assert.True(t, errors.As(svc.Delete(ctx, b.ID), &nf))
}
