package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/carewave-api/internal/export"
	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

const entityBilling = "Billing record"

type BillingService struct {
	writeHooks

	billing  store.BillingRepository
	patients store.PatientRepository
	notifier *NotificationService

	// newInvoiceNumber is swapped in tests.
	newInvoiceNumber func() (string, error)
}

func NewBillingService(s *store.Store, notifier *NotificationService) *BillingService {
	return &BillingService{
		billing:          s.Billing,
		patients:         s.Patients,
		notifier:         notifier,
		newInvoiceNumber: export.GenerateInvoiceNumber,
	}
}

func (s *BillingService) patientNames(ctx context.Context) (map[string]string, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(patients))
	for _, p := range patients {
		names[p.ID] = p.Name
	}
	return names, nil
}

func withPatientName(b models.BillingRecord, names map[string]string) models.BillingWithPatient {
	name := models.UnknownPatient
	if b.PatientID != nil {
		if n, ok := names[*b.PatientID]; ok {
			name = n
		}
	}
	return models.BillingWithPatient{BillingRecord: b, PatientName: name}
}

func (s *BillingService) List(ctx context.Context) ([]models.BillingWithPatient, error) {
	records, err := s.billing.List(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.patientNames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.BillingWithPatient, 0, len(records))
	for _, r := range records {
		out = append(out, withPatientName(r, names))
	}
	return out, nil
}

func (s *BillingService) Get(ctx context.Context, id string) (*models.BillingWithPatient, error) {
	b, err := s.billing.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, entityBilling)
	}
	out := models.BillingWithPatient{BillingRecord: *b, PatientName: models.UnknownPatient}
	if b.PatientID != nil {
		p, err := s.patients.Get(ctx, *b.PatientID)
		switch {
		case err == nil:
			out.PatientName = p.Name
		case !errors.Is(err, store.ErrNotFound):
			return nil, err
		}
	}
	return &out, nil
}

func (s *BillingService) checkPatient(ctx context.Context, id *string) error {
	if id == nil || *id == "" {
		return nil
	}
	_, err := s.patients.Get(ctx, *id)
	if errors.Is(err, store.ErrNotFound) {
		return invalid("patientId does not reference an existing patient")
	}
	return err
}

func cleanServices(services []string) []string {
	out := make([]string, 0, len(services))
	for _, svc := range services {
		if svc = strings.TrimSpace(svc); svc != "" {
			out = append(out, svc)
		}
	}
	return out
}

func (s *BillingService) Create(ctx context.Context, in models.BillingInput) (*models.BillingRecord, error) {
	if err := requireInput(
		number("amount", in.Amount),
		text("paymentStatus", in.PaymentStatus),
		text("date", in.Date),
	); err != nil {
		return nil, err
	}
	if *in.Amount < 0 {
		return nil, invalid("amount cannot be negative")
	}
	if !validDate(in.Date) {
		return nil, invalid("date must be a date in YYYY-MM-DD format")
	}
	if !models.ValidPaymentStatus(in.PaymentStatus) {
		return nil, invalid("paymentStatus must be one of Paid, Pending, Overdue, Cancelled")
	}
	b := in.Record()
	if err := s.checkPatient(ctx, b.PatientID); err != nil {
		return nil, err
	}
	b.Services = cleanServices(b.Services)
	if strings.TrimSpace(b.InvoiceNumber) == "" {
		invoice, err := s.newInvoiceNumber()
		if err != nil {
			return nil, err
		}
		b.InvoiceNumber = invoice
	}
	if err := s.billing.Create(ctx, b); err != nil {
		return nil, err
	}
	log.Info().Str("billingId", b.ID).Str("invoiceNumber", b.InvoiceNumber).Float64("amount", b.Amount).Msg("billing record created")
	s.written(ctx)
	return b, nil
}

func (s *BillingService) Update(ctx context.Context, id string, u models.BillingUpdate) (*models.BillingRecord, error) {
	if err := notBlank("paymentStatus", u.PaymentStatus); err != nil {
		return nil, err
	}
	if err := notBlank("date", u.Date); err != nil {
		return nil, err
	}
	if u.Amount != nil && *u.Amount < 0 {
		return nil, invalid("amount cannot be negative")
	}
	if u.Date != nil && !validDate(*u.Date) {
		return nil, invalid("date must be a date in YYYY-MM-DD format")
	}
	if u.PaymentStatus != nil && !models.ValidPaymentStatus(*u.PaymentStatus) {
		return nil, invalid("paymentStatus must be one of Paid, Pending, Overdue, Cancelled")
	}
	if err := s.checkPatient(ctx, u.PatientID); err != nil {
		return nil, err
	}
	if u.Services != nil {
		cleaned := cleanServices(*u.Services)
		u.Services = &cleaned
	}
	b, err := s.billing.Update(ctx, id, u)
	if err != nil {
		return nil, notFound(err, entityBilling)
	}
	log.Info().Str("billingId", id).Str("paymentStatus", b.PaymentStatus).Msg("billing record updated")
	s.written(ctx)
	return b, nil
}

func (s *BillingService) Delete(ctx context.Context, id string) error {
	if err := s.billing.Delete(ctx, id); err != nil {
		return notFound(err, entityBilling)
	}
	log.Info().Str("billingId", id).Msg("billing record deleted")
	s.written(ctx)
	return nil
}

// ExportCSV writes every billing record, or only those of patientID when set.
func (s *BillingService) ExportCSV(ctx context.Context, w io.Writer, patientID string) error {
	records, err := s.List(ctx)
	if err != nil {
		return err
	}
	if patientID != "" {
		filtered := records[:0]
		for _, r := range records {
			if r.PatientID != nil && *r.PatientID == patientID {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}
	return export.BillingCSV(w, records)
}

func (s *BillingService) InvoicePDF(ctx context.Context, id string) ([]byte, *models.BillingWithPatient, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	pdf, err := export.InvoicePDF(*record)
	if err != nil {
		return nil, nil, err
	}
	return pdf, record, nil
}

func (s *BillingService) InvoiceHTML(ctx context.Context, id string) ([]byte, *models.BillingWithPatient, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	page, err := export.InvoiceHTML(*record)
	if err != nil {
		return nil, nil, err
	}
	return page, record, nil
}

// EmailInvoice sends the PDF invoice to "to", or to the patient's contact
// address when "to" is empty.
func (s *BillingService) EmailInvoice(ctx context.Context, id, to string) (string, error) {
	if s.notifier == nil || !s.notifier.Enabled() {
		return "", ErrMailerDisabled
	}
	pdf, record, err := s.InvoicePDF(ctx, id)
	if err != nil {
		return "", err
	}
	if to == "" && record.PatientID != nil {
		p, err := s.patients.Get(ctx, *record.PatientID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return "", err
		}
		if p != nil {
			to = p.ContactInfo
		}
	}
	addr, ok := EmailAddress(to)
	if !ok {
		return "", invalid("no valid email address for this invoice")
	}
	if err := s.notifier.SendInvoiceEmail(ctx, addr, record, pdf); err != nil {
		return "", err
	}
	return addr, nil
}
