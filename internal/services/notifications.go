package services

import (
	"context"
	"fmt"
	"io"
	"net/mail"
	"strings"

	"github.com/go-gomail/gomail"
	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/carewave-api/internal/config"
	"github.com/harentsoaR/carewave-api/internal/export"
	"github.com/harentsoaR/carewave-api/internal/models"
)

// Mailer is satisfied by *gomail.Dialer.
type Mailer interface {
	DialAndSend(m ...*gomail.Message) error
}

// NotificationService delivers clinic email over SMTP.
type NotificationService struct {
	mailer Mailer
	from   string
}

// NewNotificationService returns a disabled service when no SMTP host is set.
func NewNotificationService(cfg config.SMTPConfig) *NotificationService {
	if !cfg.Enabled() {
		return &NotificationService{from: cfg.From}
	}
	return &NotificationService{
		mailer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// NewNotificationServiceWithMailer is used by tests.
func NewNotificationServiceWithMailer(m Mailer, from string) *NotificationService {
	return &NotificationService{mailer: m, from: from}
}

func (s *NotificationService) Enabled() bool {
	return s != nil && s.mailer != nil
}

// EmailAddress extracts the bare address from raw when it parses as one.
func EmailAddress(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return "", false
	}
	return addr.Address, true
}

func (s *NotificationService) SendInvoiceEmail(ctx context.Context, to string, record *models.BillingWithPatient, pdf []byte) error {
	if !s.Enabled() {
		return ErrMailerDisabled
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body := fmt.Sprintf(
		"Dear %s,\n\nPlease find attached invoice %s dated %s for a total of $%.2f.\nPayment status: %s.\n\n%s\n%s\n",
		record.PatientName,
		record.InvoiceNumber,
		export.FormatDate(record.Date),
		record.Amount,
		record.PaymentStatus,
		export.ClinicName,
		export.BillingEmail,
	)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Invoice "+record.InvoiceNumber)
	m.SetBody("text/plain", body)
	m.Attach("invoice-"+record.InvoiceNumber+".pdf", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))

	if err := s.mailer.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending invoice email: %w", err)
	}
	log.Info().Str("billingId", record.ID).Str("to", to).Msg("invoice email sent")
	return nil
}

// SendAppointmentConfirmation emails the patient in the background when their
// contact info is an email address. It never blocks the caller.
func (s *NotificationService) SendAppointmentConfirmation(patient *models.Patient, apt *models.Appointment) {
	if !s.Enabled() || patient == nil || apt == nil {
		return
	}
	to, ok := EmailAddress(patient.ContactInfo)
	if !ok {
		log.Debug().Str("patientId", patient.ID).Msg("confirmation not sent: contact info is not an email address")
		return
	}

	body := fmt.Sprintf(
		"Dear %s,\n\nYour appointment on %s at %s is confirmed.",
		patient.Name,
		export.FormatDate(apt.Date),
		apt.Time,
	)
	if apt.Doctor != "" {
		body += "\nDoctor: " + apt.Doctor
	}
	if apt.Department != "" {
		body += "\nDepartment: " + apt.Department
	}
	body += "\n\n" + export.ClinicName + "\n"

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Appointment confirmation")
	m.SetBody("text/plain", body)

	go func(appointmentID string) {
		if err := s.mailer.DialAndSend(m); err != nil {
			log.Error().Err(err).Str("appointmentId", appointmentID).Msg("failed to send appointment confirmation")
			return
		}
		log.Info().Str("appointmentId", appointmentID).Msg("appointment confirmation sent")
	}(apt.ID)
}
