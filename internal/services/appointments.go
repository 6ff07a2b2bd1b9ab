package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

const entityAppointment = "Appointment"

type AppointmentService struct {
	writeHooks

	appointments store.AppointmentRepository
	patients     store.PatientRepository
	notifier     *NotificationService
	now          func() time.Time
}

func NewAppointmentService(s *store.Store, notifier *NotificationService, now func() time.Time) *AppointmentService {
	if now == nil {
		now = time.Now
	}
	return &AppointmentService{appointments: s.Appointments, patients: s.Patients, notifier: notifier, now: now}
}

// AppointmentFilter narrows List. Empty fields match everything.
type AppointmentFilter struct {
	Status string
	Date   string
}

func (s *AppointmentService) today() string {
	return s.now().Format(dateLayout)
}

// withPatients attaches patient names through one lookup map.
func (s *AppointmentService) withPatients(ctx context.Context, appointments []models.Appointment) ([]models.AppointmentWithPatient, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(patients))
	for _, p := range patients {
		names[p.ID] = p.Name
	}
	out := make([]models.AppointmentWithPatient, 0, len(appointments))
	for _, a := range appointments {
		name, ok := names[a.PatientID]
		if !ok {
			name = models.UnknownPatient
		}
		out = append(out, models.AppointmentWithPatient{Appointment: a, PatientName: name})
	}
	return out, nil
}

func (s *AppointmentService) List(ctx context.Context, f AppointmentFilter) ([]models.AppointmentWithPatient, error) {
	var (
		appointments []models.Appointment
		err          error
	)
	if f.Date != "" {
		if !validDate(f.Date) {
			return nil, invalid("date must be a date in YYYY-MM-DD format")
		}
		appointments, err = s.appointments.ListByDate(ctx, f.Date)
	} else {
		appointments, err = s.appointments.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	if f.Status != "" {
		filtered := appointments[:0]
		for _, a := range appointments {
			if a.Status == f.Status {
				filtered = append(filtered, a)
			}
		}
		appointments = filtered
	}
	return s.withPatients(ctx, appointments)
}

func (s *AppointmentService) Today(ctx context.Context) ([]models.AppointmentWithPatient, error) {
	appointments, err := s.appointments.ListByDate(ctx, s.today())
	if err != nil {
		return nil, err
	}
	return s.withPatients(ctx, appointments)
}

func (s *AppointmentService) Upcoming(ctx context.Context) ([]models.AppointmentWithPatient, error) {
	appointments, err := s.appointments.ListUpcoming(ctx, s.today())
	if err != nil {
		return nil, err
	}
	return s.withPatients(ctx, appointments)
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*models.AppointmentWithPatient, error) {
	a, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, entityAppointment)
	}
	out := &models.AppointmentWithPatient{Appointment: *a, PatientName: models.UnknownPatient}
	p, err := s.patients.Get(ctx, a.PatientID)
	switch {
	case err == nil:
		out.PatientName = p.Name
	case !errors.Is(err, store.ErrNotFound):
		return nil, err
	}
	return out, nil
}

func (s *AppointmentService) requirePatient(ctx context.Context, id string) (*models.Patient, error) {
	p, err := s.patients.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, invalid("patientId does not reference an existing patient")
	}
	return p, err
}

func validateAppointment(a *models.Appointment) error {
	if err := requireFields(
		[2]string{"patientId", a.PatientID},
		[2]string{"date", a.Date},
		[2]string{"time", a.Time},
		[2]string{"status", a.Status},
	); err != nil {
		return err
	}
	if !validDate(a.Date) {
		return invalid("date must be a date in YYYY-MM-DD format")
	}
	if !validTime(a.Time) {
		return invalid("time must be in HH:MM or HH:MM:SS format")
	}
	if !models.ValidAppointmentStatus(a.Status) {
		return invalid("status must be one of Scheduled, Completed, Cancelled, No-Show")
	}
	return nil
}

func (s *AppointmentService) Create(ctx context.Context, a *models.Appointment) error {
	a.ID = ""
	if err := validateAppointment(a); err != nil {
		return err
	}
	patient, err := s.requirePatient(ctx, a.PatientID)
	if err != nil {
		return err
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return err
	}
	log.Info().Str("appointmentId", a.ID).Str("patientId", a.PatientID).Str("date", a.Date).Msg("appointment created")
	s.written(ctx)

	if s.notifier != nil && a.Status == models.AppointmentScheduled {
		s.notifier.SendAppointmentConfirmation(patient, a)
	}
	return nil
}

func (s *AppointmentService) Update(ctx context.Context, id string, u models.AppointmentUpdate) (*models.Appointment, error) {
	for _, f := range []struct {
		name string
		v    *string
	}{{"patientId", u.PatientID}, {"date", u.Date}, {"time", u.Time}, {"status", u.Status}} {
		if err := notBlank(f.name, f.v); err != nil {
			return nil, err
		}
	}
	if u.Date != nil && !validDate(*u.Date) {
		return nil, invalid("date must be a date in YYYY-MM-DD format")
	}
	if u.Time != nil && !validTime(*u.Time) {
		return nil, invalid("time must be in HH:MM or HH:MM:SS format")
	}
	if u.Status != nil && !models.ValidAppointmentStatus(*u.Status) {
		return nil, invalid("status must be one of Scheduled, Completed, Cancelled, No-Show")
	}
	if u.PatientID != nil {
		if _, err := s.requirePatient(ctx, *u.PatientID); err != nil {
			return nil, err
		}
	}
	a, err := s.appointments.Update(ctx, id, u)
	if err != nil {
		return nil, notFound(err, entityAppointment)
	}
	log.Info().Str("appointmentId", id).Str("status", a.Status).Msg("appointment updated")
	s.written(ctx)
	return a, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	if err := s.appointments.Delete(ctx, id); err != nil {
		return notFound(err, entityAppointment)
	}
	log.Info().Str("appointmentId", id).Msg("appointment deleted")
	s.written(ctx)
	return nil
}
