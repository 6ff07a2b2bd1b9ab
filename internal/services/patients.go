package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

const entityPatient = "Patient"

type PatientService struct {
	writeHooks

	patients     store.PatientRepository
	appointments store.AppointmentRepository
	billing      store.BillingRepository
}

func NewPatientService(s *store.Store) *PatientService {
	return &PatientService{patients: s.Patients, appointments: s.Appointments, billing: s.Billing}
}

func (s *PatientService) List(ctx context.Context) ([]models.Patient, error) {
	return s.patients.List(ctx)
}

func (s *PatientService) Get(ctx context.Context, id string) (*models.Patient, error) {
	p, err := s.patients.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, entityPatient)
	}
	return p, nil
}

func (s *PatientService) Search(ctx context.Context, query string) ([]models.Patient, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalid("Search query is required")
	}
	return s.patients.Search(ctx, query)
}

func validatePatient(p *models.Patient) error {
	if err := requireFields(
		[2]string{"name", p.Name},
		[2]string{"contactInfo", p.ContactInfo},
		[2]string{"address", p.Address},
	); err != nil {
		return err
	}
	return checkDate("dateOfBirth", p.DateOfBirth)
}

func (s *PatientService) Create(ctx context.Context, p *models.Patient) error {
	p.ID = ""
	if err := validatePatient(p); err != nil {
		return err
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return err
	}
	log.Info().Str("patientId", p.ID).Msg("patient created")
	s.written(ctx)
	return nil
}

func (s *PatientService) Update(ctx context.Context, id string, u models.PatientUpdate) (*models.Patient, error) {
	for _, f := range []struct {
		name string
		v    *string
	}{{"name", u.Name}, {"contactInfo", u.ContactInfo}, {"address", u.Address}} {
		if err := notBlank(f.name, f.v); err != nil {
			return nil, err
		}
	}
	if err := checkDatePtr("dateOfBirth", u.DateOfBirth); err != nil {
		return nil, err
	}
	p, err := s.patients.Update(ctx, id, u)
	if err != nil {
		return nil, notFound(err, entityPatient)
	}
	log.Info().Str("patientId", id).Msg("patient updated")
	s.written(ctx)
	return p, nil
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	if err := s.patients.Delete(ctx, id); err != nil {
		return notFound(err, entityPatient)
	}
	log.Info().Str("patientId", id).Msg("patient deleted")
	s.written(ctx)
	return nil
}

// GetWithAppointments reads the patient and then its appointments.
func (s *PatientService) GetWithAppointments(ctx context.Context, id string) (*models.PatientWithAppointments, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	appointments, err := s.appointments.ListByPatient(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.PatientWithAppointments{Patient: *p, Appointments: appointments}, nil
}

func (s *PatientService) Appointments(ctx context.Context, id string) ([]models.Appointment, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.appointments.ListByPatient(ctx, id)
}

func (s *PatientService) Billing(ctx context.Context, id string) ([]models.BillingRecord, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.billing.ListByPatient(ctx, id)
}
