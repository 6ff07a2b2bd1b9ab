package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/carewave-api/internal/models"
)

func TestPatientCreateThenGet(t *testing.T) {
	ctx := context.Background()
	svc := NewPatientService(newStore())

	p := &models.Patient{
		Name:              "Akinyi Wanjiku",
		ContactInfo:       "akinyi.wanjiku@gmail.com",
		Address:           "456 Kenyatta Avenue, Nakuru",
		DateOfBirth:       "1990-08-15",
		Gender:            "Female",
		InsuranceProvider: "NHIF",
	}
	require.NoError(t, svc.Create(ctx, p))
	require.NotEmpty(t, p.ID)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.ContactInfo, got.ContactInfo)
	assert.Equal(t, p.Address, got.Address)
	assert.Equal(t, p.DateOfBirth, got.DateOfBirth)
	assert.Equal(t, p.InsuranceProvider, got.InsuranceProvider)
}

func TestPatientCreateValidation(t *testing.T) {
	svc := NewPatientService(newStore())

	err := svc.Create(context.Background(), &models.Patient{Address: "somewhere"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Missing required fields: name, contactInfo", verr.Message)

	err = svc.Create(context.Background(), &models.Patient{Name: "A", ContactInfo: "B", Address: "C", DateOfBirth: "15/08/1990"})
	assert.True(t, errors.As(err, &verr))
}

func TestPatientDeleteThenGet(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	svc := NewPatientService(s)
	p := addPatient(t, s, "Kato Kamau", "kato.kamau@gmail.com")

	require.NoError(t, svc.Delete(ctx, p.ID))

	_, err := svc.Get(ctx, p.ID)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Patient not found", nf.Error())

	err = svc.Delete(ctx, p.ID)
	assert.True(t, errors.As(err, &nf))
}

func TestPatientWithAppointmentsScenario(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	patients := NewPatientService(s)
	appointments := NewAppointmentService(s, nil, fixedNow)

	p := addPatient(t, s, "Wafula Otieno", "wafula.otieno@gmail.com")
	a := &models.Appointment{PatientID: p.ID, Date: "2025-06-01", Time: "10:00:00", Status: models.AppointmentScheduled}
	require.NoError(t, appointments.Create(ctx, a))

	got, err := patients.GetWithAppointments(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	require.Len(t, got.Appointments, 1)
	assert.Equal(t, a.ID, got.Appointments[0].ID)
	assert.Equal(t, "2025-06-01", got.Appointments[0].Date)
	assert.Equal(t, "10:00:00", got.Appointments[0].Time)
}

func TestPatientSearch(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	svc := NewPatientService(s)
	addPatient(t, s, "Wambui Atieno", "555-0101")
	addPatient(t, s, "Okello Mwangi", "555-0102")

	found, err := svc.Search(ctx, "wambui")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Wambui Atieno", found[0].Name)

	_, err = svc.Search(ctx, "  ")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Search query is required", verr.Message)
}

func TestPatientUpdateRejectsBlankRequiredField(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	svc := NewPatientService(s)
	p := addPatient(t, s, "Nafula Omondi", "555-0103")

	blank := ""
	_, err := svc.Update(ctx, p.ID, models.PatientUpdate{Name: &blank})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	name := "Nafula A. Omondi"
	updated, err := svc.Update(ctx, p.ID, models.PatientUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Nafula A. Omondi", updated.Name)
	assert.Equal(t, "555-0103", updated.ContactInfo)
}
