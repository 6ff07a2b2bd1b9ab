package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/carewave-api/internal/models"
)

func TestAppointmentTodayAndUpcoming(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	svc := NewAppointmentService(s, nil, fixedNow)
	p := addPatient(t, s, "Zawadi Mutua", "555-0104")

	for _, a := range []*models.Appointment{
		{PatientID: p.ID, Date: "2025-05-30", Time: "09:00", Status: models.AppointmentCompleted},
		{PatientID: p.ID, Date: "2025-06-01", Time: "11:30", Status: models.AppointmentScheduled},
		{PatientID: p.ID, Date: "2025-06-01", Time: "15:00", Status: models.AppointmentCancelled},
		{PatientID: p.ID, Date: "2025-06-04", Time: "10:00", Status: models.AppointmentScheduled},
	} {
		require.NoError(t, svc.Create(ctx, a))
	}

	today, err := svc.Today(ctx)
	require.NoError(t, err)
	assert.Len(t, today, 2)
	for _, a := range today {
		assert.Equal(t, "2025-06-01", a.Date)
		assert.Equal(t, "Zawadi Mutua", a.PatientName)
	}

	upcoming, err := svc.Upcoming(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	for _, a := range upcoming {
		assert.Equal(t, models.AppointmentScheduled, a.Status)
	}

	cancelled, err := svc.List(ctx, AppointmentFilter{Status: models.AppointmentCancelled})
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, "15:00", cancelled[0].Time)

	onDate, err := svc.List(ctx, AppointmentFilter{Date: "2025-06-04"})
	require.NoError(t, err)
	assert.Len(t, onDate, 1)

	_, err = svc.List(ctx, AppointmentFilter{Date: "June 4"})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestAppointmentCreateValidation(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	svc := NewAppointmentService(s, nil, fixedNow)
	p := addPatient(t, s, "Chebet Ndungu", "555-0105")

	tests := []struct {
		name string
		in   models.Appointment
		msg  string
	}{
		{"missing fields", models.Appointment{PatientID: p.ID}, "Missing required fields: date, time, status"},
		{"bad date", models.Appointment{PatientID: p.ID, Date: "01/06/2025", Time: "10:00", Status: "Scheduled"}, "date must be a date in YYYY-MM-DD format"},
		{"bad time", models.Appointment{PatientID: p.ID, Date: "2025-06-01", Time: "10am", Status: "Scheduled"}, "time must be in HH:MM or HH:MM:SS format"},
		{"bad status", models.Appointment{PatientID: p.ID, Date: "2025-06-01", Time: "10:00", Status: "Pending"}, "status must be one of Scheduled, Completed, Cancelled, No-Show"},
		{"unknown patient", models.Appointment{PatientID: "missing", Date: "2025-06-01", Time: "10:00", Status: "Scheduled"}, "patientId does not reference an existing patient"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.in
			err := svc.Create(ctx, &a)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.msg, verr.Message)
		})
	}
}

func TestAppointmentUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	svc := NewAppointmentService(s, nil, fixedNow)
	p := addPatient(t, s, "Kiprop Kariuki", "555-0106")
	a := &models.Appointment{PatientID: p.ID, Date: "2025-06-02", Time: "08:15", Status: models.AppointmentScheduled}
	require.NoError(t, svc.Create(ctx, a))

	status := models.AppointmentCompleted
	updated, err := svc.Update(ctx, a.ID, models.AppointmentUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, updated.Status)
	assert.Equal(t, "08:15", updated.Time)

	bogus := "Lost"
	_, err = svc.Update(ctx, a.ID, models.AppointmentUpdate{Status: &bogus})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, err = svc.Get(ctx, a.ID)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Appointment not found", nf.Error())
}

func TestAppointmentConfirmationEmail(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	mailer := newFakeMailer()
	notifier := NewNotificationServiceWithMailer(mailer, "noreply@carewave.com")
	svc := NewAppointmentService(s, notifier, fixedNow)

	p := addPatient(t, s, "Amani Wekesa", "amani.wekesa@gmail.com")
	a := &models.Appointment{PatientID: p.ID, Date: "2025-06-03", Time: "14:00", Status: models.AppointmentScheduled, Doctor: "Dr. Otieno"}
	require.NoError(t, svc.Create(ctx, a))

	select {
	case <-mailer.done:
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation email was not sent")
	}
	sent := mailer.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"amani.wekesa@gmail.com"}, sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Appointment confirmation"}, sent[0].GetHeader("Subject"))

	// Phone-number contacts get no email.
	other := addPatient(t, s, "Baraka Juma", "555-0107")
	require.NoError(t, svc.Create(ctx, &models.Appointment{PatientID: other.ID, Date: "2025-06-03", Time: "15:00", Status: models.AppointmentScheduled}))
	select {
	case <-mailer.done:
		t.Fatal("unexpected email for a phone contact")
	case <-time.After(50 * time.Millisecond):
	}
}
