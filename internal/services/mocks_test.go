package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

var errStoreDown = errors.New("error fetching patient: connection reset")

var _ store.PatientRepository = (*mockPatientRepository)(nil)

// mockPatientRepository answers from its Func fields; unset fields behave
// like an empty store.
type mockPatientRepository struct {
	ListFunc   func(ctx context.Context) ([]models.Patient, error)
	GetFunc    func(ctx context.Context, id string) (*models.Patient, error)
	DeleteFunc func(ctx context.Context, id string) error

	GetCallCount int32
}

func (m *mockPatientRepository) List(ctx context.Context) ([]models.Patient, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockPatientRepository) Get(ctx context.Context, id string) (*models.Patient, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockPatientRepository) Search(ctx context.Context, query string) ([]models.Patient, error) {
	return nil, nil
}

func (m *mockPatientRepository) Create(ctx context.Context, p *models.Patient) error {
	return nil
}

func (m *mockPatientRepository) Update(ctx context.Context, id string, u models.PatientUpdate) (*models.Patient, error) {
	return nil, store.ErrNotFound
}

func (m *mockPatientRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return store.ErrNotFound
}

func TestStoreErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	repo := &mockPatientRepository{
		ListFunc:   func(context.Context) ([]models.Patient, error) { return nil, errStoreDown },
		GetFunc:    func(context.Context, string) (*models.Patient, error) { return nil, errStoreDown },
		DeleteFunc: func(context.Context, string) error { return errStoreDown },
	}
	s.Patients = repo

	_, err := NewPatientService(s).Get(ctx, "p-1")
	assert.ErrorIs(t, err, errStoreDown)
	var nf *NotFoundError
	assert.False(t, errors.As(err, &nf))

	assert.ErrorIs(t, NewPatientService(s).Delete(ctx, "p-1"), errStoreDown)

	_, err = NewAppointmentService(s, nil, fixedNow).List(ctx, AppointmentFilter{})
	assert.ErrorIs(t, err, errStoreDown)

	_, err = NewBillingService(s, nil).List(ctx)
	assert.ErrorIs(t, err, errStoreDown)

	err = NewAppointmentService(s, nil, fixedNow).Create(ctx, &models.Appointment{PatientID: "p-1", Date: "2025-06-01", Time: "10:00", Status: models.AppointmentScheduled})
	assert.ErrorIs(t, err, errStoreDown)
	assert.EqualValues(t, 2, atomic.LoadInt32(&repo.GetCallCount))
}

func TestGetWithAppointmentsStopsWhenPatientMissing(t *testing.T) {
	s := newStore()
	repo := &mockPatientRepository{}
	s.Patients = repo

	_, err := NewPatientService(s).GetWithAppointments(context.Background(), "ghost")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Patient not found", nf.Error())
	assert.EqualValues(t, 1, repo.GetCallCount)
}
