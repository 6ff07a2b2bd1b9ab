// Package store defines the repository contracts the services depend on.
// Implementations live in memstore, gormstore and mongostore.
package store

import (
	"context"
	"errors"

	"github.com/harentsoaR/carewave-api/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type PatientRepository interface {
	List(ctx context.Context) ([]models.Patient, error)
	Get(ctx context.Context, id string) (*models.Patient, error)
	// Search matches query case-insensitively against the patient name.
	Search(ctx context.Context, query string) ([]models.Patient, error)
	Create(ctx context.Context, p *models.Patient) error
	Update(ctx context.Context, id string, u models.PatientUpdate) (*models.Patient, error)
	Delete(ctx context.Context, id string) error
}

type AppointmentRepository interface {
	List(ctx context.Context) ([]models.Appointment, error)
	Get(ctx context.Context, id string) (*models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	// ListUpcoming returns Scheduled appointments dated on or after from.
	ListUpcoming(ctx context.Context, from string) ([]models.Appointment, error)
	Create(ctx context.Context, a *models.Appointment) error
	Update(ctx context.Context, id string, u models.AppointmentUpdate) (*models.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type StaffRepository interface {
	List(ctx context.Context) ([]models.Staff, error)
	Get(ctx context.Context, id string) (*models.Staff, error)
	Create(ctx context.Context, s *models.Staff) error
	Update(ctx context.Context, id string, u models.StaffUpdate) (*models.Staff, error)
	Delete(ctx context.Context, id string) error
}

type InventoryRepository interface {
	List(ctx context.Context) ([]models.InventoryItem, error)
	ListLowStock(ctx context.Context) ([]models.InventoryItem, error)
	Get(ctx context.Context, id string) (*models.InventoryItem, error)
	Create(ctx context.Context, i *models.InventoryItem) error
	Update(ctx context.Context, id string, u models.InventoryUpdate) (*models.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

type BillingRepository interface {
	List(ctx context.Context) ([]models.BillingRecord, error)
	Get(ctx context.Context, id string) (*models.BillingRecord, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.BillingRecord, error)
	Create(ctx context.Context, b *models.BillingRecord) error
	Update(ctx context.Context, id string, u models.BillingUpdate) (*models.BillingRecord, error)
	Delete(ctx context.Context, id string) error
}

type TodoRepository interface {
	List(ctx context.Context) ([]models.Todo, error)
	Get(ctx context.Context, id string) (*models.Todo, error)
	Create(ctx context.Context, t *models.Todo) error
	Update(ctx context.Context, id string, u models.TodoUpdate) (*models.Todo, error)
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}

// StatsRepository runs the aggregation queries behind the dashboard.
// Month keys are 1..12 of the requested year.
type StatsRepository interface {
	CountPatients(ctx context.Context) (int64, error)
	CountAppointments(ctx context.Context) (int64, error)
	CountAppointmentsOn(ctx context.Context, date string) (int64, error)
	CountUpcoming(ctx context.Context, from string) (int64, error)
	AppointmentsByMonth(ctx context.Context, year int) (map[int]int64, error)
	RevenueByMonth(ctx context.Context, year int) (map[int]float64, error)
	PatientsByDepartment(ctx context.Context) ([]models.DepartmentPatients, error)
	AppointmentsByStatus(ctx context.Context) ([]models.StatusCount, error)
}

// Store bundles one implementation of every repository.
type Store struct {
	Patients     PatientRepository
	Appointments AppointmentRepository
	Staff        StaffRepository
	Inventory    InventoryRepository
	Billing      BillingRepository
	Todos        TodoRepository
	Users        UserRepository
	Stats        StatsRepository

	// Close releases the underlying connection, if any.
	Close func(ctx context.Context) error
}
