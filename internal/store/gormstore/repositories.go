package gormstore

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// --- patients ---

type patientRepo struct{ db *gorm.DB }

func (r *patientRepo) List(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&patients).Error; err != nil {
		return nil, wrap("error fetching patients", err)
	}
	return patients, nil
}

func (r *patientRepo) Search(ctx context.Context, query string) ([]models.Patient, error) {
	var patients []models.Patient
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("name ASC").
		Find(&patients).Error
	if err != nil {
		return nil, wrap("error searching patients", err)
	}
	return patients, nil
}

func (r *patientRepo) Get(ctx context.Context, id string) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, wrap("error fetching patient", err)
	}
	return &p, nil
}

func (r *patientRepo) Create(ctx context.Context, p *models.Patient) error {
	ensureID(&p.ID)
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return wrap("error creating patient", err)
	}
	return nil
}

func (r *patientRepo) Update(ctx context.Context, id string, u models.PatientUpdate) (*models.Patient, error) {
	var p models.Patient
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return err
		}
		u.Apply(&p)
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, wrap("error updating patient", err)
	}
	return &p, nil
}

func (r *patientRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &models.Patient{}, id, "error deleting patient")
}

// --- appointments ---

type appointmentRepo struct{ db *gorm.DB }

func (r *appointmentRepo) find(ctx context.Context, op string, query any, args ...any) ([]models.Appointment, error) {
	var appointments []models.Appointment
	tx := r.db.WithContext(ctx).Order("date ASC").Order("time ASC")
	if query != nil {
		tx = tx.Where(query, args...)
	}
	if err := tx.Find(&appointments).Error; err != nil {
		return nil, wrap(op, err)
	}
	return appointments, nil
}

func (r *appointmentRepo) List(ctx context.Context) ([]models.Appointment, error) {
	return r.find(ctx, "error fetching appointments", nil)
}

func (r *appointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.find(ctx, "error fetching patient appointments", "patient_id = ?", patientID)
}

func (r *appointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.find(ctx, "error fetching appointments by date", "date = ?", date)
}

func (r *appointmentRepo) ListUpcoming(ctx context.Context, from string) ([]models.Appointment, error) {
	return r.find(ctx, "error fetching upcoming appointments",
		"date >= ? AND status = ?", from, models.AppointmentScheduled)
}

func (r *appointmentRepo) Get(ctx context.Context, id string) (*models.Appointment, error) {
	var a models.Appointment
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, wrap("error fetching appointment", err)
	}
	return &a, nil
}

func (r *appointmentRepo) Create(ctx context.Context, a *models.Appointment) error {
	ensureID(&a.ID)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error; err != nil {
		return wrap("error creating appointment", err)
	}
	return nil
}

func (r *appointmentRepo) Update(ctx context.Context, id string, u models.AppointmentUpdate) (*models.Appointment, error) {
	var a models.Appointment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			return err
		}
		u.Apply(&a)
		return tx.Omit(clause.Associations).Save(&a).Error
	})
	if err != nil {
		return nil, wrap("error updating appointment", err)
	}
	return &a, nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &models.Appointment{}, id, "error deleting appointment")
}

// --- staff ---

type staffRepo struct{ db *gorm.DB }

func (r *staffRepo) List(ctx context.Context) ([]models.Staff, error) {
	var staff []models.Staff
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&staff).Error; err != nil {
		return nil, wrap("error fetching staff", err)
	}
	return staff, nil
}

func (r *staffRepo) Get(ctx context.Context, id string) (*models.Staff, error) {
	var s models.Staff
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, wrap("error fetching staff member", err)
	}
	return &s, nil
}

func (r *staffRepo) Create(ctx context.Context, s *models.Staff) error {
	ensureID(&s.ID)
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return wrap("error creating staff member", err)
	}
	return nil
}

func (r *staffRepo) Update(ctx context.Context, id string, u models.StaffUpdate) (*models.Staff, error) {
	var s models.Staff
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&s, "id = ?", id).Error; err != nil {
			return err
		}
		u.Apply(&s)
		return tx.Save(&s).Error
	})
	if err != nil {
		return nil, wrap("error updating staff member", err)
	}
	return &s, nil
}

func (r *staffRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &models.Staff{}, id, "error deleting staff member")
}

// --- inventory ---

type inventoryRepo struct{ db *gorm.DB }

func (r *inventoryRepo) List(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, wrap("error fetching inventory", err)
	}
	return items, nil
}

func (r *inventoryRepo) ListLowStock(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).
		Where("quantity <= reorder_level").
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, wrap("error fetching low stock items", err)
	}
	return items, nil
}

func (r *inventoryRepo) Get(ctx context.Context, id string) (*models.InventoryItem, error) {
	var i models.InventoryItem
	if err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return nil, wrap("error fetching inventory item", err)
	}
	return &i, nil
}

func (r *inventoryRepo) Create(ctx context.Context, i *models.InventoryItem) error {
	ensureID(&i.ID)
	if err := r.db.WithContext(ctx).Create(i).Error; err != nil {
		return wrap("error creating inventory item", err)
	}
	return nil
}

func (r *inventoryRepo) Update(ctx context.Context, id string, u models.InventoryUpdate) (*models.InventoryItem, error) {
	var i models.InventoryItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&i, "id = ?", id).Error; err != nil {
			return err
		}
		u.Apply(&i)
		return tx.Save(&i).Error
	})
	if err != nil {
		return nil, wrap("error updating inventory item", err)
	}
	return &i, nil
}

func (r *inventoryRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &models.InventoryItem{}, id, "error deleting inventory item")
}

// --- todos ---

type todoRepo struct{ db *gorm.DB }

func (r *todoRepo) List(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&todos).Error; err != nil {
		return nil, wrap("error fetching todos", err)
	}
	return todos, nil
}

func (r *todoRepo) Get(ctx context.Context, id string) (*models.Todo, error) {
	var t models.Todo
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, wrap("error fetching todo", err)
	}
	return &t, nil
}

func (r *todoRepo) Create(ctx context.Context, t *models.Todo) error {
	ensureID(&t.ID)
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return wrap("error creating todo", err)
	}
	return nil
}

func (r *todoRepo) Update(ctx context.Context, id string, u models.TodoUpdate) (*models.Todo, error) {
	var t models.Todo
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			return err
		}
		u.Apply(&t)
		return tx.Save(&t).Error
	})
	if err != nil {
		return nil, wrap("error updating todo", err)
	}
	return &t, nil
}

func (r *todoRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &models.Todo{}, id, "error deleting todo")
}

// --- users ---

type userRepo struct{ db *gorm.DB }

func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("email ASC").Find(&users).Error; err != nil {
		return nil, wrap("error fetching users", err)
	}
	return users, nil
}

func (r *userRepo) Get(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, wrap("error fetching user", err)
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, wrap("error fetching user", err)
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	ensureID(&u.ID)
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return wrap("error creating user", err)
	}
	return nil
}

var (
	_ store.PatientRepository     = (*patientRepo)(nil)
	_ store.AppointmentRepository = (*appointmentRepo)(nil)
	_ store.StaffRepository       = (*staffRepo)(nil)
	_ store.InventoryRepository   = (*inventoryRepo)(nil)
	_ store.TodoRepository        = (*todoRepo)(nil)
	_ store.UserRepository        = (*userRepo)(nil)
)
