// Package memstore keeps every table in process memory. It backs the tests
// and DB_DRIVER=memory; contents vanish with the process.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

type db struct {
	mu           sync.RWMutex
	patients     map[string]models.Patient
	appointments map[string]models.Appointment
	staff        map[string]models.Staff
	inventory    map[string]models.InventoryItem
	billing      map[string]models.BillingRecord
	todos        map[string]models.Todo
	users        map[string]models.User
	now          func() time.Time
}

// New returns a Store whose repositories share one in-memory database.
func New() *store.Store {
	d := &db{
		patients:     map[string]models.Patient{},
		appointments: map[string]models.Appointment{},
		staff:        map[string]models.Staff{},
		inventory:    map[string]models.InventoryItem{},
		billing:      map[string]models.BillingRecord{},
		todos:        map[string]models.Todo{},
		users:        map[string]models.User{},
		now:          time.Now,
	}
	return &store.Store{
		Patients:     &patientRepo{d},
		Appointments: &appointmentRepo{d},
		Staff:        &staffRepo{d},
		Inventory:    &inventoryRepo{d},
		Billing:      &billingRepo{d},
		Todos:        &todoRepo{d},
		Users:        &userRepo{d},
		Stats:        &statsRepo{d},
		Close:        func(context.Context) error { return nil },
	}
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// --- patients ---

type patientRepo struct{ d *db }

func (r *patientRepo) List(ctx context.Context) ([]models.Patient, error) {
	return r.filter(func(models.Patient) bool { return true }), nil
}

func (r *patientRepo) Search(ctx context.Context, query string) ([]models.Patient, error) {
	q := strings.ToLower(query)
	return r.filter(func(p models.Patient) bool {
		return strings.Contains(strings.ToLower(p.Name), q)
	}), nil
}

func (r *patientRepo) filter(keep func(models.Patient) bool) []models.Patient {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := make([]models.Patient, 0, len(r.d.patients))
	for _, p := range r.d.patients {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *patientRepo) Get(ctx context.Context, id string) (*models.Patient, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	p, ok := r.d.patients[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (r *patientRepo) Create(ctx context.Context, p *models.Patient) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	p.ID = newID(p.ID)
	p.CreatedAt = r.d.now()
	p.UpdatedAt = p.CreatedAt
	r.d.patients[p.ID] = *p
	return nil
}

func (r *patientRepo) Update(ctx context.Context, id string, u models.PatientUpdate) (*models.Patient, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	p, ok := r.d.patients[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	u.Apply(&p)
	p.UpdatedAt = r.d.now()
	r.d.patients[id] = p
	return &p, nil
}

// Delete mirrors the relational schema: appointments go with the patient and
// billing records lose their patient reference.
func (r *patientRepo) Delete(ctx context.Context, id string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.patients[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.d.patients, id)
	for aid, a := range r.d.appointments {
		if a.PatientID == id {
			delete(r.d.appointments, aid)
		}
	}
	for bid, b := range r.d.billing {
		if b.PatientID != nil && *b.PatientID == id {
			b.PatientID = nil
			r.d.billing[bid] = b
		}
	}
	return nil
}

// --- appointments ---

type appointmentRepo struct{ d *db }

func (r *appointmentRepo) filter(keep func(models.Appointment) bool) []models.Appointment {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := make([]models.Appointment, 0)
	for _, a := range r.d.appointments {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

func (r *appointmentRepo) List(ctx context.Context) ([]models.Appointment, error) {
	return r.filter(func(models.Appointment) bool { return true }), nil
}

func (r *appointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.filter(func(a models.Appointment) bool { return a.PatientID == patientID }), nil
}

func (r *appointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.filter(func(a models.Appointment) bool { return a.Date == date }), nil
}

func (r *appointmentRepo) ListUpcoming(ctx context.Context, from string) ([]models.Appointment, error) {
	return r.filter(func(a models.Appointment) bool {
		return a.Date >= from && a.Status == models.AppointmentScheduled
	}), nil
}

func (r *appointmentRepo) Get(ctx context.Context, id string) (*models.Appointment, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	a, ok := r.d.appointments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &a, nil
}

func (r *appointmentRepo) Create(ctx context.Context, a *models.Appointment) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	a.ID = newID(a.ID)
	a.CreatedAt = r.d.now()
	a.UpdatedAt = a.CreatedAt
	r.d.appointments[a.ID] = *a
	return nil
}

func (r *appointmentRepo) Update(ctx context.Context, id string, u models.AppointmentUpdate) (*models.Appointment, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	a, ok := r.d.appointments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	u.Apply(&a)
	a.UpdatedAt = r.d.now()
	r.d.appointments[id] = a
	return &a, nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.appointments[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.d.appointments, id)
	return nil
}

// --- staff ---

type staffRepo struct{ d *db }

func (r *staffRepo) List(ctx context.Context) ([]models.Staff, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := make([]models.Staff, 0, len(r.d.staff))
	for _, s := range r.d.staff {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *staffRepo) Get(ctx context.Context, id string) (*models.Staff, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	s, ok := r.d.staff[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &s, nil
}

func (r *staffRepo) Create(ctx context.Context, s *models.Staff) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	s.ID = newID(s.ID)
	s.CreatedAt = r.d.now()
	s.UpdatedAt = s.CreatedAt
	r.d.staff[s.ID] = *s
	return nil
}

func (r *staffRepo) Update(ctx context.Context, id string, u models.StaffUpdate) (*models.Staff, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	s, ok := r.d.staff[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	u.Apply(&s)
	s.UpdatedAt = r.d.now()
	r.d.staff[id] = s
	return &s, nil
}

func (r *staffRepo) Delete(ctx context.Context, id string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.staff[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.d.staff, id)
	return nil
}

// --- inventory ---

type inventoryRepo struct{ d *db }

func (r *inventoryRepo) filter(keep func(models.InventoryItem) bool) []models.InventoryItem {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := make([]models.InventoryItem, 0)
	for _, i := range r.d.inventory {
		if keep(i) {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *inventoryRepo) List(ctx context.Context) ([]models.InventoryItem, error) {
	return r.filter(func(models.InventoryItem) bool { return true }), nil
}

func (r *inventoryRepo) ListLowStock(ctx context.Context) ([]models.InventoryItem, error) {
	return r.filter(func(i models.InventoryItem) bool { return i.Quantity <= i.ReorderLevel }), nil
}

func (r *inventoryRepo) Get(ctx context.Context, id string) (*models.InventoryItem, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	i, ok := r.d.inventory[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &i, nil
}

func (r *inventoryRepo) Create(ctx context.Context, i *models.InventoryItem) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	i.ID = newID(i.ID)
	i.CreatedAt = r.d.now()
	i.UpdatedAt = i.CreatedAt
	r.d.inventory[i.ID] = *i
	return nil
}

func (r *inventoryRepo) Update(ctx context.Context, id string, u models.InventoryUpdate) (*models.InventoryItem, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	i, ok := r.d.inventory[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	u.Apply(&i)
	i.UpdatedAt = r.d.now()
	r.d.inventory[id] = i
	return &i, nil
}

func (r *inventoryRepo) Delete(ctx context.Context, id string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.inventory[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.d.inventory, id)
	return nil
}

// --- billing ---

type billingRepo struct{ d *db }

func cloneBilling(b models.BillingRecord) models.BillingRecord {
	b.Services = append([]string{}, b.Services...)
	if b.PatientID != nil {
		id := *b.PatientID
		b.PatientID = &id
	}
	return b
}

func (r *billingRepo) filter(keep func(models.BillingRecord) bool) []models.BillingRecord {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := make([]models.BillingRecord, 0)
	for _, b := range r.d.billing {
		if keep(b) {
			out = append(out, cloneBilling(b))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *billingRepo) List(ctx context.Context) ([]models.BillingRecord, error) {
	return r.filter(func(models.BillingRecord) bool { return true }), nil
}

func (r *billingRepo) ListByPatient(ctx context.Context, patientID string) ([]models.BillingRecord, error) {
	return r.filter(func(b models.BillingRecord) bool {
		return b.PatientID != nil && *b.PatientID == patientID
	}), nil
}

func (r *billingRepo) Get(ctx context.Context, id string) (*models.BillingRecord, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	b, ok := r.d.billing[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	b = cloneBilling(b)
	return &b, nil
}

func (r *billingRepo) Create(ctx context.Context, b *models.BillingRecord) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	b.ID = newID(b.ID)
	b.CreatedAt = r.d.now()
	b.UpdatedAt = b.CreatedAt
	if b.Services == nil {
		b.Services = []string{}
	}
	r.d.billing[b.ID] = cloneBilling(*b)
	return nil
}

func (r *billingRepo) Update(ctx context.Context, id string, u models.BillingUpdate) (*models.BillingRecord, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	b, ok := r.d.billing[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	b = cloneBilling(b)
	u.Apply(&b)
	b.UpdatedAt = r.d.now()
	r.d.billing[id] = b
	out := cloneBilling(b)
	return &out, nil
}

func (r *billingRepo) Delete(ctx context.Context, id string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.billing[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.d.billing, id)
	return nil
}

// --- todos ---

type todoRepo struct{ d *db }

func (r *todoRepo) List(ctx context.Context) ([]models.Todo, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := make([]models.Todo, 0, len(r.d.todos))
	for _, t := range r.d.todos {
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *todoRepo) Get(ctx context.Context, id string) (*models.Todo, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	t, ok := r.d.todos[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

func (r *todoRepo) Create(ctx context.Context, t *models.Todo) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	t.ID = newID(t.ID)
	t.CreatedAt = r.d.now()
	t.UpdatedAt = t.CreatedAt
	r.d.todos[t.ID] = *t
	return nil
}

func (r *todoRepo) Update(ctx context.Context, id string, u models.TodoUpdate) (*models.Todo, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	t, ok := r.d.todos[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	u.Apply(&t)
	t.UpdatedAt = r.d.now()
	r.d.todos[id] = t
	return &t, nil
}

func (r *todoRepo) Delete(ctx context.Context, id string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.todos[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.d.todos, id)
	return nil
}

// --- users ---

type userRepo struct{ d *db }

func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := make([]models.User, 0, len(r.d.users))
	for _, u := range r.d.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *userRepo) Get(ctx context.Context, id string) (*models.User, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	u, ok := r.d.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	for _, u := range r.d.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for _, existing := range r.d.users {
		if existing.Email == u.Email {
			return store.ErrDuplicate
		}
	}
	u.ID = newID(u.ID)
	u.CreatedAt = r.d.now()
	u.UpdatedAt = u.CreatedAt
	r.d.users[u.ID] = *u
	return nil
}
