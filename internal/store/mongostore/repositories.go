package mongostore

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

var (
	byName      = bson.D{{Key: "name", Value: 1}}
	byDateTime  = bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}
	byNewest    = bson.D{{Key: "created_at", Value: -1}}
	byDateDesc  = bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}}
	byEmail     = bson.D{{Key: "email", Value: 1}}
	everyRecord = bson.M{}
)

func stamp(created, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

// --- patients ---

type patientRepo struct{ col collection[models.Patient] }

func (r *patientRepo) List(ctx context.Context) ([]models.Patient, error) {
	return r.col.find(ctx, "error fetching patients", everyRecord, byName)
}

func (r *patientRepo) Search(ctx context.Context, query string) ([]models.Patient, error) {
	filter := bson.M{"name": bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}}
	return r.col.find(ctx, "error searching patients", filter, byName)
}

func (r *patientRepo) Get(ctx context.Context, id string) (*models.Patient, error) {
	return r.col.get(ctx, "error fetching patient", id)
}

func (r *patientRepo) Create(ctx context.Context, p *models.Patient) error {
	p.ID = newID(p.ID)
	stamp(&p.CreatedAt, &p.UpdatedAt)
	return r.col.insert(ctx, "error creating patient", p)
}

func (r *patientRepo) Update(ctx context.Context, id string, u models.PatientUpdate) (*models.Patient, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Apply(p)
	stamp(&p.CreatedAt, &p.UpdatedAt)
	if err := r.col.replace(ctx, "error updating patient", id, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *patientRepo) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, "error deleting patient", id)
}

// --- appointments ---

type appointmentRepo struct{ col collection[models.Appointment] }

func (r *appointmentRepo) List(ctx context.Context) ([]models.Appointment, error) {
	return r.col.find(ctx, "error fetching appointments", everyRecord, byDateTime)
}

func (r *appointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.col.find(ctx, "error fetching patient appointments", bson.M{"patient_id": patientID}, byDateTime)
}

func (r *appointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.col.find(ctx, "error fetching appointments by date", bson.M{"date": date}, byDateTime)
}

func (r *appointmentRepo) ListUpcoming(ctx context.Context, from string) ([]models.Appointment, error) {
	filter := bson.M{"date": bson.M{"$gte": from}, "status": models.AppointmentScheduled}
	return r.col.find(ctx, "error fetching upcoming appointments", filter, byDateTime)
}

func (r *appointmentRepo) Get(ctx context.Context, id string) (*models.Appointment, error) {
	return r.col.get(ctx, "error fetching appointment", id)
}

func (r *appointmentRepo) Create(ctx context.Context, a *models.Appointment) error {
	a.ID = newID(a.ID)
	stamp(&a.CreatedAt, &a.UpdatedAt)
	return r.col.insert(ctx, "error creating appointment", a)
}

func (r *appointmentRepo) Update(ctx context.Context, id string, u models.AppointmentUpdate) (*models.Appointment, error) {
	a, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Apply(a)
	stamp(&a.CreatedAt, &a.UpdatedAt)
	if err := r.col.replace(ctx, "error updating appointment", id, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, "error deleting appointment", id)
}

// --- staff ---

type staffRepo struct{ col collection[models.Staff] }

func (r *staffRepo) List(ctx context.Context) ([]models.Staff, error) {
	return r.col.find(ctx, "error fetching staff", everyRecord, byName)
}

func (r *staffRepo) Get(ctx context.Context, id string) (*models.Staff, error) {
	return r.col.get(ctx, "error fetching staff member", id)
}

func (r *staffRepo) Create(ctx context.Context, s *models.Staff) error {
	s.ID = newID(s.ID)
	stamp(&s.CreatedAt, &s.UpdatedAt)
	return r.col.insert(ctx, "error creating staff member", s)
}

func (r *staffRepo) Update(ctx context.Context, id string, u models.StaffUpdate) (*models.Staff, error) {
	s, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Apply(s)
	stamp(&s.CreatedAt, &s.UpdatedAt)
	if err := r.col.replace(ctx, "error updating staff member", id, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *staffRepo) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, "error deleting staff member", id)
}

// --- inventory ---

type inventoryRepo struct{ col collection[models.InventoryItem] }

func (r *inventoryRepo) List(ctx context.Context) ([]models.InventoryItem, error) {
	return r.col.find(ctx, "error fetching inventory", everyRecord, byName)
}

func (r *inventoryRepo) ListLowStock(ctx context.Context) ([]models.InventoryItem, error) {
	filter := bson.M{"$expr": bson.M{"$lte": bson.A{"$quantity", "$reorder_level"}}}
	return r.col.find(ctx, "error fetching low stock items", filter, byName)
}

func (r *inventoryRepo) Get(ctx context.Context, id string) (*models.InventoryItem, error) {
	return r.col.get(ctx, "error fetching inventory item", id)
}

func (r *inventoryRepo) Create(ctx context.Context, i *models.InventoryItem) error {
	i.ID = newID(i.ID)
	stamp(&i.CreatedAt, &i.UpdatedAt)
	return r.col.insert(ctx, "error creating inventory item", i)
}

func (r *inventoryRepo) Update(ctx context.Context, id string, u models.InventoryUpdate) (*models.InventoryItem, error) {
	i, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Apply(i)
	stamp(&i.CreatedAt, &i.UpdatedAt)
	if err := r.col.replace(ctx, "error updating inventory item", id, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (r *inventoryRepo) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, "error deleting inventory item", id)
}

// --- billing ---

type billingRepo struct{ col collection[models.BillingRecord] }

func normalizeServices(records ...*models.BillingRecord) {
	for _, b := range records {
		if b.Services == nil {
			b.Services = []string{}
		}
	}
}

func (r *billingRepo) list(ctx context.Context, op string, filter bson.M) ([]models.BillingRecord, error) {
	records, err := r.col.find(ctx, op, filter, byDateDesc)
	if err != nil {
		return nil, err
	}
	for i := range records {
		normalizeServices(&records[i])
	}
	return records, nil
}

func (r *billingRepo) List(ctx context.Context) ([]models.BillingRecord, error) {
	return r.list(ctx, "error fetching billing records", everyRecord)
}

func (r *billingRepo) ListByPatient(ctx context.Context, patientID string) ([]models.BillingRecord, error) {
	return r.list(ctx, "error fetching patient billing records", bson.M{"patient_id": patientID})
}

func (r *billingRepo) Get(ctx context.Context, id string) (*models.BillingRecord, error) {
	b, err := r.col.get(ctx, "error fetching billing record", id)
	if err != nil {
		return nil, err
	}
	normalizeServices(b)
	return b, nil
}

func (r *billingRepo) Create(ctx context.Context, b *models.BillingRecord) error {
	b.ID = newID(b.ID)
	normalizeServices(b)
	stamp(&b.CreatedAt, &b.UpdatedAt)
	return r.col.insert(ctx, "error creating billing record", b)
}

func (r *billingRepo) Update(ctx context.Context, id string, u models.BillingUpdate) (*models.BillingRecord, error) {
	b, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Apply(b)
	normalizeServices(b)
	stamp(&b.CreatedAt, &b.UpdatedAt)
	if err := r.col.replace(ctx, "error updating billing record", id, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *billingRepo) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, "error deleting billing record", id)
}

// --- todos ---

type todoRepo struct{ col collection[models.Todo] }

func (r *todoRepo) List(ctx context.Context) ([]models.Todo, error) {
	return r.col.find(ctx, "error fetching todos", everyRecord, byNewest)
}

func (r *todoRepo) Get(ctx context.Context, id string) (*models.Todo, error) {
	return r.col.get(ctx, "error fetching todo", id)
}

func (r *todoRepo) Create(ctx context.Context, t *models.Todo) error {
	t.ID = newID(t.ID)
	stamp(&t.CreatedAt, &t.UpdatedAt)
	return r.col.insert(ctx, "error creating todo", t)
}

func (r *todoRepo) Update(ctx context.Context, id string, u models.TodoUpdate) (*models.Todo, error) {
	t, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Apply(t)
	stamp(&t.CreatedAt, &t.UpdatedAt)
	if err := r.col.replace(ctx, "error updating todo", id, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *todoRepo) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, "error deleting todo", id)
}

// --- users ---

type userRepo struct{ col collection[models.User] }

func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	return r.col.find(ctx, "error fetching users", everyRecord, byEmail)
}

func (r *userRepo) Get(ctx context.Context, id string) (*models.User, error) {
	return r.col.get(ctx, "error fetching user", id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.col.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, wrap("error fetching user", err)
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	u.ID = newID(u.ID)
	stamp(&u.CreatedAt, &u.UpdatedAt)
	return r.col.insert(ctx, "error creating user", u)
}

var (
	_ store.PatientRepository     = (*patientRepo)(nil)
	_ store.AppointmentRepository = (*appointmentRepo)(nil)
	_ store.StaffRepository       = (*staffRepo)(nil)
	_ store.InventoryRepository   = (*inventoryRepo)(nil)
	_ store.BillingRepository     = (*billingRepo)(nil)
	_ store.TodoRepository        = (*todoRepo)(nil)
	_ store.UserRepository        = (*userRepo)(nil)
)
