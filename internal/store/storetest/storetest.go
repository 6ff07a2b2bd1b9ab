// Package storetest holds the behaviour every store.Store implementation must
// share. Backends run it from their own tests.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

// Run exercises a fresh store from newStore in each subtest.
func Run(t *testing.T, newStore func(t *testing.T) *store.Store) {
	t.Run("Patients", func(t *testing.T) { testPatients(t, newStore(t)) })
	t.Run("Appointments", func(t *testing.T) { testAppointments(t, newStore(t)) })
	t.Run("PatientDeleteCascades", func(t *testing.T) { testPatientDelete(t, newStore(t)) })
	t.Run("Billing", func(t *testing.T) { testBilling(t, newStore(t)) })
	t.Run("Inventory", func(t *testing.T) { testInventory(t, newStore(t)) })
	t.Run("StaffAndTodos", func(t *testing.T) { testStaffAndTodos(t, newStore(t)) })
	t.Run("Users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("Stats", func(t *testing.T) { testStats(t, newStore(t)) })
	t.Run("StatsUnassignedDepartment", func(t *testing.T) { testUnassignedDepartment(t, newStore(t)) })
}

func createPatient(t *testing.T, s *store.Store, name string) *models.Patient {
	t.Helper()
	p := &models.Patient{Name: name, ContactInfo: "555-0100", Address: "1 Clinic Road"}
	require.NoError(t, s.Patients.Create(context.Background(), p))
	require.NotEmpty(t, p.ID)
	return p
}

func createAppointment(t *testing.T, s *store.Store, patientID, date, tm, status, department string) *models.Appointment {
	t.Helper()
	a := &models.Appointment{PatientID: patientID, Date: date, Time: tm, Status: status, Department: department, Doctor: "Dr. Smith"}
	require.NoError(t, s.Appointments.Create(context.Background(), a))
	require.NotEmpty(t, a.ID)
	return a
}

func createBilling(t *testing.T, s *store.Store, patientID *string, amount float64, status, date string, services ...string) *models.BillingRecord {
	t.Helper()
	b := &models.BillingRecord{
		PatientID:     patientID,
		Amount:        amount,
		PaymentStatus: status,
		Date:          date,
		InvoiceNumber: "INV-2025-TEST",
		Services:      services,
	}
	require.NoError(t, s.Billing.Create(context.Background(), b))
	require.NotEmpty(t, b.ID)
	return b
}

func testPatients(t *testing.T, s *store.Store) {
	ctx := context.Background()

	wafula := createPatient(t, s, "Wafula Otieno")
	createPatient(t, s, "Akinyi Wanjiku")

	got, err := s.Patients.Get(ctx, wafula.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wafula Otieno", got.Name)
	assert.Equal(t, "555-0100", got.ContactInfo)

	all, err := s.Patients.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Akinyi Wanjiku", all[0].Name, "patients are listed by name")

	found, err := s.Patients.Search(ctx, "OTIENO")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, wafula.ID, found[0].ID)

	history := "Hypertension"
	updated, err := s.Patients.Update(ctx, wafula.ID, models.PatientUpdate{MedicalHistory: &history})
	require.NoError(t, err)
	assert.Equal(t, "Hypertension", updated.MedicalHistory)
	assert.Equal(t, "Wafula Otieno", updated.Name)

	_, err = s.Patients.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Patients.Update(ctx, "missing", models.PatientUpdate{MedicalHistory: &history})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Patients.Delete(ctx, "missing"), store.ErrNotFound)

	require.NoError(t, s.Patients.Delete(ctx, wafula.ID))
	_, err = s.Patients.Get(ctx, wafula.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testAppointments(t *testing.T, s *store.Store) {
	ctx := context.Background()
	p1 := createPatient(t, s, "Kato Kamau")
	p2 := createPatient(t, s, "Amina Waweru")

	late := createAppointment(t, s, p1.ID, "2025-06-02", "09:00:00", models.AppointmentScheduled, "Cardiology")
	early := createAppointment(t, s, p1.ID, "2025-06-01", "14:00:00", models.AppointmentScheduled, "Cardiology")
	morning := createAppointment(t, s, p2.ID, "2025-06-01", "08:30:00", models.AppointmentCompleted, "Neurology")

	all, err := s.Appointments.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{morning.ID, early.ID, late.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	byPatient, err := s.Appointments.ListByPatient(ctx, p1.ID)
	require.NoError(t, err)
	assert.Len(t, byPatient, 2)

	onDate, err := s.Appointments.ListByDate(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Len(t, onDate, 2)

	upcoming, err := s.Appointments.ListUpcoming(ctx, "2025-06-01")
	require.NoError(t, err)
	require.Len(t, upcoming, 2, "completed appointments are not upcoming")
	assert.Equal(t, early.ID, upcoming[0].ID)

	status := models.AppointmentCancelled
	updated, err := s.Appointments.Update(ctx, late.ID, models.AppointmentUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCancelled, updated.Status)
	assert.Equal(t, "2025-06-02", updated.Date)

	require.NoError(t, s.Appointments.Delete(ctx, late.ID))
	_, err = s.Appointments.Get(ctx, late.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testPatientDelete(t *testing.T, s *store.Store) {
	ctx := context.Background()
	p := createPatient(t, s, "Ochen Mutua")
	a := createAppointment(t, s, p.ID, "2025-06-01", "10:00:00", models.AppointmentScheduled, "Pulmonology")
	b := createBilling(t, s, &p.ID, 180, models.PaymentPending, "2025-06-01", "Consultation")

	require.NoError(t, s.Patients.Delete(ctx, p.ID))

	_, err := s.Appointments.Get(ctx, a.ID)
	assert.ErrorIs(t, err, store.ErrNotFound, "appointments are removed with their patient")

	record, err := s.Billing.Get(ctx, b.ID)
	require.NoError(t, err, "billing records outlive their patient")
	assert.Nil(t, record.PatientID)
	assert.Equal(t, []string{"Consultation"}, record.Services)
}

func testBilling(t *testing.T, s *store.Store) {
	ctx := context.Background()
	p := createPatient(t, s, "Nafula Omondi")

	older := createBilling(t, s, &p.ID, 195, models.PaymentPending, "2025-03-08", "Joint Assessment", "X-Ray")
	newer := createBilling(t, s, nil, 90, models.PaymentPaid, "2025-03-09")

	got, err := s.Billing.Get(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Joint Assessment", "X-Ray"}, got.Services)
	require.NotNil(t, got.PatientID)
	assert.Equal(t, p.ID, *got.PatientID)

	all, err := s.Billing.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID, "billing is listed newest first")
	assert.Empty(t, all[0].Services)

	mine, err := s.Billing.ListByPatient(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, older.ID, mine[0].ID)

	paid := models.PaymentPaid
	updated, err := s.Billing.Update(ctx, older.ID, models.BillingUpdate{PaymentStatus: &paid})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, []string{"Joint Assessment", "X-Ray"}, updated.Services, "services survive an update that omits them")

	services := []string{"ECG"}
	_, err = s.Billing.Update(ctx, older.ID, models.BillingUpdate{Services: &services})
	require.NoError(t, err)
	got, err = s.Billing.Get(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"ECG"}, got.Services)

	require.NoError(t, s.Billing.Delete(ctx, older.ID))
	_, err = s.Billing.Get(ctx, older.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Billing.Delete(ctx, older.ID), store.ErrNotFound)
}

func testInventory(t *testing.T, s *store.Store) {
	ctx := context.Background()
	gloves := &models.InventoryItem{Name: "Surgical Gloves", Quantity: 500, ReorderLevel: 100, Category: "Supplies"}
	insulin := &models.InventoryItem{Name: "Insulin", Quantity: 20, ReorderLevel: 20, Category: "Medication"}
	require.NoError(t, s.Inventory.Create(ctx, gloves))
	require.NoError(t, s.Inventory.Create(ctx, insulin))

	low, err := s.Inventory.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, insulin.ID, low[0].ID)

	qty := 50
	_, err = s.Inventory.Update(ctx, gloves.ID, models.InventoryUpdate{Quantity: &qty})
	require.NoError(t, err)
	low, err = s.Inventory.ListLowStock(ctx)
	require.NoError(t, err)
	assert.Len(t, low, 2)

	all, err := s.Inventory.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Insulin", all[0].Name)
}

func testStaffAndTodos(t *testing.T, s *store.Store) {
	ctx := context.Background()
	m := &models.Staff{Name: "Lisa Davis", Role: "Pharmacist", Department: "Pharmacy", Email: "lisa.davis@carewave.com"}
	require.NoError(t, s.Staff.Create(ctx, m))
	dept := "Front Desk"
	updated, err := s.Staff.Update(ctx, m.ID, models.StaffUpdate{Department: &dept})
	require.NoError(t, err)
	assert.Equal(t, "Front Desk", updated.Department)
	require.NoError(t, s.Staff.Delete(ctx, m.ID))
	_, err = s.Staff.Get(ctx, m.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	todo := &models.Todo{Title: "Order more surgical gloves"}
	require.NoError(t, s.Todos.Create(ctx, todo))
	done := true
	updatedTodo, err := s.Todos.Update(ctx, todo.ID, models.TodoUpdate{Completed: &done})
	require.NoError(t, err)
	assert.True(t, updatedTodo.Completed)
	assert.Equal(t, "Order more surgical gloves", updatedTodo.Title)

	todos, err := s.Todos.List(ctx)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func testUsers(t *testing.T, s *store.Store) {
	ctx := context.Background()
	u := &models.User{Email: "admin@carewave.com", Name: "Admin", Role: models.RoleAdministrator, PasswordHash: "hash"}
	require.NoError(t, s.Users.Create(ctx, u))

	got, err := s.Users.GetByEmail(ctx, "admin@carewave.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)

	dup := &models.User{Email: "admin@carewave.com", Name: "Other", Role: models.RoleDoctor, PasswordHash: "x"}
	assert.ErrorIs(t, s.Users.Create(ctx, dup), store.ErrDuplicate)

	_, err = s.Users.GetByEmail(ctx, "nobody@carewave.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testStats(t *testing.T, s *store.Store) {
	ctx := context.Background()
	p1 := createPatient(t, s, "Wafula Otieno")
	p2 := createPatient(t, s, "Akinyi Wanjiku")

	createAppointment(t, s, p1.ID, "2025-01-10", "10:00:00", models.AppointmentCompleted, "Cardiology")
	createAppointment(t, s, p1.ID, "2025-01-20", "10:00:00", models.AppointmentCompleted, "Cardiology")
	createAppointment(t, s, p2.ID, "2025-03-05", "11:00:00", models.AppointmentScheduled, "Cardiology")
	createAppointment(t, s, p2.ID, "2025-03-06", "11:00:00", models.AppointmentNoShow, "Pediatrics")
	createAppointment(t, s, p2.ID, "2024-12-30", "11:00:00", models.AppointmentScheduled, "Pediatrics")

	createBilling(t, s, &p1.ID, 150, models.PaymentPaid, "2025-01-15")
	createBilling(t, s, &p1.ID, 50.5, models.PaymentPaid, "2025-01-16")
	createBilling(t, s, &p2.ID, 999, models.PaymentPending, "2025-01-17")
	createBilling(t, s, &p2.ID, 200, models.PaymentPaid, "2024-01-17")

	n, err := s.Stats.CountPatients(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = s.Stats.CountAppointments(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	n, err = s.Stats.CountAppointmentsOn(ctx, "2025-03-05")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = s.Stats.CountUpcoming(ctx, "2025-03-01")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	visits, err := s.Stats.AppointmentsByMonth(ctx, 2025)
	require.NoError(t, err)
	assert.EqualValues(t, 2, visits[1])
	assert.EqualValues(t, 2, visits[3])
	assert.EqualValues(t, 0, visits[12])

	revenue, err := s.Stats.RevenueByMonth(ctx, 2025)
	require.NoError(t, err)
	assert.InDelta(t, 200.5, revenue[1], 0.001, "only paid billing counts as revenue")
	assert.Len(t, revenue, 1)

	departments, err := s.Stats.PatientsByDepartment(ctx)
	require.NoError(t, err)
	byDept := map[string]int64{}
	for _, d := range departments {
		byDept[d.Department] = d.Patients
	}
	assert.Equal(t, map[string]int64{"Cardiology": 2, "Pediatrics": 1}, byDept)

	statuses, err := s.Stats.AppointmentsByStatus(ctx)
	require.NoError(t, err)
	byStatus := map[string]int64{}
	for _, st := range statuses {
		byStatus[st.Status] = st.Count
	}
	assert.Equal(t, map[string]int64{
		models.AppointmentCompleted: 2,
		models.AppointmentScheduled: 2,
		models.AppointmentNoShow:    1,
	}, byStatus)
}

func testUnassignedDepartment(t *testing.T, s *store.Store) {
	ctx := context.Background()
	p1 := createPatient(t, s, "Achieng Wanjiru")
	p2 := createPatient(t, s, "Baraka Mwangi")

	createAppointment(t, s, p1.ID, "2025-02-01", "09:00:00", models.AppointmentScheduled, "")
	createAppointment(t, s, p1.ID, "2025-02-02", "09:00:00", models.AppointmentScheduled, models.UnassignedDepartment)
	createAppointment(t, s, p2.ID, "2025-02-03", "09:00:00", models.AppointmentScheduled, "")

	departments, err := s.Stats.PatientsByDepartment(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.DepartmentPatients{
		{Department: models.UnassignedDepartment, Patients: 2},
	}, departments, "a patient seen under both blank and Unassigned counts once")
}
