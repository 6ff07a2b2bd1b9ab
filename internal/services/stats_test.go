package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/carewave-api/internal/models"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	gets int
	sets int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	appointments := NewAppointmentService(s, nil, fixedNow)
	billing := NewBillingService(s, nil)

	p := addPatient(t, s, "Kendi Njoroge", "555-0113")
	q := addPatient(t, s, "Juma Mwende", "555-0114")
	for _, a := range []*models.Appointment{
		{PatientID: p.ID, Date: "2025-01-10", Time: "09:00", Status: models.AppointmentCompleted, Department: "Cardiology"},
		{PatientID: p.ID, Date: "2025-06-01", Time: "10:00", Status: models.AppointmentScheduled, Department: "Cardiology"},
		{PatientID: q.ID, Date: "2025-06-05", Time: "11:00", Status: models.AppointmentScheduled},
		{PatientID: q.ID, Date: "2024-12-20", Time: "11:00", Status: models.AppointmentNoShow, Department: "Pediatrics"},
	} {
		require.NoError(t, appointments.Create(ctx, a))
	}
	_, err := billing.Create(ctx, models.BillingInput{PatientID: &p.ID, Amount: ptr(120.5), PaymentStatus: models.PaymentPaid, Date: "2025-01-12"})
	require.NoError(t, err)
	_, err = billing.Create(ctx, models.BillingInput{PatientID: &p.ID, Amount: ptr(80.0), PaymentStatus: models.PaymentPending, Date: "2025-01-13"})
	require.NoError(t, err)

	svc := NewStatsService(s.Stats, nil, 0, fixedNow)
	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalPatients)
	assert.EqualValues(t, 4, stats.TotalAppointments)
	assert.EqualValues(t, 1, stats.TodayAppointments)
	assert.EqualValues(t, 2, stats.UpcomingAppointments)

	require.Len(t, stats.MonthlyPatientVisits, 12)
	assert.Equal(t, models.MonthlyVisits{Month: "Jan", Visits: 1}, stats.MonthlyPatientVisits[0])
	assert.Equal(t, models.MonthlyVisits{Month: "Jun", Visits: 2}, stats.MonthlyPatientVisits[5])
	assert.Equal(t, models.MonthlyVisits{Month: "Dec", Visits: 0}, stats.MonthlyPatientVisits[11])

	require.Len(t, stats.RevenueData, 12)
	assert.Equal(t, 120.5, stats.RevenueData[0].Amount)
	assert.Zero(t, stats.RevenueData[1].Amount)

	assert.Equal(t, []models.StatusCount{
		{Status: "Scheduled", Count: 2},
		{Status: "Completed", Count: 1},
		{Status: "Cancelled", Count: 0},
		{Status: "No-Show", Count: 1},
	}, stats.AppointmentStatus)

	assert.Equal(t, []models.DepartmentPatients{
		{Department: "Cardiology", Patients: 1},
		{Department: "Pediatrics", Patients: 1},
		{Department: "Unassigned", Patients: 1},
	}, stats.DepartmentDistribution)
}

func TestDashboardUsesCache(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	c := newMemoryCache()
	svc := NewStatsService(s.Stats, c, time.Minute, fixedNow)

	first, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, c.sets)

	addPatient(t, s, "Cached Out", "555-0115")
	second, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.TotalPatients, second.TotalPatients)
	assert.Equal(t, 1, c.sets)

	require.NoError(t, c.Delete(ctx, statsCacheKey))
	third, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, third.TotalPatients)
}

func TestDashboardCacheDroppedOnWrites(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	c := newMemoryCache()
	stats := NewStatsService(s.Stats, c, time.Hour, fixedNow)
	patients := NewPatientService(s)
	appointments := NewAppointmentService(s, nil, fixedNow)
	billing := NewBillingService(s, nil)
	stats.Watch(patients, appointments, billing)

	before, err := stats.Dashboard(ctx)
	require.NoError(t, err)
	assert.Zero(t, before.TotalPatients)

	p := &models.Patient{Name: "Wairimu Chebet", ContactInfo: "555-0120", Address: "12 Moi Avenue"}
	require.NoError(t, patients.Create(ctx, p))
	afterPatient, err := stats.Dashboard(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, afterPatient.TotalPatients)

	a := &models.Appointment{PatientID: p.ID, Date: "2025-06-01", Time: "10:00", Status: models.AppointmentScheduled, Department: "Dental"}
	require.NoError(t, appointments.Create(ctx, a))
	afterAppointment, err := stats.Dashboard(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, afterAppointment.TodayAppointments)

	b, err := billing.Create(ctx, models.BillingInput{PatientID: &p.ID, Amount: ptr(60.0), PaymentStatus: models.PaymentPaid, Date: "2025-06-01"})
	require.NoError(t, err)
	afterBilling, err := stats.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60.0, afterBilling.RevenueData[5].Amount)

	require.NoError(t, billing.Delete(ctx, b.ID))
	require.NoError(t, patients.Delete(ctx, p.ID))
	afterDelete, err := stats.Dashboard(ctx)
	require.NoError(t, err)
	assert.Zero(t, afterDelete.TotalPatients)
	assert.Zero(t, afterDelete.RevenueData[5].Amount)
}

func TestDepartmentSeries(t *testing.T) {
	got := departmentSeries([]models.DepartmentPatients{
		{Department: "", Patients: 2},
		{Department: "Dental", Patients: 3},
		{Department: "Cardiology", Patients: 3},
	})
	assert.Equal(t, []models.DepartmentPatients{
		{Department: "Cardiology", Patients: 3},
		{Department: "Dental", Patients: 3},
		{Department: "Unassigned", Patients: 2},
	}, got)
}

func TestStatusSeriesKeepsUnknownStatusesLast(t *testing.T) {
	got := statusSeries([]models.StatusCount{{Status: "Rescheduled", Count: 1}, {Status: "Completed", Count: 4}})
	require.Len(t, got, 5)
	assert.Equal(t, "Scheduled", got[0].Status)
	assert.EqualValues(t, 4, got[1].Count)
	assert.Equal(t, models.StatusCount{Status: "Rescheduled", Count: 1}, got[4])
}

// failingStats fails the first query the dashboard runs.
type failingStats struct{}

func (failingStats) CountPatients(context.Context) (int64, error) {
	return 0, errors.New("connection refused")
}

func (failingStats) CountAppointments(context.Context) (int64, error) { return 0, nil }

func (failingStats) CountAppointmentsOn(context.Context, string) (int64, error) { return 0, nil }

func (failingStats) CountUpcoming(context.Context, string) (int64, error) { return 0, nil }

func (failingStats) AppointmentsByMonth(context.Context, int) (map[int]int64, error) {
	return nil, nil
}

func (failingStats) RevenueByMonth(context.Context, int) (map[int]float64, error) {
	return nil, nil
}

func (failingStats) PatientsByDepartment(context.Context) ([]models.DepartmentPatients, error) {
	return nil, nil
}

func (failingStats) AppointmentsByStatus(context.Context) ([]models.StatusCount, error) {
	return nil, nil
}

func TestDashboardPropagatesStoreErrors(t *testing.T) {
	svc := NewStatsService(failingStats{}, nil, time.Minute, fixedNow)
	_, err := svc.Dashboard(context.Background())
	assert.EqualError(t, err, "connection refused")
}

func TestReportDocuments(t *testing.T) {
	svc := NewStatsService(newStore().Stats, nil, 0, fixedNow)
	pdf, err := svc.ReportPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	page, err := svc.ReportHTML(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(page), ReportTitle)
}
