package memstore

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/harentsoaR/carewave-api/internal/models"
)

type statsRepo struct{ d *db }

func (r *statsRepo) CountPatients(ctx context.Context) (int64, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	return int64(len(r.d.patients)), nil
}

func (r *statsRepo) CountAppointments(ctx context.Context) (int64, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	return int64(len(r.d.appointments)), nil
}

func (r *statsRepo) CountAppointmentsOn(ctx context.Context, date string) (int64, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	var n int64
	for _, a := range r.d.appointments {
		if a.Date == date {
			n++
		}
	}
	return n, nil
}

func (r *statsRepo) CountUpcoming(ctx context.Context, from string) (int64, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	var n int64
	for _, a := range r.d.appointments {
		if a.Date >= from && a.Status == models.AppointmentScheduled {
			n++
		}
	}
	return n, nil
}

// monthOf returns the month of an ISO date when it falls in year.
func monthOf(date string, year int) (int, bool) {
	prefix := fmt.Sprintf("%04d-", year)
	if !strings.HasPrefix(date, prefix) || len(date) < 7 {
		return 0, false
	}
	m, err := strconv.Atoi(date[5:7])
	if err != nil || m < 1 || m > 12 {
		return 0, false
	}
	return m, true
}

func (r *statsRepo) AppointmentsByMonth(ctx context.Context, year int) (map[int]int64, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := map[int]int64{}
	for _, a := range r.d.appointments {
		if m, ok := monthOf(a.Date, year); ok {
			out[m]++
		}
	}
	return out, nil
}

func (r *statsRepo) RevenueByMonth(ctx context.Context, year int) (map[int]float64, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := map[int]float64{}
	for _, b := range r.d.billing {
		if b.PaymentStatus != models.PaymentPaid {
			continue
		}
		if m, ok := monthOf(b.Date, year); ok {
			out[m] += b.Amount
		}
	}
	return out, nil
}

func (r *statsRepo) PatientsByDepartment(ctx context.Context) ([]models.DepartmentPatients, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	seen := map[string]map[string]struct{}{}
	for _, a := range r.d.appointments {
		dept := a.Department
		if dept == "" {
			dept = models.UnassignedDepartment
		}
		if seen[dept] == nil {
			seen[dept] = map[string]struct{}{}
		}
		seen[dept][a.PatientID] = struct{}{}
	}
	out := make([]models.DepartmentPatients, 0, len(seen))
	for dept, patients := range seen {
		out = append(out, models.DepartmentPatients{Department: dept, Patients: int64(len(patients))})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out, nil
}

func (r *statsRepo) AppointmentsByStatus(ctx context.Context) ([]models.StatusCount, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	counts := map[string]int64{}
	for _, a := range r.d.appointments {
		counts[a.Status]++
	}
	out := make([]models.StatusCount, 0, len(counts))
	for status, n := range counts {
		out = append(out, models.StatusCount{Status: status, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out, nil
}
