package gormstore

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

var _ store.StatsRepository = (*statsRepo)(nil)

// statsRepo aggregates in SQL. Dates are stored as ISO text, so the month is
// SUBSTR(date, 6, 2) on both Postgres and SQLite.
type statsRepo struct{ db *gorm.DB }

const (
	monthExpr = "SUBSTR(date, 6, 2)"
	// departmentExpr folds blank departments into the Unassigned bucket
	// before patients are counted.
	departmentExpr = "COALESCE(NULLIF(department, ''), '" + models.UnassignedDepartment + "')"
)

func yearPattern(year int) string {
	return fmt.Sprintf("%04d-%%", year)
}

func (r *statsRepo) count(ctx context.Context, model any, op string, query any, args ...any) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(model)
	if query != nil {
		tx = tx.Where(query, args...)
	}
	if err := tx.Count(&n).Error; err != nil {
		return 0, wrap(op, err)
	}
	return n, nil
}

func (r *statsRepo) CountPatients(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Patient{}, "error counting patients", nil)
}

func (r *statsRepo) CountAppointments(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Appointment{}, "error counting appointments", nil)
}

func (r *statsRepo) CountAppointmentsOn(ctx context.Context, date string) (int64, error) {
	return r.count(ctx, &models.Appointment{}, "error counting today's appointments", "date = ?", date)
}

func (r *statsRepo) CountUpcoming(ctx context.Context, from string) (int64, error) {
	return r.count(ctx, &models.Appointment{}, "error counting upcoming appointments",
		"date >= ? AND status = ?", from, models.AppointmentScheduled)
}

func (r *statsRepo) AppointmentsByMonth(ctx context.Context, year int) (map[int]int64, error) {
	var rows []struct {
		Month string
		Total int64
	}
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Select(monthExpr+" AS month, COUNT(*) AS total").
		Where("date LIKE ?", yearPattern(year)).
		Group(monthExpr).
		Scan(&rows).Error
	if err != nil {
		return nil, wrap("error aggregating monthly visits", err)
	}
	out := make(map[int]int64, len(rows))
	for _, row := range rows {
		if m, err := strconv.Atoi(row.Month); err == nil {
			out[m] = row.Total
		}
	}
	return out, nil
}

func (r *statsRepo) RevenueByMonth(ctx context.Context, year int) (map[int]float64, error) {
	var rows []struct {
		Month string
		Total float64
	}
	err := r.db.WithContext(ctx).Model(&models.BillingRecord{}).
		Select(monthExpr+" AS month, SUM(amount) AS total").
		Where("date LIKE ? AND payment_status = ?", yearPattern(year), models.PaymentPaid).
		Group(monthExpr).
		Scan(&rows).Error
	if err != nil {
		return nil, wrap("error aggregating revenue", err)
	}
	out := make(map[int]float64, len(rows))
	for _, row := range rows {
		if m, err := strconv.Atoi(row.Month); err == nil {
			out[m] = row.Total
		}
	}
	return out, nil
}

func (r *statsRepo) PatientsByDepartment(ctx context.Context) ([]models.DepartmentPatients, error) {
	var rows []models.DepartmentPatients
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Select(departmentExpr + " AS department, COUNT(DISTINCT patient_id) AS patients").
		Group(departmentExpr).
		Order(departmentExpr + " ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap("error aggregating departments", err)
	}
	return rows, nil
}

func (r *statsRepo) AppointmentsByStatus(ctx context.Context) ([]models.StatusCount, error) {
	var rows []models.StatusCount
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap("error aggregating appointment status", err)
	}
	return rows, nil
}
