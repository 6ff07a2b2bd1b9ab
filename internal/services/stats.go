package services

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/carewave-api/internal/cache"
	"github.com/harentsoaR/carewave-api/internal/export"
	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

const (
	statsCacheKey = "carewave:dashboard:stats"
	ReportTitle   = "Clinic Analytics Report"
)

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type StatsService struct {
	stats store.StatsRepository
	cache cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewStatsService(stats store.StatsRepository, c cache.Cache, ttl time.Duration, now func() time.Time) *StatsService {
	if c == nil {
		c = cache.Noop{}
	}
	if now == nil {
		now = time.Now
	}
	return &StatsService{stats: stats, cache: c, ttl: ttl, now: now}
}

// Dashboard returns the cached statistics when fresh, otherwise recomputes them.
func (s *StatsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	if s.ttl > 0 {
		if raw, ok, err := s.cache.Get(ctx, statsCacheKey); err != nil {
			log.Warn().Err(err).Msg("stats cache read failed")
		} else if ok {
			var cached models.DashboardStats
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.ttl > 0 {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, raw, s.ttl); err != nil {
				log.Warn().Err(err).Msg("stats cache write failed")
			}
		}
	}
	return stats, nil
}

// Invalidate drops the cached statistics so the next Dashboard recomputes.
func (s *StatsService) Invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		log.Warn().Err(err).Msg("stats cache invalidation failed")
	}
}

// Watch invalidates the cached statistics after every write on sources.
func (s *StatsService) Watch(sources ...interface{ OnWrite(func(context.Context)) }) {
	for _, src := range sources {
		src.OnWrite(s.Invalidate)
	}
}

func (s *StatsService) compute(ctx context.Context) (*models.DashboardStats, error) {
	now := s.now()
	today := now.Format(dateLayout)
	out := &models.DashboardStats{}
	var err error

	if out.TotalPatients, err = s.stats.CountPatients(ctx); err != nil {
		return nil, err
	}
	if out.TotalAppointments, err = s.stats.CountAppointments(ctx); err != nil {
		return nil, err
	}
	if out.TodayAppointments, err = s.stats.CountAppointmentsOn(ctx, today); err != nil {
		return nil, err
	}
	if out.UpcomingAppointments, err = s.stats.CountUpcoming(ctx, today); err != nil {
		return nil, err
	}

	visits, err := s.stats.AppointmentsByMonth(ctx, now.Year())
	if err != nil {
		return nil, err
	}
	revenue, err := s.stats.RevenueByMonth(ctx, now.Year())
	if err != nil {
		return nil, err
	}
	out.MonthlyPatientVisits = make([]models.MonthlyVisits, 0, 12)
	out.RevenueData = make([]models.MonthlyRevenue, 0, 12)
	for i, name := range monthNames {
		out.MonthlyPatientVisits = append(out.MonthlyPatientVisits, models.MonthlyVisits{Month: name, Visits: visits[i+1]})
		out.RevenueData = append(out.RevenueData, models.MonthlyRevenue{Month: name, Amount: revenue[i+1]})
	}

	departments, err := s.stats.PatientsByDepartment(ctx)
	if err != nil {
		return nil, err
	}
	out.DepartmentDistribution = departmentSeries(departments)

	statuses, err := s.stats.AppointmentsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	out.AppointmentStatus = statusSeries(statuses)

	return out, nil
}

// departmentSeries folds blank departments into "Unassigned" and orders by
// patient count, then name.
func departmentSeries(rows []models.DepartmentPatients) []models.DepartmentPatients {
	merged := map[string]int64{}
	for _, r := range rows {
		name := r.Department
		if name == "" {
			name = models.UnassignedDepartment
		}
		merged[name] += r.Patients
	}
	out := make([]models.DepartmentPatients, 0, len(merged))
	for name, n := range merged {
		out = append(out, models.DepartmentPatients{Department: name, Patients: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Patients != out[j].Patients {
			return out[i].Patients > out[j].Patients
		}
		return out[i].Department < out[j].Department
	})
	return out
}

func statusSeries(rows []models.StatusCount) []models.StatusCount {
	counts := map[string]int64{}
	for _, r := range rows {
		counts[r.Status] += r.Count
	}
	out := make([]models.StatusCount, 0, len(models.AppointmentStatuses)+len(counts))
	for _, status := range models.AppointmentStatuses {
		out = append(out, models.StatusCount{Status: status, Count: counts[status]})
		delete(counts, status)
	}
	var extra []string
	for status := range counts {
		extra = append(extra, status)
	}
	sort.Strings(extra)
	for _, status := range extra {
		out = append(out, models.StatusCount{Status: status, Count: counts[status]})
	}
	return out
}

func (s *StatsService) ReportPDF(ctx context.Context) ([]byte, error) {
	stats, err := s.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	return export.ReportPDF(ReportTitle, stats, s.now())
}

func (s *StatsService) ReportHTML(ctx context.Context) ([]byte, error) {
	stats, err := s.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	return export.ReportHTML(ReportTitle, stats, s.now())
}
