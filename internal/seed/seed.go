// Package seed loads the CareWave demo dataset and demo credentials.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/services"
	"github.com/harentsoaR/carewave-api/internal/store"
	"github.com/harentsoaR/carewave-api/internal/utils"
)

const dateLayout = "2006-01-02"

// Counts reports how many rows Data inserted per table.
type Counts struct {
	Patients     int
	Appointments int
	Staff        int
	Inventory    int
	Billing      int
	Todos        int
}

// Data inserts the demo dataset. It does nothing when patients already exist
// unless force is set. Appointment and billing dates are relative to now.
func Data(ctx context.Context, s *store.Store, now time.Time, force bool) (*Counts, error) {
	existing, err := s.Stats.CountPatients(ctx)
	if err != nil {
		return nil, err
	}
	if existing > 0 && !force {
		log.Info().Int64("patients", existing).Msg("database already seeded, skipping demo data")
		return &Counts{}, nil
	}

	counts := &Counts{}
	patientIDs := make([]string, 0, len(patients))
	for _, p := range patients {
		if err := s.Patients.Create(ctx, &p); err != nil {
			return nil, fmt.Errorf("error seeding patient %s: %w", p.Name, err)
		}
		patientIDs = append(patientIDs, p.ID)
		counts.Patients++
	}

	for _, a := range appointments {
		appointment := models.Appointment{
			PatientID:  patientIDs[a.patient],
			Date:       now.AddDate(0, 0, a.dayOffset).Format(dateLayout),
			Time:       a.time,
			Status:     a.status,
			Doctor:     a.doctor,
			Department: a.department,
			Notes:      a.notes,
		}
		if err := s.Appointments.Create(ctx, &appointment); err != nil {
			return nil, fmt.Errorf("error seeding appointment: %w", err)
		}
		counts.Appointments++
	}

	for _, m := range staff {
		if err := s.Staff.Create(ctx, &m); err != nil {
			return nil, fmt.Errorf("error seeding staff member %s: %w", m.Name, err)
		}
		counts.Staff++
	}

	for _, item := range inventory {
		if err := s.Inventory.Create(ctx, &item); err != nil {
			return nil, fmt.Errorf("error seeding inventory item %s: %w", item.Name, err)
		}
		counts.Inventory++
	}

	for i, b := range billing {
		patientID := patientIDs[b.patient]
		record := models.BillingRecord{
			PatientID:        &patientID,
			Amount:           b.amount,
			PaymentStatus:    b.status,
			Date:             now.AddDate(0, 0, -b.dayOffset).Format(dateLayout),
			InsuranceDetails: b.insurance,
			InvoiceNumber:    fmt.Sprintf("INV-%d-%03d", now.Year(), i+1),
			Services:         append([]string(nil), b.services...),
		}
		if err := s.Billing.Create(ctx, &record); err != nil {
			return nil, fmt.Errorf("error seeding billing record: %w", err)
		}
		counts.Billing++
	}

	for _, t := range todos {
		if err := s.Todos.Create(ctx, &t); err != nil {
			return nil, fmt.Errorf("error seeding todo: %w", err)
		}
		counts.Todos++
	}

	log.Info().
		Int("patients", counts.Patients).
		Int("appointments", counts.Appointments).
		Int("staff", counts.Staff).
		Int("inventory", counts.Inventory).
		Int("billing", counts.Billing).
		Int("todos", counts.Todos).
		Msg("demo data seeded")
	return counts, nil
}

// DemoUser is a credential created by Users. Password is only set when it was
// generated, so the caller can show it once.
type DemoUser struct {
	Email     string
	Role      string
	Password  string
	Generated bool
	Created   bool
}

// Users creates the demo administrator and doctor accounts. An empty password
// is replaced by a random one. Existing accounts are left untouched.
func Users(ctx context.Context, auth *services.AuthService, adminPassword, doctorPassword string) ([]DemoUser, error) {
	demo := []struct {
		email, name, role, password string
	}{
		{"admin@carewave.com", "Admin User", models.RoleAdministrator, adminPassword},
		{"doctor@carewave.com", "Dr. Smith", models.RoleDoctor, doctorPassword},
	}

	out := make([]DemoUser, 0, len(demo))
	for _, d := range demo {
		u := DemoUser{Email: d.email, Role: d.role}
		password := d.password
		if password == "" {
			generated, err := utils.GeneratePassword(16)
			if err != nil {
				return nil, err
			}
			password = generated
			u.Password = generated
			u.Generated = true
		}

		_, err := auth.CreateUser(ctx, services.NewUser{Email: d.email, Name: d.name, Role: d.role, Password: password})
		switch {
		case errors.Is(err, store.ErrDuplicate):
			log.Info().Str("email", d.email).Msg("demo user already exists")
			u.Password, u.Generated = "", false
		case err != nil:
			return nil, fmt.Errorf("error seeding user %s: %w", d.email, err)
		default:
			u.Created = true
		}
		out = append(out, u)
	}
	return out, nil
}
