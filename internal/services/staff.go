package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

const entityStaff = "Staff member"

type StaffService struct {
	staff store.StaffRepository
}

func NewStaffService(s *store.Store) *StaffService {
	return &StaffService{staff: s.Staff}
}

func (s *StaffService) List(ctx context.Context) ([]models.Staff, error) {
	return s.staff.List(ctx)
}

func (s *StaffService) Get(ctx context.Context, id string) (*models.Staff, error) {
	m, err := s.staff.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, entityStaff)
	}
	return m, nil
}

func (s *StaffService) Create(ctx context.Context, m *models.Staff) error {
	m.ID = ""
	if err := requireFields(
		[2]string{"name", m.Name},
		[2]string{"role", m.Role},
		[2]string{"department", m.Department},
		[2]string{"email", m.Email},
	); err != nil {
		return err
	}
	if err := checkDate("joiningDate", m.JoiningDate); err != nil {
		return err
	}
	if err := s.staff.Create(ctx, m); err != nil {
		return err
	}
	log.Info().Str("staffId", m.ID).Str("department", m.Department).Msg("staff member created")
	return nil
}

func (s *StaffService) Update(ctx context.Context, id string, u models.StaffUpdate) (*models.Staff, error) {
	for _, f := range []struct {
		name string
		v    *string
	}{{"name", u.Name}, {"role", u.Role}, {"department", u.Department}, {"email", u.Email}} {
		if err := notBlank(f.name, f.v); err != nil {
			return nil, err
		}
	}
	if err := checkDatePtr("joiningDate", u.JoiningDate); err != nil {
		return nil, err
	}
	m, err := s.staff.Update(ctx, id, u)
	if err != nil {
		return nil, notFound(err, entityStaff)
	}
	log.Info().Str("staffId", id).Msg("staff member updated")
	return m, nil
}

func (s *StaffService) Delete(ctx context.Context, id string) error {
	if err := s.staff.Delete(ctx, id); err != nil {
		return notFound(err, entityStaff)
	}
	log.Info().Str("staffId", id).Msg("staff member deleted")
	return nil
}
