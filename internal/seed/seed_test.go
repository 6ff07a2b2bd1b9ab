package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/carewave-api/internal/services"
	"github.com/harentsoaR/carewave-api/internal/store/memstore"
	"github.com/harentsoaR/carewave-api/internal/utils"
)

func TestDataSeedsOnce(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	now := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

	counts, err := Data(ctx, s, now, false)
	require.NoError(t, err)
	assert.Equal(t, Counts{
		Patients:     len(patients),
		Appointments: len(appointments),
		Staff:        len(staff),
		Inventory:    len(inventory),
		Billing:      len(billing),
		Todos:        len(todos),
	}, *counts)

	again, err := Data(ctx, s, now, false)
	require.NoError(t, err)
	assert.Equal(t, Counts{}, *again)

	records, err := s.Billing.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(billing))
	numbers := map[string]bool{}
	for _, r := range records {
		require.NotNil(t, r.PatientID)
		numbers[r.InvoiceNumber] = true
	}
	assert.True(t, numbers["INV-2025-001"])
	assert.Len(t, numbers, len(billing))

	revenue, err := s.Stats.RevenueByMonth(ctx, 2025)
	require.NoError(t, err)
	assert.NotEmpty(t, revenue)
}

func TestUsers(t *testing.T) {
	utils.BcryptCost = 4
	ctx := context.Background()
	auth := services.NewAuthService(memstore.New().Users, utils.NewTokenManager("seed-secret"))

	users, err := Users(ctx, auth, "admin-password", "")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.True(t, users[0].Created)
	assert.False(t, users[0].Generated)
	assert.Empty(t, users[0].Password)
	assert.True(t, users[1].Generated)
	assert.Len(t, users[1].Password, 16)

	_, err = auth.Login(ctx, "doctor@carewave.com", users[1].Password)
	require.NoError(t, err)

	again, err := Users(ctx, auth, "", "")
	require.NoError(t, err)
	for _, u := range again {
		assert.False(t, u.Created)
		assert.Empty(t, u.Password)
	}
}
