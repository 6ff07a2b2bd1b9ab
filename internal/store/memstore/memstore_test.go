package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
	"github.com/harentsoaR/carewave-api/internal/store/storetest"
)

func TestMemstore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) *store.Store { return New() })
}

func TestBillingRecordsAreCopied(t *testing.T) {
	ctx := context.Background()
	s := New()
	b := &models.BillingRecord{Amount: 10, PaymentStatus: models.PaymentPaid, Date: "2025-01-01", Services: []string{"Consultation"}}
	require.NoError(t, s.Billing.Create(ctx, b))

	b.Services[0] = "changed by caller"
	got, err := s.Billing.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Consultation"}, got.Services)
}

func TestMonthOf(t *testing.T) {
	m, ok := monthOf("2025-07-14", 2025)
	assert.True(t, ok)
	assert.Equal(t, 7, m)

	_, ok = monthOf("2024-07-14", 2025)
	assert.False(t, ok)
	_, ok = monthOf("2025-", 2025)
	assert.False(t, ok)
}
