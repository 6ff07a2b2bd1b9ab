package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockLevelFor(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		reorderLevel int
		level        string
		percentage   int
	}{
		{"at reorder level", 100, 100, StockLow, 33},
		{"below reorder level", 20, 100, StockLow, 7},
		{"just above reorder level", 120, 100, StockMedium, 40},
		{"half of full stock", 150, 100, StockGood, 50},
		{"full stock", 300, 100, StockGood, 100},
		{"over full stock is capped", 900, 100, StockGood, 100},
		{"no reorder level, empty", 0, 0, StockLow, 0},
		{"no reorder level, stocked", 5, 0, StockGood, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, pct := StockLevelFor(tt.quantity, tt.reorderLevel)
			assert.Equal(t, tt.level, level)
			assert.Equal(t, tt.percentage, pct)
		})
	}
}

func TestInventoryUpdateApply(t *testing.T) {
	expiry := "2026-01-01"
	item := InventoryItem{Name: "Gauze", Quantity: 10, ReorderLevel: 5, ExpiryDate: &expiry}

	qty := 40
	empty := ""
	InventoryUpdate{Quantity: &qty, ExpiryDate: &empty}.Apply(&item)

	assert.Equal(t, 40, item.Quantity)
	assert.Equal(t, 5, item.ReorderLevel)
	assert.Equal(t, "Gauze", item.Name)
	assert.Nil(t, item.ExpiryDate)
}

func TestBillingUpdateApply(t *testing.T) {
	patientID := "p1"
	record := BillingRecord{PatientID: &patientID, Amount: 10, Services: []string{"Consultation"}}

	none := ""
	services := []string{"X-Ray", "ECG"}
	amount := 25.5
	BillingUpdate{PatientID: &none, Services: &services, Amount: &amount}.Apply(&record)

	assert.Nil(t, record.PatientID)
	assert.Equal(t, 25.5, record.Amount)
	assert.Equal(t, []string{"X-Ray", "ECG"}, record.Services)
}

func TestValidEnums(t *testing.T) {
	assert.True(t, ValidAppointmentStatus("No-Show"))
	assert.False(t, ValidAppointmentStatus("noshow"))
	assert.True(t, ValidPaymentStatus(PaymentOverdue))
	assert.False(t, ValidPaymentStatus("Refunded"))
	assert.True(t, ValidRole(RoleReceptionist))
	assert.False(t, ValidRole("client"))
}
