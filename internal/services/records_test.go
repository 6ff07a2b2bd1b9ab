package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/carewave-api/internal/models"
)

func TestInventoryStockLevels(t *testing.T) {
	ctx := context.Background()
	svc := NewInventoryService(newStore())

	gloves, err := svc.Create(ctx, models.InventoryInput{Name: "Nitrile Gloves", Category: "Supplies", Quantity: ptr(100), ReorderLevel: ptr(100)})
	require.NoError(t, err)
	masks, err := svc.Create(ctx, models.InventoryInput{Name: "Surgical Masks", Category: "Supplies", Quantity: ptr(300), ReorderLevel: ptr(100)})
	require.NoError(t, err)
	assert.Equal(t, models.StockLow, gloves.StockLevel)
	assert.Equal(t, 33, gloves.StockPercentage)
	assert.Equal(t, models.StockGood, masks.StockLevel)

	low, err := svc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Nitrile Gloves", low[0].Name)
	assert.Equal(t, models.StockLow, low[0].StockLevel)

	qty := 120
	updated, err := svc.Update(ctx, gloves.ID, models.InventoryUpdate{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, models.StockMedium, updated.StockLevel)
	assert.Equal(t, 40, updated.StockPercentage)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	for _, item := range all {
		assert.NotEmpty(t, item.StockLevel)
	}
}

func TestInventoryValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewInventoryService(newStore())

	_, err := svc.Create(ctx, models.InventoryInput{Name: "Syringes", Category: "Supplies", Quantity: ptr(-1), ReorderLevel: ptr(10)})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "quantity cannot be negative", verr.Message)

	_, err = svc.Create(ctx, models.InventoryInput{Name: "Syringes", Quantity: ptr(5), ReorderLevel: ptr(10)})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Missing required fields: category", verr.Message)

	bad := "2025-13-01"
	_, err = svc.Create(ctx, models.InventoryInput{Name: "Syringes", Category: "Supplies", Quantity: ptr(5), ReorderLevel: ptr(10), ExpiryDate: &bad})
	assert.True(t, errors.As(err, &verr))

	_, err = svc.Get(ctx, "missing")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Inventory item not found", nf.Error())
}

func TestInventoryCreateRequiresStockNumbers(t *testing.T) {
	ctx := context.Background()
	svc := NewInventoryService(newStore())

	_, err := svc.Create(ctx, models.InventoryInput{Name: "Gauze", Category: "Supplies"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, "Missing required fields: quantity, reorderLevel", verr.Message)

	_, err = svc.Create(ctx, models.InventoryInput{Name: "Gauze", Category: "Supplies", Quantity: ptr(5)})
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, "Missing required fields: reorderLevel", verr.Message)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	empty, err := svc.Create(ctx, models.InventoryInput{Name: "Gauze", Category: "Supplies", Quantity: ptr(0), ReorderLevel: ptr(0)})
	require.NoError(t, err)
	assert.Zero(t, empty.Quantity)
	assert.NotEmpty(t, empty.ID)
}

func TestStaffLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewStaffService(newStore())

	err := svc.Create(ctx, &models.Staff{Name: "Dr. Achieng"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Missing required fields: role, department, email", verr.Message)

	m := &models.Staff{Name: "Dr. Achieng", Role: "Doctor", Department: "Cardiology", Email: "achieng@carewave.com", JoiningDate: "2020-02-01"}
	require.NoError(t, svc.Create(ctx, m))

	dept := "Pediatrics"
	updated, err := svc.Update(ctx, m.ID, models.StaffUpdate{Department: &dept})
	require.NoError(t, err)
	assert.Equal(t, "Pediatrics", updated.Department)
	assert.Equal(t, "achieng@carewave.com", updated.Email)

	require.NoError(t, svc.Delete(ctx, m.ID))
	_, err = svc.Get(ctx, m.ID)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Staff member not found", nf.Error())
}

func TestTodoLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewTodoService(newStore())

	err := svc.Create(ctx, &models.Todo{Content: "no title"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	todo := &models.Todo{Title: "Order gloves", Content: "Two boxes"}
	require.NoError(t, svc.Create(ctx, todo))
	assert.False(t, todo.Completed)

	done := true
	updated, err := svc.Update(ctx, todo.ID, models.TodoUpdate{Completed: &done})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Order gloves", updated.Title)

	empty := ""
	_, err = svc.Update(ctx, todo.ID, models.TodoUpdate{Title: &empty})
	assert.True(t, errors.As(err, &verr))

	require.NoError(t, svc.Delete(ctx, todo.ID))
	var nf *NotFoundError
	assert.True(t, errors.As(svc.Delete(ctx, todo.ID), &nf))
}

func TestEmailAddress(t *testing.T) {
	addr, ok := EmailAddress(" Jane Doe <jane@example.com> ")
	assert.True(t, ok)
	assert.Equal(t, "jane@example.com", addr)

	_, ok = EmailAddress("555-0101")
	assert.False(t, ok)
	_, ok = EmailAddress("")
	assert.False(t, ok)
}
