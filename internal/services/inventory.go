package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

const entityInventory = "Inventory item"

type InventoryService struct {
	items store.InventoryRepository
}

func NewInventoryService(s *store.Store) *InventoryService {
	return &InventoryService{items: s.Inventory}
}

func classify(items []models.InventoryItem) []models.InventoryItem {
	for i := range items {
		items[i].ClassifyStock()
	}
	return items
}

func (s *InventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	return classify(items), nil
}

func (s *InventoryService) LowStock(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.items.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return classify(items), nil
}

func (s *InventoryService) Get(ctx context.Context, id string) (*models.InventoryItem, error) {
	item, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, entityInventory)
	}
	item.ClassifyStock()
	return item, nil
}

func checkInventoryNumbers(quantity, reorderLevel *int, price *float64) error {
	if quantity != nil && *quantity < 0 {
		return invalid("quantity cannot be negative")
	}
	if reorderLevel != nil && *reorderLevel < 0 {
		return invalid("reorderLevel cannot be negative")
	}
	if price != nil && *price < 0 {
		return invalid("price cannot be negative")
	}
	return nil
}

func (s *InventoryService) Create(ctx context.Context, in models.InventoryInput) (*models.InventoryItem, error) {
	if err := requireInput(
		text("name", in.Name),
		number("quantity", in.Quantity),
		number("reorderLevel", in.ReorderLevel),
		text("category", in.Category),
	); err != nil {
		return nil, err
	}
	item := in.Item()
	if err := checkInventoryNumbers(&item.Quantity, &item.ReorderLevel, &item.Price); err != nil {
		return nil, err
	}
	if err := checkDate("lastRestocked", item.LastRestocked); err != nil {
		return nil, err
	}
	if err := checkDatePtr("expiryDate", item.ExpiryDate); err != nil {
		return nil, err
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	item.ClassifyStock()
	log.Info().Str("itemId", item.ID).Str("name", item.Name).Int("quantity", item.Quantity).Msg("inventory item created")
	return item, nil
}

func (s *InventoryService) Update(ctx context.Context, id string, u models.InventoryUpdate) (*models.InventoryItem, error) {
	if err := notBlank("name", u.Name); err != nil {
		return nil, err
	}
	if err := notBlank("category", u.Category); err != nil {
		return nil, err
	}
	if err := checkInventoryNumbers(u.Quantity, u.ReorderLevel, u.Price); err != nil {
		return nil, err
	}
	if err := checkDatePtr("lastRestocked", u.LastRestocked); err != nil {
		return nil, err
	}
	if u.ExpiryDate != nil && *u.ExpiryDate != "" {
		if err := checkDate("expiryDate", *u.ExpiryDate); err != nil {
			return nil, err
		}
	}
	item, err := s.items.Update(ctx, id, u)
	if err != nil {
		return nil, notFound(err, entityInventory)
	}
	item.ClassifyStock()
	if item.StockLevel == models.StockLow {
		log.Warn().Str("itemId", id).Str("name", item.Name).Int("quantity", item.Quantity).Msg("inventory item at or below reorder level")
	}
	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return notFound(err, entityInventory)
	}
	log.Info().Str("itemId", id).Msg("inventory item deleted")
	return nil
}
