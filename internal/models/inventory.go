package models

import (
	"math"
	"time"
)

const (
	StockLow    = "Low"
	StockMedium = "Medium"
	StockGood   = "Good"
)

type InventoryItem struct {
	ID            string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	Name          string    `gorm:"not null;index" bson:"name" json:"name"`
	Quantity      int       `gorm:"not null;default:0" bson:"quantity" json:"quantity"`
	ReorderLevel  int       `gorm:"not null;default:0" bson:"reorder_level" json:"reorderLevel"`
	Category      string    `gorm:"not null" bson:"category" json:"category"`
	Supplier      string    `bson:"supplier" json:"supplier"`
	LastRestocked string    `gorm:"size:10" bson:"last_restocked" json:"lastRestocked"`
	Price         float64   `gorm:"not null;default:0" bson:"price" json:"price"`
	ExpiryDate    *string   `gorm:"size:10" bson:"expiry_date,omitempty" json:"expiryDate"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`

	// Derived on every read, never stored.
	StockLevel      string `gorm:"-" bson:"-" json:"stockLevel"`
	StockPercentage int    `gorm:"-" bson:"-" json:"stockPercentage"`
}

func (InventoryItem) TableName() string { return "inventory" }

type InventoryUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Quantity      *int     `json:"quantity,omitempty"`
	ReorderLevel  *int     `json:"reorderLevel,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Supplier      *string  `json:"supplier,omitempty"`
	LastRestocked *string  `json:"lastRestocked,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	ExpiryDate    *string  `json:"expiryDate,omitempty"`
}

func (u InventoryUpdate) Apply(i *InventoryItem) {
	setString(&i.Name, u.Name)
	setString(&i.Category, u.Category)
	setString(&i.Supplier, u.Supplier)
	setString(&i.LastRestocked, u.LastRestocked)
	if u.Quantity != nil {
		i.Quantity = *u.Quantity
	}
	if u.ReorderLevel != nil {
		i.ReorderLevel = *u.ReorderLevel
	}
	if u.Price != nil {
		i.Price = *u.Price
	}
	if u.ExpiryDate != nil {
		if *u.ExpiryDate == "" {
			i.ExpiryDate = nil
		} else {
			d := *u.ExpiryDate
			i.ExpiryDate = &d
		}
	}
}

// ClassifyStock fills the derived stock fields from Quantity and ReorderLevel.
func (i *InventoryItem) ClassifyStock() {
	i.StockLevel, i.StockPercentage = StockLevelFor(i.Quantity, i.ReorderLevel)
}

// StockLevelFor classifies a quantity against its reorder level. Full stock is
// taken to be three times the reorder level.
func StockLevelFor(quantity, reorderLevel int) (string, int) {
	if reorderLevel <= 0 {
		if quantity <= 0 {
			return StockLow, 0
		}
		return StockGood, 100
	}
	pct := float64(quantity) / float64(reorderLevel*3) * 100
	rounded := int(math.Round(pct))
	if rounded > 100 {
		rounded = 100
	}
	if rounded < 0 {
		rounded = 0
	}
	switch {
	case quantity <= reorderLevel:
		return StockLow, rounded
	case pct < 50:
		return StockMedium, rounded
	default:
		return StockGood, rounded
	}
}

// InventoryInput is the body of a create request. Quantity and ReorderLevel
// are pointers so that an absent value can be told apart from zero.
type InventoryInput struct {
	Name          string  `json:"name"`
	Quantity      *int    `json:"quantity"`
	ReorderLevel  *int    `json:"reorderLevel"`
	Category      string  `json:"category"`
	Supplier      string  `json:"supplier"`
	LastRestocked string  `json:"lastRestocked"`
	Price         float64 `json:"price"`
	ExpiryDate    *string `json:"expiryDate"`
}

// Item converts the input into a new InventoryItem. Nil numbers become zero.
func (in InventoryInput) Item() *InventoryItem {
	item := &InventoryItem{
		Name:          in.Name,
		Category:      in.Category,
		Supplier:      in.Supplier,
		LastRestocked: in.LastRestocked,
		Price:         in.Price,
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.ReorderLevel != nil {
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.ExpiryDate != nil && *in.ExpiryDate != "" {
		d := *in.ExpiryDate
		item.ExpiryDate = &d
	}
	return item
}
