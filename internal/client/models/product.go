package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category groups products; only its name is used by the storefront.
type Category struct {
	Name string `json:"name"`
}

// Product is a catalog record. ID and Name are always present; Price and
// Category are optional on the wire.
type Product struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Brand         string              `json:"brand,omitempty"`
	Description   string              `json:"description,omitempty"`
	Price         decimal.NullDecimal `json:"price"`
	Category      *Category           `json:"category,omitempty"`
	StockQuantity int                 `json:"stock_quantity"`
	Image         string              `json:"image,omitempty"`
}

// CategoryName returns the category name or "" when the product has none.
func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// UnitPrice is the price, or zero when the product carries none.
func (p Product) UnitPrice() decimal.Decimal {
	if !p.Price.Valid {
		return decimal.Zero
	}
	return p.Price.Decimal
}

// StockStatus classifies how many units are left.
type StockStatus int

const (
	OutOfStock StockStatus = iota
	LowStock
	InStock
)

// lowStockThreshold is the largest quantity still shown as low stock.
const lowStockThreshold = 10

func (p Product) StockStatus() StockStatus {
	switch {
	case p.StockQuantity > lowStockThreshold:
		return InStock
	case p.StockQuantity > 0:
		return LowStock
	default:
		return OutOfStock
	}
}

// StockLabel is the human-readable stock badge.
func (p Product) StockLabel() string {
	switch p.StockStatus() {
	case InStock:
		return "In Stock"
	case LowStock:
		return fmt.Sprintf("Low Stock (%d left)", p.StockQuantity)
	default:
		return "Out of Stock"
	}
}

// Purchasable reports whether the product may be added to the cart.
func (p Product) Purchasable() bool {
	return p.StockStatus() != OutOfStock
}
