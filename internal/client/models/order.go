package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a product line of a placed order.
type OrderItem struct {
	ProductID int64               `json:"product_id"`
	Name      string              `json:"product_name,omitempty"`
	Quantity  int                 `json:"quantity"`
	Price     decimal.NullDecimal `json:"price"`
}

// Order is a past order as listed on the dashboard.
type Order struct {
	ID        int64               `json:"id"`
	CreatedAt time.Time           `json:"created_at"`
	Status    string              `json:"status"`
	Total     decimal.NullDecimal `json:"total"`
	Items     []OrderItem         `json:"items"`
}

// ItemCount sums item quantities.
func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
