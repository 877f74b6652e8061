package models

import "github.com/shopspring/decimal"

// LineItem is one product-and-quantity pair held in the cart. The display
// attributes are copied from the product when it is first added.
type LineItem struct {
	ProductID int64           `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Brand     string          `json:"brand,omitempty"`
	Quantity  int             `json:"quantity"`
}

// NewLineItem captures the product's display attributes. A product without a
// price is recorded at zero.
func NewLineItem(p Product, quantity int) LineItem {
	return LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice(),
		Image:     p.Image,
		Brand:     p.Brand,
		Quantity:  quantity,
	}
}

// EffectiveQuantity treats a non-positive quantity as a single unit.
func (li LineItem) EffectiveQuantity() int {
	if li.Quantity < 1 {
		return 1
	}
	return li.Quantity
}

// Subtotal is unit price times effective quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.EffectiveQuantity())))
}
