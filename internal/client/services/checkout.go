package services

import (
	"errors"

	"github.com/dmitrijs2005/glowcart/internal/client/cart"
	"github.com/dmitrijs2005/glowcart/internal/client/forms"
	"github.com/shopspring/decimal"
)

var ErrEmptyCart = errors.New("your cart is empty")

// SummaryLine is one row of the order summary.
type SummaryLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// Summary is what the user confirms before placing an order. Shipping is
// free and no tax is charged.
type Summary struct {
	Lines      []SummaryLine
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	ShipTo     forms.ShippingForm
	CardMasked string
}

func (s Summary) FreeShipping() bool {
	return s.Shipping.IsZero()
}

type Checkout struct {
	validator *forms.Validator
}

func NewCheckout() *Checkout {
	return &Checkout{validator: forms.NewValidator()}
}

// Review validates the checkout forms against the cart and prices the
// order. Nothing is submitted and the cart is not modified.
func (c *Checkout) Review(snap cart.Snapshot, shipping forms.ShippingForm, payment forms.PaymentForm) (Summary, error) {
	if snap.Empty() {
		return Summary{}, ErrEmptyCart
	}
	if err := c.validator.Shipping(shipping); err != nil {
		return Summary{}, err
	}
	if err := c.validator.Payment(payment); err != nil {
		return Summary{}, err
	}

	s := Summary{
		Lines:      make([]SummaryLine, 0, len(snap.Items)),
		Subtotal:   decimal.Zero,
		Shipping:   decimal.Zero,
		Tax:        decimal.Zero,
		ShipTo:     shipping,
		CardMasked: forms.MaskCardNumber(payment.CardNumber),
	}
	for _, li := range snap.Items {
		line := SummaryLine{
			Name:      li.Name,
			Quantity:  li.EffectiveQuantity(),
			UnitPrice: li.UnitPrice,
			Subtotal:  li.Subtotal(),
		}
		s.Lines = append(s.Lines, line)
		s.Subtotal = s.Subtotal.Add(line.Subtotal)
	}
	s.Total = s.Subtotal.Add(s.Shipping).Add(s.Tax)

	return s, nil
}
