package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/glowcart/internal/client/forms"
	"github.com/dmitrijs2005/glowcart/internal/client/services"
)

// Checkout collects shipping and payment details and prints the order
// summary. Orders cannot be placed from this client, so nothing is sent and
// the cart is kept.
func (a *App) Checkout(ctx context.Context) error {
	snap := a.cart.Snapshot()
	if snap.Empty() {
		return fmt.Errorf("%w: please add some products to your cart before checkout", services.ErrEmptyCart)
	}

	var ship forms.ShippingForm
	shipFields := []struct {
		prompt string
		dst    *string
	}{
		{"First Name", &ship.FirstName},
		{"Last Name", &ship.LastName},
		{"Address", &ship.Address},
		{"City", &ship.City},
		{"State", &ship.State},
		{"ZIP Code", &ship.ZIP},
		{"Email", &ship.Email},
		{"Phone", &ship.Phone},
	}
	fmt.Fprintln(a.out, "Shipping Information")
	for _, f := range shipFields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	var pay forms.PaymentForm
	payFields := []struct {
		prompt string
		dst    *string
	}{
		{"Card Number (1234 5678 9012 3456)", &pay.CardNumber},
		{"Expiration Date (MM/YY)", &pay.Expiry},
		{"CVV (123)", &pay.CVV},
		{"Name on Card", &pay.NameOnCard},
	}
	fmt.Fprintln(a.out, "Payment Information")
	for _, f := range payFields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	summary, err := a.checkout.Review(snap, ship, pay)
	if err != nil {
		return err
	}

	a.printSummary(summary)
	return nil
}

func (a *App) printSummary(s services.Summary) {
	fmt.Fprintln(a.out, "Order Summary")

	tw := newTable(a.out)
	for _, l := range s.Lines {
		fmt.Fprintf(tw, "  %s x %d\t%s\n", l.Name, l.Quantity, money(l.Subtotal))
	}
	fmt.Fprintf(tw, "  Subtotal\t%s\n", money(s.Subtotal))
	if s.FreeShipping() {
		fmt.Fprintln(tw, "  Shipping\tFree")
	} else {
		fmt.Fprintf(tw, "  Shipping\t%s\n", money(s.Shipping))
	}
	fmt.Fprintf(tw, "  Tax\t%s\n", money(s.Tax))
	fmt.Fprintf(tw, "  Total\t%s\n", money(s.Total))
	_ = tw.Flush()

	fmt.Fprintf(a.out, "Ship to: %s %s, %s, %s %s\n",
		s.ShipTo.FirstName, s.ShipTo.LastName, s.ShipTo.Address, s.ShipTo.City, s.ShipTo.ZIP)
	fmt.Fprintf(a.out, "Card: %s\n", s.CardMasked)
	fmt.Fprintln(a.out, "Placing orders is not available yet. Nothing was charged and your cart was kept.")
}
