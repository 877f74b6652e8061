package cli

import (
	"context"
	"fmt"
)

// Cart prints the cart contents and totals.
func (a *App) Cart(ctx context.Context) error {
	snap := a.cart.Snapshot()
	if snap.Empty() {
		fmt.Fprintln(a.out, "Your cart is empty. Use 'products' to start shopping.")
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tNAME\tBRAND\tQTY\tPRICE\tSUBTOTAL")
	for _, li := range snap.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			li.ProductID, li.Name, li.Brand, li.EffectiveQuantity(), money(li.UnitPrice), money(li.Subtotal()))
	}
	_ = tw.Flush()

	fmt.Fprintf(a.out, "Items: %d\nTotal: %s\n", snap.TotalItems, money(snap.TotalPrice))
	return nil
}

func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("remove <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if !a.cart.Contains(id) {
		return fmt.Errorf("product %d is not in the cart", id)
	}

	a.cart.Remove(id)
	fmt.Fprintln(a.out, "Removed from cart.")
	return nil
}

// Quantity sets a line's quantity; zero or less removes the line.
func (a *App) Quantity(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("qty <id> <n>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	qty, err := parseQuantity(args[1])
	if err != nil {
		return err
	}
	if !a.cart.Contains(id) {
		return fmt.Errorf("product %d is not in the cart", id)
	}

	a.cart.SetQuantity(id, qty)
	if qty < 1 {
		fmt.Fprintln(a.out, "Removed from cart.")
		return nil
	}
	fmt.Fprintf(a.out, "Quantity updated to %d.\n", qty)
	return nil
}

func (a *App) ClearCart(ctx context.Context) error {
	a.cart.Clear()
	fmt.Fprintln(a.out, "Cart cleared.")
	return nil
}
