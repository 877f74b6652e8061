package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/glowcart/internal/client/session"
)

// Dashboard shows the signed-in user's profile and order history.
func (a *App) Dashboard(ctx context.Context) error {
	st := a.session.State()
	if !st.IsAuthenticated() {
		return fmt.Errorf("%w: please login to see your dashboard", session.ErrNotLoggedIn)
	}

	fmt.Fprintf(a.out, "My Dashboard: %s\n", st.User.DisplayName())
	if st.User.Email != "" {
		fmt.Fprintf(a.out, "  Email: %s\n", st.User.Email)
	}

	orders, err := a.orders.MyOrders(ctx)
	if err != nil {
		return err
	}

	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders yet. Start shopping!")
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ORDER\tDATE\tITEMS\tTOTAL\tSTATUS")
	for _, o := range orders {
		date := "-"
		if !o.CreatedAt.IsZero() {
			date = o.CreatedAt.Format("2006-01-02")
		}
		total := "-"
		if o.Total.Valid {
			total = money(o.Total.Decimal)
		}
		fmt.Fprintf(tw, "#%d\t%s\t%d\t%s\t%s\n", o.ID, date, o.ItemCount(), total, o.Status)
	}
	return tw.Flush()
}
