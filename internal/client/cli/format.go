package cli

import (
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
)

// money renders an amount the way prices are shown in the shop.
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
