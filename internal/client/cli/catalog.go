package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/glowcart/internal/client/cart"
	"github.com/dmitrijs2005/glowcart/internal/client/models"
	"github.com/dmitrijs2005/glowcart/internal/client/services"
)

var errUsage = errors.New("usage")

func usage(text string) error {
	return fmt.Errorf("%w: %s", errUsage, text)
}

// loadListing fetches the catalog, reports a demo fallback and remembers the
// result for show and add.
func (a *App) loadListing(ctx context.Context) (services.Listing, error) {
	l, err := a.catalog.Products(ctx)
	if err != nil {
		return services.Listing{}, err
	}
	if l.Warning != "" {
		fmt.Fprintln(a.out, "Warning:", l.Warning)
	}

	a.mu.Lock()
	a.listing = &l
	a.mu.Unlock()
	return l, nil
}

// cachedProduct looks id up in the last loaded listing.
func (a *App) cachedProduct(id int64) (models.Product, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listing == nil {
		return models.Product{}, false
	}
	for _, p := range a.listing.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Products lists the catalog, optionally narrowed to one category.
func (a *App) Products(ctx context.Context, args []string) error {
	category := strings.Join(args, " ")

	l, err := a.loadListing(ctx)
	if err != nil {
		return err
	}

	if category != "" && !slices.Contains(l.Categories, category) {
		return fmt.Errorf("unknown category %q, available: %s", category, strings.Join(l.Categories, ", "))
	}

	fmt.Fprintln(a.out, "Categories:", strings.Join(l.Categories, " | "))
	a.printProducts(services.FilterProducts(l.Products, services.Filter{Category: category}))
	return nil
}

// Search lists products whose name, description or brand contains the text.
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("search <text>")
	}

	l, err := a.loadListing(ctx)
	if err != nil {
		return err
	}

	a.printProducts(services.FilterProducts(l.Products, services.Filter{Search: strings.Join(args, " ")}))
	return nil
}

func (a *App) printProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products found. Try another category or search term.")
		return
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tNAME\tBRAND\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Brand, p.CategoryName(), money(p.UnitPrice()), p.StockLabel())
	}
	_ = tw.Flush()
	fmt.Fprintf(a.out, "%d product(s)\n", len(products))
}

// Show prints one product's details.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("show <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	p, warning, err := a.catalog.Product(ctx, id)
	if err != nil {
		return err
	}
	if warning != "" {
		fmt.Fprintln(a.out, "Warning:", warning)
	}

	fmt.Fprintf(a.out, "%s\n", p.Name)
	if p.Brand != "" {
		fmt.Fprintf(a.out, "  Brand:       %s\n", p.Brand)
	}
	if c := p.CategoryName(); c != "" {
		fmt.Fprintf(a.out, "  Category:    %s\n", c)
	}
	fmt.Fprintf(a.out, "  Price:       %s\n", money(p.UnitPrice()))
	fmt.Fprintf(a.out, "  Stock:       %s\n", p.StockLabel())
	if p.Purchasable() {
		fmt.Fprintf(a.out, "  Maximum:     %d units available\n", p.StockQuantity)
	}
	if p.Description != "" {
		fmt.Fprintf(a.out, "  Description: %s\n", p.Description)
	}
	fmt.Fprintf(a.out, "  Image:       %s\n", p.Image)
	if n := a.cart.Quantity(p.ID); n > 0 {
		fmt.Fprintf(a.out, "  In cart:     %d\n", n)
	}
	return nil
}

// Add puts a product in the cart. The quantity defaults to one; products that
// are out of stock, or not stocked in the requested amount, are refused.
func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usage("add <id> [qty]")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	qty := cart.DefaultQuantity
	if len(args) == 2 {
		if qty, err = parseQuantity(args[1]); err != nil {
			return err
		}
	}

	if qty < 1 {
		return services.ErrInvalidQuantity
	}

	p, ok := a.cachedProduct(id)
	if !ok {
		var warning string
		if p, warning, err = a.catalog.Product(ctx, id); err != nil {
			return err
		}
		if warning != "" {
			fmt.Fprintln(a.out, "Warning:", warning)
		}
	}

	if err := services.CheckPurchase(p, qty+a.cart.Quantity(id)); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}

	a.cart.Add(p, qty)
	fmt.Fprintf(a.out, "Added to Cart! %d x %s\n", qty, p.Name)
	return nil
}
