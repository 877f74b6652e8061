package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrijs2005/glowcart/internal/client/models"
	"github.com/dmitrijs2005/glowcart/internal/logging"
	"golang.org/x/sync/singleflight"
)

const (
	// AllCategories is the catalog filter that matches every product.
	AllCategories = "All"

	DemoProductsWarning = "Failed to load products. Using demo products instead."
	DemoProductWarning  = "Failed to load product details. Please try again."
)

var (
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrExceedsStock    = errors.New("quantity exceeds available stock")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// ProductsAPI is the part of the backend the catalog reads from.
type ProductsAPI interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}

// Listing is one load of the catalog. Warning is set when the demo set is
// served in place of the backend's products.
type Listing struct {
	Products   []models.Product
	Categories []string
	Demo       bool
	Warning    string
}

// Filter narrows a listing. An empty Category behaves like AllCategories.
type Filter struct {
	Category string
	Search   string
}

type Catalog struct {
	api          ProductsAPI
	baseURL      string
	demoFallback bool
	log          logging.Logger

	group singleflight.Group
}

// NewCatalog builds a catalog reading from api. Relative image paths are
// resolved against baseURL. With demoFallback set, failed loads are answered
// from DemoProducts.
func NewCatalog(api ProductsAPI, baseURL string, demoFallback bool, log logging.Logger) *Catalog {
	return &Catalog{
		api:          api,
		baseURL:      strings.TrimRight(baseURL, "/"),
		demoFallback: demoFallback,
		log:          log.With("component", "catalog"),
	}
}

// Products loads the full catalog. Concurrent calls share one request.
func (c *Catalog) Products(ctx context.Context) (Listing, error) {
	v, err, _ := c.group.Do("products", func() (any, error) {
		return c.api.ListProducts(ctx)
	})
	if err != nil {
		if !c.demoFallback {
			return Listing{}, fmt.Errorf("load products: %w", err)
		}
		c.log.Warn(ctx, "products unavailable, serving demo set", "error", err)
		demo := DemoProducts()
		return Listing{Products: demo, Categories: Categories(demo), Demo: true, Warning: DemoProductsWarning}, nil
	}

	shared := v.([]models.Product)
	products := make([]models.Product, len(shared))
	for i, p := range shared {
		p.Image = c.resolveImage(p)
		products[i] = p
	}

	c.log.Debug(ctx, "products loaded", "count", len(products))
	return Listing{Products: products, Categories: Categories(products)}, nil
}

// Product loads one product. With demo fallback enabled a failed load is
// answered from the demo set when it has that id; warning is then non-empty.
func (c *Catalog) Product(ctx context.Context, id int64) (p models.Product, warning string, err error) {
	v, err, _ := c.group.Do(fmt.Sprintf("product:%d", id), func() (any, error) {
		return c.api.GetProduct(ctx, id)
	})
	if err != nil {
		if c.demoFallback {
			for _, demo := range DemoProducts() {
				if demo.ID == id {
					c.log.Warn(ctx, "product unavailable, serving demo entry", "id", id, "error", err)
					return demo, DemoProductWarning, nil
				}
			}
		}
		return models.Product{}, "", fmt.Errorf("load product %d: %w", id, err)
	}

	p = *v.(*models.Product)
	p.Image = c.resolveImage(p)
	return p, "", nil
}

// resolveImage makes backend-relative image paths absolute and gives
// products without a picture their category's default image.
func (c *Catalog) resolveImage(p models.Product) string {
	img := strings.TrimSpace(p.Image)
	if img == "" {
		return DefaultImage(p.CategoryName())
	}
	if u, err := url.Parse(img); err == nil && (u.IsAbs() || strings.HasPrefix(img, "//")) {
		return img
	}
	if !strings.HasPrefix(img, "/") {
		img = "/" + img
	}
	return c.baseURL + img
}

// Categories lists the distinct category names of products in first-seen
// order, led by AllCategories. Products without a category are skipped.
func Categories(products []models.Product) []string {
	out := []string{AllCategories}
	for _, p := range products {
		name := p.CategoryName()
		if name == "" || slices.Contains(out, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

// FilterProducts keeps the products in f.Category whose name, description or
// brand contains the search text, ignoring case.
func FilterProducts(products []models.Product, f Filter) []models.Product {
	category := strings.TrimSpace(f.Category)
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != AllCategories && p.CategoryName() != category {
			continue
		}
		if search != "" && !matches(p, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p models.Product, search string) bool {
	for _, field := range []string{p.Name, p.Description, p.Brand} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// CheckPurchase reports whether quantity units of p may be put in the cart.
func CheckPurchase(p models.Product, quantity int) error {
	switch {
	case !p.Purchasable():
		return ErrOutOfStock
	case quantity < 1:
		return ErrInvalidQuantity
	case quantity > p.StockQuantity:
		return fmt.Errorf("%w: maximum %d units available", ErrExceedsStock, p.StockQuantity)
	}
	return nil
}
