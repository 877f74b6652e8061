package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/glowcart/internal/client/client"
	"github.com/dmitrijs2005/glowcart/internal/client/models"
	"github.com/dmitrijs2005/glowcart/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fake API ----

type fakeProductsAPI struct {
	ListRet   []models.Product
	ListErr   error
	ListCalls atomic.Int32
	ListGate  chan struct{}

	GetRet  *models.Product
	GetErr  error
	LastGet int64
}

func (f *fakeProductsAPI) ListProducts(ctx context.Context) ([]models.Product, error) {
	f.ListCalls.Add(1)
	if f.ListGate != nil {
		<-f.ListGate
	}
	return f.ListRet, f.ListErr
}

func (f *fakeProductsAPI) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	f.LastGet = id
	return f.GetRet, f.GetErr
}

func cat(name string) *models.Category {
	return &models.Category{Name: name}
}

func newCatalog(api ProductsAPI, demo bool) *Catalog {
	return NewCatalog(api, "http://127.0.0.1:8000/", demo, logging.Discard())
}

// ---- Products ----

func TestCatalog_Products_ResolvesImagesAndCategories(t *testing.T) {
	api := &fakeProductsAPI{ListRet: []models.Product{
		{ID: 1, Name: "A", Category: cat("Lipstick"), Image: "/media/a.jpg"},
		{ID: 2, Name: "B", Category: cat("Blush"), Image: "https://cdn.example.com/b.jpg"},
		{ID: 3, Name: "C", Category: cat("Lipstick")},
		{ID: 4, Name: "D", Image: "media/d.jpg"},
		{ID: 5, Name: "E", Category: cat("Unknown")},
	}}

	l, err := newCatalog(api, true).Products(context.Background())
	require.NoError(t, err)

	assert.False(t, l.Demo)
	assert.Empty(t, l.Warning)
	assert.Equal(t, []string{"All", "Lipstick", "Blush", "Unknown"}, l.Categories)

	require.Len(t, l.Products, 5)
	assert.Equal(t, "http://127.0.0.1:8000/media/a.jpg", l.Products[0].Image)
	assert.Equal(t, "https://cdn.example.com/b.jpg", l.Products[1].Image)
	assert.Equal(t, DefaultImage("Lipstick"), l.Products[2].Image)
	assert.Equal(t, "http://127.0.0.1:8000/media/d.jpg", l.Products[3].Image)
	assert.Equal(t, fallbackImage, l.Products[4].Image)

	assert.Equal(t, "/media/a.jpg", api.ListRet[0].Image, "backend slice is not mutated")
}

func TestCatalog_Products_DemoFallback(t *testing.T) {
	api := &fakeProductsAPI{ListErr: client.ErrUnavailable}

	l, err := newCatalog(api, true).Products(context.Background())
	require.NoError(t, err)

	assert.True(t, l.Demo)
	assert.Equal(t, "Failed to load products. Using demo products instead.", l.Warning)
	assert.Len(t, l.Products, 6)
	assert.Equal(t, []string{"All", "Lipstick", "Foundation", "Eye Makeup", "Mascara", "Blush", "Tools"}, l.Categories)
}

func TestCatalog_Products_NoFallback(t *testing.T) {
	api := &fakeProductsAPI{ListErr: client.ErrUnavailable}

	_, err := newCatalog(api, false).Products(context.Background())
	assert.ErrorIs(t, err, client.ErrUnavailable)
}

func TestCatalog_Products_SharesConcurrentLoads(t *testing.T) {
	api := &fakeProductsAPI{
		ListRet:  []models.Product{{ID: 1, Name: "A"}},
		ListGate: make(chan struct{}),
	}
	c := newCatalog(api, false)

	const callers = 5
	var wg sync.WaitGroup
	results := make([]Listing, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l, err := c.Products(context.Background())
			assert.NoError(t, err)
			results[i] = l
		}()
	}

	// Let every caller reach the in-flight request before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(api.ListGate)
	wg.Wait()

	assert.LessOrEqual(t, api.ListCalls.Load(), int32(callers))
	for _, l := range results {
		require.Len(t, l.Products, 1)
	}
	results[0].Products[0].Name = "changed"
	assert.Equal(t, "A", results[callers-1].Products[0].Name)
}

// ---- Product ----

func TestCatalog_Product(t *testing.T) {
	api := &fakeProductsAPI{GetRet: &models.Product{ID: 9, Name: "Serum", Image: "/media/s.jpg"}}

	p, warning, err := newCatalog(api, true).Product(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, int64(9), api.LastGet)
	assert.Equal(t, "http://127.0.0.1:8000/media/s.jpg", p.Image)
}

func TestCatalog_Product_Fallback(t *testing.T) {
	api := &fakeProductsAPI{GetErr: client.ErrUnavailable}
	c := newCatalog(api, true)

	p, warning, err := c.Product(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Mascara Volume", p.Name)
	assert.Equal(t, DemoProductWarning, warning)

	_, _, err = c.Product(context.Background(), 99)
	assert.ErrorIs(t, err, client.ErrUnavailable)

	_, _, err = newCatalog(api, false).Product(context.Background(), 4)
	assert.ErrorIs(t, err, client.ErrUnavailable)
}

// ---- helpers ----

func TestCategories_SkipsUncategorized(t *testing.T) {
	got := Categories([]models.Product{{ID: 1}, {ID: 2, Category: cat("")}, {ID: 3, Category: cat("Tools")}})
	assert.Equal(t, []string{"All", "Tools"}, got)
	assert.Equal(t, []string{"All"}, Categories(nil))
}

func TestFilterProducts(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Matte Red Lipstick", Brand: "Maybelline", Category: cat("Lipstick")},
		{ID: 2, Name: "Foundation", Description: "Full coverage", Brand: "L'Oreal", Category: cat("Foundation")},
		{ID: 3, Name: "Mascara Volume", Brand: "Maybelline", Category: cat("Mascara")},
		{ID: 4, Name: "Mystery"},
	}

	ids := func(ps []models.Product) []int64 {
		out := []int64{}
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter Filter
		want   []int64
	}{
		{"no filter", Filter{}, []int64{1, 2, 3, 4}},
		{"all", Filter{Category: "All"}, []int64{1, 2, 3, 4}},
		{"category", Filter{Category: "Mascara"}, []int64{3}},
		{"search brand ignores case", Filter{Search: "  maybelline "}, []int64{1, 3}},
		{"search description", Filter{Search: "COVERAGE"}, []int64{2}},
		{"category and search", Filter{Category: "Lipstick", Search: "maybelline"}, []int64{1}},
		{"blank search", Filter{Search: "   "}, []int64{1, 2, 3, 4}},
		{"no match", Filter{Search: "glitter"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterProducts(products, tt.filter)))
		})
	}
}

func TestCheckPurchase(t *testing.T) {
	p := models.Product{ID: 1, StockQuantity: 3, Price: decimal.NewNullDecimal(decimal.NewFromInt(1))}

	assert.NoError(t, CheckPurchase(p, 1))
	assert.NoError(t, CheckPurchase(p, 3))
	assert.ErrorIs(t, CheckPurchase(p, 4), ErrExceedsStock)
	assert.ErrorIs(t, CheckPurchase(p, 0), ErrInvalidQuantity)

	p.StockQuantity = 0
	assert.ErrorIs(t, CheckPurchase(p, 1), ErrOutOfStock)
}

func TestDemoProducts_FreshCopies(t *testing.T) {
	a := DemoProducts()
	a[0].Name = "changed"
	assert.Equal(t, "Matte Red Lipstick", DemoProducts()[0].Name)

	for _, p := range DemoProducts() {
		assert.True(t, p.Price.Valid)
		assert.True(t, p.Purchasable())
		assert.NotEmpty(t, p.Image)
	}
}

func TestDefaultImage(t *testing.T) {
	assert.Contains(t, DefaultImage("Mascara"), "photo-1596462502278")
	assert.Equal(t, fallbackImage, DefaultImage("Perfume"))
}

