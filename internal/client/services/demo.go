package services

import (
	"github.com/dmitrijs2005/glowcart/internal/client/models"
	"github.com/shopspring/decimal"
)

const fallbackImage = "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?w=400"

// categoryImages are shown for products that arrive without a picture.
var categoryImages = map[string]string{
	"Lipstick":   "https://images.unsplash.com/photo-1586495777744-4413f21062fa?w=400",
	"Foundation": "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?w=400",
	"Eye Makeup": "https://images.unsplash.com/photo-1535585209827-a15fcdbc4c2d?w=400",
	"Mascara":    "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400",
	"Blush":      "https://images.unsplash.com/photo-1541643600914-78b084683601?w=400",
	"Tools":      "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?w=400&q=60",
}

// DefaultImage returns the stock picture for a category.
func DefaultImage(category string) string {
	if img, ok := categoryImages[category]; ok {
		return img
	}
	return fallbackImage
}

func demoProduct(id int64, name, brand, price, description, category string, stock int) models.Product {
	return models.Product{
		ID:            id,
		Name:          name,
		Brand:         brand,
		Description:   description,
		Price:         decimal.NewNullDecimal(decimal.RequireFromString(price)),
		Category:      &models.Category{Name: category},
		StockQuantity: stock,
		Image:         DefaultImage(category),
	}
}

// DemoProducts is the built-in catalog served while the backend cannot be
// reached. Every call returns a fresh slice.
func DemoProducts() []models.Product {
	return []models.Product{
		demoProduct(1, "Matte Red Lipstick", "Maybelline", "12.99",
			"Long-lasting matte finish lipstick with vibrant red color. Perfect for all occasions.", "Lipstick", 50),
		demoProduct(2, "Foundation Makeup", "L'Oreal", "24.99",
			"Full coverage foundation for flawless skin all day long.", "Foundation", 35),
		demoProduct(3, "Eye Shadow Palette", "Huda Beauty", "45.99",
			"Professional eyeshadow palette with 18 vibrant colors.", "Eye Makeup", 25),
		demoProduct(4, "Mascara Volume", "Maybelline", "9.99",
			"Volumizing mascara for dramatic lashes.", "Mascara", 100),
		demoProduct(5, "Blush Compact", "NARS", "32.99",
			"Silky blush for a natural rosy glow.", "Blush", 40),
		demoProduct(6, "Makeup Brush Set", "Real Techniques", "29.99",
			"Professional makeup brush set for perfect application.", "Tools", 60),
	}
}
