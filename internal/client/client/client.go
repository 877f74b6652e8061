package client

import (
	"context"

	"github.com/dmitrijs2005/glowcart/internal/client/models"
)

// Client is the storefront REST API as seen by the CLI. All methods honor
// context cancellation.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, r models.Registration) error
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	ListOrders(ctx context.Context, accessToken string) ([]models.Order, error)
	Ping(ctx context.Context) error
	Close() error
}
