package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/glowcart/internal/client/models"
)

// OrdersAPI lists the signed-in user's orders.
type OrdersAPI interface {
	ListOrders(ctx context.Context, accessToken string) ([]models.Order, error)
}

// Authorizer runs a call with a valid access token. session.Session
// implements it.
type Authorizer interface {
	Authorized(ctx context.Context, fn func(ctx context.Context, accessToken string) error) error
}

type Orders struct {
	api  OrdersAPI
	auth Authorizer
}

func NewOrders(api OrdersAPI, auth Authorizer) *Orders {
	return &Orders{api: api, auth: auth}
}

// MyOrders returns the dashboard's order history.
func (o *Orders) MyOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := o.auth.Authorized(ctx, func(ctx context.Context, accessToken string) error {
		var err error
		orders, err = o.api.ListOrders(ctx, accessToken)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
