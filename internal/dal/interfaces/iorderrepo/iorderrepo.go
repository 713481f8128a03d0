package iorderrepo

import (
	"context"

	"github.com/corray333/storefront/internal/service/models/order"
)

// IOrderRepository is an interface for the order postgres repository.
type IOrderRepository interface {
	Insert(ctx context.Context, o order.Order) (order.Order, error)
	Delete(ctx context.Context, orderID int64) error
	Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status order.Status) error
}
