package iproductrepo

import (
	"context"

	"github.com/corray333/storefront/internal/service/models/product"
)

// IProductRepository is an interface for the product postgres repository.
type IProductRepository interface {
	GetByID(ctx context.Context, productID int64) (*product.Product, error)
	Query(ctx context.Context, filter *product.QueryProductsModel) ([]product.Product, error)
	// DecrementStock atomically subtracts amount from the product's stock.
	// Returns product.ErrInsufficientStock when the remaining stock does not
	// cover the amount.
	DecrementStock(ctx context.Context, productID int64, amount int) error
}
