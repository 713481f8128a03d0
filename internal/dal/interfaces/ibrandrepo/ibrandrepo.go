package ibrandrepo

import (
	"context"

	"github.com/corray333/storefront/internal/service/models/brand"
)

// IBrandRepository is an interface for the brand postgres repository.
type IBrandRepository interface {
	GetByID(ctx context.Context, brandID int64) (*brand.Brand, error)
	QueryActive(ctx context.Context) ([]brand.Brand, error)
}
