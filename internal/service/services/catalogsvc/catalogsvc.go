package catalogsvc

import (
	"context"
	"fmt"

	"github.com/corray333/storefront/internal/dal/interfaces/ibrandrepo"
	"github.com/corray333/storefront/internal/dal/interfaces/iproductrepo"
	"github.com/corray333/storefront/internal/service/models/brand"
	"github.com/corray333/storefront/internal/service/models/product"
)

const defaultPageSize = 100

// CatalogService serves storefront browsing: active products with optional
// search, brands, and product detail.
type CatalogService struct {
	productRepo iproductrepo.IProductRepository
	brandRepo   ibrandrepo.IBrandRepository
}

// option is a function that configures the CatalogService.
type option func(*CatalogService)

// MustNewCatalogService creates a new CatalogService.
func MustNewCatalogService(opts ...option) *CatalogService {
	s := &CatalogService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithProductRepository sets the product repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(repo iproductrepo.IProductRepository) option {
	return func(s *CatalogService) {
		s.productRepo = repo
	}
}

// WithBrandRepository sets the brand repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithBrandRepository(repo ibrandrepo.IBrandRepository) option {
	return func(s *CatalogService) {
		s.brandRepo = repo
	}
}

// ListProducts returns active products, optionally filtered by free-text
// search over product, brand and category names, or by brand.
func (s *CatalogService) ListProducts(ctx context.Context, search string, brandID int64, limit, offset int) ([]product.Product, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	products, err := s.productRepo.Query(ctx, &product.QueryProductsModel{
		Search:     search,
		BrandID:    brandID,
		OnlyActive: true,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []product.Product{}
	}

	return products, nil
}

// GetProduct returns one product by id.
func (s *CatalogService) GetProduct(ctx context.Context, productID int64) (*product.Product, error) {
	return s.productRepo.GetByID(ctx, productID)
}

// ListBrands returns all active brands.
func (s *CatalogService) ListBrands(ctx context.Context) ([]brand.Brand, error) {
	brands, err := s.brandRepo.QueryActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	if brands == nil {
		brands = []brand.Brand{}
	}

	return brands, nil
}
