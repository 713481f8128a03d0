package cartsvc

import (
	"context"
	"fmt"
	"sort"

	"github.com/corray333/storefront/internal/dal/interfaces/icartstore"
	"github.com/corray333/storefront/internal/dal/interfaces/iproductrepo"
	"github.com/corray333/storefront/internal/service/models/money"
	"github.com/corray333/storefront/internal/service/models/product"
)

// CartService manages the session cart and computes its running totals.
// Quantities are bounded against live stock only at checkout, not here.
type CartService struct {
	store       icartstore.ICartStore
	productRepo iproductrepo.IProductRepository
}

// option is a function that configures the CartService.
type option func(*CartService)

// MustNewCartService creates a new CartService.
func MustNewCartService(opts ...option) *CartService {
	s := &CartService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithCartStore sets the session cart store.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithCartStore(store icartstore.ICartStore) option {
	return func(s *CartService) {
		s.store = store
	}
}

// WithProductRepository sets the product repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(repo iproductrepo.IProductRepository) option {
	return func(s *CartService) {
		s.productRepo = repo
	}
}

// Line is one cart row resolved against the live catalog.
type Line struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Price    money.Money     `json:"price"`
	Subtotal money.Money     `json:"subtotal"`
}

// Detail is the cart with resolved products and a grand total.
type Detail struct {
	Lines []Line      `json:"lines"`
	Total money.Money `json:"total"`
}

// Add adds qty units of a product to the session's cart and commits it.
func (s *CartService) Add(ctx context.Context, sessionID string, productID int64, qty int) error {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	c.Add(productID, qty)

	return s.store.Save(ctx, sessionID, c)
}

// SetQuantity overwrites a line with the raw submitted quantity and commits.
// Unparseable or non-positive values remove the line.
func (s *CartService) SetQuantity(ctx context.Context, sessionID string, productID int64, rawQty string) error {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	c.SetQuantity(productID, rawQty)

	return s.store.Save(ctx, sessionID, c)
}

// Remove deletes a line and commits.
func (s *CartService) Remove(ctx context.Context, sessionID string, productID int64) error {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	c.Remove(productID)

	return s.store.Save(ctx, sessionID, c)
}

// Clear empties the session's cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// Detail resolves the cart against the catalog and computes subtotals and
// the total with exact decimal arithmetic. Lines whose product no longer
// exists are omitted.
func (s *CartService) Detail(ctx context.Context, sessionID string) (*Detail, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	detail := &Detail{Lines: []Line{}, Total: money.Zero()}
	if c.IsEmpty() {
		return detail, nil
	}

	products, err := s.productRepo.Query(ctx, &product.QueryProductsModel{Ids: c.ProductIDs()})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cart products: %w", err)
	}

	snapshot := c.Snapshot()
	for _, p := range products {
		qty := snapshot[p.ID]
		if qty <= 0 {
			continue
		}

		subtotal := p.Price.MulQuantity(qty)
		detail.Lines = append(detail.Lines, Line{
			Product:  p,
			Quantity: qty,
			Price:    p.Price,
			Subtotal: subtotal,
		})
		detail.Total = detail.Total.Add(subtotal)
	}

	sort.Slice(detail.Lines, func(i, j int) bool {
		return detail.Lines[i].Product.Name < detail.Lines[j].Product.Name
	})

	return detail, nil
}
