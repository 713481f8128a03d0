package checkoutsvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/corray333/storefront/internal/dal/interfaces/icartstore"
	"github.com/corray333/storefront/internal/dal/interfaces/iorderitemrepo"
	"github.com/corray333/storefront/internal/dal/interfaces/iorderrepo"
	"github.com/corray333/storefront/internal/dal/interfaces/iproductrepo"
	"github.com/corray333/storefront/internal/dal/interfaces/iprofilerepo"
	"github.com/corray333/storefront/internal/dal/postgres"
	"github.com/corray333/storefront/internal/dal/uow"
	"github.com/corray333/storefront/internal/service/models/order"
	"github.com/corray333/storefront/internal/service/models/orderitem"
	"github.com/corray333/storefront/internal/service/models/product"
	"github.com/corray333/storefront/internal/service/models/profile"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrValidation is returned when a required checkout field is missing.
	ErrValidation = errors.New("validation failed")
	// ErrStockExhausted is returned when no line could be fulfilled at all;
	// the order header is rolled back before it is surfaced.
	ErrStockExhausted = errors.New("all items are out of stock")
)

// unitOfWork scopes repository calls to one transaction.
type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderItemRepository() iorderitemrepo.IOrderItemRepository
	ProductRepository() iproductrepo.IProductRepository
}

// CheckoutService turns a session cart into a persisted order under the
// partial-stock policy: each line ships min(requested, available), lines
// that cannot ship at all are skipped, and an order with zero shipped lines
// is rolled back.
type CheckoutService struct {
	pgClient    *postgres.Client
	cartStore   icartstore.ICartStore
	orderRepo   iorderrepo.IOrderRepository
	productRepo iproductrepo.IProductRepository
	profileRepo iprofilerepo.IProfileRepository
	newUOW      func() unitOfWork
}

// option is a function that configures the CheckoutService.
type option func(*CheckoutService)

// MustNewCheckoutService creates a new CheckoutService.
func MustNewCheckoutService(opts ...option) *CheckoutService {
	s := &CheckoutService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.newUOW == nil {
		s.newUOW = func() unitOfWork {
			return uow.NewUnitOfWork(s.pgClient)
		}
	}

	return s
}

// WithPostgresClient sets the Postgres client for the CheckoutService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *CheckoutService) {
		s.pgClient = pgClient
	}
}

// WithCartStore sets the session cart store.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithCartStore(store icartstore.ICartStore) option {
	return func(s *CheckoutService) {
		s.cartStore = store
	}
}

// WithOrderRepository sets the order repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(repo iorderrepo.IOrderRepository) option {
	return func(s *CheckoutService) {
		s.orderRepo = repo
	}
}

// WithProductRepository sets the product repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(repo iproductrepo.IProductRepository) option {
	return func(s *CheckoutService) {
		s.productRepo = repo
	}
}

// WithProfileRepository sets the customer profile repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProfileRepository(repo iprofilerepo.IProfileRepository) option {
	return func(s *CheckoutService) {
		s.profileRepo = repo
	}
}

// WithUnitOfWorkFactory overrides the transaction factory.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *CheckoutService) {
		s.newUOW = factory
	}
}

// CheckoutRequest carries the submitted checkout fields.
type CheckoutRequest struct {
	SessionID   string
	CustomerID  int64
	Fulfillment string
	Phone       string
	Whatsapp    string
	Address     string
	Notes       string
}

// Checkout converts the session's cart into an order and returns the order id.
//
// Cart product ids that no longer resolve are dropped silently. Each
// fulfillable line commits its stock decrement together with its item row in
// one transaction; there is no transaction across lines, so a crash mid-way
// leaves a partial order. The cart is consumed once line processing starts,
// even when the order ends up rolled back.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (int64, error) {
	c, err := s.cartStore.Get(ctx, req.SessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to load cart: %w", err)
	}
	if c.IsEmpty() {
		return 0, ErrEmptyCart
	}

	phone := strings.TrimSpace(req.Phone)
	whatsapp := strings.TrimSpace(req.Whatsapp)
	if phone == "" || whatsapp == "" {
		return 0, fmt.Errorf("%w: phone and whatsapp number are required", ErrValidation)
	}

	fulfillment, err := order.ParseFulfillment(req.Fulfillment)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	requested := c.Snapshot()
	products, err := s.productRepo.Query(ctx, &product.QueryProductsModel{Ids: c.ProductIDs()})
	if err != nil {
		return 0, fmt.Errorf("failed to resolve cart products: %w", err)
	}

	// Best-effort profile update before order creation, never fatal.
	if err := s.profileRepo.Upsert(ctx, profile.Profile{
		CustomerID: req.CustomerID,
		Phone:      phone,
		Address:    strings.TrimSpace(req.Address),
	}); err != nil {
		slog.Warn("Failed to update customer profile during checkout", "customerId", req.CustomerID, "error", err)
	}

	o, err := s.orderRepo.Insert(ctx, order.Order{
		CustomerID:  req.CustomerID,
		Fulfillment: fulfillment,
		Phone:       phone,
		Whatsapp:    whatsapp,
		Address:     strings.TrimSpace(req.Address),
		Notes:       strings.TrimSpace(req.Notes),
		Status:      order.StatusNew,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	createdAnyItem := false
	for _, p := range products {
		qty := requested[p.ID]
		if qty <= 0 {
			continue
		}

		fulfilled := min(qty, p.StockQuantity)
		if fulfilled == 0 {
			continue
		}

		committed, err := s.fulfillLine(ctx, o.ID, p.ID, fulfilled)
		if err != nil {
			return 0, fmt.Errorf("failed to fulfill order line: %w", err)
		}
		if committed {
			createdAnyItem = true
		}
	}

	// The cart is consumed by the attempt, fulfilled or not.
	if err := s.cartStore.Delete(ctx, req.SessionID); err != nil {
		slog.Error("Failed to clear cart after checkout", "sessionId", req.SessionID, "error", err)
	}

	if !createdAnyItem {
		if err := s.orderRepo.Delete(ctx, o.ID); err != nil {
			return 0, fmt.Errorf("failed to roll back empty order: %w", err)
		}

		return 0, ErrStockExhausted
	}

	return o.ID, nil
}

// fulfillLine commits one line's stock decrement and item insert in a single
// transaction. A decrement that loses a race to concurrent checkouts skips
// the line rather than failing the order.
func (s *CheckoutService) fulfillLine(ctx context.Context, orderID, productID int64, qty int) (bool, error) {
	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return false, err
	}

	if err := work.ProductRepository().DecrementStock(ctx, productID, qty); err != nil {
		_ = work.Rollback(ctx)
		if errors.Is(err, product.ErrInsufficientStock) {
			slog.Warn("Stock changed under checkout, skipping line", "productId", productID, "qty", qty)

			return false, nil
		}

		return false, err
	}

	if _, err := work.OrderItemRepository().Insert(ctx, orderitem.OrderItem{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  qty,
	}); err != nil {
		_ = work.Rollback(ctx)

		return false, err
	}

	if err := work.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
