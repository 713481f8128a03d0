package invoicesvc

import (
	"context"
	"fmt"

	"github.com/corray333/storefront/internal/dal/interfaces/iorderitemrepo"
	"github.com/corray333/storefront/internal/dal/interfaces/iorderrepo"
	"github.com/corray333/storefront/internal/dal/interfaces/iproductrepo"
	"github.com/corray333/storefront/internal/service/models/invoice"
	"github.com/corray333/storefront/internal/service/models/money"
	"github.com/corray333/storefront/internal/service/models/order"
	"github.com/corray333/storefront/internal/service/models/orderitem"
	"github.com/corray333/storefront/internal/service/models/product"
)

// InvoiceService computes invoice rows and totals from persisted order
// items. Subtotals use the product's price as it stands at render time, so
// a later price change is reflected in re-rendered invoices. Pure read, no
// side effects.
type InvoiceService struct {
	orderRepo     iorderrepo.IOrderRepository
	orderItemRepo iorderitemrepo.IOrderItemRepository
	productRepo   iproductrepo.IProductRepository
}

// option is a function that configures the InvoiceService.
type option func(*InvoiceService)

// MustNewInvoiceService creates a new InvoiceService.
func MustNewInvoiceService(opts ...option) *InvoiceService {
	s := &InvoiceService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithOrderRepository sets the order repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(repo iorderrepo.IOrderRepository) option {
	return func(s *InvoiceService) {
		s.orderRepo = repo
	}
}

// WithOrderItemRepository sets the order item repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderItemRepository(repo iorderitemrepo.IOrderItemRepository) option {
	return func(s *InvoiceService) {
		s.orderItemRepo = repo
	}
}

// WithProductRepository sets the product repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(repo iproductrepo.IProductRepository) option {
	return func(s *InvoiceService) {
		s.productRepo = repo
	}
}

// Compute builds the invoice for an order owned by the given customer.
// Rows follow item creation order; the total is the exact decimal sum of
// the subtotals.
func (s *InvoiceService) Compute(ctx context.Context, orderID, customerID int64) (*invoice.Invoice, error) {
	orders, err := s.orderRepo.Query(ctx, &order.QueryOrdersModel{
		Ids:         []int64{orderID},
		CustomerIds: []int64{customerID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if len(orders) == 0 {
		return nil, order.ErrOrderNotFound
	}
	o := orders[0]

	items, err := s.orderItemRepo.Query(ctx, &orderitem.QueryOrderItemsModel{OrderIds: []int64{o.ID}})
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	o.OrderItems = items

	productIDs := make([]int64, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	byID := map[int64]product.Product{}
	if len(productIDs) > 0 {
		products, err := s.productRepo.Query(ctx, &product.QueryProductsModel{Ids: productIDs})
		if err != nil {
			return nil, fmt.Errorf("failed to load products: %w", err)
		}
		for _, p := range products {
			byID[p.ID] = p
		}
	}

	inv := &invoice.Invoice{Order: o, Rows: []invoice.Row{}, Total: money.Zero()}
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			// Items reference products with a restricting FK; a miss here
			// can only mean a torn read, skip the row.
			continue
		}

		subtotal := p.Price.MulQuantity(item.Quantity)
		inv.Rows = append(inv.Rows, invoice.Row{
			Name:     p.Name,
			Quantity: item.Quantity,
			Price:    p.Price,
			Subtotal: subtotal,
		})
		inv.Total = inv.Total.Add(subtotal)
	}

	return inv, nil
}
