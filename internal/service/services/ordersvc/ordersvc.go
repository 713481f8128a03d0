package ordersvc

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/corray333/storefront/internal/dal/interfaces/iorderitemrepo"
	"github.com/corray333/storefront/internal/dal/interfaces/iorderrepo"
	"github.com/corray333/storefront/internal/dal/interfaces/iproductrepo"
	"github.com/corray333/storefront/internal/service/models/order"
	"github.com/corray333/storefront/internal/service/models/orderitem"
	"github.com/corray333/storefront/internal/service/models/product"
	"github.com/spf13/viper"
)

// OrderService is a service for reading orders and driving their
// administrative status lifecycle.
type OrderService struct {
	orderRepo     iorderrepo.IOrderRepository
	orderItemRepo iorderitemrepo.IOrderItemRepository
	productRepo   iproductrepo.IProductRepository
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithOrderRepository sets the order repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(repo iorderrepo.IOrderRepository) option {
	return func(s *OrderService) {
		s.orderRepo = repo
	}
}

// WithOrderItemRepository sets the order item repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderItemRepository(repo iorderitemrepo.IOrderItemRepository) option {
	return func(s *OrderService) {
		s.orderItemRepo = repo
	}
}

// WithProductRepository sets the product repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(repo iproductrepo.IProductRepository) option {
	return func(s *OrderService) {
		s.productRepo = repo
	}
}

// GetOrders retrieves a customer's orders with their items, newest first.
func (s *OrderService) GetOrders(ctx context.Context, customerID int64, limit, offset int) ([]order.Order, error) {
	orders, err := s.orderRepo.Query(ctx, &order.QueryOrdersModel{
		CustomerIds: []int64{customerID},
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	if len(orders) == 0 {
		return []order.Order{}, nil
	}

	orderIds := make([]int64, 0, len(orders))
	for _, o := range orders {
		orderIds = append(orderIds, o.ID)
	}

	items, err := s.orderItemRepo.Query(ctx, &orderitem.QueryOrderItemsModel{OrderIds: orderIds})
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}

	for i := range orders {
		for _, item := range items {
			if item.OrderID == orders[i].ID {
				orders[i].OrderItems = append(orders[i].OrderItems, item)
			}
		}
	}

	return orders, nil
}

// Line is one order item joined with its product name for display.
type Line struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// Detail is one order with display lines and the prebuilt shop WhatsApp link.
type Detail struct {
	Order       order.Order `json:"order"`
	Lines       []Line      `json:"lines"`
	WhatsappURL string      `json:"whatsappUrl"`
}

// GetOrder retrieves one order for its owner. Requesting another customer's
// order yields order.ErrOrderNotFound, not a permission hint.
func (s *OrderService) GetOrder(ctx context.Context, orderID, customerID int64) (*Detail, error) {
	orders, err := s.orderRepo.Query(ctx, &order.QueryOrdersModel{
		Ids:         []int64{orderID},
		CustomerIds: []int64{customerID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query order: %w", err)
	}
	if len(orders) == 0 {
		return nil, order.ErrOrderNotFound
	}
	o := orders[0]

	items, err := s.orderItemRepo.Query(ctx, &orderitem.QueryOrderItemsModel{OrderIds: []int64{o.ID}})
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	o.OrderItems = items

	names := map[int64]string{}
	if len(items) > 0 {
		ids := make([]int64, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ProductID)
		}
		products, err := s.productRepo.Query(ctx, &product.QueryProductsModel{Ids: ids})
		if err != nil {
			return nil, fmt.Errorf("failed to query products: %w", err)
		}
		for _, p := range products {
			names[p.ID] = p.Name
		}
	}

	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, Line{
			ProductID:   item.ProductID,
			ProductName: names[item.ProductID],
			Quantity:    item.Quantity,
		})
	}

	return &Detail{
		Order:       o,
		Lines:       lines,
		WhatsappURL: shopWhatsappURL(o, lines),
	}, nil
}

// UpdateStatus moves the given orders to the next status, validating each
// move against the status state machine.
func (s *OrderService) UpdateStatus(ctx context.Context, orderIds []int64, next order.Status) error {
	orders, err := s.orderRepo.Query(ctx, &order.QueryOrdersModel{Ids: orderIds})
	if err != nil {
		return fmt.Errorf("failed to query orders: %w", err)
	}
	if len(orders) != len(orderIds) {
		return order.ErrOrderNotFound
	}

	for _, o := range orders {
		if !o.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: order %d cannot move from %s to %s",
				order.ErrInvalidTransition, o.ID, o.Status, next)
		}
	}

	for _, o := range orders {
		if err := s.orderRepo.UpdateStatus(ctx, o.ID, next); err != nil {
			return fmt.Errorf("failed to update order %d: %w", o.ID, err)
		}
	}

	return nil
}

// shopWhatsappURL builds the wa.me link that forwards the order summary to
// the shop's configured WhatsApp number.
func shopWhatsappURL(o order.Order, lines []Line) string {
	number := digitsOnly(viper.GetString("shop.whatsapp_number"))
	if number == "" {
		return ""
	}

	msg := []string{
		fmt.Sprintf("New Order #%d", o.ID),
		fmt.Sprintf("Phone: %s", o.Phone),
		fmt.Sprintf("Customer WhatsApp: %s", o.Whatsapp),
		fmt.Sprintf("Fulfillment: %s", o.Fulfillment),
	}
	if o.Address != "" {
		msg = append(msg, fmt.Sprintf("Address: %s", o.Address))
	}
	if o.Notes != "" {
		msg = append(msg, fmt.Sprintf("Notes: %s", o.Notes))
	}
	msg = append(msg, "", "Items:")
	for _, line := range lines {
		msg = append(msg, fmt.Sprintf("- %s x %d", line.ProductName, line.Quantity))
	}
	msg = append(msg, "", "Please confirm this order.")

	return "https://wa.me/" + number + "?text=" + url.QueryEscape(strings.Join(msg, "\n"))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}

	return b.String()
}
