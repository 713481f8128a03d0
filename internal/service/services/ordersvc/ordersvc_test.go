package ordersvc

import (
	"context"
	"strings"
	"testing"

	"github.com/corray333/storefront/internal/service/models/order"
	"github.com/corray333/storefront/internal/service/models/orderitem"
	"github.com/corray333/storefront/internal/service/models/product"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders map[int64]order.Order
}

func (r *fakeOrderRepo) Insert(_ context.Context, o order.Order) (order.Order, error) {
	r.orders[o.ID] = o

	return o, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, orderID int64) error {
	delete(r.orders, orderID)

	return nil
}

func (r *fakeOrderRepo) Query(_ context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	var result []order.Order
	for _, o := range r.orders {
		if len(filter.Ids) > 0 && !contains(filter.Ids, o.ID) {
			continue
		}
		if len(filter.CustomerIds) > 0 && !contains(filter.CustomerIds, o.CustomerID) {
			continue
		}
		result = append(result, o)
	}

	return result, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, orderID int64, status order.Status) error {
	o, ok := r.orders[orderID]
	if !ok {
		return order.ErrOrderNotFound
	}
	o.Status = status
	r.orders[orderID] = o

	return nil
}

type fakeOrderItemRepo struct {
	items []orderitem.OrderItem
}

func (r *fakeOrderItemRepo) Insert(_ context.Context, item orderitem.OrderItem) (orderitem.OrderItem, error) {
	r.items = append(r.items, item)

	return item, nil
}

func (r *fakeOrderItemRepo) Query(_ context.Context, filter *orderitem.QueryOrderItemsModel) ([]orderitem.OrderItem, error) {
	var result []orderitem.OrderItem
	for _, item := range r.items {
		if contains(filter.OrderIds, item.OrderID) {
			result = append(result, item)
		}
	}

	return result, nil
}

type fakeProductRepo struct {
	products map[int64]product.Product
}

func (r *fakeProductRepo) GetByID(_ context.Context, productID int64) (*product.Product, error) {
	p, ok := r.products[productID]
	if !ok {
		return nil, product.ErrProductNotFound
	}

	return &p, nil
}

func (r *fakeProductRepo) Query(_ context.Context, filter *product.QueryProductsModel) ([]product.Product, error) {
	var result []product.Product
	for _, id := range filter.Ids {
		if p, ok := r.products[id]; ok {
			result = append(result, p)
		}
	}

	return result, nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, productID int64, amount int) error {
	return nil
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}

func newService(orders *fakeOrderRepo) *OrderService {
	return MustNewOrderService(
		WithOrderRepository(orders),
		WithOrderItemRepository(&fakeOrderItemRepo{items: []orderitem.OrderItem{
			{ID: 1, OrderID: 1, ProductID: 10, Quantity: 2},
		}}),
		WithProductRepository(&fakeProductRepo{products: map[int64]product.Product{
			10: {ID: 10, Name: "Notebook"},
		}}),
	)
}

func TestUpdateStatusValidTransition(t *testing.T) {
	orders := &fakeOrderRepo{orders: map[int64]order.Order{
		1: {ID: 1, Status: order.StatusNew},
		2: {ID: 2, Status: order.StatusNew},
	}}

	err := newService(orders).UpdateStatus(context.Background(), []int64{1, 2}, order.StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, order.StatusConfirmed, orders.orders[1].Status)
	assert.Equal(t, order.StatusConfirmed, orders.orders[2].Status)
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	orders := &fakeOrderRepo{orders: map[int64]order.Order{
		1: {ID: 1, Status: order.StatusNew},
		2: {ID: 2, Status: order.StatusDelivered},
	}}

	err := newService(orders).UpdateStatus(context.Background(), []int64{1, 2}, order.StatusConfirmed)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)

	// Nothing moved: the batch is validated before any update.
	assert.Equal(t, order.StatusNew, orders.orders[1].Status)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	orders := &fakeOrderRepo{orders: map[int64]order.Order{}}

	err := newService(orders).UpdateStatus(context.Background(), []int64{42}, order.StatusConfirmed)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestGetOrderOwnerRestriction(t *testing.T) {
	orders := &fakeOrderRepo{orders: map[int64]order.Order{
		1: {ID: 1, CustomerID: 7, Status: order.StatusNew},
	}}
	svc := newService(orders)

	_, err := svc.GetOrder(context.Background(), 1, 999)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)

	detail, err := svc.GetOrder(context.Background(), 1, 7)
	require.NoError(t, err)
	require.Len(t, detail.Lines, 1)
	assert.Equal(t, "Notebook", detail.Lines[0].ProductName)
	assert.Equal(t, 2, detail.Lines[0].Quantity)
}

func TestShopWhatsappLink(t *testing.T) {
	viper.Set("shop.whatsapp_number", "+91 94405 74394")
	t.Cleanup(func() { viper.Set("shop.whatsapp_number", "") })

	orders := &fakeOrderRepo{orders: map[int64]order.Order{
		1: {ID: 1, CustomerID: 7, Status: order.StatusNew, Phone: "12345", Whatsapp: "12345", Fulfillment: order.FulfillmentDelivery, Address: "Main St"},
	}}

	detail, err := newService(orders).GetOrder(context.Background(), 1, 7)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(detail.WhatsappURL, "https://wa.me/919440574394?text="), detail.WhatsappURL)
	assert.Contains(t, detail.WhatsappURL, "Notebook")
	assert.NotContains(t, detail.WhatsappURL, " ", "message must be url-encoded")
}
