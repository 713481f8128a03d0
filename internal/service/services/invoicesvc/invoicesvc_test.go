package invoicesvc

import (
	"context"
	"testing"

	"github.com/corray333/storefront/internal/service/models/money"
	"github.com/corray333/storefront/internal/service/models/order"
	"github.com/corray333/storefront/internal/service/models/orderitem"
	"github.com/corray333/storefront/internal/service/models/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders []order.Order
}

func (r *fakeOrderRepo) Insert(_ context.Context, o order.Order) (order.Order, error) {
	r.orders = append(r.orders, o)

	return o, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, orderID int64) error { return nil }

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, orderID int64, status order.Status) error {
	return nil
}

func (r *fakeOrderRepo) Query(_ context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	var result []order.Order
	for _, o := range r.orders {
		if !contains(filter.Ids, o.ID) {
			continue
		}
		if len(filter.CustomerIds) > 0 && !contains(filter.CustomerIds, o.CustomerID) {
			continue
		}
		result = append(result, o)
	}

	return result, nil
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

func newService(products *fakeProductRepo) *InvoiceService {
	orders := &fakeOrderRepo{orders: []order.Order{
		{ID: 1, CustomerID: 7, Status: order.StatusNew, Fulfillment: order.FulfillmentPickup},
	}}
	items := &fakeOrderItemRepo{items: []orderitem.OrderItem{
		{ID: 1, OrderID: 1, ProductID: 10, Quantity: 2},
		{ID: 2, OrderID: 1, ProductID: 11, Quantity: 1},
	}}

	return MustNewInvoiceService(
		WithOrderRepository(orders),
		WithOrderItemRepository(items),
		WithProductRepository(products),
	)
}

func TestComputeExactTotal(t *testing.T) {
	products := &fakeProductRepo{products: map[int64]product.Product{
		10: {ID: 10, Name: "Notebook", Price: money.MustParse("10.50")},
		11: {ID: 11, Name: "Pen", Price: money.MustParse("3.00")},
	}}

	inv, err := newService(products).Compute(context.Background(), 1, 7)
	require.NoError(t, err)

	require.Len(t, inv.Rows, 2)
	assert.Equal(t, "Notebook", inv.Rows[0].Name)
	assert.Equal(t, "21.00", inv.Rows[0].Subtotal.String())
	assert.Equal(t, "Pen", inv.Rows[1].Name)
	assert.Equal(t, "3.00", inv.Rows[1].Subtotal.String())
	assert.Equal(t, "24.00", inv.Total.String())
}

func TestComputeIsIdempotent(t *testing.T) {
	products := &fakeProductRepo{products: map[int64]product.Product{
		10: {ID: 10, Name: "Notebook", Price: money.MustParse("10.50")},
		11: {ID: 11, Name: "Pen", Price: money.MustParse("3.00")},
	}}
	svc := newService(products)

	first, err := svc.Compute(context.Background(), 1, 7)
	require.NoError(t, err)
	second, err := svc.Compute(context.Background(), 1, 7)
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
	assert.True(t, first.Total.Equal(second.Total))
}

func TestComputeUsesLivePrice(t *testing.T) {
	products := &fakeProductRepo{products: map[int64]product.Product{
		10: {ID: 10, Name: "Notebook", Price: money.MustParse("10.50")},
		11: {ID: 11, Name: "Pen", Price: money.MustParse("3.00")},
	}}
	svc := newService(products)

	before, err := svc.Compute(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, "24.00", before.Total.String())

	// A price change after checkout shows up in the re-rendered invoice.
	p := products.products[10]
	p.Price = money.MustParse("12.00")
	products.products[10] = p

	after, err := svc.Compute(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, "27.00", after.Total.String())
}

func TestComputeRestrictedToOwner(t *testing.T) {
	products := &fakeProductRepo{products: map[int64]product.Product{}}

	_, err := newService(products).Compute(context.Background(), 1, 999)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}
