package cartsvc

import (
	"context"
	"testing"

	"github.com/corray333/storefront/internal/service/models/cart"
	"github.com/corray333/storefront/internal/service/models/money"
	"github.com/corray333/storefront/internal/service/models/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartStore struct {
	carts map[string]*cart.Cart
}

func (s *fakeCartStore) Get(_ context.Context, sessionID string) (*cart.Cart, error) {
	if c, ok := s.carts[sessionID]; ok {
		return c, nil
	}

	return cart.New(), nil
}

func (s *fakeCartStore) Save(_ context.Context, sessionID string, c *cart.Cart) error {
	s.carts[sessionID] = c

	return nil
}

func (s *fakeCartStore) Delete(_ context.Context, sessionID string) error {
	delete(s.carts, sessionID)

	return nil
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

func newService() (*CartService, *fakeCartStore) {
	store := &fakeCartStore{carts: map[string]*cart.Cart{}}
	svc := MustNewCartService(
		WithCartStore(store),
		WithProductRepository(&fakeProductRepo{products: map[int64]product.Product{
			1: {ID: 1, Name: "Notebook", Price: money.MustParse("10.50")},
			2: {ID: 2, Name: "Pen", Price: money.MustParse("3.00")},
		}}),
	)

	return svc, store
}

func TestAddCommitsCart(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "s1", 1, 2))
	require.NoError(t, svc.Add(ctx, "s1", 1, 3))

	assert.Equal(t, map[int64]int{1: 5}, store.carts["s1"].Snapshot())
}

func TestSetQuantityUnparseableRemoves(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "s1", 1, 2))
	require.NoError(t, svc.SetQuantity(ctx, "s1", 1, "abc"))

	assert.True(t, store.carts["s1"].IsEmpty())
}

func TestDetailComputesExactTotals(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "s1", 1, 2))
	require.NoError(t, svc.Add(ctx, "s1", 2, 1))

	detail, err := svc.Detail(ctx, "s1")
	require.NoError(t, err)

	require.Len(t, detail.Lines, 2)
	assert.Equal(t, "Notebook", detail.Lines[0].Product.Name)
	assert.Equal(t, "21.00", detail.Lines[0].Subtotal.String())
	assert.Equal(t, "24.00", detail.Total.String())
}

func TestDetailOmitsDeletedProducts(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "s1", 1, 1))
	require.NoError(t, svc.Add(ctx, "s1", 99, 1))

	detail, err := svc.Detail(ctx, "s1")
	require.NoError(t, err)

	require.Len(t, detail.Lines, 1)
	assert.Equal(t, "10.50", detail.Total.String())
}

func TestDetailEmptyCart(t *testing.T) {
	svc, _ := newService()

	detail, err := svc.Detail(context.Background(), "nosuch")
	require.NoError(t, err)
	assert.Empty(t, detail.Lines)
	assert.Equal(t, "0.00", detail.Total.String())
}
