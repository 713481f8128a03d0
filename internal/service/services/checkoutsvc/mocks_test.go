package checkoutsvc

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/corray333/storefront/internal/dal/interfaces/iorderitemrepo"
	"github.com/corray333/storefront/internal/dal/interfaces/iproductrepo"
	"github.com/corray333/storefront/internal/service/models/cart"
	"github.com/corray333/storefront/internal/service/models/order"
	"github.com/corray333/storefront/internal/service/models/orderitem"
	"github.com/corray333/storefront/internal/service/models/product"
	"github.com/corray333/storefront/internal/service/models/profile"
)

type fixtures struct {
	carts    *fakeCartStore
	orders   *fakeOrderRepo
	items    *fakeOrderItemRepo
	products *fakeProductRepo
	profiles *fakeProfileRepo
}

func newFixtures() *fixtures {
	return &fixtures{
		carts:    &fakeCartStore{carts: map[string]*cart.Cart{}},
		orders:   &fakeOrderRepo{orders: map[int64]order.Order{}},
		items:    &fakeOrderItemRepo{},
		products: &fakeProductRepo{products: map[int64]product.Product{}},
		profiles: &fakeProfileRepo{profiles: map[int64]profile.Profile{}},
	}
}

// fakeUnitOfWork applies repository calls directly; per-line transactional
// boundaries are exercised against a real database elsewhere.
type fakeUnitOfWork struct {
	items    *fakeOrderItemRepo
	products *fakeProductRepo
}

func (u *fakeUnitOfWork) Begin(context.Context) error    { return nil }
func (u *fakeUnitOfWork) Commit(context.Context) error   { return nil }
func (u *fakeUnitOfWork) Rollback(context.Context) error { return nil }

func (u *fakeUnitOfWork) OrderItemRepository() iorderitemrepo.IOrderItemRepository {
	return u.items
}

func (u *fakeUnitOfWork) ProductRepository() iproductrepo.IProductRepository {
	return u.products
}

type fakeCartStore struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
}

func (s *fakeCartStore) Get(_ context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.carts[sessionID]
	if !ok {
		return cart.New(), nil
	}

	copied := cart.New()
	for id, qty := range stored.Snapshot() {
		copied.Add(id, qty)
	}

	return copied, nil
}

func (s *fakeCartStore) Save(_ context.Context, sessionID string, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = c

	return nil
}

func (s *fakeCartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)

	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]order.Order
}

func (r *fakeOrderRepo) Insert(_ context.Context, o order.Order) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	o.ID = r.nextID
	r.orders[o.ID] = o

	return o, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, orderID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, orderID)

	return nil
}

func (r *fakeOrderRepo) Query(_ context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []order.Order
	for _, o := range r.orders {
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })

	return result, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, orderID int64, status order.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return order.ErrOrderNotFound
	}
	o.Status = status
	r.orders[orderID] = o

	return nil
}

func (r *fakeOrderRepo) byID(orderID int64) (order.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]

	return o, ok
}

func (r *fakeOrderRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.orders)
}

type fakeOrderItemRepo struct {
	mu     sync.Mutex
	nextID int64
	items  []orderitem.OrderItem
}

func (r *fakeOrderItemRepo) Insert(_ context.Context, item orderitem.OrderItem) (orderitem.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	item.ID = r.nextID
	r.items = append(r.items, item)

	return item, nil
}

func (r *fakeOrderItemRepo) Query(_ context.Context, filter *orderitem.QueryOrderItemsModel) ([]orderitem.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []orderitem.OrderItem
	for _, item := range r.items {
		for _, id := range filter.OrderIds {
			if item.OrderID == id {
				result = append(result, item)
			}
		}
	}

	return result, nil
}

func (r *fakeOrderItemRepo) byOrder(orderID int64) []orderitem.OrderItem {
	result, _ := r.Query(context.Background(), &orderitem.QueryOrderItemsModel{OrderIds: []int64{orderID}})

	return result
}

func (r *fakeOrderItemRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.items)
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[int64]product.Product
	// drainOnDecrement zeroes this product's stock right before its first
	// decrement, simulating a concurrent checkout winning the race.
	drainOnDecrement int64
}

func (r *fakeProductRepo) add(p product.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
}

func (r *fakeProductRepo) stock(productID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.products[productID].StockQuantity
}

func (r *fakeProductRepo) GetByID(_ context.Context, productID int64) (*product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return nil, product.ErrProductNotFound
	}

	return &p, nil
}

func (r *fakeProductRepo) Query(_ context.Context, filter *product.QueryProductsModel) ([]product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []product.Product
	for _, id := range filter.Ids {
		if p, ok := r.products[id]; ok {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result, nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, productID int64, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return product.ErrProductNotFound
	}

	if r.drainOnDecrement == productID {
		p.StockQuantity = 0
		r.products[productID] = p
		r.drainOnDecrement = 0
	}

	if p.StockQuantity < amount {
		return product.ErrInsufficientStock
	}
	p.StockQuantity -= amount
	r.products[productID] = p

	return nil
}

type fakeProfileRepo struct {
	mu         sync.Mutex
	profiles   map[int64]profile.Profile
	failUpsert bool
}

func (r *fakeProfileRepo) GetOrCreate(_ context.Context, customerID int64) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[customerID]
	if !ok {
		p = profile.Profile{CustomerID: customerID}
		r.profiles[customerID] = p
	}

	return &p, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failUpsert {
		return errors.New("profile storage unavailable")
	}
	r.profiles[p.CustomerID] = p

	return nil
}

func (r *fakeProfileRepo) byCustomer(customerID int64) (profile.Profile, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[customerID]

	return p, ok
}
