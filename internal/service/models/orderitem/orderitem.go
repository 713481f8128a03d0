package orderitem

import (
	"time"
)

// OrderItem is one fulfilled line of an order. Quantity is the quantity
// actually allocated at checkout, bounded by the stock available at that
// moment, not necessarily the quantity the customer requested.
type OrderItem struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"orderId"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}
