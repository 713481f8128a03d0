package invoice

import (
	"github.com/corray333/storefront/internal/service/models/money"
	"github.com/corray333/storefront/internal/service/models/order"
)

// Row is one computed invoice line: the product's current price times the
// fulfilled quantity.
type Row struct {
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Price    money.Money `json:"price"`
	Subtotal money.Money `json:"subtotal"`
}

// Invoice is the computed document handed to a rendering sink. Rows follow
// order-item creation order.
type Invoice struct {
	Order order.Order `json:"order"`
	Rows  []Row       `json:"rows"`
	Total money.Money `json:"total"`
}
