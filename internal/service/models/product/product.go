package product

import (
	"errors"
	"time"

	"github.com/corray333/storefront/internal/service/models/money"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product is a catalog snapshot: name, live price and live stock as read at
// one instant. Checkout decrements StockQuantity; the invoice recomputes
// from Price at render time.
type Product struct {
	ID            int64       `json:"id"`
	BrandID       int64       `json:"brandId"`
	CategoryID    int64       `json:"categoryId"`
	Name          string      `json:"name"`
	NameTe        string      `json:"nameTe,omitempty"`
	Description   string      `json:"description,omitempty"`
	DescriptionTe string      `json:"descriptionTe,omitempty"`
	Price         money.Money `json:"price"`
	StockQuantity int         `json:"stockQuantity"`
	IsActive      bool        `json:"isActive"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}
