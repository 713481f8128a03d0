package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/corray333/storefront/internal/service/services/checkoutsvc"
	"github.com/corray333/storefront/pkg/http/middleware/auth"
	"github.com/corray333/storefront/pkg/http/middleware/session"
	"github.com/go-playground/validator/v10"
)

type service interface {
	Checkout(ctx context.Context, req checkoutsvc.CheckoutRequest) (int64, error)
}

// checkoutRequest represents a checkout request.
type checkoutRequest struct {
	Fulfillment string `json:"fulfillment"`
	Phone       string `json:"phone"    validate:"required"`
	Whatsapp    string `json:"whatsapp" validate:"required"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}

// Validate validates the checkout request.
func (r *checkoutRequest) Validate() error {
	return validator.New().Struct(r)
}

type checkoutResponse struct {
	OrderID int64 `json:"orderId"`
}

// Checkout handles the checkout request: it converts the session's cart
// into a persisted order for the authenticated customer.
func Checkout(w http.ResponseWriter, r *http.Request, service service) {
	req := checkoutRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding checkout request", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating checkout request", "error", err)

		return
	}

	orderID, err := service.Checkout(r.Context(), checkoutsvc.CheckoutRequest{
		SessionID:   session.SessionID(r.Context()),
		CustomerID:  auth.CustomerID(r.Context()),
		Fulfillment: req.Fulfillment,
		Phone:       req.Phone,
		Whatsapp:    req.Whatsapp,
		Address:     req.Address,
		Notes:       req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkoutsvc.ErrEmptyCart), errors.Is(err, checkoutsvc.ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, checkoutsvc.ErrStockExhausted):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
			slog.Error("Error performing checkout", "error", err)
		}

		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(checkoutResponse{OrderID: orderID}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response", "error", err)
	}
}
