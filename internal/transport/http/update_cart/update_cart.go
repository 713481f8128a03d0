package updatecart

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/corray333/storefront/internal/service/services/cartsvc"
	"github.com/corray333/storefront/pkg/http/middleware/session"
	"github.com/go-chi/chi/v5"
)

type service interface {
	Add(ctx context.Context, sessionID string, productID int64, qty int) error
	SetQuantity(ctx context.Context, sessionID string, productID int64, rawQty string) error
	Remove(ctx context.Context, sessionID string, productID int64) error
	Detail(ctx context.Context, sessionID string) (*cartsvc.Detail, error)
}

type addToCartRequest struct {
	Quantity int `json:"quantity"`
}

// setQuantityRequest carries the quantity as the raw client string so that
// unparseable input coerces to zero instead of failing the decode.
type setQuantityRequest struct {
	Quantity string `json:"quantity"`
}

func AddToCart(w http.ResponseWriter, r *http.Request, service service) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	req := addToCartRequest{Quantity: 1}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			slog.Error("Error decoding add to cart request", "error", err)

			return
		}
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sessionID := session.SessionID(r.Context())
	if err := service.Add(r.Context(), sessionID, productID, req.Quantity); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error adding to cart", "error", err)

		return
	}

	respondWithCart(w, r, service, sessionID)
}

func SetQuantity(w http.ResponseWriter, r *http.Request, service service) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	req := setQuantityRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding set quantity request", "error", err)

		return
	}

	sessionID := session.SessionID(r.Context())
	if err := service.SetQuantity(r.Context(), sessionID, productID, req.Quantity); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error updating cart quantity", "error", err)

		return
	}

	respondWithCart(w, r, service, sessionID)
}

func RemoveFromCart(w http.ResponseWriter, r *http.Request, service service) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	sessionID := session.SessionID(r.Context())
	if err := service.Remove(r.Context(), sessionID, productID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error removing from cart", "error", err)

		return
	}

	respondWithCart(w, r, service, sessionID)
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error parsing product id", "error", err)

		return 0, false
	}

	return productID, true
}

func respondWithCart(w http.ResponseWriter, r *http.Request, service service, sessionID string) {
	detail, err := service.Detail(r.Context(), sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error loading cart", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(detail); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response", "error", err)
	}
}
