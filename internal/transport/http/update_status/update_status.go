package updatestatus

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/corray333/storefront/internal/service/models/order"
	"github.com/go-playground/validator/v10"
)

type service interface {
	UpdateStatus(ctx context.Context, orderIds []int64, next order.Status) error
}

// updateStatusRequest represents a bulk status transition request.
type updateStatusRequest struct {
	Ids    []int64 `json:"ids"    validate:"required,min=1,dive,gt=0"`
	Status string  `json:"status" validate:"required"`
}

// Validate validates the update status request.
func (r *updateStatusRequest) Validate() error {
	return validator.New().Struct(r)
}

// UpdateStatus moves a batch of orders to the requested status. The batch
// is atomic: one illegal transition rejects the whole request.
func UpdateStatus(w http.ResponseWriter, r *http.Request, service service) {
	req := updateStatusRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding update status request", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating update status request", "error", err)

		return
	}

	next, err := order.ParseStatus(req.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error parsing order status", "error", err)

		return
	}

	if err := service.UpdateStatus(r.Context(), req.Ids, next); err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidTransition):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, order.ErrOrderNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
			slog.Error("Error updating order status", "error", err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
