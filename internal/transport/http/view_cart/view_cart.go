package viewcart

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/corray333/storefront/internal/service/services/cartsvc"
	"github.com/corray333/storefront/pkg/http/middleware/session"
)

type service interface {
	Detail(ctx context.Context, sessionID string) (*cartsvc.Detail, error)
}

func ViewCart(w http.ResponseWriter, r *http.Request, service service) {
	detail, err := service.Detail(r.Context(), session.SessionID(r.Context()))
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
