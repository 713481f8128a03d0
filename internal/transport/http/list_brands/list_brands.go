package listbrands

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/corray333/storefront/internal/service/models/brand"
)

type service interface {
	ListBrands(ctx context.Context) ([]brand.Brand, error)
}

func ListBrands(w http.ResponseWriter, r *http.Request, service service) {
	brands, err := service.ListBrands(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error listing brands", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(brands); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response", "error", err)
	}
}
