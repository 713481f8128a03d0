package listproducts

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/corray333/storefront/internal/service/models/product"
	"github.com/gorilla/schema"
)

type service interface {
	ListProducts(ctx context.Context, search string, brandID int64, limit, offset int) ([]product.Product, error)
}

type queryProductsRequest struct {
	Search string `schema:"q,omitempty"`
	Brand  int64  `schema:"brandId,omitempty"`
	Limit  int    `schema:"limit,omitempty"`
	Offset int    `schema:"offset,omitempty"`
}

func ListProducts(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &queryProductsRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding product query", "error", err)

		return
	}

	products, err := service.ListProducts(r.Context(), query.Search, query.Brand, query.Limit, query.Offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error listing products", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(products); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response", "error", err)
	}
}
