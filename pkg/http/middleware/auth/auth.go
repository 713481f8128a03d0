package auth

import (
	"context"
	"net/http"
	"strconv"
)

type contextKey struct{}

const headerName = "X-Customer-ID"

// NewAuthMiddleware reads the customer id set by the authenticating
// gateway and rejects requests that carry none. Routes behind it can
// read the id via CustomerID.
func NewAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerName)
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || customerID <= 0 {
			http.Error(w, "missing or invalid "+headerName+" header", http.StatusUnauthorized)

			return
		}

		ctx := context.WithValue(r.Context(), contextKey{}, customerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CustomerID returns the customer id stored in the context, or 0 when the
// middleware did not run.
func CustomerID(ctx context.Context) int64 {
	customerID, _ := ctx.Value(contextKey{}).(int64)

	return customerID
}
