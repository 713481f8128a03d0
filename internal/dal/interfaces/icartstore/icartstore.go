package icartstore

import (
	"context"

	"github.com/corray333/storefront/internal/service/models/cart"
)

// ICartStore is an interface for the session-scoped cart store. Every
// mutation of a cart must be followed by Save before the response is sent;
// there is no implicit write-back.
type ICartStore interface {
	// Get loads the session's cart. A missing session yields an empty cart.
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
	Save(ctx context.Context, sessionID string, c *cart.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
