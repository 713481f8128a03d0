package iprofilerepo

import (
	"context"

	"github.com/corray333/storefront/internal/service/models/profile"
)

// IProfileRepository is an interface for the customer profile postgres repository.
type IProfileRepository interface {
	GetOrCreate(ctx context.Context, customerID int64) (*profile.Profile, error)
	Upsert(ctx context.Context, p profile.Profile) error
}
