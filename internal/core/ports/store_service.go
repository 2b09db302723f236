package ports

import (
	"context"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

type StoreService interface {
	Catalog(ctx context.Context) ([]domain.StoreListing, error)
	Get(ctx context.Context, id int64) (*domain.StoreListing, error)
	// Create enforces one store per owner atomically.
	Create(ctx context.Context, ownerID int64, name, address string) (*domain.Store, error)
	Update(ctx context.Context, ownerID int64, name, address string) error
	OwnerStore(ctx context.Context, ownerID int64) (*domain.StoreListing, error)
	OwnerRatings(ctx context.Context, ownerID int64) ([]domain.Rating, error)
	// Delete cascades to the store's ratings; partial deletion never happens.
	Delete(ctx context.Context, id int64) error
}
