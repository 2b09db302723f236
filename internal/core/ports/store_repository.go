package ports

import (
	"context"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

// StoreRepository persists stores and serves the joined listing shape.
type StoreRepository interface {
	// Create returns domain.ErrOwnerHasStore when the owner already holds a
	// store. The check is backed by a unique key, not a read-then-write.
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	FindByID(ctx context.Context, id int64) (*domain.StoreListing, error)
	FindByOwner(ctx context.Context, ownerID int64) (*domain.StoreListing, error)
	// List returns all stores with owner and aggregate columns, ordered by
	// average score descending.
	List(ctx context.Context) ([]domain.StoreListing, error)
	Update(ctx context.Context, ownerID int64, name, address string) error
	// Delete removes the store and all its ratings in a single transaction.
	Delete(ctx context.Context, id int64) error
}
