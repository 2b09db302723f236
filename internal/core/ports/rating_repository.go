package ports

import (
	"context"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

// RatingRepository persists ratings and computes aggregates on read.
type RatingRepository interface {
	// Insert is a single atomic statement. It returns
	// domain.ErrDuplicateRating when the (store, user) pair already rated
	// and domain.ErrStoreNotFound when the store reference does not resolve.
	Insert(ctx context.Context, rating *domain.Rating) (*domain.Rating, error)
	ListByStore(ctx context.Context, storeID int64) ([]domain.Rating, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Rating, error)
	// ListByOwner returns the ratings of every store the owner holds.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Rating, error)
	Aggregate(ctx context.Context, storeID int64) (*domain.RatingSummary, error)
}
