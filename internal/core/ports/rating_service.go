package ports

import (
	"context"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

// SubmitRatingInput carries one rating submission.
type SubmitRatingInput struct {
	StoreID int64
	UserID  int64
	Score   int
	Comment string
}

// RatingService guards rating integrity: one rating per user per store and
// read-side aggregates.
type RatingService interface {
	Submit(ctx context.Context, in SubmitRatingInput) (*domain.Rating, error)
	Aggregate(ctx context.Context, storeID int64) (*domain.RatingSummary, error)
	ListForStore(ctx context.Context, storeID int64) ([]domain.Rating, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Rating, error)
}
