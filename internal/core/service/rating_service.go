package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
	"github.com/ratewise/store-ratings-api/internal/core/ports"
)

type ratingService struct {
	ratings ports.RatingRepository
	stores  ports.StoreRepository
	audit   ports.AuditRecorder
	log     zerolog.Logger
}

// NewRatingService returns a RatingService implementation.
func NewRatingService(
	ratings ports.RatingRepository,
	stores ports.StoreRepository,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) ports.RatingService {
	return &ratingService{ratings: ratings, stores: stores, audit: audit, log: log}
}

// Submit records one rating for a (store, user) pair. Score validation runs
// before any storage access. Duplicate detection is not a read-then-write:
// the insert itself carries the uniqueness guarantee, so two concurrent
// submissions cannot both succeed.
func (s *ratingService) Submit(ctx context.Context, in ports.SubmitRatingInput) (*domain.Rating, error) {
	if !domain.ValidScore(in.Score) {
		return nil, domain.ErrInvalidScore
	}

	rating := &domain.Rating{
		StoreID:   in.StoreID,
		UserID:    in.UserID,
		Score:     in.Score,
		Comment:   in.Comment,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.ratings.Insert(ctx, rating)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{
		Action:   domain.AuditRatingCreated,
		ActorID:  in.UserID,
		Occurred: time.Now().UTC(),
	})
	s.log.Info().
		Int64("store_id", in.StoreID).
		Int64("user_id", in.UserID).
		Int("score", in.Score).
		Msg("rating submitted")

	return created, nil
}

// Aggregate computes count and mean for a store on read. The mean is absent,
// not zero, when the store has no ratings.
func (s *ratingService) Aggregate(ctx context.Context, storeID int64) (*domain.RatingSummary, error) {
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, err
	}
	return s.ratings.Aggregate(ctx, storeID)
}

func (s *ratingService) ListForStore(ctx context.Context, storeID int64) ([]domain.Rating, error) {
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, err
	}
	return s.ratings.ListByStore(ctx, storeID)
}

func (s *ratingService) ListForUser(ctx context.Context, userID int64) ([]domain.Rating, error) {
	return s.ratings.ListByUser(ctx, userID)
}
