package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
	"github.com/ratewise/store-ratings-api/internal/core/ports"
)

type storeService struct {
	stores  ports.StoreRepository
	ratings ports.RatingRepository
	audit   ports.AuditRecorder
	log     zerolog.Logger
}

// NewStoreService returns a StoreService implementation.
func NewStoreService(
	stores ports.StoreRepository,
	ratings ports.RatingRepository,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) ports.StoreService {
	return &storeService{stores: stores, ratings: ratings, audit: audit, log: log}
}

func (s *storeService) Catalog(ctx context.Context) ([]domain.StoreListing, error) {
	return s.stores.List(ctx)
}

func (s *storeService) Get(ctx context.Context, id int64) (*domain.StoreListing, error) {
	return s.stores.FindByID(ctx, id)
}

// Create registers the owner's single store. The one-store-per-owner rule is
// enforced by the same mechanism as rating uniqueness: an atomic insert
// against a unique key, never a check-then-insert.
func (s *storeService) Create(ctx context.Context, ownerID int64, name, address string) (*domain.Store, error) {
	store := &domain.Store{
		Name:      name,
		Address:   address,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.stores.Create(ctx, store)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{
		Action:   domain.AuditStoreCreated,
		ActorID:  ownerID,
		Subject:  created.Name,
		Occurred: time.Now().UTC(),
	})
	s.log.Info().Int64("store_id", created.ID).Int64("owner_id", ownerID).Msg("store created")

	return created, nil
}

func (s *storeService) Update(ctx context.Context, ownerID int64, name, address string) error {
	return s.stores.Update(ctx, ownerID, name, address)
}

func (s *storeService) OwnerStore(ctx context.Context, ownerID int64) (*domain.StoreListing, error) {
	return s.stores.FindByOwner(ctx, ownerID)
}

func (s *storeService) OwnerRatings(ctx context.Context, ownerID int64) ([]domain.Rating, error) {
	return s.ratings.ListByOwner(ctx, ownerID)
}

// Delete removes the store together with its ratings. The repository runs
// both deletes in one transaction; a partially deleted store never exists.
func (s *storeService) Delete(ctx context.Context, id int64) error {
	if err := s.stores.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEntry{
		Action:   domain.AuditStoreDeleted,
		Occurred: time.Now().UTC(),
	})
	s.log.Info().Int64("store_id", id).Msg("store deleted")
	return nil
}
