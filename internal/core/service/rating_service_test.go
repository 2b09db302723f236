package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
	"github.com/ratewise/store-ratings-api/internal/core/ports"
)

type ratingKey struct {
	storeID int64
	userID  int64
}

type stubRatingRepo struct {
	ratings map[ratingKey]*domain.Rating
	nextID  int64
	calls   int
}

func newStubRatingRepo() *stubRatingRepo {
	return &stubRatingRepo{ratings: make(map[ratingKey]*domain.Rating)}
}

func (r *stubRatingRepo) Insert(_ context.Context, rating *domain.Rating) (*domain.Rating, error) {
	r.calls++
	key := ratingKey{storeID: rating.StoreID, userID: rating.UserID}
	if _, exists := r.ratings[key]; exists {
		return nil, domain.ErrDuplicateRating
	}
	r.nextID++
	stored := *rating
	stored.ID = r.nextID
	r.ratings[key] = &stored
	clone := stored
	return &clone, nil
}

func (r *stubRatingRepo) ListByStore(_ context.Context, storeID int64) ([]domain.Rating, error) {
	r.calls++
	var out []domain.Rating
	for _, rt := range r.ratings {
		if rt.StoreID == storeID {
			out = append(out, *rt)
		}
	}
	return out, nil
}

func (r *stubRatingRepo) ListByUser(_ context.Context, userID int64) ([]domain.Rating, error) {
	r.calls++
	var out []domain.Rating
	for _, rt := range r.ratings {
		if rt.UserID == userID {
			out = append(out, *rt)
		}
	}
	return out, nil
}

func (r *stubRatingRepo) ListByOwner(_ context.Context, _ int64) ([]domain.Rating, error) {
	r.calls++
	return nil, nil
}

func (r *stubRatingRepo) Aggregate(_ context.Context, storeID int64) (*domain.RatingSummary, error) {
	r.calls++
	var count int64
	var sum int
	for _, rt := range r.ratings {
		if rt.StoreID == storeID {
			count++
			sum += rt.Score
		}
	}
	summary := &domain.RatingSummary{Count: count}
	if count > 0 {
		mean := float64(sum) / float64(count)
		summary.Mean = &mean
	}
	return summary, nil
}

type stubStoreRepo struct {
	stores map[int64]*domain.StoreListing
	owners map[int64]int64
	nextID int64
}

func newStubStoreRepo() *stubStoreRepo {
	return &stubStoreRepo{
		stores: make(map[int64]*domain.StoreListing),
		owners: make(map[int64]int64),
	}
}

func (r *stubStoreRepo) addStore(ownerID int64) int64 {
	r.nextID++
	r.stores[r.nextID] = &domain.StoreListing{
		Store: domain.Store{ID: r.nextID, OwnerID: ownerID},
	}
	r.owners[ownerID] = r.nextID
	return r.nextID
}

func (r *stubStoreRepo) Create(_ context.Context, store *domain.Store) (*domain.Store, error) {
	if _, exists := r.owners[store.OwnerID]; exists {
		return nil, domain.ErrOwnerHasStore
	}
	id := r.addStore(store.OwnerID)
	created := *store
	created.ID = id
	return &created, nil
}

func (r *stubStoreRepo) FindByID(_ context.Context, id int64) (*domain.StoreListing, error) {
	if s, ok := r.stores[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, domain.ErrStoreNotFound
}

func (r *stubStoreRepo) FindByOwner(_ context.Context, ownerID int64) (*domain.StoreListing, error) {
	if id, ok := r.owners[ownerID]; ok {
		return r.FindByID(context.Background(), id)
	}
	return nil, domain.ErrStoreNotFound
}

func (r *stubStoreRepo) List(_ context.Context) ([]domain.StoreListing, error) {
	var out []domain.StoreListing
	for _, s := range r.stores {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubStoreRepo) Update(_ context.Context, ownerID int64, name, address string) error {
	id, ok := r.owners[ownerID]
	if !ok {
		return domain.ErrStoreNotFound
	}
	r.stores[id].Name = name
	r.stores[id].Address = address
	return nil
}

func (r *stubStoreRepo) Delete(_ context.Context, id int64) error {
	s, ok := r.stores[id]
	if !ok {
		return domain.ErrStoreNotFound
	}
	delete(r.owners, s.OwnerID)
	delete(r.stores, id)
	return nil
}

func newRatingService(ratings *stubRatingRepo, stores *stubStoreRepo) ports.RatingService {
	return NewRatingService(ratings, stores, &stubRecorder{}, zerolog.Nop())
}

func TestRatingService_Submit(t *testing.T) {
	ratings := newStubRatingRepo()
	stores := newStubStoreRepo()
	storeID := stores.addStore(7)
	svc := newRatingService(ratings, stores)

	created, err := svc.Submit(context.Background(), ports.SubmitRatingInput{
		StoreID: storeID, UserID: 3, Score: 4, Comment: "solid",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.Score != 4 {
		t.Fatalf("unexpected score: %d", created.Score)
	}
}

func TestRatingService_SubmitInvalidScore(t *testing.T) {
	ratings := newStubRatingRepo()
	stores := newStubStoreRepo()
	storeID := stores.addStore(7)
	svc := newRatingService(ratings, stores)

	for _, score := range []int{0, -1, 6, 100} {
		_, err := svc.Submit(context.Background(), ports.SubmitRatingInput{
			StoreID: storeID, UserID: 3, Score: score,
		})
		if err != domain.ErrInvalidScore {
			t.Fatalf("score %d: expected ErrInvalidScore, got %v", score, err)
		}
	}
	if ratings.calls != 0 {
		t.Fatalf("invalid scores must not touch storage, got %d calls", ratings.calls)
	}
}

func TestRatingService_SubmitDuplicate(t *testing.T) {
	ratings := newStubRatingRepo()
	stores := newStubStoreRepo()
	storeID := stores.addStore(7)
	svc := newRatingService(ratings, stores)

	if _, err := svc.Submit(context.Background(), ports.SubmitRatingInput{
		StoreID: storeID, UserID: 3, Score: 5,
	}); err != nil {
		t.Fatalf("first rating failed: %v", err)
	}

	_, err := svc.Submit(context.Background(), ports.SubmitRatingInput{
		StoreID: storeID, UserID: 3, Score: 3,
	})
	if err != domain.ErrDuplicateRating {
		t.Fatalf("expected ErrDuplicateRating, got %v", err)
	}

	// The rejected second attempt leaves the first score untouched.
	summary, err := svc.Aggregate(context.Background(), storeID)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if summary.Count != 1 {
		t.Fatalf("expected count 1, got %d", summary.Count)
	}
	if summary.Mean == nil || *summary.Mean != 5 {
		t.Fatalf("expected mean 5, got %v", summary.Mean)
	}
}

func TestRatingService_AggregateEmpty(t *testing.T) {
	ratings := newStubRatingRepo()
	stores := newStubStoreRepo()
	storeID := stores.addStore(7)
	svc := newRatingService(ratings, stores)

	summary, err := svc.Aggregate(context.Background(), storeID)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if summary.Count != 0 {
		t.Fatalf("expected count 0, got %d", summary.Count)
	}
	if summary.Mean != nil {
		t.Fatalf("mean must be absent for an unrated store, got %v", *summary.Mean)
	}
}

func TestRatingService_AggregateUnknownStore(t *testing.T) {
	svc := newRatingService(newStubRatingRepo(), newStubStoreRepo())

	if _, err := svc.Aggregate(context.Background(), 12345); err != domain.ErrStoreNotFound {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}

func TestRatingService_ListForStoreUnknown(t *testing.T) {
	svc := newRatingService(newStubRatingRepo(), newStubStoreRepo())

	if _, err := svc.ListForStore(context.Background(), 12345); err != domain.ErrStoreNotFound {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}
