package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

// RatingRepository is the Postgres-backed rating store.
type RatingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Insert writes one rating. The (store_id, user_id) unique key and the
// store foreign key make this the single atomic step that enforces the
// one-rating-per-user-per-store and known-store invariants.
func (r *RatingRepository) Insert(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	const query = `
		INSERT INTO ratings (store_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		rating.StoreID, rating.UserID, rating.Score, rating.Comment, rating.CreatedAt,
	).Scan(&rating.ID)
	if err != nil {
		switch {
		case isUniqueViolation(err, constraintRatingsStoreUser):
			return nil, domain.ErrDuplicateRating
		case isForeignKeyViolation(err, constraintRatingsStoreFK):
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("insert rating: %w", err)
	}
	return rating, nil
}

func (r *RatingRepository) ListByStore(ctx context.Context, storeID int64) ([]domain.Rating, error) {
	const query = `
		SELECT r.id, r.store_id, r.user_id, r.rating, COALESCE(r.comment, ''), r.created_at,
		       u.name, u.email
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.store_id = $1
		ORDER BY r.created_at DESC`
	return r.query(ctx, query, func(rows *sql.Rows, rt *domain.Rating) error {
		return rows.Scan(&rt.ID, &rt.StoreID, &rt.UserID, &rt.Score, &rt.Comment, &rt.CreatedAt,
			&rt.UserName, &rt.UserEmail)
	}, storeID)
}

func (r *RatingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Rating, error) {
	const query = `
		SELECT r.id, r.store_id, r.user_id, r.rating, COALESCE(r.comment, ''), r.created_at,
		       s.name, s.address
		FROM ratings r
		JOIN stores s ON s.id = r.store_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC`
	return r.query(ctx, query, func(rows *sql.Rows, rt *domain.Rating) error {
		return rows.Scan(&rt.ID, &rt.StoreID, &rt.UserID, &rt.Score, &rt.Comment, &rt.CreatedAt,
			&rt.StoreName, &rt.StoreAddress)
	}, userID)
}

func (r *RatingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Rating, error) {
	const query = `
		SELECT r.id, r.store_id, r.user_id, r.rating, COALESCE(r.comment, ''), r.created_at,
		       u.name, u.email
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		JOIN stores s ON s.id = r.store_id
		WHERE s.owner_id = $1
		ORDER BY r.created_at DESC`
	return r.query(ctx, query, func(rows *sql.Rows, rt *domain.Rating) error {
		return rows.Scan(&rt.ID, &rt.StoreID, &rt.UserID, &rt.Score, &rt.Comment, &rt.CreatedAt,
			&rt.UserName, &rt.UserEmail)
	}, ownerID)
}

// Aggregate computes the summary on read. AVG over zero rows is NULL, which
// stays a nil mean rather than becoming 0.
func (r *RatingRepository) Aggregate(ctx context.Context, storeID int64) (*domain.RatingSummary, error) {
	const query = `SELECT COUNT(*), AVG(rating) FROM ratings WHERE store_id = $1`
	var summary domain.RatingSummary
	var avg sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, query, storeID).Scan(&summary.Count, &avg); err != nil {
		return nil, fmt.Errorf("aggregate ratings: %w", err)
	}
	if avg.Valid {
		summary.Mean = &avg.Float64
	}
	return &summary, nil
}

func (r *RatingRepository) query(
	ctx context.Context,
	query string,
	scan func(*sql.Rows, *domain.Rating) error,
	args ...any,
) ([]domain.Rating, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var rt domain.Rating
		if err := scan(rows, &rt); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}
