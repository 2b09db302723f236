package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

// StoreRepository is the Postgres-backed store catalog.
type StoreRepository struct {
	db *sql.DB
}

func NewStoreRepository(db *sql.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// listingColumns joins stores with their owner and rating aggregate. AVG over
// zero rows is NULL, which the scanner keeps as an absent mean.
const listingColumns = `
	SELECT s.id, s.name, s.address, s.owner_id, s.created_at,
	       u.name, u.email,
	       COUNT(r.id), AVG(r.rating)
	FROM stores s
	JOIN users u ON u.id = s.owner_id
	LEFT JOIN ratings r ON r.store_id = s.id`

// Create inserts the store. One-store-per-owner rides on stores_owner_id_key.
func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	const query = `
		INSERT INTO stores (name, address, owner_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		store.Name, store.Address, store.OwnerID, store.CreatedAt,
	).Scan(&store.ID)
	if err != nil {
		if isUniqueViolation(err, constraintStoresOwner) {
			return nil, domain.ErrOwnerHasStore
		}
		return nil, fmt.Errorf("insert store: %w", err)
	}
	return store, nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id int64) (*domain.StoreListing, error) {
	query := listingColumns + `
	WHERE s.id = $1
	GROUP BY s.id, u.name, u.email`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *StoreRepository) FindByOwner(ctx context.Context, ownerID int64) (*domain.StoreListing, error) {
	query := listingColumns + `
	WHERE s.owner_id = $1
	GROUP BY s.id, u.name, u.email`
	return r.scanOne(r.db.QueryRowContext(ctx, query, ownerID))
}

func (r *StoreRepository) List(ctx context.Context) ([]domain.StoreListing, error) {
	query := listingColumns + `
	GROUP BY s.id, u.name, u.email
	ORDER BY AVG(r.rating) DESC NULLS LAST, s.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var listings []domain.StoreListing
	for rows.Next() {
		listing, err := scanListing(rows.Scan)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *listing)
	}
	return listings, rows.Err()
}

func (r *StoreRepository) Update(ctx context.Context, ownerID int64, name, address string) error {
	const query = `UPDATE stores SET name = $1, address = $2 WHERE owner_id = $3`
	result, err := r.db.ExecContext(ctx, query, name, address, ownerID)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}

// Delete removes the store row and all its rating rows in one transaction.
// Either both disappear or neither does.
func (r *StoreRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete store: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ratings WHERE store_id = $1`, id); err != nil {
		return fmt.Errorf("delete store ratings: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrStoreNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete store: %w", err)
	}
	return nil
}

func (r *StoreRepository) scanOne(row *sql.Row) (*domain.StoreListing, error) {
	listing, err := scanListing(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}
	return listing, nil
}

func scanListing(scan func(...any) error) (*domain.StoreListing, error) {
	var l domain.StoreListing
	var avg sql.NullFloat64
	err := scan(
		&l.ID, &l.Name, &l.Address, &l.OwnerID, &l.CreatedAt,
		&l.OwnerName, &l.OwnerEmail,
		&l.TotalRatings, &avg,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan store listing: %w", err)
	}
	if avg.Valid {
		l.AverageScore = &avg.Float64
	}
	return &l, nil
}
