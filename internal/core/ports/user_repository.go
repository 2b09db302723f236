package ports

import (
	"context"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

// UserRepository owns persistence of user records. Every call reflects
// committed state; there is no caching layer in front of it.
type UserRepository interface {
	// FindByEmail is an exact match. Case policy is fixed at creation time;
	// the repository applies no normalization of its own.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Create returns domain.ErrEmailTaken when the email already exists.
	// The uniqueness check and the insert are one atomic statement.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateName(ctx context.Context, id int64, name string) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
}
