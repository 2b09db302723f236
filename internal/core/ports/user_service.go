package ports

import (
	"context"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

type UserService interface {
	Profile(ctx context.Context, id int64) (*domain.User, error)
	UpdateName(ctx context.Context, id int64, name string) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	// DeleteUser is an administrative operation; dependent stores and
	// ratings are removed by the store's FK cascade.
	DeleteUser(ctx context.Context, id int64) error
}
