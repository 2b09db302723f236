package ports

import (
	"context"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

// AuthService implements onboarding and authentication.
type AuthService interface {
	// Register creates an account with role user or store_owner. Admin
	// accounts cannot self-register; they are seeded at bootstrap.
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
	// Login returns a signed session token and the public profile. Lookup
	// failure and password mismatch are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ChangePassword verifies the current password before storing the new
	// hash. The new plaintext is held to the same policy as registration.
	ChangePassword(ctx context.Context, userID int64, current, next string) error
}
