package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
	"github.com/ratewise/store-ratings-api/internal/core/ports"
)

var ErrTooManyAttempts = errors.New("too many failed login attempts")

// LoginLimiter abstracts the failure counter (Redis) that throttles
// credential guessing per email.
type LoginLimiter interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration, login and password changes.
type AuthService struct {
	repo       ports.UserRepository
	tokens     *TokenService
	limiter    LoginLimiter
	audit      ports.AuditRecorder
	bcryptCost int
	log        zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	tokens *TokenService,
	limiter LoginLimiter,
	audit ports.AuditRecorder,
	bcryptCost int,
	log zerolog.Logger,
) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		repo:       repo,
		tokens:     tokens,
		limiter:    limiter,
		audit:      audit,
		bcryptCost: bcryptCost,
		log:        log,
	}
}

// Register creates an account. Only user and store_owner may self-register;
// admin accounts are seeded at bootstrap. Validation runs before any
// storage access.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	if role != domain.RoleUser && role != domain.RoleStoreOwner {
		return nil, domain.ErrInvalidRole
	}
	if !domain.ValidPassword(password) {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name: name,
		// Case policy is fixed here, at creation time. Lookups are exact
		// matches against the stored form.
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{
		Action:   domain.AuditRegister,
		ActorID:  created.ID,
		Subject:  created.Email,
		Occurred: time.Now().UTC(),
	})
	s.log.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user registered")

	return created, nil
}

// Login authenticates and mints a session token. The password format check
// runs before storage is touched, mirroring registration. A missing account
// and a wrong password produce the identical error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if !domain.ValidPassword(password) {
		return "", nil, domain.ErrWeakPassword
	}

	email = strings.ToLower(strings.TrimSpace(email))

	if blocked, err := s.limiter.TooManyFailures(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter check failed, proceeding")
	} else if blocked {
		return "", nil, ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := comparePassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, domain.ErrCorruptCredential) {
			return "", nil, err
		}
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter reset failed")
	}
	s.audit.Record(domain.AuditEntry{
		Action:   domain.AuditLogin,
		ActorID:  user.ID,
		Subject:  user.Email,
		Occurred: time.Now().UTC(),
	})

	return token, user, nil
}

// ChangePassword verifies the current password, then stores a fresh hash of
// the new one. The new plaintext is held to the registration policy.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	if !domain.ValidPassword(next) {
		return domain.ErrWeakPassword
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := comparePassword(user.PasswordHash, current); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEntry{
		Action:   domain.AuditPasswordChange,
		ActorID:  user.ID,
		Subject:  user.Email,
		Occurred: time.Now().UTC(),
	})
	return nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter record failed")
	}
	s.audit.Record(domain.AuditEntry{
		Action:   domain.AuditLoginFailed,
		Subject:  email,
		Occurred: time.Now().UTC(),
	})
}

// comparePassword distinguishes a mismatch (ErrInvalidCredentials) from an
// unreadable stored digest (ErrCorruptCredential). The latter is an internal
// fault, never the caller's doing.
func comparePassword(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return domain.ErrInvalidCredentials
	default:
		return domain.ErrCorruptCredential
	}
}
