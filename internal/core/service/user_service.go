package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
	"github.com/ratewise/store-ratings-api/internal/core/ports"
)

type userService struct {
	users ports.UserRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

// NewUserService returns a UserService implementation.
func NewUserService(users ports.UserRepository, audit ports.AuditRecorder, log zerolog.Logger) ports.UserService {
	return &userService{users: users, audit: audit, log: log}
}

func (s *userService) Profile(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateName changes the display name. Role and email are immutable through
// this surface.
func (s *userService) UpdateName(ctx context.Context, id int64, name string) error {
	return s.users.UpdateName(ctx, id, name)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEntry{
		Action:   domain.AuditUserDeleted,
		Occurred: time.Now().UTC(),
	})
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
