package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/projethub/projethub/internal/core/domain"
	"github.com/projethub/projethub/internal/core/policy"
	"github.com/projethub/projethub/internal/core/ports"
)

// UserService implements the admin user-management operations.
type UserService struct {
	users ports.UserRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, audit ports.AuditRecorder, log zerolog.Logger) *UserService {
	return &UserService{users: users, audit: audit, log: log}
}

// List returns every account. Password hashes never serialize (excluded at
// the domain type), so the raw users are safe to hand to the transport layer.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

// Delete removes an account. Admin accounts are never deletable, regardless
// of who asks. The existence check runs first so an unknown id is a 404, not
// a 403.
func (s *UserService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanDeleteUser(target) {
		return domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Str("deleted_by", caller.ID).Msg("user deleted")
	s.audit.Record(domain.AuditEntry{
		Action:   "user.delete",
		ActorID:  caller.ID,
		Entity:   "user",
		EntityID: id,
		At:       time.Now().UTC(),
	})
	return nil
}
