package ports

import (
	"context"

	"github.com/projethub/projethub/internal/core/domain"
)

// UserService covers the admin-only user management operations. Role gating
// happens upstream in the router; the service still enforces the hard rule
// that admin accounts are never deletable.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, caller domain.Identity, id string) error
}

// AuditRecorder accepts audit entries for asynchronous persistence. Recording
// is fire-and-forget: implementations must never block the caller on storage.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
