package ports

import (
	"context"

	"github.com/projethub/projethub/internal/core/domain"
)

// UserRepository persists user accounts. Implementations surface ids as
// canonical hex strings and map uniqueness violations on pseudo/email to a
// field-level domain.ValidationError.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs resolves several users at once, keyed by id. Missing ids are
	// simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// ProjetRepository persists projets.
type ProjetRepository interface {
	Create(ctx context.Context, projet *domain.Projet) (*domain.Projet, error)
	FindByID(ctx context.Context, id string) (*domain.Projet, error)
	// FindPage returns one page ordered by creation time, most recent first.
	FindPage(ctx context.Context, skip, limit int64) ([]*domain.Projet, error)
	FindByAuthor(ctx context.Context, authorID string) ([]*domain.Projet, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, projet *domain.Projet) error
	Delete(ctx context.Context, id string) error
}

// ReviewRepository persists reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	FindByProjet(ctx context.Context, projetID string) ([]*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id string) error
	// DeleteByProjet removes every review referencing projetID and returns
	// the number removed.
	DeleteByProjet(ctx context.Context, projetID string) (int64, error)
}

// CategoryRepository reads the curated category records used for best-effort
// enrichment of a projet's free-text category.
type CategoryRepository interface {
	// FindByName matches the trimmed name exactly (case-sensitive).
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	DistinctNames(ctx context.Context) ([]string, error)
}

// AuditRepository appends entries to the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}
