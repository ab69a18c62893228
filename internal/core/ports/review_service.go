package ports

import (
	"context"

	"github.com/projethub/projethub/internal/core/domain"
)

// ReviewService covers review CRUD. Updates and deletes are author-only:
// unlike projets, admins get no override on reviews.
type ReviewService interface {
	ListByProjet(ctx context.Context, projetID string) ([]*domain.Review, error)
	Add(ctx context.Context, caller domain.Identity, projetID, content string) (*domain.Review, error)
	Update(ctx context.Context, caller domain.Identity, reviewID, content string) (*domain.Review, error)
	Delete(ctx context.Context, caller domain.Identity, reviewID string) error
}
