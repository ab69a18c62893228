package ports

import (
	"context"

	"github.com/projethub/projethub/internal/core/domain"
)

// ProjetInput carries the writable fields of a projet.
type ProjetInput struct {
	Title       string
	Category    string
	Description string
}

// Pagination describes one page of the projet listing.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalProjets int64 `json:"totalProjets"`
	Limit        int   `json:"limit"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// ProjetPage is the result of the public projet listing.
type ProjetPage struct {
	Projets    []*domain.Projet
	Pagination Pagination
}

// ProjetDetail is a projet together with its reviews.
type ProjetDetail struct {
	Projet  *domain.Projet
	Reviews []*domain.Review
}

// ProjetService covers the projet CRUD operations. Mutations take the
// caller's identity explicitly; read operations are public.
type ProjetService interface {
	Create(ctx context.Context, caller domain.Identity, in ProjetInput) (*domain.Projet, error)
	List(ctx context.Context, page, limit int) (*ProjetPage, error)
	Get(ctx context.Context, id string) (*ProjetDetail, error)
	Update(ctx context.Context, caller domain.Identity, id string, in ProjetInput) (*domain.Projet, error)
	// Delete removes the projet and all its reviews as one failure-atomic
	// unit; allowed for the author or an admin.
	Delete(ctx context.Context, caller domain.Identity, id string) error
	Categories(ctx context.Context) ([]string, error)
	// ListByAuthor returns the caller's projets, each with its reviews.
	ListByAuthor(ctx context.Context, caller domain.Identity) ([]*ProjetDetail, error)
}
