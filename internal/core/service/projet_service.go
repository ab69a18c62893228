package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/projethub/projethub/internal/core/domain"
	"github.com/projethub/projethub/internal/core/policy"
	"github.com/projethub/projethub/internal/core/ports"
)

const (
	// Page size for the public listing; requests asking for more are clamped.
	maxPageLimit = 6
)

// ProjetService implements projet CRUD with ownership enforcement and the
// review cascade on delete.
type ProjetService struct {
	projets    ports.ProjetRepository
	reviews    ports.ReviewRepository
	users      ports.UserRepository
	categories ports.CategoryRepository
	cascade    *Cascade
	audit      ports.AuditRecorder
	log        zerolog.Logger
}

func NewProjetService(
	projets ports.ProjetRepository,
	reviews ports.ReviewRepository,
	users ports.UserRepository,
	categories ports.CategoryRepository,
	cascade *Cascade,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *ProjetService {
	return &ProjetService{
		projets:    projets,
		reviews:    reviews,
		users:      users,
		categories: categories,
		cascade:    cascade,
		audit:      audit,
		log:        log,
	}
}

// Create persists a new projet owned by the caller. The category link is a
// best-effort enrichment: a lookup miss or error never blocks the write.
func (s *ProjetService) Create(ctx context.Context, caller domain.Identity, in ports.ProjetInput) (*domain.Projet, error) {
	if verr := validateProjetInput(in); verr != nil {
		return nil, verr
	}

	now := time.Now().UTC()
	projet := &domain.Projet{
		Title:       in.Title,
		Category:    in.Category,
		CategoryID:  s.resolveCategory(ctx, in.Category),
		Description: in.Description,
		AuthorID:    caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.projets.Create(ctx, projet)
	if err != nil {
		return nil, err
	}
	if err := s.attachAuthors(ctx, created); err != nil {
		return nil, err
	}

	s.log.Info().Str("projet_id", created.ID).Str("author_id", caller.ID).Msg("projet created")
	s.audit.Record(domain.AuditEntry{
		Action:   "projet.create",
		ActorID:  caller.ID,
		Entity:   "projet",
		EntityID: created.ID,
		At:       now,
	})
	return created, nil
}

// List returns one page of projets, most recent first, with authors resolved
// to their display-safe fields.
func (s *ProjetService) List(ctx context.Context, page, limit int) (*ports.ProjetPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageLimit {
		limit = maxPageLimit
	}

	total, err := s.projets.Count(ctx)
	if err != nil {
		return nil, err
	}

	skip := int64(page-1) * int64(limit)
	projets, err := s.projets.FindPage(ctx, skip, int64(limit))
	if err != nil {
		return nil, err
	}
	if projets == nil {
		// An empty page serializes as [], never null.
		projets = []*domain.Projet{}
	}
	if err := s.attachAuthors(ctx, projets...); err != nil {
		return nil, err
	}

	totalPages := int(total / int64(limit))
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &ports.ProjetPage{
		Projets: projets,
		Pagination: ports.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalProjets: total,
			Limit:        limit,
			HasNextPage:  page < totalPages,
			HasPrevPage:  page > 1,
		},
	}, nil
}

// Get returns a projet with its reviews. Public: no identity involved.
func (s *ProjetService) Get(ctx context.Context, id string) (*ports.ProjetDetail, error) {
	projet, err := s.projets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.FindByProjet(ctx, id)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		// A projet without reviews serializes them as [], never null.
		reviews = []*domain.Review{}
	}

	if err := s.attachAuthors(ctx, projet); err != nil {
		return nil, err
	}
	if err := s.attachReviewAuthors(ctx, reviews); err != nil {
		return nil, err
	}

	return &ports.ProjetDetail{Projet: projet, Reviews: reviews}, nil
}

// Update overwrites the writable fields of the caller's own projet. The
// author is immutable; the category link is re-resolved and cleared when no
// record matches anymore.
func (s *ProjetService) Update(ctx context.Context, caller domain.Identity, id string, in ports.ProjetInput) (*domain.Projet, error) {
	projet, err := s.projets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(caller, projet.AuthorID) {
		return nil, domain.ErrForbidden
	}
	if verr := validateProjetInput(in); verr != nil {
		return nil, verr
	}

	projet.Title = in.Title
	projet.Category = in.Category
	projet.CategoryID = s.resolveCategory(ctx, in.Category)
	projet.Description = in.Description
	projet.UpdatedAt = time.Now().UTC()

	if err := s.projets.Update(ctx, projet); err != nil {
		return nil, err
	}
	if err := s.attachAuthors(ctx, projet); err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{
		Action:   "projet.update",
		ActorID:  caller.ID,
		Entity:   "projet",
		EntityID: projet.ID,
		At:       projet.UpdatedAt,
	})
	return projet, nil
}

// Delete removes the projet and all its reviews. Allowed for the author or an
// admin; the cascade aborts (projet kept) when the review purge fails.
func (s *ProjetService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	projet, err := s.projets.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanDeleteProjet(caller, projet) {
		return domain.ErrForbidden
	}

	if _, err := s.cascade.DeleteProjet(ctx, id); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEntry{
		Action:   "projet.delete",
		ActorID:  caller.ID,
		Entity:   "projet",
		EntityID: id,
		At:       time.Now().UTC(),
	})
	return nil
}

// Categories returns the distinct category names available for projets.
func (s *ProjetService) Categories(ctx context.Context) ([]string, error) {
	return s.categories.DistinctNames(ctx)
}

// ListByAuthor returns the caller's own projets, each with its reviews.
func (s *ProjetService) ListByAuthor(ctx context.Context, caller domain.Identity) ([]*ports.ProjetDetail, error) {
	projets, err := s.projets.FindByAuthor(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if err := s.attachAuthors(ctx, projets...); err != nil {
		return nil, err
	}

	details := make([]*ports.ProjetDetail, 0, len(projets))
	for _, p := range projets {
		reviews, err := s.reviews.FindByProjet(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if reviews == nil {
			reviews = []*domain.Review{}
		}
		if err := s.attachReviewAuthors(ctx, reviews); err != nil {
			return nil, err
		}
		details = append(details, &ports.ProjetDetail{Projet: p, Reviews: reviews})
	}
	return details, nil
}

// resolveCategory looks up a category record matching the trimmed name and
// returns its id, or "" when nothing matches or the lookup fails.
func (s *ProjetService) resolveCategory(ctx context.Context, name string) string {
	cat, err := s.categories.FindByName(ctx, strings.TrimSpace(name))
	if err != nil || cat == nil {
		if err != nil {
			s.log.Debug().Err(err).Str("category", name).Msg("category resolution skipped")
		}
		return ""
	}
	return cat.ID
}

// attachAuthors resolves the author of each projet to display-safe fields
// with a single batched lookup.
func (s *ProjetService) attachAuthors(ctx context.Context, projets ...*domain.Projet) error {
	ids := make([]string, 0, len(projets))
	for _, p := range projets {
		ids = append(ids, p.AuthorID)
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, p := range projets {
		if u, ok := users[p.AuthorID]; ok {
			a := u.DisplayAuthor()
			p.Author = &a
		}
	}
	return nil
}

func (s *ProjetService) attachReviewAuthors(ctx context.Context, reviews []*domain.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	ids := make([]string, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.AuthorID)
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, r := range reviews {
		if u, ok := users[r.AuthorID]; ok {
			a := u.DisplayAuthor()
			r.Author = &a
		}
	}
	return nil
}

func validateProjetInput(in ports.ProjetInput) error {
	verr := domain.NewValidationError()
	if strings.TrimSpace(in.Title) == "" {
		verr.Add("title", "title is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		verr.Add("category", "category is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		verr.Add("description", "description is required")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
