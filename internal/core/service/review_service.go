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

// ReviewService implements review CRUD. Updates and deletes are strictly
// author-only; admins get no override here, unlike projet deletion.
type ReviewService struct {
	reviews ports.ReviewRepository
	projets ports.ProjetRepository
	users   ports.UserRepository
	audit   ports.AuditRecorder
	log     zerolog.Logger
}

func NewReviewService(
	reviews ports.ReviewRepository,
	projets ports.ProjetRepository,
	users ports.UserRepository,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *ReviewService {
	return &ReviewService{reviews: reviews, projets: projets, users: users, audit: audit, log: log}
}

// ListByProjet returns all reviews of a projet. The projet must exist so a
// bad id yields 404 instead of an empty list.
func (s *ReviewService) ListByProjet(ctx context.Context, projetID string) ([]*domain.Review, error) {
	if _, err := s.projets.FindByID(ctx, projetID); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.FindByProjet(ctx, projetID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		// A projet without reviews serializes them as [], never null.
		reviews = []*domain.Review{}
	}
	if err := s.attachAuthors(ctx, reviews...); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Add creates a review on an existing projet, authored by the caller.
func (s *ReviewService) Add(ctx context.Context, caller domain.Identity, projetID, content string) (*domain.Review, error) {
	if _, err := s.projets.FindByID(ctx, projetID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, domain.NewValidationError().Add("content", "review content is required")
	}

	now := time.Now().UTC()
	review := &domain.Review{
		Content:   content,
		AuthorID:  caller.ID,
		ProjetID:  projetID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}
	if err := s.attachAuthors(ctx, created); err != nil {
		return nil, err
	}

	s.log.Info().Str("review_id", created.ID).Str("projet_id", projetID).Msg("review added")
	s.audit.Record(domain.AuditEntry{
		Action:   "review.create",
		ActorID:  caller.ID,
		Entity:   "review",
		EntityID: created.ID,
		At:       now,
	})
	return created, nil
}

// Update replaces the content of the caller's own review.
func (s *ReviewService) Update(ctx context.Context, caller domain.Identity, reviewID, content string) (*domain.Review, error) {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(caller, review.AuthorID) {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(content) == "" {
		return nil, domain.NewValidationError().Add("content", "review content is required")
	}

	review.Content = content
	review.UpdatedAt = time.Now().UTC()

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	if err := s.attachAuthors(ctx, review); err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{
		Action:   "review.update",
		ActorID:  caller.ID,
		Entity:   "review",
		EntityID: review.ID,
		At:       review.UpdatedAt,
	})
	return review, nil
}

// Delete removes the caller's own review.
func (s *ReviewService) Delete(ctx context.Context, caller domain.Identity, reviewID string) error {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if !policy.CanModify(caller, review.AuthorID) {
		return domain.ErrForbidden
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEntry{
		Action:   "review.delete",
		ActorID:  caller.ID,
		Entity:   "review",
		EntityID: reviewID,
		At:       time.Now().UTC(),
	})
	return nil
}

func (s *ReviewService) attachAuthors(ctx context.Context, reviews ...*domain.Review) error {
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
