package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/projethub/projethub/internal/core/ports"
)

// Cascade coordinates the multi-document delete of a projet and its reviews.
// The document store offers no multi-document transaction, so ordering is the
// consistency tool: reviews go first. An interrupted run can leave extra
// reviews pointing at a still-existing projet, but never orphan reviews of a
// projet that is already gone.
type Cascade struct {
	projets ports.ProjetRepository
	reviews ports.ReviewRepository
	log     zerolog.Logger
}

func NewCascade(projets ports.ProjetRepository, reviews ports.ReviewRepository, log zerolog.Logger) *Cascade {
	return &Cascade{projets: projets, reviews: reviews, log: log}
}

// DeleteProjet removes every review referencing projetID, then the projet
// itself. If the review step fails the projet is left untouched and the error
// is surfaced to the caller.
func (c *Cascade) DeleteProjet(ctx context.Context, projetID string) (int64, error) {
	deleted, err := c.reviews.DeleteByProjet(ctx, projetID)
	if err != nil {
		return 0, fmt.Errorf("cascade delete reviews: %w", err)
	}

	if err := c.projets.Delete(ctx, projetID); err != nil {
		// Reviews are already gone; the projet survives with fewer reviews,
		// which is the recoverable direction.
		c.log.Error().Err(err).Str("projet_id", projetID).Int64("reviews_deleted", deleted).
			Msg("projet delete failed after review purge")
		return deleted, fmt.Errorf("cascade delete projet: %w", err)
	}

	c.log.Info().Str("projet_id", projetID).Int64("reviews_deleted", deleted).Msg("projet deleted with reviews")
	return deleted, nil
}
