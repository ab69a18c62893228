package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/projethub/projethub/internal/core/domain"
	"github.com/projethub/projethub/internal/core/ports"
)

const (
	categoryNamesKey = "categories:names"
	categoryCacheTTL = 5 * time.Minute
)

// CategoryCache is a read-through Redis cache in front of a
// CategoryRepository. Cache failures are logged and ignored: category data is
// a best-effort enrichment and must never block or fail a request.
type CategoryCache struct {
	client *redis.Client
	next   ports.CategoryRepository
	log    zerolog.Logger
}

func NewCategoryCache(client *redis.Client, next ports.CategoryRepository, log zerolog.Logger) *CategoryCache {
	return &CategoryCache{client: client, next: next, log: log}
}

// FindByName delegates straight to the backing repository; single-name
// lookups are cheap and keep the exact-match semantics in one place.
func (c *CategoryCache) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	return c.next.FindByName(ctx, name)
}

// DistinctNames serves the cached name list when present, refreshing it from
// the backing repository otherwise.
func (c *CategoryCache) DistinctNames(ctx context.Context) ([]string, error) {
	if raw, err := c.client.Get(ctx, categoryNamesKey).Bytes(); err == nil {
		var names []string
		if jsonErr := json.Unmarshal(raw, &names); jsonErr == nil {
			return names, nil
		}
	} else if err != redis.Nil {
		c.log.Debug().Err(err).Msg("category cache read skipped")
	}

	names, err := c.next.DistinctNames(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(names); err == nil {
		if err := c.client.Set(ctx, categoryNamesKey, raw, categoryCacheTTL).Err(); err != nil {
			c.log.Debug().Err(err).Msg("category cache write skipped")
		}
	}
	return names, nil
}
