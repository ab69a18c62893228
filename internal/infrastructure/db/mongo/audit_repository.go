package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projethub/projethub/internal/core/domain"
)

const auditCollection = "audit_entries"

// AuditRepository appends entries to the audit trail collection. Writes come
// from the async dispatcher only.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Action   string    `bson:"action"`
	ActorID  string    `bson:"actor_id"`
	Entity   string    `bson:"entity"`
	EntityID string    `bson:"entity_id"`
	At       time.Time `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	doc := auditDoc{
		Action:   entry.Action,
		ActorID:  entry.ActorID,
		Entity:   entry.Entity,
		EntityID: entry.EntityID,
		At:       entry.At,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
