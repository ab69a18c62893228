package domain

import "time"

// AuditEntry records a mutating operation for the audit trail. Entries are
// written asynchronously and best-effort; they never affect the outcome of the
// operation they describe.
type AuditEntry struct {
	Action   string    `json:"action"`
	ActorID  string    `json:"actor_id"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id"`
	At       time.Time `json:"at"`
}
