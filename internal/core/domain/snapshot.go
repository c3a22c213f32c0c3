package domain

import (
	"time"

	"github.com/google/uuid"
)

// SchemaSnapshot is the persisted record of one successful fetch from
// Steam. The schema body itself lives in the schema file; the snapshot
// row keeps enough to tell fetches apart and detect drift.
type SchemaSnapshot struct {
	ID          uuid.UUID
	FetchedAt   time.Time
	ItemCount   int
	EffectCount int
	Digest      string
	CreatedAt   time.Time
}
