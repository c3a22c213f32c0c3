package ports

import (
	"context"

	"tf2schema-service/internal/core/domain"
)

// SchemaStore persists schema snapshots between runs.
type SchemaStore interface {
	// Load reads the stored schema. Returns domain.ErrSchemaFileMissing
	// when nothing has been stored yet.
	Load(ctx context.Context) (*domain.Schema, error)
	Save(ctx context.Context, schema *domain.Schema) error
}

// SnapshotRepository keeps a history of successful Steam fetches.
type SnapshotRepository interface {
	Record(ctx context.Context, snapshot *domain.SchemaSnapshot) error
	Latest(ctx context.Context) (*domain.SchemaSnapshot, error)
	List(ctx context.Context, limit int) ([]*domain.SchemaSnapshot, error)
}
