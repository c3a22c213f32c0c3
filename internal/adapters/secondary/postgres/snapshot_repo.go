package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tf2schema-service/internal/core/domain"
	ports "tf2schema-service/internal/core/ports/output"
)

type snapshotRepo struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a new schema snapshot repository
func NewSnapshotRepository(pool *pgxpool.Pool) ports.SnapshotRepository {
	return &snapshotRepo{pool: pool}
}

func (r *snapshotRepo) Record(ctx context.Context, snapshot *domain.SchemaSnapshot) error {
	query := `
		INSERT INTO schema_snapshot (id, fetched_at, item_count, effect_count, digest, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		snapshot.ID,
		snapshot.FetchedAt,
		snapshot.ItemCount,
		snapshot.EffectCount,
		snapshot.Digest,
		snapshot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert schema_snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*domain.SchemaSnapshot, error) {
	query := `
		SELECT id, fetched_at, item_count, effect_count, digest, created_at
		FROM schema_snapshot
		ORDER BY fetched_at DESC
		LIMIT 1
	`
	snapshot, err := scanSnapshot(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("get latest schema_snapshot: %w", err)
	}
	return snapshot, nil
}

func (r *snapshotRepo) List(ctx context.Context, limit int) ([]*domain.SchemaSnapshot, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, fetched_at, item_count, effect_count, digest, created_at
		FROM schema_snapshot
		ORDER BY fetched_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list schema_snapshot: %w", err)
	}
	defer rows.Close()

	var snapshots []*domain.SchemaSnapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schema_snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schema_snapshot: %w", err)
	}

	return snapshots, nil
}

func scanSnapshot(row pgx.Row) (*domain.SchemaSnapshot, error) {
	var s domain.SchemaSnapshot
	if err := row.Scan(
		&s.ID,
		&s.FetchedAt,
		&s.ItemCount,
		&s.EffectCount,
		&s.Digest,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
