package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tf2schema-service/internal/core/domain"
	ports "tf2schema-service/internal/core/ports/output"
)

// retryInterval is used instead of the configured update interval while
// no schema has been loaded yet.
const retryInterval = time.Minute

type ManagerOptions struct {
	SaveToFile     bool
	FileOnly       bool
	UpdateInterval time.Duration
	// MaxAge bounds how old a stored schema may be before Get refetches
	// from Steam. Zero means any stored schema is acceptable.
	MaxAge time.Duration
}

// SchemaManagerService owns the current schema snapshot: it loads it
// from the store or Steam, refreshes it in the background, and hands
// out the immutable snapshot to everything else.
type SchemaManagerService struct {
	steam     ports.SteamClient
	store     ports.SchemaStore
	snapshots ports.SnapshotRepository
	opts      ManagerOptions

	mu     sync.RWMutex
	schema *domain.Schema

	readyOnce sync.Once
	ready     chan struct{}
}

func NewSchemaManagerService(steam ports.SteamClient, store ports.SchemaStore, snapshots ports.SnapshotRepository, opts ManagerOptions) *SchemaManagerService {
	if opts.UpdateInterval <= 0 {
		opts.UpdateInterval = 24 * time.Hour
	}
	return &SchemaManagerService{
		steam:     steam,
		store:     store,
		snapshots: snapshots,
		opts:      opts,
		ready:     make(chan struct{}),
	}
}

// Current returns the loaded schema snapshot.
func (m *SchemaManagerService) Current() (*domain.Schema, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.schema == nil {
		return nil, domain.ErrSchemaNotLoaded
	}
	return m.schema, nil
}

// Get loads the schema: from the store when a fresh enough copy exists,
// otherwise from Steam. In file-only mode Steam is never contacted and
// a missing file surfaces domain.ErrSchemaFileMissing.
func (m *SchemaManagerService) Get(ctx context.Context) (*domain.Schema, error) {
	if m.opts.FileOnly {
		schema, err := m.store.Load(ctx)
		if err != nil {
			return nil, err
		}
		m.setSchema(schema)
		return schema, nil
	}

	schema, err := m.store.Load(ctx)
	if err == nil && m.fresh(schema) {
		log.WithField("fetched_at", schema.FetchedAt).Info("schema loaded from file")
		m.setSchema(schema)
		return schema, nil
	}
	if err != nil && !errors.Is(err, domain.ErrSchemaFileMissing) {
		log.WithError(err).Warn("stored schema unreadable, refetching from Steam")
	}

	return m.Refresh(ctx)
}

// Refresh fetches the schema from Steam and swaps it in, persisting to
// the store and recording a snapshot row when configured.
func (m *SchemaManagerService) Refresh(ctx context.Context) (*domain.Schema, error) {
	if m.opts.FileOnly {
		return nil, domain.ErrFileOnlyMode
	}

	schema, err := m.steam.FetchSchema(ctx)
	if err != nil {
		return nil, err
	}
	m.setSchema(schema)

	if m.opts.SaveToFile {
		if err := m.store.Save(ctx, schema); err != nil {
			log.WithError(err).Error("save schema to file failed")
		}
	}

	if m.snapshots != nil {
		now := time.Now().UTC()
		snapshot := &domain.SchemaSnapshot{
			ID:          uuid.New(),
			FetchedAt:   schema.FetchedAt,
			ItemCount:   len(schema.Items),
			EffectCount: len(schema.Effects),
			Digest:      Digest(schema),
			CreatedAt:   now,
		}
		if err := m.snapshots.Record(ctx, snapshot); err != nil {
			log.WithError(err).Error("record schema snapshot failed")
		}
	}

	return schema, nil
}

// Run keeps the schema fresh until ctx is done. While no schema has
// been loaded, attempts are retried on a short interval; afterwards the
// configured update interval applies.
func (m *SchemaManagerService) Run(ctx context.Context) {
	if _, err := m.Get(ctx); err != nil {
		log.WithError(err).Error("initial schema load failed")
	}

	for {
		interval := m.opts.UpdateInterval
		if _, err := m.Current(); err != nil {
			interval = retryInterval
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
			if err := m.update(ctx); err != nil {
				log.WithError(err).Error("schema update failed")
			}
		}
	}
}

func (m *SchemaManagerService) update(ctx context.Context) error {
	if m.opts.FileOnly {
		schema, err := m.store.Load(ctx)
		if err != nil {
			return err
		}
		m.setSchema(schema)
		return nil
	}

	if _, err := m.Current(); err != nil {
		_, err = m.Get(ctx)
		return err
	}
	_, err := m.Refresh(ctx)
	return err
}

// WaitForSchema blocks until a schema is available or ctx ends.
func (m *SchemaManagerService) WaitForSchema(ctx context.Context) error {
	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshots returns the recorded fetch history, newest first.
func (m *SchemaManagerService) Snapshots(ctx context.Context, limit int) ([]*domain.SchemaSnapshot, error) {
	if m.snapshots == nil {
		return nil, domain.ErrDatabaseDisabled
	}
	return m.snapshots.List(ctx, limit)
}

func (m *SchemaManagerService) setSchema(schema *domain.Schema) {
	m.mu.Lock()
	m.schema = schema
	m.mu.Unlock()
	m.readyOnce.Do(func() { close(m.ready) })
}

func (m *SchemaManagerService) fresh(schema *domain.Schema) bool {
	if m.opts.MaxAge <= 0 {
		return true
	}
	return time.Since(schema.FetchedAt) <= m.opts.MaxAge
}

// Digest is a stable fingerprint of the schema's item list, used to
// tell fetches apart in the snapshot history.
func Digest(schema *domain.Schema) string {
	raw, err := json.Marshal(schema.Items)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
