package schemafile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tf2schema-service/internal/core/domain"
	ports "tf2schema-service/internal/core/ports/output"
)

// envelope is the on-disk JSON layout of a schema snapshot.
type envelope struct {
	Items     []domain.SchemaItem `json:"items"`
	Qualities map[int]string      `json:"qualities"`
	Effects   []domain.Particle   `json:"effects"`
	FetchedAt time.Time           `json:"fetched_at"`
}

type fileStore struct {
	path string
}

// NewStore creates a schema store backed by a single JSON file.
func NewStore(path string) ports.SchemaStore {
	return &fileStore{path: path}
}

func (s *fileStore) Load(_ context.Context) (*domain.Schema, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSchemaFileMissing
		}
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode schema file: %w", err)
	}

	return domain.NewSchema(env.Items, env.Qualities, env.Effects, env.FetchedAt), nil
}

// Save writes to a temp file in the same directory and renames it over
// the target, so readers never observe a half-written schema.
func (s *fileStore) Save(_ context.Context, schema *domain.Schema) error {
	raw, err := json.Marshal(envelope{
		Items:     schema.Items,
		Qualities: schema.Qualities,
		Effects:   schema.Effects,
		FetchedAt: schema.FetchedAt,
	})
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".schema-*.json")
	if err != nil {
		return fmt.Errorf("create temp schema file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write schema file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close schema file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename schema file: %w", err)
	}

	return nil
}
