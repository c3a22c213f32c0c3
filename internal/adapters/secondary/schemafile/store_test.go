package schemafile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tf2schema-service/internal/core/domain"
)

func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	store := NewStore(path)

	items := []domain.SchemaItem{
		{Defindex: 160, Name: "TTG Max Pistol", ItemName: "Lugermorph", ItemQuality: 6},
	}
	effects := []domain.Particle{{ID: 4, Name: "Community Sparkle"}}
	fetchedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	err := store.Save(context.Background(), domain.NewSchema(items, nil, effects, fetchedAt))
	assert.NoError(t, err)

	loaded, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, fetchedAt, loaded.FetchedAt)
	assert.Len(t, loaded.Items, 1)

	// lookup indexes are rebuilt on load
	item, err := loaded.ItemByName("Lugermorph")
	assert.NoError(t, err)
	assert.Equal(t, 160, item.Defindex)

	name, err := loaded.EffectName(4)
	assert.NoError(t, err)
	assert.Equal(t, "Community Sparkle", name)
}

func TestStoreLoad_Missing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSchemaFileMissing)
}

func TestStoreLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewStore(path)
	_, err := store.Load(context.Background())
	assert.Error(t, err)
}

func TestStoreSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	store := NewStore(path)

	first := domain.NewSchema(nil, nil, nil, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	second := domain.NewSchema(nil, nil, nil, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, store.Save(context.Background(), first))
	assert.NoError(t, store.Save(context.Background(), second))

	loaded, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, second.FetchedAt, loaded.FetchedAt)

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}
