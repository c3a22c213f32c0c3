package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tf2schema-service/internal/core/domain"
	"tf2schema-service/internal/testutil"
)

func loadedLookup(t *testing.T) *LookupService {
	t.Helper()

	store := new(testutil.MockSchemaStore)
	store.On("Load", mock.Anything).Return(testutil.FixtureSchema(), nil)

	m := NewSchemaManagerService(new(testutil.MockSteamClient), store, nil, ManagerOptions{})
	_, err := m.Get(context.Background())
	assert.NoError(t, err)

	return NewLookupService(m)
}

func TestLookupItemByDefindex(t *testing.T) {
	lookup := loadedLookup(t)

	item, err := lookup.ItemByDefindex(160)
	assert.NoError(t, err)
	assert.Equal(t, "Lugermorph", item.ItemName)

	_, err = lookup.ItemByDefindex(424242)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestLookupItemByName(t *testing.T) {
	lookup := loadedLookup(t)

	item, err := lookup.ItemByName("Name Tag")
	assert.NoError(t, err)
	assert.Equal(t, 5020, item.Defindex)
}

func TestLookupItemBySKU(t *testing.T) {
	lookup := loadedLookup(t)

	item, sku, err := lookup.ItemBySKU("160;3;u4")
	assert.NoError(t, err)
	assert.Equal(t, 160, item.Defindex)
	assert.Equal(t, 3, sku.Quality)

	_, _, err = lookup.ItemBySKU("garbage")
	assert.ErrorIs(t, err, domain.ErrInvalidSKU)
}

func TestLookupNameFromSKU(t *testing.T) {
	lookup := loadedLookup(t)

	name, err := lookup.NameFromSKU("160;3;u4")
	assert.NoError(t, err)
	assert.Equal(t, "Vintage Community Sparkle Lugermorph", name)
}

func TestLookupSKUFromName(t *testing.T) {
	lookup := loadedLookup(t)

	sku, err := lookup.SKUFromName("Snowblinded Fat Man's Field Cap")
	assert.NoError(t, err)
	assert.Equal(t, "30911;5;u144", sku.String())
}

func TestLookup_SchemaNotLoaded(t *testing.T) {
	m := NewSchemaManagerService(new(testutil.MockSteamClient), new(testutil.MockSchemaStore), nil, ManagerOptions{})
	lookup := NewLookupService(m)

	_, err := lookup.ItemByDefindex(160)
	assert.ErrorIs(t, err, domain.ErrSchemaNotLoaded)

	_, err = lookup.NameFromSKU("160;3;u4")
	assert.ErrorIs(t, err, domain.ErrSchemaNotLoaded)
}
