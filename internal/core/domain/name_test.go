package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testSchema() *Schema {
	items := []SchemaItem{
		{Defindex: 200, Name: "Upgradeable TF_WEAPON_SCATTERGUN", ItemName: "Scattergun", ItemClass: "tf_weapon_scattergun", ItemQuality: 0},
		{Defindex: 13, Name: "TF_WEAPON_SCATTERGUN", ItemName: "Scattergun", ItemClass: "tf_weapon_scattergun", ItemQuality: 0},
		{Defindex: 160, Name: "TTG Max Pistol", ItemName: "Lugermorph", ItemClass: "tf_weapon_pistol", ItemQuality: 6},
		{Defindex: 996, Name: "The Loose Cannon", ItemName: "Loose Cannon", ItemClass: "tf_weapon_cannon", ProperName: true, ItemQuality: 6},
		{Defindex: 737, Name: "The Team Captain", ItemName: "Team Captain", ItemClass: "tf_wearable", ProperName: true, ItemQuality: 6},
		{Defindex: 30911, Name: "Fat Man's Field Cap", ItemName: "Fat Man's Field Cap", ItemClass: "tf_wearable", ItemQuality: 6},
		{Defindex: 267, Name: "Haunted Metal Scrap", ItemName: "Haunted Metal Scrap", ItemClass: "craft_item", ItemQuality: 13},
		{Defindex: 5020, Name: "Name Tag", ItemName: "Name Tag", ItemClass: "tool", ItemQuality: 6},
		{Defindex: 5022, Name: "Supply Crate", ItemName: "Mann Co. Supply Crate", ItemClass: "supply_crate", ItemQuality: 6},
	}
	effects := []Particle{
		{ID: 4, Name: "Community Sparkle"},
		{ID: 13, Name: "Burning Flames"},
		{ID: 144, Name: "Snowblinded"},
	}
	return NewSchema(items, nil, effects, time.Now())
}

func TestNameFromSKU(t *testing.T) {
	s := testSchema()

	cases := []struct {
		sku  string
		name string
	}{
		{"160;3;u4", "Vintage Community Sparkle Lugermorph"},
		{"30911;5;u144", "Snowblinded Fat Man's Field Cap"},
		{"996;6", "The Loose Cannon"},
		{"737;5;u13", "Burning Flames Team Captain"},
		{"737;5", "Unusual Team Captain"},
		{"996;6;uncraftable", "Non-Craftable Loose Cannon"},
		{"13;11;kt-3;festive", "Strange Festivized Professional Killstreak Scattergun"},
		{"13;11;australium", "Strange Australium Scattergun"},
		{"13;5;u13;strange", "Strange Burning Flames Scattergun"},
		{"13;15;w3", "Scattergun (Field-Tested)"},
		{"5022;6;n82", "Mann Co. Supply Crate #82"},
		{"160;6;c25", "Lugermorph #25"},
		{"267;13", "Haunted Haunted Metal Scrap"},
		{"5020;6", "Name Tag"},
	}

	for _, tc := range cases {
		sku, err := ParseSKU(tc.sku)
		assert.NoError(t, err, tc.sku)

		name, err := s.NameFromSKU(sku)
		assert.NoError(t, err, tc.sku)
		assert.Equal(t, tc.name, name, tc.sku)
	}
}

func TestNameFromSKU_Errors(t *testing.T) {
	s := testSchema()

	_, err := s.NameFromSKU(NewSKU(99999, QualityUnique))
	assert.ErrorIs(t, err, ErrItemNotFound)

	sku := NewSKU(160, QualityUnusual)
	sku.Effect = 9999
	_, err = s.NameFromSKU(sku)
	assert.ErrorIs(t, err, ErrEffectNotFound)
}

func TestSKUFromName(t *testing.T) {
	s := testSchema()

	cases := []struct {
		name string
		sku  string
	}{
		{"Vintage Community Sparkle Lugermorph", "160;3;u4"},
		{"Snowblinded Fat Man's Field Cap", "30911;5;u144"},
		{"The Loose Cannon", "996;6"},
		{"Loose Cannon", "996;6"},
		{"Burning Flames Team Captain", "737;5;u13"},
		{"Non-Craftable Loose Cannon", "996;6;uncraftable"},
		{"Strange Festivized Professional Killstreak Scattergun", "13;11;kt-3;festive"},
		{"Strange Australium Scattergun", "13;11;australium"},
		{"Strange Burning Flames Scattergun", "13;5;u13;strange"},
		{"Scattergun (Field-Tested)", "13;15;w3"},
		{"Mann Co. Supply Crate #82", "5022;6;n82"},
		{"Lugermorph #25", "160;6;c25"},
		{"Lugermorph", "160;6"},
		{"Strange Lugermorph", "160;11"},
		{"Name Tag", "5020;6"},
		// item names containing a quality word resolve whole-name first
		{"Haunted Metal Scrap", "267;13"},
	}

	for _, tc := range cases {
		sku, err := s.SKUFromName(tc.name)
		assert.NoError(t, err, tc.name)
		assert.Equal(t, tc.sku, sku.String(), tc.name)
	}
}

func TestSKUFromName_Errors(t *testing.T) {
	s := testSchema()

	_, err := s.SKUFromName("")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = s.SKUFromName("   ")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = s.SKUFromName("Totally Unknown Hat")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestNameSKURoundTrip(t *testing.T) {
	s := testSchema()

	for _, raw := range []string{
		"160;3;u4",
		"30911;5;u144",
		"996;6",
		"737;5;u13",
		"13;11;kt-3;festive",
		"13;5;u13;strange",
		"13;15;w3",
		"5022;6;n82",
	} {
		sku, err := ParseSKU(raw)
		assert.NoError(t, err, raw)

		name, err := s.NameFromSKU(sku)
		assert.NoError(t, err, raw)

		back, err := s.SKUFromName(name)
		assert.NoError(t, err, name)
		assert.Equal(t, raw, back.String(), name)
	}
}

func TestSchemaLookups(t *testing.T) {
	s := testSchema()

	item, err := s.ItemByDefindex(160)
	assert.NoError(t, err)
	assert.Equal(t, "Lugermorph", item.ItemName)

	item, err = s.ItemByName("lugermorph")
	assert.NoError(t, err)
	assert.Equal(t, 160, item.Defindex)

	// the Upgradeable placeholder loses to the real stock entry
	item, err = s.ItemByName("Scattergun")
	assert.NoError(t, err)
	assert.Equal(t, 13, item.Defindex)

	_, err = s.ItemByDefindex(424242)
	assert.ErrorIs(t, err, ErrItemNotFound)

	name, err := s.EffectName(144)
	assert.NoError(t, err)
	assert.Equal(t, "Snowblinded", name)

	id, err := s.EffectID("burning flames")
	assert.NoError(t, err)
	assert.Equal(t, 13, id)

	qid, ok := s.QualityID("vintage")
	assert.True(t, ok)
	assert.Equal(t, QualityVintage, qid)
	assert.Equal(t, "Unusual", s.QualityName(QualityUnusual))
}
