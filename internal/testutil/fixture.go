package testutil

import (
	"time"

	"tf2schema-service/internal/core/domain"
)

// FixtureSchema builds a small but representative schema snapshot for
// service and handler tests.
func FixtureSchema() *domain.Schema {
	items := []domain.SchemaItem{
		{Defindex: 200, Name: "Upgradeable TF_WEAPON_SCATTERGUN", ItemName: "Scattergun", ItemClass: "tf_weapon_scattergun", ItemQuality: 0},
		{Defindex: 13, Name: "TF_WEAPON_SCATTERGUN", ItemName: "Scattergun", ItemClass: "tf_weapon_scattergun", ItemQuality: 0},
		{Defindex: 160, Name: "TTG Max Pistol", ItemName: "Lugermorph", ItemClass: "tf_weapon_pistol", ItemTypeName: "Pistol", ItemQuality: 6},
		{Defindex: 996, Name: "The Loose Cannon", ItemName: "Loose Cannon", ItemClass: "tf_weapon_cannon", ProperName: true, ItemQuality: 6},
		{Defindex: 737, Name: "The Team Captain", ItemName: "Team Captain", ItemClass: "tf_wearable", ProperName: true, ItemQuality: 6},
		{Defindex: 30911, Name: "Fat Man's Field Cap", ItemName: "Fat Man's Field Cap", ItemClass: "tf_wearable", ItemQuality: 6},
		{Defindex: 267, Name: "Haunted Metal Scrap", ItemName: "Haunted Metal Scrap", ItemClass: "craft_item", ItemQuality: 13},
		{Defindex: 5020, Name: "Name Tag", ItemName: "Name Tag", ItemClass: "tool", ItemQuality: 6},
		{Defindex: 5022, Name: "Supply Crate", ItemName: "Mann Co. Supply Crate", ItemClass: "supply_crate", ItemQuality: 6},
	}

	effects := []domain.Particle{
		{ID: 4, Name: "Community Sparkle"},
		{ID: 13, Name: "Burning Flames"},
		{ID: 144, Name: "Snowblinded"},
	}

	return domain.NewSchema(items, nil, effects, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
}
