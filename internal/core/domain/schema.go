package domain

import (
	"sort"
	"strings"
	"time"
)

// Well-known item quality ids. Steam's overview response carries the
// authoritative table, but these ids have been stable for years and act
// as the fallback when the overview is unavailable.
const (
	QualityNormal     = 0
	QualityGenuine    = 1
	QualityVintage    = 3
	QualityUnusual    = 5
	QualityUnique     = 6
	QualityCommunity  = 7
	QualityValve      = 8
	QualitySelfMade   = 9
	QualityStrange    = 11
	QualityHaunted    = 13
	QualityCollectors = 14
	QualityDecorated  = 15
)

// DefaultQualities maps the well-known quality ids to display names.
func DefaultQualities() map[int]string {
	return map[int]string{
		QualityNormal:     "Normal",
		QualityGenuine:    "Genuine",
		QualityVintage:    "Vintage",
		QualityUnusual:    "Unusual",
		QualityUnique:     "Unique",
		QualityCommunity:  "Community",
		QualityValve:      "Valve",
		QualitySelfMade:   "Self-Made",
		QualityStrange:    "Strange",
		QualityHaunted:    "Haunted",
		QualityCollectors: "Collector's",
		QualityDecorated:  "Decorated Weapon",
	}
}

var wearNames = map[int]string{
	1: "Factory New",
	2: "Minimal Wear",
	3: "Field-Tested",
	4: "Well-Worn",
	5: "Battle Scarred",
}

var killstreakNames = map[int]string{
	KillstreakBasic:        "Killstreak",
	KillstreakSpecialized:  "Specialized Killstreak",
	KillstreakProfessional: "Professional Killstreak",
}

// SchemaItem is a single entry from IEconItems_440/GetSchemaItems.
type SchemaItem struct {
	Defindex     int    `json:"defindex"`
	Name         string `json:"name"`
	ItemName     string `json:"item_name"`
	ItemClass    string `json:"item_class"`
	ItemTypeName string `json:"item_type_name"`
	ProperName   bool   `json:"proper_name"`
	ItemQuality  int    `json:"item_quality"`
	CraftClass   string `json:"craft_class,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

// Particle is an unusual particle effect from the schema overview.
type Particle struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Schema is an immutable snapshot of the TF2 item schema. Lookup maps
// are built once in NewSchema; callers must not mutate the slices after
// construction.
type Schema struct {
	Items     []SchemaItem
	Qualities map[int]string
	Effects   []Particle
	FetchedAt time.Time

	byDefindex   map[int]*SchemaItem
	byItemName   map[string]*SchemaItem
	effectByID   map[int]string
	effectByName map[string]int
	qualityByKey map[string]int

	// prefix-match tables for name parsing, longest name first
	qualitiesSorted []qualityEntry
	effectsSorted   []Particle
}

type qualityEntry struct {
	id   int
	name string
}

// NewSchema builds a schema snapshot and its lookup indexes. A nil or
// empty qualities map falls back to the well-known table.
func NewSchema(items []SchemaItem, qualities map[int]string, effects []Particle, fetchedAt time.Time) *Schema {
	if len(qualities) == 0 {
		qualities = DefaultQualities()
	}

	s := &Schema{
		Items:        items,
		Qualities:    qualities,
		Effects:      effects,
		FetchedAt:    fetchedAt,
		byDefindex:   make(map[int]*SchemaItem, len(items)),
		byItemName:   make(map[string]*SchemaItem, len(items)),
		effectByID:   make(map[int]string, len(effects)),
		effectByName: make(map[string]int, len(effects)),
		qualityByKey: make(map[string]int, len(qualities)),
	}

	for i := range items {
		item := &items[i]
		if _, ok := s.byDefindex[item.Defindex]; !ok {
			s.byDefindex[item.Defindex] = item
		}
		key := strings.ToLower(item.ItemName)
		prev, ok := s.byItemName[key]
		// Stock weapons appear twice, as "Upgradeable TF_WEAPON_*"
		// placeholders and as the real entries. Prefer the real one.
		if !ok || strings.HasPrefix(prev.Name, "Upgradeable ") {
			s.byItemName[key] = item
		}
	}

	for _, e := range effects {
		if _, ok := s.effectByID[e.ID]; !ok {
			s.effectByID[e.ID] = e.Name
		}
		if _, ok := s.effectByName[strings.ToLower(e.Name)]; !ok {
			s.effectByName[strings.ToLower(e.Name)] = e.ID
		}
	}

	for id, name := range qualities {
		s.qualityByKey[strings.ToLower(name)] = id
		// "Unique" never appears as a display-name prefix
		if id != QualityUnique {
			s.qualitiesSorted = append(s.qualitiesSorted, qualityEntry{id: id, name: name})
		}
	}
	sort.Slice(s.qualitiesSorted, func(i, j int) bool {
		return len(s.qualitiesSorted[i].name) > len(s.qualitiesSorted[j].name)
	})

	s.effectsSorted = append(s.effectsSorted, effects...)
	sort.Slice(s.effectsSorted, func(i, j int) bool {
		return len(s.effectsSorted[i].Name) > len(s.effectsSorted[j].Name)
	})

	return s
}

// ItemByDefindex returns the item with the given defindex.
func (s *Schema) ItemByDefindex(defindex int) (*SchemaItem, error) {
	item, ok := s.byDefindex[defindex]
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// ItemByName returns the item whose item_name matches, ignoring case.
func (s *Schema) ItemByName(name string) (*SchemaItem, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	item, ok := s.byItemName[strings.ToLower(name)]
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// ItemBySKU returns the item the SKU's defindex refers to.
func (s *Schema) ItemBySKU(sku SKU) (*SchemaItem, error) {
	return s.ItemByDefindex(sku.Defindex)
}

// EffectName returns the display name of a particle effect id.
func (s *Schema) EffectName(id int) (string, error) {
	name, ok := s.effectByID[id]
	if !ok {
		return "", ErrEffectNotFound
	}
	return name, nil
}

// EffectID returns the particle effect id for a display name.
func (s *Schema) EffectID(name string) (int, error) {
	id, ok := s.effectByName[strings.ToLower(name)]
	if !ok {
		return 0, ErrEffectNotFound
	}
	return id, nil
}

// QualityName returns the display name of a quality id.
func (s *Schema) QualityName(id int) string {
	if name, ok := s.Qualities[id]; ok {
		return name
	}
	return ""
}

// QualityID returns the id for a quality display name, ignoring case.
func (s *Schema) QualityID(name string) (int, bool) {
	id, ok := s.qualityByKey[strings.ToLower(name)]
	return id, ok
}
