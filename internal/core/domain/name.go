package domain

import (
	"strconv"
	"strings"
)

// NameFromSKU renders the market display name for a SKU, e.g.
// "160;3;u4" -> "Vintage Community Sparkle Lugermorph". Decorations are
// emitted in the order the trading sites use: Non-Craftable, Strange,
// quality, effect, Festivized, killstreak, Australium, item name, wear.
func (s *Schema) NameFromSKU(sku SKU) (string, error) {
	item, err := s.ItemBySKU(sku)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	if !sku.Craftable {
		b.WriteString("Non-Craftable ")
	}
	if sku.Elevated && sku.Quality != QualityStrange {
		b.WriteString("Strange ")
	}
	if showQualityPrefix(sku) {
		if qname := s.QualityName(sku.Quality); qname != "" {
			b.WriteString(qname)
			b.WriteByte(' ')
		}
	}
	if sku.Effect > 0 {
		ename, err := s.EffectName(sku.Effect)
		if err != nil {
			return "", err
		}
		b.WriteString(ename)
		b.WriteByte(' ')
	}
	if sku.Festivized {
		b.WriteString("Festivized ")
	}
	if sku.Killstreak > 0 {
		b.WriteString(killstreakNames[sku.Killstreak])
		b.WriteByte(' ')
	}
	if sku.Australium {
		b.WriteString("Australium ")
	}
	if item.ProperName && sku.Quality == QualityUnique && b.Len() == 0 {
		b.WriteString("The ")
	}
	b.WriteString(item.ItemName)

	if sku.Wear > 0 {
		b.WriteString(" (")
		b.WriteString(wearNames[sku.Wear])
		b.WriteByte(')')
	}
	if sku.CrateSeries > 0 {
		b.WriteString(" #")
		b.WriteString(strconv.Itoa(sku.CrateSeries))
	} else if sku.CraftNumber > 0 {
		b.WriteString(" #")
		b.WriteString(strconv.Itoa(sku.CraftNumber))
	}

	return b.String(), nil
}

// The Unique and Decorated quality names never appear in display names,
// and "Unusual" is replaced by the effect name when one is set.
func showQualityPrefix(sku SKU) bool {
	switch sku.Quality {
	case QualityUnique, QualityDecorated:
		return false
	case QualityUnusual:
		return sku.Effect == 0
	}
	return true
}

// SKUFromName is the inverse of NameFromSKU: it strips the known
// decorations off a display name, resolves the remaining item name
// against the schema, and rebuilds the SKU.
func (s *Schema) SKUFromName(name string) (SKU, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return SKU{}, ErrInvalidName
	}

	// Some item names contain a quality or effect word ("Haunted Metal
	// Scrap", "Vintage Tyrolean"); a whole-name match wins outright.
	if item, err := s.ItemByName(trimmed); err == nil {
		return NewSKU(item.Defindex, item.ItemQuality), nil
	}

	work := trimmed
	work, nonCraftable := strings.CutPrefix(work, "Non-Craftable ")
	work, strange := strings.CutPrefix(work, "Strange ")

	// The quality word and the effect name are ambiguous against item
	// names, so candidate interpretations are tried most-specific
	// first until one resolves to a schema item.
	var candidates []headParse

	qualityID, afterQuality, hasQuality := s.cutQuality(work)
	if hasQuality {
		if effectID, rest, ok := s.cutEffect(afterQuality); ok {
			candidates = append(candidates, headParse{quality: qualityID, qualitySet: true, effect: effectID, rest: rest})
		}
		candidates = append(candidates, headParse{quality: qualityID, qualitySet: true, rest: afterQuality})
	}
	if effectID, rest, ok := s.cutEffect(work); ok {
		candidates = append(candidates, headParse{effect: effectID, rest: rest})
	}
	candidates = append(candidates, headParse{rest: work})

	var (
		head headParse
		tail tailParse
		err  error
	)
	for _, cand := range candidates {
		tail, err = s.parseTail(cand.rest)
		if err == nil {
			head = cand
			break
		}
	}
	if err != nil {
		return SKU{}, err
	}

	sku := NewSKU(tail.item.Defindex, QualityUnique)
	sku.Craftable = !nonCraftable
	sku.Effect = head.effect
	sku.Festivized = tail.festivized
	sku.Killstreak = tail.killstreak
	sku.Australium = tail.australium
	sku.Wear = tail.wear

	switch {
	case head.qualitySet:
		sku.Quality = head.quality
		sku.Elevated = strange
	case head.effect > 0:
		sku.Quality = QualityUnusual
		sku.Elevated = strange
	case strange:
		sku.Quality = QualityStrange
	case tail.wear > 0:
		sku.Quality = QualityDecorated
	}

	if tail.number > 0 {
		if tail.item.ItemClass == "supply_crate" {
			sku.CrateSeries = tail.number
		} else {
			sku.CraftNumber = tail.number
		}
	}

	return sku, nil
}

type headParse struct {
	quality    int
	qualitySet bool
	effect     int
	rest       string
}

type tailParse struct {
	item       *SchemaItem
	festivized bool
	killstreak int
	australium bool
	wear       int
	number     int
}

func (s *Schema) cutQuality(work string) (int, string, bool) {
	for _, q := range s.qualitiesSorted {
		if rest, ok := strings.CutPrefix(work, q.name+" "); ok {
			return q.id, rest, true
		}
	}
	return 0, work, false
}

func (s *Schema) cutEffect(work string) (int, string, bool) {
	for _, e := range s.effectsSorted {
		if rest, ok := strings.CutPrefix(work, e.Name+" "); ok {
			return e.ID, rest, true
		}
	}
	return 0, work, false
}

func (s *Schema) parseTail(work string) (tailParse, error) {
	var t tailParse

	work, t.festivized = strings.CutPrefix(work, "Festivized ")
	for tier := KillstreakProfessional; tier >= KillstreakBasic; tier-- {
		if rest, ok := strings.CutPrefix(work, killstreakNames[tier]+" "); ok {
			work = rest
			t.killstreak = tier
			break
		}
	}
	work, t.australium = strings.CutPrefix(work, "Australium ")

	if i := strings.LastIndex(work, " #"); i >= 0 {
		if n, err := strconv.Atoi(work[i+2:]); err == nil && n > 0 {
			t.number = n
			work = work[:i]
		}
	}
	for tier := 1; tier <= 5; tier++ {
		if rest, ok := strings.CutSuffix(work, " ("+wearNames[tier]+")"); ok {
			work = rest
			t.wear = tier
			break
		}
	}

	if item, err := s.ItemByName(work); err == nil {
		t.item = item
		return t, nil
	}
	if rest, ok := strings.CutPrefix(work, "The "); ok {
		if item, err := s.ItemByName(rest); err == nil {
			t.item = item
			return t, nil
		}
	}
	return t, ErrItemNotFound
}
