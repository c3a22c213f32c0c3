package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Killstreak tiers.
const (
	KillstreakNone         = 0
	KillstreakBasic        = 1
	KillstreakSpecialized  = 2
	KillstreakProfessional = 3
)

// SKU identifies a single item variant the way the trading ecosystem
// does: defindex and quality, plus optional attribute parts such as
// "160;3;u4" (Vintage Lugermorph with the Community Sparkle effect).
type SKU struct {
	Defindex      int
	Quality       int
	Effect        int // particle effect id, 0 when unset
	Australium    bool
	Craftable     bool
	Wear          int // 1..5, 0 when unset
	PaintKit      int // -1 when unset
	Elevated      bool
	Killstreak    int // 0..3
	Target        int // target defindex, 0 when unset
	Festivized    bool
	CrateSeries   int // 0 when unset
	CraftNumber   int // 0 when unset
	Output        int // output defindex, 0 when unset
	OutputQuality int // -1 when unset
}

// NewSKU returns a SKU with the optional parts at their unset values.
func NewSKU(defindex, quality int) SKU {
	return SKU{
		Defindex:      defindex,
		Quality:       quality,
		Craftable:     true,
		PaintKit:      -1,
		OutputQuality: -1,
	}
}

// ParseSKU parses the semicolon-separated SKU format. The first two
// parts are always defindex and quality; the remaining parts may appear
// in any order.
func ParseSKU(s string) (SKU, error) {
	parts := strings.Split(strings.TrimSpace(s), ";")
	if len(parts) < 2 {
		return SKU{}, fmt.Errorf("%w: %q", ErrInvalidSKU, s)
	}

	defindex, err := strconv.Atoi(parts[0])
	if err != nil {
		return SKU{}, fmt.Errorf("%w: bad defindex %q", ErrInvalidSKU, parts[0])
	}
	quality, err := strconv.Atoi(parts[1])
	if err != nil {
		return SKU{}, fmt.Errorf("%w: bad quality %q", ErrInvalidSKU, parts[1])
	}

	sku := NewSKU(defindex, quality)

	for _, part := range parts[2:] {
		if err := sku.applyPart(part); err != nil {
			return SKU{}, err
		}
	}

	return sku, nil
}

func (sku *SKU) applyPart(part string) error {
	switch {
	case part == "australium":
		sku.Australium = true
	case part == "uncraftable":
		sku.Craftable = false
	case part == "strange":
		sku.Elevated = true
	case part == "festive":
		sku.Festivized = true
	case strings.HasPrefix(part, "kt-"):
		tier, err := strconv.Atoi(part[3:])
		if err != nil || tier < KillstreakBasic || tier > KillstreakProfessional {
			return fmt.Errorf("%w: %q", ErrInvalidKillstreak, part)
		}
		sku.Killstreak = tier
	case strings.HasPrefix(part, "td-"):
		return numericPart(part, part[3:], &sku.Target)
	case strings.HasPrefix(part, "od-"):
		return numericPart(part, part[3:], &sku.Output)
	case strings.HasPrefix(part, "oq-"):
		return numericPart(part, part[3:], &sku.OutputQuality)
	case strings.HasPrefix(part, "pk"):
		return numericPart(part, part[2:], &sku.PaintKit)
	case strings.HasPrefix(part, "u"):
		return numericPart(part, part[1:], &sku.Effect)
	case strings.HasPrefix(part, "w"):
		if err := numericPart(part, part[1:], &sku.Wear); err != nil {
			return err
		}
		if sku.Wear < 1 || sku.Wear > 5 {
			return fmt.Errorf("%w: %q", ErrInvalidWearTier, part)
		}
	case strings.HasPrefix(part, "n"):
		return numericPart(part, part[1:], &sku.CrateSeries)
	case strings.HasPrefix(part, "c"):
		return numericPart(part, part[1:], &sku.CraftNumber)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSKUPart, part)
	}
	return nil
}

func numericPart(part, digits string, dst *int) error {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownSKUPart, part)
	}
	*dst = n
	return nil
}

// String renders the SKU with its parts in canonical order, so that
// equal SKUs always produce the same string.
func (sku SKU) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(sku.Defindex))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(sku.Quality))

	if sku.Effect > 0 {
		b.WriteString(";u")
		b.WriteString(strconv.Itoa(sku.Effect))
	}
	if sku.Australium {
		b.WriteString(";australium")
	}
	if !sku.Craftable {
		b.WriteString(";uncraftable")
	}
	if sku.Wear > 0 {
		b.WriteString(";w")
		b.WriteString(strconv.Itoa(sku.Wear))
	}
	if sku.PaintKit >= 0 {
		b.WriteString(";pk")
		b.WriteString(strconv.Itoa(sku.PaintKit))
	}
	if sku.Elevated {
		b.WriteString(";strange")
	}
	if sku.Killstreak > 0 {
		b.WriteString(";kt-")
		b.WriteString(strconv.Itoa(sku.Killstreak))
	}
	if sku.Target > 0 {
		b.WriteString(";td-")
		b.WriteString(strconv.Itoa(sku.Target))
	}
	if sku.Festivized {
		b.WriteString(";festive")
	}
	if sku.CrateSeries > 0 {
		b.WriteString(";n")
		b.WriteString(strconv.Itoa(sku.CrateSeries))
	}
	if sku.CraftNumber > 0 {
		b.WriteString(";c")
		b.WriteString(strconv.Itoa(sku.CraftNumber))
	}
	if sku.Output > 0 {
		b.WriteString(";od-")
		b.WriteString(strconv.Itoa(sku.Output))
	}
	if sku.OutputQuality >= 0 {
		b.WriteString(";oq-")
		b.WriteString(strconv.Itoa(sku.OutputQuality))
	}

	return b.String()
}
