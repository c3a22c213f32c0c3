package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSKU_Basic(t *testing.T) {
	sku, err := ParseSKU("160;3;u4")
	assert.NoError(t, err)
	assert.Equal(t, 160, sku.Defindex)
	assert.Equal(t, 3, sku.Quality)
	assert.Equal(t, 4, sku.Effect)
	assert.True(t, sku.Craftable)
}

func TestParseSKU_AllParts(t *testing.T) {
	sku, err := ParseSKU("15059;15;u703;australium;uncraftable;w2;pk56;strange;kt-3;td-13;festive;n82;c25;od-6526;oq-14")
	assert.NoError(t, err)
	assert.Equal(t, 15059, sku.Defindex)
	assert.Equal(t, 15, sku.Quality)
	assert.Equal(t, 703, sku.Effect)
	assert.True(t, sku.Australium)
	assert.False(t, sku.Craftable)
	assert.Equal(t, 2, sku.Wear)
	assert.Equal(t, 56, sku.PaintKit)
	assert.True(t, sku.Elevated)
	assert.Equal(t, 3, sku.Killstreak)
	assert.Equal(t, 13, sku.Target)
	assert.True(t, sku.Festivized)
	assert.Equal(t, 82, sku.CrateSeries)
	assert.Equal(t, 25, sku.CraftNumber)
	assert.Equal(t, 6526, sku.Output)
	assert.Equal(t, 14, sku.OutputQuality)
}

func TestSKU_StringRoundTrip(t *testing.T) {
	for _, raw := range []string{
		"160;3;u4",
		"30911;5;u144",
		"996;6",
		"13;11;australium",
		"13;11;kt-3;festive",
		"13;15;w3",
		"5022;6;n82",
		"160;6;uncraftable",
		"6526;6;td-13;od-6523;oq-11",
	} {
		sku, err := ParseSKU(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, raw, sku.String(), raw)
	}
}

func TestSKU_StringCanonicalOrder(t *testing.T) {
	// parts parse in any order but always render canonically
	sku, err := ParseSKU("13;11;festive;kt-3;australium")
	assert.NoError(t, err)
	assert.Equal(t, "13;11;australium;kt-3;festive", sku.String())
}

func TestParseSKU_Errors(t *testing.T) {
	cases := map[string]error{
		"":            ErrInvalidSKU,
		"160":         ErrInvalidSKU,
		"abc;6":       ErrInvalidSKU,
		"160;x":       ErrInvalidSKU,
		"160;6;zz9":   ErrUnknownSKUPart,
		"160;6;u":     ErrUnknownSKUPart,
		"160;6;kt-7":  ErrInvalidKillstreak,
		"160;6;kt-x":  ErrInvalidKillstreak,
		"13;15;w9":    ErrInvalidWearTier,
		"160;6;td-ab": ErrUnknownSKUPart,
	}
	for raw, want := range cases {
		_, err := ParseSKU(raw)
		assert.ErrorIs(t, err, want, raw)
	}
}

func TestNewSKU_Defaults(t *testing.T) {
	sku := NewSKU(996, QualityUnique)
	assert.True(t, sku.Craftable)
	assert.Equal(t, -1, sku.PaintKit)
	assert.Equal(t, -1, sku.OutputQuality)
	assert.Equal(t, "996;6", sku.String())
}
