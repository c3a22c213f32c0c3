package dto

import (
	"time"

	"tf2schema-service/internal/core/domain"
)

type SchemaStatusResponse struct {
	FetchedAt   time.Time `json:"fetched_at"`
	ItemCount   int       `json:"item_count"`
	EffectCount int       `json:"effect_count"`
	Digest      string    `json:"digest"`
}

type ItemResponse struct {
	Defindex     int    `json:"defindex"`
	Name         string `json:"name"`
	ItemName     string `json:"item_name"`
	ItemClass    string `json:"item_class"`
	ItemTypeName string `json:"item_type_name"`
	ProperName   bool   `json:"proper_name"`
	ItemQuality  int    `json:"item_quality"`
	ImageURL     string `json:"image_url,omitempty"`
	SKU          string `json:"sku,omitempty"`
}

type NameFromSKUResponse struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

type SKUFromNameResponse struct {
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

type SnapshotResponse struct {
	ID          string    `json:"id"`
	FetchedAt   time.Time `json:"fetched_at"`
	ItemCount   int       `json:"item_count"`
	EffectCount int       `json:"effect_count"`
	Digest      string    `json:"digest"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListSnapshotsResponse struct {
	Items []SnapshotResponse `json:"items"`
	Total int                `json:"total"`
}

func ToItemResponse(item *domain.SchemaItem, sku string) ItemResponse {
	return ItemResponse{
		Defindex:     item.Defindex,
		Name:         item.Name,
		ItemName:     item.ItemName,
		ItemClass:    item.ItemClass,
		ItemTypeName: item.ItemTypeName,
		ProperName:   item.ProperName,
		ItemQuality:  item.ItemQuality,
		ImageURL:     item.ImageURL,
		SKU:          sku,
	}
}

func ToSnapshotResponse(s *domain.SchemaSnapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:          s.ID.String(),
		FetchedAt:   s.FetchedAt,
		ItemCount:   s.ItemCount,
		EffectCount: s.EffectCount,
		Digest:      s.Digest,
		CreatedAt:   s.CreatedAt,
	}
}
