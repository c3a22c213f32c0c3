package ports

import (
	"context"

	"tf2schema-service/internal/core/domain"
)

// SteamClient fetches the item schema from the Steam Web API.
type SteamClient interface {
	// FetchSchema downloads all schema item pages plus the overview
	// (qualities, particle effects) and assembles a schema snapshot.
	FetchSchema(ctx context.Context) (*domain.Schema, error)
}
