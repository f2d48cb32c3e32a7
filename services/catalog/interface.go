package catalog

import (
	"context"

	"showphaze/models"
)

// PositionSource provides candidate catalog positions for a free-text
// position name. Implementations own the wire format; callers only see
// CatalogPosition values or an error for that one name.
type PositionSource interface {
	FetchPositionsByName(ctx context.Context, name string) ([]models.CatalogPosition, error)
}
