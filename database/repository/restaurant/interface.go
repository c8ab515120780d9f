package restaurantRepo

import (
	"context"

	"dinebot/models"
)

// Repository provides read access to the restaurant directory and its
// cuisine search index.
type Repository interface {
	// GetByID resolves one restaurant record by its directory identifier.
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	// SearchByCuisine returns the identifiers of restaurants matching the
	// cuisine term, best match first.
	SearchByCuisine(ctx context.Context, cuisine string) ([]string, error)
}
