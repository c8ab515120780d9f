package restaurantRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchLimit caps the hit list handed back to the worker; candidates are
// sampled from this set, so it only needs to be comfortably larger than the
// sample size.
const searchLimit = 50

// SearchByCuisine runs a text query over the cuisine field and returns the
// matching restaurant IDs ranked by text score.
func (r *MongoRestaurantRepo) SearchByCuisine(ctx context.Context, cuisine string) ([]string, error) {
	filter := bson.M{"$text": bson.M{"$search": cuisine}}
	opts := options.Find().
		SetProjection(bson.M{"id": 1, "score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetLimit(searchLimit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("cuisine search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var hits []struct {
		ID string `bson:"id"`
	}
	if err := cursor.All(ctx, &hits); err != nil {
		return nil, fmt.Errorf("failed to decode cuisine search hits: %w", err)
	}

	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.ID)
	}
	return ids, nil
}
