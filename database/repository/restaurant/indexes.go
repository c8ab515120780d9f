package restaurantRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes the directory queries rely on: a unique
// lookup index on the restaurant ID and a text index over the cuisine field
// serving as the search index.
func (r *MongoRestaurantRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	idIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	cuisineIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "cuisine", Value: "text"}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{idIdx, cuisineIdx})
	return err
}
