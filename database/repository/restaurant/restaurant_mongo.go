package restaurantRepo

import (
	"context"
	"fmt"

	"dinebot/config"
	"dinebot/database"
	"dinebot/models"
	"dinebot/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRestaurantRepo implements Repository against the restaurants collection.
type MongoRestaurantRepo struct {
	coll *mongo.Collection
}

// NewMongoRestaurantRepo returns a repository bound to the restaurants
// collection of the configured database.
func NewMongoRestaurantRepo() *MongoRestaurantRepo {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("restaurants")
	repo := &MongoRestaurantRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Fatalf("failed to create restaurant indexes: %v", err)
	}
	return repo
}

// GetByID returns the restaurant with the given directory ID.
func (r *MongoRestaurantRepo) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	var rec models.Restaurant
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("restaurant %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to fetch restaurant %s: %w", id, err)
	}
	return &rec, nil
}
