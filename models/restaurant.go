// File: models/restaurant.go
package models

// Restaurant is one record of the restaurant directory. The directory is
// populated by an external ingest pipeline and is read-only at runtime.
type Restaurant struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Cuisine     string  `bson:"cuisine" json:"cuisine"`
	Rating      float64 `bson:"rating" json:"rating"`
	ReviewCount int     `bson:"reviewCount" json:"reviewCount"`
	Address     string  `bson:"address" json:"address"`
	ZipCode     string  `bson:"zipCode" json:"zipCode"`
	Latitude    float64 `bson:"latitude" json:"latitude"`
	Longitude   float64 `bson:"longitude" json:"longitude"`
}
