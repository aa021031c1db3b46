package models

// Package is a flat-priced bundle, independent of individual services.
type Package struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Image       string   `json:"image" bson:"image"`
	Price       float64  `json:"price" bson:"price"`
	Features    []string `json:"features" bson:"features"`
	IsPopular   bool     `json:"isPopular" bson:"isPopular"`
}
