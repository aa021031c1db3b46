package packRepo

import (
	"context"
	"fmt"
	"time"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPackageRepo implements PackageRepository using MongoDB.
type MongoPackageRepo struct {
	coll *mongo.Collection
}

// NewMongoPackageRepo creates a new instance of PackageRepository using MongoDB.
func NewMongoPackageRepo() PackageRepository {
	coll := database.Collection("packages")
	repo := &MongoPackageRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPackageRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a package by its unique ID.
func (r *MongoPackageRepo) GetByID(id string) (*models.Package, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pkg models.Package
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch package with id %s: %w", id, err)
	}
	return &pkg, nil
}

// GetAll retrieves all packages.
func (r *MongoPackageRepo) GetAll() ([]models.Package, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []models.Package
	for cursor.Next(ctx) {
		var p models.Package
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode package: %w", err)
		}
		packages = append(packages, p)
	}
	return packages, nil
}

// Create inserts a new package record.
func (r *MongoPackageRepo) Create(pkg *models.Package) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("failed to insert package: %w", err)
	}
	return nil
}

// Update replaces an existing package record.
func (r *MongoPackageRepo) Update(pkg *models.Package) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": pkg.ID}, pkg)
	if err != nil {
		return fmt.Errorf("failed to update package with id %s: %w", pkg.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a package record by its ID.
func (r *MongoPackageRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete package with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
