package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"catalog-service/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productsCollection = "products"

// MongoProductRepository stores products in a MongoDB collection
type MongoProductRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoProductRepository connects to MongoDB and verifies the connection.
// The caller owns the lifecycle and must Close the repository on shutdown.
func NewMongoProductRepository(ctx context.Context, uri, database string) (*MongoProductRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoProductRepository{
		client:     client,
		collection: client.Database(database).Collection(productsCollection),
	}, nil
}

// Close disconnects the underlying MongoDB client
func (r *MongoProductRepository) Close(ctx context.Context) error {
	if r.client != nil {
		return r.client.Disconnect(ctx)
	}
	return nil
}

// List returns up to limit products with _id > after, ascending by _id.
// A cursor pointing at a deleted or nonexistent ID still works: this is a
// plain range query, not a lookup.
func (r *MongoProductRepository) List(ctx context.Context, after *primitive.ObjectID, limit int) ([]domain.Product, error) {
	filter := bson.M{}
	if after != nil {
		filter["_id"] = bson.M{"$gt": *after}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]domain.Product, 0, limit)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// Search matches the query as a literal, case-insensitive substring against
// name or description, newest first.
func (r *MongoProductRepository) Search(ctx context.Context, query string) ([]domain.Product, error) {
	// QuoteMeta keeps user input from being interpreted as a regex
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]domain.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// Insert persists the product with a store-assigned ID and creation time
func (r *MongoProductRepository) Insert(ctx context.Context, product *domain.Product) error {
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}
