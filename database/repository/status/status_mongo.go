package statusRepo

import (
	"context"
	"fmt"
	"time"

	"teampulse/database"
	"teampulse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStatusRepo implements StatusRepository using MongoDB.
type MongoStatusRepo struct {
	coll *mongo.Collection
}

// NewMongoStatusRepo creates a new instance of StatusRepository using MongoDB.
func NewMongoStatusRepo() StatusRepository {
	coll := database.MongoClient.Database("teampulse").Collection("statuses")
	repo := &MongoStatusRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoStatusRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert replaces the user's snapshot document wholesale. The unique index
// on userId keeps this an at-most-one-current-version record, and
// ReplaceOne makes concurrent saves last-write-wins.
func (r *MongoStatusRepo) Upsert(snapshot *models.StatusSnapshot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": snapshot.UserID}
	opts := options.Replace().SetUpsert(true)

	if _, err := r.coll.ReplaceOne(ctx, filter, snapshot, opts); err != nil {
		return fmt.Errorf("failed to upsert status for user %s: %w", snapshot.UserID, err)
	}
	return nil
}

// GetByUserID retrieves a user's current snapshot.
func (r *MongoStatusRepo) GetByUserID(userID string) (*models.StatusSnapshot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var snapshot models.StatusSnapshot
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&snapshot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch status for user %s: %w", userID, err)
	}
	return &snapshot, nil
}

// GetByUserIDs retrieves snapshots for a set of users.
func (r *MongoStatusRepo) GetByUserIDs(userIDs []string) ([]models.StatusSnapshot, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve statuses: %w", err)
	}
	defer cursor.Close(ctx)

	var snapshots []models.StatusSnapshot
	for cursor.Next(ctx) {
		var s models.StatusSnapshot
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode status: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}

// Delete removes a user's snapshot document.
func (r *MongoStatusRepo) Delete(userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete status for user %s: %w", userID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("status for user %s not found", userID)
	}
	return nil
}
