package teamRepo

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

// MongoTeamRepo implements TeamRepository using MongoDB.
type MongoTeamRepo struct {
	coll *mongo.Collection
}

// NewMongoTeamRepo creates a new instance of TeamRepository using MongoDB.
func NewMongoTeamRepo() TeamRepository {
	coll := database.MongoClient.Database("teampulse").Collection("teams")
	repo := &MongoTeamRepo{coll: coll}

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
func (r *MongoTeamRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "memberIds", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new team document.
func (r *MongoTeamRepo) Create(team *models.Team) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, team)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

// GetByID retrieves a team by its unique ID.
func (r *MongoTeamRepo) GetByID(id string) (*models.Team, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var team models.Team
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&team); err != nil {
		return nil, fmt.Errorf("failed to fetch team with id %s: %w", id, err)
	}
	return &team, nil
}

// ListByMember retrieves every team the user belongs to.
func (r *MongoTeamRepo) ListByMember(userID string) ([]models.Team, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"memberIds": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve teams for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	for cursor.Next(ctx) {
		var t models.Team
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, nil
}

// AddMember appends a user to the team's member list.
func (r *MongoTeamRepo) AddMember(teamID, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"memberIds": userID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": teamID}, update)
	if err != nil {
		return fmt.Errorf("failed to add member to team %s: %w", teamID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("team with id %s not found", teamID)
	}
	return nil
}

// Delete removes a team document by its ID.
func (r *MongoTeamRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete team with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("team with id %s not found", id)
	}
	return nil
}
