package meetingRepo

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

// MongoMeetingRepo implements MeetingRepository using MongoDB.
type MongoMeetingRepo struct {
	coll *mongo.Collection
}

// NewMongoMeetingRepo creates a new instance of MeetingRepository using MongoDB.
func NewMongoMeetingRepo() MeetingRepository {
	coll := database.MongoClient.Database("teampulse").Collection("meetings")
	repo := &MongoMeetingRepo{coll: coll}

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
func (r *MongoMeetingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "participants", Value: 1}, {Key: "start", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new meeting document.
func (r *MongoMeetingRepo) Create(meeting *models.Meeting) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	meeting.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, meeting)
	if err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// GetByID retrieves a meeting by its unique ID.
func (r *MongoMeetingRepo) GetByID(id string) (*models.Meeting, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var meeting models.Meeting
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&meeting); err != nil {
		return nil, fmt.Errorf("failed to fetch meeting with id %s: %w", id, err)
	}
	return &meeting, nil
}

// ListForParticipant retrieves meetings a user participates in within [from, to).
func (r *MongoMeetingRepo) ListForParticipant(userID string, from, to time.Time) ([]models.Meeting, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"participants": userID,
		"start":        bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve meetings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	for cursor.Next(ctx) {
		var m models.Meeting
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode meeting: %w", err)
		}
		meetings = append(meetings, m)
	}
	return meetings, nil
}

// FindOverlapping retrieves meetings that overlap [start, end) for any of
// the given participants.
func (r *MongoMeetingRepo) FindOverlapping(participants []string, start, end time.Time) ([]models.Meeting, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"participants": bson.M{"$in": participants},
		"start":        bson.M{"$lt": end},
		"end":          bson.M{"$gt": start},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping meetings: %w", err)
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	for cursor.Next(ctx) {
		var m models.Meeting
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode meeting: %w", err)
		}
		meetings = append(meetings, m)
	}
	return meetings, nil
}

// Delete removes a meeting document by its ID.
func (r *MongoMeetingRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete meeting with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("meeting with id %s not found", id)
	}
	return nil
}
