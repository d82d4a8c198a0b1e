package meetingRepo

import (
	"time"

	"teampulse/models"
)

// MeetingRepository defines data access for durable meeting records.
type MeetingRepository interface {
	// Create inserts a new meeting record.
	Create(meeting *models.Meeting) error
	// GetByID retrieves a meeting by its unique ID.
	GetByID(id string) (*models.Meeting, error)
	// ListForParticipant retrieves meetings a user participates in, starting
	// within [from, to).
	ListForParticipant(userID string, from, to time.Time) ([]models.Meeting, error)
	// FindOverlapping retrieves meetings that overlap [start, end) for any of
	// the given participants. Used to detect booking races at write time.
	FindOverlapping(participants []string, start, end time.Time) ([]models.Meeting, error)
	// Delete removes a meeting record by its ID.
	Delete(id string) error
}
