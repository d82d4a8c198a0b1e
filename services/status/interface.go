package status

import (
	"time"

	"teampulse/models"
)

// StatusService manages per-user status snapshots.
type StatusService interface {
	// SaveStatus validates the update, recomputes the status color and
	// replaces the user's snapshot wholesale. now is the caller-supplied
	// wall-clock time used for classification.
	SaveStatus(userID string, input models.StatusUpdateInput, now time.Time) (*models.StatusSnapshot, error)
	// GetStatus retrieves a user's current snapshot, nil when none exists.
	GetStatus(userID string) (*models.StatusSnapshot, error)
	// GetTeamStatus retrieves the current snapshots of all team members.
	GetTeamStatus(teamID string) ([]models.StatusSnapshot, error)
	// AppendMeetingBlock adds a calendar busy block to the user's snapshot
	// (creating one if absent) and reclassifies it. Used by the booking path.
	AppendMeetingBlock(userID string, blk models.BusyBlock, now time.Time) error
}

// FeedPublisher pushes replaced snapshots to subscribers. Updates are
// whole-snapshot replacements, last-write-wins per user.
type FeedPublisher interface {
	PublishSnapshot(snapshot *models.StatusSnapshot) error
}

// SnapshotCache serves the latest published snapshot without a database
// round trip, nil on a miss.
type SnapshotCache interface {
	GetCachedSnapshot(userID string) (*models.StatusSnapshot, error)
}
