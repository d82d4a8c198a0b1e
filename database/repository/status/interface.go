package statusRepo

import "teampulse/models"

// StatusRepository defines data access for per-user status snapshots.
// Each user has at most one current snapshot; saves replace it wholesale.
type StatusRepository interface {
	// Upsert replaces the user's snapshot, creating it if absent.
	Upsert(snapshot *models.StatusSnapshot) error
	// GetByUserID retrieves a user's current snapshot, nil when none exists.
	GetByUserID(userID string) (*models.StatusSnapshot, error)
	// GetByUserIDs retrieves snapshots for the given users; users without a
	// snapshot are simply absent from the result.
	GetByUserIDs(userIDs []string) ([]models.StatusSnapshot, error)
	// Delete removes a user's snapshot.
	Delete(userID string) error
}
