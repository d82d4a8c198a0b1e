package teamRepo

import "teampulse/models"

// TeamRepository defines data access for teams.
type TeamRepository interface {
	// Create inserts a new team record.
	Create(team *models.Team) error
	// GetByID retrieves a team by its unique ID.
	GetByID(id string) (*models.Team, error)
	// ListByMember retrieves every team the user belongs to.
	ListByMember(userID string) ([]models.Team, error)
	// AddMember appends a user to the team's member list.
	AddMember(teamID, userID string) error
	// Delete removes a team record by its ID.
	Delete(id string) error
}
