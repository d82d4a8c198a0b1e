package models

import "time"

// Team groups users for the dashboard and group scheduling.
type Team struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	MemberIDs []string  `bson:"memberIds" json:"memberIds"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name      string   `json:"name" binding:"required"`
	MemberIDs []string `json:"memberIds"`
}
