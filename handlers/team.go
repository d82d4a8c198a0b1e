package handlers

import (
	"net/http"

	teamRepo "teampulse/database/repository/team"
	"teampulse/models"
	"teampulse/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TeamHandler exposes team membership endpoints.
type TeamHandler struct {
	Teams teamRepo.TeamRepository
}

// NewTeamHandler creates a TeamHandler.
func NewTeamHandler(teams teamRepo.TeamRepository) *TeamHandler {
	return &TeamHandler{Teams: teams}
}

// CreateTeamHandler handles POST /api/teams. The creator is always a member.
func (h *TeamHandler) CreateTeamHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	members := req.MemberIDs
	hasCreator := false
	for _, id := range members {
		if id == userID {
			hasCreator = true
			break
		}
	}
	if !hasCreator {
		members = append(members, userID)
	}

	team := &models.Team{
		ID:        uuid.NewString(),
		Name:      req.Name,
		MemberIDs: members,
		CreatedBy: userID,
	}
	if err := h.Teams.Create(team); err != nil {
		logger.Error("Failed to create team", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create team"})
		return
	}
	c.JSON(http.StatusCreated, team)
}

// GetTeamHandler handles GET /api/teams/:teamID.
func (h *TeamHandler) GetTeamHandler(c *gin.Context) {
	logger := utils.GetLogger()
	teamID := c.Param("teamID")

	team, err := h.Teams.GetByID(teamID)
	if err != nil {
		logger.Error("Team not found", zap.String("teamId", teamID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, team)
}

// AddTeamMemberHandler handles POST /api/teams/:teamID/members.
func (h *TeamHandler) AddTeamMemberHandler(c *gin.Context) {
	logger := utils.GetLogger()
	teamID := c.Param("teamID")

	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Teams.AddMember(teamID, req.UserID); err != nil {
		logger.Error("Failed to add team member", zap.String("teamId", teamID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member added"})
}

// ListMyTeamsHandler handles GET /api/teams for the authenticated user.
func (h *TeamHandler) ListMyTeamsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	teams, err := h.Teams.ListByMember(userID)
	if err != nil {
		logger.Error("Failed to list teams", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list teams"})
		return
	}
	if teams == nil {
		teams = []models.Team{}
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}
