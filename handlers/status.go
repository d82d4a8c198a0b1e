package handlers

import (
	"net/http"
	"time"

	"teampulse/models"
	"teampulse/services/availability"
	"teampulse/services/status"
	"teampulse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatusHandler exposes the status-save and status-read boundaries.
type StatusHandler struct {
	StatusSvc status.StatusService
}

// NewStatusHandler creates a StatusHandler.
func NewStatusHandler(svc status.StatusService) *StatusHandler {
	return &StatusHandler{StatusSvc: svc}
}

// SaveStatusHandler handles POST /api/status. The authenticated user's
// snapshot is replaced wholesale; the color comes from the server-side
// classifier, never from the payload.
func (h *StatusHandler) SaveStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	var input models.StatusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid status payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.StatusSvc.SaveStatus(userID, input, time.Now())
	if err != nil {
		if availability.IsInvalidRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save status", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save status"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetStatusHandler handles GET /api/status/:userID.
func (h *StatusHandler) GetStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.Param("userID")

	snapshot, err := h.StatusSvc.GetStatus(userID)
	if err != nil {
		logger.Error("Failed to fetch status", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch status"})
		return
	}
	if snapshot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no status recorded for user"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetTeamStatusHandler handles GET /api/teams/:teamID/status.
func (h *StatusHandler) GetTeamStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()
	teamID := c.Param("teamID")

	statuses, err := h.StatusSvc.GetTeamStatus(teamID)
	if err != nil {
		logger.Error("Failed to fetch team statuses", zap.String("teamId", teamID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teamId": teamID, "statuses": statuses})
}
