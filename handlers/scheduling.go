package handlers

import (
	"net/http"
	"time"

	"teampulse/models"
	"teampulse/services/availability"
	"teampulse/services/scheduling"
	"teampulse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SchedulingHandler exposes the slot-search and booking boundaries.
type SchedulingHandler struct {
	Svc          scheduling.SchedulingService
	QuickSyncCap int
	GroupCap     int
}

// NewSchedulingHandler creates a SchedulingHandler with the configured
// result caps.
func NewSchedulingHandler(svc scheduling.SchedulingService, quickSyncCap, groupCap int) *SchedulingHandler {
	return &SchedulingHandler{Svc: svc, QuickSyncCap: quickSyncCap, GroupCap: groupCap}
}

// QuickSyncHandler handles POST /api/schedule/quick-sync: a pairwise flow,
// the requester plus exactly one teammate.
func (h *SchedulingHandler) QuickSyncHandler(c *gin.Context) {
	var req models.SlotSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.UserIDs) != 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quick sync requires exactly two participants"})
		return
	}
	h.findSlots(c, req, h.QuickSyncCap)
}

// GroupScheduleHandler handles POST /api/schedule/group: the N-participant
// flow over the same intersection algorithm.
func (h *SchedulingHandler) GroupScheduleHandler(c *gin.Context) {
	var req models.SlotSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.UserIDs) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "group scheduling requires at least two participants"})
		return
	}
	h.findSlots(c, req, h.GroupCap)
}

func (h *SchedulingHandler) findSlots(c *gin.Context, req models.SlotSearchRequest, maxResults int) {
	logger := utils.GetLogger()

	resp, err := h.Svc.FindCommonSlots(req.UserIDs, req.MinDuration, maxResults, time.Now())
	if err != nil {
		if availability.IsInvalidRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Slot search failed", zap.Strings("userIds", req.UserIDs), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "slot search failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BookMeetingHandler handles POST /api/schedule/book.
func (h *SchedulingHandler) BookMeetingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	var req models.BookMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meeting, err := h.Svc.BookMeeting(userID, req, time.Now())
	if err != nil {
		switch {
		case availability.IsInvalidRequest(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case scheduling.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Booking failed", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "booking failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, meeting)
}

// ListMeetingsHandler handles GET /api/schedule/meetings for the
// authenticated user, defaulting to the coming week.
func (h *SchedulingHandler) ListMeetingsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	from := time.Now()
	to := from.AddDate(0, 0, 7)

	meetings, err := h.Svc.ListMeetings(userID, from, to)
	if err != nil {
		logger.Error("Failed to list meetings", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list meetings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}
