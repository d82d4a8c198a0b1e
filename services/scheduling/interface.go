package scheduling

import (
	"time"

	"teampulse/models"
)

// SchedulingService finds mutually free slots and books meetings.
type SchedulingService interface {
	// FindCommonSlots intersects the participants' free time within working
	// hours. now anchors the search: past gaps on the current day are not
	// offered. On snapshot-fetch failure the configured fallback generator
	// supplies placeholder slots and the response is marked degraded.
	FindCommonSlots(userIDs []string, minDurationMinutes int, maxResults int, now time.Time) (*models.SlotSearchResponse, error)
	// BookMeeting materializes a chosen slot into a durable meeting record
	// and folds a busy block into each participant's snapshot.
	BookMeeting(createdBy string, req models.BookMeetingRequest, now time.Time) (*models.Meeting, error)
	// ListMeetings returns the user's meetings starting within [from, to).
	ListMeetings(userID string, from, to time.Time) ([]models.Meeting, error)
}

// SlotGenerator supplies placeholder slots when the real computation cannot
// run. This is the degraded-mode strategy injected at the boundary; the
// intersector itself never knows about fallback.
type SlotGenerator interface {
	Generate(userIDs []string, minDurationMinutes int, maxResults int, now time.Time) []models.AvailableSlot
}

// ReminderScheduler enqueues a meeting reminder for later delivery.
type ReminderScheduler interface {
	ScheduleMeetingReminder(meeting *models.Meeting) error
}
