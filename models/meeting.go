package models

import "time"

// AvailableSlot is a candidate meeting window where every requested
// participant is simultaneously free. Slots are derived views: they are
// computed on demand and never persisted.
type AvailableSlot struct {
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	DurationMinutes  int       `json:"durationMinutes"`
	ParticipantsFree []string  `json:"participantsFree"`
}

// Meeting is the durable record created when a caller books a slot.
// Booking also appends a calendar busy block to each participant's
// status snapshot.
type Meeting struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Start           time.Time `bson:"start" json:"start"`
	End             time.Time `bson:"end" json:"end"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Participants    []string  `bson:"participants" json:"participants"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedBy       string    `bson:"createdBy" json:"createdBy"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// SlotSearchRequest is the payload for the quick-sync and group flows.
type SlotSearchRequest struct {
	UserIDs     []string `json:"userIds" binding:"required"`
	MinDuration int      `json:"minDuration" binding:"required"`
}

// SlotSearchResponse carries the computed slots. Degraded is set when the
// slots were synthesized by the fallback generator because snapshot
// fetching failed; the UI renders a dismissible banner in that case.
type SlotSearchResponse struct {
	Slots    []AvailableSlot `json:"slots"`
	Degraded bool            `json:"degraded,omitempty"`
}

// BookMeetingRequest is the payload for confirming a chosen slot.
type BookMeetingRequest struct {
	Title        string    `json:"title" binding:"required"`
	Start        time.Time `json:"start" binding:"required"`
	End          time.Time `json:"end" binding:"required"`
	Participants []string  `json:"participants" binding:"required"`
	Notes        string    `json:"notes"`
}

// ReminderPayload is the asynq task payload for meeting reminders.
type ReminderPayload struct {
	MeetingID string `json:"meetingId"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
