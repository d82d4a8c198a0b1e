package models

import "time"

// Status colors computed by the availability engine.
const (
	StatusGreen  = "green"
	StatusYellow = "yellow"
	StatusRed    = "red"
)

// Busy block sources.
const (
	BlockSourceVoice    = "voice"
	BlockSourceCalendar = "calendar"
)

// BusyBlock represents one contiguous busy interval within a single day.
// Times are zero-padded local wall-clock "HH:MM" strings with Start < End;
// producers must split or clamp anything that would cross midnight.
type BusyBlock struct {
	Start  string `bson:"start" json:"start" binding:"required"`
	End    string `bson:"end" json:"end" binding:"required"`
	Label  string `bson:"label,omitempty" json:"label,omitempty"`
	Source string `bson:"source" json:"source"`
}

// StatusSnapshot is a user's single current status record. It is replaced
// wholesale on every save; the color is always recomputed server-side at
// write time and never trusted from the client.
type StatusSnapshot struct {
	UserID          string      `bson:"userId" json:"userId"`
	Tasks           []string    `bson:"tasks,omitempty" json:"tasks,omitempty"`
	BusyBlocks      []BusyBlock `bson:"busyBlocks,omitempty" json:"busyBlocks,omitempty"`
	Blockers        []string    `bson:"blockers,omitempty" json:"blockers,omitempty"`
	FreeAfter       string      `bson:"freeAfter,omitempty" json:"freeAfter,omitempty"`
	FreeUntil       string      `bson:"freeUntil,omitempty" json:"freeUntil,omitempty"`
	RawTranscript   string      `bson:"rawTranscript,omitempty" json:"rawTranscript,omitempty"`
	ConfidenceScore float64     `bson:"confidenceScore,omitempty" json:"confidenceScore,omitempty"`
	StatusColor     string      `bson:"statusColor" json:"statusColor"`
	StatusMessage   string      `bson:"statusMessage" json:"statusMessage"`
	LastUpdated     time.Time   `bson:"lastUpdated" json:"lastUpdated"`
}

// StatusUpdateInput is the payload accepted by the status-save boundary.
type StatusUpdateInput struct {
	Tasks           []string    `json:"tasks"`
	BusyBlocks      []BusyBlock `json:"busyBlocks"`
	FreeAfter       string      `json:"freeAfter"`
	FreeUntil       string      `json:"freeUntil"`
	Blockers        []string    `json:"blockers"`
	RawTranscript   string      `json:"rawTranscript"`
	ConfidenceScore float64     `json:"confidenceScore"`
}
