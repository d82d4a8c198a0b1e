package availability

import (
	"sort"
	"time"

	"teampulse/models"
)

// SlotOptions configures a free-slot search.
type SlotOptions struct {
	// MinDurationMinutes is the shortest acceptable gap. Must be positive.
	MinDurationMinutes int
	// Working-hours window, minutes from midnight.
	WorkdayStartMin int
	WorkdayEndMin   int
	// DaysAhead is the search horizon in days; values below 1 mean one day.
	DaysAhead int
	// MaxResults caps the returned slots; zero or negative means no cap.
	MaxResults int
	// BaseDate anchors day zero of the search; only its calendar date is used.
	BaseDate time.Time
	// SearchFromMin is the earliest minute considered on day zero, typically
	// the current time so past gaps are not offered. Values at or below
	// WorkdayStartMin have no effect.
	SearchFromMin int
}

// FindSlots computes the mutually free windows for every participant in
// perParticipant, clipped to working hours, split into gaps of at least
// MinDurationMinutes and ordered earliest-first.
//
// Busy blocks are time-of-day records for the snapshot day; days past the
// first carry no recorded blocks and expose the whole working window.
// An empty result is a valid "no common time" outcome, not an error.
func FindSlots(perParticipant map[string][]models.BusyBlock, opts SlotOptions) ([]models.AvailableSlot, error) {
	if opts.MinDurationMinutes <= 0 {
		return nil, NewInvalidRequestError("minDurationMinutes must be positive")
	}
	if len(perParticipant) == 0 {
		return nil, NewInvalidRequestError("at least one participant is required")
	}
	if opts.WorkdayStartMin >= opts.WorkdayEndMin {
		return nil, NewInvalidRequestError("working hours window is empty")
	}

	// Sorted participant list: every returned slot is free for all of them.
	participants := make([]string, 0, len(perParticipant))
	for id := range perParticipant {
		participants = append(participants, id)
	}
	sort.Strings(participants)

	// Merge per participant first, then union across participants: a window
	// busy for any one participant is unavailable for all.
	var union []interval
	for _, id := range participants {
		parsed, err := parseBlocks(perParticipant[id])
		if err != nil {
			return nil, err
		}
		union = append(union, mergeIntervals(parsed)...)
	}
	union = mergeIntervals(union)

	daysAhead := opts.DaysAhead
	if daysAhead < 1 {
		daysAhead = 1
	}

	day0 := time.Date(opts.BaseDate.Year(), opts.BaseDate.Month(), opts.BaseDate.Day(), 0, 0, 0, 0, opts.BaseDate.Location())

	var slots []models.AvailableSlot
	for day := 0; day < daysAhead; day++ {
		window := interval{Start: opts.WorkdayStartMin, End: opts.WorkdayEndMin}
		busy := union
		if day == 0 {
			if opts.SearchFromMin > window.Start {
				window.Start = opts.SearchFromMin
			}
			if window.Start >= window.End {
				continue
			}
		} else {
			busy = nil
		}

		dayStart := day0.AddDate(0, 0, day)
		for _, gap := range subtractIntervals(window, busy) {
			if gap.End-gap.Start < opts.MinDurationMinutes {
				continue
			}
			slots = append(slots, models.AvailableSlot{
				Start:            dayStart.Add(time.Duration(gap.Start) * time.Minute),
				End:              dayStart.Add(time.Duration(gap.End) * time.Minute),
				DurationMinutes:  gap.End - gap.Start,
				ParticipantsFree: participants,
			})
			if opts.MaxResults > 0 && len(slots) >= opts.MaxResults {
				return slots, nil
			}
		}
	}
	return slots, nil
}
