package scheduling

import (
	"math/rand"
	"sort"
	"time"

	"teampulse/models"
)

// MockSlotGenerator synthesizes plausible placeholder slots when snapshots
// cannot be fetched, so the scheduling UI is never empty on a transient
// failure. The slots are pseudo-random half-hour-aligned windows inside
// working hours; the accompanying degraded flag tells the UI to show a
// dismissible error banner alongside them.
type MockSlotGenerator struct {
	WorkdayStartMin int
	WorkdayEndMin   int
}

func (g *MockSlotGenerator) Generate(userIDs []string, minDurationMinutes int, maxResults int, now time.Time) []models.AvailableSlot {
	if maxResults <= 0 {
		maxResults = 5
	}
	duration := minDurationMinutes
	if duration < 30 {
		duration = 30
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	searchFrom := now.Hour()*60 + now.Minute()
	if searchFrom < g.WorkdayStartMin {
		searchFrom = g.WorkdayStartMin
	}
	// Align to the next half hour.
	searchFrom = ((searchFrom + 29) / 30) * 30

	rng := rand.New(rand.NewSource(now.UnixNano()))

	starts := make(map[int]struct{})
	for attempts := 0; attempts < maxResults*4 && len(starts) < maxResults; attempts++ {
		latest := g.WorkdayEndMin - duration
		if latest < searchFrom {
			break
		}
		span := (latest-searchFrom)/30 + 1
		start := searchFrom + rng.Intn(span)*30
		starts[start] = struct{}{}
	}

	ordered := make([]int, 0, len(starts))
	for start := range starts {
		ordered = append(ordered, start)
	}
	sort.Ints(ordered)

	slots := make([]models.AvailableSlot, 0, len(ordered))
	for _, start := range ordered {
		slots = append(slots, models.AvailableSlot{
			Start:            dayStart.Add(time.Duration(start) * time.Minute),
			End:              dayStart.Add(time.Duration(start+duration) * time.Minute),
			DurationMinutes:  duration,
			ParticipantsFree: userIDs,
		})
	}
	return slots
}
