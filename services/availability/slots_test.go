package availability

import (
	"testing"
	"time"

	"teampulse/models"
)

var testDay = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func defaultOpts(minDuration int) SlotOptions {
	return SlotOptions{
		MinDurationMinutes: minDuration,
		WorkdayStartMin:    9 * 60,
		WorkdayEndMin:      18 * 60,
		DaysAhead:          1,
		BaseDate:           testDay,
	}
}

func at(hour, min int) time.Time {
	return testDay.Add(time.Duration(hour*60+min) * time.Minute)
}

func TestFindSlotsPairwiseIntersection(t *testing.T) {
	// A busy 10:00-11:00, B busy 10:30-11:30: the union blocks 10:00-11:30,
	// so after 10:00 the earliest shared gap of >=30 minutes opens at 11:30.
	busy := map[string][]models.BusyBlock{
		"alice": {block("10:00", "11:00")},
		"bob":   {block("10:30", "11:30")},
	}
	opts := defaultOpts(30)
	opts.SearchFromMin = 10 * 60

	slots, err := FindSlots(busy, opts)
	if err != nil {
		t.Fatalf("FindSlots returned error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected at least one slot")
	}
	if !slots[0].Start.Equal(at(11, 30)) {
		t.Errorf("first slot starts %v, want %v", slots[0].Start, at(11, 30))
	}
	if !slots[0].End.Equal(at(18, 0)) {
		t.Errorf("first slot ends %v, want %v", slots[0].End, at(18, 0))
	}
	wantFree := []string{"alice", "bob"}
	if len(slots[0].ParticipantsFree) != 2 || slots[0].ParticipantsFree[0] != wantFree[0] || slots[0].ParticipantsFree[1] != wantFree[1] {
		t.Errorf("participantsFree = %v, want %v", slots[0].ParticipantsFree, wantFree)
	}
}

func TestFindSlotsFullyBookedInShortGaps(t *testing.T) {
	// Calendar chopped into gaps of at most 60 minutes can never fit a
	// 120-minute meeting; that is a valid empty result, not an error.
	busy := map[string][]models.BusyBlock{
		"alice": {block("10:00", "11:00"), block("12:00", "13:00"), block("14:00", "15:00"), block("16:00", "17:30")},
	}
	slots, err := FindSlots(busy, defaultOpts(120))
	if err != nil {
		t.Fatalf("FindSlots returned error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots, got %d", len(slots))
	}
}

func TestFindSlotsTilesWorkingWindow(t *testing.T) {
	// Returned slots + merged busy union + sub-minimum gaps must exactly
	// tile the working window: no minute unaccounted for, none counted twice.
	busy := map[string][]models.BusyBlock{
		"alice": {block("09:30", "10:15"), block("13:00", "14:00")},
		"bob":   {block("10:00", "10:45"), block("16:00", "17:50")},
		"carol": {block("12:00", "12:05")},
	}
	minDuration := 45
	slots, err := FindSlots(busy, defaultOpts(minDuration))
	if err != nil {
		t.Fatalf("FindSlots returned error: %v", err)
	}

	var all []interval
	for _, s := range slots {
		start := s.Start.Hour()*60 + s.Start.Minute()
		end := s.End.Hour()*60 + s.End.Minute()
		if end-start < minDuration {
			t.Errorf("slot %v-%v shorter than minimum %d", s.Start, s.End, minDuration)
		}
		if s.DurationMinutes != end-start {
			t.Errorf("slot duration %d does not match %v-%v", s.DurationMinutes, s.Start, s.End)
		}
		all = append(all, interval{Start: start, End: end})
	}

	var blocks []models.BusyBlock
	for _, bs := range busy {
		blocks = append(blocks, bs...)
	}
	parsed, err := parseBlocks(blocks)
	if err != nil {
		t.Fatalf("parseBlocks: %v", err)
	}
	window := interval{Start: 9 * 60, End: 18 * 60}
	for _, iv := range mergeIntervals(parsed) {
		if iv.End <= window.Start || iv.Start >= window.End {
			continue
		}
		if iv.Start < window.Start {
			iv.Start = window.Start
		}
		if iv.End > window.End {
			iv.End = window.End
		}
		all = append(all, iv)
	}
	// Remaining free gaps shorter than the minimum fill in the rest.
	for _, gap := range subtractIntervals(window, mergeIntervals(parsed)) {
		if gap.End-gap.Start < minDuration {
			all = append(all, gap)
		}
	}

	covered := mergeIntervals(all)
	if len(covered) != 1 || covered[0] != window {
		t.Errorf("pieces do not tile the working window: %v", covered)
	}

	total := 0
	for _, iv := range all {
		total += iv.End - iv.Start
	}
	if total != window.End-window.Start {
		t.Errorf("pieces overlap or leave holes: total %d minutes, window %d", total, window.End-window.Start)
	}
}

func TestFindSlotsChronologicalOrder(t *testing.T) {
	busy := map[string][]models.BusyBlock{
		"alice": {block("10:00", "10:30"), block("12:00", "12:30"), block("15:00", "15:30")},
	}
	opts := defaultOpts(15)
	opts.DaysAhead = 2

	slots, err := FindSlots(busy, opts)
	if err != nil {
		t.Fatalf("FindSlots returned error: %v", err)
	}
	if len(slots) < 4 {
		t.Fatalf("expected slots across both days, got %d", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i-1].Start.Before(slots[i].Start) {
			t.Errorf("slots out of order: %v then %v", slots[i-1].Start, slots[i].Start)
		}
	}
	// The second day carries no recorded blocks, so its working window is
	// one uninterrupted slot.
	last := slots[len(slots)-1]
	if last.DurationMinutes != 9*60 {
		t.Errorf("second-day slot duration = %d, want %d", last.DurationMinutes, 9*60)
	}
}

func TestFindSlotsMaxResults(t *testing.T) {
	busy := map[string][]models.BusyBlock{
		"alice": {block("10:00", "10:30"), block("11:00", "11:30"), block("12:00", "12:30"), block("13:00", "13:30")},
	}
	opts := defaultOpts(15)
	opts.MaxResults = 2

	slots, err := FindSlots(busy, opts)
	if err != nil {
		t.Fatalf("FindSlots returned error: %v", err)
	}
	if len(slots) != 2 {
		t.Errorf("expected 2 slots, got %d", len(slots))
	}
}

func TestFindSlotsEmptyCalendars(t *testing.T) {
	busy := map[string][]models.BusyBlock{
		"alice": nil,
		"bob":   {},
	}
	slots, err := FindSlots(busy, defaultOpts(30))
	if err != nil {
		t.Fatalf("FindSlots returned error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected a single full-window slot, got %d", len(slots))
	}
	if !slots[0].Start.Equal(at(9, 0)) || !slots[0].End.Equal(at(18, 0)) {
		t.Errorf("slot = %v-%v, want full working window", slots[0].Start, slots[0].End)
	}
}

func TestFindSlotsContractViolations(t *testing.T) {
	valid := map[string][]models.BusyBlock{"alice": {block("10:00", "11:00")}}

	tests := []struct {
		name string
		busy map[string][]models.BusyBlock
		opts SlotOptions
	}{
		{name: "zero minimum duration", busy: valid, opts: defaultOpts(0)},
		{name: "negative minimum duration", busy: valid, opts: defaultOpts(-30)},
		{name: "no participants", busy: map[string][]models.BusyBlock{}, opts: defaultOpts(30)},
		{
			name: "inverted working hours",
			busy: valid,
			opts: SlotOptions{MinDurationMinutes: 30, WorkdayStartMin: 18 * 60, WorkdayEndMin: 9 * 60, BaseDate: testDay},
		},
		{
			name: "malformed block time",
			busy: map[string][]models.BusyBlock{"alice": {block("10am", "11:00")}},
			opts: defaultOpts(30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FindSlots(tt.busy, tt.opts)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !IsInvalidRequest(err) {
				t.Errorf("expected invalid-request error, got %v", err)
			}
		})
	}
}
