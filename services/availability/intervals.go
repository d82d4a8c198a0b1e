package availability

import (
	"fmt"
	"sort"

	"teampulse/models"
)

// interval is a half-open [Start, End) range in minutes from midnight.
type interval struct {
	Start int
	End   int
}

// ParseMinutes converts a zero-padded "HH:MM" wall-clock string to minutes
// from midnight. All engine comparisons run on these integers rather than
// on the strings themselves.
func ParseMinutes(value string) (int, error) {
	var h, m int
	if len(value) != 5 || value[2] != ':' {
		return 0, NewInvalidTimeFormatError(value)
	}
	if _, err := fmt.Sscanf(value, "%02d:%02d", &h, &m); err != nil {
		return 0, NewInvalidTimeFormatError(value)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, NewInvalidTimeFormatError(value)
	}
	return h*60 + m, nil
}

// FormatMinutes renders minutes from midnight back to "HH:MM".
func FormatMinutes(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// parseBlocks converts busy blocks to intervals, rejecting malformed times
// and inverted ranges.
func parseBlocks(blocks []models.BusyBlock) ([]interval, error) {
	intervals := make([]interval, 0, len(blocks))
	for _, b := range blocks {
		start, err := ParseMinutes(b.Start)
		if err != nil {
			return nil, err
		}
		end, err := ParseMinutes(b.End)
		if err != nil {
			return nil, err
		}
		if start >= end {
			return nil, NewInvalidRequestError(fmt.Sprintf("busy block %s-%s has start >= end", b.Start, b.End))
		}
		intervals = append(intervals, interval{Start: start, End: end})
	}
	return intervals, nil
}

// mergeIntervals sorts the input and merges overlapping or adjacent
// intervals into a minimal non-overlapping set.
func mergeIntervals(intervals []interval) []interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start == sorted[j].Start {
			return sorted[i].End < sorted[j].End
		}
		return sorted[i].Start < sorted[j].Start
	})

	merged := []interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// subtractIntervals removes busy intervals from a working window, returning
// the remaining free gaps in chronological order. Busy input must already be
// merged and sorted.
func subtractIntervals(window interval, busy []interval) []interval {
	free := []interval{window}
	for _, block := range busy {
		var updated []interval
		for _, iv := range free {
			if block.End <= iv.Start || block.Start >= iv.End {
				updated = append(updated, iv)
				continue
			}
			if block.Start > iv.Start {
				updated = append(updated, interval{Start: iv.Start, End: block.Start})
			}
			if block.End < iv.End {
				updated = append(updated, interval{Start: block.End, End: iv.End})
			}
		}
		free = updated
	}
	return free
}
