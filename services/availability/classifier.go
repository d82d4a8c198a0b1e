package availability

import (
	"teampulse/models"
)

// imminentStartWindowMin is the look-ahead: a block starting within this
// many minutes already flips the status to yellow.
const imminentStartWindowMin = 30

// DefaultWorkdayEndMin is the end-of-workday boundary (18:00) used when the
// caller supplies no config.
const DefaultWorkdayEndMin = 18 * 60

// Result is a classified availability status for one user.
type Result struct {
	Color   string `json:"color"`
	Message string `json:"message"`
}

// ClassifierConfig carries the tunables of the status rules.
type ClassifierConfig struct {
	// WorkdayEndMin is minutes from midnight; a user busy right now whose
	// last block ends before this boundary still counts as free later.
	WorkdayEndMin int
}

// DefaultClassifierConfig returns the stock 18:00-workday configuration.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{WorkdayEndMin: DefaultWorkdayEndMin}
}

// Classify derives a traffic-light status from a user's busy blocks and
// blockers. The current time is injected by the caller; the engine never
// reads the clock. Blocks may be unsorted and overlapping. freeAfter is the
// user's declared next guaranteed-free moment ("" when not set).
//
// Priority order, first match wins:
//  1. any blocker              -> red "Blocked"
//  2. no busy blocks           -> green "Available now"
//  3. currently inside a block -> yellow "Busy now" when freeAfter is set or
//     the last block ends before the workday boundary, else red "Busy all day"
//  4. all blocks in the past   -> green "Available now"
//  5. next block starts within 30 minutes -> yellow "Busy now"
//  6. otherwise                -> green "Available now"
func Classify(blocks []models.BusyBlock, blockers []string, freeAfter, now string, cfg ClassifierConfig) (Result, error) {
	if len(blockers) > 0 {
		return Result{Color: models.StatusRed, Message: "Blocked"}, nil
	}
	if len(blocks) == 0 {
		return Result{Color: models.StatusGreen, Message: "Available now"}, nil
	}

	nowMin, err := ParseMinutes(now)
	if err != nil {
		return Result{}, err
	}
	if freeAfter != "" {
		if _, err := ParseMinutes(freeAfter); err != nil {
			return Result{}, err
		}
	}
	intervals, err := parseBlocks(blocks)
	if err != nil {
		return Result{}, err
	}

	workdayEnd := cfg.WorkdayEndMin
	if workdayEnd == 0 {
		workdayEnd = DefaultWorkdayEndMin
	}

	// Blocks are half-open [start, end): one ending exactly now is over.
	currentlyBusy := false
	lastBlockEnd := 0
	for _, iv := range intervals {
		if iv.Start <= nowMin && nowMin < iv.End {
			currentlyBusy = true
		}
		if iv.End > lastBlockEnd {
			lastBlockEnd = iv.End
		}
	}

	if currentlyBusy {
		if freeAfter != "" || lastBlockEnd < workdayEnd {
			return Result{Color: models.StatusYellow, Message: "Busy now"}, nil
		}
		return Result{Color: models.StatusRed, Message: "Busy all day"}, nil
	}

	if lastBlockEnd <= nowMin {
		return Result{Color: models.StatusGreen, Message: "Available now"}, nil
	}

	// Not busy, but warn about an imminent meeting.
	nextStart := -1
	for _, iv := range intervals {
		if iv.Start > nowMin && (nextStart == -1 || iv.Start < nextStart) {
			nextStart = iv.Start
		}
	}
	if nextStart != -1 && nextStart-nowMin <= imminentStartWindowMin {
		return Result{Color: models.StatusYellow, Message: "Busy now"}, nil
	}

	return Result{Color: models.StatusGreen, Message: "Available now"}, nil
}
