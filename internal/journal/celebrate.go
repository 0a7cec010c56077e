package journal

import "github.com/rakesh-arrepu/HHH-sub000/internal/constants"

// CompletionDetector fires the "all sections complete" celebration
// exactly once per false→true transition. Re-rendering an already
// complete day, or moving between two complete days, never re-fires.
type CompletionDetector struct {
	previousComplete bool
}

// Observe records the latest completed-section count for the active
// cursor and reports whether the celebration should fire.
func (d *CompletionDetector) Observe(completedCount int) bool {
	complete := completedCount == constants.SectionCount
	fire := complete && !d.previousComplete
	d.previousComplete = complete
	return fire
}

// MilestoneDetector fires when a freshly loaded streak is a positive
// multiple of seven. It is keyed on the streak value itself rather than a
// transition flag: the server computes streaks, so the value can jump by
// more than one between loads.
type MilestoneDetector struct {
	lastCelebrated int
}

// Observe records the latest streak value and reports whether the
// milestone celebration should fire.
func (d *MilestoneDetector) Observe(streak int) bool {
	if streak <= 0 || streak%constants.StreakMilestoneInterval != 0 {
		return false
	}
	if streak == d.lastCelebrated {
		return false
	}
	d.lastCelebrated = streak
	return true
}
