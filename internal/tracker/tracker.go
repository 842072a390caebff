// package tracker derives week progression state from the journal entries.
//
// Everything here is a pure function over []models.MoodEntry. The tracker
// never mutates state; the repositories layer owns persistence.
package tracker

import (
	"github.com/desertthunder/moodmix/internal/models"
	"github.com/samber/lo"
)

// SlotStatus describes a day slot in the weekly progression.
type SlotStatus int

const (
	Locked SlotStatus = iota
	Current
	Completed
)

func (s SlotStatus) String() string {
	switch s {
	case Completed:
		return "completed"
	case Current:
		return "current"
	default:
		return "locked"
	}
}

// DayNumber returns the day slot the next daily entry would occupy.
//
// The value is not capped: callers that must stay within the 7-day cycle
// check [WeekComplete] first.
func DayNumber(entries []models.MoodEntry) int {
	return len(entries) + 1
}

// WeekComplete reports whether all seven daily slots are filled.
func WeekComplete(entries []models.MoodEntry) bool {
	return len(entries) >= models.DaysPerWeek
}

// WeeklyMixEligible reports whether enough daily entries exist to fuse a
// weekly mix. True iff seven or more entries have been recorded.
func WeeklyMixEligible(entries []models.MoodEntry) bool {
	return len(entries) >= models.DaysPerWeek
}

// RemainingUntilMix returns how many daily entries are still needed before
// the weekly mix unlocks. Never negative.
func RemainingUntilMix(entries []models.MoodEntry) int {
	remaining := models.DaysPerWeek - len(entries)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ForDay returns the status of the given day slot.
func ForDay(day int, entries []models.MoodEntry) SlotStatus {
	completed := lo.SomeBy(entries, func(e models.MoodEntry) bool {
		return e.Day == day
	})

	switch {
	case completed:
		return Completed
	case day == DayNumber(entries):
		return Current
	default:
		return Locked
	}
}

// Week returns the status of all seven day slots in order.
func Week(entries []models.MoodEntry) []SlotStatus {
	return lo.Map(lo.Range(models.DaysPerWeek), func(i int, _ int) SlotStatus {
		return ForDay(i+1, entries)
	})
}

// Prompts collects the enhanced prompts of all daily entries in creation
// order, the input for weekly mix fusion.
func Prompts(entries []models.MoodEntry) []string {
	return lo.Map(entries, func(e models.MoodEntry, _ int) string {
		return e.EnhancedPrompt
	})
}
