package tasks

import (
	"fmt"

	"github.com/desertthunder/moodmix/internal/models"
)

// ProgressUpdate represents a progress event during a generation request.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Request phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Request phase enumeration
type Phase int

const (
	Validating Phase = iota
	Enhancing
	Synthesizing
	Encoding
	Committed
	Failed
)

func (p Phase) String() string {
	switch p {
	case Validating:
		return "validating"
	case Enhancing:
		return "enhancing"
	case Synthesizing:
		return "synthesizing"
	case Encoding:
		return "encoding"
	case Committed:
		return "committed"
	case Failed:
		return "failed"
	default:
		return ""
	}
}

func validatingUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   Validating,
		Step:    1,
		Total:   1,
		Message: "Checking synthesis credential...",
	}
}

func enhancingUpdate(input string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Enhancing,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Enhancing mood prompt (%s)...", input),
	}
}

func fusingUpdate(count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Enhancing,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Fusing %d daily prompts into a mix descriptor...", count),
	}
}

func synthesizingUpdate(seconds int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Synthesizing,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Synthesizing %d seconds of audio...", seconds),
	}
}

func encodingUpdate(byteCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Encoding,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Encoding %d audio bytes...", byteCount),
	}
}

func committedUpdate(entry *models.MoodEntry) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Committed,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Committed day %d: %s", entry.Day, entry.UserInput),
		Data:    entry,
	}
}

func failedUpdate(err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Failed,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("✗ %v", err),
	}
}
