package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/shared"
)

var _ list.Item = entryItem{}

// entryItem wraps [models.MoodEntry] to implement [list.Item].
type entryItem struct {
	entry models.MoodEntry
}

func (i entryItem) FilterValue() string { return i.entry.UserInput }

func (i entryItem) Title() string {
	title := i.entry.UserInput
	if i.entry.IsWeeklyMix() {
		title = shared.EntryKind(i.entry.Day)
	}
	return title
}

func (i entryItem) Description() string {
	label := shared.EntryKind(i.entry.Day)
	if !i.entry.IsWeeklyMix() {
		label = fmt.Sprintf("Day %d", i.entry.Day)
	}
	desc := fmt.Sprintf("%s • %s", label, shared.FormatDuration(i.entry.Duration))
	if i.entry.Genre != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.entry.Genre)
	}
	return desc
}
