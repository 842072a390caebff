// package models defines the data model for the mood journal
package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DaysPerWeek is the number of daily entries that complete a cycle.
	DaysPerWeek = 7

	// WeeklyMixDay is the reserved day slot for the weekly mix entry.
	WeeklyMixDay = 8

	// DefaultDailySeconds is the intended daily clip length.
	DefaultDailySeconds = 30

	// DefaultWeeklySeconds is the intended weekly mix length.
	DefaultWeeklySeconds = 90

	// WeeklyMixColor is the fixed accent for the weekly mix entry.
	WeeklyMixColor = "#8b5cf6"

	// WeeklyMixGenre is the display genre for the weekly mix entry.
	WeeklyMixGenre = "Weekly Fusion"

	// DefaultGenre is used when an enhanced prompt carries no genre segment.
	DefaultGenre = "Ambient"
)

// View selects which screen is active.
type View string

const (
	HomeView    View = "home"
	LibraryView View = "library"
	ProfileView View = "profile"
)

// Valid reports whether v is one of the three known views.
func (v View) Valid() bool {
	switch v {
	case HomeView, LibraryView, ProfileView:
		return true
	}
	return false
}

// MoodEntry is one generated clip.
//
// AudioURL holds a self-contained base64 data URL, not a remote reference,
// so an entry is playable with no network access.
type MoodEntry struct {
	ID             string    `json:"id"`
	Day            int       `json:"day"` // 1..7 daily, 8 for the weekly mix
	Timestamp      time.Time `json:"timestamp"`
	UserInput      string    `json:"userInput"`
	EnhancedPrompt string    `json:"enhancedPrompt"`
	AudioURL       string    `json:"audioUrl"` // empty while pending
	Duration       int       `json:"duration"` // seconds
	Color          string    `json:"color,omitempty"`
	Genre          string    `json:"genre,omitempty"`
}

// Validate checks if the entry's data is valid and returns an error if not.
func (e *MoodEntry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry ID is required")
	}
	if e.Day < 1 || e.Day > WeeklyMixDay {
		return fmt.Errorf("entry day must be 1..%d, got %d", WeeklyMixDay, e.Day)
	}
	if e.Duration <= 0 {
		return fmt.Errorf("entry duration must be positive, got %d", e.Duration)
	}
	return nil
}

// IsWeeklyMix reports whether the entry occupies the reserved mix slot.
func (e *MoodEntry) IsWeeklyMix() bool {
	return e.Day == WeeklyMixDay
}

// GenreFromPrompt derives the display genre from an enhanced prompt by
// taking the segment before the first pipe delimiter.
func GenreFromPrompt(prompt string) string {
	segment, _, _ := strings.Cut(prompt, "|")
	if segment == "" {
		return DefaultGenre
	}
	return segment
}

// AppState is the full journal state, persisted as a single record.
//
// CurrentDay is kept for persistence-format compatibility with the original
// record shape. It is derived from Entries and recomputed on every load, so
// a stored value is never trusted.
type AppState struct {
	Entries     []MoodEntry `json:"entries"`
	CurrentDay  int         `json:"currentDay"`
	WeeklyMix   *MoodEntry  `json:"weeklyMix"`
	CurrentView View        `json:"currentView"`
}

// DefaultState returns the empty journal a fresh (or unreadable) store
// falls back to.
func DefaultState() *AppState {
	return &AppState{
		Entries:     []MoodEntry{},
		CurrentDay:  1,
		WeeklyMix:   nil,
		CurrentView: HomeView,
	}
}

// Normalize recomputes derived fields after a load: CurrentDay from the
// entry count, and CurrentView to home when the stored value is unknown.
func (s *AppState) Normalize() {
	if s.Entries == nil {
		s.Entries = []MoodEntry{}
	}
	s.CurrentDay = len(s.Entries) + 1
	if !s.CurrentView.Valid() {
		s.CurrentView = HomeView
	}
}

// MoodPreset is a quick-pick mood with an accent color.
type MoodPreset struct {
	ID    string
	Label string
	Icon  string
	Color string
}

// MoodColor is a named accent in the mood palette.
type MoodColor struct {
	Name  string
	Value string
	Label string
}

// MoodPresets mirrors the fixed preset table from the product design.
var MoodPresets = []MoodPreset{
	{ID: "chill", Label: "Chill", Icon: "☕", Color: "#3B82F6"},
	{ID: "energetic", Label: "Energetic", Icon: "⚡", Color: "#F59E0B"},
	{ID: "melancholic", Label: "Melancholic", Icon: "🌧️", Color: "#64748B"},
	{ID: "focus", Label: "Focus", Icon: "🎯", Color: "#14B8A6"},
	{ID: "party", Label: "Party", Icon: "🎉", Color: "#EF4444"},
	{ID: "dreamy", Label: "Dreamy", Icon: "🌙", Color: "#8B5CF6"},
}

// MoodColors is the full accent palette.
var MoodColors = []MoodColor{
	{Name: "Energetic", Value: "#F59E0B", Label: "Energetic"},
	{Name: "Calm", Value: "#3B82F6", Label: "Chill"},
	{Name: "Dark", Value: "#1E293B", Label: "Dark"},
	{Name: "Passionate", Value: "#EF4444", Label: "Party"},
	{Name: "Happy", Value: "#10B981", Label: "Happy"},
	{Name: "Dreamy", Value: "#8B5CF6", Label: "Dreamy"},
	{Name: "Melancholic", Value: "#64748B", Label: "Melancholic"},
	{Name: "Focused", Value: "#14B8A6", Label: "Focus"},
}

// PresetByID looks up a mood preset by its identifier.
func PresetByID(id string) (MoodPreset, bool) {
	for _, p := range MoodPresets {
		if p.ID == id {
			return p, true
		}
	}
	return MoodPreset{}, false
}
