package models

import (
	"testing"
	"time"
)

func TestMoodEntryValidate(t *testing.T) {
	valid := MoodEntry{
		ID:        "abc",
		Day:       1,
		Timestamp: time.Now(),
		Duration:  30,
	}

	t.Run("Valid Entry", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("Missing ID", func(t *testing.T) {
		e := valid
		e.ID = ""
		if err := e.Validate(); err == nil {
			t.Error("expected error for missing ID")
		}
	})

	t.Run("Day Out Of Range", func(t *testing.T) {
		for _, day := range []int{0, -1, 9} {
			e := valid
			e.Day = day
			if err := e.Validate(); err == nil {
				t.Errorf("expected error for day %d", day)
			}
		}
	})

	t.Run("Weekly Mix Day Is Valid", func(t *testing.T) {
		e := valid
		e.Day = WeeklyMixDay
		if err := e.Validate(); err != nil {
			t.Errorf("day 8 should validate: %v", err)
		}
		if !e.IsWeeklyMix() {
			t.Error("day 8 entry should report as weekly mix")
		}
	})

	t.Run("Non-Positive Duration", func(t *testing.T) {
		e := valid
		e.Duration = 0
		if err := e.Validate(); err == nil {
			t.Error("expected error for zero duration")
		}
	})
}

func TestGenreFromPrompt(t *testing.T) {
	tc := []struct {
		name   string
		prompt string
		want   string
	}{
		{
			name:   "pipe delimited descriptor",
			prompt: "Genre: Lo-Fi | Instruments: Piano | Vibe: Calm",
			want:   "Genre: Lo-Fi ",
		},
		{
			name:   "no delimiter keeps whole prompt",
			prompt: "Genre: Ambient",
			want:   "Genre: Ambient",
		},
		{
			name:   "empty prompt falls back",
			prompt: "",
			want:   DefaultGenre,
		},
		{
			name:   "leading delimiter falls back",
			prompt: "| Instruments: Synth",
			want:   DefaultGenre,
		},
		{
			name:   "whitespace segment is kept",
			prompt: " | Instruments: Synth",
			want:   " ",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenreFromPrompt(tt.prompt); got != tt.want {
				t.Errorf("GenreFromPrompt(%q) = %q, want %q", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestAppState(t *testing.T) {
	t.Run("DefaultState", func(t *testing.T) {
		s := DefaultState()

		if len(s.Entries) != 0 {
			t.Errorf("expected no entries, got %d", len(s.Entries))
		}
		if s.CurrentDay != 1 {
			t.Errorf("expected current day 1, got %d", s.CurrentDay)
		}
		if s.WeeklyMix != nil {
			t.Error("expected nil weekly mix")
		}
		if s.CurrentView != HomeView {
			t.Errorf("expected home view, got %s", s.CurrentView)
		}
	})

	t.Run("Normalize Recomputes Cursor", func(t *testing.T) {
		s := &AppState{
			Entries:    []MoodEntry{{ID: "a", Day: 1, Duration: 30}, {ID: "b", Day: 2, Duration: 30}},
			CurrentDay: 99, // stored value is never trusted
		}
		s.Normalize()

		if s.CurrentDay != 3 {
			t.Errorf("expected current day 3, got %d", s.CurrentDay)
		}
	})

	t.Run("Normalize Resets Unknown View", func(t *testing.T) {
		s := &AppState{CurrentView: View("settings")}
		s.Normalize()

		if s.CurrentView != HomeView {
			t.Errorf("expected home view, got %s", s.CurrentView)
		}
		if s.Entries == nil {
			t.Error("expected entries slice to be initialized")
		}
	})
}

func TestPresetByID(t *testing.T) {
	preset, ok := PresetByID("chill")
	if !ok {
		t.Fatal("expected chill preset to exist")
	}
	if preset.Color != "#3B82F6" {
		t.Errorf("expected chill accent #3B82F6, got %s", preset.Color)
	}

	if _, ok := PresetByID("nonexistent"); ok {
		t.Error("expected lookup miss for unknown preset")
	}
}
