package formatter

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/shared"
	tu "github.com/desertthunder/moodmix/internal/testing"
)

func journalFixture() *models.AppState {
	mix := models.MoodEntry{
		ID:             "mix",
		Day:            models.WeeklyMixDay,
		Timestamp:      time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC),
		UserInput:      "Weekly Mix",
		EnhancedPrompt: "Genre: Fusion | Vibe: Journey",
		Duration:       90,
		Genre:          models.WeeklyMixGenre,
	}

	return &models.AppState{
		Entries: []models.MoodEntry{
			{
				ID:             "e1",
				Day:            1,
				Timestamp:      time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC),
				UserInput:      "rainy day",
				EnhancedPrompt: "Genre: Lo-Fi | Instruments: Piano | Vibe: Calm",
				Duration:       30,
				Genre:          "Genre: Lo-Fi ",
			},
			{
				ID:             "e2",
				Day:            2,
				Timestamp:      time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC),
				UserInput:      "sunshine",
				EnhancedPrompt: "Genre: Pop | Vibe: Bright",
				Duration:       30,
				Genre:          "Genre: Pop ",
			},
		},
		CurrentDay:  3,
		WeeklyMix:   &mix,
		CurrentView: models.LibraryView,
	}
}

func TestAudioDataURL(t *testing.T) {
	t.Run("Encode Then Decode Round Trips", func(t *testing.T) {
		audio := []byte{0xFF, 0xFB, 0x90, 0x00, 0x01, 0x02}

		dataURL := EncodeAudioDataURL(audio)
		if !strings.HasPrefix(dataURL, "data:audio/mpeg;base64,") {
			t.Errorf("unexpected data URL prefix: %s", dataURL)
		}

		decoded, err := DecodeAudioDataURL(dataURL)
		if err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if string(decoded) != string(audio) {
			t.Error("audio bytes did not round trip")
		}
	})

	t.Run("Encode Empty Bytes", func(t *testing.T) {
		if got := EncodeAudioDataURL(nil); got != "" {
			t.Errorf("expected empty data URL, got %q", got)
		}
	})

	t.Run("Decode Empty URL", func(t *testing.T) {
		if _, err := DecodeAudioDataURL(""); !errors.Is(err, shared.ErrNoAudio) {
			t.Errorf("expected ErrNoAudio, got %v", err)
		}
	})

	t.Run("Decode Non-Data URL", func(t *testing.T) {
		if _, err := DecodeAudioDataURL("https://example.com/clip.mp3"); err == nil {
			t.Error("expected error for remote reference")
		}
	})

	t.Run("Decode Corrupt Payload", func(t *testing.T) {
		if _, err := DecodeAudioDataURL("data:audio/mpeg;base64,!!!"); err == nil {
			t.Error("expected error for invalid base64")
		}
	})
}

func TestExporters(t *testing.T) {
	state := journalFixture()

	t.Run("ExportToCSV", func(t *testing.T) {
		var buf bytes.Buffer
		if err := ExportToCSV(&buf, state.Entries); err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Day,Type,Title,Genre,Duration,Created") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "rainy day") {
			t.Errorf("CSV missing entry title, got: %s", output)
		}
		if !strings.Contains(output, "0:30") {
			t.Errorf("CSV missing formatted duration, got: %s", output)
		}
	})

	t.Run("ExportToCSV write failure", func(t *testing.T) {
		if err := ExportToCSV(&tu.FWriter{}, state.Entries); err == nil {
			t.Error("expected error for failing writer")
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		var buf bytes.Buffer
		if err := ExportToMarkdown(&buf, state); err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# Mood Journal") {
			t.Errorf("markdown missing title, got: %s", output)
		}
		if !strings.Contains(output, "## Weekly Mix") {
			t.Errorf("markdown missing weekly mix section, got: %s", output)
		}
		if !strings.Contains(output, "1:30") {
			t.Errorf("markdown missing mix duration, got: %s", output)
		}
		if !strings.Contains(output, "sunshine") {
			t.Errorf("markdown missing entry, got: %s", output)
		}
	})

	t.Run("ExportToMarkdown mid-stream failure", func(t *testing.T) {
		w := tu.NewLimitedWriter(2, 0, io.Discard)
		err := ExportToMarkdown(&w, state)
		if err == nil {
			t.Fatal("expected error once the write limit is hit")
		}
		if !strings.Contains(err.Error(), "daily clips header") {
			t.Errorf("expected failure on the daily clips section, got %v", err)
		}
	})

	t.Run("WriteExport", func(t *testing.T) {
		tmpDir := t.TempDir()

		t.Run("csv", func(t *testing.T) {
			path := filepath.Join(tmpDir, "out.csv")
			result, err := WriteExport(state, "csv", path)
			if err != nil {
				t.Fatalf("WriteExport failed: %v", err)
			}
			if result.File != path {
				t.Errorf("expected path %s, got %s", path, result.File)
			}
			if _, err := os.Stat(path); err != nil {
				t.Errorf("export file should exist: %v", err)
			}
		})

		t.Run("markdown", func(t *testing.T) {
			path := filepath.Join(tmpDir, "out.md")
			if _, err := WriteExport(state, "md", path); err != nil {
				t.Fatalf("WriteExport failed: %v", err)
			}
		})

		t.Run("unknown format", func(t *testing.T) {
			if _, err := WriteExport(state, "xml", ""); err == nil {
				t.Error("expected error for unknown format")
			}
		})
	})
}
