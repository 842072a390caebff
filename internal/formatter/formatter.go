// package formatter converts journal data between presentation formats:
// base64 audio data URLs, CSV, and Markdown.
package formatter

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/shared"
)

const audioDataURLPrefix = "data:audio/mpeg;base64,"

// EncodeAudioDataURL wraps raw MP3 bytes in a self-contained data URL so an
// entry stays playable with no external object storage.
func EncodeAudioDataURL(audio []byte) string {
	if len(audio) == 0 {
		return ""
	}
	return audioDataURLPrefix + base64.StdEncoding.EncodeToString(audio)
}

// DecodeAudioDataURL recovers the raw audio bytes from a stored data URL.
func DecodeAudioDataURL(dataURL string) ([]byte, error) {
	if dataURL == "" {
		return nil, shared.ErrNoAudio
	}

	_, encoded, found := strings.Cut(dataURL, ";base64,")
	if !found {
		return nil, fmt.Errorf("%w: not a base64 data URL", shared.ErrInvalidInput)
	}

	audio, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio payload: %w", err)
	}
	if len(audio) == 0 {
		return nil, shared.ErrNoAudio
	}

	return audio, nil
}

// ExportToCSV streams journal entries to w as CSV with columns: Day, Type, Title, Genre, Duration, Created
func ExportToCSV(w io.Writer, entries []models.MoodEntry) error {
	writer := csv.NewWriter(w)

	headers := []string{"Day", "Type", "Title", "Genre", "Duration", "Created"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range entries {
		record := []string{
			strconv.Itoa(entry.Day),
			shared.EntryKind(entry.Day),
			entry.UserInput,
			entry.Genre,
			shared.FormatDuration(entry.Duration),
			entry.Timestamp.Format("2006-01-02 15:04"),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}

	return nil
}

// ExportToMarkdown streams a weekly Markdown summary of the journal to w.
func ExportToMarkdown(w io.Writer, state *models.AppState) error {
	if _, err := fmt.Fprintf(w, "# Mood Journal\n\n**Clips**: %d\n\n", len(state.Entries)); err != nil {
		return fmt.Errorf("failed to write journal header: %w", err)
	}

	if state.WeeklyMix != nil {
		if _, err := fmt.Fprintf(w, "## Weekly Mix\n\n%s [%s]\n\n", state.WeeklyMix.EnhancedPrompt, shared.FormatDuration(state.WeeklyMix.Duration)); err != nil {
			return fmt.Errorf("failed to write weekly mix section: %w", err)
		}
	}

	if _, err := fmt.Fprint(w, "## Daily Clips\n\n"); err != nil {
		return fmt.Errorf("failed to write daily clips header: %w", err)
	}
	for _, entry := range state.Entries {
		if _, err := fmt.Fprintf(w, "%d. **%s** - %s [%s]\n", entry.Day, entry.UserInput, entry.EnhancedPrompt, shared.FormatDuration(entry.Duration)); err != nil {
			return fmt.Errorf("failed to write entry line: %w", err)
		}
	}

	return nil
}

// ExportResult contains the path of the file created by WriteExport.
type ExportResult struct {
	File string
}

// WriteExport writes the journal to disk in the requested format ("csv" or
// "markdown"). Defaults to journal.{csv,md} when path is empty.
func WriteExport(state *models.AppState, format, path string) (*ExportResult, error) {
	var (
		buf bytes.Buffer
		err error
	)

	switch format {
	case "csv":
		if path == "" {
			path = "journal.csv"
		}
		err = ExportToCSV(&buf, state.Entries)
	case "markdown", "md":
		if path == "" {
			path = "journal.md"
		}
		err = ExportToMarkdown(&buf, state)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate export: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("failed to write export file: %w", err)
	}

	return &ExportResult{File: path}, nil
}
