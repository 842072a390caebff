package player

import (
	"bytes"
	"errors"
	"testing"

	"github.com/desertthunder/moodmix/internal/formatter"
	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/shared"
)

func TestClipFromEntry(t *testing.T) {
	t.Run("decodes embedded audio", func(t *testing.T) {
		audio := []byte{0xFF, 0xFB, 0x90, 0x00}
		entry := models.MoodEntry{
			Day:       1,
			UserInput: "rainy day",
			AudioURL:  formatter.EncodeAudioDataURL(audio),
		}

		clip, err := ClipFromEntry(entry)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if clip.Title != "rainy day" {
			t.Errorf("expected entry mood as title, got %q", clip.Title)
		}
		if !bytes.Equal(clip.Data, audio) {
			t.Error("decoded bytes do not match the original audio")
		}
	})

	t.Run("entry without audio", func(t *testing.T) {
		_, err := ClipFromEntry(models.MoodEntry{Day: 3, UserInput: "quiet"})
		if !errors.Is(err, shared.ErrNoAudio) {
			t.Fatalf("expected ErrNoAudio, got %v", err)
		}
	})

	t.Run("malformed audio URL", func(t *testing.T) {
		_, err := ClipFromEntry(models.MoodEntry{Day: 1, AudioURL: "not-a-data-url"})
		if err == nil {
			t.Error("expected error for malformed data URL")
		}
	})
}
