package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/moodmix/internal/formatter"
	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/shared"
)

// ErrUnsupported is returned by Play when the build has no audio backend.
var ErrUnsupported = errors.New("audio playback is not supported in this build")

// Clip is a decoded mp3 ready for playback.
type Clip struct {
	Title string
	Data  []byte
}

// ClipFromEntry extracts the playable audio from a journal entry.
func ClipFromEntry(entry models.MoodEntry) (Clip, error) {
	if entry.AudioURL == "" {
		return Clip{}, fmt.Errorf("%w: %s", shared.ErrNoAudio, shared.EntryKind(entry.Day))
	}

	data, err := formatter.DecodeAudioDataURL(entry.AudioURL)
	if err != nil {
		return Clip{}, err
	}

	return Clip{Title: entry.UserInput, Data: data}, nil
}

// PlayClip plays a clip to completion, or until ctx is cancelled.
func PlayClip(ctx context.Context, clip Clip) error {
	p := New()
	defer p.Stop()

	done := make(chan struct{})
	if err := p.Play(clip, func() { close(done) }); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
