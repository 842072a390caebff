// package services defines interfaces for the external AI HTTP collaborators
//
// Gemini (prompt enhancement), Stability AI (audio synthesis)
package services

import (
	"context"
	"fmt"
)

// Enhancer turns user mood text into a structured audio-generation descriptor.
type Enhancer interface {
	// EnhancePrompt converts a mood description (and optional accent color
	// hint) into a pipe-delimited descriptor for the synthesizer.
	// Implementations fall back to a deterministic descriptor when the
	// remote call is unavailable.
	EnhancePrompt(ctx context.Context, input, color string) (string, error)

	// WeeklyMixPrompt fuses prior daily descriptors into a single prompt
	// for the 90-second weekly mix.
	WeeklyMixPrompt(ctx context.Context, dailyPrompts []string) (string, error)

	// Name returns the name of the enhancement provider (e.g., "Gemini")
	Name() string
}

// Synthesizer turns a descriptor into raw audio bytes.
type Synthesizer interface {
	// GenerateAudio synthesizes a clip of the given length in seconds.
	// A non-success response must surface as an error carrying the HTTP
	// status code and response body text.
	GenerateAudio(ctx context.Context, prompt string, durationSeconds int, apiKey string) ([]byte, error)

	// Name returns the name of the synthesis provider (e.g., "Stability AI")
	Name() string
}

// FallbackPrompt is the deterministic descriptor used when enhancement is
// unavailable for a daily entry.
func FallbackPrompt(input string) string {
	return fmt.Sprintf("Genre: Ambient | Mood: %s", input)
}

// FallbackWeeklyPrompt is the deterministic descriptor used when
// enhancement is unavailable for the weekly mix.
const FallbackWeeklyPrompt = "Genre: Electronic Fusion | Vibe: Eclectic, Journey"
