// package tasks implements clip generation orchestration for the journal.
//
// The core abstraction is Engine, which coordinates the two external AI
// calls and commits the result to the journal. Operations emit progress
// updates via channels for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/desertthunder/moodmix/internal/formatter"
	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/services"
	"github.com/desertthunder/moodmix/internal/shared"
	"github.com/desertthunder/moodmix/internal/tracker"
)

// GenerationResult contains all data from a completed generation request.
type GenerationResult struct {
	Entry      models.MoodEntry // The committed entry
	Prompt     string           // Enhanced descriptor used for synthesis
	AudioBytes int              // Size of the raw synthesized audio
	Elapsed    time.Duration    // Wall time for the whole request
}

// StateStore defines the journal persistence operations the engine needs.
// This abstraction allows for easier testing and decoupling from the
// concrete repository.
type StateStore interface {
	State() (*models.AppState, error)
	Append(entry models.MoodEntry) error
	SetWeeklyMix(entry models.MoodEntry) error
}

// Engine defines clip generation operations.
type Engine interface {
	// GenerateDaily runs the full enhancement → synthesis → commit flow for
	// one daily mood entry.
	GenerateDaily(ctx context.Context, progress chan<- ProgressUpdate, input, color string) (*GenerationResult, error)

	// GenerateWeeklyMix fuses all prior daily prompts into a 90-second mix
	// and overwrites the stored weekly mix entry.
	GenerateWeeklyMix(ctx context.Context, progress chan<- ProgressUpdate) (*GenerationResult, error)

	// Busy reports whether a generation request is currently in flight.
	Busy() bool
}

// GenerationEngine implements Engine.
// Contains dependencies on the AI service clients and the journal store.
type GenerationEngine struct {
	enhancer services.Enhancer
	synth    services.Synthesizer
	store    StateStore

	dailySeconds  int
	weeklySeconds int

	// Single in-flight slot. Concurrent requests are rejected, not queued.
	inFlight atomic.Bool

	mu     sync.RWMutex
	apiKey string
}

// NewGenerationEngine creates a new GenerationEngine with the provided
// dependencies. Non-positive durations fall back to the 30/90 defaults.
func NewGenerationEngine(enhancer services.Enhancer, synth services.Synthesizer, store StateStore, dailySeconds, weeklySeconds int) *GenerationEngine {
	if dailySeconds <= 0 {
		dailySeconds = models.DefaultDailySeconds
	}
	if weeklySeconds <= 0 {
		weeklySeconds = models.DefaultWeeklySeconds
	}

	return &GenerationEngine{
		enhancer:      enhancer,
		synth:         synth,
		store:         store,
		dailySeconds:  dailySeconds,
		weeklySeconds: weeklySeconds,
	}
}

// SetAPIKey stores the synthesis credential for subsequent requests.
//
// The key lives in process memory only; it is never persisted into the
// journal state.
func (e *GenerationEngine) SetAPIKey(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.apiKey = key
}

func (e *GenerationEngine) credential() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.apiKey
}

// Busy reports whether a generation request is currently in flight.
func (e *GenerationEngine) Busy() bool {
	return e.inFlight.Load()
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *GenerationEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// fail emits the Failed phase and returns the error unchanged. Committed
// entries are never rolled back here; a failure is local to this request.
func (e *GenerationEngine) fail(progress chan<- ProgressUpdate, err error) error {
	e.sendProgress(progress, failedUpdate(err))
	return err
}

// GenerateDaily runs the full generation flow for one daily mood entry.
func (e *GenerationEngine) GenerateDaily(ctx context.Context, progress chan<- ProgressUpdate, input, color string) (*GenerationResult, error) {
	if e.enhancer == nil || e.synth == nil {
		return nil, fmt.Errorf("%w: generation services not initialized", shared.ErrServiceUnavailable)
	}

	if !e.inFlight.CompareAndSwap(false, true) {
		return nil, shared.ErrGenerationBusy
	}
	defer e.inFlight.Store(false)

	started := time.Now()

	e.sendProgress(progress, validatingUpdate())
	apiKey := e.credential()
	if apiKey == "" {
		return nil, e.fail(progress, shared.ErrMissingCredential)
	}
	if input == "" {
		return nil, e.fail(progress, fmt.Errorf("%w: mood text is required", shared.ErrInvalidInput))
	}

	state, err := e.store.State()
	if err != nil {
		return nil, e.fail(progress, err)
	}
	if tracker.WeekComplete(state.Entries) {
		return nil, e.fail(progress, shared.ErrWeekComplete)
	}

	e.sendProgress(progress, enhancingUpdate(input))
	prompt, err := e.enhancer.EnhancePrompt(ctx, input, color)
	if err != nil {
		return nil, e.fail(progress, e.enhancementError(err))
	}

	e.sendProgress(progress, synthesizingUpdate(e.dailySeconds))
	audio, err := e.synth.GenerateAudio(ctx, prompt, e.dailySeconds, apiKey)
	if err != nil {
		return nil, e.fail(progress, err)
	}

	e.sendProgress(progress, encodingUpdate(len(audio)))
	entry := models.MoodEntry{
		ID:             shared.GenerateID(),
		Day:            tracker.DayNumber(state.Entries),
		Timestamp:      time.Now(),
		UserInput:      input,
		EnhancedPrompt: prompt,
		AudioURL:       formatter.EncodeAudioDataURL(audio),
		Duration:       e.dailySeconds,
		Color:          color,
		Genre:          models.GenreFromPrompt(prompt),
	}

	if err := e.store.Append(entry); err != nil {
		return nil, e.fail(progress, err)
	}

	e.sendProgress(progress, committedUpdate(&entry))

	return &GenerationResult{
		Entry:      entry,
		Prompt:     prompt,
		AudioBytes: len(audio),
		Elapsed:    time.Since(started),
	}, nil
}

// GenerateWeeklyMix fuses all prior daily prompts into the weekly mix.
//
// The seven-entry eligibility gate is enforced here, not only in the UI:
// below the threshold the request fails with [shared.ErrMixNotEligible]
// before any external call is made.
func (e *GenerationEngine) GenerateWeeklyMix(ctx context.Context, progress chan<- ProgressUpdate) (*GenerationResult, error) {
	if e.enhancer == nil || e.synth == nil {
		return nil, fmt.Errorf("%w: generation services not initialized", shared.ErrServiceUnavailable)
	}

	if !e.inFlight.CompareAndSwap(false, true) {
		return nil, shared.ErrGenerationBusy
	}
	defer e.inFlight.Store(false)

	started := time.Now()

	e.sendProgress(progress, validatingUpdate())
	apiKey := e.credential()
	if apiKey == "" {
		return nil, e.fail(progress, shared.ErrMissingCredential)
	}

	state, err := e.store.State()
	if err != nil {
		return nil, e.fail(progress, err)
	}
	if !tracker.WeeklyMixEligible(state.Entries) {
		return nil, e.fail(progress, fmt.Errorf("%w: %d more needed", shared.ErrMixNotEligible, tracker.RemainingUntilMix(state.Entries)))
	}

	prompts := tracker.Prompts(state.Entries)
	e.sendProgress(progress, fusingUpdate(len(prompts)))
	prompt, err := e.enhancer.WeeklyMixPrompt(ctx, prompts)
	if err != nil {
		return nil, e.fail(progress, e.enhancementError(err))
	}

	e.sendProgress(progress, synthesizingUpdate(e.weeklySeconds))
	audio, err := e.synth.GenerateAudio(ctx, prompt, e.weeklySeconds, apiKey)
	if err != nil {
		return nil, e.fail(progress, err)
	}

	e.sendProgress(progress, encodingUpdate(len(audio)))
	entry := models.MoodEntry{
		ID:             "weekly-mix-" + shared.GenerateID(),
		Day:            models.WeeklyMixDay,
		Timestamp:      time.Now(),
		UserInput:      "Weekly Mix",
		EnhancedPrompt: prompt,
		AudioURL:       formatter.EncodeAudioDataURL(audio),
		Duration:       e.weeklySeconds,
		Color:          models.WeeklyMixColor,
		Genre:          models.WeeklyMixGenre,
	}

	if err := e.store.SetWeeklyMix(entry); err != nil {
		return nil, e.fail(progress, err)
	}

	e.sendProgress(progress, committedUpdate(&entry))

	return &GenerationResult{
		Entry:      entry,
		Prompt:     prompt,
		AudioBytes: len(audio),
		Elapsed:    time.Since(started),
	}, nil
}

// enhancementError wraps an enhancer failure, substituting the generic
// message when the underlying error carries none.
func (e *GenerationEngine) enhancementError(err error) error {
	if err.Error() == "" {
		return fmt.Errorf("%w: generation failed", shared.ErrEnhancementFailed)
	}
	return fmt.Errorf("%w: %v", shared.ErrEnhancementFailed, err)
}
