package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/shared"
	"github.com/desertthunder/moodmix/internal/tasks"
	"github.com/desertthunder/moodmix/internal/tracker"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
)

// Generate creates today's clip from a mood description.
func (r *Runner) Generate(ctx context.Context, cmd *cli.Command) error {
	mood := strings.TrimSpace(cmd.StringArg("mood"))
	presetID := cmd.String("preset")
	color := cmd.String("color")

	if presetID != "" {
		preset, ok := models.PresetByID(presetID)
		if !ok {
			return fmt.Errorf("%w: unknown mood preset '%s'", shared.ErrInvalidFlag, presetID)
		}
		if mood == "" {
			mood = preset.Label
		}
		if color == "" {
			color = preset.Color
		}
	}

	if mood == "" {
		return fmt.Errorf("%w: describe your mood or pick a --preset", shared.ErrMissingArgument)
	}

	engine, err := r.generationEngine()
	if err != nil {
		return err
	}
	if key := cmd.String("api-key"); key != "" {
		engine.SetAPIKey(key)
	}

	r.logger.Info("generating daily clip", "mood", mood)
	r.writePlain("Generating today's clip...\n\n")

	result, err := r.runEngine(func(progress chan tasks.ProgressUpdate) (*tasks.GenerationResult, error) {
		return engine.GenerateDaily(ctx, progress, mood, color)
	})
	if err != nil {
		return err
	}

	r.writePlainHeader("Daily Clip Ready")
	r.writePlain("Day: %d of %d\n", result.Entry.Day, models.DaysPerWeek)
	r.writePlain("Mood: %s\n", result.Entry.UserInput)
	r.writePlain("Genre: %s\n", result.Entry.Genre)
	r.writePlain("Length: %s\n", shared.FormatDuration(result.Entry.Duration))
	r.writePlain("Prompt: %s\n", result.Entry.EnhancedPrompt)
	r.writePlain("Took: %s\n", result.Elapsed.Round(time.Millisecond))

	repo, err := r.stateRepo()
	if err != nil {
		return err
	}
	state, err := repo.State()
	if err != nil {
		return err
	}

	if remaining := tracker.RemainingUntilMix(state.Entries); remaining == 0 {
		r.writePlainln("Week complete! Run 'moodmix mix' to fuse your weekly mix.")
	} else {
		r.writePlainln("%d more %s until your weekly mix.", remaining, pluralDays(remaining))
	}

	// Landing in the library after a commit mirrors the TUI flow
	if err := repo.SetView(models.LibraryView); err != nil {
		r.logger.Warn("failed to persist view", "error", err)
	}

	return nil
}

// Mix fuses all seven daily prompts into the weekly mix.
func (r *Runner) Mix(ctx context.Context, cmd *cli.Command) error {
	engine, err := r.generationEngine()
	if err != nil {
		return err
	}
	if key := cmd.String("api-key"); key != "" {
		engine.SetAPIKey(key)
	}

	r.logger.Info("generating weekly mix")
	r.writePlain("Fusing your week into one mix...\n\n")

	result, err := r.runEngine(func(progress chan tasks.ProgressUpdate) (*tasks.GenerationResult, error) {
		return engine.GenerateWeeklyMix(ctx, progress)
	})
	if err != nil {
		return err
	}

	r.writePlainHeader("Weekly Mix Ready")
	r.writePlain("Genre: %s\n", result.Entry.Genre)
	r.writePlain("Length: %s\n", shared.FormatDuration(result.Entry.Duration))
	r.writePlain("Prompt: %s\n", result.Entry.EnhancedPrompt)
	r.writePlain("Took: %s\n", result.Elapsed.Round(time.Millisecond))
	r.writePlainln("Play it with 'moodmix play mix'.")

	return nil
}

// Prompt prints the enhanced prompt behind a day's clip.
func (r *Runner) Prompt(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.stateRepo()
	if err != nil {
		return err
	}
	state, err := repo.State()
	if err != nil {
		return err
	}

	entry, err := resolveEntry(state, cmd.StringArg("day"))
	if err != nil {
		return err
	}

	if cmd.Bool("copy") {
		if err := clipboard.WriteAll(entry.EnhancedPrompt); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		r.writePlain("✓ Prompt copied to clipboard\n")
	}

	r.writePlain("%s\n", entry.EnhancedPrompt)
	return nil
}

// runEngine drives a generation run while printing progress updates.
func (r *Runner) runEngine(run func(chan tasks.ProgressUpdate) (*tasks.GenerationResult, error)) (*tasks.GenerationResult, error) {
	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case tasks.Enhancing:
				r.writePlain("✨ %s\n", update.Message)
			case tasks.Synthesizing:
				r.writePlain("🎵 %s\n", update.Message)
			case tasks.Encoding:
				r.writePlain("💾 %s\n", update.Message)
			case tasks.Committed:
				r.writePlain("✓ %s\n\n", update.Message)
			}
		}
	}()

	result, err := run(progressCh)
	close(progressCh)
	return result, err
}

// resolveEntry maps a "day" argument (1-7, 8, or "mix") to a stored entry.
func resolveEntry(state *models.AppState, arg string) (models.MoodEntry, error) {
	arg = strings.TrimSpace(strings.ToLower(arg))
	if arg == "" {
		return models.MoodEntry{}, fmt.Errorf("%w: pass a day number (1-7) or 'mix'", shared.ErrMissingArgument)
	}

	if arg == "mix" || arg == strconv.Itoa(models.WeeklyMixDay) {
		if state.WeeklyMix == nil {
			return models.MoodEntry{}, fmt.Errorf("%w: no weekly mix yet", shared.ErrEntryNotFound)
		}
		return *state.WeeklyMix, nil
	}

	day, err := strconv.Atoi(arg)
	if err != nil || day < 1 || day > models.DaysPerWeek {
		return models.MoodEntry{}, fmt.Errorf("%w: '%s' is not a day number (1-7) or 'mix'", shared.ErrInvalidArgument, arg)
	}

	entry, found := lo.Find(state.Entries, func(e models.MoodEntry) bool {
		return e.Day == day
	})
	if !found {
		return models.MoodEntry{}, fmt.Errorf("%w: day %d has no entry yet", shared.ErrEntryNotFound, day)
	}
	return entry, nil
}

func pluralDays(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
