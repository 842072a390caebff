package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/moodmix/internal/formatter"
	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/player"
	"github.com/desertthunder/moodmix/internal/shared"
	"github.com/desertthunder/moodmix/internal/tracker"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

// Library lists the week's entries as a table, or raw JSON with --json.
func (r *Runner) Library(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.stateRepo()
	if err != nil {
		return err
	}
	state, err := repo.State()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(state, cmd.Bool("pretty"))
	}

	if len(state.Entries) == 0 && state.WeeklyMix == nil {
		r.writePlain("No entries yet. Run 'moodmix generate \"your mood\"' to start your week.\n")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.output)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Day", "Type", "Mood", "Genre", "Length", "Created"})

	for _, entry := range state.Entries {
		t.AppendRow(entryRow(entry))
	}
	if state.WeeklyMix != nil {
		t.AppendSeparator()
		t.AppendRow(entryRow(*state.WeeklyMix))
	}

	t.Render()
	return nil
}

func entryRow(entry models.MoodEntry) table.Row {
	day := fmt.Sprintf("%d", entry.Day)
	if entry.IsWeeklyMix() {
		day = "★"
	}
	return table.Row{
		day,
		shared.EntryKind(entry.Day),
		entry.UserInput,
		entry.Genre,
		shared.FormatDuration(entry.Duration),
		entry.Timestamp.Format("Mon Jan 2"),
	}
}

// Status shows week progression and mix eligibility.
func (r *Runner) Status(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.stateRepo()
	if err != nil {
		return err
	}
	state, err := repo.State()
	if err != nil {
		return err
	}

	r.writePlainHeader("Week Progress")

	t := table.NewWriter()
	t.SetOutputMirror(r.output)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Day", "Status"})
	for day, status := range tracker.Week(state.Entries) {
		t.AppendRow(table.Row{day + 1, status.String()})
	}
	t.Render()

	if tracker.WeeklyMixEligible(state.Entries) {
		if state.WeeklyMix != nil {
			r.writePlainln("Weekly mix: ready ('moodmix play mix' to listen, 'moodmix mix' to regenerate)")
		} else {
			r.writePlainln("Weekly mix: eligible! Run 'moodmix mix' to fuse your week.")
		}
	} else {
		remaining := tracker.RemainingUntilMix(state.Entries)
		r.writePlainln("Weekly mix: %d more %s to go", remaining, pluralDays(remaining))
	}

	return nil
}

// Play plays a stored clip through the speaker.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	if !player.Available {
		return player.ErrUnsupported
	}

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

	clip, err := player.ClipFromEntry(entry)
	if err != nil {
		return err
	}

	r.logger.Info("playing clip", "day", entry.Day, "duration", entry.Duration)
	r.writePlain("▶ %s (%s)\n", shared.EntryKind(entry.Day), shared.FormatDuration(entry.Duration))

	ctx, cancel := context.WithTimeout(ctx, time.Duration(entry.Duration+30)*time.Second)
	defer cancel()

	if err := player.PlayClip(ctx, clip); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}
	return nil
}

// Export writes the journal to a file as CSV or Markdown.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.stateRepo()
	if err != nil {
		return err
	}
	state, err := repo.State()
	if err != nil {
		return err
	}

	result, err := formatter.WriteExport(state, cmd.String("format"), cmd.String("output"))
	if err != nil {
		return err
	}

	r.logger.Info("journal exported", "file", result.File)
	r.writePlain("✓ Journal exported to %s\n", result.File)
	return nil
}
