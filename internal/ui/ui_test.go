package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/repositories"
	"github.com/desertthunder/moodmix/internal/shared"
	"github.com/desertthunder/moodmix/internal/tasks"
	tu "github.com/desertthunder/moodmix/internal/testing"
)

func newTestModel(t *testing.T, apiKey string) (*Model, *repositories.StateRepository) {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	repo := repositories.NewStateRepository(db, shared.NewLogger(nil))
	engine := tasks.NewGenerationEngine(
		&tu.MockEnhancer{
			Descriptor:   "Genre: Lo-Fi | Instruments: Piano | Vibe: Calm",
			WeeklyResult: "Genre: Fusion | Vibe: Journey",
		},
		&tu.MockSynthesizer{Audio: []byte("mp3-bytes")},
		repo,
		0, 0,
	)
	if apiKey != "" {
		engine.SetAPIKey(apiKey)
	}

	m := NewModel(context.Background(), engine, repo)
	drive(m, m.Init())
	return m, repo
}

// drive runs a command chain to completion, feeding each produced message
// back through Update the way the Bubble Tea runtime would.
func drive(m *Model, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg := next()
		if msg == nil {
			continue
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}

		_, followup := m.Update(msg)
		queue = append(queue, followup)
	}
}

func TestGenerationRouting(t *testing.T) {
	t.Run("missing credential routes to profile", func(t *testing.T) {
		m, repo := newTestModel(t, "")
		m.moodInput.SetValue("rainy day")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		drive(m, cmd)

		if m.view != ProfileScreen {
			t.Errorf("expected ProfileScreen (%d), got %d", ProfileScreen, m.view)
		}
		if !m.keyInput.Focused() {
			t.Error("expected the key input to take focus")
		}
		if !errors.Is(m.err, shared.ErrMissingCredential) {
			t.Errorf("expected ErrMissingCredential, got %v", m.err)
		}
		if len(m.entries) != 0 {
			t.Errorf("expected no entries after a failed run, got %d", len(m.entries))
		}

		state, err := repo.State()
		if err != nil {
			t.Fatalf("failed to load state: %v", err)
		}
		if state.CurrentView != models.ProfileView {
			t.Errorf("expected persisted view %q, got %q", models.ProfileView, state.CurrentView)
		}
	})

	t.Run("successful run lands on result and persists library view", func(t *testing.T) {
		m, repo := newTestModel(t, "sk-test")
		m.moodInput.SetValue("sunny morning")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		drive(m, cmd)

		if m.view != ResultScreen {
			t.Errorf("expected ResultScreen (%d), got %d", ResultScreen, m.view)
		}
		if m.err != nil {
			t.Fatalf("unexpected error: %v", m.err)
		}
		if m.result == nil {
			t.Fatal("expected a generation result")
		}
		if len(m.entries) != 1 {
			t.Errorf("expected 1 entry, got %d", len(m.entries))
		}

		state, err := repo.State()
		if err != nil {
			t.Fatalf("failed to load state: %v", err)
		}
		if state.CurrentView != models.LibraryView {
			t.Errorf("expected persisted view %q, got %q", models.LibraryView, state.CurrentView)
		}
	})
}
