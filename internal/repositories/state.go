package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/shared"
)

// StateKey is the fixed key the journal blob is stored under. The value is
// inherited from the original record format.
const StateKey = "mood_melody_data_v2"

// StateRepository holds the journal state and persists it to SQLite.
//
// All mutation paths serialize the full state on every call. The mutex
// guards the in-memory state so concurrent callers cannot interleave an
// append with a save.
type StateRepository struct {
	db     *sql.DB
	logger *log.Logger

	mu    sync.Mutex
	state *models.AppState
}

// NewStateRepository creates a new [StateRepository] with the given database connection.
func NewStateRepository(db *sql.DB, logger *log.Logger) *StateRepository {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &StateRepository{db: db, logger: logger}
}

// Load reads the journal blob from the database and rehydrates the state.
//
// A missing row or an unparsable blob falls back to the default empty
// state; only database errors are returned. CurrentDay is recomputed from
// the entry count, the stored cursor is never trusted.
func (r *StateRepository) Load() (*models.AppState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var blob string
	err := r.db.QueryRow("SELECT value FROM journal_state WHERE key = ?", StateKey).Scan(&blob)
	if err == sql.ErrNoRows {
		r.state = models.DefaultState()
		return r.state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query journal state: %w", err)
	}

	var state models.AppState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		r.logger.Warn("discarding unreadable journal state", "key", StateKey, "error", fmt.Errorf("%w: %v", shared.ErrCorruptState, err))
		r.state = models.DefaultState()
		return r.state, nil
	}

	state.Normalize()
	r.state = &state
	return r.state, nil
}

// State returns the in-memory journal, loading it on first use.
func (r *StateRepository) State() (*models.AppState, error) {
	r.mu.Lock()
	cached := r.state
	r.mu.Unlock()

	if cached != nil {
		return cached, nil
	}
	return r.Load()
}

// Save serializes the given state and writes the full blob.
func (r *StateRepository) Save(state *models.AppState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked(state)
}

func (r *StateRepository) saveLocked(state *models.AppState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize journal state: %w", err)
	}

	query := `
		INSERT INTO journal_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(query, StateKey, string(blob), time.Now()); err != nil {
		return fmt.Errorf("failed to write journal state: %w", err)
	}

	r.state = state
	return nil
}

// Append adds a daily entry to the end of the journal and persists.
//
// The caller guarantees ID uniqueness; no day monotonicity check is
// performed here. CurrentDay is advanced to the next open slot.
func (r *StateRepository) Append(entry models.MoodEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	state, err := r.State()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state.Entries = append(state.Entries, entry)
	state.CurrentDay = len(state.Entries) + 1
	return r.saveLocked(state)
}

// SetWeeklyMix unconditionally replaces the weekly mix entry and persists.
func (r *StateRepository) SetWeeklyMix(entry models.MoodEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !entry.IsWeeklyMix() {
		return fmt.Errorf("%w: weekly mix entry must use day %d", shared.ErrInvalidInput, models.WeeklyMixDay)
	}

	state, err := r.State()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state.WeeklyMix = &entry
	return r.saveLocked(state)
}

// SetView records the active screen and persists.
func (r *StateRepository) SetView(view models.View) error {
	if !view.Valid() {
		return fmt.Errorf("%w: unknown view %q", shared.ErrInvalidInput, view)
	}

	state, err := r.State()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state.CurrentView = view
	return r.saveLocked(state)
}
