package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/player"
	"github.com/desertthunder/moodmix/internal/repositories"
	"github.com/desertthunder/moodmix/internal/shared"
	"github.com/desertthunder/moodmix/internal/tasks"
	"github.com/desertthunder/moodmix/internal/tracker"
)

// ViewState represents the current screen in the TUI.
type ViewState int

const (
	HomeScreen ViewState = iota
	GeneratingScreen
	LibraryScreen
	ProfileScreen
	ResultScreen
)

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	engine *tasks.GenerationEngine
	repo   *repositories.StateRepository
	audio  *player.Player

	view   ViewState
	width  int
	height int
	loaded bool

	entries   []models.MoodEntry
	weeklyMix *models.MoodEntry

	moodInput   textinput.Model
	keyInput    textinput.Model
	presetIndex int

	entryList list.Model
	listReady bool

	playing      string // ID of the entry playing, empty when idle
	stopPlayback func()

	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	result       *tasks.GenerationResult
	err          error

	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, engine *tasks.GenerationEngine, repo *repositories.StateRepository) *Model {
	moodInput := textinput.New()
	moodInput.Placeholder = "How are you feeling today?"
	moodInput.CharLimit = 500
	moodInput.Focus()

	keyInput := textinput.New()
	keyInput.Placeholder = "sk-..."
	keyInput.EchoMode = textinput.EchoPassword

	return &Model{
		ctx:       ctx,
		engine:    engine,
		repo:      repo,
		audio:     player.New(),
		view:      HomeScreen,
		moodInput: moodInput,
		keyInput:  keyInput,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init initializes the TUI by loading the persisted journal state.
func (m *Model) Init() tea.Cmd {
	return m.loadState()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.listReady {
			m.entryList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case HomeScreen:
			return m.handleHomeKeys(msg)
		case GeneratingScreen:
			return m, nil
		case LibraryScreen:
			return m.handleLibraryKeys(msg)
		case ProfileScreen:
			return m.handleProfileKeys(msg)
		case ResultScreen:
			return m.handleResultKeys(msg)
		}

	case stateLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.entries = msg.state.Entries
		m.weeklyMix = msg.state.WeeklyMix
		m.rebuildList()
		if !m.loaded {
			m.loaded = true
			m.view = screenForView(msg.state.CurrentView)
		}
		return m, nil

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case generationDoneMsg:
		m.progressChan = nil
		m.result = msg.result
		m.err = msg.err
		if msg.err == nil {
			m.view = ResultScreen
			return m, tea.Batch(m.loadState(), m.persistView(models.LibraryView))
		}
		if errors.Is(msg.err, shared.ErrMissingCredential) {
			m.view = ProfileScreen
			m.keyInput.Focus()
			return m, tea.Batch(m.loadState(), m.persistView(models.ProfileView))
		}
		m.view = ResultScreen
		return m, m.loadState()

	case playbackDoneMsg:
		m.playing = ""
		m.stopPlayback = nil
		return m, nil

	case keySavedMsg:
		m.err = nil
		m.view = HomeScreen
		return m, m.persistView(models.HomeView)
	}

	if m.view == LibraryScreen && m.listReady {
		var cmd tea.Cmd
		m.entryList, cmd = m.entryList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current screen.
func (m *Model) View() string {
	switch m.view {
	case HomeScreen:
		return m.renderHome()
	case GeneratingScreen:
		return m.renderGenerating()
	case LibraryScreen:
		return m.renderLibrary()
	case ProfileScreen:
		return m.renderProfile()
	case ResultScreen:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.moodInput.Focused() {
		switch msg.String() {
		case "enter":
			return m.startGeneration()
		case "tab":
			m.view = LibraryScreen
			return m, m.persistView(models.LibraryView)
		case "esc":
			m.moodInput.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.moodInput, cmd = m.moodInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "i", "/":
		m.moodInput.Focus()
		return m, nil
	case "enter":
		return m.startGeneration()
	case "left", "h":
		m.presetIndex = (m.presetIndex + len(models.MoodPresets) - 1) % len(models.MoodPresets)
		return m, nil
	case "right", "l":
		m.presetIndex = (m.presetIndex + 1) % len(models.MoodPresets)
		return m, nil
	case "m":
		return m.startWeeklyMix()
	case "tab":
		m.view = LibraryScreen
		return m, m.persistView(models.LibraryView)
	}
	return m, nil
}

func (m *Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.listReady && m.entryList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.entryList, cmd = m.entryList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.view = HomeScreen
		return m, m.persistView(models.HomeView)
	case "tab":
		m.view = ProfileScreen
		m.keyInput.Focus()
		return m, m.persistView(models.ProfileView)
	case "m":
		return m.startWeeklyMix()
	case "enter", "p":
		if !m.listReady {
			return m, nil
		}
		if selected, ok := m.entryList.SelectedItem().(entryItem); ok {
			return m, m.togglePlayback(selected.entry)
		}
		return m, nil
	}

	if m.listReady {
		var cmd tea.Cmd
		m.entryList, cmd = m.entryList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		key := strings.TrimSpace(m.keyInput.Value())
		if key == "" {
			m.err = shared.ErrMissingCredential
			return m, nil
		}
		m.engine.SetAPIKey(key)
		return m, func() tea.Msg { return keySavedMsg{} }
	case "esc", "tab":
		m.keyInput.Blur()
		m.view = HomeScreen
		return m, m.persistView(models.HomeView)
	}

	var cmd tea.Cmd
	m.keyInput, cmd = m.keyInput.Update(msg)
	return m, cmd
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		m.result = nil
		m.err = nil
		m.moodInput.Reset()
		m.moodInput.Focus()
		m.view = HomeScreen
		return m, m.persistView(models.HomeView)
	case "tab", "enter":
		m.view = LibraryScreen
		return m, m.persistView(models.LibraryView)
	}
	return m, nil
}

// startGeneration kicks off a daily run, or the weekly mix once all
// seven slots are filled.
func (m *Model) startGeneration() (tea.Model, tea.Cmd) {
	if tracker.WeekComplete(m.entries) {
		return m.startWeeklyMix()
	}

	input := strings.TrimSpace(m.moodInput.Value())
	preset := models.MoodPresets[m.presetIndex]
	if input == "" {
		input = preset.Label
	}

	m.err = nil
	m.view = GeneratingScreen
	m.progressChan = make(chan tasks.ProgressUpdate, 50)

	go func(progress chan tasks.ProgressUpdate) {
		result, err := m.engine.GenerateDaily(m.ctx, progress, input, preset.Color)
		m.result = result
		m.err = err
		close(progress)
	}(m.progressChan)

	return m, m.waitForProgress()
}

func (m *Model) startWeeklyMix() (tea.Model, tea.Cmd) {
	if !tracker.WeeklyMixEligible(m.entries) {
		m.err = shared.ErrMixNotEligible
		return m, nil
	}

	m.err = nil
	m.view = GeneratingScreen
	m.progressChan = make(chan tasks.ProgressUpdate, 50)

	go func(progress chan tasks.ProgressUpdate) {
		result, err := m.engine.GenerateWeeklyMix(m.ctx, progress)
		m.result = result
		m.err = err
		close(progress)
	}(m.progressChan)

	return m, m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return generationDoneMsg{result: m.result, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			return generationDoneMsg{result: m.result, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) togglePlayback(entry models.MoodEntry) tea.Cmd {
	if m.playing == entry.ID {
		m.audio.Stop()
		if m.stopPlayback != nil {
			m.stopPlayback()
		}
		return nil
	}

	if m.playing != "" {
		m.audio.Stop()
		if m.stopPlayback != nil {
			m.stopPlayback()
		}
	}

	clip, err := player.ClipFromEntry(entry)
	if err != nil {
		m.err = err
		return nil
	}

	done := make(chan struct{})
	var once sync.Once
	finish := func() { once.Do(func() { close(done) }) }

	if err := m.audio.Play(clip, finish); err != nil {
		m.err = err
		return nil
	}

	m.err = nil
	m.playing = entry.ID
	m.stopPlayback = finish

	return func() tea.Msg {
		<-done
		return playbackDoneMsg{}
	}
}

func (m *Model) loadState() tea.Cmd {
	return func() tea.Msg {
		state, err := m.repo.State()
		return stateLoadedMsg{state: state, err: err}
	}
}

func (m *Model) persistView(view models.View) tea.Cmd {
	return func() tea.Msg {
		m.repo.SetView(view)
		return nil
	}
}

func (m *Model) rebuildList() {
	items := make([]list.Item, 0, len(m.entries)+1)
	for _, entry := range m.entries {
		items = append(items, entryItem{entry: entry})
	}
	if m.weeklyMix != nil {
		items = append(items, entryItem{entry: *m.weeklyMix})
	}

	if !m.listReady {
		m.entryList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.entryList.Title = "Your Week"
		m.entryList.SetSize(m.width-4, m.height-8)
		m.listReady = true
		return
	}
	m.entryList.SetItems(items)
}

func screenForView(view models.View) ViewState {
	switch view {
	case models.LibraryView:
		return LibraryScreen
	case models.ProfileView:
		return ProfileScreen
	default:
		return HomeScreen
	}
}

func (m *Model) renderHome() string {
	title := styles.title.Render(fmt.Sprintf("Mood Melody | Day %d of %d", min(tracker.DayNumber(m.entries), models.DaysPerWeek), models.DaysPerWeek))

	var slots strings.Builder
	for day := 1; day <= models.DaysPerWeek; day++ {
		switch tracker.ForDay(day, m.entries) {
		case tracker.Completed:
			slots.WriteString(styles.ok.Render("●"))
		case tracker.Current:
			slots.WriteString(styles.warn.Render("◉"))
		default:
			slots.WriteString(styles.help.Render("○"))
		}
		slots.WriteString(" ")
	}

	var presets strings.Builder
	for i, preset := range models.MoodPresets {
		label := fmt.Sprintf("%s %s", preset.Icon, preset.Label)
		if i == m.presetIndex {
			label = accent(fmt.Sprintf("[%s]", label), preset.Color)
		}
		presets.WriteString(label)
		presets.WriteString("  ")
	}

	var prompt string
	if tracker.WeekComplete(m.entries) {
		prompt = styles.ok.Render("Week complete! Press enter to fuse your weekly mix.")
	} else {
		prompt = m.moodInput.View()
	}

	var errLine string
	if m.err != nil {
		errLine = "\n" + styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.left, m.keys.right, m.keys.tab, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s%s\n\n%s", title, slots.String(), presets.String(), prompt, errLine, helpView)
}

func (m *Model) renderGenerating() string {
	title := styles.title.Render("Generating")

	var phase string
	switch m.progress.Phase {
	case tasks.Validating:
		phase = "Checking credentials..."
	case tasks.Enhancing:
		phase = "Enhancing your mood prompt..."
	case tasks.Synthesizing:
		phase = "Synthesizing audio..."
	case tasks.Encoding:
		phase = "Encoding clip..."
	default:
		phase = "Working..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, m.progress.Message)
}

func (m *Model) renderLibrary() string {
	if !m.listReady {
		return styles.help.Render("Loading your week...")
	}

	var status string
	if m.playing != "" {
		status = styles.ok.Render("▶ playing")
	} else if !player.Available {
		status = styles.warn.Render("audio playback unavailable in this build")
	} else if remaining := tracker.RemainingUntilMix(m.entries); remaining > 0 {
		status = styles.help.Render(fmt.Sprintf("%d more days until your weekly mix", remaining))
	} else if m.weeklyMix == nil {
		status = styles.ok.Render("Week complete! Press m to fuse your weekly mix")
	}

	var errLine string
	if m.err != nil {
		errLine = styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	}

	helpKeys := []key.Binding{m.keys.play, m.keys.mix, m.keys.back, m.keys.tab, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s%s\n%s", m.entryList.View(), status, errLine, helpView)
}

func (m *Model) renderProfile() string {
	title := styles.title.Render("Profile")
	note := styles.help.Render("The key is kept in memory for this session. Add it to config.toml to persist it.")

	var errLine string
	if m.err != nil {
		errLine = "\n" + styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\nStability API key:\n%s\n%s%s\n\n%s", title, m.keyInput.View(), note, errLine, helpView)
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Generation failed: %v\n\nPress r to try again, q to quit", m.err))
	}

	if m.result == nil {
		return styles.err.Render("No result available\n\nPress r to try again, q to quit")
	}

	entry := m.result.Entry
	title := styles.ok.Render(fmt.Sprintf("✓ %s ready!", shared.EntryKind(entry.Day)))
	info := fmt.Sprintf(
		"\nMood: %s\nGenre: %s\nLength: %s\nPrompt: %s\n",
		accent(entry.UserInput, entry.Color),
		entry.Genre,
		shared.FormatDuration(entry.Duration),
		entry.EnhancedPrompt,
	)

	helpKeys := []key.Binding{m.keys.restart, m.keys.tab, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}
