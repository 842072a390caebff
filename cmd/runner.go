package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/moodmix/internal/repositories"
	"github.com/desertthunder/moodmix/internal/services"
	"github.com/desertthunder/moodmix/internal/shared"
	"github.com/desertthunder/moodmix/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	enhancer   services.Enhancer
	synth      services.Synthesizer
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	db         *sql.DB
	repo       *repositories.StateRepository
	engine     *tasks.GenerationEngine
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Enhancer   services.Enhancer
	Synth      services.Synthesizer
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
	Repo       *repositories.StateRepository
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		enhancer:   opts.Enhancer,
		synth:      opts.Synth,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		repo:       opts.Repo,
	}
}

// SetLogger swaps the runner's logger, e.g. to a file logger for TUI runs.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// Close releases the database handle if one was opened.
func (r *Runner) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		generateCommand, mixCommand, libraryCommand, statusCommand, playCommand, promptCommand, exportCommand, setupCommand, keysCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// stateRepo opens the database on first use, running pending migrations so
// every command works on a fresh install.
func (r *Runner) stateRepo() (*repositories.StateRepository, error) {
	if r.repo != nil {
		return r.repo, nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	r.db = db
	r.repo = repositories.NewStateRepository(db, r.logger)
	return r.repo, nil
}

func (r *Runner) generationEngine() (*tasks.GenerationEngine, error) {
	if r.engine != nil {
		return r.engine, nil
	}
	if r.enhancer == nil || r.synth == nil {
		return nil, fmt.Errorf("%w: generation services not initialized", shared.ErrServiceUnavailable)
	}

	repo, err := r.stateRepo()
	if err != nil {
		return nil, err
	}

	engine := tasks.NewGenerationEngine(r.enhancer, r.synth, repo, r.config.Generation.DailySeconds, r.config.Generation.WeeklySeconds)
	engine.SetAPIKey(r.config.Credentials.Stability.APIKey)
	r.engine = engine
	return engine, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
