package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/desertthunder/moodmix/internal/services"
	"github.com/desertthunder/moodmix/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	// Synthesis can take a while for 90-second clips
	client := &http.Client{Timeout: 3 * time.Minute}

	enhancer := services.NewGeminiEnhancer(
		config.Credentials.Gemini.BaseURL,
		config.Credentials.Gemini.Model,
		config.Credentials.Gemini.APIKey,
		client,
	)
	synth := services.NewStabilityService(config.Credentials.Stability.BaseURL, client, config.Generation.RateLimit)

	runner := NewRunner(RunnerOpts{
		Config:   config,
		Enhancer: enhancer,
		Synth:    synth,
		Logger:   logger,
	})
	defer runner.Close()

	app := &cli.Command{
		Name:     "moodmix",
		Usage:    "Turn daily moods into AI-generated music clips",
		Version:  "0.5.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
