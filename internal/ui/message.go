package ui

import (
	"github.com/desertthunder/moodmix/internal/models"
	"github.com/desertthunder/moodmix/internal/tasks"
)

// stateLoadedMsg carries the persisted journal state into the model.
type stateLoadedMsg struct {
	state *models.AppState
	err   error
}

// progressUpdateMsg wraps one engine progress update.
type progressUpdateMsg tasks.ProgressUpdate

// generationDoneMsg signals that a generation run finished.
type generationDoneMsg struct {
	result *tasks.GenerationResult
	err    error
}

// playbackDoneMsg signals that the playing clip reached its end.
type playbackDoneMsg struct{}

// keySavedMsg confirms that the API key was applied to the engine.
type keySavedMsg struct{}
