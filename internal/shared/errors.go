package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig     = fmt.Errorf("configuration not found")
	ErrInvalidConfig     = fmt.Errorf("invalid configuration")
	ErrMissingCredential = fmt.Errorf("missing Stability API key: add it in profile settings or config.toml")

	// Generation errors
	ErrGenerationBusy    = fmt.Errorf("a generation request is already in flight")
	ErrMixNotEligible    = fmt.Errorf("weekly mix requires seven daily entries")
	ErrEnhancementFailed = fmt.Errorf("prompt enhancement failed")
	ErrSynthesisFailed   = fmt.Errorf("audio synthesis failed")
	ErrWeekComplete      = fmt.Errorf("all seven daily entries already recorded")

	// Persistence errors
	ErrCorruptState  = fmt.Errorf("persisted journal state is unreadable")
	ErrEntryNotFound = fmt.Errorf("entry not found")
	ErrNoAudio       = fmt.Errorf("entry has no audio")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
