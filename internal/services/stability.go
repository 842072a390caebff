// Stability AI [Synthesizer] implementation
//
// Posts multipart form requests to the Stable Audio 2 text-to-audio
// endpoint and returns the raw MP3 bytes.
package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/desertthunder/moodmix/internal/shared"
	"golang.org/x/time/rate"
)

const (
	defaultStabilityBaseURL = "https://api.stability.ai"
	textToAudioPath         = "/v2beta/audio/stable-audio-2/text-to-audio"

	// Negotiated synthesis parameters. These are service contract
	// constants, not tunables.
	synthSeed         = "0"
	synthSteps        = "50"
	synthCFGScale     = "7.0"
	synthOutputFormat = "mp3"
	synthModel        = "stable-audio-2"
)

// StabilityService implements the [Synthesizer] interface for Stable Audio 2.
type StabilityService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewStabilityService creates a new Stability AI synthesis client.
//
// requestsPerSecond caps the outbound call rate; zero or negative disables
// pacing.
func NewStabilityService(baseURL string, client *http.Client, requestsPerSecond float64) *StabilityService {
	if baseURL == "" {
		baseURL = defaultStabilityBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}

	return &StabilityService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    limiter,
	}
}

// Name returns the provider name.
func (s *StabilityService) Name() string {
	return "Stability AI"
}

// GenerateAudio synthesizes a clip of durationSeconds from the descriptor.
//
// Non-2xx responses surface as errors carrying the HTTP status code and
// the response body text.
func (s *StabilityService) GenerateAudio(ctx context.Context, prompt string, durationSeconds int, apiKey string) ([]byte, error) {
	if apiKey == "" {
		return nil, shared.ErrMissingCredential
	}
	if prompt == "" {
		return nil, fmt.Errorf("%w: empty synthesis prompt", shared.ErrInvalidInput)
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	fields := map[string]string{
		"prompt":        prompt,
		"duration":      strconv.Itoa(durationSeconds),
		"seed":          synthSeed,
		"steps":         synthSteps,
		"cfg_scale":     synthCFGScale,
		"output_format": synthOutputFormat,
		"model":         synthModel,
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	apiURL := s.baseURL + textToAudioPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Accept", "audio/*")
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: Stability API error (%d): %s", shared.ErrSynthesisFailed, resp.StatusCode, string(body))
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty audio response", shared.ErrSynthesisFailed)
	}

	return body, nil
}
