// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/moodmix/internal/models"
)

// MockEnhancer is a test double for [services.Enhancer]
type MockEnhancer struct {
	Descriptor   string
	WeeklyResult string
	Err          error
}

func (m *MockEnhancer) EnhancePrompt(ctx context.Context, input, color string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Descriptor, nil
}

func (m *MockEnhancer) WeeklyMixPrompt(ctx context.Context, dailyPrompts []string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.WeeklyResult, nil
}

func (m *MockEnhancer) Name() string { return "mock-enhancer" }

// MockSynthesizer is a test double for [services.Synthesizer]
type MockSynthesizer struct {
	Audio []byte
	Err   error
}

func (m *MockSynthesizer) GenerateAudio(ctx context.Context, prompt string, durationSeconds int, apiKey string) ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Audio, nil
}

func (m *MockSynthesizer) Name() string { return "mock-synthesizer" }

// SeedEntries builds n valid daily entries numbered from day 1.
func SeedEntries(n int) []models.MoodEntry {
	entries := make([]models.MoodEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, models.MoodEntry{
			ID:             fmt.Sprintf("seed-%d", i+1),
			Day:            i + 1,
			UserInput:      fmt.Sprintf("mood %d", i+1),
			EnhancedPrompt: fmt.Sprintf("Genre: Mood %d | Vibe: Test", i+1),
			Duration:       models.DefaultDailySeconds,
			Genre:          fmt.Sprintf("Genre: Mood %d ", i+1),
		})
	}
	return entries
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
