// Gemini [Enhancer] implementation
//
// Calls the generateContent endpoint to rewrite mood text as a structured
// audio descriptor. Every failure path returns the deterministic fallback
// descriptor rather than an error.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.5-flash"
)

const dailyPromptTemplate = `You are an expert music producer and sound designer.
Convert the following user mood/input into a high-quality audio generation prompt for a Text-to-Audio AI.

User Input: %q%s

Rules:
1. Output ONLY the prompt string. No explanations.
2. Include Genre, Instruments, and Mood descriptors.
3. Format example: "Genre: Lo-Fi Hip Hop | Instruments: Piano, Vinyl Crackle, Soft Drums | Vibe: Melancholic, Relaxing"
4. Keep it under 40 words.`

const weeklyPromptTemplate = `Create a prompt for a 90-second "Weekly Mix" musical track that fuses the vibes of the following daily prompts:
[%s]

Rules:
1. Create a cohesive blend of the genres mentioned.
2. Output ONLY the prompt string.
3. Focus on a progression or journey in the music.
4. Format: "Genre: Experimental Fusion | Instruments: Synth, Orchestra, Drums | Vibe: Eclectic Journey"`

// geminiRequest is the generateContent request body.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse is the subset of the generateContent response we read.
type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GeminiEnhancer implements the [Enhancer] interface for the Gemini API.
type GeminiEnhancer struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewGeminiEnhancer creates a new Gemini enhancer instance.
//
// An empty baseURL or model falls back to the production endpoint and the
// default model. An empty apiKey is allowed; calls then degrade to the
// deterministic fallback descriptors.
func NewGeminiEnhancer(baseURL, model, apiKey string, client *http.Client) *GeminiEnhancer {
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	if model == "" {
		model = defaultGeminiModel
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &GeminiEnhancer{
		baseURL:    baseURL,
		model:      model,
		apiKey:     apiKey,
		httpClient: client,
	}
}

// Name returns the provider name.
func (g *GeminiEnhancer) Name() string {
	return "Gemini"
}

// EnhancePrompt converts mood text into a structured descriptor.
//
// On any failure the deterministic fallback descriptor is returned with a
// nil error; graceful degradation is part of the contract.
func (g *GeminiEnhancer) EnhancePrompt(ctx context.Context, input, color string) (string, error) {
	colorContext := ""
	if color != "" {
		colorContext = fmt.Sprintf(" The associated color is %s.", color)
	}

	prompt := fmt.Sprintf(dailyPromptTemplate, input, colorContext)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return FallbackPrompt(input), nil
	}
	return text, nil
}

// WeeklyMixPrompt fuses prior daily descriptors into one mix prompt.
func (g *GeminiEnhancer) WeeklyMixPrompt(ctx context.Context, dailyPrompts []string) (string, error) {
	combined := strings.Join(dailyPrompts, "; ")
	prompt := fmt.Sprintf(weeklyPromptTemplate, combined)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return FallbackWeeklyPrompt, nil
	}
	return text, nil
}

func (g *GeminiEnhancer) generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("no gemini API key configured")
	}

	reqBody, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini API error: status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("blank descriptor from gemini")
	}

	return text, nil
}
