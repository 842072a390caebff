package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func geminiServer(t *testing.T, text string, status int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST method, got %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("expected generateContent path, got %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") == "" {
			t.Error("expected api key header")
		}

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestGeminiEnhancer(t *testing.T) {
	t.Run("NewGeminiEnhancer", func(t *testing.T) {
		t.Run("defaults", func(t *testing.T) {
			g := NewGeminiEnhancer("", "", "", nil)
			if g.baseURL != defaultGeminiBaseURL {
				t.Errorf("expected default base URL, got %s", g.baseURL)
			}
			if g.model != defaultGeminiModel {
				t.Errorf("expected default model, got %s", g.model)
			}
		})

		t.Run("custom endpoint", func(t *testing.T) {
			g := NewGeminiEnhancer("http://localhost:9000", "test-model", "key", nil)
			if g.baseURL != "http://localhost:9000" || g.model != "test-model" {
				t.Error("expected custom endpoint to be kept")
			}
		})
	})

	t.Run("Name", func(t *testing.T) {
		if got := NewGeminiEnhancer("", "", "", nil).Name(); got != "Gemini" {
			t.Errorf("expected name 'Gemini', got %s", got)
		}
	})

	t.Run("EnhancePrompt", func(t *testing.T) {
		t.Run("returns descriptor", func(t *testing.T) {
			descriptor := "Genre: Lo-Fi | Instruments: Piano | Vibe: Calm"
			server := geminiServer(t, "  "+descriptor+"\n", http.StatusOK)
			defer server.Close()

			g := NewGeminiEnhancer(server.URL, "", "test-key", server.Client())
			got, err := g.EnhancePrompt(context.Background(), "rainy day", "#3B82F6")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != descriptor {
				t.Errorf("expected trimmed descriptor %q, got %q", descriptor, got)
			}
		})

		t.Run("falls back without api key", func(t *testing.T) {
			g := NewGeminiEnhancer("", "", "", nil)
			got, err := g.EnhancePrompt(context.Background(), "rainy day", "")
			if err != nil {
				t.Fatalf("fallback path must not error, got %v", err)
			}
			if got != "Genre: Ambient | Mood: rainy day" {
				t.Errorf("unexpected fallback descriptor: %q", got)
			}
		})

		t.Run("falls back on server error", func(t *testing.T) {
			server := geminiServer(t, "", http.StatusInternalServerError)
			defer server.Close()

			g := NewGeminiEnhancer(server.URL, "", "test-key", server.Client())
			got, err := g.EnhancePrompt(context.Background(), "stormy", "")
			if err != nil {
				t.Fatalf("fallback path must not error, got %v", err)
			}
			if got != FallbackPrompt("stormy") {
				t.Errorf("expected fallback, got %q", got)
			}
		})
	})

	t.Run("WeeklyMixPrompt", func(t *testing.T) {
		t.Run("joins daily prompts", func(t *testing.T) {
			var captured geminiRequest
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewDecoder(r.Body).Decode(&captured)
				resp := map[string]any{
					"candidates": []map[string]any{
						{"content": map[string]any{"parts": []map[string]string{{"text": "Genre: Fusion | Vibe: Journey"}}}},
					},
				}
				json.NewEncoder(w).Encode(resp)
			}))
			defer server.Close()

			g := NewGeminiEnhancer(server.URL, "", "test-key", server.Client())
			got, err := g.WeeklyMixPrompt(context.Background(), []string{"Genre: A", "Genre: B"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != "Genre: Fusion | Vibe: Journey" {
				t.Errorf("unexpected descriptor: %q", got)
			}

			sent := captured.Contents[0].Parts[0].Text
			if !strings.Contains(sent, "Genre: A; Genre: B") {
				t.Errorf("daily prompts should be joined with '; ': %s", sent)
			}
		})

		t.Run("falls back on failure", func(t *testing.T) {
			g := NewGeminiEnhancer("", "", "", nil)
			got, err := g.WeeklyMixPrompt(context.Background(), []string{"Genre: A"})
			if err != nil {
				t.Fatalf("fallback path must not error, got %v", err)
			}
			if got != FallbackWeeklyPrompt {
				t.Errorf("expected weekly fallback, got %q", got)
			}
		})
	})
}
