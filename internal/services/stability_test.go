package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/moodmix/internal/shared"
	tu "github.com/desertthunder/moodmix/internal/testing"
)

func TestStabilityService(t *testing.T) {
	t.Run("NewStabilityService", func(t *testing.T) {
		t.Run("defaults", func(t *testing.T) {
			s := NewStabilityService("", nil, 0)
			if s.baseURL != defaultStabilityBaseURL {
				t.Errorf("expected default base URL, got %s", s.baseURL)
			}
			if s.limiter != nil {
				t.Error("expected pacing disabled for zero rate")
			}
		})

		t.Run("rate limiter enabled", func(t *testing.T) {
			if s := NewStabilityService("", nil, 2.0); s.limiter == nil {
				t.Error("expected limiter for positive rate")
			}
		})
	})

	t.Run("Name", func(t *testing.T) {
		if got := NewStabilityService("", nil, 0).Name(); got != "Stability AI" {
			t.Errorf("expected name 'Stability AI', got %s", got)
		}
	})

	t.Run("GenerateAudio", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			audio := []byte("mp3-bytes")

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != textToAudioPath {
					t.Errorf("expected path %s, got %s", textToAudioPath, r.URL.Path)
				}
				if r.Method != http.MethodPost {
					t.Errorf("expected POST method, got %s", r.Method)
				}
				if r.Header.Get("Authorization") != "Bearer sk-test" {
					t.Errorf("expected bearer auth, got %s", r.Header.Get("Authorization"))
				}
				if r.Header.Get("Accept") != "audio/*" {
					t.Errorf("expected audio accept header, got %s", r.Header.Get("Accept"))
				}

				if err := r.ParseMultipartForm(1 << 20); err != nil {
					t.Fatalf("expected multipart form: %v", err)
				}
				form := r.MultipartForm.Value
				checks := map[string]string{
					"prompt":        "Genre: Lo-Fi | Vibe: Calm",
					"duration":      "30",
					"seed":          "0",
					"steps":         "50",
					"cfg_scale":     "7.0",
					"output_format": "mp3",
					"model":         "stable-audio-2",
				}
				for field, want := range checks {
					if got := form[field]; len(got) != 1 || got[0] != want {
						t.Errorf("form field %s = %v, want %s", field, got, want)
					}
				}

				w.Header().Set("Content-Type", "audio/mpeg")
				w.Write(audio)
			}))
			defer server.Close()

			s := NewStabilityService(server.URL, server.Client(), 0)
			got, err := s.GenerateAudio(context.Background(), "Genre: Lo-Fi | Vibe: Calm", 30, "sk-test")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if string(got) != string(audio) {
				t.Errorf("expected audio bytes to round trip")
			}
		})

		t.Run("missing api key", func(t *testing.T) {
			s := NewStabilityService("", nil, 0)
			_, err := s.GenerateAudio(context.Background(), "Genre: X", 30, "")
			if !errors.Is(err, shared.ErrMissingCredential) {
				t.Errorf("expected ErrMissingCredential, got %v", err)
			}
		})

		t.Run("empty prompt", func(t *testing.T) {
			s := NewStabilityService("", nil, 0)
			if _, err := s.GenerateAudio(context.Background(), "", 30, "sk-test"); err == nil {
				t.Error("expected error for empty prompt")
			}
		})

		t.Run("non-2xx carries status and body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte("invalid api key"))
			}))
			defer server.Close()

			s := NewStabilityService(server.URL, server.Client(), 0)
			_, err := s.GenerateAudio(context.Background(), "Genre: X", 30, "sk-bad")
			if err == nil {
				t.Fatal("expected error for 401 response")
			}
			if !errors.Is(err, shared.ErrSynthesisFailed) {
				t.Errorf("expected ErrSynthesisFailed, got %v", err)
			}
			if !strings.Contains(err.Error(), "401") {
				t.Errorf("error should carry status code: %v", err)
			}
			if !strings.Contains(err.Error(), "invalid api key") {
				t.Errorf("error should carry response body: %v", err)
			}
		})

		t.Run("transport error", func(t *testing.T) {
			client := &http.Client{Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused"))}

			s := NewStabilityService("http://stability.invalid", client, 0)
			_, err := s.GenerateAudio(context.Background(), "Genre: X", 30, "sk-test")
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})

		t.Run("body read failure", func(t *testing.T) {
			resp := &http.Response{StatusCode: http.StatusOK, Body: &tu.FCloser{}}
			client := &http.Client{Transport: tu.NewMockRoundTripper(resp, nil)}

			s := NewStabilityService("http://stability.invalid", client, 0)
			_, err := s.GenerateAudio(context.Background(), "Genre: X", 30, "sk-test")
			if err == nil {
				t.Fatal("expected error for unreadable body")
			}
			if !strings.Contains(err.Error(), "failed to read response") {
				t.Errorf("expected read failure error, got %v", err)
			}
		})

		t.Run("empty audio body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			s := NewStabilityService(server.URL, server.Client(), 0)
			if _, err := s.GenerateAudio(context.Background(), "Genre: X", 30, "sk-test"); err == nil {
				t.Error("expected error for empty audio response")
			}
		})
	})
}
