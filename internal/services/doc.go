// Package services defines the [Enhancer] and [Synthesizer] interfaces for
// the two external AI collaborators, and implements them for Gemini and
// Stability AI.
//
// # Prompt Enhancement
//
// [GeminiEnhancer] turns free mood text into a structured audio descriptor
// of the shape "Genre: X | Instruments: Y | Vibe: Z" via the Gemini
// generateContent endpoint. Enhancement degrades gracefully: any transport
// or decoding failure yields a deterministic fallback descriptor derived
// from the raw input, never an error, so a daily entry can always be
// attempted.
//
// # Audio Synthesis
//
// [StabilityService] posts the descriptor to the Stable Audio 2
// text-to-audio endpoint and returns raw MP3 bytes. Synthesis parameters
// (seed, steps, guidance scale, output format, model) are negotiated
// constants, not design choices. Non-2xx responses surface as errors
// carrying the HTTP status and the response body text. Requests are paced
// by a token-bucket rate limiter.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrMissingCredential] : no Stability API key supplied
//   - [shared.ErrSynthesisFailed] : non-success synthesis response
//   - [shared.ErrAPIRequest] : HTTP transport failure
package services
