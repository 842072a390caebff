// Package tasks orchestrates clip generation with real-time progress reporting.
//
// # Core Operations
//
// The [Engine] interface defines two operations:
//
//  1. [Engine.GenerateDaily] : One daily mood entry
//     - Validates the synthesis credential
//     - Enhances the mood text into a structured descriptor
//     - Synthesizes a 30-second clip and encodes it as a data URL
//     - Appends the committed entry to the journal
//
//  2. [Engine.GenerateWeeklyMix] : The weekly fusion clip
//     - Enforces the seven-entry eligibility gate
//     - Fuses all prior descriptors into one mix prompt
//     - Synthesizes a 90-second clip and overwrites the stored mix
//
// # Request State Machine
//
// Each request moves through Validating → Enhancing → Synthesizing →
// Encoding → Committed, with Failed reachable from every phase before
// commit. A failure aborts only the in-flight request; committed entries
// are never rolled back.
//
// # Reentrancy
//
// The engine holds a single in-flight slot. A second request while one is
// executing is rejected deterministically with [shared.ErrGenerationBusy]
// instead of racing on the shared entry list. The slot is released on
// every exit path.
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and
// optional data for advanced UI rendering. Updates use select with default
// to prevent blocking.
//
// # Implementation
//
// [GenerationEngine] implements [Engine] with dependencies on:
//   - [services.Enhancer] : prompt enhancement client
//   - [services.Synthesizer] : audio synthesis client
//   - [StateStore] : journal persistence (repositories.StateRepository)
package tasks
