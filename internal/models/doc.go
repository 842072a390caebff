// Package models defines the domain entities for the moodmix journal.
//
// The package contains three categories of types:
//
// 1. Journal entities, serialized as one JSON blob by the repositories layer:
//   - [MoodEntry] : A single generated clip tied to a day slot (1..7, 8 for the weekly mix)
//   - [AppState] : The full journal state - entries, weekly mix, cursor, and active view
//
// 2. The [View] enumeration selecting the active screen (home, library, profile).
//
// 3. Fixed mood tables mirrored from the product design:
//   - [MoodPresets] : Quick-pick moods with accent colors
//   - [MoodColors] : The full accent palette
//
// Entries are append-only. No update or delete path exists anywhere in the
// application, so a day slot, once committed, never changes.
package models
