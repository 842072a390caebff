// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-screen workflow for the mood journal:
//  1. [HomeScreen] : Type a mood (or pick a preset) and generate the day's clip
//  2. [GeneratingScreen] : Monitor real-time generation progress
//  3. [LibraryScreen] : Browse the week's entries and play them back
//  4. [ProfileScreen] : Manage the Stability API key
//  5. [ResultScreen] : Display the freshly committed entry
//
// The (screen) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via typed message structs.
// Progress updates flow through a channel from the GenerationEngine, providing non-blocking status reporting while clips render.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, tab, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
