//go:build !((linux && cgo) || windows || darwin)

package player

import "time"

// Available indicates whether audio playback is supported in this build.
// Audio requires cgo for the native sound libraries on linux.
const Available = false

// Player is a no-op audio backend for builds without sound support.
type Player struct{}

// New creates a no-op player.
func New() *Player {
	return &Player{}
}

// Play reports that this build cannot produce audio.
func (p *Player) Play(clip Clip, onDone func()) error {
	return ErrUnsupported
}

// Pause is a no-op without an audio backend.
func (p *Player) Pause() {}

// Resume is a no-op without an audio backend.
func (p *Player) Resume() {}

// Stop is a no-op without an audio backend.
func (p *Player) Stop() {}

// Position returns 0 without an audio backend.
func (p *Player) Position() time.Duration {
	return 0
}

// Duration returns 0 without an audio backend.
func (p *Player) Duration() time.Duration {
	return 0
}

// Paused returns false without an audio backend.
func (p *Player) Paused() bool {
	return false
}
