//go:build (linux && cgo) || windows || darwin

package player

import (
	"bytes"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// Available indicates whether audio playback is supported in this build.
const Available = true

// Player handles audio output using beep. A Player plays one clip at a
// time; starting a new clip stops the current one.
type Player struct {
	mu sync.Mutex

	initialized bool
	sampleRate  beep.SampleRate
	ctrl        *beep.Ctrl
	streamer    beep.StreamSeekCloser
	format      beep.Format
	onDone      func()
}

// New creates an audio player.
func New() *Player {
	return &Player{
		sampleRate: beep.SampleRate(44100),
	}
}

func (p *Player) initSpeaker() error {
	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Play starts playing a clip from its in-memory data. onDone is invoked
// on a separate goroutine when the clip finishes on its own.
func (p *Player) Play(clip Clip, onDone func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	streamer, format, err := mp3.Decode(nopCloser{bytes.NewReader(clip.Data)})
	if err != nil {
		return err
	}

	if err := p.initSpeaker(); err != nil {
		streamer.Close()
		return err
	}

	p.streamer = streamer
	p.format = format
	p.onDone = onDone

	resampled := beep.Resample(4, format.SampleRate, p.sampleRate, streamer)
	p.ctrl = &beep.Ctrl{Streamer: resampled, Paused: false}

	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		if p.onDone != nil {
			go p.onDone()
		}
	})))

	return nil
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = true
		speaker.Unlock()
	}
}

// Resume resumes paused playback.
func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
	}
}

// Stop stops playback completely.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = true
		speaker.Unlock()
	}
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.onDone = nil
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}

	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()

	return p.format.SampleRate.D(pos)
}

// Duration returns the total duration of the current clip.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}

	return p.format.SampleRate.D(p.streamer.Len())
}

// Paused returns whether playback is paused.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return false
	}

	speaker.Lock()
	paused := p.ctrl.Paused
	speaker.Unlock()
	return paused
}

// nopCloser wraps a bytes.Reader to implement io.ReadCloser.
type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }
