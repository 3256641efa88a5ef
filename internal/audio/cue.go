// Package audio plays short sound cues for simulation events.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate      = beep.SampleRate(44100)
	captureFreq     = 880.0
	captureDuration = 120 * time.Millisecond
)

// Cue plays a tone when a pursuit ends in capture.
// The zero value is a silent cue.
type Cue struct {
	ready bool
}

// NewCue initialises the speaker.
func NewCue() (*Cue, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Cue{}, err
	}
	return &Cue{ready: true}, nil
}

// Enabled reports whether the speaker could be initialised.
func (c *Cue) Enabled() bool {
	return c != nil && c.ready
}

// Capture plays the capture tone without blocking.
func (c *Cue) Capture() {
	if !c.Enabled() {
		return
	}
	tone, err := generators.SineTone(sampleRate, captureFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(captureDuration), tone))
}

// Close releases the speaker.
func (c *Cue) Close() {
	if c.Enabled() {
		speaker.Close()
		c.ready = false
	}
}
