// Package audio plays the puzzle's feedback tones.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	noteLength = 90 * time.Millisecond
	thudLength = 60 * time.Millisecond
)

// solvedNotes is a rising arpeggio (C6, E6, G6).
var solvedNotes = []float64{1046.50, 1318.51, 1567.98}

// Chime plays short tones through the speaker.
type Chime struct {
	mu          sync.Mutex
	initialized bool
}

// NewChime creates a chime. Call Initialize before playing.
func NewChime() *Chime {
	return &Chime{}
}

// Initialize sets up the speaker. Safe to call more than once.
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Close releases the speaker.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Close()
	c.initialized = false
}

// PlaySolved plays the solved arpeggio.
func (c *Chime) PlaySolved() {
	c.play(SolvedStreamer(sampleRate))
}

// PlayMove plays a short tick after a committed gesture.
func (c *Chime) PlayMove() {
	c.play(MoveStreamer(sampleRate))
}

func (c *Chime) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || s == nil {
		return
	}
	speaker.Play(s)
}

// SolvedStreamer builds the solved arpeggio at the given rate.
func SolvedStreamer(rate beep.SampleRate) beep.Streamer {
	var notes []beep.Streamer
	for _, freq := range solvedNotes {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil
		}
		notes = append(notes, beep.Take(rate.N(noteLength), tone))
	}
	return beep.Seq(notes...)
}

// MoveStreamer builds the gesture tick at the given rate.
func MoveStreamer(rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, 440)
	if err != nil {
		return nil
	}
	return beep.Take(rate.N(thudLength), tone)
}
