package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

func countSamples(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestSolvedStreamerLength(t *testing.T) {
	s := SolvedStreamer(sampleRate)
	if s == nil {
		t.Fatal("SolvedStreamer returned nil")
	}
	want := len(solvedNotes) * sampleRate.N(noteLength)
	if got := countSamples(s); got != want {
		t.Errorf("solved arpeggio has %d samples, want %d", got, want)
	}
}

func TestMoveStreamerLength(t *testing.T) {
	s := MoveStreamer(sampleRate)
	if s == nil {
		t.Fatal("MoveStreamer returned nil")
	}
	if got, want := countSamples(s), sampleRate.N(thudLength); got != want {
		t.Errorf("tick has %d samples, want %d", got, want)
	}
}

func TestToneAboveNyquistIsRejected(t *testing.T) {
	// generators.SineTone refuses frequencies at or above half the rate.
	if s := MoveStreamer(beep.SampleRate(800)); s != nil {
		t.Error("expected nil streamer for a 440 Hz tone at 800 Hz")
	}
}

func TestUninitializedChimeIsSilent(t *testing.T) {
	c := NewChime()
	c.PlaySolved()
	c.PlayMove()
	c.Close()
	if c.initialized {
		t.Error("Close marked an unopened chime as initialized")
	}
}
