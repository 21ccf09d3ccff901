package feedback

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/echonote/backend/services/voice/entity"
)

type fakePlayer struct {
	played []Tone
	err    error
}

func (f *fakePlayer) Play(tone Tone) error {
	if f.err != nil {
		return f.err
	}
	f.played = append(f.played, tone)
	return nil
}

func newTestController(player TonePlayer) (*Controller, *[]time.Duration) {
	var slept []time.Duration
	c := New(player, WithSleeper(func(d time.Duration) {
		slept = append(slept, d)
	}))
	return c, &slept
}

func TestPlaySequenceCuePerType(t *testing.T) {
	player := &fakePlayer{}
	c, slept := newTestController(player)

	ideas := []*entity.Idea{
		{IdeaType: "main", Sequence: 1},
		{IdeaType: "sub-component", Sequence: 2},
		{IdeaType: "follow-up", Sequence: 3},
	}
	if err := c.PlaySequence(ideas); err != nil {
		t.Fatalf("PlaySequence: %v", err)
	}

	if len(player.played) != 3 {
		t.Fatalf("played %d tones", len(player.played))
	}
	wantFreqs := []float64{800, 600, 1000}
	wantWaves := []Waveform{Sine, Square, Triangle}
	for i, tone := range player.played {
		if tone.Frequency != wantFreqs[i] {
			t.Errorf("tone %d frequency = %v, want %v", i, tone.Frequency, wantFreqs[i])
		}
		if tone.Waveform != wantWaves[i] {
			t.Errorf("tone %d waveform = %v, want %v", i, tone.Waveform, wantWaves[i])
		}
	}

	if len(*slept) != 2 {
		t.Fatalf("slept %d times, want 2", len(*slept))
	}
	for _, d := range *slept {
		if d != 200*time.Millisecond {
			t.Errorf("gap = %v, want 200ms", d)
		}
	}
}

func TestPlaySequenceUnknownTypeFallsBackToMain(t *testing.T) {
	player := &fakePlayer{}
	c, _ := newTestController(player)

	if err := c.PlaySequence([]*entity.Idea{{IdeaType: "mystery"}}); err != nil {
		t.Fatalf("PlaySequence: %v", err)
	}
	if len(player.played) != 1 || player.played[0].Frequency != 800 {
		t.Errorf("played = %+v", player.played)
	}
}

func TestClarificationNeededIsTwoToneChime(t *testing.T) {
	player := &fakePlayer{}
	c, slept := newTestController(player)

	if err := c.ClarificationNeeded(); err != nil {
		t.Fatalf("ClarificationNeeded: %v", err)
	}
	if len(player.played) != 2 {
		t.Fatalf("played %d tones", len(player.played))
	}
	if player.played[0].Frequency != 650 || player.played[1].Frequency != 850 {
		t.Errorf("frequencies = %v, %v", player.played[0].Frequency, player.played[1].Frequency)
	}
	if len(*slept) != 1 || (*slept)[0] != 50*time.Millisecond {
		t.Errorf("slept = %v", *slept)
	}
}

func TestIdeasLinkedIsAscending(t *testing.T) {
	player := &fakePlayer{}
	c, _ := newTestController(player)

	if err := c.IdeasLinked(); err != nil {
		t.Fatalf("IdeasLinked: %v", err)
	}
	if len(player.played) != 3 {
		t.Fatalf("played %d tones", len(player.played))
	}
	prev := 0.0
	for _, tone := range player.played {
		if tone.Frequency <= prev {
			t.Errorf("frequencies not ascending: %+v", player.played)
		}
		prev = tone.Frequency
	}
}

func TestPCMPlayerLazySink(t *testing.T) {
	opened := 0
	var sink bytes.Buffer
	p := NewPCMPlayer(func() (io.Writer, error) {
		opened++
		return &sink, nil
	})

	if opened != 0 {
		t.Fatal("sink opened before first play")
	}

	tone := Tone{Frequency: 800, Duration: 200 * time.Millisecond, Waveform: Sine, Volume: 0.4}
	if err := p.Play(tone); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if err := p.Play(tone); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if opened != 1 {
		t.Errorf("sink opened %d times, want 1", opened)
	}

	wantBytes := 2 * sampleRate / 5 * 2 // 0.2s of 16-bit samples, two plays
	if sink.Len() != wantBytes {
		t.Errorf("wrote %d bytes, want %d", sink.Len(), wantBytes)
	}
}
