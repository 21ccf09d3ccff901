package feedback

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const sampleRate = 16000

// PCMPlayer synthesizes 16-bit mono PCM frames and writes them to a sink,
// typically an audio device pipe. The sink is opened on first use.
type PCMPlayer struct {
	open func() (io.Writer, error)
	sink io.Writer
}

func NewPCMPlayer(open func() (io.Writer, error)) *PCMPlayer {
	return &PCMPlayer{open: open}
}

func (p *PCMPlayer) Play(tone Tone) error {
	if p.sink == nil {
		sink, err := p.open()
		if err != nil {
			return fmt.Errorf("failed to open audio sink: %w", err)
		}
		p.sink = sink
	}

	frames := synthesize(tone)
	buf := make([]byte, 2*len(frames))
	for i, sample := range frames {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(int16(sample*math.MaxInt16)))
	}

	if _, err := p.sink.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio frames: %w", err)
	}
	return nil
}

// synthesize renders the tone with a 10ms attack ramp and an exponential
// decay toward silence over its duration.
func synthesize(tone Tone) []float64 {
	n := int(float64(sampleRate) * tone.Duration.Seconds())
	attack := sampleRate / 100

	frames := make([]float64, n)
	for i := range frames {
		t := float64(i) / sampleRate

		gain := tone.Volume
		if i < attack {
			gain *= float64(i) / float64(attack)
		} else {
			gain *= math.Pow(0.01/tone.Volume, float64(i-attack)/float64(n-attack))
		}

		frames[i] = gain * oscillate(tone.Waveform, tone.Frequency, t)
	}
	return frames
}

func oscillate(w Waveform, freq, t float64) float64 {
	phase := freq * t
	switch w {
	case Square:
		if math.Mod(phase, 1) < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		return 4*math.Abs(math.Mod(phase, 1)-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
