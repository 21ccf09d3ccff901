package feedback

import (
	"time"

	"github.com/echonote/backend/services/voice/consts"
	"github.com/echonote/backend/services/voice/entity"
)

// Waveform names the oscillator shape of a tone.
type Waveform string

const (
	Sine     Waveform = "sine"
	Square   Waveform = "square"
	Triangle Waveform = "triangle"
)

// Tone is a single synthesized beep.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Waveform  Waveform
	Volume    float64
}

// TonePlayer renders one tone. Playback is synchronous.
type TonePlayer interface {
	Play(tone Tone) error
}

// sequenceGap separates the cues of consecutive ideas in a batch.
const sequenceGap = 200 * time.Millisecond

var (
	mainIdeaSaved     = []Tone{{Frequency: 800, Duration: 200 * time.Millisecond, Waveform: Sine, Volume: 0.4}}
	subComponentSaved = []Tone{{Frequency: 600, Duration: 100 * time.Millisecond, Waveform: Square, Volume: 0.25}}
	followUpSaved     = []Tone{{Frequency: 1000, Duration: 150 * time.Millisecond, Waveform: Triangle, Volume: 0.3}}

	clarificationNeeded = []Tone{
		{Frequency: 650, Duration: 150 * time.Millisecond, Waveform: Sine, Volume: 0.35},
		{Frequency: 850, Duration: 150 * time.Millisecond, Waveform: Sine, Volume: 0.35},
	}
	ideasLinked = []Tone{
		{Frequency: 500, Duration: 100 * time.Millisecond, Waveform: Sine, Volume: 0.3},
		{Frequency: 700, Duration: 100 * time.Millisecond, Waveform: Sine, Volume: 0.3},
		{Frequency: 900, Duration: 100 * time.Millisecond, Waveform: Sine, Volume: 0.3},
	}
)

const (
	clarificationGap = 50 * time.Millisecond
	linkedGap        = 30 * time.Millisecond
)

// Controller plays audio cues for saved ideas.
type Controller struct {
	player TonePlayer
	sleep  func(time.Duration)
}

type Option func(*Controller)

// WithSleeper replaces the gap timer, used by tests.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(c *Controller) {
		c.sleep = sleep
	}
}

func New(player TonePlayer, opts ...Option) *Controller {
	c := &Controller{
		player: player,
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) playTones(tones []Tone, gap time.Duration) error {
	for i, tone := range tones {
		if i > 0 && gap > 0 {
			c.sleep(gap)
		}
		if err := c.player.Play(tone); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) MainIdeaSaved() error {
	return c.playTones(mainIdeaSaved, 0)
}

func (c *Controller) SubComponentSaved() error {
	return c.playTones(subComponentSaved, 0)
}

func (c *Controller) FollowUpSaved() error {
	return c.playTones(followUpSaved, 0)
}

func (c *Controller) ClarificationNeeded() error {
	return c.playTones(clarificationNeeded, clarificationGap)
}

func (c *Controller) IdeasLinked() error {
	return c.playTones(ideasLinked, linkedGap)
}

// PlaySequence plays one cue per idea in slice order, pausing between
// consecutive cues. Unknown idea types get the main-idea cue.
func (c *Controller) PlaySequence(ideas []*entity.Idea) error {
	for i, idea := range ideas {
		if i > 0 {
			c.sleep(sequenceGap)
		}

		var err error
		switch idea.IdeaType {
		case consts.IdeaTypeSubComponent:
			err = c.SubComponentSaved()
		case consts.IdeaTypeFollowUp:
			err = c.FollowUpSaved()
		default:
			err = c.MainIdeaSaved()
		}
		if err != nil {
			return err
		}
	}
	return nil
}
