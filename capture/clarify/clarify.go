package clarify

import (
	"errors"
	"time"

	"github.com/echonote/backend/services/voice/entity"
)

var ErrQueueCompleted = errors.New("clarification queue already completed")

// settleDelay lets the last answer register before completion fires, so
// a rapid final tap is not swallowed by the teardown.
const settleDelay = 300 * time.Millisecond

// Item is one pending yes/no clarification.
type Item struct {
	Idea     *entity.Idea
	Question string

	// OnAnswer, when set, observes the individual answer before the
	// queue advances.
	OnAnswer func(accepted bool)
}

// Queue walks a fixed list of clarifications in order. Every item must be
// answered; there is no skip or cancel.
type Queue struct {
	items      []*Item
	answers    []bool
	pos        int
	completed  bool
	onComplete func(answers []bool)
	sleep      func(time.Duration)
}

type Option func(*Queue)

// WithSleeper replaces the settle timer, used by tests.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(q *Queue) {
		q.sleep = sleep
	}
}

// NewQueue builds a queue over items. An empty item list yields a queue
// that is already completed and never fires onComplete.
func NewQueue(items []*Item, onComplete func(answers []bool), opts ...Option) *Queue {
	q := &Queue{
		items:      items,
		answers:    make([]bool, 0, len(items)),
		onComplete: onComplete,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(q)
	}
	if len(items) == 0 {
		q.completed = true
	}
	return q
}

// Presenting returns the item currently awaiting an answer and its
// zero-based position, or false when the queue is done.
func (q *Queue) Presenting() (*Item, int, bool) {
	if q.completed {
		return nil, 0, false
	}
	return q.items[q.pos], q.pos, true
}

// Len reports the total number of items.
func (q *Queue) Len() int {
	return len(q.items)
}

// Completed reports whether every item has been answered.
func (q *Queue) Completed() bool {
	return q.completed
}

// Answers returns the recorded answers in presentation order.
func (q *Queue) Answers() []bool {
	return q.answers
}

// Answer records the response for the current item, fires its callback
// and advances. The final answer completes the queue after the settle
// delay and fires onComplete exactly once.
func (q *Queue) Answer(accepted bool) error {
	if q.completed {
		return ErrQueueCompleted
	}

	item := q.items[q.pos]
	q.answers = append(q.answers, accepted)
	if item.OnAnswer != nil {
		item.OnAnswer(accepted)
	}

	q.pos++
	if q.pos < len(q.items) {
		return nil
	}

	q.completed = true
	q.sleep(settleDelay)
	if q.onComplete != nil {
		q.onComplete(q.answers)
	}

	return nil
}
