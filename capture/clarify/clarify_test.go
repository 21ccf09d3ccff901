package clarify

import (
	"errors"
	"testing"
	"time"

	"github.com/echonote/backend/services/voice/entity"
)

func noSleep(time.Duration) {}

func TestTwoItemQueue(t *testing.T) {
	var itemAnswers []bool
	items := []*Item{
		{
			Idea:     &entity.Idea{Content: "build an app"},
			Question: "Is this related to your earlier app idea?",
			OnAnswer: func(accepted bool) { itemAnswers = append(itemAnswers, accepted) },
		},
		{
			Idea:     &entity.Idea{Content: "call investor"},
			Question: "Should this be linked to the funding idea?",
			OnAnswer: func(accepted bool) { itemAnswers = append(itemAnswers, accepted) },
		},
	}

	var completedWith []bool
	completions := 0
	q := NewQueue(items, func(answers []bool) {
		completions++
		completedWith = answers
	}, WithSleeper(noSleep))

	item, pos, ok := q.Presenting()
	if !ok || pos != 0 || item.Idea.Content != "build an app" {
		t.Fatalf("presenting = %+v at %d (%v)", item, pos, ok)
	}

	if err := q.Answer(true); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if completions != 0 {
		t.Fatal("completed before last answer")
	}

	item, pos, ok = q.Presenting()
	if !ok || pos != 1 || item.Idea.Content != "call investor" {
		t.Fatalf("presenting = %+v at %d (%v)", item, pos, ok)
	}

	if err := q.Answer(false); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if completions != 1 {
		t.Fatalf("completions = %d, want 1", completions)
	}
	if len(completedWith) != 2 || !completedWith[0] || completedWith[1] {
		t.Errorf("answers = %v, want [true false]", completedWith)
	}
	if len(itemAnswers) != 2 || !itemAnswers[0] || itemAnswers[1] {
		t.Errorf("item answers = %v", itemAnswers)
	}
	if !q.Completed() {
		t.Error("queue not completed")
	}
}

func TestEmptyQueueIsInert(t *testing.T) {
	completions := 0
	q := NewQueue(nil, func([]bool) { completions++ }, WithSleeper(noSleep))

	if !q.Completed() {
		t.Error("empty queue not completed")
	}
	if _, _, ok := q.Presenting(); ok {
		t.Error("empty queue presents an item")
	}
	if err := q.Answer(true); !errors.Is(err, ErrQueueCompleted) {
		t.Errorf("Answer on empty queue: %v", err)
	}
	if completions != 0 {
		t.Errorf("empty queue fired onComplete %d times", completions)
	}
}

func TestAnswerAfterCompletionRejected(t *testing.T) {
	q := NewQueue([]*Item{{Question: "link?"}}, nil, WithSleeper(noSleep))

	if err := q.Answer(true); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if err := q.Answer(true); !errors.Is(err, ErrQueueCompleted) {
		t.Errorf("second Answer: %v", err)
	}
}

func TestSettleDelayBeforeCompletion(t *testing.T) {
	var slept []time.Duration
	completedDuringSleep := false
	var q *Queue
	q = NewQueue([]*Item{{Question: "link?"}}, func([]bool) {}, WithSleeper(func(d time.Duration) {
		slept = append(slept, d)
		completedDuringSleep = q.Completed()
	}))

	if err := q.Answer(true); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if len(slept) != 1 || slept[0] != 300*time.Millisecond {
		t.Errorf("slept = %v", slept)
	}
	if !completedDuringSleep {
		t.Error("state not settled before delay")
	}
}
