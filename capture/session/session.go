package session

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/echonote/backend/capture/clarify"
	"github.com/echonote/backend/capture/feedback"
	"github.com/echonote/backend/capture/recorder"
	"github.com/echonote/backend/pkg/gen"
	"github.com/echonote/backend/pkg/logger"
	"github.com/echonote/backend/services/voice/entity"
)

var (
	ErrBusy         = errors.New("a capture is already being processed")
	ErrNothingSaved = errors.New("no ideas were recognized")
)

// Transport is the backend surface one capture needs.
type Transport interface {
	TranscribeAndAnalyze(ctx context.Context, blob []byte) (*entity.AnalysisResult, error)
	SaveIdeas(ctx context.Context, recordingID string, ideas []*entity.Idea) ([]*entity.Idea, error)
	LinkIdea(ctx context.Context, ideaID, masterContent string) error
}

// State is the session lifecycle position.
type State int

const (
	StateIdle State = iota
	StateRecording
	StateAnalyzing
	StateClarifying
)

// Outcome is the result of finishing one capture. When Queue is non-nil
// the ideas are not yet persisted; the caller must drive the queue to
// completion.
type Outcome struct {
	Result *entity.AnalysisResult
	Saved  []*entity.Idea
	Queue  *clarify.Queue
}

// Session orchestrates one voice capture end to end: record, transcribe,
// clarify, persist, play feedback.
type Session struct {
	rec    *recorder.Recorder
	client Transport
	cues   *feedback.Controller
	newID  gen.UUIDGenerator

	state State
}

func New(rec *recorder.Recorder, client Transport, cues *feedback.Controller) *Session {
	return &Session{
		rec:    rec,
		client: client,
		cues:   cues,
		newID:  gen.UUID(),
		state:  StateIdle,
	}
}

func (s *Session) State() State {
	return s.state
}

// StartCapture begins recording. A capture still being analyzed or
// clarified blocks a new one.
func (s *Session) StartCapture(ctx context.Context) error {
	if s.state != StateIdle {
		return ErrBusy
	}

	if err := s.rec.Start(ctx); err != nil {
		return err
	}
	s.state = StateRecording

	return nil
}

// CancelCapture discards the in-progress recording.
func (s *Session) CancelCapture() error {
	if s.state != StateRecording {
		return nil
	}
	s.state = StateIdle
	return s.rec.Cancel()
}

// FinishCapture stops the recording, sends the blob for analysis and
// reconciles the result. Ideas without clarification flags are persisted
// immediately; flagged ideas defer the whole batch behind a queue.
func (s *Session) FinishCapture(ctx context.Context) (*Outcome, error) {
	if s.state != StateRecording {
		return nil, recorder.ErrNotRecording
	}

	blob, err := s.rec.Stop()
	if err != nil {
		s.state = StateIdle
		return nil, err
	}

	s.state = StateAnalyzing
	result, err := s.client.TranscribeAndAnalyze(ctx, blob)
	if err != nil {
		s.state = StateIdle
		return nil, err
	}
	if len(result.Ideas) == 0 {
		s.state = StateIdle
		return nil, ErrNothingSaved
	}

	flagged := flaggedItems(result.Ideas)
	if len(flagged) == 0 {
		saved, err := s.persist(ctx, result.Ideas)
		s.state = StateIdle
		if err != nil {
			return nil, err
		}
		return &Outcome{Result: result, Saved: saved}, nil
	}

	s.state = StateClarifying
	if err := s.cues.ClarificationNeeded(); err != nil {
		logger.Warn(ctx, "clarification cue failed", "error", err)
	}

	queue := clarify.NewQueue(flagged, func(answers []bool) {
		s.completeClarifications(ctx, result.Ideas, flagged, answers)
		s.state = StateIdle
	})

	return &Outcome{Result: result, Queue: queue}, nil
}

func flaggedItems(ideas []*entity.Idea) []*clarify.Item {
	var items []*clarify.Item
	for _, idea := range ideas {
		if !idea.NeedsClarification {
			continue
		}
		items = append(items, &clarify.Item{Idea: idea, Question: idea.ClarificationQuestion})
	}
	return items
}

// persist saves the batch under one freshly generated recording id and
// plays the per-idea feedback sequence.
func (s *Session) persist(ctx context.Context, ideas []*entity.Idea) ([]*entity.Idea, error) {
	sort.SliceStable(ideas, func(i, j int) bool {
		return ideas[i].Sequence < ideas[j].Sequence
	})

	recordingID := s.newID.Next().String()
	saved, err := s.client.SaveIdeas(ctx, recordingID, ideas)
	if err != nil {
		return nil, fmt.Errorf("failed to save ideas: %w", err)
	}
	logger.Info(ctx, "capture persisted", "recording_id", recordingID, "ideas", len(saved))

	if err := s.cues.PlaySequence(saved); err != nil {
		logger.Warn(ctx, "feedback sequence failed", "error", err)
	}

	return saved, nil
}

// completeClarifications persists the full batch, then applies the
// accepted master links.
func (s *Session) completeClarifications(ctx context.Context, ideas []*entity.Idea, flagged []*clarify.Item, answers []bool) {
	saved, err := s.persist(ctx, ideas)
	if err != nil {
		logger.ErrorErr(ctx, "failed to persist clarified batch", err)
		return
	}

	savedByContent := make(map[string]*entity.Idea, len(saved))
	for _, idea := range saved {
		savedByContent[idea.Content] = idea
	}

	linked := false
	for i, item := range flagged {
		if i >= len(answers) || !answers[i] || item.Idea.PotentialMasterIdea == "" {
			continue
		}

		idea := savedByContent[item.Idea.Content]
		if idea == nil {
			continue
		}
		if err := s.client.LinkIdea(ctx, idea.ID, item.Idea.PotentialMasterIdea); err != nil {
			logger.Warn(ctx, "failed to link idea", "idea_id", idea.ID, "error", err)
			continue
		}
		linked = true
	}

	if linked {
		if err := s.cues.IdeasLinked(); err != nil {
			logger.Warn(ctx, "link cue failed", "error", err)
		}
	}
}
