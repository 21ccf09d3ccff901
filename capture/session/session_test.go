package session

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/echonote/backend/capture/feedback"
	"github.com/echonote/backend/capture/recorder"
	"github.com/echonote/backend/services/voice/entity"
)

type fakeDevice struct {
	blob    []byte
	writer  *io.PipeWriter
	written chan struct{}
}

func (d *fakeDevice) Start(_ context.Context) (io.ReadCloser, error) {
	pr, pw := io.Pipe()
	d.writer = pw
	d.written = make(chan struct{})
	blob := d.blob
	go func() {
		defer close(d.written)
		_, _ = pw.Write(blob)
	}()
	return pr, nil
}

func (d *fakeDevice) Release() error {
	<-d.written
	d.writer.Close()
	return nil
}

type fakeTransport struct {
	result *entity.AnalysisResult
	err    error

	savedRecordingIDs []string
	savedIdeas        []*entity.Idea
	links             map[string]string
}

func (f *fakeTransport) TranscribeAndAnalyze(_ context.Context, _ []byte) (*entity.AnalysisResult, error) {
	return f.result, f.err
}

func (f *fakeTransport) SaveIdeas(_ context.Context, recordingID string, ideas []*entity.Idea) ([]*entity.Idea, error) {
	f.savedRecordingIDs = append(f.savedRecordingIDs, recordingID)
	for _, idea := range ideas {
		idea.ID = "saved-" + idea.Content
		idea.ParentRecordingID = recordingID
	}
	f.savedIdeas = append(f.savedIdeas, ideas...)
	return ideas, nil
}

func (f *fakeTransport) LinkIdea(_ context.Context, ideaID, masterContent string) error {
	if f.links == nil {
		f.links = make(map[string]string)
	}
	f.links[ideaID] = masterContent
	return nil
}

type fakePlayer struct {
	frequencies []float64
}

func (f *fakePlayer) Play(tone feedback.Tone) error {
	f.frequencies = append(f.frequencies, tone.Frequency)
	return nil
}

func noSleep(time.Duration) {}

func buildSession(transport *fakeTransport) (*Session, *fakePlayer) {
	device := &fakeDevice{blob: []byte("encoded-audio")}
	rec := recorder.New(device)
	player := &fakePlayer{}
	cues := feedback.New(player, feedback.WithSleeper(noSleep))
	return New(rec, transport, cues), player
}

func record(t *testing.T, s *Session) {
	t.Helper()
	if err := s.StartCapture(context.Background()); err != nil {
		t.Fatalf("StartCapture: %v", err)
	}
}

func TestUnflaggedBatchPersistsImmediately(t *testing.T) {
	transport := &fakeTransport{
		result: &entity.AnalysisResult{
			Text: "buy milk and call mom",
			Ideas: []*entity.Idea{
				{Content: "call mom", IdeaType: "follow-up", Sequence: 2},
				{Content: "buy milk", IdeaType: "main", Sequence: 1},
			},
			MultipleIdeas: true,
		},
	}
	s, player := buildSession(transport)

	record(t, s)
	outcome, err := s.FinishCapture(context.Background())
	if err != nil {
		t.Fatalf("FinishCapture: %v", err)
	}

	if outcome.Queue != nil {
		t.Fatal("unflagged batch produced a clarify queue")
	}
	if len(transport.savedRecordingIDs) != 1 {
		t.Fatalf("saved under %d recording ids", len(transport.savedRecordingIDs))
	}
	if transport.savedRecordingIDs[0] == "" {
		t.Error("recording id is empty")
	}

	if len(outcome.Saved) != 2 {
		t.Fatalf("saved %d ideas", len(outcome.Saved))
	}
	for i, idea := range outcome.Saved {
		if idea.Sequence != i+1 {
			t.Errorf("idea %d sequence = %d", i, idea.Sequence)
		}
		if idea.ParentRecordingID != transport.savedRecordingIDs[0] {
			t.Errorf("idea %d recording id = %q", i, idea.ParentRecordingID)
		}
	}

	// One cue per idea in sequence order: main (800) then follow-up (1000).
	if len(player.frequencies) != 2 || player.frequencies[0] != 800 || player.frequencies[1] != 1000 {
		t.Errorf("cues = %v", player.frequencies)
	}

	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
}

func TestFlaggedBatchDefersPersistence(t *testing.T) {
	transport := &fakeTransport{
		result: &entity.AnalysisResult{
			Text: "extend the app idea",
			Ideas: []*entity.Idea{
				{
					Content:               "add dark mode",
					IdeaType:              "sub-component",
					Sequence:              1,
					NeedsClarification:    true,
					ClarificationQuestion: "Is this part of your app idea?",
					PotentialMasterIdea:   "build a note-taking app",
				},
				{Content: "write release notes", IdeaType: "follow-up", Sequence: 2},
			},
		},
	}
	s, player := buildSession(transport)

	record(t, s)
	outcome, err := s.FinishCapture(context.Background())
	if err != nil {
		t.Fatalf("FinishCapture: %v", err)
	}

	if outcome.Queue == nil {
		t.Fatal("flagged batch produced no queue")
	}
	if len(transport.savedIdeas) != 0 {
		t.Fatal("ideas persisted before clarifications answered")
	}
	if s.State() != StateClarifying {
		t.Fatalf("state = %v, want clarifying", s.State())
	}

	// Clarification chime plays when the queue is presented.
	if len(player.frequencies) != 2 || player.frequencies[0] != 650 || player.frequencies[1] != 850 {
		t.Fatalf("cues before answers = %v", player.frequencies)
	}

	if err := s.StartCapture(context.Background()); !errors.Is(err, ErrBusy) {
		t.Fatalf("StartCapture during clarification: %v", err)
	}

	item, _, ok := outcome.Queue.Presenting()
	if !ok || item.Question != "Is this part of your app idea?" {
		t.Fatalf("presenting = %+v (%v)", item, ok)
	}
	if err := outcome.Queue.Answer(true); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if len(transport.savedIdeas) != 2 {
		t.Fatalf("saved %d ideas after completion", len(transport.savedIdeas))
	}
	if len(transport.savedRecordingIDs) != 1 {
		t.Fatalf("recording ids = %v", transport.savedRecordingIDs)
	}

	want := transport.links["saved-add dark mode"]
	if want != "build a note-taking app" {
		t.Errorf("links = %v", transport.links)
	}

	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
	if err := s.StartCapture(context.Background()); err != nil {
		t.Errorf("StartCapture after completion: %v", err)
	}
}

func TestRejectedClarificationSkipsLink(t *testing.T) {
	transport := &fakeTransport{
		result: &entity.AnalysisResult{
			Text: "another thought",
			Ideas: []*entity.Idea{
				{
					Content:             "new feature",
					IdeaType:            "main",
					Sequence:            1,
					NeedsClarification:  true,
					PotentialMasterIdea: "old project",
				},
			},
		},
	}
	s, _ := buildSession(transport)

	record(t, s)
	outcome, err := s.FinishCapture(context.Background())
	if err != nil {
		t.Fatalf("FinishCapture: %v", err)
	}

	if err := outcome.Queue.Answer(false); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if len(transport.savedIdeas) != 1 {
		t.Fatalf("saved %d ideas", len(transport.savedIdeas))
	}
	if len(transport.links) != 0 {
		t.Errorf("links = %v, want none", transport.links)
	}
}

func TestEmptyAnalysisIsError(t *testing.T) {
	transport := &fakeTransport{
		result: &entity.AnalysisResult{Text: "silence", Ideas: nil},
	}
	s, _ := buildSession(transport)

	record(t, s)
	_, err := s.FinishCapture(context.Background())
	if !errors.Is(err, ErrNothingSaved) {
		t.Fatalf("err = %v, want ErrNothingSaved", err)
	}
	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
}

func TestTransportFailureReturnsToIdle(t *testing.T) {
	transport := &fakeTransport{err: errors.New("backend unavailable")}
	s, _ := buildSession(transport)

	record(t, s)
	if _, err := s.FinishCapture(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
	if err := s.StartCapture(context.Background()); err != nil {
		t.Errorf("StartCapture after failure: %v", err)
	}
}

func TestCancelCapture(t *testing.T) {
	transport := &fakeTransport{}
	s, _ := buildSession(transport)

	record(t, s)
	if err := s.CancelCapture(); err != nil {
		t.Fatalf("CancelCapture: %v", err)
	}
	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
	if _, err := s.FinishCapture(context.Background()); !errors.Is(err, recorder.ErrNotRecording) {
		t.Errorf("FinishCapture after cancel: %v", err)
	}
}
