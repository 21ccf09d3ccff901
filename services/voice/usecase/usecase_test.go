package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/echonote/backend/pkg/base64chunk"
	"github.com/echonote/backend/services/voice/consts"
	"github.com/echonote/backend/services/voice/entity"
	"github.com/echonote/backend/services/voice/storage"
)

type fakeStorage struct {
	profile     *entity.Profile
	profileErr  error
	categories  []*entity.Category
	recent      []*entity.Idea
	recentErr   error
	embedded    []*entity.Idea
	embeddedErr error

	inserted    []*entity.Idea
	byContent   map[string]*entity.Idea
	masterLinks map[string]string
}

func (f *fakeStorage) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeStorage) UpsertProfileAPIKey(ctx context.Context, userID, apiKey string) error {
	return nil
}

func (f *fakeStorage) GetDefaultCategories(ctx context.Context) ([]*entity.Category, error) {
	return f.categories, nil
}

func (f *fakeStorage) InsertIdeas(ctx context.Context, ideas []*entity.Idea) ([]*entity.Idea, error) {
	f.inserted = append(f.inserted, ideas...)
	return ideas, nil
}

func (f *fakeStorage) ListIdeas(ctx context.Context, userID string) ([]*entity.Idea, error) {
	return f.inserted, nil
}

func (f *fakeStorage) ListRecentIdeas(ctx context.Context, userID string, since time.Time, limit int) ([]*entity.Idea, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	return f.recent, nil
}

func (f *fakeStorage) ListIdeasWithEmbeddings(ctx context.Context, userID string, limit int) ([]*entity.Idea, error) {
	if f.embeddedErr != nil {
		return nil, f.embeddedErr
	}
	return f.embedded, nil
}

func (f *fakeStorage) DeleteIdea(ctx context.Context, userID, ideaID string) error {
	return nil
}

func (f *fakeStorage) FindIdeaByContent(ctx context.Context, userID, content string) (*entity.Idea, error) {
	if idea, ok := f.byContent[content]; ok {
		return idea, nil
	}
	return nil, storage.ErrNotFound
}

func (f *fakeStorage) SetMasterIdea(ctx context.Context, userID, ideaID, masterID string) error {
	if f.masterLinks == nil {
		f.masterLinks = make(map[string]string)
	}
	f.masterLinks[ideaID] = masterID
	return nil
}

type fakeAI struct {
	transcript      string
	transcribeErr   error
	transcribeCalls int

	embedding []float64
	embedErr  error

	completion   string
	completeErr  error
	lastPrompt   string
	lastSystem   string
	completeHits int
}

func (f *fakeAI) Transcribe(ctx context.Context, apiKey string, audio []byte) (string, error) {
	f.transcribeCalls++
	if f.transcribeErr != nil {
		return "", f.transcribeErr
	}
	return f.transcript, nil
}

func (f *fakeAI) Embed(ctx context.Context, apiKey, input string) ([]float64, error) {
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	return f.embedding, nil
}

func (f *fakeAI) Complete(ctx context.Context, apiKey, system, user string) (string, error) {
	f.completeHits++
	f.lastSystem = system
	f.lastPrompt = user
	if f.completeErr != nil {
		return "", f.completeErr
	}
	return f.completion, nil
}

func audioPayload(n int) string {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return base64chunk.Encode(data)
}

func TestProcessVoiceTwoIdeas(t *testing.T) {
	stg := &fakeStorage{
		profile: &entity.Profile{UserID: "u1", APIKey: "sk-test"},
	}
	ai := &fakeAI{
		transcript: "buy milk and call mom",
		embedErr:   errors.New("embedding down"),
		completion: `{"multiple_ideas": true, "ideas": [
			{"content": "buy milk", "idea_type": "main", "sequence": 1, "confidence_level": 0.95},
			{"content": "call mom", "idea_type": "follow-up", "sequence": 2, "confidence_level": 0.9}
		]}`,
	}
	u := New(stg, ai)

	result, err := u.ProcessVoice(context.Background(), "u1", audioPayload(50000))
	if err != nil {
		t.Fatalf("ProcessVoice returned error: %v", err)
	}

	if result.Text != "buy milk and call mom" {
		t.Fatalf("unexpected transcript %q", result.Text)
	}
	if len(result.Ideas) != 2 {
		t.Fatalf("expected 2 ideas, got %d", len(result.Ideas))
	}
	if !result.MultipleIdeas {
		t.Fatal("expected multiple_ideas to be true")
	}
	if result.Ideas[0].Sequence != 1 || result.Ideas[1].Sequence != 2 {
		t.Fatalf("unexpected sequences %d, %d", result.Ideas[0].Sequence, result.Ideas[1].Sequence)
	}
	if result.Ideas[1].IdeaType != consts.IdeaTypeFollowUp {
		t.Fatalf("unexpected idea type %q", result.Ideas[1].IdeaType)
	}
	if result.Ideas[0].OriginalTranscription != "buy milk and call mom" {
		t.Fatal("expected original transcription to be backfilled")
	}
}

func TestProcessVoiceUnrepairableAnalysisFallsBack(t *testing.T) {
	stg := &fakeStorage{
		profile: &entity.Profile{UserID: "u1", APIKey: "sk-test"},
	}
	ai := &fakeAI{
		transcript: "remember to buy milk",
		completion: "I could not produce JSON, sorry.",
	}
	u := New(stg, ai)

	result, err := u.ProcessVoice(context.Background(), "u1", audioPayload(4096))
	if err != nil {
		t.Fatalf("ProcessVoice returned error: %v", err)
	}

	if result.Text != "remember to buy milk" {
		t.Fatalf("transcript lost: %q", result.Text)
	}
	if len(result.Ideas) != 1 {
		t.Fatalf("expected exactly one fallback idea, got %d", len(result.Ideas))
	}
	idea := result.Ideas[0]
	if idea.Content != "remember to buy milk" {
		t.Fatalf("unexpected fallback content %q", idea.Content)
	}
	if !containsString(idea.AIAutoTags, consts.FallbackAutoTag) {
		t.Fatalf("fallback idea missing degraded marker, tags: %v", idea.AIAutoTags)
	}
	if idea.ConfidenceLevel != consts.FallbackConfidence {
		t.Fatalf("unexpected fallback confidence %v", idea.ConfidenceLevel)
	}
	if !containsString(idea.Tags, "action-item") {
		t.Fatalf("expected keyword matching to tag the idea, tags: %v", idea.Tags)
	}
}

func TestProcessVoiceAnalysisErrorFallsBack(t *testing.T) {
	stg := &fakeStorage{
		profile: &entity.Profile{UserID: "u1", APIKey: "sk-test"},
	}
	ai := &fakeAI{
		transcript:  "workout plan for next week",
		completeErr: errors.New("upstream timeout"),
	}
	u := New(stg, ai)

	result, err := u.ProcessVoice(context.Background(), "u1", audioPayload(4096))
	if err != nil {
		t.Fatalf("ProcessVoice returned error: %v", err)
	}
	if len(result.Ideas) != 1 {
		t.Fatalf("expected one fallback idea, got %d", len(result.Ideas))
	}
	if result.Ideas[0].Category != "Health & Fitness" {
		t.Fatalf("expected keyword category, got %q", result.Ideas[0].Category)
	}
}

func TestProcessVoiceRepairableAnalysis(t *testing.T) {
	stg := &fakeStorage{
		profile: &entity.Profile{UserID: "u1", APIKey: "sk-test"},
	}
	ai := &fakeAI{
		transcript: "one idea",
		completion: "```json\n{\"ideas\": [{\"content\": \"one idea\", \"sequence\": 1,}],}\n```",
	}
	u := New(stg, ai)

	result, err := u.ProcessVoice(context.Background(), "u1", audioPayload(4096))
	if err != nil {
		t.Fatalf("ProcessVoice returned error: %v", err)
	}
	if len(result.Ideas) != 1 || result.Ideas[0].Content != "one idea" {
		t.Fatalf("expected repaired analysis to be used, got %+v", result.Ideas)
	}
	if containsString(result.Ideas[0].AIAutoTags, consts.FallbackAutoTag) {
		t.Fatal("repaired analysis must not be marked as fallback")
	}
}

func TestProcessVoiceTranscriptionFailureIsTerminal(t *testing.T) {
	stg := &fakeStorage{
		profile: &entity.Profile{UserID: "u1", APIKey: "sk-test"},
	}
	ai := &fakeAI{
		transcribeErr: errors.New("whisper unavailable"),
	}
	u := New(stg, ai)

	if _, err := u.ProcessVoice(context.Background(), "u1", audioPayload(4096)); err == nil {
		t.Fatal("expected transcription failure to abort the pipeline")
	}
	if ai.completeHits != 0 {
		t.Fatal("analysis must not run when transcription failed")
	}
}

func TestProcessVoiceMissingAPIKey(t *testing.T) {
	stg := &fakeStorage{
		profile: &entity.Profile{UserID: "u1"},
	}
	ai := &fakeAI{transcript: "ignored"}
	u := New(stg, ai)

	_, err := u.ProcessVoice(context.Background(), "u1", audioPayload(4096))
	if !errors.Is(err, ErrAPIKeyNotConfigured) {
		t.Fatalf("expected ErrAPIKeyNotConfigured, got %v", err)
	}
	if ai.transcribeCalls != 0 {
		t.Fatal("transcription must not be attempted without a credential")
	}
}

func TestProcessVoiceEmptyAudio(t *testing.T) {
	stg := &fakeStorage{
		profile: &entity.Profile{UserID: "u1", APIKey: "sk-test"},
	}
	ai := &fakeAI{}
	u := New(stg, ai)

	_, err := u.ProcessVoice(context.Background(), "u1", "")
	if !errors.Is(err, ErrEmptyAudio) {
		t.Fatalf("expected ErrEmptyAudio, got %v", err)
	}
	if ai.transcribeCalls != 0 {
		t.Fatal("no network call expected for empty audio")
	}
}

func TestProcessVoiceInvalidBase64(t *testing.T) {
	stg := &fakeStorage{
		profile: &entity.Profile{UserID: "u1", APIKey: "sk-test"},
	}
	u := New(stg, &fakeAI{})

	if _, err := u.ProcessVoice(context.Background(), "u1", "!!! not base64 !!!"); err == nil {
		t.Fatal("expected error for invalid base64 payload")
	}
}

func TestProcessVoiceSimilaritySearch(t *testing.T) {
	stg := &fakeStorage{
		profile: &entity.Profile{UserID: "u1", APIKey: "sk-test"},
		embedded: []*entity.Idea{
			{ID: "a", Content: "build a todo app", IdeaType: "main", Embedding: []float64{1, 0, 0}},
			{ID: "b", Content: "plan a vacation", IdeaType: "main", Embedding: []float64{0, 1, 0}},
			{ID: "c", Content: "todo app reminders", IdeaType: "sub-component", Embedding: []float64{0.9, 0.1, 0}},
		},
	}
	ai := &fakeAI{
		transcript: "add reminders to the todo app",
		embedding:  []float64{1, 0, 0},
		completion: `{"ideas": [{"content": "add reminders", "sequence": 1}]}`,
	}
	u := New(stg, ai)

	result, err := u.ProcessVoice(context.Background(), "u1", audioPayload(4096))
	if err != nil {
		t.Fatalf("ProcessVoice returned error: %v", err)
	}

	if len(result.SimilarIdeas) != 2 {
		t.Fatalf("expected 2 similar ideas above threshold, got %d", len(result.SimilarIdeas))
	}
	if result.SimilarIdeas[0].ID != "a" {
		t.Fatalf("expected best match first, got %q", result.SimilarIdeas[0].ID)
	}
	for _, s := range result.SimilarIdeas {
		if s.Similarity < consts.SimilarityThreshold {
			t.Fatalf("similarity %v below threshold", s.Similarity)
		}
	}
}

func TestProcessVoicePromptContainsContext(t *testing.T) {
	stg := &fakeStorage{
		profile:    &entity.Profile{UserID: "u1", APIKey: "sk-test"},
		categories: []*entity.Category{{Name: "Projects", IsDefault: true}},
		recent: []*entity.Idea{
			{Content: "launch the newsletter", AIAutoTags: []string{"newsletter"}},
		},
	}
	ai := &fakeAI{
		transcript: "write the second newsletter issue",
		embedErr:   errors.New("down"),
		completion: `{"ideas": [{"content": "write issue two", "sequence": 1}]}`,
	}
	u := New(stg, ai)

	if _, err := u.ProcessVoice(context.Background(), "u1", audioPayload(4096)); err != nil {
		t.Fatalf("ProcessVoice returned error: %v", err)
	}

	for _, want := range []string{"write the second newsletter issue", "Projects", "launch the newsletter"} {
		if !strings.Contains(ai.lastPrompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestNormalizeIdeasReassignsBadSequences(t *testing.T) {
	ideas := []*entity.Idea{
		{Content: "a", Sequence: 1, IdeaType: "main"},
		{Content: "b", Sequence: 1, IdeaType: "bogus-type", ConfidenceLevel: 1.5},
		{Content: "c", Sequence: 9, ConfidenceLevel: -0.2},
	}

	normalizeIdeas(ideas, "transcript")

	for i, idea := range ideas {
		if idea.Sequence != i+1 {
			t.Fatalf("idea %d has sequence %d", i, idea.Sequence)
		}
	}
	if ideas[1].IdeaType != consts.IdeaTypeMain {
		t.Fatalf("unknown type not normalized: %q", ideas[1].IdeaType)
	}
	if ideas[1].ConfidenceLevel != 1 || ideas[2].ConfidenceLevel != 0 {
		t.Fatal("confidence not clamped to [0,1]")
	}
}

func TestSaveIdeasStampsRecordingID(t *testing.T) {
	stg := &fakeStorage{}
	u := New(stg, &fakeAI{})

	ideas := []*entity.Idea{
		{Content: "a", Sequence: 1},
		{Content: "b", Sequence: 2},
	}
	saved, err := u.SaveIdeas(context.Background(), "u1", "rec-1", ideas)
	if err != nil {
		t.Fatalf("SaveIdeas returned error: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("expected 2 saved ideas, got %d", len(saved))
	}
	for _, idea := range saved {
		if idea.ParentRecordingID != "rec-1" {
			t.Fatalf("idea missing recording id: %+v", idea)
		}
		if idea.UserID != "u1" {
			t.Fatalf("idea missing user id: %+v", idea)
		}
	}
}

func TestLinkIdeaResolvesMasterByContent(t *testing.T) {
	stg := &fakeStorage{
		byContent: map[string]*entity.Idea{
			"launch the newsletter": {ID: "master-1", Content: "launch the newsletter"},
		},
	}
	u := New(stg, &fakeAI{})

	if err := u.LinkIdea(context.Background(), "u1", "idea-1", "launch the newsletter"); err != nil {
		t.Fatalf("LinkIdea returned error: %v", err)
	}
	if stg.masterLinks["idea-1"] != "master-1" {
		t.Fatalf("master link not persisted: %v", stg.masterLinks)
	}
}

func TestLinkIdeaUnknownMasterIsIgnored(t *testing.T) {
	stg := &fakeStorage{}
	u := New(stg, &fakeAI{})

	if err := u.LinkIdea(context.Background(), "u1", "idea-1", "no such idea"); err != nil {
		t.Fatalf("LinkIdea returned error: %v", err)
	}
	if len(stg.masterLinks) != 0 {
		t.Fatal("no link should be persisted for unknown master")
	}
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
