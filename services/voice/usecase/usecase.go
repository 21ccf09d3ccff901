package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/echonote/backend/pkg/base64chunk"
	"github.com/echonote/backend/pkg/logger"
	"github.com/echonote/backend/services/voice/consts"
	"github.com/echonote/backend/services/voice/entity"
	"github.com/echonote/backend/services/voice/storage"
)

var (
	ErrInvalidAudio        = errors.New("invalid audio payload")
	ErrEmptyAudio          = errors.New("no audio data provided")
	ErrAudioTooLarge       = errors.New("audio exceeds the maximum allowed size")
	ErrAPIKeyNotConfigured = errors.New("openai api key not found, configure it in settings")
)

// AIClient is the hosted-AI surface the pipeline needs: speech-to-text,
// text embeddings and JSON-mode chat completion. The API key is passed per
// call because every user brings their own stored credential.
type AIClient interface {
	Transcribe(ctx context.Context, apiKey string, audio []byte) (string, error)
	Embed(ctx context.Context, apiKey, input string) ([]float64, error)
	Complete(ctx context.Context, apiKey, system, user string) (string, error)
}

type Usecase interface {
	// ProcessVoice runs the whole capture pipeline server side: decode,
	// transcribe, analyze. After a successful transcription it never
	// fails; analysis trouble degrades to a single fallback idea.
	ProcessVoice(ctx context.Context, userID, audioBase64 string) (*entity.AnalysisResult, error)

	SaveIdeas(ctx context.Context, userID, recordingID string, ideas []*entity.Idea) ([]*entity.Idea, error)
	ListIdeas(ctx context.Context, userID string) ([]*entity.Idea, error)
	DeleteIdea(ctx context.Context, userID, ideaID string) error
	LinkIdea(ctx context.Context, userID, ideaID, masterContent string) error
	DefaultCategories(ctx context.Context) ([]*entity.Category, error)
	UpdateAPIKey(ctx context.Context, userID, apiKey string) error
}

type usecase struct {
	storage storage.Storage
	ai      AIClient
}

func New(stg storage.Storage, ai AIClient) Usecase {
	return &usecase{
		storage: stg,
		ai:      ai,
	}
}

func (u *usecase) ProcessVoice(ctx context.Context, userID, audioBase64 string) (*entity.AnalysisResult, error) {
	log := logger.FromContext(ctx)

	audio, err := base64chunk.Decode(audioBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAudio, err)
	}
	if len(audio) == 0 {
		return nil, ErrEmptyAudio
	}
	if len(audio) > consts.MaxAudioSize {
		return nil, ErrAudioTooLarge
	}
	log.Debug("audio decoded", "size", len(audio))

	profile, err := u.storage.GetProfile(ctx, userID)
	if err != nil || profile == nil || profile.APIKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}

	text, err := u.ai.Transcribe(ctx, profile.APIKey, audio)
	if err != nil {
		log.Error("transcription failed", "error", err, "audio_size", len(audio))
		return nil, fmt.Errorf("transcription failed: %w", err)
	}
	log.Info("audio transcribed", "transcript_length", len(text))

	// Everything past this point is best effort: the user's speech is
	// already recovered and must not be lost.
	similar := u.findSimilarIdeas(ctx, userID, profile.APIKey, text)
	recent := u.recentIdeas(ctx, userID)
	categories := u.categoryNames(ctx)

	ideas := u.analyzeTranscript(ctx, profile.APIKey, text, categories, recent, similar)
	normalizeIdeas(ideas, text)

	return &entity.AnalysisResult{
		Text:          text,
		Ideas:         ideas,
		MultipleIdeas: len(ideas) > 1,
		SimilarIdeas:  similar,
	}, nil
}

func (u *usecase) SaveIdeas(ctx context.Context, userID, recordingID string, ideas []*entity.Idea) ([]*entity.Idea, error) {
	if len(ideas) == 0 {
		return nil, fmt.Errorf("no ideas to save")
	}

	for _, idea := range ideas {
		idea.UserID = userID
		idea.ParentRecordingID = recordingID
	}

	saved, err := u.storage.InsertIdeas(ctx, ideas)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "ideas persisted", "count", len(saved), "parent_recording_id", recordingID)

	return saved, nil
}

func (u *usecase) ListIdeas(ctx context.Context, userID string) ([]*entity.Idea, error) {
	return u.storage.ListIdeas(ctx, userID)
}

func (u *usecase) DeleteIdea(ctx context.Context, userID, ideaID string) error {
	return u.storage.DeleteIdea(ctx, userID, ideaID)
}

// LinkIdea records an accepted link clarification: the idea's master is
// resolved by exact content match among the user's stored ideas. An
// unresolved master is logged and ignored, never an error to the caller.
func (u *usecase) LinkIdea(ctx context.Context, userID, ideaID, masterContent string) error {
	log := logger.FromContext(ctx)

	master, err := u.storage.FindIdeaByContent(ctx, userID, masterContent)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("master idea not found, link skipped", "idea_id", ideaID)
			return nil
		}
		return err
	}

	if err := u.storage.SetMasterIdea(ctx, userID, ideaID, master.ID); err != nil {
		return err
	}
	log.Info("ideas linked", "idea_id", ideaID, "master_idea_id", master.ID)

	return nil
}

func (u *usecase) DefaultCategories(ctx context.Context) ([]*entity.Category, error) {
	return u.storage.GetDefaultCategories(ctx)
}

func (u *usecase) UpdateAPIKey(ctx context.Context, userID, apiKey string) error {
	return u.storage.UpsertProfileAPIKey(ctx, userID, apiKey)
}

func (u *usecase) recentIdeas(ctx context.Context, userID string) []*entity.Idea {
	since := time.Now().Add(-consts.RecentIdeasWindow)

	recent, err := u.storage.ListRecentIdeas(ctx, userID, since, consts.RecentIdeasLimit)
	if err != nil {
		logger.Warn(ctx, "failed to load recent ideas, continuing without", "error", err)
		return nil
	}

	return recent
}

func (u *usecase) categoryNames(ctx context.Context) []string {
	categories, err := u.storage.GetDefaultCategories(ctx)
	if err != nil || len(categories) == 0 {
		if err != nil {
			logger.Warn(ctx, "failed to load categories, using defaults", "error", err)
		}
		return consts.DefaultCategoryNames
	}

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}

	return names
}
