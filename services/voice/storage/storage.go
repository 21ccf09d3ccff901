package storage

import (
	"context"
	"errors"
	"time"

	"github.com/echonote/backend/services/voice/entity"
)

var ErrNotFound = errors.New("not found")

// Storage is the narrow repository the pipeline depends on, so the analysis
// logic stays testable without a live database. The Postgres implementation
// lives in the postgres subpackage.
type Storage interface {
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
	UpsertProfileAPIKey(ctx context.Context, userID, apiKey string) error

	GetDefaultCategories(ctx context.Context) ([]*entity.Category, error)

	InsertIdeas(ctx context.Context, ideas []*entity.Idea) ([]*entity.Idea, error)
	ListIdeas(ctx context.Context, userID string) ([]*entity.Idea, error)
	ListRecentIdeas(ctx context.Context, userID string, since time.Time, limit int) ([]*entity.Idea, error)
	ListIdeasWithEmbeddings(ctx context.Context, userID string, limit int) ([]*entity.Idea, error)
	DeleteIdea(ctx context.Context, userID, ideaID string) error
	FindIdeaByContent(ctx context.Context, userID, content string) (*entity.Idea, error)
	SetMasterIdea(ctx context.Context, userID, ideaID, masterID string) error
}
