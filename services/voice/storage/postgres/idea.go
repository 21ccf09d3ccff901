package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/echonote/backend/pkg/logger"
	"github.com/echonote/backend/services/voice/entity"
	"github.com/echonote/backend/services/voice/storage"
	"github.com/echonote/backend/services/voice/storage/postgres/ent"
	"github.com/echonote/backend/services/voice/storage/postgres/ent/idea"
	"github.com/google/uuid"
)

func (s *store) InsertIdeas(ctx context.Context, ideas []*entity.Idea) ([]*entity.Idea, error) {
	log := logger.FromContext(ctx)

	builders := make([]*ent.IdeaCreate, len(ideas))
	for i, item := range ideas {
		userUUID, err := uuid.Parse(item.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse user id: %w", err)
		}
		recordingUUID, err := uuid.Parse(item.ParentRecordingID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse parent recording id: %w", err)
		}

		create := s.Idea.Create().
			SetUserID(userUUID).
			SetContent(item.Content).
			SetOriginalTranscription(item.OriginalTranscription).
			SetIdeaType(idea.IdeaType(item.IdeaType)).
			SetSequence(item.Sequence).
			SetTags(item.Tags).
			SetAiAutoTags(item.AIAutoTags).
			SetConfidenceLevel(item.ConfidenceLevel).
			SetNeedsClarification(item.NeedsClarification).
			SetParentRecordingID(recordingUUID)

		if item.Category != "" {
			create = create.SetCategory(item.Category)
		}
		if item.ClarificationQuestion != "" {
			create = create.SetClarificationQuestion(item.ClarificationQuestion)
		}
		if item.MasterIdeaID != nil {
			masterUUID, err := uuid.Parse(*item.MasterIdeaID)
			if err != nil {
				return nil, fmt.Errorf("failed to parse master idea id: %w", err)
			}
			create = create.SetMasterIdeaID(masterUUID)
		}
		if len(item.Embedding) > 0 {
			create = create.SetEmbedding(item.Embedding)
		}

		builders[i] = create
	}

	saved, err := s.Idea.CreateBulk(builders...).Save(ctx)
	if err != nil {
		log.Error("failed to insert ideas", "error", err, "count", len(ideas))
		return nil, fmt.Errorf("failed to insert ideas: %w", err)
	}
	log.Debug("inserted ideas", "count", len(saved))

	return makeIdeasEntToEntity(saved), nil
}

func (s *store) ListIdeas(ctx context.Context, userID string) ([]*entity.Idea, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}

	rows, err := s.Idea.Query().
		Where(idea.UserID(userUUID)).
		Order(ent.Desc(idea.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}

	return makeIdeasEntToEntity(rows), nil
}

func (s *store) ListRecentIdeas(ctx context.Context, userID string, since time.Time, limit int) ([]*entity.Idea, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}

	rows, err := s.Idea.Query().
		Where(
			idea.UserID(userUUID),
			idea.CreatedAtGTE(since),
		).
		Order(ent.Desc(idea.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent ideas: %w", err)
	}

	return makeIdeasEntToEntity(rows), nil
}

func (s *store) ListIdeasWithEmbeddings(ctx context.Context, userID string, limit int) ([]*entity.Idea, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}

	rows, err := s.Idea.Query().
		Where(
			idea.UserID(userUUID),
			idea.EmbeddingNotNil(),
		).
		Order(ent.Desc(idea.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas with embeddings: %w", err)
	}

	return makeIdeasEntToEntity(rows), nil
}

func (s *store) DeleteIdea(ctx context.Context, userID, ideaID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("failed to parse user id: %w", err)
	}
	ideaUUID, err := uuid.Parse(ideaID)
	if err != nil {
		return fmt.Errorf("failed to parse idea id: %w", err)
	}

	deleted, err := s.Idea.Delete().
		Where(
			idea.ID(ideaUUID),
			idea.UserID(userUUID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}
	if deleted == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s *store) FindIdeaByContent(ctx context.Context, userID, content string) (*entity.Idea, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}

	row, err := s.Idea.Query().
		Where(
			idea.UserID(userUUID),
			idea.Content(content),
		).
		Order(ent.Desc(idea.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find idea by content: %w", err)
	}

	return makeIdeaEntToEntity(row), nil
}

func (s *store) SetMasterIdea(ctx context.Context, userID, ideaID, masterID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("failed to parse user id: %w", err)
	}
	ideaUUID, err := uuid.Parse(ideaID)
	if err != nil {
		return fmt.Errorf("failed to parse idea id: %w", err)
	}
	masterUUID, err := uuid.Parse(masterID)
	if err != nil {
		return fmt.Errorf("failed to parse master idea id: %w", err)
	}

	updated, err := s.Idea.Update().
		Where(
			idea.ID(ideaUUID),
			idea.UserID(userUUID),
		).
		SetMasterIdeaID(masterUUID).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set master idea: %w", err)
	}
	if updated == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func makeIdeaEntToEntity(row *ent.Idea) *entity.Idea {
	var masterID *string
	if row.MasterIdeaID != nil {
		id := row.MasterIdeaID.String()
		masterID = &id
	}

	var question string
	if row.ClarificationQuestion != nil {
		question = *row.ClarificationQuestion
	}

	return &entity.Idea{
		ID:                    row.ID.String(),
		UserID:                row.UserID.String(),
		Content:               row.Content,
		OriginalTranscription: row.OriginalTranscription,
		IdeaType:              string(row.IdeaType),
		Category:              row.Category,
		Sequence:              row.Sequence,
		Tags:                  row.Tags,
		AIAutoTags:            row.AiAutoTags,
		ConfidenceLevel:       row.ConfidenceLevel,
		NeedsClarification:    row.NeedsClarification,
		ClarificationQuestion: question,
		MasterIdeaID:          masterID,
		ParentRecordingID:     row.ParentRecordingID.String(),
		Embedding:             row.Embedding,
		CreatedAt:             row.CreatedAt,
	}
}

func makeIdeasEntToEntity(rows []*ent.Idea) []*entity.Idea {
	ideas := make([]*entity.Idea, len(rows))
	for i, row := range rows {
		ideas[i] = makeIdeaEntToEntity(row)
	}

	return ideas
}
