package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/echonote/backend/pkg/logger"
	"github.com/echonote/backend/services/voice/entity"
	"github.com/echonote/backend/services/voice/storage"
	"github.com/echonote/backend/services/voice/storage/postgres/ent"
	"github.com/echonote/backend/services/voice/storage/postgres/ent/profile"
	"github.com/google/uuid"
)

func (s *store) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}

	row, err := s.Profile.Query().
		Where(profile.UserID(userUUID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &entity.Profile{
		UserID: row.UserID.String(),
		APIKey: row.APIKey,
	}, nil
}

func (s *store) UpsertProfileAPIKey(ctx context.Context, userID, apiKey string) error {
	log := logger.FromContext(ctx)

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("failed to parse user id: %w", err)
	}

	updated, err := s.Profile.Update().
		Where(profile.UserID(userUUID)).
		SetAPIKey(apiKey).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if updated > 0 {
		return nil
	}

	if _, err := s.Profile.Create().
		SetUserID(userUUID).
		SetAPIKey(apiKey).
		Save(ctx); err != nil {
		log.Error("failed to create profile", "error", err)
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}
