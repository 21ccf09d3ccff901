package postgres

import (
	"context"
	"fmt"

	"github.com/echonote/backend/pkg/logger"
	"github.com/echonote/backend/services/sso/entity"
	"github.com/echonote/backend/services/sso/storage"
	"github.com/echonote/backend/services/sso/storage/postgres/ent"
	"github.com/echonote/backend/services/sso/storage/postgres/ent/user"
	"github.com/google/uuid"
)

type store struct {
	*ent.Client
}

func New(client *ent.Client) storage.Storage {
	return &store{
		Client: client,
	}
}

func (s *store) CreateUser(ctx context.Context, req *entity.RegisterRequest) (*entity.User, error) {
	log := logger.FromContext(ctx)

	entUser, err := s.User.Create().
		SetName(req.Name).
		SetNillableSurname(req.Surname).
		SetEmail(req.Email).
		SetPasswordHash(req.Password).
		Save(ctx)
	if err != nil {
		log.Error("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	log.Debug("created user", "user_id", entUser.ID.String())

	return makeUserEntToEntity(entUser), nil
}

func (s *store) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	entUser, err := s.User.Query().
		Where(
			user.Email(email),
		).First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return makeUserEntToEntity(entUser), nil
}

func (s *store) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	userUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}

	entUser, err := s.User.Query().
		Where(
			user.ID(userUUID),
		).First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return makeUserEntToEntity(entUser), nil
}

func makeUserEntToEntity(entUser *ent.User) *entity.User {
	return &entity.User{
		ID:        entUser.ID.String(),
		Name:      entUser.Name,
		Surname:   entUser.Surname,
		Email:     entUser.Email,
		Password:  entUser.PasswordHash,
		CreatedAt: entUser.CreatedAt,
		UpdatedAt: entUser.UpdatedAt,
	}
}
