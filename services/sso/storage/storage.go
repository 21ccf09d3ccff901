package storage

import (
	"context"
	"errors"

	"github.com/echonote/backend/services/sso/entity"
)

var ErrNotFound = errors.New("not found")

type Storage interface {
	CreateUser(ctx context.Context, req *entity.RegisterRequest) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
}
