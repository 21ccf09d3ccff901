package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/echonote/backend/pkg/jwt"
	"github.com/echonote/backend/services/sso/entity"
	"github.com/echonote/backend/services/sso/storage"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("wrong email or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

type Usecase interface {
	Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error)
	Register(ctx context.Context, req *entity.RegisterRequest) (*entity.RegisterResponse, error)
	GetUser(ctx context.Context, req *entity.GetUserRequest) (*entity.GetUserResponse, error)
}

type usecase struct {
	jwtSecret string
	Storage   storage.Storage
}

func New(jwtSecret string, stg storage.Storage) Usecase {
	return &usecase{
		jwtSecret: jwtSecret,
		Storage:   stg,
	}
}

func (u *usecase) Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error) {
	user, err := u.Storage.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.Generate(ctx, user.ID, u.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &entity.LoginResponse{
		Token: token,
	}, nil
}

func (u *usecase) Register(ctx context.Context, req *entity.RegisterRequest) (*entity.RegisterResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if req.PasswordConfirm != "" && req.Password != req.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	req.Password = string(passwordHash)

	user, err := u.Storage.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(ctx, user.ID, u.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &entity.RegisterResponse{
		Token: token,
	}, nil
}

func (u *usecase) GetUser(ctx context.Context, req *entity.GetUserRequest) (*entity.GetUserResponse, error) {
	user, err := u.Storage.GetUserByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &entity.GetUserResponse{
		User: user,
	}, nil
}
