package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/echonote/backend/pkg/jwt"
	"github.com/echonote/backend/services/sso/entity"
	"github.com/echonote/backend/services/sso/storage"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

type fakeStorage struct {
	users map[string]*entity.User

	createErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{users: make(map[string]*entity.User)}
}

func (f *fakeStorage) CreateUser(_ context.Context, req *entity.RegisterRequest) (*entity.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	user := &entity.User{
		ID:       "user-" + req.Email,
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
	}
	f.users[req.Email] = user
	return user, nil
}

func (f *fakeStorage) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return user, nil
}

func (f *fakeStorage) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrNotFound
}

func registerUser(t *testing.T, uc Usecase, email, password string) {
	t.Helper()
	_, err := uc.Register(context.Background(), &entity.RegisterRequest{
		Email:           email,
		Name:            "Test",
		Password:        password,
		PasswordConfirm: password,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	stg := newFakeStorage()
	uc := New(testSecret, stg)

	registerUser(t, uc, "a@b.c", "secret123")

	stored := stg.users["a@b.c"]
	if stored.Password == "secret123" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegisterReturnsValidToken(t *testing.T) {
	stg := newFakeStorage()
	uc := New(testSecret, stg)

	resp, err := uc.Register(context.Background(), &entity.RegisterRequest{
		Email:           "a@b.c",
		Name:            "Test",
		Password:        "secret123",
		PasswordConfirm: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	userID, err := jwt.ParseUserID(context.Background(), resp.Token, testSecret)
	if err != nil {
		t.Fatalf("ParseUserID: %v", err)
	}
	if userID != stg.users["a@b.c"].ID {
		t.Fatalf("token subject = %q, want %q", userID, stg.users["a@b.c"].ID)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	uc := New(testSecret, newFakeStorage())

	_, err := uc.Register(context.Background(), &entity.RegisterRequest{
		Email:           "a@b.c",
		Name:            "Test",
		Password:        "secret123",
		PasswordConfirm: "other",
	})
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("err = %v, want ErrPasswordMismatch", err)
	}
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	uc := New(testSecret, newFakeStorage())

	_, err := uc.Register(context.Background(), &entity.RegisterRequest{Name: "Test"})
	if err == nil {
		t.Fatal("expected error for missing email and password")
	}
}

func TestLoginSuccess(t *testing.T) {
	stg := newFakeStorage()
	uc := New(testSecret, stg)
	registerUser(t, uc, "a@b.c", "secret123")

	resp, err := uc.Login(context.Background(), &entity.LoginRequest{
		Email:    "a@b.c",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	userID, err := jwt.ParseUserID(context.Background(), resp.Token, testSecret)
	if err != nil {
		t.Fatalf("ParseUserID: %v", err)
	}
	if userID != stg.users["a@b.c"].ID {
		t.Fatalf("token subject = %q, want %q", userID, stg.users["a@b.c"].ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	uc := New(testSecret, newFakeStorage())
	registerUser(t, uc, "a@b.c", "secret123")

	_, err := uc.Login(context.Background(), &entity.LoginRequest{
		Email:    "a@b.c",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	uc := New(testSecret, newFakeStorage())

	_, err := uc.Login(context.Background(), &entity.LoginRequest{
		Email:    "nobody@b.c",
		Password: "secret123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestGetUser(t *testing.T) {
	stg := newFakeStorage()
	uc := New(testSecret, stg)
	registerUser(t, uc, "a@b.c", "secret123")

	resp, err := uc.GetUser(context.Background(), &entity.GetUserRequest{ID: stg.users["a@b.c"].ID})
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if resp.User.Email != "a@b.c" {
		t.Fatalf("email = %q, want a@b.c", resp.User.Email)
	}
}

func TestGetUserNotFound(t *testing.T) {
	uc := New(testSecret, newFakeStorage())

	_, err := uc.GetUser(context.Background(), &entity.GetUserRequest{ID: "missing"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
