package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	config "github.com/echonote/backend/config/web"
	"github.com/echonote/backend/pkg/logger"
	ssoEntity "github.com/echonote/backend/services/sso/entity"
	"github.com/echonote/backend/services/voice/entity"
)

type stubVoice struct{}

func (stubVoice) ProcessVoice(context.Context, string, string) (*entity.AnalysisResult, error) {
	return &entity.AnalysisResult{}, nil
}
func (stubVoice) SaveIdeas(_ context.Context, _, _ string, ideas []*entity.Idea) ([]*entity.Idea, error) {
	return ideas, nil
}
func (stubVoice) ListIdeas(context.Context, string) ([]*entity.Idea, error) { return nil, nil }
func (stubVoice) DeleteIdea(context.Context, string, string) error          { return nil }
func (stubVoice) LinkIdea(context.Context, string, string, string) error    { return nil }
func (stubVoice) DefaultCategories(context.Context) ([]*entity.Category, error) {
	return nil, nil
}
func (stubVoice) UpdateAPIKey(context.Context, string, string) error { return nil }

type stubSSO struct{}

func (stubSSO) Login(context.Context, *ssoEntity.LoginRequest) (*ssoEntity.LoginResponse, error) {
	return &ssoEntity.LoginResponse{}, nil
}
func (stubSSO) Register(context.Context, *ssoEntity.RegisterRequest) (*ssoEntity.RegisterResponse, error) {
	return &ssoEntity.RegisterResponse{}, nil
}
func (stubSSO) GetUser(context.Context, *ssoEntity.GetUserRequest) (*ssoEntity.GetUserResponse, error) {
	return &ssoEntity.GetUserResponse{}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{Port: 0, JWTSecret: "test-secret"}
	srv, err := New(cfg, logger.Default(), stubVoice{}, stubSSO{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestRouterHealth(t *testing.T) {
	router := newTestServer(t).router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRouterNotFoundIsJSON(t *testing.T) {
	router := newTestServer(t).router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRouterMethodNotAllowedIsJSON(t *testing.T) {
	router := newTestServer(t).router()

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/voice-to-text", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	router := newTestServer(t).router()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/voice-to-text", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type, X-Client-Info, Apikey")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK && rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if allow := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(allow, "POST") {
		t.Errorf("allow methods = %q", allow)
	}
}
