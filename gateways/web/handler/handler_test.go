package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	config "github.com/echonote/backend/config/web"
	"github.com/echonote/backend/pkg/jwt"
	ssoEntity "github.com/echonote/backend/services/sso/entity"
	ssoUsecase "github.com/echonote/backend/services/sso/usecase"
	"github.com/echonote/backend/services/voice/entity"
	voiceStorage "github.com/echonote/backend/services/voice/storage"
	voiceUsecase "github.com/echonote/backend/services/voice/usecase"
)

const testSecret = "test-secret"

type fakeVoice struct {
	processResult *entity.AnalysisResult
	processErr    error
	processUserID string

	savedIdeas    []*entity.Idea
	saveRecording string

	listResult []*entity.Idea
	deleteErr  error

	linkedIdeaID  string
	linkedContent string

	categories []*entity.Category

	apiKeyUserID string
	apiKey       string
}

func (f *fakeVoice) ProcessVoice(_ context.Context, userID, _ string) (*entity.AnalysisResult, error) {
	f.processUserID = userID
	return f.processResult, f.processErr
}

func (f *fakeVoice) SaveIdeas(_ context.Context, userID, recordingID string, ideas []*entity.Idea) ([]*entity.Idea, error) {
	f.saveRecording = recordingID
	for _, idea := range ideas {
		idea.UserID = userID
	}
	f.savedIdeas = ideas
	return ideas, nil
}

func (f *fakeVoice) ListIdeas(_ context.Context, _ string) ([]*entity.Idea, error) {
	return f.listResult, nil
}

func (f *fakeVoice) DeleteIdea(_ context.Context, _, _ string) error {
	return f.deleteErr
}

func (f *fakeVoice) LinkIdea(_ context.Context, _, ideaID, masterContent string) error {
	f.linkedIdeaID = ideaID
	f.linkedContent = masterContent
	return nil
}

func (f *fakeVoice) DefaultCategories(_ context.Context) ([]*entity.Category, error) {
	return f.categories, nil
}

func (f *fakeVoice) UpdateAPIKey(_ context.Context, userID, apiKey string) error {
	f.apiKeyUserID = userID
	f.apiKey = apiKey
	return nil
}

type fakeSSO struct {
	loginErr    error
	registerErr error
	user        *ssoEntity.User
}

func (f *fakeSSO) Login(_ context.Context, _ *ssoEntity.LoginRequest) (*ssoEntity.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &ssoEntity.LoginResponse{Token: "tok"}, nil
}

func (f *fakeSSO) Register(_ context.Context, _ *ssoEntity.RegisterRequest) (*ssoEntity.RegisterResponse, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &ssoEntity.RegisterResponse{Token: "tok"}, nil
}

func (f *fakeSSO) GetUser(_ context.Context, _ *ssoEntity.GetUserRequest) (*ssoEntity.GetUserResponse, error) {
	return &ssoEntity.GetUserResponse{User: f.user}, nil
}

func newTestRouter(voice voiceUsecase.Usecase, sso ssoUsecase.Usecase) chi.Router {
	cfg := &config.Config{JWTSecret: testSecret}
	router := chi.NewRouter()
	New(cfg, voice, sso).RegisterRoutes(router)
	return router
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.Generate(context.Background(), userID, testSecret)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return "Bearer " + token
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}
	return body["error"]
}

func TestVoiceToTextSuccess(t *testing.T) {
	voice := &fakeVoice{
		processResult: &entity.AnalysisResult{
			Text:  "buy milk",
			Ideas: []*entity.Idea{{Content: "buy milk", IdeaType: "main", Sequence: 1}},
		},
	}
	router := newTestRouter(voice, &fakeSSO{})

	req := httptest.NewRequest(http.MethodPost, "/voice-to-text", strings.NewReader(`{"audio":"AAAA"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if voice.processUserID != "user-1" {
		t.Errorf("user id = %q", voice.processUserID)
	}

	var result entity.AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Text != "buy milk" || len(result.Ideas) != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestVoiceToTextRequiresBearer(t *testing.T) {
	router := newTestRouter(&fakeVoice{}, &fakeSSO{})

	req := httptest.NewRequest(http.MethodPost, "/voice-to-text", strings.NewReader(`{"audio":"AAAA"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if errorBody(t, rec) == "" {
		t.Error("expected error message in body")
	}
}

func TestVoiceToTextRejectsWrongContentType(t *testing.T) {
	router := newTestRouter(&fakeVoice{}, &fakeSSO{})

	req := httptest.NewRequest(http.MethodPost, "/voice-to-text", strings.NewReader("audio=AAAA"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", bearer(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestVoiceToTextMissingAudio(t *testing.T) {
	router := newTestRouter(&fakeVoice{}, &fakeSSO{})

	req := httptest.NewRequest(http.MethodPost, "/voice-to-text", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestVoiceToTextInvalidJSON(t *testing.T) {
	router := newTestRouter(&fakeVoice{}, &fakeSSO{})

	req := httptest.NewRequest(http.MethodPost, "/voice-to-text", strings.NewReader(`{"audio":`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestVoiceToTextMissingAPIKey(t *testing.T) {
	voice := &fakeVoice{processErr: voiceUsecase.ErrAPIKeyNotConfigured}
	router := newTestRouter(voice, &fakeSSO{})

	req := httptest.NewRequest(http.MethodPost, "/voice-to-text", strings.NewReader(`{"audio":"AAAA"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(errorBody(t, rec), "api key") {
		t.Errorf("error = %q", errorBody(t, rec))
	}
}

func TestVoiceToTextOversizedAudio(t *testing.T) {
	voice := &fakeVoice{processErr: voiceUsecase.ErrAudioTooLarge}
	router := newTestRouter(voice, &fakeSSO{})

	req := httptest.NewRequest(http.MethodPost, "/voice-to-text", strings.NewReader(`{"audio":"AAAA"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestSaveIdeas(t *testing.T) {
	voice := &fakeVoice{}
	router := newTestRouter(voice, &fakeSSO{})

	body := `{"recording_id":"rec-1","ideas":[{"content":"buy milk","idea_type":"main","sequence":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/ideas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if voice.saveRecording != "rec-1" {
		t.Errorf("recording id = %q", voice.saveRecording)
	}
	if len(voice.savedIdeas) != 1 || voice.savedIdeas[0].UserID != "user-1" {
		t.Errorf("saved = %+v", voice.savedIdeas)
	}
}

func TestSaveIdeasRequiresRecordingID(t *testing.T) {
	router := newTestRouter(&fakeVoice{}, &fakeSSO{})

	req := httptest.NewRequest(http.MethodPost, "/ideas", strings.NewReader(`{"ideas":[{"content":"x"}]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestListIdeas(t *testing.T) {
	voice := &fakeVoice{listResult: []*entity.Idea{{Content: "buy milk"}}}
	router := newTestRouter(voice, &fakeSSO{})

	req := httptest.NewRequest(http.MethodGet, "/ideas", nil)
	req.Header.Set("Authorization", bearer(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Ideas []*entity.Idea `json:"ideas"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Ideas) != 1 || body.Ideas[0].Content != "buy milk" {
		t.Errorf("ideas = %+v", body.Ideas)
	}
}

func TestDeleteIdeaNotFound(t *testing.T) {
	voice := &fakeVoice{deleteErr: voiceStorage.ErrNotFound}
	router := newTestRouter(voice, &fakeSSO{})

	req := httptest.NewRequest(http.MethodDelete, "/ideas/idea-1", nil)
	req.Header.Set("Authorization", bearer(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestLinkIdea(t *testing.T) {
	voice := &fakeVoice{}
	router := newTestRouter(voice, &fakeSSO{})

	req := httptest.NewRequest(http.MethodPost, "/ideas/idea-1/link", strings.NewReader(`{"master_content":"buy milk"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if voice.linkedIdeaID != "idea-1" || voice.linkedContent != "buy milk" {
		t.Errorf("linked %q to %q", voice.linkedIdeaID, voice.linkedContent)
	}
}

func TestCategories(t *testing.T) {
	voice := &fakeVoice{categories: []*entity.Category{{Name: "Business Ideas"}, {Name: "Personal Tasks"}}}
	router := newTestRouter(voice, &fakeSSO{})

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Categories []*entity.Category `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Categories) != 2 {
		t.Errorf("categories = %+v", body.Categories)
	}
}

func TestUpdateAPIKey(t *testing.T) {
	voice := &fakeVoice{}
	router := newTestRouter(voice, &fakeSSO{})

	req := httptest.NewRequest(http.MethodPut, "/profile/api-key", strings.NewReader(`{"api_key":"sk-new"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if voice.apiKeyUserID != "user-1" || voice.apiKey != "sk-new" {
		t.Errorf("stored %q for %q", voice.apiKey, voice.apiKeyUserID)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	sso := &fakeSSO{loginErr: ssoUsecase.ErrInvalidCredentials}
	router := newTestRouter(&fakeVoice{}, sso)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.c","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	sso := &fakeSSO{registerErr: ssoUsecase.ErrPasswordMismatch}
	router := newTestRouter(&fakeVoice{}, sso)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"a@b.c","password":"x","password_confirm":"y"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetUser(t *testing.T) {
	sso := &fakeSSO{user: &ssoEntity.User{ID: "user-1", Email: "a@b.c"}}
	router := newTestRouter(&fakeVoice{}, sso)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", bearer(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "a@b.c") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&fakeVoice{}, &fakeSSO{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
