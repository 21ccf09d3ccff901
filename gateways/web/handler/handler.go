package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	config "github.com/echonote/backend/config/web"
	"github.com/echonote/backend/pkg/json"
	"github.com/echonote/backend/pkg/jwt"
	ssoUsecase "github.com/echonote/backend/services/sso/usecase"
	voiceUsecase "github.com/echonote/backend/services/voice/usecase"
)

type handler struct {
	cfg   *config.Config
	voice voiceUsecase.Usecase
	sso   ssoUsecase.Usecase
}

type Handler interface {
	RegisterRoutes(r chi.Router)
}

func New(cfg *config.Config, voice voiceUsecase.Usecase, sso ssoUsecase.Usecase) Handler {
	return &handler{
		cfg:   cfg,
		voice: voice,
		sso:   sso,
	}
}

func (h *handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.HealthHandler)

	r.Route("/auth", func(authRouter chi.Router) {
		authRouter.Post("/register", h.RegisterHandler)
		authRouter.Post("/login", h.LoginHandler)
		authRouter.Get("/me", h.GetUserHandler)
	})

	r.Post("/voice-to-text", h.VoiceToTextHandler)

	r.Route("/ideas", func(ideasRouter chi.Router) {
		ideasRouter.Get("/", h.ListIdeasHandler)
		ideasRouter.Post("/", h.SaveIdeasHandler)
		ideasRouter.Delete("/{id}", h.DeleteIdeaHandler)
		ideasRouter.Post("/{id}/link", h.LinkIdeaHandler)
	})

	r.Get("/categories", h.CategoriesHandler)
	r.Put("/profile/api-key", h.UpdateAPIKeyHandler)
}

func (h *handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	json.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// authorize extracts and validates the bearer token, returning the user id
// the token was issued for.
func (h *handler) authorize(r *http.Request) (string, error) {
	token, err := jwt.ParseTokenFromHeader(r)
	if err != nil {
		return "", fmt.Errorf("access denied")
	}

	userID, err := jwt.ParseUserID(r.Context(), token, h.cfg.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("access denied")
	}

	return userID, nil
}
