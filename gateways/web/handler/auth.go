package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/echonote/backend/pkg/json"
	"github.com/echonote/backend/services/sso/entity"
	"github.com/echonote/backend/services/sso/usecase"
)

type updateAPIKeyRequest struct {
	APIKey string `json:"api_key"`
}

func (h *handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	req := &entity.RegisterRequest{}
	if err := json.ParseJSON(r, req); err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	res, err := h.sso.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrPasswordMismatch) {
			json.WriteError(w, http.StatusBadRequest, err)
			return
		}
		json.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, res)
}

func (h *handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	req := &entity.LoginRequest{}
	if err := json.ParseJSON(r, req); err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	res, err := h.sso.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			json.WriteError(w, http.StatusUnauthorized, err)
			return
		}
		json.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, res)
}

func (h *handler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authorize(r)
	if err != nil {
		json.WriteError(w, http.StatusUnauthorized, err)
		return
	}

	res, err := h.sso.GetUser(r.Context(), &entity.GetUserRequest{ID: userID})
	if err != nil {
		json.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, res)
}

func (h *handler) UpdateAPIKeyHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authorize(r)
	if err != nil {
		json.WriteError(w, http.StatusUnauthorized, err)
		return
	}

	req := &updateAPIKeyRequest{}
	if err := json.ParseJSON(r, req); err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}
	if req.APIKey == "" {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("api_key is required"))
		return
	}

	if err := h.voice.UpdateAPIKey(r.Context(), userID, req.APIKey); err != nil {
		json.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
