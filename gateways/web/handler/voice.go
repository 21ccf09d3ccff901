package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/echonote/backend/pkg/json"
	"github.com/echonote/backend/pkg/logger"
	"github.com/echonote/backend/services/voice/usecase"
)

type voiceToTextRequest struct {
	Audio string `json:"audio"`
}

func (h *handler) VoiceToTextHandler(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, err := h.authorize(r)
	if err != nil {
		json.WriteError(w, http.StatusUnauthorized, err)
		return
	}

	if ct := r.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("expected application/json content type"))
		return
	}

	req := &voiceToTextRequest{}
	if err := json.ParseJSON(r, req); err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}
	if req.Audio == "" {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("no audio data provided"))
		return
	}

	result, err := h.voice.ProcessVoice(r.Context(), userID, req.Audio)
	if err != nil {
		log.Error("voice processing failed", "error", err, "user_id", userID)
		switch {
		case errors.Is(err, usecase.ErrInvalidAudio),
			errors.Is(err, usecase.ErrEmptyAudio),
			errors.Is(err, usecase.ErrAudioTooLarge):
			json.WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, usecase.ErrAPIKeyNotConfigured):
			json.WriteError(w, http.StatusInternalServerError, err)
		default:
			json.WriteError(w, http.StatusInternalServerError, err)
		}
		return
	}

	json.WriteJSON(w, http.StatusOK, result)
}
