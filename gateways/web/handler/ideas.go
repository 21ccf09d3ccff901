package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/echonote/backend/pkg/json"
	"github.com/echonote/backend/services/voice/entity"
	"github.com/echonote/backend/services/voice/storage"
)

type saveIdeasRequest struct {
	RecordingID string         `json:"recording_id"`
	Ideas       []*entity.Idea `json:"ideas"`
}

type linkIdeaRequest struct {
	MasterContent string `json:"master_content"`
}

func (h *handler) ListIdeasHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authorize(r)
	if err != nil {
		json.WriteError(w, http.StatusUnauthorized, err)
		return
	}

	ideas, err := h.voice.ListIdeas(r.Context(), userID)
	if err != nil {
		json.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, map[string]any{"ideas": ideas})
}

func (h *handler) SaveIdeasHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authorize(r)
	if err != nil {
		json.WriteError(w, http.StatusUnauthorized, err)
		return
	}

	req := &saveIdeasRequest{}
	if err := json.ParseJSON(r, req); err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}
	if req.RecordingID == "" {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("recording_id is required"))
		return
	}
	if len(req.Ideas) == 0 {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("no ideas to save"))
		return
	}

	saved, err := h.voice.SaveIdeas(r.Context(), userID, req.RecordingID, req.Ideas)
	if err != nil {
		json.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	json.WriteJSON(w, http.StatusCreated, map[string]any{"ideas": saved})
}

func (h *handler) DeleteIdeaHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authorize(r)
	if err != nil {
		json.WriteError(w, http.StatusUnauthorized, err)
		return
	}

	ideaID := chi.URLParam(r, "id")
	if err := h.voice.DeleteIdea(r.Context(), userID, ideaID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			json.WriteError(w, http.StatusNotFound, fmt.Errorf("idea not found"))
			return
		}
		json.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *handler) LinkIdeaHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authorize(r)
	if err != nil {
		json.WriteError(w, http.StatusUnauthorized, err)
		return
	}

	req := &linkIdeaRequest{}
	if err := json.ParseJSON(r, req); err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}
	if req.MasterContent == "" {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("master_content is required"))
		return
	}

	ideaID := chi.URLParam(r, "id")
	if err := h.voice.LinkIdea(r.Context(), userID, ideaID, req.MasterContent); err != nil {
		json.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, map[string]string{"status": "linked"})
}

func (h *handler) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.voice.DefaultCategories(r.Context())
	if err != nil {
		json.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, map[string]any{"categories": categories})
}
