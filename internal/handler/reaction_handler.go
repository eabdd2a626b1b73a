package handlers

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/gorilla/mux"

	"corpportal/internal/models"
)

var allowedReactions = []string{"like", "celebrate", "support", "love", "insightful"}

type ReactionsResponse struct {
	Reactions []models.Reaction `json:"reactions"`
	Counts    map[string]int    `json:"counts"`
	Mine      *string           `json:"mine"`
}

func (h *Handlers) GetReactions(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromRequest(r)
	if !ok {
		WriteError(w, "Неизвестный тип контента", http.StatusBadRequest)
		return
	}

	userID, _ := r.Context().Value("userID").(string)

	summary, err := h.ReactionService.GetReactions(r.Context(), userID, mux.Vars(r)["id"], kind)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := ReactionsResponse{Reactions: summary.Reactions, Counts: summary.Counts}
	if summary.Mine != nil {
		response.Mine = &summary.Mine.ReactionType
	}

	WriteSuccess(w, response, http.StatusOK)
}

// SetReaction ставит или заменяет реакцию текущего пользователя
func (h *Handlers) SetReaction(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	kind, ok := kindFromRequest(r)
	if !ok {
		WriteError(w, "Неизвестный тип контента", http.StatusBadRequest)
		return
	}

	var req struct {
		ReactionType string `json:"reactionType" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if !slices.Contains(allowedReactions, req.ReactionType) {
		WriteError(w, "Неизвестный тип реакции", http.StatusBadRequest)
		return
	}

	reaction, err := h.ReactionService.SetReaction(r.Context(), actor, mux.Vars(r)["id"], kind, req.ReactionType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, reaction, http.StatusOK)
}

func (h *Handlers) RemoveReaction(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	kind, ok := kindFromRequest(r)
	if !ok {
		WriteError(w, "Неизвестный тип контента", http.StatusBadRequest)
		return
	}

	if err := h.ReactionService.RemoveReaction(r.Context(), actor, mux.Vars(r)["id"], kind); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Реакция удалена"}, http.StatusOK)
}
