package handlers

import (
	"net/http"

	"corpportal/internal/models"
)

type ActivityFeedResponse struct {
	Events       []models.ActivityEvent `json:"events"`
	PollInterval string                 `json:"pollInterval"`
}

type NotificationsResponse struct {
	Notifications []models.Notification `json:"notifications"`
}

// GetActivityFeed - лента последних событий для дашборда
func (h *Handlers) GetActivityFeed(w http.ResponseWriter, r *http.Request) {
	events, err := h.ActivityService.DashboardFeed(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := ActivityFeedResponse{
		Events:       events,
		PollInterval: h.ActivityService.PollInterval().String(),
	}

	WriteSuccess(w, response, http.StatusOK)
}

// CheckActivity возвращает уведомления с последней проверки
// и сдвигает водяную метку пользователя
func (h *Handlers) CheckActivity(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	notifications, err := h.ActivityService.CheckNewActivity(r.Context(), actor.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, NotificationsResponse{Notifications: notifications}, http.StatusOK)
}
