package handlers

import (
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/mux"

	"corpportal/internal/models"
	"corpportal/internal/repository"
	"corpportal/internal/service"
)

func actorFromContext(r *http.Request) (service.Actor, bool) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		return service.Actor{}, false
	}

	role, _ := r.Context().Value("role").(string)

	return service.Actor{ID: userID, Role: role}, true
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	profile, err := h.ProfileService.GetProfile(r.Context(), actor.ID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}

func (h *Handlers) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req struct {
		Name         string  `json:"name" validate:"required"`
		DepartmentID *string `json:"departmentId"`
		Birthday     *string `json:"birthday"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdateProfileRequest{
		UserID:       actor.ID,
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
	}

	if req.Birthday != nil {
		birthday, err := time.Parse("2006-01-02", *req.Birthday)
		if err != nil {
			WriteError(w, "Неверный формат даты рождения, ожидается ГГГГ-ММ-ДД", http.StatusBadRequest)
			return
		}
		serviceReq.Birthday = &birthday
	}

	if err := h.ProfileService.UpdateProfile(r.Context(), actor, serviceReq); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Профиль обновлен"}, http.StatusOK)
}

func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл слишком большой", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Отсутствует файл image", http.StatusBadRequest)
		return
	}
	defer file.Close()

	avatarURL, err := h.ProfileService.UploadAvatar(r.Context(), actor, header.Filename, file, header.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"avatarUrl": avatarURL}, http.StatusOK)
}

// GetUsers - список всех профилей для справочника команды
func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.ProfileService.ListProfiles(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, profiles, http.StatusOK)
}

// UpdateUserRole - смена роли пользователя, только для админа
func (h *Handlers) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	userID := mux.Vars(r)["id"]

	var req struct {
		Role string `json:"role" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// role verification
	roleSlice := []string{models.RoleUser, models.RoleCollaborator, models.RoleAdmin}
	if !slices.Contains(roleSlice, req.Role) {
		WriteError(w, "Роль должна быть user, collaborator или admin", http.StatusBadRequest)
		return
	}

	if err := h.ProfileService.UpdateRole(r.Context(), actor, userID, req.Role); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Роль обновлена"}, http.StatusOK)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	userID := mux.Vars(r)["id"]

	if err := h.ProfileService.DeleteProfile(r.Context(), actor, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Пользователь удален"}, http.StatusOK)
}
