package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"corpportal/internal/models"
)

type DepartmentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

func (h *Handlers) GetDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.DepartmentService.ListDepartments(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, departments, http.StatusOK)
}

func (h *Handlers) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	department := &models.Department{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.DepartmentService.CreateDepartment(r.Context(), actor, department); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, department, http.StatusCreated)
}

func (h *Handlers) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	department := &models.Department{
		DepartmentID: mux.Vars(r)["id"],
		Name:         req.Name,
		Description:  req.Description,
	}

	if err := h.DepartmentService.UpdateDepartment(r.Context(), actor, department); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Отдел обновлен"}, http.StatusOK)
}

func (h *Handlers) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if err := h.DepartmentService.DeleteDepartment(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Отдел удален"}, http.StatusOK)
}
