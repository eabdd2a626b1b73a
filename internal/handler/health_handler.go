package handlers

import (
	"encoding/json"
	"net/http"

	"corpportal/internal/models"
)

type TablesResponse struct {
	CountTables   int                 `json:"countTables"`
	ContentCounts map[models.Kind]int `json:"contentCounts"`
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"service": "corpportal", "status": "ok"}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "healthy"}, http.StatusOK)
}

func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.GetCountTablesBD(h.TablesRepo)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	contentCounts, err := h.TablesService.ContentCounts(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(TablesResponse{count, contentCounts})
}
