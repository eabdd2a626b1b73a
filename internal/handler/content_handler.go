package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"corpportal/internal/models"
	"corpportal/internal/repository"
)

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ContentListResponse struct {
	Items      []models.ContentItem `json:"items"`
	Pagination PaginationResponse   `json:"pagination"`
}

type ContentRequest struct {
	Title     string  `json:"title" validate:"required"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	EventDate *string `json:"eventDate"`
	URL       *string `json:"url"`
}

func kindFromRequest(r *http.Request) (models.Kind, bool) {
	kind := models.Kind(mux.Vars(r)["kind"])
	switch kind {
	case models.KindAnnouncement, models.KindFeed, models.KindEvent, models.KindLink, models.KindHR:
		return kind, true
	}
	return "", false
}

// parseContentRequest валидирует общие и типоспецифичные поля.
// Всё ловится до единого похода в хранилище.
func (h *Handlers) parseContentRequest(r *http.Request, kind models.Kind) (*ContentRequest, *time.Time, string) {
	var req ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, nil, "Неверный формат запроса"
	}

	if err := h.Validate.Struct(req); err != nil {
		return nil, nil, "Неверные данные"
	}

	if req.Title == "" {
		return nil, nil, "Отсутствует заголовок"
	}

	var eventDate *time.Time
	if kind == models.KindEvent {
		if req.EventDate == nil {
			return nil, nil, "Отсутствует дата события"
		}
		parsed, err := time.Parse(time.RFC3339, *req.EventDate)
		if err != nil {
			return nil, nil, "Неверный формат даты события, ожидается RFC3339"
		}
		eventDate = &parsed
	}

	if kind == models.KindLink {
		if req.URL == nil || *req.URL == "" {
			return nil, nil, "Отсутствует URL ссылки"
		}
		parsed, err := url.ParseRequestURI(*req.URL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return nil, nil, "Неверный формат URL"
		}
	}

	return &req, eventDate, ""
}

func (h *Handlers) GetContentList(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromRequest(r)
	if !ok {
		WriteError(w, "Неизвестный тип контента", http.StatusBadRequest)
		return
	}

	// Pagination parameters
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := h.ContentService.List(r.Context(), kind, limit, (page-1)*limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := ContentListResponse{
		Items: items,
		Pagination: PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) GetContent(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromRequest(r)
	if !ok {
		WriteError(w, "Неизвестный тип контента", http.StatusBadRequest)
		return
	}

	item, err := h.ContentService.Get(r.Context(), kind, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, item, http.StatusOK)
}

func (h *Handlers) CreateContent(w http.ResponseWriter, r *http.Request) {
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

	req, eventDate, errMsg := h.parseContentRequest(r, kind)
	if errMsg != "" {
		WriteError(w, errMsg, http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateContentRequest{
		Kind:      kind,
		AuthorID:  actor.ID,
		Title:     req.Title,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		EventDate: eventDate,
		URL:       req.URL,
	}

	item, err := h.ContentService.Create(r.Context(), actor, serviceReq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, item, http.StatusCreated)
}

func (h *Handlers) UpdateContent(w http.ResponseWriter, r *http.Request) {
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

	req, eventDate, errMsg := h.parseContentRequest(r, kind)
	if errMsg != "" {
		WriteError(w, errMsg, http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdateContentRequest{
		Kind:      kind,
		ID:        mux.Vars(r)["id"],
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Title:     req.Title,
		Content:   req.Content,
		EventDate: eventDate,
		URL:       req.URL,
	}

	if err := h.ContentService.Update(r.Context(), actor, serviceReq); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Запись обновлена"}, http.StatusOK)
}

func (h *Handlers) DeleteContent(w http.ResponseWriter, r *http.Request) {
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

	if err := h.ContentService.Delete(r.Context(), actor, kind, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Запись удалена"}, http.StatusOK)
}

func (h *Handlers) AttachContentImage(w http.ResponseWriter, r *http.Request) {
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

	imageURL, err := h.ContentService.AttachImage(r.Context(), actor, kind, mux.Vars(r)["id"], header.Filename, file, header.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"imageUrl": imageURL}, http.StatusOK)
}
