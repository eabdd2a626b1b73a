package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"corpportal/internal/models"
)

type CommentRequest struct {
	Content         string  `json:"content" validate:"required"`
	ImageURL        *string `json:"imageUrl"`
	ParentCommentID *string `json:"parentCommentId"`
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromRequest(r)
	if !ok {
		WriteError(w, "Неизвестный тип контента", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentService.GetComments(r.Context(), mux.Vars(r)["id"], kind)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
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

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	if req.Content == "" {
		WriteError(w, "Пустой комментарий", http.StatusBadRequest)
		return
	}

	comment := &models.Comment{
		PostID:          mux.Vars(r)["id"],
		PostType:        kind,
		Content:         req.Content,
		ImageURL:        req.ImageURL,
		ParentCommentID: req.ParentCommentID,
	}

	if err := h.CommentService.AddComment(r.Context(), actor, comment); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if err := h.CommentService.DeleteComment(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Комментарий удален"}, http.StatusOK)
}

// UploadCommentImage - картинка или гифка для будущего комментария,
// клиент кладёт файл заранее и передаёт imageUrl в AddComment
func (h *Handlers) UploadCommentImage(w http.ResponseWriter, r *http.Request) {
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

	imageURL, err := h.CommentService.AttachImage(r.Context(), actor, header.Filename, file, header.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"imageUrl": imageURL}, http.StatusOK)
}
