package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"corpportal/internal/service"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError переводит ошибку сервиса в HTTP-статус
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
	case errors.Is(err, service.ErrCheckInProgress):
		WriteError(w, "Предыдущая проверка ещё выполняется", http.StatusTooManyRequests)
	case strings.Contains(err.Error(), "не найден"):
		WriteError(w, err.Error(), http.StatusNotFound)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
