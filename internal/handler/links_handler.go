package handlers

import (
	"fmt"
	"net/http"

	"corpportal/internal/models"
)

// SubscribeLinks - SSE-поток сигналов об изменении справочника ссылок.
// Клиент по каждому сигналу перечитывает список целиком,
// дельты не передаются.
func (h *Handlers) SubscribeLinks(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, "Поток не поддерживается", http.StatusInternalServerError)
		return
	}

	signals, unsubscribe := h.Hub.Subscribe(string(models.KindLink))
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-signals:
			fmt.Fprintf(w, "event: changed\ndata: {\"table\":%q}\n\n", models.KindLink)
			flusher.Flush()
		}
	}
}
