// Package changefeed - внутрипроцессная шина изменений по таблицам.
// Подписчик получает сигнал "таблица изменилась" и перечитывает её сам,
// никаких инкрементальных патчей шина не передаёт.
package changefeed

import (
	"sync"
)

type Hub struct {
	mu          sync.Mutex
	subscribers map[string]map[chan struct{}]bool
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan struct{}]bool),
	}
}

// Subscribe возвращает канал сигналов по таблице и функцию отписки.
// Канал с буфером на один сигнал: непрочитанные сигналы схлопываются,
// подписчику всё равно перечитывать таблицу целиком.
func (h *Hub) Subscribe(table string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.subscribers[table] == nil {
		h.subscribers[table] = make(map[chan struct{}]bool)
	}
	h.subscribers[table][ch] = true
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		delete(h.subscribers[table], ch)
		h.mu.Unlock()
	}

	return ch, unsubscribe
}

// Publish рассылает сигнал всем подписчикам таблицы, не блокируясь
func (h *Hub) Publish(table string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subscribers[table] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
