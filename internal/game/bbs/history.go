package bbs

import "sync"

// Bypass — запомненная страница для закладки.
type Bypass struct {
	Title  string
	Bypass string
}

// BypassHistory хранит последний bypass каждого игрока (по objectID).
type BypassHistory struct {
	mu   sync.Mutex
	last map[uint32]Bypass
}

// NewBypassHistory creates an empty history.
func NewBypassHistory() *BypassHistory {
	return &BypassHistory{last: make(map[uint32]Bypass)}
}

// Add запоминает bypass, заменяя предыдущий.
func (h *BypassHistory) Add(objectID uint32, title, bypass string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last[objectID] = Bypass{Title: title, Bypass: bypass}
}

// Remove забирает bypass игрока.
func (h *BypassHistory) Remove(objectID uint32) (Bypass, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.last[objectID]
	delete(h.last, objectID)
	return b, ok
}

// Forget удаляет запись игрока (при выходе из игры).
func (h *BypassHistory) Forget(objectID uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.last, objectID)
}
