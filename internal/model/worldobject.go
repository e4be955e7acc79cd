package model

import "sync"

// WorldObject — базовый тип для всех объектов в мире (игроки, NPC, саммоны).
type WorldObject struct {
	objectID uint32
	name     string
	location Location

	mu sync.RWMutex
}

// NewWorldObject создаёт новый объект в игровом мире.
func NewWorldObject(objectID uint32, name string, loc Location) *WorldObject {
	return &WorldObject{
		objectID: objectID,
		name:     name,
		location: loc,
	}
}

// ObjectID возвращает уникальный ID объекта (immutable).
func (w *WorldObject) ObjectID() uint32 {
	return w.objectID
}

// Name возвращает имя объекта.
func (w *WorldObject) Name() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.name
}

// SetName устанавливает имя объекта.
func (w *WorldObject) SetName(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.name = name
}

// Location возвращает копию координат объекта.
func (w *WorldObject) Location() Location {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.location
}

// SetLocation устанавливает новые координаты объекта.
func (w *WorldObject) SetLocation(loc Location) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.location = loc
}
