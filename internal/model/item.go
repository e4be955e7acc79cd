package model

import (
	"fmt"
	"sync"
)

// Item — стек предметов одного шаблона в инвентаре персонажа.
type Item struct {
	objectID uint32
	itemID   int32 // Template ID
	ownerID  int64 // Character ID владельца
	count    int64

	mu sync.RWMutex
}

// NewItem создаёт новый стек.
// count должен быть > 0.
func NewItem(objectID uint32, itemID int32, ownerID int64, count int64) (*Item, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be > 0, got %d", count)
	}
	return &Item{
		objectID: objectID,
		itemID:   itemID,
		ownerID:  ownerID,
		count:    count,
	}, nil
}

// ObjectID возвращает уникальный ID предмета в мире.
func (i *Item) ObjectID() uint32 { return i.objectID }

// ItemID возвращает template ID.
func (i *Item) ItemID() int32 { return i.itemID }

// OwnerID возвращает character ID владельца.
func (i *Item) OwnerID() int64 { return i.ownerID }

// Count возвращает размер стека.
func (i *Item) Count() int64 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.count
}

// SetCount устанавливает размер стека. Отрицательные значения запрещены.
func (i *Item) SetCount(count int64) error {
	if count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", count)
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.count = count
	return nil
}
