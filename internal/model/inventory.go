package model

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// AdenaItemID — item template ID for Adena (основная валюта L2).
const AdenaItemID int32 = 57

// ErrNotEnoughItems возвращается, когда в инвентаре меньше предметов, чем требуется.
var ErrNotEnoughItems = errors.New("not enough items")

// Inventory — хранилище предметов персонажа.
// Один template ID может лежать в нескольких стеках.
type Inventory struct {
	ownerID int64

	items map[uint32]*Item // objectID → Item

	mu sync.RWMutex
}

// NewInventory создаёт пустой инвентарь.
func NewInventory(ownerID int64) *Inventory {
	return &Inventory{
		ownerID: ownerID,
		items:   make(map[uint32]*Item),
	}
}

// OwnerID возвращает character ID владельца.
func (inv *Inventory) OwnerID() int64 {
	return inv.ownerID
}

// AddItem добавляет стек в инвентарь.
// Returns error если item с таким objectID уже есть.
func (inv *Inventory) AddItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, exists := inv.items[item.ObjectID()]; exists {
		return fmt.Errorf("item objectID=%d already exists in inventory", item.ObjectID())
	}
	inv.items[item.ObjectID()] = item
	return nil
}

// RemoveItem удаляет стек по objectID. Returns nil если не найден.
func (inv *Inventory) RemoveItem(objectID uint32) *Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	item, ok := inv.items[objectID]
	if !ok {
		return nil
	}
	delete(inv.items, objectID)
	return item
}

// GetItem возвращает стек по objectID (может быть nil).
func (inv *Inventory) GetItem(objectID uint32) *Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.items[objectID]
}

// GetItems возвращает копию списка стеков, отсортированную по objectID.
func (inv *Inventory) GetItems() []*Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.sortedLocked()
}

// FindItemByItemID находит первый стек с указанным template ID.
func (inv *Inventory) FindItemByItemID(itemID int32) *Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	for _, item := range inv.sortedLocked() {
		if item.ItemID() == itemID {
			return item
		}
	}
	return nil
}

// CountItemsByID суммирует количество по всем стекам шаблона.
func (inv *Inventory) CountItemsByID(itemID int32) int64 {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	var total int64
	for _, item := range inv.items {
		if item.ItemID() == itemID {
			total += item.Count()
		}
	}
	return total
}

// DestroyItemByItemID списывает count предметов шаблона, начиная со стека
// с меньшим objectID. Опустевшие стеки удаляются.
// Если предметов не хватает, инвентарь не меняется и возвращается ErrNotEnoughItems.
func (inv *Inventory) DestroyItemByItemID(itemID int32, count int64) error {
	if count <= 0 {
		return fmt.Errorf("destroy count must be > 0, got %d", count)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	var stacks []*Item
	var total int64
	for _, item := range inv.sortedLocked() {
		if item.ItemID() == itemID {
			stacks = append(stacks, item)
			total += item.Count()
		}
	}
	if total < count {
		return fmt.Errorf("item %d: have %d, need %d: %w", itemID, total, count, ErrNotEnoughItems)
	}

	left := count
	for _, item := range stacks {
		if left == 0 {
			break
		}
		take := min(item.Count(), left)
		left -= take
		if item.Count() == take {
			delete(inv.items, item.ObjectID())
			continue
		}
		if err := item.SetCount(item.Count() - take); err != nil {
			return fmt.Errorf("reducing stack %d: %w", item.ObjectID(), err)
		}
	}
	return nil
}

// GetAdena возвращает текущее количество Adena.
func (inv *Inventory) GetAdena() int64 {
	return inv.CountItemsByID(AdenaItemID)
}

// ReduceAdena списывает Adena. Returns ErrNotEnoughItems если не хватает.
func (inv *Inventory) ReduceAdena(amount int64) error {
	return inv.DestroyItemByItemID(AdenaItemID, amount)
}

// Count возвращает количество стеков.
func (inv *Inventory) Count() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.items)
}

func (inv *Inventory) sortedLocked() []*Item {
	items := make([]*Item, 0, len(inv.items))
	for _, item := range inv.items {
		items = append(items, item)
	}
	slices.SortFunc(items, func(a, b *Item) int {
		return cmp.Compare(a.ObjectID(), b.ObjectID())
	})
	return items
}
