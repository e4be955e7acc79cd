package world

import (
	"fmt"
	"sync"

	"github.com/udisondev/la2go-board/internal/model"
)

// World — реестр объектов, доступных по objectID: NPC и игроки онлайн.
type World struct {
	mu      sync.RWMutex
	npcs    map[uint32]*model.Npc
	players map[uint32]*model.Player
}

// New creates an empty world.
func New() *World {
	return &World{
		npcs:    make(map[uint32]*model.Npc),
		players: make(map[uint32]*model.Player),
	}
}

// AddNpc регистрирует NPC. Повторная регистрация objectID — ошибка.
func (w *World) AddNpc(npc *model.Npc) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.npcs[npc.ObjectID()]; exists {
		return fmt.Errorf("npc objectID=%d already registered", npc.ObjectID())
	}
	w.npcs[npc.ObjectID()] = npc
	return nil
}

// GetNpc returns the NPC by objectID.
func (w *World) GetNpc(objectID uint32) (*model.Npc, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	npc, ok := w.npcs[objectID]
	return npc, ok
}

// SpawnNpc создаёт NPC с новым objectID и регистрирует его.
func (w *World) SpawnNpc(templateID int32, name, title string, loc model.Location) (*model.Npc, error) {
	npc := model.NewNpc(IDGenerator().NextNpcID(), templateID, name, title, loc)
	if err := w.AddNpc(npc); err != nil {
		return nil, err
	}
	return npc, nil
}

// AddPlayer регистрирует игрока онлайн.
func (w *World) AddPlayer(p *model.Player) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.players[p.ObjectID()] = p
}

// RemovePlayer удаляет игрока из мира.
func (w *World) RemovePlayer(objectID uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.players, objectID)
}

// GetPlayer returns the online player by objectID.
func (w *World) GetPlayer(objectID uint32) (*model.Player, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	p, ok := w.players[objectID]
	return p, ok
}

// FindPlayersByAccount возвращает всех игроков онлайн с указанного аккаунта.
func (w *World) FindPlayersByAccount(account string) []*model.Player {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var out []*model.Player
	for _, p := range w.players {
		if p.AccountName() == account {
			out = append(out, p)
		}
	}
	return out
}

// NpcCount returns the number of registered NPCs.
func (w *World) NpcCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.npcs)
}
