package skill

import (
	"log/slog"
	"sync"
)

const (
	maxBuffs  = 24
	maxDances = 12
)

// EffectManager хранит активные баффы существа.
// Танцы и песни живут в отдельном списке со своим лимитом.
//
// Thread-safe.
type EffectManager struct {
	mu     sync.RWMutex
	buffs  []*ActiveEffect
	dances []*ActiveEffect

	modifiers []StatModifier
}

// NewEffectManager creates an empty EffectManager.
func NewEffectManager() *EffectManager {
	return &EffectManager{
		buffs:     make([]*ActiveEffect, 0, maxBuffs),
		dances:    make([]*ActiveEffect, 0, maxDances),
		modifiers: make([]StatModifier, 0, 16),
	}
}

// AddBuff накладывает эффект с проверкой стакинга.
// Возвращает true если эффект добавлен, заменён или обновлён.
//
// Стакинг по AbnormalType:
//   - больший AbnormalLevel заменяет существующий
//   - равный обновляет длительность
//   - меньший отклоняется
//
// При переполнении списка снимается самый старый эффект.
func (m *EffectManager) AddBuff(ae *ActiveEffect) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	list, limit := &m.buffs, maxBuffs
	if ae.IsDance {
		list, limit = &m.dances, maxDances
	}

	if ae.AbnormalType != "" {
		for i, existing := range *list {
			if existing.AbnormalType != ae.AbnormalType {
				continue
			}
			switch {
			case ae.AbnormalLevel > existing.AbnormalLevel:
				existing.Effect.OnExit(existing.CasterObjID, existing.TargetObjID)
				(*list)[i] = ae
				ae.Effect.OnStart(ae.CasterObjID, ae.TargetObjID)
				m.rebuildModifiers()
				return true
			case ae.AbnormalLevel == existing.AbnormalLevel:
				existing.RemainingMs = ae.RemainingMs
				return true
			default:
				return false
			}
		}
	}

	if len(*list) >= limit {
		oldest := (*list)[0]
		oldest.Effect.OnExit(oldest.CasterObjID, oldest.TargetObjID)
		*list = (*list)[1:]

		slog.Debug("buff limit reached, removed oldest",
			"removedSkill", oldest.SkillID,
			"target", ae.TargetObjID)
	}

	*list = append(*list, ae)
	ae.Effect.OnStart(ae.CasterObjID, ae.TargetObjID)
	m.rebuildModifiers()
	return true
}

// RemoveBySkillID снимает эффекты скилла.
func (m *EffectManager) RemoveBySkillID(skillID int32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.buffs = removeBySkillID(m.buffs, skillID)
	m.dances = removeBySkillID(m.dances, skillID)
	m.rebuildModifiers()
}

// StopAll снимает все эффекты.
func (m *EffectManager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, ae := range m.buffs {
		ae.Effect.OnExit(ae.CasterObjID, ae.TargetObjID)
	}
	for _, ae := range m.dances {
		ae.Effect.OnExit(ae.CasterObjID, ae.TargetObjID)
	}
	m.buffs = m.buffs[:0]
	m.dances = m.dances[:0]
	m.rebuildModifiers()
}

// GetStatBonus возвращает суммарный бонус к стату.
// Сначала складываются ADD, затем применяются MUL. 0 если модификаторов нет.
func (m *EffectManager) GetStatBonus(stat string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	addBonus := 0.0
	mulBonus := 1.0
	hasMul := false

	for _, mod := range m.modifiers {
		if mod.Stat != stat {
			continue
		}
		switch mod.Type {
		case StatModAdd:
			addBonus += mod.Value
		case StatModMul:
			mulBonus *= mod.Value
			hasMul = true
		}
	}

	if hasMul {
		return addBonus * mulBonus
	}
	return addBonus
}

// Tick уменьшает таймеры и снимает истёкшие эффекты.
func (m *EffectManager) Tick(deltaMs int32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var buffsChanged, dancesChanged bool
	m.buffs, buffsChanged = tickEffects(m.buffs, deltaMs)
	m.dances, dancesChanged = tickEffects(m.dances, deltaMs)

	if buffsChanged || dancesChanged {
		m.rebuildModifiers()
	}
}

// ActiveBuffs returns a copy of active buffs (without dances).
func (m *EffectManager) ActiveBuffs() []*ActiveEffect {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*ActiveEffect, len(m.buffs))
	copy(result, m.buffs)
	return result
}

// ActiveDances returns a copy of active dances and songs.
func (m *EffectManager) ActiveDances() []*ActiveEffect {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*ActiveEffect, len(m.dances))
	copy(result, m.dances)
	return result
}

// HasSkill reports whether an effect of the skill is active.
func (m *EffectManager) HasSkill(skillID int32) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, ae := range m.buffs {
		if ae.SkillID == skillID {
			return true
		}
	}
	for _, ae := range m.dances {
		if ae.SkillID == skillID {
			return true
		}
	}
	return false
}

// BuffCount returns current number of active buffs.
func (m *EffectManager) BuffCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.buffs)
}

// DanceCount returns current number of active dances and songs.
func (m *EffectManager) DanceCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.dances)
}

// rebuildModifiers пересобирает модификаторы. Вызывается под mu.
func (m *EffectManager) rebuildModifiers() {
	m.modifiers = m.modifiers[:0]

	collect := func(effects []*ActiveEffect) {
		for _, ae := range effects {
			if provider, ok := ae.Effect.(StatModifierProvider); ok {
				m.modifiers = append(m.modifiers, provider.StatModifiers()...)
			}
		}
	}

	collect(m.buffs)
	collect(m.dances)
}

func removeBySkillID(effects []*ActiveEffect, skillID int32) []*ActiveEffect {
	n := 0
	for _, ae := range effects {
		if ae.SkillID == skillID {
			ae.Effect.OnExit(ae.CasterObjID, ae.TargetObjID)
		} else {
			effects[n] = ae
			n++
		}
	}
	return effects[:n]
}

// tickEffects возвращает обновлённый слайс и признак удаления.
func tickEffects(effects []*ActiveEffect, deltaMs int32) ([]*ActiveEffect, bool) {
	changed := false
	n := 0
	for _, ae := range effects {
		if !ae.Tick(deltaMs) {
			ae.Effect.OnExit(ae.CasterObjID, ae.TargetObjID)
			changed = true
		} else {
			effects[n] = ae
			n++
		}
	}
	return effects[:n], changed
}
