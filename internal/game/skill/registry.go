package skill

import (
	"fmt"
	"sync"

	"github.com/udisondev/la2go-board/internal/data"
)

// Registry хранит EffectManager каждого существа по objectID.
type Registry struct {
	mu       sync.Mutex
	managers map[uint32]*EffectManager
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{managers: make(map[uint32]*EffectManager)}
}

// Manager возвращает EffectManager существа, создавая при первом обращении.
func (r *Registry) Manager(objectID uint32) *EffectManager {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.managers[objectID]
	if !ok {
		m = NewEffectManager()
		r.managers[objectID] = m
	}
	return m
}

// Remove снимает все эффекты существа и забывает его.
func (r *Registry) Remove(objectID uint32) {
	r.mu.Lock()
	m, ok := r.managers[objectID]
	delete(r.managers, objectID)
	r.mu.Unlock()

	if ok {
		m.StopAll()
	}
}

// Apply накладывает эффекты скилла на цель без каста.
// Возвращает false если стакинг отклонил эффект.
func (r *Registry) Apply(tmpl *data.SkillTemplate, casterObjID, targetObjID uint32) (bool, error) {
	if tmpl == nil {
		return false, fmt.Errorf("applying nil skill template")
	}
	if !tmpl.IsContinuous() {
		return false, fmt.Errorf("skill %s has no continuous effect", tmpl)
	}

	effects := make([]Effect, 0, len(tmpl.Effects))
	for _, def := range tmpl.Effects {
		eff, err := CreateEffect(def)
		if err != nil {
			return false, fmt.Errorf("skill %s: %w", tmpl, err)
		}
		effects = append(effects, eff)
	}

	m := r.Manager(targetObjID)
	applied := false
	for _, eff := range effects {
		ae := &ActiveEffect{
			CasterObjID:   casterObjID,
			TargetObjID:   targetObjID,
			SkillID:       tmpl.ID,
			SkillLevel:    tmpl.Level,
			Effect:        eff,
			RemainingMs:   tmpl.AbnormalTime * 1000,
			AbnormalType:  tmpl.AbnormalType,
			AbnormalLevel: tmpl.AbnormalLevel,
			IsDance:       tmpl.IsDance,
		}
		if m.AddBuff(ae) {
			applied = true
		}
	}
	return applied, nil
}

// Tick продвигает таймеры всех существ.
func (r *Registry) Tick(deltaMs int32) {
	r.mu.Lock()
	managers := make([]*EffectManager, 0, len(r.managers))
	for _, m := range r.managers {
		managers = append(managers, m)
	}
	r.mu.Unlock()

	for _, m := range managers {
		m.Tick(deltaMs)
	}
}
