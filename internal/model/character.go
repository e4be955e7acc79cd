package model

import (
	"sync"
	"sync/atomic"
	"time"
)

// CombatStanceDuration — сколько персонаж считается "в бою" после последней атаки.
const CombatStanceDuration = 15 * time.Second

// Character — базовый тип для живых существ (Player, Summon).
// Добавляет HP, MP, CP, level к WorldObject.
type Character struct {
	*WorldObject

	statsMu   sync.RWMutex
	level     int32
	currentHP int32
	maxHP     int32
	currentMP int32
	maxMP     int32
	currentCP int32
	maxCP     int32

	isCasting      atomic.Bool
	skillsDisabled atomic.Bool

	// Unix nano последней атаки; 0 — не в бою.
	lastAttack atomic.Int64

	// Битовое поле ZoneID.
	zones atomic.Uint32

	instanceID atomic.Int32
}

// NewCharacter создаёт персонажа с указанными максимальными значениями.
// Текущие HP/MP/CP равны максимальным.
func NewCharacter(objectID uint32, name string, loc Location, level, maxHP, maxMP, maxCP int32) *Character {
	return &Character{
		WorldObject: NewWorldObject(objectID, name, loc),
		level:       level,
		currentHP:   maxHP,
		maxHP:       maxHP,
		currentMP:   maxMP,
		maxMP:       maxMP,
		currentCP:   maxCP,
		maxCP:       maxCP,
	}
}

// Level возвращает уровень.
func (c *Character) Level() int32 {
	c.statsMu.RLock()
	defer c.statsMu.RUnlock()
	return c.level
}

// SetLevel устанавливает уровень (без валидации — её делает Player).
func (c *Character) SetLevel(level int32) {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	c.level = level
}

// CurrentHP возвращает текущее HP.
func (c *Character) CurrentHP() int32 {
	c.statsMu.RLock()
	defer c.statsMu.RUnlock()
	return c.currentHP
}

// MaxHP возвращает максимальное HP.
func (c *Character) MaxHP() int32 {
	c.statsMu.RLock()
	defer c.statsMu.RUnlock()
	return c.maxHP
}

// SetCurrentHP устанавливает текущее HP (clamp 0..maxHP).
func (c *Character) SetCurrentHP(hp int32) {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	c.currentHP = clamp(hp, c.maxHP)
}

// SetMaxHP устанавливает максимальное HP и обрезает текущее при необходимости.
func (c *Character) SetMaxHP(maxHP int32) {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	c.maxHP = max(maxHP, 1)
	c.currentHP = min(c.currentHP, c.maxHP)
}

// CurrentMP возвращает текущее MP.
func (c *Character) CurrentMP() int32 {
	c.statsMu.RLock()
	defer c.statsMu.RUnlock()
	return c.currentMP
}

// MaxMP возвращает максимальное MP.
func (c *Character) MaxMP() int32 {
	c.statsMu.RLock()
	defer c.statsMu.RUnlock()
	return c.maxMP
}

// SetCurrentMP устанавливает текущее MP (clamp 0..maxMP).
func (c *Character) SetCurrentMP(mp int32) {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	c.currentMP = clamp(mp, c.maxMP)
}

// SetMaxMP устанавливает максимальное MP и обрезает текущее при необходимости.
func (c *Character) SetMaxMP(maxMP int32) {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	c.maxMP = max(maxMP, 1)
	c.currentMP = min(c.currentMP, c.maxMP)
}

// CurrentCP возвращает текущее CP.
func (c *Character) CurrentCP() int32 {
	c.statsMu.RLock()
	defer c.statsMu.RUnlock()
	return c.currentCP
}

// MaxCP возвращает максимальное CP.
func (c *Character) MaxCP() int32 {
	c.statsMu.RLock()
	defer c.statsMu.RUnlock()
	return c.maxCP
}

// SetCurrentCP устанавливает текущее CP (clamp 0..maxCP).
func (c *Character) SetCurrentCP(cp int32) {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	c.currentCP = clamp(cp, c.maxCP)
}

// SetMaxCP устанавливает максимальное CP. У саммонов CP нет, поэтому 0 допустим.
func (c *Character) SetMaxCP(maxCP int32) {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	c.maxCP = max(maxCP, 0)
	c.currentCP = min(c.currentCP, c.maxCP)
}

// RestoreVitals восстанавливает HP, MP и CP до максимума одной операцией.
func (c *Character) RestoreVitals() {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	c.currentHP = c.maxHP
	c.currentMP = c.maxMP
	c.currentCP = c.maxCP
}

// IsCastingNow reports whether the character is casting a skill.
func (c *Character) IsCastingNow() bool {
	return c.isCasting.Load()
}

// SetCasting sets the casting flag.
func (c *Character) SetCasting(v bool) {
	c.isCasting.Store(v)
}

// MarkAttackStance records an attack at the current time.
func (c *Character) MarkAttackStance() {
	c.lastAttack.Store(time.Now().UnixNano())
}

// IsInCombat reports whether the last attack happened less than CombatStanceDuration ago.
func (c *Character) IsInCombat() bool {
	last := c.lastAttack.Load()
	if last == 0 {
		return false
	}
	return time.Since(time.Unix(0, last)) < CombatStanceDuration
}

// IsInsideZone reports whether the zone flag is set.
func (c *Character) IsInsideZone(zone ZoneID) bool {
	return c.zones.Load()&(1<<zone) != 0
}

// SetInsideZone sets or clears a zone flag.
func (c *Character) SetInsideZone(zone ZoneID, inside bool) {
	bit := uint32(1) << zone
	for {
		old := c.zones.Load()
		next := old &^ bit
		if inside {
			next = old | bit
		}
		if c.zones.CompareAndSwap(old, next) {
			return
		}
	}
}

// InstanceID возвращает ID инстанса (0 — основной мир).
func (c *Character) InstanceID() int32 {
	return c.instanceID.Load()
}

// SetInstanceID переносит персонажа в инстанс.
func (c *Character) SetInstanceID(id int32) {
	c.instanceID.Store(id)
}

// DisableAllSkills блокирует использование всех скиллов.
func (c *Character) DisableAllSkills() {
	c.skillsDisabled.Store(true)
}

// EnableAllSkills снимает блокировку скиллов.
func (c *Character) EnableAllSkills() {
	c.skillsDisabled.Store(false)
}

// AllSkillsDisabled reports whether skills are blocked.
func (c *Character) AllSkillsDisabled() bool {
	return c.skillsDisabled.Load()
}

func clamp(v, hi int32) int32 {
	if v < 0 {
		return 0
	}
	return min(v, hi)
}
