package data

import "fmt"

// OperateType определяет тип активации скилла.
type OperateType int8

const (
	OperateTypeA1 OperateType = iota // Active instant (damage, heal)
	OperateTypeA2                    // Active continuous (buff/debuff)
	OperateTypeP                     // Passive
	OperateTypeT                     // Toggle
)

// ParseOperateType converts a literal operate type to OperateType.
// Unknown values map to A1.
func ParseOperateType(s string) OperateType {
	switch s {
	case "A2":
		return OperateTypeA2
	case "P":
		return OperateTypeP
	case "T":
		return OperateTypeT
	default:
		return OperateTypeA1
	}
}

// TargetType определяет тип цели скилла.
type TargetType int8

const (
	TargetSelf  TargetType = iota // Self-cast
	TargetOne                     // Single target
	TargetParty                   // Party members
)

// ParseTargetType converts a literal target type to TargetType.
func ParseTargetType(s string) TargetType {
	switch s {
	case "ONE":
		return TargetOne
	case "PARTY":
		return TargetParty
	default:
		return TargetSelf
	}
}

// StatMod — runtime stat modifier inside an effect.
type StatMod struct {
	Op   string  // "add", "mul"
	Stat string  // "pAtk", "runSpd", "critRate"...
	Val  float64 // resolved numeric value
}

// EffectDef описывает один эффект скилла.
type EffectDef struct {
	Name     string // "Buff", "Heal"
	StatMods []StatMod
}

// SkillTemplate — immutable шаблон скилла.
// Один экземпляр на каждую пару (skillID, level).
// Shared across all players — НЕ модифицировать после загрузки.
type SkillTemplate struct {
	ID          int32
	Level       int32
	Name        string
	Icon        string // client texture, "icon.skill1040"
	OperateType OperateType
	TargetType  TargetType
	IsMagic     bool

	// IsDance — танцы и песни занимают отдельные слоты.
	IsDance bool

	// SharedWithSummon — эффект на хозяине распространяется на саммонов,
	// поэтому саммону такой скилл отдельно не накладывают.
	SharedWithSummon bool

	HitTime    int32 // ms — cast time animation
	ReuseDelay int32 // ms

	AbnormalType  string // "PA_UP", "SPEED_UP", etc.
	AbnormalLevel int32
	AbnormalTime  int32 // seconds
	Effects       []EffectDef
}

// IsPassive returns true if this skill is a passive skill.
func (s *SkillTemplate) IsPassive() bool {
	return s.OperateType == OperateTypeP
}

// IsContinuous returns true if the skill leaves a timed abnormal effect.
func (s *SkillTemplate) IsContinuous() bool {
	return s.OperateType == OperateTypeA2 && s.AbnormalTime > 0
}

// String returns "Name (id/level)".
func (s *SkillTemplate) String() string {
	return fmt.Sprintf("%s (%d/%d)", s.Name, s.ID, s.Level)
}
