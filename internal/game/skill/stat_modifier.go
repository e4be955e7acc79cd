package skill

import "strings"

// StatModType — как модификатор применяется к стату.
type StatModType int8

const (
	StatModAdd StatModType = iota // +100 pAtk
	StatModMul                    // ×1.2 speed
)

// ParseStatModType maps "add"/"mul" (any case) to StatModType. Unknown → add.
func ParseStatModType(op string) StatModType {
	if strings.EqualFold(op, "mul") {
		return StatModMul
	}
	return StatModAdd
}

// StatModifier — одна модификация стата от эффекта.
type StatModifier struct {
	Stat  string // "pAtk", "pDef", "runSpd", "mAtk", "maxHp"...
	Type  StatModType
	Value float64
}

// StatModifierProvider реализуется эффектами, меняющими статы.
type StatModifierProvider interface {
	StatModifiers() []StatModifier
}
