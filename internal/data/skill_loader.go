package data

import (
	"fmt"
	"log/slog"
)

// SkillTable — глобальный registry всех skill templates.
// map[skillID]map[level]*SkillTemplate
// Загружается через LoadSkills() при старте сервера.
var SkillTable map[int32]map[int32]*SkillTemplate

// skillMaxLevel — precomputed max level per skill ID.
var skillMaxLevel map[int32]int32

// GetSkillTemplate возвращает SkillTemplate по ID и Level.
// Returns nil если скилл не найден.
func GetSkillTemplate(skillID, level int32) *SkillTemplate {
	levels, ok := SkillTable[skillID]
	if !ok {
		return nil
	}
	return levels[level]
}

// GetSkillMaxLevel возвращает максимальный уровень скилла.
// Returns 0 если скилл не найден.
func GetSkillMaxLevel(skillID int32) int32 {
	return skillMaxLevel[skillID]
}

// GetMaxLevelSkill возвращает шаблон скилла максимального уровня (nil если нет).
func GetMaxLevelSkill(skillID int32) *SkillTemplate {
	return GetSkillTemplate(skillID, GetSkillMaxLevel(skillID))
}

// LoadSkills строит SkillTable из Go-литералов (skillDefs).
// Вызывается при старте сервера.
func LoadSkills() error {
	table := make(map[int32]map[int32]*SkillTemplate, len(skillDefs))
	maxLevels := make(map[int32]int32, len(skillDefs))

	var total int
	for i := range skillDefs {
		def := &skillDefs[i]
		if _, dup := table[def.id]; dup {
			return fmt.Errorf("duplicate skill definition id=%d", def.id)
		}
		levels := buildSkillTemplates(def)
		table[def.id] = levels
		maxLevels[def.id] = int32(len(levels))
		total += len(levels)
	}

	SkillTable = table
	skillMaxLevel = maxLevels

	slog.Info("loaded skills", "skill_ids", len(SkillTable), "total_entries", total)
	return nil
}

// buildSkillTemplates создаёт SkillTemplate для каждого уровня скилла из определения.
func buildSkillTemplates(def *skillDef) map[int32]*SkillTemplate {
	levels := max(def.levels, 1)
	out := make(map[int32]*SkillTemplate, int(levels))

	for idx := range levels {
		level := idx + 1
		abnormalLevel := level
		if len(def.abnormalLevel) > 0 {
			abnormalLevel = perLevelInt32(def.abnormalLevel, int(idx))
		}

		out[level] = &SkillTemplate{
			ID:               def.id,
			Level:            level,
			Name:             def.name,
			Icon:             fmt.Sprintf("icon.skill%04d", def.id),
			OperateType:      ParseOperateType(def.operateType),
			TargetType:       ParseTargetType(def.targetType),
			IsMagic:          def.isMagic,
			IsDance:          def.isDance,
			SharedWithSummon: def.sharedWithSummon,
			HitTime:          def.hitTime,
			ReuseDelay:       def.reuseDelay,
			AbnormalType:     def.abnormalType,
			AbnormalLevel:    abnormalLevel,
			AbnormalTime:     perLevelInt32(def.abnormalTime, int(idx)),
			Effects:          buildEffects(def.mods, int(idx)),
		}
	}
	return out
}

func buildEffects(mods []statModDef, idx int) []EffectDef {
	if len(mods) == 0 {
		return nil
	}
	statMods := make([]StatMod, 0, len(mods))
	for _, m := range mods {
		statMods = append(statMods, StatMod{
			Op:   m.op,
			Stat: m.stat,
			Val:  perLevelFloat(m.vals, idx),
		})
	}
	return []EffectDef{{Name: "Buff", StatMods: statMods}}
}

// perLevelInt32 возвращает значение для уровня; короткий массив продлевается последним элементом.
func perLevelInt32(vals []int32, idx int) int32 {
	if len(vals) == 0 {
		return 0
	}
	return vals[min(idx, len(vals)-1)]
}

func perLevelFloat(vals []float64, idx int) float64 {
	if len(vals) == 0 {
		return 0
	}
	return vals[min(idx, len(vals)-1)]
}
