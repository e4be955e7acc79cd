package data

import (
	"fmt"
	"log/slog"
	"strings"
)

// BufferSkill — запись каталога scheme buffer: скилл, группа, цена и описание.
type BufferSkill struct {
	SkillID     int32
	Type        string // "Buffs", "Dances", "Songs"
	Price       int64
	Description string
}

type bufferSkillDef struct {
	skillID     int32
	skillType   string
	price       int64
	description string
}

// bufferSkillDefs — каталог в порядке отображения.
var bufferSkillDefs = []bufferSkillDef{
	{skillID: 1035, skillType: "Buffs", price: 2000, description: "Resistance to mental attacks."},
	{skillID: 1036, skillType: "Buffs", price: 2000, description: "Increases M. Def."},
	{skillID: 1040, skillType: "Buffs", price: 2000, description: "Increases P. Def."},
	{skillID: 1043, skillType: "Buffs", price: 2000, description: "Holy attribute on weapon."},
	{skillID: 1044, skillType: "Buffs", price: 2000, description: "Increases HP regeneration."},
	{skillID: 1045, skillType: "Buffs", price: 2000, description: "Increases Max HP."},
	{skillID: 1048, skillType: "Buffs", price: 2000, description: "Increases Max MP."},
	{skillID: 1059, skillType: "Buffs", price: 2000, description: "Increases M. Atk."},
	{skillID: 1062, skillType: "Buffs", price: 2000, description: "Increases P. Atk. and M. Atk."},
	{skillID: 1068, skillType: "Buffs", price: 2000, description: "Increases P. Atk."},
	{skillID: 1077, skillType: "Buffs", price: 2000, description: "Increases critical rate."},
	{skillID: 1078, skillType: "Buffs", price: 2000, description: "Reduces casting interruption."},
	{skillID: 1085, skillType: "Buffs", price: 2000, description: "Increases casting speed."},
	{skillID: 1086, skillType: "Buffs", price: 2000, description: "Increases attack speed."},
	{skillID: 1204, skillType: "Buffs", price: 2000, description: "Increases speed."},
	{skillID: 1240, skillType: "Buffs", price: 2000, description: "Increases accuracy."},
	{skillID: 1242, skillType: "Buffs", price: 2000, description: "Increases critical damage."},
	{skillID: 1243, skillType: "Buffs", price: 2000, description: "Increases shield defense rate."},
	{skillID: 1268, skillType: "Buffs", price: 2000, description: "Restores HP from damage dealt."},
	{skillID: 1303, skillType: "Buffs", price: 2000, description: "Increases magic critical rate."},
	{skillID: 271, skillType: "Dances", price: 5000, description: "Increases P. Atk."},
	{skillID: 272, skillType: "Dances", price: 5000, description: "Increases accuracy."},
	{skillID: 273, skillType: "Dances", price: 5000, description: "Increases M. Atk."},
	{skillID: 274, skillType: "Dances", price: 5000, description: "Increases critical damage."},
	{skillID: 275, skillType: "Dances", price: 5000, description: "Increases attack speed."},
	{skillID: 276, skillType: "Dances", price: 5000, description: "Increases casting speed."},
	{skillID: 277, skillType: "Dances", price: 5000, description: "Holy attack bonus."},
	{skillID: 307, skillType: "Dances", price: 5000, description: "Water resistance."},
	{skillID: 309, skillType: "Dances", price: 5000, description: "Earth resistance."},
	{skillID: 310, skillType: "Dances", price: 5000, description: "Restores HP from damage dealt."},
	{skillID: 311, skillType: "Dances", price: 5000, description: "Reduces falling damage."},
	{skillID: 264, skillType: "Songs", price: 5000, description: "Increases P. Def."},
	{skillID: 265, skillType: "Songs", price: 5000, description: "Increases HP regeneration."},
	{skillID: 266, skillType: "Songs", price: 5000, description: "Increases evasion."},
	{skillID: 267, skillType: "Songs", price: 5000, description: "Increases M. Def."},
	{skillID: 268, skillType: "Songs", price: 5000, description: "Increases speed."},
	{skillID: 269, skillType: "Songs", price: 5000, description: "Increases critical rate."},
	{skillID: 270, skillType: "Songs", price: 5000, description: "Dark resistance."},
	{skillID: 304, skillType: "Songs", price: 5000, description: "Increases Max HP."},
	{skillID: 305, skillType: "Songs", price: 5000, description: "Reflects damage."},
	{skillID: 306, skillType: "Songs", price: 5000, description: "Fire resistance."},
	{skillID: 308, skillType: "Songs", price: 5000, description: "Wind resistance."},
}

var (
	bufferSkills     map[int32]*BufferSkill
	bufferSkillOrder []*BufferSkill
	bufferSkillTypes []string
)

// LoadBufferSkills строит каталог scheme buffer. Требует LoadSkills().
func LoadBufferSkills() error {
	byID := make(map[int32]*BufferSkill, len(bufferSkillDefs))
	order := make([]*BufferSkill, 0, len(bufferSkillDefs))
	var types []string
	seenType := make(map[string]bool)

	for _, def := range bufferSkillDefs {
		if GetSkillMaxLevel(def.skillID) == 0 {
			return fmt.Errorf("buffer skill %d: no skill template", def.skillID)
		}
		if _, dup := byID[def.skillID]; dup {
			return fmt.Errorf("buffer skill %d: duplicate entry", def.skillID)
		}
		bs := &BufferSkill{
			SkillID:     def.skillID,
			Type:        def.skillType,
			Price:       def.price,
			Description: def.description,
		}
		byID[def.skillID] = bs
		order = append(order, bs)
		if !seenType[def.skillType] {
			seenType[def.skillType] = true
			types = append(types, def.skillType)
		}
	}

	bufferSkills = byID
	bufferSkillOrder = order
	bufferSkillTypes = types

	slog.Info("loaded buffer skills", "count", len(order), "types", len(types))
	return nil
}

// GetBufferSkill возвращает запись каталога (nil если скилла нет в каталоге).
func GetBufferSkill(skillID int32) *BufferSkill {
	return bufferSkills[skillID]
}

// BufferSkillsByType возвращает ID скиллов группы в порядке каталога.
// Сравнение группы без учёта регистра.
func BufferSkillsByType(skillType string) []int32 {
	var ids []int32
	for _, bs := range bufferSkillOrder {
		if strings.EqualFold(bs.Type, skillType) {
			ids = append(ids, bs.SkillID)
		}
	}
	return ids
}

// BufferSkillTypes возвращает группы в порядке первого появления в каталоге.
func BufferSkillTypes() []string {
	return append([]string(nil), bufferSkillTypes...)
}
