package serverpackets

import (
	"github.com/udisondev/la2go-board/internal/data"
	"github.com/udisondev/la2go-board/internal/gameserver/packet"
	"github.com/udisondev/la2go-board/internal/model"
)

// OpcodeMagicSkillUse — анимация каста (S2C 0x48).
const OpcodeMagicSkillUse = 0x48

// MagicSkillUse starts the cast animation on the client.
type MagicSkillUse struct {
	CasterObjectID int32
	TargetObjectID int32
	SkillID        int32
	SkillLevel     int32
	HitTime        int32 // ms
	ReuseDelay     int32 // ms
	CasterX        int32
	CasterY        int32
	CasterZ        int32
}

// NewMagicSkillUse builds the animation packet for caster casting skill on target.
func NewMagicSkillUse(caster, target *model.Character, skill *data.SkillTemplate) MagicSkillUse {
	loc := caster.Location()
	return MagicSkillUse{
		CasterObjectID: int32(caster.ObjectID()),
		TargetObjectID: int32(target.ObjectID()),
		SkillID:        skill.ID,
		SkillLevel:     skill.Level,
		HitTime:        skill.HitTime,
		ReuseDelay:     skill.ReuseDelay,
		CasterX:        loc.X,
		CasterY:        loc.Y,
		CasterZ:        loc.Z,
	}
}

// Write serializes the MagicSkillUse packet.
func (p MagicSkillUse) Write() ([]byte, error) {
	w := packet.NewWriter(37)

	w.WriteByte(OpcodeMagicSkillUse)
	w.WriteInt(p.CasterObjectID)
	w.WriteInt(p.TargetObjectID)
	w.WriteInt(p.SkillID)
	w.WriteInt(p.SkillLevel)
	w.WriteInt(p.HitTime)
	w.WriteInt(p.ReuseDelay)
	w.WriteInt(p.CasterX)
	w.WriteInt(p.CasterY)
	w.WriteInt(p.CasterZ)

	return w.Bytes(), nil
}
