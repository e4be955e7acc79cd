package serverpackets

import (
	"github.com/udisondev/la2go-board/internal/gameserver/packet"
	"github.com/udisondev/la2go-board/internal/model"
)

// OpcodeStatusUpdate — обновление характеристик (S2C 0x0E).
const OpcodeStatusUpdate = 0x0E

// StatusUpdate attribute IDs.
const (
	AttrLevel     = 0x01
	AttrExp       = 0x02
	AttrCurrentHP = 0x09
	AttrMaxHP     = 0x0A
	AttrCurrentMP = 0x0B
	AttrMaxMP     = 0x0C
	AttrSP        = 0x0D
	AttrKarma     = 0x1B
	AttrCurrentCP = 0x21
	AttrMaxCP     = 0x22
)

// StatusAttribute is a single stat update (ID + value).
type StatusAttribute struct {
	ID    int32
	Value int32
}

// StatusUpdate sends changed stats without a full UserInfo.
type StatusUpdate struct {
	ObjectID   int32
	Attributes []StatusAttribute
}

// NewPlayerStatusUpdate — уровень, опыт, SP, карма и полоски HP/MP/CP.
// Отправляется после делевела и прочих изменений с доски.
func NewPlayerStatusUpdate(player *model.Player) StatusUpdate {
	return StatusUpdate{
		ObjectID: int32(player.ObjectID()),
		Attributes: []StatusAttribute{
			{ID: AttrLevel, Value: player.Level()},
			{ID: AttrExp, Value: clampInt32(player.Experience())},
			{ID: AttrSP, Value: clampInt32(player.SP())},
			{ID: AttrKarma, Value: player.Karma()},
			{ID: AttrCurrentHP, Value: player.CurrentHP()},
			{ID: AttrMaxHP, Value: player.MaxHP()},
			{ID: AttrCurrentMP, Value: player.CurrentMP()},
			{ID: AttrMaxMP, Value: player.MaxMP()},
			{ID: AttrCurrentCP, Value: player.CurrentCP()},
			{ID: AttrMaxCP, Value: player.MaxCP()},
		},
	}
}

// Write serializes StatusUpdate packet to binary format.
func (p StatusUpdate) Write() ([]byte, error) {
	w := packet.NewWriter(9 + len(p.Attributes)*8)

	w.WriteByte(OpcodeStatusUpdate)
	w.WriteInt(p.ObjectID)
	w.WriteInt(int32(len(p.Attributes)))

	for _, attr := range p.Attributes {
		w.WriteInt(attr.ID)
		w.WriteInt(attr.Value)
	}

	return w.Bytes(), nil
}
