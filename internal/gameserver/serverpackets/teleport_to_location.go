package serverpackets

import (
	"github.com/udisondev/la2go-board/internal/gameserver/packet"
	"github.com/udisondev/la2go-board/internal/model"
)

// OpcodeTeleportToLocation — телепорт персонажа (S2C 0x28).
const OpcodeTeleportToLocation = 0x28

// TeleportToLocation tells the client to move the character.
//
// Packet structure:
//   - opcode (byte) 0x28
//   - objectID (int32)
//   - x, y, z (int32)
//   - fade (int32) 0 = fade effect, 1 = instant
//   - heading (int32)
type TeleportToLocation struct {
	ObjectID int32
	X, Y, Z  int32
	Fade     int32
	Heading  int32
}

// NewTeleportToLocation creates TeleportToLocation with fade effect.
func NewTeleportToLocation(objectID uint32, loc model.Location) TeleportToLocation {
	return TeleportToLocation{
		ObjectID: int32(objectID),
		X:        loc.X,
		Y:        loc.Y,
		Z:        loc.Z,
		Heading:  int32(loc.Heading),
	}
}

// Write serializes TeleportToLocation packet to bytes.
func (p TeleportToLocation) Write() ([]byte, error) {
	w := packet.NewWriter(25)

	w.WriteByte(OpcodeTeleportToLocation)
	w.WriteInt(p.ObjectID)
	w.WriteInt(p.X)
	w.WriteInt(p.Y)
	w.WriteInt(p.Z)
	w.WriteInt(p.Fade)
	w.WriteInt(p.Heading)

	return w.Bytes(), nil
}
