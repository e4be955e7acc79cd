package serverpackets

import (
	"github.com/udisondev/la2go-board/internal/gameserver/packet"
)

// OpcodeNpcHtmlMessage — HTML диалог NPC (S2C 0x0F).
const OpcodeNpcHtmlMessage = 0x0F

// NpcHtmlMessage opens an NPC dialog window.
//
// Packet structure:
//   - opcode (byte) 0x0F
//   - npcObjectID (int32) 0 if not from NPC
//   - html (string)
//   - itemID (int32) 0 if not an item dialog
type NpcHtmlMessage struct {
	NpcObjectID int32
	Html        string
	ItemID      int32
}

// NewNpcHtmlMessage creates NpcHtmlMessage from NPC object ID and HTML content.
func NewNpcHtmlMessage(npcObjectID uint32, html string) NpcHtmlMessage {
	return NpcHtmlMessage{
		NpcObjectID: int32(npcObjectID),
		Html:        html,
	}
}

// Write serializes NpcHtmlMessage packet to bytes.
func (p NpcHtmlMessage) Write() ([]byte, error) {
	w := packet.NewWriter(9 + len(p.Html)*2 + 2)

	w.WriteByte(OpcodeNpcHtmlMessage)
	w.WriteInt(p.NpcObjectID)
	w.WriteString(p.Html)
	w.WriteInt(p.ItemID)

	return w.Bytes(), nil
}
