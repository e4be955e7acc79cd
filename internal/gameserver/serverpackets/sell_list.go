package serverpackets

import (
	"github.com/udisondev/la2go-board/internal/gameserver/packet"
	"github.com/udisondev/la2go-board/internal/model"
)

// OpcodeSellList — продажа предметов NPC (S2C 0x10).
const OpcodeSellList = 0x10

// SellListItem is one sellable inventory item.
type SellListItem struct {
	Item      *model.Item
	SellPrice int64
}

// SellList sends the player's sellable items.
//
// Packet structure:
//   - opcode (byte) 0x10
//   - adena (int32)
//   - itemCount (short)
//   - for each item: type1 (short), objectID (int32), itemID (int32),
//     count (int32), type2 (short), customType1 (short), equipped (short, 0),
//     bodyPart (int32), enchant (short), customType2 (short),
//     augmentation (int32), mana (int32, -1), price (int32)
type SellList struct {
	PlayerAdena int64
	Items       []SellListItem
}

// NewSellList creates SellList packet.
func NewSellList(playerAdena int64, items []SellListItem) SellList {
	return SellList{
		PlayerAdena: playerAdena,
		Items:       items,
	}
}

// Write serializes SellList packet to bytes.
func (p SellList) Write() ([]byte, error) {
	w := packet.NewWriter(7 + len(p.Items)*40)

	w.WriteByte(OpcodeSellList)
	w.WriteInt(clampInt32(p.PlayerAdena))

	w.WriteShort(int16(len(p.Items)))

	for _, si := range p.Items {
		w.WriteShort(itemType1Etc)
		w.WriteInt(int32(si.Item.ObjectID()))
		w.WriteInt(si.Item.ItemID())
		w.WriteInt(clampInt32(si.Item.Count()))
		w.WriteShort(itemType2Etc)
		w.WriteShort(0) // customType1
		w.WriteShort(0) // equipped
		w.WriteInt(0)   // bodyPart
		w.WriteShort(0) // enchant
		w.WriteShort(0) // customType2
		w.WriteInt(0)   // augmentation
		w.WriteInt(-1)  // mana
		w.WriteInt(clampInt32(si.SellPrice))
	}

	return w.Bytes(), nil
}
