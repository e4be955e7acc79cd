package serverpackets

import (
	"github.com/udisondev/la2go-board/internal/data"
	"github.com/udisondev/la2go-board/internal/gameserver/packet"
)

// OpcodeBuyList — магазин NPC (S2C 0x11).
const OpcodeBuyList = 0x11

// itemType1Etc / itemType2Etc — расходники. Других предметов в buylist'ах доски нет.
const (
	itemType1Etc = 4
	itemType2Etc = 5
)

// BuyList sends the items available for purchase.
//
// Packet structure:
//   - opcode (byte) 0x11
//   - adena (int32)
//   - listID (int32)
//   - itemCount (short)
//   - for each item: type1 (short), objectID (int32, 0), itemID (int32),
//     count (int32, -1 = unlimited), type2 (short), customType1 (short),
//     bodyPart (int32), enchant (short), customType2 (short),
//     augmentation (int32), mana (int32, -1), price (int32)
type BuyList struct {
	PlayerAdena int64
	ListID      int32
	Products    []data.BuylistProduct
}

// NewBuyList creates BuyList packet.
func NewBuyList(playerAdena int64, listID int32, products []data.BuylistProduct) BuyList {
	return BuyList{
		PlayerAdena: playerAdena,
		ListID:      listID,
		Products:    products,
	}
}

// Write serializes BuyList packet to bytes.
func (p BuyList) Write() ([]byte, error) {
	w := packet.NewWriter(11 + len(p.Products)*40)

	w.WriteByte(OpcodeBuyList)
	w.WriteInt(clampInt32(p.PlayerAdena))
	w.WriteInt(p.ListID)

	w.WriteShort(int16(len(p.Products)))

	for _, prod := range p.Products {
		w.WriteShort(itemType1Etc)
		w.WriteInt(0) // objectID
		w.WriteInt(prod.ItemID)
		w.WriteInt(prod.Count)
		w.WriteShort(itemType2Etc)
		w.WriteShort(0) // customType1
		w.WriteInt(0)   // bodyPart
		w.WriteShort(0) // enchant
		w.WriteShort(0) // customType2
		w.WriteInt(0)   // augmentation
		w.WriteInt(-1)  // mana
		w.WriteInt(clampInt32(prod.Price))
	}

	return w.Bytes(), nil
}

// clampInt32 — клиент C4 принимает количества и цены как int32.
func clampInt32(v int64) int32 {
	return int32(min(max(v, 0), 1<<31-1))
}
