package serverpackets

import (
	"github.com/udisondev/la2go-board/internal/data"
	"github.com/udisondev/la2go-board/internal/gameserver/packet"
)

// OpcodeMultiSellList — обменный список (S2C 0xD0).
const OpcodeMultiSellList = 0xD0

// MultiSellPageSize — записей на странице.
const MultiSellPageSize = 40

// MultiSellList shows one page of a multisell exchange.
//
// Packet structure:
//   - opcode (byte) 0xD0
//   - listId, page (1-based), finished (1 on last page), pageSize, size (int32)
//   - for each entry: entryId (int32), 0 (int32), 0 (int32), 1 (byte),
//     productCount (short), ingredientCount (short)
//   - for each product: itemId (short), bodyPart (int32), type2 (short),
//     count (int32), enchant (short), augment (int32), mana (int32)
//   - for each ingredient: itemId (short), type2 (short), count (int32),
//     enchant (short), augment (int32), mana (int32)
type MultiSellList struct {
	ListID  int32
	Entries []data.MultisellEntry
	Page    int32
}

// NewMultiSellList creates a packet for the given 1-based page.
// Страница вне диапазона превращается в первую.
func NewMultiSellList(listID int32, entries []data.MultisellEntry, page int32) MultiSellList {
	if page <= 0 || int(page) > MultiSellPages(len(entries)) {
		page = 1
	}
	return MultiSellList{
		ListID:  listID,
		Entries: entries,
		Page:    page,
	}
}

// MultiSellPages returns the page count for n entries (минимум одна страница).
func MultiSellPages(n int) int {
	return max(1, (n+MultiSellPageSize-1)/MultiSellPageSize)
}

// Write serializes MultiSellList packet to bytes.
func (p MultiSellList) Write() ([]byte, error) {
	start := min((int(p.Page)-1)*MultiSellPageSize, len(p.Entries))
	end := min(start+MultiSellPageSize, len(p.Entries))
	page := p.Entries[start:end]

	finished := int32(0)
	if int(p.Page) >= MultiSellPages(len(p.Entries)) {
		finished = 1
	}

	size := 21
	for _, entry := range page {
		size += 17 + len(entry.Productions)*22 + len(entry.Ingredients)*18
	}

	w := packet.NewWriter(size)

	w.WriteByte(OpcodeMultiSellList)
	w.WriteInt(p.ListID)
	w.WriteInt(p.Page)
	w.WriteInt(finished)
	w.WriteInt(MultiSellPageSize)
	w.WriteInt(int32(len(page)))

	for _, entry := range page {
		w.WriteInt(entry.EntryID)
		w.WriteInt(0)
		w.WriteInt(0)
		w.WriteByte(1)

		w.WriteShort(int16(len(entry.Productions)))
		w.WriteShort(int16(len(entry.Ingredients)))

		for _, prod := range entry.Productions {
			w.WriteShort(int16(prod.ItemID))
			w.WriteInt(0)   // bodyPart
			w.WriteShort(0) // type2
			w.WriteInt(clampInt32(prod.Count))
			w.WriteShort(0) // enchant
			w.WriteInt(0)   // augment
			w.WriteInt(0)   // mana
		}

		for _, ing := range entry.Ingredients {
			w.WriteShort(int16(ing.ItemID))
			w.WriteShort(0) // type2
			w.WriteInt(clampInt32(ing.Count))
			w.WriteShort(0) // enchant
			w.WriteInt(0)   // augment
			w.WriteInt(0)   // mana
		}
	}

	return w.Bytes(), nil
}
