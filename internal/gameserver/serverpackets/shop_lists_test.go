package serverpackets

import (
	"testing"

	"github.com/udisondev/la2go-board/internal/data"
	"github.com/udisondev/la2go-board/internal/gameserver/packet"
	"github.com/udisondev/la2go-board/internal/model"
)

func TestBuyList_Write(t *testing.T) {
	products := []data.BuylistProduct{
		{ItemID: 1463, Count: -1, Price: 7},
		{ItemID: 736, Count: -1, Price: 400},
	}

	raw, err := NewBuyList(5000, 423, products).Write()
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	// 11 header + 40 per product
	if len(raw) != 11+2*40 {
		t.Fatalf("len = %d, want %d", len(raw), 11+2*40)
	}

	r := packet.NewReader(raw)
	op, _ := r.ReadByte()
	adena, _ := r.ReadInt()
	listID, _ := r.ReadInt()
	count, _ := r.ReadShort()
	if op != OpcodeBuyList || adena != 5000 || listID != 423 || count != 2 {
		t.Errorf("header = 0x%02X/%d/%d/%d", op, adena, listID, count)
	}

	_, _ = r.ReadShort() // type1
	_, _ = r.ReadInt()   // objectID
	itemID, _ := r.ReadInt()
	stock, _ := r.ReadInt()
	if itemID != 1463 || stock != -1 {
		t.Errorf("first product = %d x %d; want 1463 x -1", itemID, stock)
	}
}

func TestSellList_Write(t *testing.T) {
	item, err := model.NewItem(300, 1463, 1, 250)
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}

	raw, err := NewSellList(1<<40, []SellListItem{{Item: item, SellPrice: 3}}).Write()
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	if len(raw) != 7+40 {
		t.Fatalf("len = %d, want %d", len(raw), 7+40)
	}

	r := packet.NewReader(raw)
	op, _ := r.ReadByte()
	adena, _ := r.ReadInt()
	count, _ := r.ReadShort()
	if op != OpcodeSellList || count != 1 {
		t.Errorf("header = 0x%02X/%d", op, count)
	}
	if adena != 1<<31-1 {
		t.Errorf("adena = %d; want clamped to int32 max", adena)
	}

	_, _ = r.ReadShort()
	objID, _ := r.ReadInt()
	itemID, _ := r.ReadInt()
	cnt, _ := r.ReadInt()
	if objID != 300 || itemID != 1463 || cnt != 250 {
		t.Errorf("item = %d/%d/%d; want 300/1463/250", objID, itemID, cnt)
	}
}
