package world

import (
	"testing"

	"github.com/udisondev/la2go-board/internal/model"
)

func TestObjectIDGenerator_Ranges(t *testing.T) {
	gen := NewObjectIDGenerator()

	if id := gen.NextPlayerID(); id != 0x10000001 {
		t.Errorf("NextPlayerID() = %#x, want 0x10000001", id)
	}
	if id := gen.NextNpcID(); id != 0x20000001 {
		t.Errorf("NextNpcID() = %#x, want 0x20000001", id)
	}
	if id := gen.NextItemID(); id != 0x30000001 {
		t.Errorf("NextItemID() = %#x, want 0x30000001", id)
	}
	if id := gen.NextSummonID(); id != 0x40000001 {
		t.Errorf("NextSummonID() = %#x, want 0x40000001", id)
	}
}

func TestWorld_Npcs(t *testing.T) {
	w := New()

	npc, err := w.SpawnNpc(1002100, "Currency Manager", "Shop", model.Location{})
	if err != nil {
		t.Fatalf("SpawnNpc() error: %v", err)
	}
	got, ok := w.GetNpc(npc.ObjectID())
	if !ok || got.TemplateID() != 1002100 {
		t.Errorf("GetNpc() = %v, %v", got, ok)
	}
	if err := w.AddNpc(npc); err == nil {
		t.Error("AddNpc() duplicate should fail")
	}
	if w.NpcCount() != 1 {
		t.Errorf("NpcCount() = %d, want 1", w.NpcCount())
	}
}

func TestWorld_Players(t *testing.T) {
	w := New()
	p, err := model.NewPlayer(IDGenerator().NextPlayerID(), 1, "acc", "Hero", 10)
	if err != nil {
		t.Fatal(err)
	}
	w.AddPlayer(p)

	if _, ok := w.GetPlayer(p.ObjectID()); !ok {
		t.Error("player should be registered")
	}
	if got := w.FindPlayersByAccount("acc"); len(got) != 1 {
		t.Errorf("FindPlayersByAccount() = %d players, want 1", len(got))
	}

	w.RemovePlayer(p.ObjectID())
	if _, ok := w.GetPlayer(p.ObjectID()); ok {
		t.Error("player should be removed")
	}
}
