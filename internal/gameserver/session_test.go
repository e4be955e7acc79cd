package gameserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/la2go-board/internal/data"
	"github.com/udisondev/la2go-board/internal/gameserver/packet"
	"github.com/udisondev/la2go-board/internal/gameserver/serverpackets"
	"github.com/udisondev/la2go-board/internal/model"
)

func newSessionPlayer(t *testing.T, items ...*model.Item) (*Session, *recordingSender) {
	t.Helper()
	p, err := model.NewPlayer(200, 2, "acc", "Trader", 30)
	require.NoError(t, err)
	for _, it := range items {
		require.NoError(t, p.Inventory().AddItem(it))
	}
	sender := &recordingSender{}
	return NewSession(p, sender), sender
}

func mustItem(t *testing.T, objID uint32, itemID int32, count int64) *model.Item {
	t.Helper()
	it, err := model.NewItem(objID, itemID, 2, count)
	require.NoError(t, err)
	return it
}

func TestSession_SendBuyList(t *testing.T) {
	require.NoError(t, data.LoadBuylists())

	s, sender := newSessionPlayer(t,
		mustItem(t, 1, 57, 10_000),
		mustItem(t, 2, 736, 3),  // Scroll of Escape, есть в списке 423
		mustItem(t, 3, 9999, 1), // не продаётся
	)

	require.NoError(t, s.SendBuyList(423))
	require.Equal(t, []byte{serverpackets.OpcodeBuyList, serverpackets.OpcodeSellList}, sender.opcodes())

	r := packet.NewReader(sender.packets[1][1:])
	adena, _ := r.ReadInt()
	count, _ := r.ReadShort()
	assert.EqualValues(t, 10_000, adena)
	assert.EqualValues(t, 1, count, "only items from the buylist are sellable")

	_, _ = r.ReadShort()
	objID, _ := r.ReadInt()
	assert.EqualValues(t, 2, objID)

	assert.Error(t, s.SendBuyList(-1))
}

func TestSession_SendMultisellInventoryOnly(t *testing.T) {
	require.NoError(t, data.LoadMultisell())

	s, sender := newSessionPlayer(t, mustItem(t, 1, 4037, 5))

	require.NoError(t, s.SendMultisell(90001, true))
	require.Len(t, sender.packets, 1)

	r := packet.NewReader(sender.packets[0][1:])
	listID, _ := r.ReadInt()
	_, _ = r.ReadInt() // page
	_, _ = r.ReadInt() // finished
	_, _ = r.ReadInt() // page size
	size, _ := r.ReadInt()
	assert.EqualValues(t, 90001, listID)
	assert.EqualValues(t, 1, size, "only the coin entry matches the inventory")

	require.NoError(t, s.SendMultisell(90001, false))
	r = packet.NewReader(sender.packets[1][17:])
	size, _ = r.ReadInt()
	assert.EqualValues(t, 4, size)

	assert.Error(t, s.SendMultisell(1, false))
}

func TestSession_SendHelpers(t *testing.T) {
	s, sender := newSessionPlayer(t)

	s.SendMessage("hi")
	s.CloseBoard()
	s.SendTeleport(model.NewLocation(1, 2, 3, 0))
	s.SendUserInfo()
	s.SendSkillAnimation(s.Player().Character, &data.SkillTemplate{ID: 1040, Level: 3})

	assert.Equal(t, []byte{
		serverpackets.OpcodeCreatureSay,
		serverpackets.OpcodeShowBoard,
		serverpackets.OpcodeTeleportToLocation,
		serverpackets.OpcodeStatusUpdate,
		serverpackets.OpcodeMagicSkillUse,
	}, sender.opcodes())
}
