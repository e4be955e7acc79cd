package gameserver

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/la2go-board/internal/data"
	"github.com/udisondev/la2go-board/internal/game/bbs"
	"github.com/udisondev/la2go-board/internal/gameserver/serverpackets"
	"github.com/udisondev/la2go-board/internal/model"
)

// adenaItemID — адена в список продажи не попадает.
const adenaItemID = 57

// ServerPacket is anything that serializes into a server packet body.
type ServerPacket interface {
	Write() ([]byte, error)
}

// PacketSender доставляет готовый пакет клиенту (шифрование и длину добавляет транспорт).
type PacketSender interface {
	Send(data []byte) error
}

// Session связывает игрока с его соединением.
type Session struct {
	player *model.Player
	sender PacketSender
}

var _ bbs.Session = (*Session)(nil)

// NewSession creates a session for player writing to sender.
func NewSession(player *model.Player, sender PacketSender) *Session {
	return &Session{player: player, sender: sender}
}

// Player returns the session's player.
func (s *Session) Player() *model.Player { return s.player }

// SendPacket serializes and sends one packet.
func (s *Session) SendPacket(p ServerPacket) error {
	data, err := p.Write()
	if err != nil {
		return fmt.Errorf("serializing %T: %w", p, err)
	}
	if err := s.sender.Send(data); err != nil {
		return fmt.Errorf("sending %T: %w", p, err)
	}
	return nil
}

// send — для методов без возврата ошибки: логируем и идём дальше.
func (s *Session) send(p ServerPacket) {
	if err := s.SendPacket(p); err != nil {
		slog.Warn("packet not sent",
			"character", s.player.Name(),
			"error", err)
	}
}

// SendMessage sends a server chat line.
func (s *Session) SendMessage(text string) {
	s.send(serverpackets.NewSystemSay(text))
}

// CloseBoard hides the community board window.
func (s *Session) CloseBoard() {
	s.send(serverpackets.NewShowBoardHide())
}

// SendBoard sends board HTML as three ShowBoard chunks.
func (s *Session) SendBoard(html string) error {
	for _, pkt := range serverpackets.ShowBoardChunks(html) {
		if err := s.SendPacket(pkt); err != nil {
			return err
		}
	}
	return nil
}

// SendNpcHtml opens an NPC dialog window.
func (s *Session) SendNpcHtml(npcObjectID uint32, html string) error {
	return s.SendPacket(serverpackets.NewNpcHtmlMessage(npcObjectID, html))
}

// SendMultisell opens a multisell list. С inventoryOnly остаются записи,
// ингредиенты которых есть в инвентаре.
func (s *Session) SendMultisell(listID int32, inventoryOnly bool) error {
	entries := data.GetMultisellEntries(listID)
	if entries == nil {
		return fmt.Errorf("multisell %d not found", listID)
	}

	if inventoryOnly {
		inv := s.player.Inventory()
		filtered := entries[:0]
		for _, e := range entries {
			for _, ing := range e.Ingredients {
				if inv.CountItemsByID(ing.ItemID) > 0 {
					filtered = append(filtered, e)
					break
				}
			}
		}
		entries = filtered
	}

	return s.SendPacket(serverpackets.NewMultiSellList(listID, entries, 1))
}

// SendBuyList opens the shop: buylist, затем список продажи.
// Продать можно то, что есть в этом buylist'е, за половину цены.
func (s *Session) SendBuyList(listID int32) error {
	products := data.GetBuylistProducts(listID)
	if products == nil {
		return fmt.Errorf("buylist %d not found", listID)
	}

	inv := s.player.Inventory()
	adena := inv.GetAdena()

	if err := s.SendPacket(serverpackets.NewBuyList(adena, listID, products)); err != nil {
		return err
	}

	prices := make(map[int32]int64, len(products))
	for _, p := range products {
		prices[p.ItemID] = p.Price
	}

	var sellable []serverpackets.SellListItem
	for _, item := range inv.GetItems() {
		price, ok := prices[item.ItemID()]
		if !ok || item.ItemID() == adenaItemID {
			continue
		}
		sellable = append(sellable, serverpackets.SellListItem{Item: item, SellPrice: price / 2})
	}

	return s.SendPacket(serverpackets.NewSellList(adena, sellable))
}

// SendSkillAnimation shows the player casting skill on target.
func (s *Session) SendSkillAnimation(target *model.Character, skill *data.SkillTemplate) {
	s.send(serverpackets.NewMagicSkillUse(s.player.Character, target, skill))
}

// SendTeleport moves the player on the client.
func (s *Session) SendTeleport(loc model.Location) {
	s.send(serverpackets.NewTeleportToLocation(s.player.ObjectID(), loc))
}

// SendUserInfo refreshes level, experience and vitals on the client.
func (s *Session) SendUserInfo() {
	s.send(serverpackets.NewPlayerStatusUpdate(s.player))
}
