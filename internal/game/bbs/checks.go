package bbs

import (
	"github.com/udisondev/la2go-board/internal/model"
)

// Сообщения отказа.
const (
	msgCombat   = "You can't use the Community Board right now."
	msgKarma    = "Players with Karma cannot use the Community Board."
	msgCurrency = "Not enough currency!"
)

// isBusy — игрок в состоянии, когда платные услуги запрещены.
func isBusy(p *model.Player) bool {
	return p.IsCastingNow() ||
		p.IsInCombat() ||
		p.IsInDuel() ||
		p.IsInOlympiadMode() ||
		p.IsInsideZone(model.ZoneIDSiege) ||
		p.IsInsideZone(model.ZoneIDPVP)
}

// hasKarma — игрок с кармой.
func hasKarma(p *model.Player) bool {
	return p.Karma() > 0
}
