package bbs

import (
	"time"

	"github.com/udisondev/la2go-board/internal/html"
	"github.com/udisondev/la2go-board/internal/model"
)

// Формат дат на страницах доски: dd.MM.yyyy HH:mm.
const dateLayout = "02.01.2006 15:04"

const (
	noClan = "No clan"
	noVIP  = "No active VIP"
)

// navigationData заполняет переменные панели навигации.
// vipUntil — окончание премиума аккаунта, нулевое время если его нет.
func navigationData(p *model.Player, vipUntil, now time.Time) html.DialogData {
	clan := p.ClanName()
	if clan == "" {
		clan = noClan
	}

	premium := "No"
	if p.HasPremiumStatus() {
		premium = "Yes"
	}

	vip := noVIP
	if vipUntil.After(now) {
		vip = vipUntil.Format(dateLayout)
	}

	return html.DialogData{
		"player_name":    p.Name(),
		"account_name":   p.AccountName(),
		"clan_name":      clan,
		"premium_status": premium,
		"pvp_kills":      p.PvPKills(),
		"pk_kills":       p.PKKills(),
		"vip_expiration": vip,
	}
}
