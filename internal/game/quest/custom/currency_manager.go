// Package custom contains server-specific NPC scripts.
package custom

import (
	"context"

	"github.com/udisondev/la2go-board/internal/game/quest"
)

// CurrencyManagerNpcID — NPC обменника валюты.
const CurrencyManagerNpcID int32 = 1002100

// currencyShopPages — событие страницы → файл магазина.
var currencyShopPages = map[string]string{
	"armorshop":  "shoparmor.htm",
	"weaponshop": "shopweapon.htm",
	"jewelshop":  "shopjewel.htm",
}

// NewCurrencyManager creates the currency exchange NPC script.
// Страницы лежат в scripts/custom/CurrencyManager/.
func NewCurrencyManager() *quest.Script {
	s := quest.NewScript("custom/CurrencyManager", "CurrencyManager")
	s.AddStartNpc(CurrencyManagerNpcID)

	s.AddFirstTalkID(CurrencyManagerNpcID, func(context.Context, *quest.Event) string {
		return "1002100.html"
	})

	s.SetOnAdvEvent(func(_ context.Context, ev *quest.Event) string {
		return currencyShopPages[ev.Name]
	})

	return s
}
