package bbs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/udisondev/la2go-board/internal/html"
)

const merchantBoardName = "merchant"

// merchantButtons — кнопки боковой панели магазина: подпись и bypass.
var merchantButtons = [][2]string{
	{"Home", "_bbsgetfav;merchant.html"},
	{"Services", "_tcservices;tcservices.html"},
	{"Miscellaneous", "_tcmiscellaneous;tcmiscellaneous.html"},
}

// FavoriteStore сохраняет закладки персонажа.
type FavoriteStore interface {
	Add(ctx context.Context, characterID int64, title, bypass string) error
}

// MerchantBoard — вкладка "Избранное", переделанная под страницы магазина.
// bbs_add_fav сохраняет последнюю открытую страницу доски в закладки.
type MerchantBoard struct {
	cache     *html.Cache
	favorites FavoriteStore
	history   *BypassHistory
	nav       string
}

// NewMerchantBoard creates the merchant board.
func NewMerchantBoard(cache *html.Cache, favorites FavoriteStore, history *BypassHistory) *MerchantBoard {
	if history == nil {
		history = NewBypassHistory()
	}
	return &MerchantBoard{
		cache:     cache,
		favorites: favorites,
		history:   history,
		nav:       merchantNav(),
	}
}

// Name implements Board.
func (b *MerchantBoard) Name() string { return merchantBoardName }

// Commands implements Board.
func (b *MerchantBoard) Commands() []string {
	return []string{"_bbsgetfav", "_tcservices", "_tcmiscellaneous", "bbs_add_fav"}
}

// OnCommand implements Board.
func (b *MerchantBoard) OnCommand(ctx context.Context, cmd string, s Session) string {
	switch {
	case hasCommand(cmd, "_bbsgetfav"):
		return b.page(boardDir + "merchant.html")
	case hasCommand(cmd, "_tcservices"):
		return b.page(boardDir + "tcservices.html")
	case hasCommand(cmd, "_tcmiscellaneous"):
		return b.page(boardDir + "tcmiscellaneous.html")
	case hasCommand(cmd, "bbs_add_fav"):
		b.addFavorite(ctx, s)
		return b.page(boardDir + "merchant.html")
	default:
		return ""
	}
}

func (b *MerchantBoard) addFavorite(ctx context.Context, s Session) {
	p := s.Player()
	last, ok := b.history.Remove(p.ObjectID())
	if !ok || b.favorites == nil {
		return
	}

	if err := b.favorites.Add(ctx, p.CharacterID(), last.Title, last.Bypass); err != nil {
		slog.Warn("community board: adding favorite",
			"character_id", p.CharacterID(),
			"bypass", last.Bypass,
			"error", err)
	}
}

func (b *MerchantBoard) page(path string) string {
	out, err := b.cache.Execute(path, html.DialogData{"merchant_nav": b.nav})
	if err != nil {
		slog.Warn("community board: rendering merchant page", "path", path, "error", err)
		return ""
	}
	return out
}

func merchantNav() string {
	var sb strings.Builder
	sb.WriteString("<table width=180 >")
	sb.WriteString("<tr><td height=60></td></tr>")
	for _, btn := range merchantButtons {
		fmt.Fprintf(&sb, `<tr><td align="center"><button value="%s" action="bypass %s" width=160 height=42 back="L2UI_CT1.Button_DF_Down" fore="L2UI_CT1.Button_DF"></button></td></tr>`, btn[0], btn[1])
	}
	sb.WriteString("</table>")
	return sb.String()
}
