package bbs

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/udisondev/la2go-board/internal/config"
	"github.com/udisondev/la2go-board/internal/game/premium"
	"github.com/udisondev/la2go-board/internal/game/schemebuffer"
	"github.com/udisondev/la2go-board/internal/game/skill"
	"github.com/udisondev/la2go-board/internal/html"
	"github.com/udisondev/la2go-board/internal/metrics"
)

// Пути шаблонов относительно HTML директории.
const (
	boardDir            = "CommunityBoard/"
	customDir           = boardDir + "Custom/"
	navigationPath      = customDir + "navigation.html"
	bufferMainPath      = customDir + "buffer/main.html"
	bufferNavPath       = customDir + "buffer/navigation.html"
	schemeEditorPath    = customDir + "buffer/scheme.html"
	delevelCompletePath = customDir + "delevel/complete.html"
	premiumThankYouPath = customDir + "premium/thankyou.html"
)

const homeBoardName = "home"

// FavoriteCounter считает закладки персонажа.
type FavoriteCounter interface {
	CountByCharacter(ctx context.Context, characterID int64) (int, error)
}

// ClanCounter считает кланы сервера.
type ClanCounter interface {
	Count(ctx context.Context) (int, error)
}

// HomeDeps — зависимости HomeBoard.
type HomeDeps struct {
	Config  config.GameServer
	HTML    *html.Cache
	Schemes *schemebuffer.Table
	Premium *premium.Manager
	Effects *skill.Registry
	History *BypassHistory

	// Нужны только для стандартной (не custom) главной страницы.
	Favorites FavoriteCounter
	Clans     ClanCounter

	// AfterFunc планирует отложенный вызов. nil — time.AfterFunc.
	AfterFunc func(d time.Duration, f func())
	// Now — источник времени. nil — time.Now.
	Now func() time.Time
}

type route struct {
	handle func(ctx context.Context, cmd string, s Session) string
	// custom — платная услуга, запрещена в бою.
	custom bool
}

// HomeBoard — главная страница Community Board и платные сервисы:
// мультиселлы, телепорты, баффы, схемы баффера, лечение, делевел и премиум.
type HomeBoard struct {
	cfg            config.CommunityBoard
	limits         config.PlayerLimits
	premiumEnabled bool

	cache     *html.Cache
	schemes   *schemebuffer.Table
	premium   *premium.Manager
	effects   *skill.Registry
	history   *BypassHistory
	favorites FavoriteCounter
	clans     ClanCounter
	afterFunc func(d time.Duration, f func())
	now       func() time.Time

	routes   map[string]route
	prefixes []string // по убыванию длины
}

// NewHomeBoard creates the home board. Commands of disabled services
// are not registered at all.
func NewHomeBoard(deps HomeDeps) *HomeBoard {
	b := &HomeBoard{
		cfg:            deps.Config.CommunityBoard,
		limits:         deps.Config.Player,
		premiumEnabled: deps.Config.Premium.Enabled,
		cache:          deps.HTML,
		schemes:        deps.Schemes,
		premium:        deps.Premium,
		effects:        deps.Effects,
		history:        deps.History,
		favorites:      deps.Favorites,
		clans:          deps.Clans,
		afterFunc:      deps.AfterFunc,
		now:            deps.Now,
		routes:         make(map[string]route),
	}
	if b.afterFunc == nil {
		b.afterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	if b.now == nil {
		b.now = time.Now
	}
	if b.history == nil {
		b.history = NewBypassHistory()
	}

	b.routes["_bbshome"] = route{handle: b.showHome}
	b.routes["_bbstop"] = route{handle: b.showTop}

	if b.premiumEnabled && b.cfg.EnablePremium && b.premium != nil {
		b.routes["_bbspremium"] = route{handle: b.buyPremium, custom: true}
	}
	if b.cfg.EnableMultisells {
		b.routes["_bbsexcmultisell"] = route{handle: b.openExcMultisell, custom: true}
		b.routes["_bbsmultisell"] = route{handle: b.openMultisell, custom: true}
		b.routes["_bbssell"] = route{handle: b.openSell, custom: true}
	}
	if b.cfg.EnableTeleports {
		b.routes["_bbsteleport"] = route{handle: b.teleport, custom: true}
	}
	if b.cfg.EnableBuffs {
		b.routes["_bbsbuff"] = route{handle: b.buyBuffs, custom: true}
		b.routes["_bbscreatescheme"] = route{handle: b.createScheme, custom: true}
		b.routes["_bbseditscheme"] = route{handle: b.editScheme, custom: true}
		b.routes["_bbsdeletescheme"] = route{handle: b.deleteScheme, custom: true}
		b.routes["_bbsskillselect"] = route{handle: b.selectSkill, custom: true}
		b.routes["_bbsskillunselect"] = route{handle: b.unselectSkill, custom: true}
		b.routes["_bbsgivebuffs"] = route{handle: b.giveBuffs, custom: true}
	}
	if b.cfg.EnableHeal {
		b.routes["_bbsheal"] = route{handle: b.heal, custom: true}
	}
	if b.cfg.EnableDelevel {
		b.routes["_bbsdelevel"] = route{handle: b.delevel, custom: true}
	}

	for prefix := range b.routes {
		b.prefixes = append(b.prefixes, prefix)
	}
	slices.SortFunc(b.prefixes, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	return b
}

// Name implements Board.
func (b *HomeBoard) Name() string { return homeBoardName }

// Commands implements Board.
func (b *HomeBoard) Commands() []string {
	return slices.Sorted(maps.Keys(b.routes))
}

// OnCommand implements Board.
func (b *HomeBoard) OnCommand(ctx context.Context, cmd string, s Session) string {
	r, ok := b.match(cmd)
	if !ok {
		return ""
	}

	p := s.Player()
	if r.custom && isBusy(p) {
		metrics.BoardRejected.WithLabelValues(metrics.ReasonCombat).Inc()
		s.SendMessage(msgCombat)
		return ""
	}
	if b.cfg.KarmaDisabled && hasKarma(p) {
		metrics.BoardRejected.WithLabelValues(metrics.ReasonKarma).Inc()
		s.SendMessage(msgKarma)
		return ""
	}

	return r.handle(ctx, cmd, s)
}

// match ищет команду с самым длинным префиксом. После префикса допустимы
// только конец строки, ';' или пробел: "_bbshomeX" не является "_bbshome".
func (b *HomeBoard) match(cmd string) (route, bool) {
	for _, prefix := range b.prefixes {
		if hasCommand(cmd, prefix) {
			return b.routes[prefix], true
		}
	}
	return route{}, false
}

// showHome — "_bbshome" и "_bbstop" без аргументов.
func (b *HomeBoard) showHome(ctx context.Context, cmd string, s Session) string {
	return b.renderHome(ctx, cmd, s)
}

// showTop — "_bbstop" или "_bbstop;<file>.html".
func (b *HomeBoard) showTop(ctx context.Context, cmd string, s Session) string {
	if cmd == "_bbstop" {
		return b.renderHome(ctx, cmd, s)
	}

	path, ok := strings.CutPrefix(cmd, "_bbstop;")
	if !ok || !strings.HasSuffix(path, ".html") || len(path) == len(".html") {
		rejectInvalid(cmd, "top page must be <name>.html")
		return ""
	}

	return b.render(ctx, s, b.pageDir()+path, nil)
}

func (b *HomeBoard) renderHome(ctx context.Context, cmd string, s Session) string {
	p := s.Player()
	b.history.Add(p.ObjectID(), "Home", cmd)

	data := html.DialogData{}
	if !b.cfg.CustomEnabled {
		data["fav_count"] = b.favoriteCount(ctx, p.CharacterID())
		data["region_count"] = 0
		data["clan_count"] = b.clanCount(ctx)
	}

	return b.render(ctx, s, b.pageDir()+"home.html", data)
}

func (b *HomeBoard) pageDir() string {
	if b.cfg.CustomEnabled {
		return customDir
	}
	return boardDir
}

func (b *HomeBoard) favoriteCount(ctx context.Context, characterID int64) int {
	if b.favorites == nil {
		return 0
	}
	n, err := b.favorites.CountByCharacter(ctx, characterID)
	if err != nil {
		slog.Warn("community board: counting favorites", "character_id", characterID, "error", err)
		return 0
	}
	return n
}

func (b *HomeBoard) clanCount(ctx context.Context) int {
	if b.clans == nil {
		return 0
	}
	n, err := b.clans.Count(ctx)
	if err != nil {
		slog.Warn("community board: counting clans", "error", err)
		return 0
	}
	return n
}

// customPage — страница "Custom/<page>.html" из аргумента bypass.
func (b *HomeBoard) customPage(ctx context.Context, s Session, page string) string {
	if page == "" {
		return ""
	}
	return b.render(ctx, s, customDir+page+".html", nil)
}

// render исполняет шаблон страницы с общими переменными:
// панель навигации и список схем баффера.
func (b *HomeBoard) render(_ context.Context, s Session, path string, data html.DialogData) string {
	if data == nil {
		data = html.DialogData{}
	}
	p := s.Player()

	if _, ok := data["navigation"]; !ok {
		data["navigation"] = b.renderNavigation(s, navigationPath)
	}
	// Заполняются и без custom режима: страницы баффера доступны по bypass'у,
	// а отсутствующий ключ печатается как "<no value>".
	data["schemes"] = b.schemeRows(p.CharacterID())
	data["max_schemes"] = b.schemes.MaxSchemes()

	out, err := b.cache.Execute(path, data)
	if err != nil {
		slog.Warn("community board: rendering page", "path", path, "error", err)
		return ""
	}
	return out
}

func (b *HomeBoard) renderNavigation(s Session, path string) string {
	p := s.Player()
	var vipUntil time.Time
	if b.premium != nil {
		vipUntil = b.premium.Expiration(p.AccountName())
	}

	out, err := b.cache.Execute(path, navigationData(p, vipUntil, b.now()))
	if err != nil {
		slog.Warn("community board: rendering navigation", "path", path, "error", err)
		return ""
	}
	return out
}

// schemeRows — строки таблицы схем игрока на главной странице баффера.
func (b *HomeBoard) schemeRows(characterID int64) string {
	var sb strings.Builder
	for _, sc := range b.schemes.PlayerSchemes(characterID) {
		cost := b.schemes.Fee(sc.Skills)
		fmt.Fprintf(&sb, `<tr><td align=center><button value="%s" action="bypass _bbsgivebuffs;%s;%d" width=128 height=28 back="L2UI_CT1.Button_DF_Down" fore="L2UI_CT1.Button_DF"></td>`, sc.Name, sc.Name, cost)
		fmt.Fprintf(&sb, `<td align=center><button value="Pet" action="bypass _bbsgivebuffs;%s;%d;pet" width=92 height=28 back="L2UI_CT1.Button_DF_Down" fore="L2UI_CT1.Button_DF"></td>`, sc.Name, cost)
		fmt.Fprintf(&sb, `<td align=center><button value="Summon" action="bypass _bbsgivebuffs;%s;%d;summon" width=92 height=28 back="L2UI_CT1.Button_DF_Down" fore="L2UI_CT1.Button_DF"></td>`, sc.Name, cost)
		fmt.Fprintf(&sb, `<td align=center><button value="Edit" action="bypass _bbseditscheme;Buffs;%s;1" width=64 height=28 back="L2UI_CT1.Button_DF_Down" fore="L2UI_CT1.Button_DF"></td>`, sc.Name)
		fmt.Fprintf(&sb, `<td align=center><button value="X" action="bypass _bbsdeletescheme;%s;1" width=32 height=28 back="L2UI_CT1.Button_DF_Down" fore="L2UI_CT1.Button_DF"></td></tr>`, sc.Name)
	}
	return sb.String()
}

// payCurrency списывает amount предметов itemID. При нехватке игрок получает сообщение.
// amount <= 0 — услуга бесплатна.
func payCurrency(s Session, itemID int32, amount int64, service string) bool {
	if amount <= 0 {
		return true
	}

	inv := s.Player().Inventory()
	if inv.CountItemsByID(itemID) < amount {
		metrics.BoardRejected.WithLabelValues(metrics.ReasonCurrency).Inc()
		s.SendMessage(msgCurrency)
		return false
	}
	if err := inv.DestroyItemByItemID(itemID, amount); err != nil {
		metrics.BoardRejected.WithLabelValues(metrics.ReasonCurrency).Inc()
		slog.Debug("community board: destroying currency", "service", service, "error", err)
		s.SendMessage(msgCurrency)
		return false
	}

	metrics.CurrencySpent.WithLabelValues(service).Add(float64(amount))
	return true
}

func rejectInvalid(cmd, reason string) {
	metrics.BoardRejected.WithLabelValues(metrics.ReasonInvalid).Inc()
	slog.Warn("community board: malformed command", "cmd", cmd, "reason", reason)
}
