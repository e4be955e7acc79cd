package bbs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/la2go-board/internal/config"
	"github.com/udisondev/la2go-board/internal/data"
	"github.com/udisondev/la2go-board/internal/game/premium"
	"github.com/udisondev/la2go-board/internal/game/schemebuffer"
	"github.com/udisondev/la2go-board/internal/game/skill"
	"github.com/udisondev/la2go-board/internal/html"
	"github.com/udisondev/la2go-board/internal/model"
)

type multisellCall struct {
	listID        int32
	inventoryOnly bool
}

type fakeSession struct {
	player     *model.Player
	messages   []string
	closed     int
	multisells []multisellCall
	buyLists   []int32
	animations []int32
	teleports  []model.Location
	userInfo   int
}

func newFakeSession(t *testing.T) *fakeSession {
	t.Helper()
	p, err := model.NewPlayer(100, 1, "account", "Hero", 40)
	require.NoError(t, err)
	return &fakeSession{player: p}
}

func (s *fakeSession) Player() *model.Player   { return s.player }
func (s *fakeSession) SendMessage(text string) { s.messages = append(s.messages, text) }
func (s *fakeSession) CloseBoard()             { s.closed++ }
func (s *fakeSession) SendUserInfo()           { s.userInfo++ }

func (s *fakeSession) SendMultisell(listID int32, inventoryOnly bool) error {
	s.multisells = append(s.multisells, multisellCall{listID: listID, inventoryOnly: inventoryOnly})
	return nil
}

func (s *fakeSession) SendBuyList(listID int32) error {
	s.buyLists = append(s.buyLists, listID)
	return nil
}

func (s *fakeSession) SendSkillAnimation(_ *model.Character, skill *data.SkillTemplate) {
	s.animations = append(s.animations, skill.ID)
}

func (s *fakeSession) SendTeleport(loc model.Location) {
	s.teleports = append(s.teleports, loc)
}

func (s *fakeSession) giveItems(t *testing.T, objectID uint32, itemID int32, count int64) {
	t.Helper()
	item, err := model.NewItem(objectID, itemID, s.player.CharacterID(), count)
	require.NoError(t, err)
	require.NoError(t, s.player.Inventory().AddItem(item))
}

type fakeFavorites struct {
	count int
	err   error
	added []Bypass
}

func (f *fakeFavorites) CountByCharacter(context.Context, int64) (int, error) { return f.count, f.err }

func (f *fakeFavorites) Add(_ context.Context, _ int64, title, bypass string) error {
	f.added = append(f.added, Bypass{Title: title, Bypass: bypass})
	return nil
}

type fakeClans struct{ count int }

func (c fakeClans) Count(context.Context) (int, error) { return c.count, nil }

// testPages — минимальные шаблоны доски.
var testPages = map[string]string{
	"CommunityBoard/home.html":                      `STD fav={{index . "fav_count"}} region={{index . "region_count"}} clan={{index . "clan_count"}} {{index . "navigation"}}`,
	"CommunityBoard/merchant.html":                  `MERCHANT {{index . "merchant_nav"}}`,
	"CommunityBoard/tcservices.html":                `SERVICES {{index . "merchant_nav"}}`,
	"CommunityBoard/tcmiscellaneous.html":           `MISC {{index . "merchant_nav"}}`,
	"CommunityBoard/Custom/home.html":               `HOME {{index . "navigation"}} SCHEMES {{index . "schemes"}} MAX {{index . "max_schemes"}}`,
	"CommunityBoard/Custom/navigation.html":         `NAV {{index . "player_name"}}|{{index . "account_name"}}|{{index . "clan_name"}}|{{index . "premium_status"}}|{{index . "pvp_kills"}}|{{index . "pk_kills"}}|{{index . "vip_expiration"}}`,
	"CommunityBoard/Custom/shop.html":               `SHOP`,
	"CommunityBoard/Custom/buffs.html":              `BUFFS`,
	"CommunityBoard/Custom/buffer/main.html":        `BUFFER {{index . "navigation"}} {{index . "schemes"}}`,
	"CommunityBoard/Custom/buffer/navigation.html":  `BUFNAV {{index . "player_name"}}`,
	"CommunityBoard/Custom/buffer/scheme.html":      `EDIT {{index . "schemename"}} [{{index . "count"}}] {{index . "typesframe"}} {{index . "skilllistframe"}}`,
	"CommunityBoard/Custom/delevel/complete.html":   `DELEVEL`,
	"CommunityBoard/Custom/premium/thankyou.html":   `THANKS {{index . "playername"}}`,
	"CommunityBoard/region.html":                    `REGIONS {{index . "regions"}}`,
	"CommunityBoard/regiondetail.html":              `REGION {{index . "region_name"}}`,
	"CommunityBoard/clan.html":                      `CLAN {{index . "clan_name"}}: {{index . "notice"}}{{if index . "can_edit"}} EDIT{{end}}`,
	"CommunityBoard/memo.html":                      `MEMO {{index . "player_name"}}`,
	"CommunityBoard/mail.html":                      `MAIL {{index . "player_name"}}`,
	"CommunityBoard/friends.html":                   `FRIENDS {{index . "player_name"}}`,
}

func newTestCache(t *testing.T) *html.Cache {
	t.Helper()
	dir := t.TempDir()
	for name, content := range testPages {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	cache, err := html.NewCache(dir, false)
	require.NoError(t, err)
	return cache
}

type testBoardEnv struct {
	board     *HomeBoard
	schemes   *schemebuffer.Table
	premium   *premium.Manager
	effects   *skill.Registry
	history   *BypassHistory
	favorites *fakeFavorites
	// Отложенные вызовы AfterFunc.
	scheduled []func()
	delays    []time.Duration
}

func testConfig() config.GameServer {
	cfg := config.DefaultGameServer()
	cfg.CommunityBoard.EnableDelevel = true
	cfg.CommunityBoard.EnablePremium = true
	cfg.CommunityBoard.CurrencyItemID = 57
	cfg.CommunityBoard.TeleportPrice = 100
	cfg.CommunityBoard.BuffPrice = 10
	cfg.CommunityBoard.HealPrice = 50
	cfg.CommunityBoard.DelevelPrice = 1000
	cfg.CommunityBoard.PremiumCoinID = 4037
	cfg.CommunityBoard.PremiumPricePerDay = 5
	cfg.CommunityBoard.AvailableBuffs = []int32{1035, 1040, 271}
	return cfg
}

func newTestHomeBoard(t *testing.T, mutate func(*config.GameServer)) *testBoardEnv {
	t.Helper()
	require.NoError(t, data.LoadSkills())
	require.NoError(t, data.LoadBufferSkills())

	cfg := testConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	env := &testBoardEnv{
		schemes:   schemebuffer.NewTable(cfg.Buffer, nil),
		premium:   premium.NewManager(nil),
		effects:   skill.NewRegistry(),
		history:   NewBypassHistory(),
		favorites: &fakeFavorites{count: 3},
	}
	env.board = NewHomeBoard(HomeDeps{
		Config:    cfg,
		HTML:      newTestCache(t),
		Schemes:   env.schemes,
		Premium:   env.premium,
		Effects:   env.effects,
		History:   env.history,
		Favorites: env.favorites,
		Clans:     fakeClans{count: 2},
		AfterFunc: func(d time.Duration, f func()) {
			env.delays = append(env.delays, d)
			env.scheduled = append(env.scheduled, f)
		},
	})
	return env
}

func (e *testBoardEnv) run(s *fakeSession, cmd string) string {
	return e.board.OnCommand(context.Background(), cmd, s)
}
