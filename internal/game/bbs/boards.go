package bbs

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/udisondev/la2go-board/internal/html"
)

// Страницы стандартных вкладок.
const (
	regionPath       = boardDir + "region.html"
	regionDetailPath = boardDir + "regiondetail.html"
	clanPath         = boardDir + "clan.html"
	memoPath         = boardDir + "memo.html"
	mailPath         = boardDir + "mail.html"
	friendsPath      = boardDir + "friends.html"
)

// MaxClanNoticeLength — максимальная длина объявления клана в символах.
const MaxClanNoticeLength = 8192

// castleRegions — регионы замков Interlude. Индекс — аргумент "_bbsloc;<n>".
var castleRegions = [...]string{
	"Gludio", "Dion", "Giran", "Oren", "Aden",
	"Innadril", "Goddard", "Rune", "Schuttgart",
}

// noticeEscaper — объявление клана вставляется в HTML как текст.
var noticeEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;", "\r\n", "<br1>", "\n", "<br1>")

// hasCommand reports whether cmd is command itself or command followed by ';' or ' ' and arguments.
func hasCommand(cmd, command string) bool {
	rest, ok := strings.CutPrefix(cmd, command)
	return ok && (rest == "" || rest[0] == ';' || rest[0] == ' ')
}

func renderPage(cache *html.Cache, board, path string, data html.DialogData) string {
	out, err := cache.Execute(path, data)
	if err != nil {
		slog.Warn("community board: rendering page", "board", board, "path", path, "error", err)
		return ""
	}
	return out
}

// RegionBoard handles region information.
// Commands: _bbsloc, _bbsloc;<n>
type RegionBoard struct {
	cache *html.Cache
	rows  string
}

// NewRegionBoard creates the region board.
func NewRegionBoard(cache *html.Cache) *RegionBoard {
	var sb strings.Builder
	for i, name := range castleRegions {
		fmt.Fprintf(&sb, `<tr><td width=200><a action="bypass _bbsloc;%d">%s</a></td><td width=200>NPC</td><td width=200>0%%</td></tr>`, i, name)
	}
	return &RegionBoard{cache: cache, rows: sb.String()}
}

// Name implements Board.
func (b *RegionBoard) Name() string { return "region" }

// Commands implements Board.
func (b *RegionBoard) Commands() []string { return []string{"_bbsloc"} }

// OnCommand implements Board.
func (b *RegionBoard) OnCommand(_ context.Context, cmd string, _ Session) string {
	if !hasCommand(cmd, "_bbsloc") {
		return ""
	}
	if cmd == "_bbsloc" {
		return renderPage(b.cache, b.Name(), regionPath, html.DialogData{"regions": b.rows})
	}

	n, err := strconv.Atoi(strings.TrimPrefix(cmd, "_bbsloc;"))
	if err != nil || n < 0 || n >= len(castleRegions) {
		rejectInvalid(cmd, "unknown region")
		return ""
	}
	return renderPage(b.cache, b.Name(), regionDetailPath, html.DialogData{
		"region_name": castleRegions[n],
	})
}

// ClanNotices хранит объявления кланов.
type ClanNotices interface {
	Notice(ctx context.Context, clanName string) (string, error)
	SetNotice(ctx context.Context, clanName, notice string) error
}

// ClanBoard — вкладка клана: объявление клана, лидер может его изменить
// через RequestBBSwrite ("Notice", arg1 = "Set", arg4 = текст).
type ClanBoard struct {
	cache   *html.Cache
	notices ClanNotices
}

// NewClanBoard creates the clan board.
func NewClanBoard(cache *html.Cache, notices ClanNotices) *ClanBoard {
	return &ClanBoard{cache: cache, notices: notices}
}

// Name implements Board.
func (b *ClanBoard) Name() string { return "clan" }

// Commands implements Board.
func (b *ClanBoard) Commands() []string { return []string{"_bbsclan"} }

// OnCommand implements Board.
func (b *ClanBoard) OnCommand(ctx context.Context, cmd string, s Session) string {
	if !hasCommand(cmd, "_bbsclan") {
		return ""
	}
	return b.page(ctx, s)
}

// OnWrite implements WriteBoard.
func (b *ClanBoard) OnWrite(ctx context.Context, s Session, url string, args [5]string) string {
	if url != "Notice" {
		return ""
	}
	if args[0] != "Set" {
		rejectInvalid("Notice;"+args[0], "unknown clan notice action")
		return b.page(ctx, s)
	}

	p := s.Player()
	clan := p.ClanName()
	if clan == "" || !p.IsClanLeader() {
		s.SendMessage("Only the clan leader can edit the clan notice.")
		return b.page(ctx, s)
	}

	notice := strings.TrimSpace(args[3])
	if utf8.RuneCountInString(notice) > MaxClanNoticeLength {
		s.SendMessage("The clan notice is too long.")
		return b.page(ctx, s)
	}

	if err := b.notices.SetNotice(ctx, clan, notice); err != nil {
		slog.Warn("community board: saving clan notice", "clan", clan, "error", err)
		return b.page(ctx, s)
	}
	s.SendMessage("The clan notice has been saved.")
	return b.page(ctx, s)
}

func (b *ClanBoard) page(ctx context.Context, s Session) string {
	p := s.Player()
	clan := p.ClanName()

	data := html.DialogData{
		"clan_name": clan,
		"notice":    "No clan notices available.",
		"can_edit":  clan != "" && p.IsClanLeader(),
	}
	if clan == "" {
		data["clan_name"] = "No clan"
		data["notice"] = "You are not a member of any clan."
		return renderPage(b.cache, b.Name(), clanPath, data)
	}

	if b.notices != nil {
		notice, err := b.notices.Notice(ctx, clan)
		if err != nil {
			slog.Warn("community board: loading clan notice", "clan", clan, "error", err)
		} else if notice != "" {
			data["notice"] = noticeEscaper.Replace(notice)
		}
	}
	return renderPage(b.cache, b.Name(), clanPath, data)
}

// PageBoard — вкладка с одной страницей без состояния (заметки, почта, друзья).
type PageBoard struct {
	cache    *html.Cache
	name     string
	path     string
	commands []string
}

// NewPageBoard creates a board that renders path for each of commands.
func NewPageBoard(cache *html.Cache, name, path string, commands ...string) *PageBoard {
	return &PageBoard{cache: cache, name: name, path: path, commands: commands}
}

// NewMemoBoard — "_bbsmemo", "_bbstopics".
func NewMemoBoard(cache *html.Cache) *PageBoard {
	return NewPageBoard(cache, "memo", memoPath, "_bbsmemo", "_bbstopics")
}

// NewMailBoard — "_bbsmail".
func NewMailBoard(cache *html.Cache) *PageBoard {
	return NewPageBoard(cache, "mail", mailPath, "_bbsmail")
}

// NewFriendsBoard — "_bbsfriends".
func NewFriendsBoard(cache *html.Cache) *PageBoard {
	return NewPageBoard(cache, "friends", friendsPath, "_bbsfriends")
}

// Name implements Board.
func (b *PageBoard) Name() string { return b.name }

// Commands implements Board.
func (b *PageBoard) Commands() []string { return b.commands }

// OnCommand implements Board.
func (b *PageBoard) OnCommand(_ context.Context, cmd string, s Session) string {
	for _, c := range b.commands {
		if hasCommand(cmd, c) {
			return renderPage(b.cache, b.name, b.path, html.DialogData{"player_name": s.Player().Name()})
		}
	}
	return ""
}
