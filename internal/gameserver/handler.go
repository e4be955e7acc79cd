package gameserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/udisondev/la2go-board/internal/game/bbs"
	"github.com/udisondev/la2go-board/internal/game/quest"
	"github.com/udisondev/la2go-board/internal/gameserver/clientpackets"
	"github.com/udisondev/la2go-board/internal/html"
	"github.com/udisondev/la2go-board/internal/metrics"
	"github.com/udisondev/la2go-board/internal/model"
	"github.com/udisondev/la2go-board/internal/world"
)

// Префиксы bypass'ов, которые обслуживает доска.
var boardPrefixes = [...]string{"_bbs", "_tc", "bbs_"}

// Handler processes game client packets that reach the board and NPC scripts.
type Handler struct {
	board   *bbs.Handler
	quests  *quest.Manager
	dialogs *html.DialogManager
	world   *world.World
}

// NewHandler creates a new packet handler.
func NewHandler(board *bbs.Handler, quests *quest.Manager, dialogs *html.DialogManager, w *world.World) *Handler {
	return &Handler{
		board:   board,
		quests:  quests,
		dialogs: dialogs,
		world:   w,
	}
}

// HandlePacket dispatches a decrypted client packet. Неизвестный opcode
// не ошибка: пакет логируется и пропускается.
func (h *Handler) HandlePacket(ctx context.Context, s *Session, opcode byte, body []byte) error {
	metrics.ClientPackets.WithLabelValues(fmt.Sprintf("0x%02X", opcode)).Inc()

	switch opcode {
	case clientpackets.OpcodeRequestShowBoard:
		if _, err := clientpackets.ParseRequestShowBoard(body); err != nil {
			return fmt.Errorf("parsing RequestShowBoard: %w", err)
		}
		return h.showBoard(ctx, s, bbs.DefaultCommand)

	case clientpackets.OpcodeRequestBypassToServer:
		pkt, err := clientpackets.ParseRequestBypassToServer(body)
		if errors.Is(err, clientpackets.ErrEmptyBypass) {
			slog.Debug("empty bypass ignored", "character", s.Player().Name())
			return nil
		}
		if err != nil {
			return fmt.Errorf("parsing RequestBypassToServer: %w", err)
		}
		return h.handleBypass(ctx, s, pkt.Bypass)

	case clientpackets.OpcodeRequestBBSwrite:
		pkt, err := clientpackets.ParseRequestBBSwrite(body)
		if err != nil {
			return fmt.Errorf("parsing RequestBBSwrite: %w", err)
		}
		return h.sendBoard(s, h.board.HandleWrite(ctx, s, pkt.URL, pkt.Args))

	default:
		slog.Warn("unknown packet opcode",
			"opcode", fmt.Sprintf("0x%02X", opcode),
			"character", s.Player().Name())
		return nil
	}
}

// Disconnect забывает состояние игрока на доске.
func (h *Handler) Disconnect(s *Session) {
	h.board.History().Forget(s.Player().ObjectID())
}

func (h *Handler) handleBypass(ctx context.Context, s *Session, bypass string) error {
	switch {
	case isBoardBypass(bypass):
		return h.showBoard(ctx, s, bypass)
	case strings.HasPrefix(bypass, "npc_"):
		return h.handleNpcBypass(ctx, s, bypass)
	default:
		slog.Warn("unhandled bypass",
			"bypass", bypass,
			"character", s.Player().Name())
		return nil
	}
}

func isBoardBypass(bypass string) bool {
	for _, p := range boardPrefixes {
		if strings.HasPrefix(bypass, p) {
			return true
		}
	}
	return false
}

func (h *Handler) showBoard(ctx context.Context, s *Session, cmd string) error {
	return h.sendBoard(s, h.board.HandleCommand(ctx, cmd, s))
}

// sendBoard отправляет страницу; пустой ответ значит, что доска уже всё сделала сама.
func (h *Handler) sendBoard(s *Session, content string) error {
	if content == "" {
		return nil
	}
	if err := s.SendBoard(content); err != nil {
		return fmt.Errorf("sending board: %w", err)
	}
	return nil
}

// handleNpcBypass обрабатывает "npc_<objectID>_<command> [args]".
func (h *Handler) handleNpcBypass(ctx context.Context, s *Session, bypass string) error {
	cmd, err := html.ParseNpcBypass(bypass)
	if err != nil {
		slog.Warn("invalid npc bypass",
			"bypass", bypass,
			"character", s.Player().Name(),
			"error", err)
		return nil
	}

	npc, ok := h.world.GetNpc(cmd.ObjectID)
	if !ok {
		slog.Debug("bypass to unknown npc",
			"objectID", cmd.ObjectID,
			"character", s.Player().Name())
		return nil
	}

	player := s.Player()

	var page string
	switch cmd.Command {
	case "Quest":
		page, err = h.npcQuest(ctx, npc, player, cmd.Args)
	case "Chat":
		page, err = h.npcChat(ctx, npc, player, cmd.Arg(0))
	case "Link":
		page, err = h.dialogs.ExecuteLink(cmd.Arg(0), npcDialogData(npc, player))
	case "Multisell":
		err = withListID(cmd.Arg(0), func(id int32) error { return s.SendMultisell(id, false) })
	case "Shop", "Sell":
		err = withListID(cmd.Arg(0), s.SendBuyList)
	}
	if err != nil {
		slog.Warn("npc bypass failed",
			"bypass", bypass,
			"npc", npc.TemplateID(),
			"character", player.Name(),
			"error", err)
		return nil
	}

	if page == "" {
		return nil
	}
	if err := s.SendNpcHtml(npc.ObjectID(), page); err != nil {
		return fmt.Errorf("sending npc html: %w", err)
	}
	return nil
}

// npcQuest: "Quest" без аргументов — talk, иначе "Quest <script> <event...>".
func (h *Handler) npcQuest(ctx context.Context, npc *model.Npc, player *model.Player, args []string) (string, error) {
	if len(args) == 0 {
		return h.quests.OnTalk(ctx, npc, player), nil
	}
	return h.quests.NotifyEvent(ctx, args[0], strings.Join(args[1:], " "), npc, player)
}

// npcChat: "Chat 0" (или без номера) — первый клик по NPC, остальное — страницы диалога.
func (h *Handler) npcChat(ctx context.Context, npc *model.Npc, player *model.Player, arg string) (string, error) {
	n := 0
	if arg != "" {
		var err error
		if n, err = strconv.Atoi(arg); err != nil || n < 0 {
			return "", fmt.Errorf("invalid chat page %q", arg)
		}
	}

	if n == 0 {
		if h.quests.HasFirstTalk(npc.TemplateID()) {
			if page := h.quests.OnFirstTalk(ctx, npc, player); page != "" {
				return page, nil
			}
		}
		return h.dialogs.GetNpcDialog("", npc.TemplateID(), npcDialogData(npc, player))
	}
	return h.dialogs.GetDialogPage("", npc.TemplateID(), n, npcDialogData(npc, player))
}

func npcDialogData(npc *model.Npc, player *model.Player) html.DialogData {
	return html.DialogData{
		"objectId":   npc.ObjectID(),
		"npcname":    npc.Name(),
		"playername": player.Name(),
	}
}

func withListID(arg string, fn func(int32) error) error {
	id, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid list id %q: %w", arg, err)
	}
	return fn(int32(id))
}
