package bbs

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/udisondev/la2go-board/internal/metrics"
)

const (
	// ContentSeparator разделяет ID и HTML-контент в ShowBoard пакете.
	ContentSeparator = "\x08"

	// MaxChunkSize — максимальный размер одной части HTML (байт).
	MaxChunkSize = 4090

	// MaxChunks — максимальное количество частей.
	MaxChunks = 3

	// MaxHTMLSize — максимальный общий размер HTML.
	MaxHTMLSize = MaxChunkSize * MaxChunks // 12270

	// DefaultCommand — bypass-команда по умолчанию при ALT+B.
	DefaultCommand = "_bbshome"
)

// NavigationButtons — 8 фиксированных bypass-кнопок верхней панели Community Board.
var NavigationButtons = [8]string{
	"bypass _bbshome",
	"bypass _bbsgetfav",
	"bypass _bbsloc",
	"bypass _bbsclan",
	"bypass _bbsmemo",
	"bypass _bbsmail",
	"bypass _bbsfriends",
	"bypass bbs_add_fav",
}

// Board handles a set of community board bypass commands.
type Board interface {
	// Name используется в логах и метриках.
	Name() string

	// Commands returns the list of bypass prefixes this board handles.
	Commands() []string

	// OnCommand processes a bypass command.
	// Returns HTML to send, or empty string if nothing should be shown.
	OnCommand(ctx context.Context, cmd string, s Session) string
}

// WriteBoard extends Board with form-write support (RequestBBSwrite).
// Сейчас формы принимает только ClanBoard ("Notice").
type WriteBoard interface {
	Board
	OnWrite(ctx context.Context, s Session, url string, args [5]string) string
}

// Handler dispatches community board commands to registered boards.
// Команда уходит доске с самым длинным совпавшим префиксом.
//
// Thread-safe via sync.RWMutex.
type Handler struct {
	mu       sync.RWMutex
	boards   map[string]Board // prefix → Board
	prefixes []string         // отсортированы по убыванию длины
	enabled  bool

	history *BypassHistory
}

// NewHandler creates a community board handler with the given boards.
func NewHandler(history *BypassHistory, boards ...Board) *Handler {
	if history == nil {
		history = NewBypassHistory()
	}
	h := &Handler{
		boards:  make(map[string]Board),
		enabled: true,
		history: history,
	}
	for _, b := range boards {
		h.Register(b)
	}
	return h
}

// Register adds a board handler for its command prefixes.
func (h *Handler) Register(b Board) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, cmd := range b.Commands() {
		if prev, ok := h.boards[cmd]; ok && prev != b {
			slog.Warn("community board: command re-registered",
				"cmd", cmd, "old", prev.Name(), "new", b.Name())
		}
		h.boards[cmd] = b
	}

	h.prefixes = h.prefixes[:0]
	for prefix := range h.boards {
		h.prefixes = append(h.prefixes, prefix)
	}
	slices.SortFunc(h.prefixes, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}

// Enabled reports whether the community board is enabled.
func (h *Handler) Enabled() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.enabled
}

// SetEnabled enables or disables the community board.
func (h *Handler) SetEnabled(v bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.enabled = v
}

// History возвращает историю bypass'ов игроков.
func (h *Handler) History() *BypassHistory { return h.history }

// AddBypass запоминает последний bypass игрока для "добавить в избранное".
func (h *Handler) AddBypass(objectID uint32, title, bypass string) {
	h.history.Add(objectID, title, bypass)
}

// RemoveBypass забирает запомненный bypass игрока.
func (h *Handler) RemoveBypass(objectID uint32) (Bypass, bool) {
	return h.history.Remove(objectID)
}

// HandleCommand processes a community board bypass command.
// Returns HTML content to send to the client (empty if board not found or disabled).
func (h *Handler) HandleCommand(ctx context.Context, cmd string, s Session) string {
	if !h.Enabled() {
		metrics.BoardRejected.WithLabelValues(metrics.ReasonDisabled).Inc()
		return ""
	}

	prefix, b := h.findBoard(cmd)
	if b == nil {
		slog.Debug("community board: unknown command", "cmd", cmd)
		return ""
	}

	metrics.BoardCommands.WithLabelValues(b.Name(), prefix).Inc()
	return b.OnCommand(ctx, cmd, s)
}

// HandleWrite processes a BBS write request (RequestBBSwrite).
// Returns HTML content to send (empty if not handled).
func (h *Handler) HandleWrite(ctx context.Context, s Session, url string, args [5]string) string {
	if !h.Enabled() {
		return ""
	}

	cmd := mapWriteURL(url)
	if cmd == "" {
		slog.Debug("community board: unknown write URL", "url", url)
		return ""
	}

	_, b := h.findBoard(cmd)
	if b == nil {
		return ""
	}

	wb, ok := b.(WriteBoard)
	if !ok {
		slog.Warn("community board: board does not accept writes", "board", b.Name(), "url", url)
		return ""
	}

	return wb.OnWrite(ctx, s, url, args)
}

// IsBoardCommand reports whether the command is a community board bypass.
func (h *Handler) IsBoardCommand(cmd string) bool {
	_, b := h.findBoard(cmd)
	return b != nil
}

// findBoard returns the longest registered prefix of cmd and its board.
func (h *Handler) findBoard(cmd string) (string, Board) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if b, ok := h.boards[cmd]; ok {
		return cmd, b
	}

	for _, prefix := range h.prefixes {
		if strings.HasPrefix(cmd, prefix) {
			return prefix, h.boards[prefix]
		}
	}

	return "", nil
}

// SplitHTML разбивает HTML на 3 части для отправки через ShowBoard.
// Каждая часть получает ID: "101", "102", "103".
func SplitHTML(html string) []HTMLChunk {
	if len(html) > MaxHTMLSize {
		slog.Warn("community board: HTML too long, truncating",
			"size", len(html),
			"max", MaxHTMLSize)
		html = html[:MaxHTMLSize]
	}

	chunks := make([]HTMLChunk, MaxChunks)
	for i := range MaxChunks {
		id := fmt.Sprintf("10%d", i+1)
		start := i * MaxChunkSize
		if start >= len(html) {
			chunks[i] = HTMLChunk{ID: id}
			continue
		}
		end := min(start+MaxChunkSize, len(html))
		chunks[i] = HTMLChunk{ID: id, Content: html[start:end]}
	}

	return chunks
}

// HTMLChunk represents a piece of HTML content with its ShowBoard ID.
type HTMLChunk struct {
	ID      string // "101", "102", "103"
	Content string
}

// FormatContent formats content for the ShowBoard packet: id + "\x08" + html.
func FormatContent(id, html string) string {
	return id + ContentSeparator + html
}

// mapWriteURL maps RequestBBSwrite URL to a bypass command.
func mapWriteURL(url string) string {
	switch url {
	case "Topic":
		return "_bbstop"
	case "Post":
		return "_bbspos"
	case "Region":
		return "_bbsloc"
	case "Notice":
		return "_bbsclan"
	case "Mail":
		return "_bbsmail"
	default:
		return ""
	}
}
