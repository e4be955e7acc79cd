package serverpackets

import (
	"github.com/udisondev/la2go-board/internal/game/bbs"
	"github.com/udisondev/la2go-board/internal/gameserver/packet"
)

// OpcodeShowBoard — HTML доски (S2C 0x6E).
const OpcodeShowBoard = 0x6E

// ShowBoard sends one chunk of board HTML, or hides the board.
//
// Packet structure:
//   - opcode (byte) 0x6E
//   - show (byte) 1 = show, 0 = hide
//   - 8 navigation bypass strings (top panel buttons)
//   - content (string) "<id>\u0008<html>"
type ShowBoard struct {
	Show    bool
	Content string
}

// NewShowBoard creates a chunk. id is "101", "102" or "103".
func NewShowBoard(id, html string) ShowBoard {
	return ShowBoard{
		Show:    true,
		Content: bbs.FormatContent(id, html),
	}
}

// NewShowBoardHide creates a packet that closes the board.
func NewShowBoardHide() ShowBoard {
	return ShowBoard{}
}

// Write serializes ShowBoard packet to bytes.
func (p ShowBoard) Write() ([]byte, error) {
	w := packet.NewWriter(2 + 8*80 + len(p.Content)*2 + 2)

	w.WriteByte(OpcodeShowBoard)
	w.WriteBool(p.Show)

	for _, btn := range bbs.NavigationButtons {
		w.WriteString(btn)
	}

	w.WriteString(p.Content)

	return w.Bytes(), nil
}

// ShowBoardChunks режет HTML на три пакета 101, 102, 103.
// Пустые части тоже отправляются: клиент ждёт все три.
func ShowBoardChunks(html string) []ShowBoard {
	chunks := bbs.SplitHTML(html)
	out := make([]ShowBoard, len(chunks))
	for i, c := range chunks {
		out[i] = NewShowBoard(c.ID, c.Content)
	}
	return out
}
