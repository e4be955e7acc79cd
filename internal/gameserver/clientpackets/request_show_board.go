package clientpackets

import (
	"github.com/udisondev/la2go-board/internal/gameserver/packet"
)

// OpcodeRequestShowBoard — ALT+B, открыть доску.
const OpcodeRequestShowBoard = 0x57

// RequestShowBoard carries one int32 that the server never uses.
type RequestShowBoard struct {
	Unknown int32
}

// ParseRequestShowBoard parses the packet body. Короткое тело не ошибка:
// поле всё равно игнорируется.
func ParseRequestShowBoard(data []byte) (*RequestShowBoard, error) {
	r := packet.NewReader(data)
	unknown, _ := r.ReadInt()
	return &RequestShowBoard{Unknown: unknown}, nil
}
