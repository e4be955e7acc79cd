package clientpackets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/udisondev/la2go-board/internal/gameserver/packet"
)

// OpcodeRequestBypassToServer — клик по bypass-ссылке в диалоге или на доске.
const OpcodeRequestBypassToServer = 0x21

// ErrEmptyBypass is returned for a bypass that is blank after trimming.
var ErrEmptyBypass = errors.New("empty bypass")

// RequestBypassToServer is sent when the player clicks a link like:
//
//	<a action="bypass _bbsbuffer">Buffer</a>
//	<a action="bypass -h npc_12345_Quest CurrencyManager armorshop">Armor</a>
//
// Packet structure:
//   - bypass (string)
type RequestBypassToServer struct {
	Bypass string
}

// ParseRequestBypassToServer parses the packet body. Пробелы по краям отрезаются.
func ParseRequestBypassToServer(data []byte) (*RequestBypassToServer, error) {
	r := packet.NewReader(data)

	bypass, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("reading bypass: %w", err)
	}

	bypass = strings.TrimSpace(bypass)
	if bypass == "" {
		return nil, ErrEmptyBypass
	}

	return &RequestBypassToServer{Bypass: bypass}, nil
}
