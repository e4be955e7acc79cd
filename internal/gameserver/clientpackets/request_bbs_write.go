package clientpackets

import (
	"fmt"

	"github.com/udisondev/la2go-board/internal/gameserver/packet"
)

// OpcodeRequestBBSwrite — отправка формы с доски.
const OpcodeRequestBBSwrite = 0x22

// RequestBBSwrite is a board form submit.
//
// Packet structure:
//   - url (string): "Topic", "Post", "Mail", "Region" or "Notice"
//   - arg1..arg5 (string x 5): form fields
type RequestBBSwrite struct {
	URL  string
	Args [5]string
}

// ParseRequestBBSwrite parses the packet body. Все шесть строк обязательны.
func ParseRequestBBSwrite(data []byte) (*RequestBBSwrite, error) {
	r := packet.NewReader(data)

	url, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("reading url: %w", err)
	}

	var args [5]string
	for i := range 5 {
		s, err := r.ReadString()
		if err != nil {
			return nil, fmt.Errorf("reading arg%d: %w", i+1, err)
		}
		args[i] = s
	}

	return &RequestBBSwrite{
		URL:  url,
		Args: args,
	}, nil
}
