package serverpackets

import (
	"github.com/udisondev/la2go-board/internal/gameserver/packet"
)

// OpcodeCreatureSay — сообщение в чат (S2C 0x4A).
const OpcodeCreatureSay = 0x4A

// Chat channels used by the server. Полный список каналов клиенту известен,
// сервер доски пишет только в эти.
const (
	ChatGeneral  int32 = 0
	ChatAnnounce int32 = 10
)

// CreatureSay is a chat line.
//
// Packet structure:
//   - opcode     byte    0x4A
//   - objectID   int32   sender objectID (0 if system)
//   - chatType   int32
//   - senderName string
//   - text       string
type CreatureSay struct {
	ObjectID   int32
	ChatType   int32
	SenderName string
	Text       string
}

// NewCreatureSay creates a new CreatureSay packet.
func NewCreatureSay(objectID int32, chatType int32, senderName, text string) CreatureSay {
	return CreatureSay{
		ObjectID:   objectID,
		ChatType:   chatType,
		SenderName: senderName,
		Text:       text,
	}
}

// NewSystemSay — серверное сообщение игроку без отправителя.
func NewSystemSay(text string) CreatureSay {
	return NewCreatureSay(0, ChatAnnounce, "", text)
}

// Write serializes the CreatureSay packet to bytes.
func (p CreatureSay) Write() ([]byte, error) {
	w := packet.NewWriter(13 + (len(p.SenderName)+len(p.Text))*2)

	w.WriteByte(OpcodeCreatureSay)
	w.WriteInt(p.ObjectID)
	w.WriteInt(p.ChatType)
	w.WriteString(p.SenderName)
	w.WriteString(p.Text)

	return w.Bytes(), nil
}
