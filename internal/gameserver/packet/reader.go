package packet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf16"
)

// MaxStringChars ограничивает длину строки от клиента (в UTF-16 символах).
// Bypass и формы доски короче; всё, что длиннее, считается мусором.
const MaxStringChars = 8192

// ErrShortPacket возвращается, когда в теле пакета не хватает байт.
var ErrShortPacket = errors.New("packet too short")

// Reader читает little-endian поля клиентского пакета.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over the packet body (без opcode).
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) need(n int) error {
	if r.pos+n > len(r.data) {
		return fmt.Errorf("need %d bytes at offset %d, have %d: %w", n, r.pos, len(r.data)-r.pos, ErrShortPacket)
	}
	return nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadShort reads int16.
func (r *Reader) ReadShort() (int16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := int16(binary.LittleEndian.Uint16(r.data[r.pos:]))
	r.pos += 2
	return v, nil
}

// ReadInt reads int32.
func (r *Reader) ReadInt() (int32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := int32(binary.LittleEndian.Uint32(r.data[r.pos:]))
	r.pos += 4
	return v, nil
}

// ReadLong reads int64.
func (r *Reader) ReadLong() (int64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := int64(binary.LittleEndian.Uint64(r.data[r.pos:]))
	r.pos += 8
	return v, nil
}

// ReadString читает UTF-16LE строку до нулевого терминатора.
// Строка без терминатора или длиннее MaxStringChars — ошибка.
func (r *Reader) ReadString() (string, error) {
	units := make([]uint16, 0, 32)
	for {
		if err := r.need(2); err != nil {
			return "", fmt.Errorf("unterminated string: %w", err)
		}
		u := binary.LittleEndian.Uint16(r.data[r.pos:])
		r.pos += 2
		if u == 0 {
			break
		}
		if len(units) == MaxStringChars {
			return "", fmt.Errorf("string longer than %d chars", MaxStringChars)
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units)), nil
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}
