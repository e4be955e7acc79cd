package packet

import (
	"encoding/binary"
	"unicode/utf16"
)

// Writer собирает серверный пакет (без длины и шифрования, их добавляет транспорт).
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer with the given capacity hint.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// WriteByte appends one byte. Ошибки не бывает, сигнатура как у io.ByteWriter.
func (w *Writer) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

// WriteBool пишет 1 или 0 одним байтом.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
		return
	}
	w.buf = append(w.buf, 0)
}

// WriteShort appends int16.
func (w *Writer) WriteShort(v int16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, uint16(v))
}

// WriteInt appends int32.
func (w *Writer) WriteInt(v int32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v))
}

// WriteLong appends int64.
func (w *Writer) WriteLong(v int64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, uint64(v))
}

// WriteString пишет строку в UTF-16LE с нулевым терминатором.
func (w *Writer) WriteString(s string) {
	for _, u := range utf16.Encode([]rune(s)) {
		w.buf = binary.LittleEndian.AppendUint16(w.buf, u)
	}
	w.buf = append(w.buf, 0, 0)
}

// Bytes returns the accumulated packet.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the packet length so far.
func (w *Writer) Len() int {
	return len(w.buf)
}
