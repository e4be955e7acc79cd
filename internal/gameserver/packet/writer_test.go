package packet

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWriter_Numbers(t *testing.T) {
	w := NewWriter(16)

	if err := w.WriteByte(0x42); err != nil {
		t.Fatalf("WriteByte failed: %v", err)
	}
	w.WriteBool(true)
	w.WriteBool(false)
	w.WriteShort(0x1234)
	w.WriteInt(-1)
	w.WriteLong(0x123456789ABCDEF0)

	want := []byte{0x42, 0x01, 0x00}
	want = binary.LittleEndian.AppendUint16(want, 0x1234)
	want = append(want, 0xFF, 0xFF, 0xFF, 0xFF)
	want = binary.LittleEndian.AppendUint64(want, 0x123456789ABCDEF0)

	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("Bytes = % X; want % X", w.Bytes(), want)
	}
	if w.Len() != len(want) {
		t.Errorf("Len = %d; want %d", w.Len(), len(want))
	}
}

func TestWriter_WriteString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []uint16
	}{
		{"empty string", "", []uint16{0}},
		{"ASCII string", "hi", []uint16{'h', 'i', 0}},
		{"Russian string", "да", []uint16{0x0434, 0x0430, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(16)
			w.WriteString(tt.input)

			if !bytes.Equal(w.Bytes(), utf16le(tt.expected...)) {
				t.Errorf("Bytes = % X; want % X", w.Bytes(), utf16le(tt.expected...))
			}
		})
	}
}

func TestWriter_ReaderRoundTrip(t *testing.T) {
	w := NewWriter(64)
	w.WriteString("Topic")
	w.WriteInt(423)
	w.WriteString("_bbsmultisell;1,3")

	r := NewReader(w.Bytes())

	url, err := r.ReadString()
	if err != nil || url != "Topic" {
		t.Fatalf("first string = %q, %v", url, err)
	}
	id, err := r.ReadInt()
	if err != nil || id != 423 {
		t.Fatalf("int = %d, %v", id, err)
	}
	bypass, err := r.ReadString()
	if err != nil || bypass != "_bbsmultisell;1,3" {
		t.Fatalf("second string = %q, %v", bypass, err)
	}
}
