package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/la2go-board/internal/gameserver"
	"github.com/udisondev/la2go-board/internal/gameserver/clientpackets"
	"github.com/udisondev/la2go-board/internal/gameserver/serverpackets"
	"github.com/udisondev/la2go-board/internal/model"
)

func TestParseLine(t *testing.T) {
	_, ok := parseLine("   ")
	assert.False(t, ok)

	pkt, ok := parseLine("board")
	require.True(t, ok)
	assert.Equal(t, byte(clientpackets.OpcodeRequestShowBoard), pkt.opcode)

	pkt, ok = parseLine("_bbsbuff;1040;1")
	require.True(t, ok)
	assert.Equal(t, byte(clientpackets.OpcodeRequestBypassToServer), pkt.opcode)
	bypass, err := clientpackets.ParseRequestBypassToServer(pkt.body)
	require.NoError(t, err)
	assert.Equal(t, "_bbsbuff;1040;1", bypass.Bypass)

	pkt, ok = parseLine("write Topic first;second")
	require.True(t, ok)
	assert.Equal(t, byte(clientpackets.OpcodeRequestBBSwrite), pkt.opcode)
	write, err := clientpackets.ParseRequestBBSwrite(pkt.body)
	require.NoError(t, err)
	assert.Equal(t, "Topic", write.URL)
	assert.Equal(t, [5]string{"first", "second", "", "", ""}, write.Args)
}

func TestConsoleSender(t *testing.T) {
	var out bytes.Buffer
	c := newConsoleSender(&out)

	html := strings.Repeat("x", 5000)
	for _, pkt := range serverpackets.ShowBoardChunks(html) {
		raw, err := pkt.Write()
		require.NoError(t, err)
		require.NoError(t, c.Send(raw))
	}
	assert.Equal(t, "[board]\n"+html+"\n", out.String())

	out.Reset()
	raw, err := serverpackets.NewSystemSay("You used heal!").Write()
	require.NoError(t, err)
	require.NoError(t, c.Send(raw))
	assert.Equal(t, "[chat] You used heal!\n", out.String())

	out.Reset()
	raw, err = serverpackets.NewShowBoardHide().Write()
	require.NoError(t, err)
	require.NoError(t, c.Send(raw))
	assert.Equal(t, "[board closed]\n", out.String())

	out.Reset()
	raw, err = serverpackets.NewNpcHtmlMessage(7, "<html>hi</html>").Write()
	require.NoError(t, err)
	require.NoError(t, c.Send(raw))
	assert.Equal(t, "[npc 7]\n<html>hi</html>\n", out.String())

	out.Reset()
	require.NoError(t, c.Send([]byte{0x28, 1, 2}))
	assert.Equal(t, "[packet 0x28] 3 bytes\n", out.String())

	assert.Error(t, c.Send(nil))
}

type recordingHandler struct {
	opcodes []byte
}

func (h *recordingHandler) HandlePacket(_ context.Context, _ *gameserver.Session, opcode byte, _ []byte) error {
	h.opcodes = append(h.opcodes, opcode)
	return nil
}

func TestRunConsole(t *testing.T) {
	p, err := model.NewPlayer(1, 1, "acc", "Hero", 10)
	require.NoError(t, err)
	s := gameserver.NewSession(p, newConsoleSender(&bytes.Buffer{}))

	h := &recordingHandler{}
	in := strings.NewReader("board\n\n_bbshome\nquit\n_bbsbuffer\n")

	require.NoError(t, runConsole(context.Background(), h, s, readLines(context.Background(), in)))
	assert.Equal(t, []byte{clientpackets.OpcodeRequestShowBoard, clientpackets.OpcodeRequestBypassToServer}, h.opcodes)
}

func TestRunConsole_StopsOnCancel(t *testing.T) {
	p, err := model.NewPlayer(1, 1, "acc", "Hero", 10)
	require.NoError(t, err)
	s := gameserver.NewSession(p, newConsoleSender(&bytes.Buffer{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lines := make(chan string)
	assert.NoError(t, runConsole(ctx, &recordingHandler{}, s, lines))
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}
