package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/udisondev/la2go-board/internal/gameserver"
	"github.com/udisondev/la2go-board/internal/gameserver/clientpackets"
	"github.com/udisondev/la2go-board/internal/gameserver/packet"
	"github.com/udisondev/la2go-board/internal/gameserver/serverpackets"
)

// consoleSender печатает серверные пакеты в человекочитаемом виде.
// Три куска ShowBoard склеиваются и печатаются одной страницей.
type consoleSender struct {
	mu    sync.Mutex
	out   io.Writer
	board strings.Builder
}

func newConsoleSender(out io.Writer) *consoleSender {
	return &consoleSender{out: out}
}

// Send implements gameserver.PacketSender.
func (c *consoleSender) Send(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty packet")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	r := packet.NewReader(data[1:])
	switch data[0] {
	case serverpackets.OpcodeShowBoard:
		return c.showBoard(r)
	case serverpackets.OpcodeCreatureSay:
		return c.say(r)
	case serverpackets.OpcodeNpcHtmlMessage:
		return c.npcHtml(r)
	default:
		_, err := fmt.Fprintf(c.out, "[packet 0x%02X] %d bytes\n", data[0], len(data))
		return err
	}
}

func (c *consoleSender) showBoard(r *packet.Reader) error {
	show, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("reading ShowBoard: %w", err)
	}
	for range 8 {
		if _, err := r.ReadString(); err != nil {
			return fmt.Errorf("reading ShowBoard buttons: %w", err)
		}
	}
	content, err := r.ReadString()
	if err != nil {
		return fmt.Errorf("reading ShowBoard content: %w", err)
	}

	if show == 0 {
		c.board.Reset()
		_, err := fmt.Fprintln(c.out, "[board closed]")
		return err
	}

	id, body, _ := strings.Cut(content, "\u0008")
	c.board.WriteString(body)
	if id != "103" {
		return nil
	}

	_, err = fmt.Fprintf(c.out, "[board]\n%s\n", c.board.String())
	c.board.Reset()
	return err
}

func (c *consoleSender) say(r *packet.Reader) error {
	_, _ = r.ReadInt()
	_, _ = r.ReadInt()
	if _, err := r.ReadString(); err != nil {
		return fmt.Errorf("reading CreatureSay: %w", err)
	}
	text, err := r.ReadString()
	if err != nil {
		return fmt.Errorf("reading CreatureSay: %w", err)
	}
	_, err = fmt.Fprintf(c.out, "[chat] %s\n", text)
	return err
}

func (c *consoleSender) npcHtml(r *packet.Reader) error {
	objID, _ := r.ReadInt()
	html, err := r.ReadString()
	if err != nil {
		return fmt.Errorf("reading NpcHtmlMessage: %w", err)
	}
	_, err = fmt.Fprintf(c.out, "[npc %d]\n%s\n", objID, html)
	return err
}

// clientPacket — opcode и тело клиентского пакета.
type clientPacket struct {
	opcode byte
	body   []byte
}

// parseLine превращает строку консоли в клиентский пакет:
//
//	board                     ALT+B
//	write <url> a;b;c;d;e     RequestBBSwrite
//	<anything else>           RequestBypassToServer
func parseLine(line string) (clientPacket, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return clientPacket{}, false
	}

	if line == "board" {
		w := packet.NewWriter(4)
		w.WriteInt(0)
		return clientPacket{opcode: clientpackets.OpcodeRequestShowBoard, body: w.Bytes()}, true
	}

	if rest, ok := strings.CutPrefix(line, "write "); ok {
		url, argLine, _ := strings.Cut(strings.TrimSpace(rest), " ")
		args := strings.Split(argLine, ";")

		w := packet.NewWriter(64)
		w.WriteString(url)
		for i := range 5 {
			arg := ""
			if i < len(args) {
				arg = args[i]
			}
			w.WriteString(arg)
		}
		return clientPacket{opcode: clientpackets.OpcodeRequestBBSwrite, body: w.Bytes()}, true
	}

	w := packet.NewWriter(len(line)*2 + 2)
	w.WriteString(line)
	return clientPacket{opcode: clientpackets.OpcodeRequestBypassToServer, body: w.Bytes()}, true
}

// readLines отдаёт строки in в канал до EOF или отмены ctx.
// Канал закрывается, когда ввод кончился.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 0, 4096), 64*1024)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// runConsole скармливает строки обработчику пакетов, пока не кончится ввод,
// не придёт "quit" или не отменят ctx.
func runConsole(ctx context.Context, h packetHandler, s *gameserver.Session, lines <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			switch strings.TrimSpace(line) {
			case "quit", "exit":
				return nil
			}

			pkt, ok := parseLine(line)
			if !ok {
				continue
			}
			if err := h.HandlePacket(ctx, s, pkt.opcode, pkt.body); err != nil {
				slog.Warn("packet rejected",
					"line", line,
					"error", err)
			}
		}
	}
}

type packetHandler interface {
	HandlePacket(ctx context.Context, s *gameserver.Session, opcode byte, body []byte) error
}
