package bbs

import (
	"context"
	"strings"
	"testing"
)

type testBoard struct {
	name   string
	cmds   []string
	calls  []string
	result string
}

func (b *testBoard) Name() string       { return b.name }
func (b *testBoard) Commands() []string { return b.cmds }

func (b *testBoard) OnCommand(_ context.Context, cmd string, _ Session) string {
	b.calls = append(b.calls, cmd)
	return b.result
}

type testWriteBoard struct {
	testBoard
	url  string
	args [5]string
}

func (b *testWriteBoard) OnWrite(_ context.Context, _ Session, url string, args [5]string) string {
	b.url = url
	b.args = args
	return "written"
}

func TestNewHandler(t *testing.T) {
	h := NewHandler(nil)

	if h == nil {
		t.Fatal("NewHandler returned nil")
	}
	if !h.Enabled() {
		t.Error("should be enabled by default")
	}
	if h.History() == nil {
		t.Error("history should be created")
	}
}

func TestHandler_SetEnabled(t *testing.T) {
	h := NewHandler(nil)

	h.SetEnabled(false)
	if h.Enabled() {
		t.Error("should be disabled")
	}

	h.SetEnabled(true)
	if !h.Enabled() {
		t.Error("should be enabled")
	}
}

func TestHandler_HandleCommand_LongestPrefix(t *testing.T) {
	short := &testBoard{name: "short", cmds: []string{"_bbsskill"}, result: "short"}
	long := &testBoard{name: "long", cmds: []string{"_bbsskillunselect"}, result: "long"}
	h := NewHandler(nil, short, long)
	s := newFakeSession(t)

	if got := h.HandleCommand(context.Background(), "_bbsskillunselect;Buffs;a;1;1", s); got != "long" {
		t.Errorf("HandleCommand() = %q; want %q", got, "long")
	}
	if got := h.HandleCommand(context.Background(), "_bbsskillselect;Buffs;a;1;1", s); got != "short" {
		t.Errorf("HandleCommand() = %q; want %q", got, "short")
	}
	if len(long.calls) != 1 || len(short.calls) != 1 {
		t.Errorf("calls long=%d short=%d; want 1 and 1", len(long.calls), len(short.calls))
	}
}

func TestHandler_HandleCommand_Exact(t *testing.T) {
	b := &testBoard{name: "home", cmds: []string{"_bbshome"}, result: "home"}
	h := NewHandler(nil, b)

	if got := h.HandleCommand(context.Background(), "_bbshome", newFakeSession(t)); got != "home" {
		t.Errorf("HandleCommand(_bbshome) = %q; want %q", got, "home")
	}
}

func TestHandler_HandleCommand_Unknown(t *testing.T) {
	h := NewHandler(nil, &testBoard{name: "home", cmds: []string{"_bbshome"}, result: "home"})

	if got := h.HandleCommand(context.Background(), "_bbsunknown", newFakeSession(t)); got != "" {
		t.Errorf("unknown command should return empty, got %q", got)
	}
}

func TestHandler_HandleCommand_Disabled(t *testing.T) {
	b := &testBoard{name: "home", cmds: []string{"_bbshome"}, result: "home"}
	h := NewHandler(nil, b)
	h.SetEnabled(false)

	if got := h.HandleCommand(context.Background(), "_bbshome", newFakeSession(t)); got != "" {
		t.Errorf("disabled handler should return empty, got %q", got)
	}
	if len(b.calls) != 0 {
		t.Error("board should not be called when disabled")
	}
}

func TestHandler_IsBoardCommand(t *testing.T) {
	h := NewHandler(nil, &testBoard{name: "merchant", cmds: []string{"_bbsgetfav", "bbs_add_fav"}})

	tests := []struct {
		cmd  string
		want bool
	}{
		{"_bbsgetfav", true},
		{"_bbsgetfav;merchant.html", true},
		{"bbs_add_fav", true},
		{"_bbshome", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := h.IsBoardCommand(tt.cmd); got != tt.want {
			t.Errorf("IsBoardCommand(%q) = %v; want %v", tt.cmd, got, tt.want)
		}
	}
}

func TestHandler_Register_Replace(t *testing.T) {
	first := &testBoard{name: "first", cmds: []string{"_bbshome"}, result: "first"}
	second := &testBoard{name: "second", cmds: []string{"_bbshome"}, result: "second"}
	h := NewHandler(nil, first)
	h.Register(second)

	if got := h.HandleCommand(context.Background(), "_bbshome", newFakeSession(t)); got != "second" {
		t.Errorf("HandleCommand() = %q; want %q", got, "second")
	}
}

func TestHandler_HandleWrite(t *testing.T) {
	wb := &testWriteBoard{testBoard: testBoard{name: "top", cmds: []string{"_bbstop"}}}
	h := NewHandler(nil, wb)
	args := [5]string{"a", "b", "c", "d", "e"}

	if got := h.HandleWrite(context.Background(), newFakeSession(t), "Topic", args); got != "written" {
		t.Errorf("HandleWrite(Topic) = %q; want %q", got, "written")
	}
	if wb.url != "Topic" || wb.args != args {
		t.Errorf("OnWrite got url=%q args=%v", wb.url, wb.args)
	}
}

func TestHandler_HandleWrite_NotWriteBoard(t *testing.T) {
	h := NewHandler(nil, &testBoard{name: "top", cmds: []string{"_bbstop"}, result: "top"})

	if got := h.HandleWrite(context.Background(), newFakeSession(t), "Topic", [5]string{}); got != "" {
		t.Errorf("board without OnWrite should return empty, got %q", got)
	}
}

func TestHandler_HandleWrite_Disabled(t *testing.T) {
	wb := &testWriteBoard{testBoard: testBoard{name: "top", cmds: []string{"_bbstop"}}}
	h := NewHandler(nil, wb)
	h.SetEnabled(false)

	if got := h.HandleWrite(context.Background(), newFakeSession(t), "Topic", [5]string{}); got != "" {
		t.Errorf("disabled handler should return empty, got %q", got)
	}
}

func TestHandler_HandleWrite_UnknownURL(t *testing.T) {
	h := NewHandler(nil)

	if got := h.HandleWrite(context.Background(), newFakeSession(t), "Bogus", [5]string{}); got != "" {
		t.Errorf("unknown URL should return empty, got %q", got)
	}
}

func TestHandler_BypassHistory(t *testing.T) {
	h := NewHandler(nil)

	if _, ok := h.RemoveBypass(1); ok {
		t.Error("empty history should have no bypass")
	}

	h.AddBypass(1, "Home", "_bbshome")
	h.AddBypass(1, "Shop", "_bbstop;shop.html")

	got, ok := h.RemoveBypass(1)
	if !ok {
		t.Fatal("RemoveBypass() should find the last bypass")
	}
	if got.Title != "Shop" || got.Bypass != "_bbstop;shop.html" {
		t.Errorf("RemoveBypass() = %+v; want last added", got)
	}
	if _, ok := h.RemoveBypass(1); ok {
		t.Error("bypass should be removed after RemoveBypass")
	}
}

// --- SplitHTML tests ---

func TestSplitHTML_Empty(t *testing.T) {
	chunks := SplitHTML("")

	if len(chunks) != 3 {
		t.Fatalf("SplitHTML(\"\") chunks = %d; want 3", len(chunks))
	}
	for i, c := range chunks {
		if c.Content != "" {
			t.Errorf("chunk[%d] content should be empty", i)
		}
	}
	if chunks[0].ID != "101" || chunks[1].ID != "102" || chunks[2].ID != "103" {
		t.Error("chunk IDs should be 101, 102, 103")
	}
}

func TestSplitHTML_Short(t *testing.T) {
	html := "<html>short</html>"
	chunks := SplitHTML(html)

	if len(chunks) != 3 {
		t.Fatalf("chunks count = %d; want 3", len(chunks))
	}
	if chunks[0].Content != html {
		t.Errorf("chunk[0] = %q; want %q", chunks[0].Content, html)
	}
	if chunks[1].Content != "" {
		t.Error("chunk[1] should be empty")
	}
	if chunks[2].Content != "" {
		t.Error("chunk[2] should be empty")
	}
}

func TestSplitHTML_TwoParts(t *testing.T) {
	html := strings.Repeat("A", MaxChunkSize+100)
	chunks := SplitHTML(html)

	if len(chunks) != 3 {
		t.Fatalf("chunks count = %d; want 3", len(chunks))
	}
	if len(chunks[0].Content) != MaxChunkSize {
		t.Errorf("chunk[0] len = %d; want %d", len(chunks[0].Content), MaxChunkSize)
	}
	if len(chunks[1].Content) != 100 {
		t.Errorf("chunk[1] len = %d; want 100", len(chunks[1].Content))
	}
	if chunks[2].Content != "" {
		t.Error("chunk[2] should be empty")
	}
}

func TestSplitHTML_ThreeParts(t *testing.T) {
	html := strings.Repeat("B", MaxChunkSize*2+500)
	chunks := SplitHTML(html)

	if len(chunks[0].Content) != MaxChunkSize {
		t.Errorf("chunk[0] len = %d; want %d", len(chunks[0].Content), MaxChunkSize)
	}
	if len(chunks[1].Content) != MaxChunkSize {
		t.Errorf("chunk[1] len = %d; want %d", len(chunks[1].Content), MaxChunkSize)
	}
	if len(chunks[2].Content) != 500 {
		t.Errorf("chunk[2] len = %d; want 500", len(chunks[2].Content))
	}
}

func TestSplitHTML_Overflow(t *testing.T) {
	html := strings.Repeat("C", MaxHTMLSize+1000)
	chunks := SplitHTML(html)

	total := 0
	for _, c := range chunks {
		total += len(c.Content)
	}
	if total > MaxHTMLSize {
		t.Errorf("total content size = %d; should be <= %d", total, MaxHTMLSize)
	}
}

func TestFormatContent(t *testing.T) {
	content := FormatContent("101", "<html>hello</html>")
	if content != "101\x08<html>hello</html>" {
		t.Errorf("FormatContent() = %q; want %q", content, "101\x08<html>hello</html>")
	}
}

func TestMapWriteURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"Topic", "_bbstop"},
		{"Post", "_bbspos"},
		{"Region", "_bbsloc"},
		{"Notice", "_bbsclan"},
		{"Mail", "_bbsmail"},
		{"Unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		got := mapWriteURL(tt.url)
		if got != tt.want {
			t.Errorf("mapWriteURL(%q) = %q; want %q", tt.url, got, tt.want)
		}
	}
}

func TestNavigationButtons(t *testing.T) {
	if len(NavigationButtons) != 8 {
		t.Fatalf("NavigationButtons count = %d; want 8", len(NavigationButtons))
	}

	if NavigationButtons[0] != "bypass _bbshome" {
		t.Errorf("NavigationButtons[0] = %q; want %q", NavigationButtons[0], "bypass _bbshome")
	}
	if NavigationButtons[7] != "bypass bbs_add_fav" {
		t.Errorf("NavigationButtons[7] = %q; want %q", NavigationButtons[7], "bypass bbs_add_fav")
	}
}

func TestConstants(t *testing.T) {
	if MaxChunkSize != 4090 {
		t.Errorf("MaxChunkSize = %d; want 4090", MaxChunkSize)
	}
	if MaxChunks != 3 {
		t.Errorf("MaxChunks = %d; want 3", MaxChunks)
	}
	if MaxHTMLSize != 12270 {
		t.Errorf("MaxHTMLSize = %d; want 12270", MaxHTMLSize)
	}
	if DefaultCommand != "_bbshome" {
		t.Errorf("DefaultCommand = %q; want %q", DefaultCommand, "_bbshome")
	}
	if ContentSeparator != "\x08" {
		t.Errorf("ContentSeparator = %q; want \\x08", ContentSeparator)
	}
}
