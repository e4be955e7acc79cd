package quest

import (
	"context"
	"testing"
)

func TestScript_Hooks(t *testing.T) {
	s := NewScript("custom/Test", "Test")
	fn := func(context.Context, *Event) string { return "" }

	s.AddTalkID(30001, fn)
	s.AddTalkID(30000, fn)
	s.AddFirstTalkID(30001, fn)
	s.SetOnAdvEvent(fn)

	if !s.HasHook(EventTalk, 30000) || !s.HasHook(EventTalk, 30001) {
		t.Error("talk hooks should be registered")
	}
	if s.HasHook(EventFirstTalk, 30000) {
		t.Error("first talk hook for 30000 should not exist")
	}
	if !s.HasHook(EventAdvEvent, 0) {
		t.Error("adv event hook should be registered")
	}

	got := s.RegisteredNPCs(EventTalk)
	if len(got) != 2 || got[0] != 30000 || got[1] != 30001 {
		t.Errorf("RegisteredNPCs(EventTalk) = %v; want [30000 30001]", got)
	}
	if s.RegisteredNPCs(EventAdvEvent) != nil {
		t.Error("adv events are not NPC-bound")
	}
}

func TestScript_StartNpcs(t *testing.T) {
	s := NewScript("custom/Test", "Test")
	s.AddStartNpc(1)
	s.AddStartNpc(1)
	s.AddStartNpc(2)

	got := s.StartNpcs()
	if len(got) != 2 {
		t.Fatalf("StartNpcs() = %v; want 2 entries", got)
	}

	got[0] = 99
	if s.StartNpcs()[0] != 1 {
		t.Error("StartNpcs should return a copy")
	}
}

func TestEventType_String(t *testing.T) {
	tests := []struct {
		t    EventType
		want string
	}{
		{EventTalk, "talk"},
		{EventFirstTalk, "first_talk"},
		{EventAdvEvent, "adv_event"},
		{EventType(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("%d.String() = %q; want %q", tt.t, got, tt.want)
		}
	}
}
