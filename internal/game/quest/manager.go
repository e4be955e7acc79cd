package quest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/udisondev/la2go-board/internal/html"
	"github.com/udisondev/la2go-board/internal/metrics"
	"github.com/udisondev/la2go-board/internal/model"
)

// Manager manages script registration and event dispatch.
// Thread-safe for concurrent access.
type Manager struct {
	mu sync.RWMutex

	scripts map[string]*Script // name → Script

	// NPC event index: eventType → npcTemplateID → []*Script
	npcIndex map[EventType]map[int32][]*Script

	dialogs *html.DialogManager
}

// NewManager creates a script manager. Pages returned by hooks are
// rendered through dialogs.
func NewManager(dialogs *html.DialogManager) *Manager {
	return &Manager{
		scripts:  make(map[string]*Script, 16),
		npcIndex: make(map[EventType]map[int32][]*Script),
		dialogs:  dialogs,
	}
}

// Register adds a script to the manager and builds event indexes.
func (m *Manager) Register(s *Script) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.scripts[s.name]; exists {
		return fmt.Errorf("script %q already registered", s.name)
	}
	m.scripts[s.name] = s

	for _, et := range []EventType{EventTalk, EventFirstTalk} {
		npcIDs := s.RegisteredNPCs(et)
		if len(npcIDs) == 0 {
			continue
		}
		if m.npcIndex[et] == nil {
			m.npcIndex[et] = make(map[int32][]*Script, 16)
		}
		for _, npcID := range npcIDs {
			m.npcIndex[et][npcID] = append(m.npcIndex[et][npcID], s)
		}
	}

	slog.Debug("script registered", "script", s.name, "dir", s.dir)
	return nil
}

// Script returns a script by name (nil if not registered).
func (m *Manager) Script(name string) *Script {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scripts[name]
}

// ScriptCount returns the number of registered scripts.
func (m *Manager) ScriptCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.scripts)
}

// HasFirstTalk reports whether any script handles the first click on the NPC.
func (m *Manager) HasFirstTalk(npcID int32) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.npcIndex[EventFirstTalk][npcID]) > 0
}

// OnFirstTalk fires first-talk hooks for the NPC.
// Returns the rendered page of the first script that answered.
func (m *Manager) OnFirstTalk(ctx context.Context, npc *model.Npc, player *model.Player) string {
	return m.dispatchNpc(ctx, &Event{Type: EventFirstTalk, Player: player, Npc: npc})
}

// OnTalk fires talk hooks for the NPC.
func (m *Manager) OnTalk(ctx context.Context, npc *model.Npc, player *model.Player) string {
	return m.dispatchNpc(ctx, &Event{Type: EventTalk, Player: player, Npc: npc})
}

// NotifyEvent sends a named event to the script ("Quest <script> <event>" bypass).
// npc может быть nil.
func (m *Manager) NotifyEvent(ctx context.Context, scriptName, event string, npc *model.Npc, player *model.Player) (string, error) {
	s := m.Script(scriptName)
	if s == nil {
		return "", fmt.Errorf("script %q not registered", scriptName)
	}

	hook := s.GetHook(EventAdvEvent, 0)
	if hook == nil {
		return "", nil
	}

	ev := &Event{Type: EventAdvEvent, Name: event, Player: player, Npc: npc}
	metrics.ScriptEvents.WithLabelValues(s.name, ev.Type.String()).Inc()
	return m.render(s, hook(ctx, ev), ev), nil
}

func (m *Manager) dispatchNpc(ctx context.Context, ev *Event) string {
	if ev.Player == nil || ev.Npc == nil {
		return ""
	}

	m.mu.RLock()
	scripts := m.npcIndex[ev.Type][ev.NpcID()]
	m.mu.RUnlock()

	for _, s := range scripts {
		hook := s.GetHook(ev.Type, ev.NpcID())
		if hook == nil {
			continue
		}

		metrics.ScriptEvents.WithLabelValues(s.name, ev.Type.String()).Inc()
		if out := m.render(s, hook(ctx, ev), ev); out != "" {
			return out
		}
	}

	return ""
}

// render превращает ответ хука в HTML: имя файла ищется в каталоге скрипта,
// остальное считается текстом страницы.
func (m *Manager) render(s *Script, result string, ev *Event) string {
	if result == "" {
		return ""
	}

	if !html.IsTemplateFile(result) {
		if strings.HasPrefix(result, "<html>") {
			return result
		}
		return "<html><body>" + result + "</body></html>"
	}

	data := html.DialogData{}
	if ev.Player != nil {
		data["playername"] = ev.Player.Name()
	}
	if ev.Npc != nil {
		data["objectId"] = ev.Npc.ObjectID()
		data["npcname"] = ev.Npc.Name()
	}

	out, err := m.dialogs.GetScriptHtml(s.dir, result, data)
	if err != nil {
		slog.Warn("script page not rendered",
			"script", s.name,
			"file", result,
			"error", err)
		return ""
	}
	return out
}
