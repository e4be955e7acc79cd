// Package quest implements NPC scripts.
// A script registers hook functions for NPC templates: first talk, talk
// and named events sent from script pages ("Quest <script> <event>").
package quest

import (
	"context"
	"slices"

	"github.com/udisondev/la2go-board/internal/model"
)

// EventType identifies the kind of script event.
type EventType int

const (
	EventTalk      EventType = iota // NPC dialog interaction
	EventFirstTalk                  // First click on NPC (before dialog)
	EventAdvEvent                   // Named event from a script page bypass
)

// String returns the event type label used in logs and metrics.
func (t EventType) String() string {
	switch t {
	case EventTalk:
		return "talk"
	case EventFirstTalk:
		return "first_talk"
	case EventAdvEvent:
		return "adv_event"
	default:
		return "unknown"
	}
}

// Event carries script event data to hook functions.
type Event struct {
	Type   EventType
	Name   string // имя события для EventAdvEvent
	Player *model.Player
	Npc    *model.Npc // nil для событий без NPC
}

// NpcID returns the template ID of the NPC involved (0 if none).
func (e *Event) NpcID() int32 {
	if e.Npc == nil {
		return 0
	}
	return e.Npc.TemplateID()
}

// HookFunc is the callback signature for script event handlers.
// Returns an HTML file name of the script ("1002100.html"),
// raw HTML text, or empty string for no response.
type HookFunc func(ctx context.Context, ev *Event) string

// Script defines an NPC script with event hooks.
type Script struct {
	name string
	dir  string // каталог страниц относительно scripts/

	startNpcs []int32

	// NPC template ID → handler
	onTalk      map[int32]HookFunc
	onFirstTalk map[int32]HookFunc

	onAdvEvent HookFunc
}

// NewScript creates a script whose pages live under scripts/<dir>/.
func NewScript(dir, name string) *Script {
	return &Script{
		name:        name,
		dir:         dir,
		onTalk:      make(map[int32]HookFunc, 2),
		onFirstTalk: make(map[int32]HookFunc, 2),
	}
}

// Name returns the script name used in "Quest <name> <event>" bypasses.
func (s *Script) Name() string { return s.name }

// Dir returns the page directory relative to scripts/.
func (s *Script) Dir() string { return s.dir }

// AddStartNpc marks an NPC as a starting point of the script.
func (s *Script) AddStartNpc(npcID int32) {
	if !slices.Contains(s.startNpcs, npcID) {
		s.startNpcs = append(s.startNpcs, npcID)
	}
}

// StartNpcs returns the starting NPC template IDs.
func (s *Script) StartNpcs() []int32 {
	return slices.Clone(s.startNpcs)
}

// AddTalkID registers an onTalk hook for an NPC template ID.
func (s *Script) AddTalkID(npcID int32, fn HookFunc) {
	s.onTalk[npcID] = fn
}

// AddFirstTalkID registers an onFirstTalk hook for an NPC template ID.
func (s *Script) AddFirstTalkID(npcID int32, fn HookFunc) {
	s.onFirstTalk[npcID] = fn
}

// SetOnAdvEvent sets the named event handler.
func (s *Script) SetOnAdvEvent(fn HookFunc) {
	s.onAdvEvent = fn
}

// GetHook returns the hook for the event type and NPC, nil if none.
func (s *Script) GetHook(eventType EventType, npcID int32) HookFunc {
	switch eventType {
	case EventTalk:
		return s.onTalk[npcID]
	case EventFirstTalk:
		return s.onFirstTalk[npcID]
	case EventAdvEvent:
		return s.onAdvEvent
	default:
		return nil
	}
}

// HasHook returns true if the script has a hook for the given event type and NPC.
func (s *Script) HasHook(eventType EventType, npcID int32) bool {
	return s.GetHook(eventType, npcID) != nil
}

// RegisteredNPCs returns all NPC IDs that have hooks for the given event type.
func (s *Script) RegisteredNPCs(eventType EventType) []int32 {
	var m map[int32]HookFunc
	switch eventType {
	case EventTalk:
		m = s.onTalk
	case EventFirstTalk:
		m = s.onFirstTalk
	default:
		return nil
	}

	ids := make([]int32, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
