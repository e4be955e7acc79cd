package html

import (
	"fmt"
	"strconv"
	"strings"
)

// BypassCommand — разобранный NPC bypass.
// Формат: "npc_<objectID>_<command> [args...]"
type BypassCommand struct {
	ObjectID uint32
	Command  string   // "Chat", "Quest", "Link", "Multisell"...
	Args     []string // аргументы после пробела
}

// allowedCommands — whitelist NPC bypass команд.
var allowedCommands = map[string]bool{
	"Chat":      true,
	"Link":      true,
	"Quest":     true,
	"Multisell": true,
	"Shop":      true,
	"Sell":      true,
}

// ParseNpcBypass разбирает bypass вида "npc_<objectID>_<command> [args...]".
func ParseNpcBypass(bypass string) (*BypassCommand, error) {
	if !strings.HasPrefix(bypass, "npc_") {
		return nil, fmt.Errorf("not an NPC bypass: %s", bypass)
	}

	// "npc_<objectID>_<command> args" → ["npc", "<objectID>", "<command> args"]
	parts := strings.SplitN(bypass, "_", 3)
	if len(parts) < 3 {
		return nil, fmt.Errorf("malformed NPC bypass: %s", bypass)
	}

	objectID, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid objectID in bypass %q: %w", bypass, err)
	}

	cmdName, rest, _ := strings.Cut(parts[2], " ")
	if !allowedCommands[cmdName] {
		return nil, fmt.Errorf("unknown bypass command: %s", cmdName)
	}

	return &BypassCommand{
		ObjectID: uint32(objectID),
		Command:  cmdName,
		Args:     strings.Fields(rest),
	}, nil
}

// Arg возвращает i-й аргумент или "" если его нет.
func (c *BypassCommand) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}
