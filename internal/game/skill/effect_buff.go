package skill

import (
	"log/slog"

	"github.com/udisondev/la2go-board/internal/data"
)

// BuffEffect держит набор модификаторов статов на время действия.
type BuffEffect struct {
	mods []StatModifier
}

// NewBuffEffect строит эффект из определения в шаблоне скилла.
func NewBuffEffect(def data.EffectDef) Effect {
	mods := make([]StatModifier, 0, len(def.StatMods))
	for _, m := range def.StatMods {
		mods = append(mods, StatModifier{
			Stat:  m.Stat,
			Type:  ParseStatModType(m.Op),
			Value: m.Val,
		})
	}
	return &BuffEffect{mods: mods}
}

func (e *BuffEffect) Name() string { return "Buff" }

func (e *BuffEffect) OnStart(casterObjID, targetObjID uint32) {
	slog.Debug("buff applied", "mods", len(e.mods), "caster", casterObjID, "target", targetObjID)
}

func (e *BuffEffect) OnExit(casterObjID, targetObjID uint32) {
	slog.Debug("buff removed", "target", targetObjID)
}

// StatModifiers returns the stat modifiers applied by this buff.
func (e *BuffEffect) StatModifiers() []StatModifier {
	return e.mods
}
