package skill

import (
	"fmt"

	"github.com/udisondev/la2go-board/internal/data"
)

// effectRegistry: имя эффекта → фабрика.
var effectRegistry = map[string]func(def data.EffectDef) Effect{}

// RegisterEffect регистрирует фабрику эффекта по имени.
func RegisterEffect(name string, factory func(def data.EffectDef) Effect) {
	effectRegistry[name] = factory
}

// CreateEffect создаёт эффект по определению из шаблона.
func CreateEffect(def data.EffectDef) (Effect, error) {
	factory, ok := effectRegistry[def.Name]
	if !ok {
		return nil, fmt.Errorf("unknown effect type: %s", def.Name)
	}
	return factory(def), nil
}

func init() {
	RegisterEffect("Buff", NewBuffEffect)
}
