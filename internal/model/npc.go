package model

// Npc — NPC в мире. Скрипты ищутся по templateID.
type Npc struct {
	*WorldObject

	templateID int32
	title      string
}

// NewNpc создаёт NPC.
func NewNpc(objectID uint32, templateID int32, name, title string, loc Location) *Npc {
	return &Npc{
		WorldObject: NewWorldObject(objectID, name, loc),
		templateID:  templateID,
		title:       title,
	}
}

// TemplateID возвращает ID шаблона NPC.
func (n *Npc) TemplateID() int32 { return n.templateID }

// Title возвращает титул NPC.
func (n *Npc) Title() string { return n.title }
