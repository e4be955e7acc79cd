package model

// SummonType represents the kind of summoned creature.
type SummonType int32

const (
	// SummonTypePet — item-summoned pet.
	SummonTypePet SummonType = 1
	// SummonTypeServitor — skill-summoned creature.
	SummonTypeServitor SummonType = 2
)

// Summon represents a summoned creature (Pet or Servitor).
// Embeds Character for HP/MP/level.
type Summon struct {
	*Character

	ownerID    uint32
	summonType SummonType
	templateID int32
}

// NewSummon creates a summoned creature at full HP/MP.
// Summons have no CP.
func NewSummon(objectID, ownerID uint32, summonType SummonType, templateID int32, name string, level, maxHP, maxMP int32) *Summon {
	return &Summon{
		Character:  NewCharacter(objectID, name, Location{}, level, maxHP, maxMP, 0),
		ownerID:    ownerID,
		summonType: summonType,
		templateID: templateID,
	}
}

// OwnerID returns the owner's objectID.
func (s *Summon) OwnerID() uint32 { return s.ownerID }

// Type returns pet or servitor.
func (s *Summon) Type() SummonType { return s.summonType }

// TemplateID returns NPC template ID used for display.
func (s *Summon) TemplateID() int32 { return s.templateID }

// IsPet returns true for item-summoned pets.
func (s *Summon) IsPet() bool { return s.summonType == SummonTypePet }

// IsServitor returns true for skill-summoned servitors.
func (s *Summon) IsServitor() bool { return s.summonType == SummonTypeServitor }
