package model

import (
	"testing"
	"time"
)

func TestCharacter_VitalsClamp(t *testing.T) {
	c := NewCharacter(1, "c", Location{}, 10, 100, 50, 30)

	c.SetCurrentHP(500)
	if c.CurrentHP() != 100 {
		t.Errorf("CurrentHP() = %d, want 100", c.CurrentHP())
	}
	c.SetCurrentMP(-1)
	if c.CurrentMP() != 0 {
		t.Errorf("CurrentMP() = %d, want 0", c.CurrentMP())
	}

	c.SetCurrentCP(1)
	c.RestoreVitals()
	if c.CurrentHP() != 100 || c.CurrentMP() != 50 || c.CurrentCP() != 30 {
		t.Errorf("RestoreVitals() = %d/%d/%d, want 100/50/30", c.CurrentHP(), c.CurrentMP(), c.CurrentCP())
	}
}

func TestCharacter_CombatStance(t *testing.T) {
	c := NewCharacter(1, "c", Location{}, 1, 10, 10, 10)
	if c.IsInCombat() {
		t.Error("fresh character should not be in combat")
	}

	c.MarkAttackStance()
	if !c.IsInCombat() {
		t.Error("character should be in combat right after attack")
	}

	c.lastAttack.Store(time.Now().Add(-CombatStanceDuration - time.Second).UnixNano())
	if c.IsInCombat() {
		t.Error("combat stance should expire")
	}
}

func TestCharacter_Zones(t *testing.T) {
	c := NewCharacter(1, "c", Location{}, 1, 10, 10, 10)

	c.SetInsideZone(ZoneIDSiege, true)
	c.SetInsideZone(ZoneIDPeace, true)
	if !c.IsInsideZone(ZoneIDSiege) || !c.IsInsideZone(ZoneIDPeace) {
		t.Error("zone flags should be set")
	}
	if c.IsInsideZone(ZoneIDPVP) {
		t.Error("PVP flag should not be set")
	}

	c.SetInsideZone(ZoneIDSiege, false)
	if c.IsInsideZone(ZoneIDSiege) {
		t.Error("siege flag should be cleared")
	}
	if !c.IsInsideZone(ZoneIDPeace) {
		t.Error("peace flag should survive clearing siege")
	}
}

func TestCharacter_SkillLock(t *testing.T) {
	c := NewCharacter(1, "c", Location{}, 1, 10, 10, 10)
	c.DisableAllSkills()
	if !c.AllSkillsDisabled() {
		t.Error("skills should be disabled")
	}
	c.EnableAllSkills()
	if c.AllSkillsDisabled() {
		t.Error("skills should be enabled")
	}
}
