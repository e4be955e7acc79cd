package data

import "testing"

func TestLoadSkills_Might(t *testing.T) {
	if err := LoadSkills(); err != nil {
		t.Fatalf("LoadSkills() failed: %v", err)
	}

	if got := GetSkillMaxLevel(1068); got != 3 {
		t.Fatalf("Might max level: got %d, want 3", got)
	}

	skill := GetSkillTemplate(1068, 3)
	if skill == nil {
		t.Fatal("Might level 3 is nil")
	}
	if skill.Name != "Might" {
		t.Errorf("name: got %q, want %q", skill.Name, "Might")
	}
	if skill.Icon != "icon.skill1068" {
		t.Errorf("icon: got %q, want icon.skill1068", skill.Icon)
	}
	if !skill.SharedWithSummon {
		t.Error("Might should be shared with summon")
	}
	if skill.AbnormalLevel != 3 {
		t.Errorf("abnormal level: got %d, want 3", skill.AbnormalLevel)
	}
	if len(skill.Effects) != 1 || skill.Effects[0].StatMods[0].Val != 1.15 {
		t.Errorf("effects: got %+v, want pAtk x1.15", skill.Effects)
	}
	if !skill.IsContinuous() {
		t.Error("Might should be a continuous buff")
	}
}

func TestLoadSkills_DancesAndMissing(t *testing.T) {
	if err := LoadSkills(); err != nil {
		t.Fatalf("LoadSkills() failed: %v", err)
	}

	dance := GetSkillTemplate(271, 1)
	if dance == nil || !dance.IsDance {
		t.Fatalf("Dance of the Warrior should be a dance, got %+v", dance)
	}
	if dance.Icon != "icon.skill0271" {
		t.Errorf("icon: got %q, want icon.skill0271", dance.Icon)
	}

	if GetSkillTemplate(1068, 4) != nil {
		t.Error("Might level 4 should not exist")
	}
	if GetSkillMaxLevel(99999) != 0 {
		t.Error("unknown skill should have max level 0")
	}
	if GetMaxLevelSkill(99999) != nil {
		t.Error("GetMaxLevelSkill(unknown) should be nil")
	}
}

func TestPerLevelInt32_ExtendsLastValue(t *testing.T) {
	vals := []int32{10, 20}
	if got := perLevelInt32(vals, 5); got != 20 {
		t.Errorf("perLevelInt32 past end = %d, want 20", got)
	}
	if got := perLevelInt32(nil, 0); got != 0 {
		t.Errorf("perLevelInt32(nil) = %d, want 0", got)
	}
}
