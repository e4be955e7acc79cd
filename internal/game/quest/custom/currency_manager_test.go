package custom

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/la2go-board/internal/game/quest"
	"github.com/udisondev/la2go-board/internal/html"
	"github.com/udisondev/la2go-board/internal/model"
)

func newTestManager(t *testing.T) *quest.Manager {
	t.Helper()
	dir := t.TempDir()
	pages := map[string]string{
		"1002100.html":   `MAIN {{index . "objectId"}}`,
		"shoparmor.htm":  `ARMOR`,
		"shopweapon.htm": `WEAPON`,
		"shopjewel.htm":  `JEWEL`,
	}
	scriptDir := filepath.Join(dir, "scripts", "custom", "CurrencyManager")
	require.NoError(t, os.MkdirAll(scriptDir, 0o755))
	for name, content := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(scriptDir, name), []byte(content), 0o644))
	}

	cache, err := html.NewCache(dir, false)
	require.NoError(t, err)

	m := quest.NewManager(html.NewDialogManager(cache))
	require.NoError(t, RegisterAll(m))
	return m
}

func TestCurrencyManager_Hooks(t *testing.T) {
	s := NewCurrencyManager()

	assert.Equal(t, "CurrencyManager", s.Name())
	assert.Equal(t, "custom/CurrencyManager", s.Dir())
	assert.Equal(t, []int32{CurrencyManagerNpcID}, s.StartNpcs())
	assert.True(t, s.HasHook(quest.EventFirstTalk, CurrencyManagerNpcID))
	assert.False(t, s.HasHook(quest.EventTalk, CurrencyManagerNpcID))
	assert.True(t, s.HasHook(quest.EventAdvEvent, 0))
}

func TestCurrencyManager_FirstTalk(t *testing.T) {
	m := newTestManager(t)
	p, err := model.NewPlayer(1, 1, "acc", "Hero", 20)
	require.NoError(t, err)
	npc := model.NewNpc(0x20000001, CurrencyManagerNpcID, "Currency Manager", "", model.Location{})

	assert.True(t, m.HasFirstTalk(CurrencyManagerNpcID))
	assert.Equal(t, "MAIN 536870913", m.OnFirstTalk(context.Background(), npc, p))
}

func TestCurrencyManager_Events(t *testing.T) {
	m := newTestManager(t)
	p, err := model.NewPlayer(1, 1, "acc", "Hero", 20)
	require.NoError(t, err)
	npc := model.NewNpc(0x20000001, CurrencyManagerNpcID, "Currency Manager", "", model.Location{})

	tests := []struct {
		event string
		want  string
	}{
		{"armorshop", "ARMOR"},
		{"weaponshop", "WEAPON"},
		{"jewelshop", "JEWEL"},
		{"potionshop", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := m.NotifyEvent(context.Background(), "CurrencyManager", tt.event, npc, p)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.event)
	}
}
