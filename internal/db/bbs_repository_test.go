package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewFavoriteRepository(pool)

	charID := createTestCharacter(t, pool, "acc1", "Reader")

	n, err := repo.CountByCharacter(ctx, charID)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.Add(ctx, charID, "Shop", "_bbsgetfav;merchant.html"))
	require.NoError(t, repo.Add(ctx, charID, "Home", "_bbshome"))
	// Повтор того же bypass не создаёт дубликат
	require.NoError(t, repo.Add(ctx, charID, "Home page", "_bbshome"))

	n, err = repo.CountByCharacter(ctx, charID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	favs, err := repo.ListByCharacter(ctx, charID)
	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, "Home page", favs[0].Title)
	assert.Equal(t, "_bbshome", favs[0].Bypass)

	require.NoError(t, repo.Delete(ctx, charID, favs[0].ID))
	n, err = repo.CountByCharacter(ctx, charID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSchemeRepository_ReplaceAll(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewSchemeRepository(pool)

	first := createTestCharacter(t, pool, "acc1", "Buffy")
	second := createTestCharacter(t, pool, "acc2", "Dancer")

	rows := []SchemeRow{
		{CharacterID: first, Name: "Mage", Skills: []int32{1040, 1085, 1059}},
		{CharacterID: first, Name: "Empty", Skills: []int32{}},
		{CharacterID: second, Name: "Fighter", Skills: []int32{271, 274}},
	}
	require.NoError(t, repo.ReplaceAll(ctx, rows))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	// ORDER BY character_id, scheme_name
	assert.Equal(t, "Empty", loaded[0].Name)
	assert.Empty(t, loaded[0].Skills)
	assert.Equal(t, "Mage", loaded[1].Name)
	assert.Equal(t, []int32{1040, 1085, 1059}, loaded[1].Skills, "order must be preserved")
	assert.Equal(t, second, loaded[2].CharacterID)

	// Перезапись удаляет старые схемы
	require.NoError(t, repo.ReplaceAll(ctx, rows[2:]))
	loaded, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Fighter", loaded[0].Name)
}

func TestParseSkillList(t *testing.T) {
	ids, err := parseSkillList("1040, 1068,271")
	require.NoError(t, err)
	assert.Equal(t, []int32{1040, 1068, 271}, ids)

	ids, err = parseSkillList("")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = parseSkillList("1040,abc")
	assert.Error(t, err)

	assert.Equal(t, "1040,1068", formatSkillList([]int32{1040, 1068}))
	assert.Equal(t, "", formatSkillList(nil))
}

func TestPremiumRepository(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewPremiumRepository(pool)

	_, ok, err := repo.Load(ctx, "acc1")
	require.NoError(t, err)
	assert.False(t, ok)

	end := time.Now().Add(72 * time.Hour).Truncate(time.Microsecond)
	require.NoError(t, repo.Upsert(ctx, "acc1", end))

	got, ok, err := repo.Load(ctx, "acc1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, end.Equal(got), "want %v, got %v", end, got)

	later := end.Add(24 * time.Hour)
	require.NoError(t, repo.Upsert(ctx, "acc1", later))
	got, _, err = repo.Load(ctx, "acc1")
	require.NoError(t, err)
	assert.True(t, later.Equal(got))

	require.NoError(t, repo.Delete(ctx, "acc1"))
	_, ok, err = repo.Load(ctx, "acc1")
	require.NoError(t, err)
	assert.False(t, ok)
}
