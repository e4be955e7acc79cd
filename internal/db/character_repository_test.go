package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/la2go-board/internal/model"
)

func TestCharacterRepository_LoadByName(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewCharacterRepository(pool)

	charID := createTestCharacter(t, pool, "acc1", "Hero")

	clanID, err := NewClanRepository(pool).Create(ctx, "Knights")
	require.NoError(t, err)
	require.NoError(t, repo.SetClan(ctx, charID, clanID))

	p, err := repo.LoadByName(ctx, "Hero")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, charID, p.CharacterID())
	assert.Equal(t, "acc1", p.AccountName())
	assert.Equal(t, "Hero", p.Name())
	assert.Equal(t, "Knights", p.ClanName())
	assert.Equal(t, int32(1), p.Level())
	// current_hp = 0 в БД означает полное восстановление
	assert.Equal(t, p.MaxHP(), p.CurrentHP())
}

func TestCharacterRepository_LoadByName_NotFound(t *testing.T) {
	pool := setupTestDB(t)

	p, err := NewCharacterRepository(pool).LoadByName(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestCharacterRepository_Save(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewCharacterRepository(pool)

	createTestCharacter(t, pool, "acc1", "Saver")
	p, err := repo.LoadByName(ctx, "Saver")
	require.NoError(t, err)
	require.NotNil(t, p)

	require.NoError(t, p.SetLevel(40))
	p.SetExperience(1_000_000)
	p.SetPvPKills(7)
	p.SetPKKills(2)
	p.SetKarma(300)
	p.SetLocation(model.NewLocation(100, 200, -300, 0))
	require.NoError(t, repo.Save(ctx, p))

	loaded, err := repo.LoadByName(ctx, "Saver")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, int32(40), loaded.Level())
	assert.Equal(t, int64(1_000_000), loaded.Experience())
	assert.Equal(t, int32(7), loaded.PvPKills())
	assert.Equal(t, int32(2), loaded.PKKills())
	assert.Equal(t, int32(300), loaded.Karma())
	assert.Equal(t, int32(-300), loaded.Location().Z)
	assert.Equal(t, "", loaded.ClanName())
}

func TestClanRepository_Count(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewClanRepository(pool)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = repo.Create(ctx, "Alpha")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "Beta")
	require.NoError(t, err)

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = repo.Create(ctx, "Alpha")
	assert.Error(t, err, "duplicate clan name must fail")
}

func TestClanRepository_LeaderAndNotice(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	clans := NewClanRepository(pool)
	chars := NewCharacterRepository(pool)

	leaderID := createTestCharacter(t, pool, "acc1", "Lord")
	memberID := createTestCharacter(t, pool, "acc2", "Squire")

	clanID, err := clans.Create(ctx, "Knights")
	require.NoError(t, err)
	require.NoError(t, chars.SetClan(ctx, leaderID, clanID))
	require.NoError(t, chars.SetClan(ctx, memberID, clanID))
	require.NoError(t, clans.SetLeader(ctx, clanID, leaderID))

	leader, err := chars.LoadByName(ctx, "Lord")
	require.NoError(t, err)
	assert.True(t, leader.IsClanLeader())

	member, err := chars.LoadByName(ctx, "Squire")
	require.NoError(t, err)
	assert.False(t, member.IsClanLeader())

	notice, err := clans.Notice(ctx, "Knights")
	require.NoError(t, err)
	assert.Empty(t, notice)

	require.NoError(t, clans.SetNotice(ctx, "Knights", "Siege on Saturday"))
	notice, err = clans.Notice(ctx, "Knights")
	require.NoError(t, err)
	assert.Equal(t, "Siege on Saturday", notice)

	notice, err = clans.Notice(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, notice)
	assert.Error(t, clans.SetNotice(ctx, "Nobody", "x"))
}

func TestItemRepository_ReplaceInventory(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewItemRepository(pool)

	charID := createTestCharacter(t, pool, "acc1", "Trader")

	adena, err := model.NewItem(1, model.AdenaItemID, charID, 5000)
	require.NoError(t, err)
	potion, err := model.NewItem(2, 1060, charID, 10)
	require.NoError(t, err)

	require.NoError(t, repo.ReplaceInventory(ctx, charID, []*model.Item{adena, potion}))

	items, err := repo.LoadInventory(ctx, charID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, model.AdenaItemID, items[0].ItemID())
	assert.Equal(t, int64(5000), items[0].Count())
	assert.Equal(t, int32(1060), items[1].ItemID())

	// Повторная запись полностью заменяет инвентарь
	require.NoError(t, repo.ReplaceInventory(ctx, charID, []*model.Item{potion}))
	items, err = repo.LoadInventory(ctx, charID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int32(1060), items[0].ItemID())
}
