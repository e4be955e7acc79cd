package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/la2go-board/internal/model"
	"github.com/udisondev/la2go-board/internal/world"
)

// CharacterRepository управляет персонажами в БД.
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository создаёт новый CharacterRepository.
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// Create вставляет нового персонажа и возвращает его character_id.
func (r *CharacterRepository) Create(ctx context.Context, accountName, name string, level int32) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO characters (account_name, name, level) VALUES ($1, $2, $3)
		 RETURNING character_id`,
		accountName, name, level,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("creating character %q: %w", name, err)
	}
	return id, nil
}

// LoadByName загружает персонажа вместе с именем клана.
// Возвращает nil если персонаж не найден (не ошибка).
func (r *CharacterRepository) LoadByName(ctx context.Context, name string) (*model.Player, error) {
	query := `
		SELECT c.character_id, c.account_name, c.name, c.level,
		       c.x, c.y, c.z, c.heading,
		       c.current_hp, c.current_mp, c.current_cp,
		       c.experience, c.sp, c.karma, c.pvp_kills, c.pk_kills,
		       COALESCE(cl.clan_name, ''),
		       COALESCE(cl.leader_id = c.character_id, false)
		FROM characters c
		LEFT JOIN clans cl ON cl.clan_id = c.clan_id
		WHERE c.name = $1
	`

	var (
		characterID          int64
		accountName, charNm  string
		level                int32
		x, y, z              int32
		heading              int32
		currentHP, currentMP int32
		currentCP            int32
		experience, sp       int64
		karma                int32
		pvpKills, pkKills    int32
		clanName             string
		clanLeader           bool
	)

	err := r.db.QueryRow(ctx, query, name).Scan(
		&characterID, &accountName, &charNm, &level,
		&x, &y, &z, &heading,
		&currentHP, &currentMP, &currentCP,
		&experience, &sp, &karma, &pvpKills, &pkKills,
		&clanName, &clanLeader,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying character %q: %w", name, err)
	}

	player, err := model.NewPlayer(world.IDGenerator().NextPlayerID(), characterID, accountName, charNm, level)
	if err != nil {
		return nil, fmt.Errorf("creating player model: %w", err)
	}

	player.SetLocation(model.NewLocation(x, y, z, uint16(heading)))

	// Новый персонаж хранит 0 — считаем его полностью восстановленным.
	if currentHP > 0 {
		player.SetCurrentHP(currentHP)
		player.SetCurrentMP(currentMP)
		player.SetCurrentCP(currentCP)
	}

	player.SetExperience(experience)
	player.SetSP(sp)
	player.SetKarma(karma)
	player.SetPvPKills(pvpKills)
	player.SetPKKills(pkKills)
	player.SetClanName(clanName)
	player.SetClanLeader(clanLeader)

	return player, nil
}

// Save сохраняет изменяемые поля персонажа.
func (r *CharacterRepository) Save(ctx context.Context, p *model.Player) error {
	loc := p.Location()
	tag, err := r.db.Exec(ctx, `
		UPDATE characters
		SET level = $2, x = $3, y = $4, z = $5, heading = $6,
		    current_hp = $7, current_mp = $8, current_cp = $9,
		    experience = $10, sp = $11, karma = $12, pvp_kills = $13, pk_kills = $14
		WHERE character_id = $1`,
		p.CharacterID(), p.Level(), loc.X, loc.Y, loc.Z, int32(loc.Heading),
		p.CurrentHP(), p.CurrentMP(), p.CurrentCP(),
		p.Experience(), p.SP(), p.Karma(), p.PvPKills(), p.PKKills(),
	)
	if err != nil {
		return fmt.Errorf("saving character %d: %w", p.CharacterID(), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("saving character %d: not found", p.CharacterID())
	}
	return nil
}

// SetClan привязывает персонажа к клану (clanID 0 — убрать из клана).
func (r *CharacterRepository) SetClan(ctx context.Context, characterID int64, clanID int32) error {
	var clan any
	if clanID != 0 {
		clan = clanID
	}
	if _, err := r.db.Exec(ctx,
		`UPDATE characters SET clan_id = $2 WHERE character_id = $1`,
		characterID, clan,
	); err != nil {
		return fmt.Errorf("setting clan for character %d: %w", characterID, err)
	}
	return nil
}
