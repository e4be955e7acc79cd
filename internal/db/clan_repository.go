package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClanRepository handles clan persistence to PostgreSQL.
type ClanRepository struct {
	pool *pgxpool.Pool
}

// NewClanRepository creates a new clan repository.
func NewClanRepository(pool *pgxpool.Pool) *ClanRepository {
	return &ClanRepository{pool: pool}
}

// Create inserts a clan and returns its ID.
func (r *ClanRepository) Create(ctx context.Context, name string) (int32, error) {
	var id int32
	if err := r.pool.QueryRow(ctx,
		`INSERT INTO clans (clan_name) VALUES ($1) RETURNING clan_id`, name,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("creating clan %q: %w", name, err)
	}
	return id, nil
}

// Count returns the number of registered clans.
func (r *ClanRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clans`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting clans: %w", err)
	}
	return n, nil
}

// SetLeader назначает лидера клана.
func (r *ClanRepository) SetLeader(ctx context.Context, clanID int32, characterID int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE clans SET leader_id = $2 WHERE clan_id = $1`, clanID, characterID)
	if err != nil {
		return fmt.Errorf("setting leader of clan %d: %w", clanID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("setting leader of clan %d: not found", clanID)
	}
	return nil
}

// Notice возвращает объявление клана. Пустая строка — объявления нет.
func (r *ClanRepository) Notice(ctx context.Context, clanName string) (string, error) {
	var notice string
	err := r.pool.QueryRow(ctx,
		`SELECT notice FROM clans WHERE clan_name = $1`, clanName,
	).Scan(&notice)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading notice of clan %q: %w", clanName, err)
	}
	return notice, nil
}

// SetNotice сохраняет объявление клана.
func (r *ClanRepository) SetNotice(ctx context.Context, clanName, notice string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE clans SET notice = $2 WHERE clan_name = $1`, clanName, notice)
	if err != nil {
		return fmt.Errorf("saving notice of clan %q: %w", clanName, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("saving notice of clan %q: not found", clanName)
	}
	return nil
}
