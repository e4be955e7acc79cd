package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Favorite — закладка Community Board.
type Favorite struct {
	ID      int64
	Title   string
	Bypass  string
	AddedAt time.Time
}

// FavoriteRepository управляет таблицей bbs_favorites.
type FavoriteRepository struct {
	db *pgxpool.Pool
}

// NewFavoriteRepository создаёт новый FavoriteRepository.
func NewFavoriteRepository(db *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// CountByCharacter возвращает количество закладок персонажа.
func (r *FavoriteRepository) CountByCharacter(ctx context.Context, characterID int64) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bbs_favorites WHERE character_id = $1`, characterID,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting favorites for character %d: %w", characterID, err)
	}
	return n, nil
}

// Add сохраняет закладку. Повторный bypass обновляет заголовок и дату.
func (r *FavoriteRepository) Add(ctx context.Context, characterID int64, title, bypass string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bbs_favorites (character_id, title, bypass)
		VALUES ($1, $2, $3)
		ON CONFLICT (character_id, bypass)
		DO UPDATE SET title = EXCLUDED.title, added_at = now()`,
		characterID, title, bypass,
	)
	if err != nil {
		return fmt.Errorf("adding favorite for character %d: %w", characterID, err)
	}
	return nil
}

// ListByCharacter возвращает закладки, новые первыми.
func (r *FavoriteRepository) ListByCharacter(ctx context.Context, characterID int64) ([]Favorite, error) {
	rows, err := r.db.Query(ctx, `
		SELECT fav_id, title, bypass, added_at
		FROM bbs_favorites
		WHERE character_id = $1
		ORDER BY added_at DESC, fav_id DESC`, characterID)
	if err != nil {
		return nil, fmt.Errorf("querying favorites for character %d: %w", characterID, err)
	}
	defer rows.Close()

	var out []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.Title, &f.Bypass, &f.AddedAt); err != nil {
			return nil, fmt.Errorf("scanning favorite row: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating favorite rows: %w", err)
	}
	return out, nil
}

// Delete удаляет закладку персонажа.
func (r *FavoriteRepository) Delete(ctx context.Context, characterID, favID int64) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM bbs_favorites WHERE character_id = $1 AND fav_id = $2`,
		characterID, favID,
	); err != nil {
		return fmt.Errorf("deleting favorite %d: %w", favID, err)
	}
	return nil
}
