package db

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemeRow — одна схема баффера: имя и упорядоченный список skill ID.
type SchemeRow struct {
	CharacterID int64
	Name        string
	Skills      []int32
}

// SchemeRepository управляет таблицей buffer_schemes.
// Скиллы хранятся строкой через запятую.
type SchemeRepository struct {
	db *pgxpool.Pool
}

// NewSchemeRepository создаёт новый SchemeRepository.
func NewSchemeRepository(db *pgxpool.Pool) *SchemeRepository {
	return &SchemeRepository{db: db}
}

// LoadAll загружает все схемы всех персонажей.
func (r *SchemeRepository) LoadAll(ctx context.Context) ([]SchemeRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT character_id, scheme_name, skills FROM buffer_schemes ORDER BY character_id, scheme_name`)
	if err != nil {
		return nil, fmt.Errorf("querying buffer schemes: %w", err)
	}
	defer rows.Close()

	var out []SchemeRow
	for rows.Next() {
		var row SchemeRow
		var skills string
		if err := rows.Scan(&row.CharacterID, &row.Name, &skills); err != nil {
			return nil, fmt.Errorf("scanning scheme row: %w", err)
		}
		row.Skills, err = parseSkillList(skills)
		if err != nil {
			return nil, fmt.Errorf("scheme %q of character %d: %w", row.Name, row.CharacterID, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scheme rows: %w", err)
	}
	return out, nil
}

// ReplaceAll атомарно перезаписывает таблицу схем.
func (r *SchemeRepository) ReplaceAll(ctx context.Context, schemes []SchemeRow) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM buffer_schemes`); err != nil {
		return fmt.Errorf("clearing buffer schemes: %w", err)
	}

	batch := &pgx.Batch{}
	for _, s := range schemes {
		batch.Queue(`INSERT INTO buffer_schemes (character_id, scheme_name, skills) VALUES ($1, $2, $3)`,
			s.CharacterID, s.Name, formatSkillList(s.Skills))
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("inserting buffer schemes: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing buffer schemes: %w", err)
	}
	return nil
}

func parseSkillList(s string) ([]int32, error) {
	if s == "" {
		return []int32{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int32, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing skill id %q: %w", p, err)
		}
		out = append(out, int32(id))
	}
	return out, nil
}

func formatSkillList(skills []int32) string {
	parts := make([]string, len(skills))
	for i, id := range skills {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, ",")
}
