package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PremiumRepository управляет таблицей account_premium.
type PremiumRepository struct {
	db *pgxpool.Pool
}

// NewPremiumRepository создаёт новый PremiumRepository.
func NewPremiumRepository(db *pgxpool.Pool) *PremiumRepository {
	return &PremiumRepository{db: db}
}

// Load возвращает дату окончания премиума. ok == false если записи нет.
func (r *PremiumRepository) Load(ctx context.Context, account string) (end time.Time, ok bool, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT enddate FROM account_premium WHERE account_name = $1`, account,
	).Scan(&end)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("querying premium for %q: %w", account, err)
	}
	return end, true, nil
}

// Upsert сохраняет дату окончания премиума аккаунта.
func (r *PremiumRepository) Upsert(ctx context.Context, account string, end time.Time) error {
	if _, err := r.db.Exec(ctx, `
		INSERT INTO account_premium (account_name, enddate) VALUES ($1, $2)
		ON CONFLICT (account_name) DO UPDATE SET enddate = EXCLUDED.enddate`,
		account, end,
	); err != nil {
		return fmt.Errorf("saving premium for %q: %w", account, err)
	}
	return nil
}

// Delete удаляет премиум аккаунта.
func (r *PremiumRepository) Delete(ctx context.Context, account string) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM account_premium WHERE account_name = $1`, account,
	); err != nil {
		return fmt.Errorf("deleting premium for %q: %w", account, err)
	}
	return nil
}
