package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/la2go-board/internal/model"
	"github.com/udisondev/la2go-board/internal/world"
)

// ItemRepository управляет предметами в БД.
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository создаёт новый ItemRepository.
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// LoadInventory загружает все стеки предметов персонажа.
// Object ID выдаются заново генератором мира.
func (r *ItemRepository) LoadInventory(ctx context.Context, ownerID int64) ([]*model.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT item_id, count FROM items WHERE owner_id = $1 ORDER BY object_id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying inventory for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	items := make([]*model.Item, 0, 16)
	for rows.Next() {
		var itemID int32
		var count int64
		if err := rows.Scan(&itemID, &count); err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		item, err := model.NewItem(world.IDGenerator().NextItemID(), itemID, ownerID, count)
		if err != nil {
			return nil, fmt.Errorf("creating item model: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}
	return items, nil
}

// ReplaceInventory атомарно заменяет инвентарь персонажа в БД.
func (r *ItemRepository) ReplaceInventory(ctx context.Context, ownerID int64, items []*model.Item) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM items WHERE owner_id = $1`, ownerID); err != nil {
		return fmt.Errorf("clearing inventory for owner %d: %w", ownerID, err)
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		if item.Count() <= 0 {
			continue
		}
		batch.Queue(`INSERT INTO items (owner_id, item_id, count) VALUES ($1, $2, $3)`,
			ownerID, item.ItemID(), item.Count())
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("inserting items for owner %d: %w", ownerID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing inventory for owner %d: %w", ownerID, err)
	}
	return nil
}
