package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carelink/health-gateway/internal/core/domain"
)

var inventoryColumns = []string{"id", "pharmacy_user_id", "medicine_name", "description", "stock", "price", "expiry_date", "created_at"}

type InventoryRepository struct {
	db *DB
}

func NewInventoryRepository(db *DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	query, args, err := psql.Insert("inventory").
		Columns("pharmacy_user_id", "medicine_name", "description", "stock", "price", "expiry_date", "created_at").
		Values(item.PharmacyUserID, item.MedicineName, nullString(item.Description), item.Stock, item.Price, nullString(item.ExpiryDate), item.CreatedAt).
		Suffix("RETURNING id, pharmacy_user_id, medicine_name, description, stock, price, expiry_date, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanInventoryItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logQueryError(r.db.log, "*InventoryRepository.Create", err)
		return nil, storeError(err)
	}
	return created, nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	query, args, err := psql.Select(inventoryColumns...).From("inventory").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logQueryError(r.db.log, "*InventoryRepository.List", err)
		return nil, storeError(err)
	}
	defer rows.Close()

	out := make([]*domain.InventoryItem, 0)
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, storeError(err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err)
	}
	return out, nil
}

func scanInventoryItem(row scanner) (*domain.InventoryItem, error) {
	var (
		item         domain.InventoryItem
		desc, expiry sql.NullString
	)
	if err := row.Scan(&item.ID, &item.PharmacyUserID, &item.MedicineName, &desc, &item.Stock, &item.Price, &expiry, &item.CreatedAt); err != nil {
		return nil, err
	}
	item.Description = desc.String
	item.ExpiryDate = expiry.String
	return &item, nil
}
