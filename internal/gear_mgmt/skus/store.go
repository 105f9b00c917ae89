package skus

import (
	"context"
	"database/sql"
	"errors"

	mysql "github.com/go-sql-driver/mysql"

	"basecamp-backend/internal/platform/apierr"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) List(ctx context.Context) ([]SKU, error) {
	const q = `SELECT id, name, sku_number, created_at FROM skus ORDER BY name`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SKU{}
	for rows.Next() {
		var m SKU
		if err := rows.Scan(&m.ID, &m.Name, &m.SkuNumber, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) GetByID(ctx context.Context, id uint64) (*SKU, error) {
	const q = `SELECT id, name, sku_number, created_at FROM skus WHERE id = ?`
	var m SKU
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Name, &m.SkuNumber, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierr.NotFound("sku not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *Store) Insert(ctx context.Context, m *SKU) error {
	const q = `INSERT INTO skus (name, sku_number, created_at) VALUES (?, ?, CURRENT_TIMESTAMP)`

	res, err := s.db.ExecContext(ctx, q, m.Name, m.SkuNumber)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return apierr.DuplicateKey("sku_number already exists")
		}
		return err
	}
	id, _ := res.LastInsertId()
	m.ID = uint64(id)
	return nil
}

func (s *Store) Delete(ctx context.Context, id uint64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM skus WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return apierr.NotFound("sku not found")
	}
	return nil
}
