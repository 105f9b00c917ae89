package vendors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"basecamp-backend/internal/platform/apierr"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

const selectVendor = `
SELECT id, name, category, contact_name, phone, email, website, rating,
       preferred, notes, times_used, last_used_at, created_at
FROM vendors
`

func scanVendor(row interface{ Scan(...any) error }, m *Vendor) error {
	return row.Scan(
		&m.ID, &m.Name, &m.Category, &m.ContactName, &m.Phone, &m.Email, &m.Website,
		&m.Rating, &m.Preferred, &m.Notes, &m.TimesUsed, &m.LastUsedAt, &m.CreatedAt,
	)
}

func (s *Store) List(ctx context.Context, f Filter) ([]Vendor, error) {
	sb := strings.Builder{}
	sb.WriteString(selectVendor)
	sb.WriteString(" WHERE 1=1")

	args := []any{}
	if f.Category != nil && *f.Category != "" {
		sb.WriteString(" AND category = ?")
		args = append(args, *f.Category)
	}
	if f.Preferred != nil {
		sb.WriteString(" AND preferred = ?")
		args = append(args, *f.Preferred)
	}
	sb.WriteString(" ORDER BY name")

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Vendor{}
	for rows.Next() {
		var m Vendor
		if err := scanVendor(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) GetByID(ctx context.Context, id uint64) (*Vendor, error) {
	var m Vendor
	if err := scanVendor(s.db.QueryRowContext(ctx, selectVendor+" WHERE id = ?", id), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierr.NotFound("vendor not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *Store) Insert(ctx context.Context, m *Vendor) error {
	const q = `
	INSERT INTO vendors
	(name, category, contact_name, phone, email, website, rating, preferred, notes, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`

	res, err := s.db.ExecContext(ctx, q,
		m.Name, m.Category, m.ContactName, m.Phone, m.Email, m.Website, m.Rating, m.Preferred, m.Notes,
	)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	m.ID = uint64(id)
	return nil
}

func (s *Store) Update(ctx context.Context, id uint64, in UpdateVendorRequest) (*Vendor, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if in.Name != nil {
		add("name", *in.Name)
	}
	if in.Category != nil {
		add("category", *in.Category)
	}
	if in.ContactName != nil {
		add("contact_name", *in.ContactName)
	}
	if in.Phone != nil {
		add("phone", *in.Phone)
	}
	if in.Email != nil {
		add("email", *in.Email)
	}
	if in.Website != nil {
		add("website", *in.Website)
	}
	if in.Rating != nil {
		add("rating", *in.Rating)
	}
	if in.Preferred != nil {
		add("preferred", *in.Preferred)
	}
	if in.Notes != nil {
		add("notes", *in.Notes)
	}
	if len(sets) == 0 {
		return s.GetByID(ctx, id)
	}

	args = append(args, id)
	q := fmt.Sprintf(`UPDATE vendors SET %s WHERE id = ?`, strings.Join(sets, ", "))
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id uint64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM vendors WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return apierr.NotFound("vendor not found")
	}
	return nil
}

// RecordUsage bumps the usage counter when a trip books this vendor.
func (s *Store) RecordUsage(ctx context.Context, id uint64, now time.Time) (*Vendor, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE vendors SET times_used = times_used + 1, last_used_at = ? WHERE id = ?`, now, id)
	if err != nil {
		return nil, err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return nil, apierr.NotFound("vendor not found")
	}
	return s.GetByID(ctx, id)
}
