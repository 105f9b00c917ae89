package equipment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"

	"basecamp-backend/internal/platform/apierr"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// itemPatch is a partial update with dates already parsed.
type itemPatch struct {
	ItemName           *string
	Category           *string
	Description        *string
	Quantity           *uint
	Condition          *string
	PurchasePrice      *float64
	Location           *string
	RequiresInspection *bool
	LastInspection     *time.Time
	Notes              *string
}

// selectItem joins the open-checkout sum so quantity_available comes out of
// the same statement as the row itself.
const selectItem = `
SELECT e.id, e.item_name, e.item_number, e.category, e.description, e.quantity,
       e.` + "`condition`" + `, e.purchase_price, e.purchase_date, e.location,
       e.requires_inspection, e.last_inspection, e.notes, e.created_at,
       e.quantity - COALESCE(o.out_qty, 0) AS quantity_available
FROM equipment e
LEFT JOIN (
    SELECT equipment_id, SUM(quantity_out) AS out_qty
    FROM checkouts WHERE status = 'OUT' GROUP BY equipment_id
) o ON o.equipment_id = e.id
`

func scanItem(row interface{ Scan(...any) error }, m *Item) error {
	return row.Scan(
		&m.ID, &m.ItemName, &m.ItemNumber, &m.Category, &m.Description, &m.Quantity,
		&m.Condition, &m.PurchasePrice, &m.PurchaseDate, &m.Location,
		&m.RequiresInspection, &m.LastInspection, &m.Notes, &m.CreatedAt,
		&m.Available,
	)
}

func (s *Store) List(ctx context.Context, f Filter, p Page) ([]Item, error) {
	sb := strings.Builder{}
	sb.WriteString(selectItem)
	sb.WriteString(" WHERE 1=1")

	args := []any{}
	if f.Category != nil && *f.Category != "" {
		sb.WriteString(" AND e.category = ?")
		args = append(args, *f.Category)
	}
	if f.Condition != nil && *f.Condition != "" {
		sb.WriteString(" AND e.`condition` = ?")
		args = append(args, *f.Condition)
	}
	if f.OnlyAvailable {
		sb.WriteString(" AND e.quantity - COALESCE(o.out_qty, 0) > 0")
	}

	sb.WriteString(" ORDER BY e.item_name")
	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	sb.WriteString(" LIMIT ? OFFSET ?")
	args = append(args, p.Limit, p.Offset)

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var m Item
		if err := scanItem(rows, &m); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (s *Store) GetByID(ctx context.Context, id uint64) (*Item, error) {
	q := selectItem + " WHERE e.id = ?"
	var m Item
	if err := scanItem(s.db.QueryRowContext(ctx, q, id), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierr.NotFound("equipment not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *Store) Insert(ctx context.Context, m *Item) error {
	const q = `
	INSERT INTO equipment
	(item_name, item_number, category, description, quantity, ` + "`condition`" + `,
	 purchase_price, purchase_date, location, requires_inspection, notes, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`

	res, err := s.db.ExecContext(ctx, q,
		m.ItemName, m.ItemNumber, m.Category, m.Description, m.Quantity, m.Condition,
		m.PurchasePrice, m.PurchaseDate, m.Location, m.RequiresInspection, m.Notes,
	)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return apierr.DuplicateKey("item_number already exists")
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// Update applies a partial update. Shrinking quantity below the open checkout
// total is rejected, so the quantity >= open-checkouts invariant holds; the
// check and the write share one transaction and a row lock.
func (s *Store) Update(ctx context.Context, id uint64, in itemPatch) (*Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var current uint
	err = tx.QueryRowContext(ctx, `SELECT quantity FROM equipment WHERE id = ? FOR UPDATE`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = apierr.NotFound("equipment not found")
		}
		return nil, err
	}

	if in.Quantity != nil {
		var out uint
		err = tx.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(quantity_out), 0) FROM checkouts WHERE equipment_id = ? AND status = 'OUT'`, id,
		).Scan(&out)
		if err != nil {
			return nil, err
		}
		if *in.Quantity < out {
			err = apierr.Conflict(fmt.Sprintf("quantity %d is below the %d currently checked out", *in.Quantity, out))
			return nil, err
		}
	}

	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if in.ItemName != nil {
		add("item_name", *in.ItemName)
	}
	if in.Category != nil {
		add("category", *in.Category)
	}
	if in.Description != nil {
		add("description", *in.Description)
	}
	if in.Quantity != nil {
		add("quantity", *in.Quantity)
	}
	if in.Condition != nil {
		add("`condition`", *in.Condition)
	}
	if in.PurchasePrice != nil {
		add("purchase_price", *in.PurchasePrice)
	}
	if in.Location != nil {
		add("location", *in.Location)
	}
	if in.RequiresInspection != nil {
		add("requires_inspection", *in.RequiresInspection)
	}
	if in.LastInspection != nil {
		add("last_inspection", *in.LastInspection)
	}
	if in.Notes != nil {
		add("notes", *in.Notes)
	}

	if len(sets) > 0 {
		args = append(args, id)
		q := fmt.Sprintf(`UPDATE equipment SET %s WHERE id = ?`, strings.Join(sets, ", "))
		if _, err = tx.ExecContext(ctx, q, args...); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes an item that has never been checked out. Any ledger history,
// open or closed, blocks deletion; retire via condition instead.
func (s *Store) Delete(ctx context.Context, id uint64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exists uint64
	err = tx.QueryRowContext(ctx, `SELECT id FROM equipment WHERE id = ? FOR UPDATE`, id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = apierr.NotFound("equipment not found")
		}
		return err
	}

	var history int64
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM checkouts WHERE equipment_id = ?`, id).Scan(&history); err != nil {
		return err
	}
	if history > 0 {
		err = apierr.Conflict("equipment has checkout history; set condition to Retired instead")
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM equipment_inspections WHERE equipment_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM equipment WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// InsertInspection appends to the inspection log and folds the result onto the
// item (condition + last_inspection) in the same transaction.
func (s *Store) InsertInspection(ctx context.Context, m *Inspection) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var id uint64
	err = tx.QueryRowContext(ctx, `SELECT id FROM equipment WHERE id = ? FOR UPDATE`, m.EquipmentID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = apierr.NotFound("equipment not found")
		}
		return err
	}

	const qIns = `
	INSERT INTO equipment_inspections
	(inspection_ulid, equipment_id, inspected_by, ` + "`condition`" + `, notes, inspected_at)
	VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qIns,
		m.InspectionULID, m.EquipmentID, m.InspectedBy, m.Condition, m.Notes, m.InspectedAt,
	)
	if err != nil {
		return err
	}
	insID, _ := res.LastInsertId()
	m.ID = uint64(insID)

	const qUpd = `UPDATE equipment SET ` + "`condition`" + ` = ?, last_inspection = ? WHERE id = ?`
	if _, err = tx.ExecContext(ctx, qUpd, m.Condition, m.InspectedAt, m.EquipmentID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) ListInspections(ctx context.Context, equipmentID uint64, p Page) ([]Inspection, error) {
	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	const q = `
	SELECT id, inspection_ulid, equipment_id, inspected_by, ` + "`condition`" + `, notes, inspected_at
	FROM equipment_inspections
	WHERE equipment_id = ?
	ORDER BY inspected_at DESC
	LIMIT ? OFFSET ?`

	rows, err := s.db.QueryContext(ctx, q, equipmentID, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Inspection{}
	for rows.Next() {
		var m Inspection
		if err := rows.Scan(&m.ID, &m.InspectionULID, &m.EquipmentID, &m.InspectedBy, &m.Condition, &m.Notes, &m.InspectedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
