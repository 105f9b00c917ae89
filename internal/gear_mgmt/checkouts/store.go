package checkouts

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

const selectCheckout = `
SELECT c.id, c.checkout_ulid, c.equipment_id, c.checked_out_by, c.approved_by,
       c.event_name, c.quantity_out, c.condition_out, c.checkout_date,
       c.expected_return_date, c.status, c.actual_return_date, c.condition_in,
       c.return_notes, e.item_name, e.item_number
FROM checkouts c
JOIN equipment e ON e.id = c.equipment_id
`

func scanCheckout(row interface{ Scan(...any) error }, m *Checkout) error {
	return row.Scan(
		&m.ID, &m.CheckoutULID, &m.EquipmentID, &m.CheckedOutBy, &m.ApprovedBy,
		&m.EventName, &m.QuantityOut, &m.ConditionOut, &m.CheckoutDate,
		&m.ExpectedReturn, &m.Status, &m.ActualReturn, &m.ConditionIn,
		&m.ReturnNotes, &m.ItemName, &m.ItemNumber,
	)
}

// Create appends an OUT row if enough stock is free. The availability check
// and the insert share one transaction holding a lock on the equipment row,
// so two concurrent checkouts of the last unit cannot both pass the check.
func (s *Store) Create(ctx context.Context, m *Checkout) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var total uint
	var itemCondition string
	err = tx.QueryRowContext(ctx,
		"SELECT quantity, `condition` FROM equipment WHERE id = ? FOR UPDATE", m.EquipmentID,
	).Scan(&total, &itemCondition)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = apierr.NotFound("equipment not found")
		}
		return err
	}

	var out uint
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(quantity_out), 0) FROM checkouts WHERE equipment_id = ? AND status = ?`,
		m.EquipmentID, StatusOut,
	).Scan(&out)
	if err != nil {
		return err
	}

	available := int(total) - int(out)
	if int(m.QuantityOut) > available {
		err = apierr.InsufficientStock(fmt.Sprintf("requested %d but only %d available", m.QuantityOut, available))
		return err
	}

	// Caller may leave condition_out empty to mean "whatever the item is now".
	if m.ConditionOut == "" {
		m.ConditionOut = itemCondition
	}

	const q = `
	INSERT INTO checkouts
	(checkout_ulid, equipment_id, checked_out_by, approved_by, event_name,
	 quantity_out, condition_out, checkout_date, expected_return_date, status)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := tx.ExecContext(ctx, q,
		m.CheckoutULID, m.EquipmentID, m.CheckedOutBy, m.ApprovedBy, m.EventName,
		m.QuantityOut, m.ConditionOut, m.CheckoutDate, m.ExpectedReturn, StatusOut,
	)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	m.ID = uint64(id)
	m.Status = StatusOut

	return tx.Commit()
}

// Return moves OUT -> RETURNED and folds condition_in onto the parent item
// (the item's current condition tracks its most recent return). Both writes
// share one transaction; a second call on the same row gets INVALID_STATE.
func (s *Store) Return(ctx context.Context, id uint64, conditionIn string, notes *string, now time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var status string
	var equipmentID uint64
	err = tx.QueryRowContext(ctx,
		`SELECT status, equipment_id FROM checkouts WHERE id = ? FOR UPDATE`, id,
	).Scan(&status, &equipmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = apierr.NotFound("checkout not found")
		}
		return err
	}
	if status != StatusOut {
		err = apierr.InvalidState("checkout already returned")
		return err
	}

	var notesArg any
	if notes != nil && *notes != "" {
		notesArg = *notes
	}

	const qUpd = `
	UPDATE checkouts
	SET status = ?, actual_return_date = ?, condition_in = ?, return_notes = ?
	WHERE id = ?`
	if _, err = tx.ExecContext(ctx, qUpd, StatusReturned, now, conditionIn, notesArg, id); err != nil {
		return err
	}

	const qItem = "UPDATE equipment SET `condition` = ? WHERE id = ?"
	if _, err = tx.ExecContext(ctx, qItem, conditionIn, equipmentID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) GetByID(ctx context.Context, id uint64) (*Checkout, error) {
	q := selectCheckout + " WHERE c.id = ?"
	var m Checkout
	if err := scanCheckout(s.db.QueryRowContext(ctx, q, id), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierr.NotFound("checkout not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *Store) GetByULID(ctx context.Context, ulid string) (*Checkout, error) {
	q := selectCheckout + " WHERE c.checkout_ulid = ?"
	var m Checkout
	if err := scanCheckout(s.db.QueryRowContext(ctx, q, ulid), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierr.NotFound("checkout not found")
		}
		return nil, err
	}
	return &m, nil
}

// List returns checkouts joined with item name/number. Open checkouts sort
// soonest-due first; mixed or returned listings sort newest first.
func (s *Store) List(ctx context.Context, f Filter, p Page) ([]Checkout, error) {
	sb := strings.Builder{}
	sb.WriteString(selectCheckout)
	sb.WriteString(" WHERE 1=1")

	args := []any{}
	if f.Status != nil {
		sb.WriteString(" AND c.status = ?")
		args = append(args, *f.Status)
	}
	if f.CheckedOutBy != nil && *f.CheckedOutBy != "" {
		sb.WriteString(" AND c.checked_out_by = ?")
		args = append(args, *f.CheckedOutBy)
	}
	if f.EventName != nil && *f.EventName != "" {
		sb.WriteString(" AND c.event_name = ?")
		args = append(args, *f.EventName)
	}

	if f.Status != nil && *f.Status == StatusOut {
		sb.WriteString(" ORDER BY c.expected_return_date ASC, c.id ASC")
	} else {
		sb.WriteString(" ORDER BY c.checkout_date DESC, c.id DESC")
	}

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

	out := []Checkout{}
	for rows.Next() {
		var m Checkout
		if err := scanCheckout(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// HistoryByEquipment lists one item's ledger, newest first.
func (s *Store) HistoryByEquipment(ctx context.Context, equipmentID uint64, p Page) ([]Checkout, error) {
	var exists uint64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM equipment WHERE id = ?`, equipmentID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierr.NotFound("equipment not found")
		}
		return nil, err
	}

	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	q := selectCheckout + ` WHERE c.equipment_id = ? ORDER BY c.checkout_date DESC, c.id DESC LIMIT ? OFFSET ?`

	rows, err := s.db.QueryContext(ctx, q, equipmentID, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Checkout{}
	for rows.Next() {
		var m Checkout
		if err := scanCheckout(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
