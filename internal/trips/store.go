package trips

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

const selectTrip = `
SELECT id, trip_name, destination, state_country, start_date, end_date,
       num_participants, difficulty, status, description, budget_total,
       created_at, deleted_at
FROM trips
`

func scanTrip(row interface{ Scan(...any) error }, m *Trip) error {
	return row.Scan(
		&m.ID, &m.TripName, &m.Destination, &m.StateCountry, &m.StartDate, &m.EndDate,
		&m.NumParticipants, &m.Difficulty, &m.Status, &m.Description, &m.BudgetTotal,
		&m.CreatedAt, &m.DeletedAt,
	)
}

func (s *Store) List(ctx context.Context, f Filter, now time.Time) ([]Trip, error) {
	sb := strings.Builder{}
	sb.WriteString(selectTrip)
	sb.WriteString(" WHERE deleted_at IS NULL")

	args := []any{}
	if f.Status != nil && *f.Status != "" {
		sb.WriteString(" AND status = ?")
		args = append(args, *f.Status)
	}
	if f.Upcoming {
		sb.WriteString(" AND start_date >= ?")
		args = append(args, now)
	}
	sb.WriteString(" ORDER BY start_date DESC")

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Trip{}
	for rows.Next() {
		var m Trip
		if err := scanTrip(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) GetByID(ctx context.Context, id uint64) (*Trip, error) {
	q := selectTrip + " WHERE id = ? AND deleted_at IS NULL"
	var m Trip
	if err := scanTrip(s.db.QueryRowContext(ctx, q, id), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierr.NotFound("trip not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *Store) Insert(ctx context.Context, m *Trip) error {
	const q = `
	INSERT INTO trips
	(trip_name, destination, state_country, start_date, end_date, num_participants,
	 difficulty, status, description, budget_total, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`

	res, err := s.db.ExecContext(ctx, q,
		m.TripName, m.Destination, m.StateCountry, m.StartDate, m.EndDate, m.NumParticipants,
		m.Difficulty, m.Status, m.Description, m.BudgetTotal,
	)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	m.ID = uint64(id)
	return nil
}

func (s *Store) Update(ctx context.Context, id uint64, sets []string, args []any) (*Trip, error) {
	if len(sets) == 0 {
		return s.GetByID(ctx, id)
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE trips SET %s WHERE id = ? AND deleted_at IS NULL`, strings.Join(sets, ", "))

	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		// Could also be a no-change update; disambiguate with a fetch.
		return s.GetByID(ctx, id)
	}
	return s.GetByID(ctx, id)
}

// SoftDelete marks the trip deleted; lessons keep referencing it.
func (s *Store) SoftDelete(ctx context.Context, id uint64, now time.Time) error {
	const q = `UPDATE trips SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`
	res, err := s.db.ExecContext(ctx, q, now, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return apierr.NotFound("trip not found")
	}
	return nil
}

func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	const q = `
	SELECT COUNT(*),
	       COALESCE(SUM(start_date >= ?), 0),
	       COALESCE(SUM(status = ?), 0),
	       COALESCE(SUM(num_participants), 0),
	       COALESCE(SUM(budget_total), 0)
	FROM trips
	WHERE deleted_at IS NULL`

	var st Stats
	err := s.db.QueryRowContext(ctx, q, now, StatusCompleted).Scan(
		&st.Total, &st.Upcoming, &st.Completed, &st.TotalParticipants, &st.BudgetTotal,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
