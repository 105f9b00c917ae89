package lessons

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	mysql "github.com/go-sql-driver/mysql"

	"basecamp-backend/internal/platform/apierr"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

const selectLesson = `
SELECT id, trip_id, title, category, description, upvotes, created_by, created_at
FROM lessons
`

func scanLesson(row interface{ Scan(...any) error }, m *Lesson) error {
	return row.Scan(&m.ID, &m.TripID, &m.Title, &m.Category, &m.Description, &m.Upvotes, &m.CreatedBy, &m.CreatedAt)
}

func (s *Store) List(ctx context.Context, f Filter) ([]Lesson, error) {
	sb := strings.Builder{}
	sb.WriteString(selectLesson)
	sb.WriteString(" WHERE 1=1")

	args := []any{}
	if f.TripID != nil {
		sb.WriteString(" AND trip_id = ?")
		args = append(args, *f.TripID)
	}
	if f.Category != nil && *f.Category != "" {
		sb.WriteString(" AND category = ?")
		args = append(args, *f.Category)
	}
	sb.WriteString(" ORDER BY upvotes DESC, created_at DESC")

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Lesson{}
	for rows.Next() {
		var m Lesson
		if err := scanLesson(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Search matches the query against title and description.
func (s *Store) Search(ctx context.Context, query string) ([]Lesson, error) {
	q := selectLesson + ` WHERE title LIKE ? OR description LIKE ? ORDER BY upvotes DESC, created_at DESC`
	pattern := "%" + query + "%"

	rows, err := s.db.QueryContext(ctx, q, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Lesson{}
	for rows.Next() {
		var m Lesson
		if err := scanLesson(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) GetByID(ctx context.Context, id uint64) (*Lesson, error) {
	var m Lesson
	if err := scanLesson(s.db.QueryRowContext(ctx, selectLesson+" WHERE id = ?", id), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierr.NotFound("lesson not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *Store) Insert(ctx context.Context, m *Lesson) error {
	const q = `
	INSERT INTO lessons (trip_id, title, category, description, upvotes, created_by, created_at)
	VALUES (?, ?, ?, ?, 0, ?, CURRENT_TIMESTAMP)`

	res, err := s.db.ExecContext(ctx, q, m.TripID, m.Title, m.Category, m.Description, m.CreatedBy)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1452 {
			return apierr.Invalid("trip_id does not reference an existing trip")
		}
		return err
	}
	id, _ := res.LastInsertId()
	m.ID = uint64(id)
	return nil
}

func (s *Store) Update(ctx context.Context, id uint64, in UpdateLessonRequest) (*Lesson, error) {
	sets := []string{}
	args := []any{}
	if in.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *in.Title)
	}
	if in.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *in.Category)
	}
	if in.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *in.Description)
	}
	if len(sets) == 0 {
		return s.GetByID(ctx, id)
	}

	args = append(args, id)
	q := fmt.Sprintf(`UPDATE lessons SET %s WHERE id = ?`, strings.Join(sets, ", "))
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id uint64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM lessons WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return apierr.NotFound("lesson not found")
	}
	return nil
}

// Upvote is a single atomic increment; no read-modify-write.
func (s *Store) Upvote(ctx context.Context, id uint64) (*Lesson, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE lessons SET upvotes = upvotes + 1 WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return nil, apierr.NotFound("lesson not found")
	}
	return s.GetByID(ctx, id)
}
