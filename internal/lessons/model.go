package lessons

import (
	"database/sql"
	"time"
)

// Lesson is a lessons-learned entry, optionally tied to a trip.
type Lesson struct {
	ID          uint64
	TripID      sql.NullInt64
	Title       string
	Category    sql.NullString
	Description string
	Upvotes     uint
	CreatedBy   sql.NullString
	CreatedAt   time.Time
}

type Filter struct {
	TripID   *uint64
	Category *string
}
