package trips

import (
	"database/sql"
	"time"
)

const (
	StatusPlanned   = "Planned"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

func validStatus(s string) bool {
	switch s {
	case StatusPlanned, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Trip struct {
	ID              uint64
	TripName        string
	Destination     string
	StateCountry    sql.NullString
	StartDate       time.Time
	EndDate         time.Time
	NumParticipants uint
	Difficulty      sql.NullString
	Status          string
	Description     sql.NullString
	BudgetTotal     sql.NullFloat64
	CreatedAt       time.Time
	DeletedAt       sql.NullTime
}

type Filter struct {
	Status   *string
	Upcoming bool
}

// Stats is the dashboard summary.
type Stats struct {
	Total             int64   `json:"total"`
	Upcoming          int64   `json:"upcoming"`
	Completed         int64   `json:"completed"`
	TotalParticipants int64   `json:"total_participants"`
	BudgetTotal       float64 `json:"budget_total"`
}
