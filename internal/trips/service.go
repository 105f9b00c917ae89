package trips

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"basecamp-backend/internal/platform/apierr"
)

type Clock interface{ Now() time.Time }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

type TripStore interface {
	List(ctx context.Context, f Filter, now time.Time) ([]Trip, error)
	GetByID(ctx context.Context, id uint64) (*Trip, error)
	Insert(ctx context.Context, m *Trip) error
	Update(ctx context.Context, id uint64, sets []string, args []any) (*Trip, error)
	SoftDelete(ctx context.Context, id uint64, now time.Time) error
	Stats(ctx context.Context, now time.Time) (*Stats, error)
}

type Service struct {
	store TripStore
	clock Clock
}

func NewService(db *sql.DB) *Service {
	return &Service{store: NewStore(db), clock: realClock{}}
}

func (s *Service) List(ctx context.Context, f Filter) ([]TripResponse, error) {
	list, err := s.store.List(ctx, f, s.clock.Now())
	if err != nil {
		return nil, err
	}
	out := make([]TripResponse, 0, len(list))
	for i := range list {
		out = append(out, list[i].toDTO())
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id uint64) (*TripResponse, error) {
	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := m.toDTO()
	return &resp, nil
}

func (s *Service) Create(ctx context.Context, in CreateTripRequest) (*TripResponse, error) {
	if strings.TrimSpace(in.TripName) == "" || strings.TrimSpace(in.Destination) == "" {
		return nil, apierr.Invalid("trip_name and destination are required")
	}
	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return nil, apierr.Invalid("invalid start_date, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", in.EndDate)
	if err != nil {
		return nil, apierr.Invalid("invalid end_date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, apierr.Invalid("end_date is before start_date")
	}

	status := StatusPlanned
	if in.Status != nil && *in.Status != "" {
		if !validStatus(*in.Status) {
			return nil, apierr.Invalid("unknown status: " + *in.Status)
		}
		status = *in.Status
	}

	m := &Trip{
		TripName:        strings.TrimSpace(in.TripName),
		Destination:     strings.TrimSpace(in.Destination),
		StartDate:       start,
		EndDate:         end,
		NumParticipants: in.NumParticipants,
		Status:          status,
	}
	if in.StateCountry != nil && *in.StateCountry != "" {
		m.StateCountry = sql.NullString{String: *in.StateCountry, Valid: true}
	}
	if in.Difficulty != nil && *in.Difficulty != "" {
		m.Difficulty = sql.NullString{String: *in.Difficulty, Valid: true}
	}
	if in.Description != nil && *in.Description != "" {
		m.Description = sql.NullString{String: *in.Description, Valid: true}
	}
	if in.BudgetTotal != nil {
		m.BudgetTotal = sql.NullFloat64{Float64: *in.BudgetTotal, Valid: true}
	}

	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	return s.Get(ctx, m.ID)
}

func (s *Service) Update(ctx context.Context, id uint64, in UpdateTripRequest) (*TripResponse, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if in.TripName != nil {
		add("trip_name", *in.TripName)
	}
	if in.Destination != nil {
		add("destination", *in.Destination)
	}
	if in.StateCountry != nil {
		add("state_country", *in.StateCountry)
	}
	if in.StartDate != nil {
		t, err := time.Parse("2006-01-02", *in.StartDate)
		if err != nil {
			return nil, apierr.Invalid("invalid start_date, expected YYYY-MM-DD")
		}
		add("start_date", t)
	}
	if in.EndDate != nil {
		t, err := time.Parse("2006-01-02", *in.EndDate)
		if err != nil {
			return nil, apierr.Invalid("invalid end_date, expected YYYY-MM-DD")
		}
		add("end_date", t)
	}
	if in.NumParticipants != nil {
		add("num_participants", *in.NumParticipants)
	}
	if in.Difficulty != nil {
		add("difficulty", *in.Difficulty)
	}
	if in.Status != nil {
		if !validStatus(*in.Status) {
			return nil, apierr.Invalid("unknown status: " + *in.Status)
		}
		add("status", *in.Status)
	}
	if in.Description != nil {
		add("description", *in.Description)
	}
	if in.BudgetTotal != nil {
		add("budget_total", *in.BudgetTotal)
	}

	m, err := s.store.Update(ctx, id, sets, args)
	if err != nil {
		return nil, err
	}
	resp := m.toDTO()
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id uint64) error {
	return s.store.SoftDelete(ctx, id, s.clock.Now())
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.store.Stats(ctx, s.clock.Now())
}
