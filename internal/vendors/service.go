package vendors

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

type VendorStore interface {
	List(ctx context.Context, f Filter) ([]Vendor, error)
	GetByID(ctx context.Context, id uint64) (*Vendor, error)
	Insert(ctx context.Context, m *Vendor) error
	Update(ctx context.Context, id uint64, in UpdateVendorRequest) (*Vendor, error)
	Delete(ctx context.Context, id uint64) error
	RecordUsage(ctx context.Context, id uint64, now time.Time) (*Vendor, error)
}

type Service struct {
	store VendorStore
	clock Clock
}

func NewService(db *sql.DB) *Service {
	return &Service{store: NewStore(db), clock: realClock{}}
}

func validRating(r float64) bool { return r >= 0 && r <= 5 }

func (s *Service) List(ctx context.Context, f Filter) ([]VendorResponse, error) {
	list, err := s.store.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]VendorResponse, 0, len(list))
	for i := range list {
		out = append(out, list[i].toDTO())
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id uint64) (*VendorResponse, error) {
	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := m.toDTO()
	return &resp, nil
}

func (s *Service) Create(ctx context.Context, in CreateVendorRequest) (*VendorResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apierr.Invalid("name is required")
	}
	if in.Rating != nil && !validRating(*in.Rating) {
		return nil, apierr.Invalid("rating must be between 0 and 5")
	}

	m := &Vendor{
		Name:      strings.TrimSpace(in.Name),
		Preferred: in.Preferred,
	}
	if in.Category != nil && *in.Category != "" {
		m.Category = sql.NullString{String: *in.Category, Valid: true}
	}
	if in.ContactName != nil && *in.ContactName != "" {
		m.ContactName = sql.NullString{String: *in.ContactName, Valid: true}
	}
	if in.Phone != nil && *in.Phone != "" {
		m.Phone = sql.NullString{String: *in.Phone, Valid: true}
	}
	if in.Email != nil && *in.Email != "" {
		m.Email = sql.NullString{String: *in.Email, Valid: true}
	}
	if in.Website != nil && *in.Website != "" {
		m.Website = sql.NullString{String: *in.Website, Valid: true}
	}
	if in.Rating != nil {
		m.Rating = sql.NullFloat64{Float64: *in.Rating, Valid: true}
	}
	if in.Notes != nil && *in.Notes != "" {
		m.Notes = sql.NullString{String: *in.Notes, Valid: true}
	}

	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	return s.Get(ctx, m.ID)
}

func (s *Service) Update(ctx context.Context, id uint64, in UpdateVendorRequest) (*VendorResponse, error) {
	if in.Rating != nil && !validRating(*in.Rating) {
		return nil, apierr.Invalid("rating must be between 0 and 5")
	}
	m, err := s.store.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	resp := m.toDTO()
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id uint64) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) RecordUsage(ctx context.Context, id uint64) (*VendorResponse, error) {
	m, err := s.store.RecordUsage(ctx, id, s.clock.Now())
	if err != nil {
		return nil, err
	}
	resp := m.toDTO()
	return &resp, nil
}

func (s *Service) Performance(ctx context.Context, id uint64) (*Performance, error) {
	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p := &Performance{VendorID: m.ID, TimesUsed: m.TimesUsed}
	if m.Rating.Valid {
		v := m.Rating.Float64
		p.Rating = &v
	}
	if m.LastUsedAt.Valid {
		v := m.LastUsedAt.Time
		p.LastUsedAt = &v
	}
	return p, nil
}
