package lessons

import (
	"context"
	"database/sql"
	"strings"

	"basecamp-backend/internal/platform/apierr"
)

type LessonStore interface {
	List(ctx context.Context, f Filter) ([]Lesson, error)
	Search(ctx context.Context, query string) ([]Lesson, error)
	GetByID(ctx context.Context, id uint64) (*Lesson, error)
	Insert(ctx context.Context, m *Lesson) error
	Update(ctx context.Context, id uint64, in UpdateLessonRequest) (*Lesson, error)
	Delete(ctx context.Context, id uint64) error
	Upvote(ctx context.Context, id uint64) (*Lesson, error)
}

type Service struct {
	store LessonStore
}

func NewService(db *sql.DB) *Service {
	return &Service{store: NewStore(db)}
}

func (s *Service) List(ctx context.Context, f Filter) ([]LessonResponse, error) {
	list, err := s.store.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

func (s *Service) Search(ctx context.Context, query string) ([]LessonResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apierr.Invalid("q is required")
	}
	list, err := s.store.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

func (s *Service) Create(ctx context.Context, in CreateLessonRequest) (*LessonResponse, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, apierr.Invalid("title and description are required")
	}

	m := &Lesson{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
	}
	if in.TripID != nil {
		m.TripID = sql.NullInt64{Int64: int64(*in.TripID), Valid: true}
	}
	if in.Category != nil && *in.Category != "" {
		m.Category = sql.NullString{String: *in.Category, Valid: true}
	}
	if in.CreatedBy != nil && *in.CreatedBy != "" {
		m.CreatedBy = sql.NullString{String: *in.CreatedBy, Valid: true}
	}

	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	created, err := s.store.GetByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	resp := created.toDTO()
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id uint64, in UpdateLessonRequest) (*LessonResponse, error) {
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

func (s *Service) Upvote(ctx context.Context, id uint64) (*LessonResponse, error) {
	m, err := s.store.Upvote(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := m.toDTO()
	return &resp, nil
}

func toDTOs(list []Lesson) []LessonResponse {
	out := make([]LessonResponse, 0, len(list))
	for i := range list {
		out = append(out, list[i].toDTO())
	}
	return out
}
