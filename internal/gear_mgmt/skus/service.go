package skus

import (
	"context"
	"database/sql"
	"strings"

	"basecamp-backend/internal/platform/apierr"
)

type SKUStore interface {
	List(ctx context.Context) ([]SKU, error)
	GetByID(ctx context.Context, id uint64) (*SKU, error)
	Insert(ctx context.Context, m *SKU) error
	Delete(ctx context.Context, id uint64) error
}

type Service struct {
	store SKUStore
}

func NewService(db *sql.DB) *Service {
	return &Service{store: NewStore(db)}
}

func (s *Service) List(ctx context.Context) ([]SKUResponse, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SKUResponse, 0, len(list))
	for i := range list {
		out = append(out, list[i].toDTO())
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in CreateSKURequest) (*SKUResponse, error) {
	name := strings.TrimSpace(in.Name)
	number := strings.TrimSpace(in.SkuNumber)
	if name == "" || number == "" {
		return nil, apierr.Invalid("name and sku_number are required")
	}

	m := &SKU{Name: name, SkuNumber: number}
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

func (s *Service) Delete(ctx context.Context, id uint64) error {
	return s.store.Delete(ctx, id)
}
