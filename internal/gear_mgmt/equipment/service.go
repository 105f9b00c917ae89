package equipment

import (
	"context"
	"crypto/rand"
	"database/sql"
	"strings"
	"time"

	ulid "github.com/oklog/ulid/v2"

	"basecamp-backend/internal/platform/apierr"
)

type Clock interface{ Now() time.Time }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

type IDGen interface{ NewULID(t time.Time) string }

type ulidGen struct{}

func (ulidGen) NewULID(t time.Time) string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// ItemStore is what the service needs from storage; *Store satisfies it.
type ItemStore interface {
	List(ctx context.Context, f Filter, p Page) ([]Item, error)
	GetByID(ctx context.Context, id uint64) (*Item, error)
	Insert(ctx context.Context, m *Item) error
	Update(ctx context.Context, id uint64, in itemPatch) (*Item, error)
	Delete(ctx context.Context, id uint64) error
	InsertInspection(ctx context.Context, m *Inspection) error
	ListInspections(ctx context.Context, equipmentID uint64, p Page) ([]Inspection, error)
}

type Service struct {
	store ItemStore
	clock Clock
	id    IDGen
}

func NewService(db *sql.DB) *Service {
	return &Service{store: NewStore(db), clock: realClock{}, id: ulidGen{}}
}

func (s *Service) ListItems(ctx context.Context, f Filter, p Page) ([]ItemResponse, error) {
	items, err := s.store.List(ctx, f, p)
	if err != nil {
		return nil, err
	}
	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, items[i].toDTO())
	}
	return out, nil
}

func (s *Service) GetItem(ctx context.Context, id uint64) (*ItemResponse, error) {
	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := m.toDTO()
	return &resp, nil
}

func (s *Service) CreateItem(ctx context.Context, in CreateItemRequest) (*ItemResponse, error) {
	if strings.TrimSpace(in.ItemName) == "" || strings.TrimSpace(in.ItemNumber) == "" {
		return nil, apierr.Invalid("item_name and item_number are required")
	}
	if !ValidCondition(in.Condition) {
		return nil, apierr.Invalid("unknown condition: " + in.Condition)
	}

	m := &Item{
		ItemName:           strings.TrimSpace(in.ItemName),
		ItemNumber:         strings.TrimSpace(in.ItemNumber),
		Category:           in.Category,
		Quantity:           in.Quantity,
		Condition:          in.Condition,
		RequiresInspection: in.RequiresInspection,
	}
	if in.Description != nil && *in.Description != "" {
		m.Description = sql.NullString{String: *in.Description, Valid: true}
	}
	if in.PurchasePrice != nil {
		m.PurchasePrice = sql.NullFloat64{Float64: *in.PurchasePrice, Valid: true}
	}
	if in.PurchaseDate != nil && *in.PurchaseDate != "" {
		t, err := time.Parse("2006-01-02", *in.PurchaseDate)
		if err != nil {
			return nil, apierr.Invalid("invalid purchase_date, expected YYYY-MM-DD")
		}
		m.PurchaseDate = sql.NullTime{Time: t, Valid: true}
	}
	if in.Location != nil && *in.Location != "" {
		m.Location = sql.NullString{String: *in.Location, Valid: true}
	}
	if in.Notes != nil && *in.Notes != "" {
		m.Notes = sql.NullString{String: *in.Notes, Valid: true}
	}

	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	return s.GetItem(ctx, m.ID)
}

func (s *Service) UpdateItem(ctx context.Context, id uint64, in UpdateItemRequest) (*ItemResponse, error) {
	if in.Condition != nil && !ValidCondition(*in.Condition) {
		return nil, apierr.Invalid("unknown condition: " + *in.Condition)
	}

	patch := itemPatch{
		ItemName:           in.ItemName,
		Category:           in.Category,
		Description:        in.Description,
		Quantity:           in.Quantity,
		Condition:          in.Condition,
		PurchasePrice:      in.PurchasePrice,
		Location:           in.Location,
		RequiresInspection: in.RequiresInspection,
		Notes:              in.Notes,
	}
	if in.LastInspection != nil && *in.LastInspection != "" {
		t, err := time.Parse("2006-01-02", *in.LastInspection)
		if err != nil {
			return nil, apierr.Invalid("invalid last_inspection, expected YYYY-MM-DD")
		}
		patch.LastInspection = &t
	}

	m, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	resp := m.toDTO()
	return &resp, nil
}

func (s *Service) DeleteItem(ctx context.Context, id uint64) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) RecordInspection(ctx context.Context, equipmentID uint64, in CreateInspectionRequest) (*InspectionResponse, error) {
	if !ValidCondition(in.Condition) {
		return nil, apierr.Invalid("unknown condition: " + in.Condition)
	}

	now := s.clock.Now()
	m := &Inspection{
		InspectionULID: s.id.NewULID(now),
		EquipmentID:    equipmentID,
		InspectedBy:    in.InspectedBy,
		Condition:      in.Condition,
		InspectedAt:    now,
	}
	if in.Notes != nil && *in.Notes != "" {
		m.Notes = sql.NullString{String: *in.Notes, Valid: true}
	}

	if err := s.store.InsertInspection(ctx, m); err != nil {
		return nil, err
	}
	resp := m.toDTO()
	return &resp, nil
}

func (s *Service) ListInspections(ctx context.Context, equipmentID uint64, p Page) ([]InspectionResponse, error) {
	list, err := s.store.ListInspections(ctx, equipmentID, p)
	if err != nil {
		return nil, err
	}
	out := make([]InspectionResponse, 0, len(list))
	for i := range list {
		out = append(out, list[i].toDTO())
	}
	return out, nil
}
