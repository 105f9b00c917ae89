package checkouts

import (
	"context"
	"crypto/rand"
	"database/sql"
	"strconv"
	"time"

	ulid "github.com/oklog/ulid/v2"

	"basecamp-backend/internal/gear_mgmt/equipment"
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

// LedgerStore is what the service needs from storage; *Store satisfies it.
type LedgerStore interface {
	Create(ctx context.Context, m *Checkout) error
	Return(ctx context.Context, id uint64, conditionIn string, notes *string, now time.Time) error
	GetByID(ctx context.Context, id uint64) (*Checkout, error)
	GetByULID(ctx context.Context, ulid string) (*Checkout, error)
	List(ctx context.Context, f Filter, p Page) ([]Checkout, error)
	HistoryByEquipment(ctx context.Context, equipmentID uint64, p Page) ([]Checkout, error)
}

type Service struct {
	store LedgerStore
	clock Clock
	id    IDGen
}

func NewService(db *sql.DB) *Service {
	return &Service{store: NewStore(db), clock: realClock{}, id: ulidGen{}}
}

// RecordCheckout validates the request and appends an OUT ledger row. The
// stock check happens in the store, under the equipment row lock.
func (s *Service) RecordCheckout(ctx context.Context, req CreateCheckoutRequest) (*CheckoutResponse, error) {
	if req.Quantity < 1 {
		return nil, apierr.Invalid("quantity must be >= 1")
	}
	if req.CheckedOutBy == "" {
		return nil, apierr.Invalid("checked_out_by is required")
	}
	expected, err := time.Parse("2006-01-02", req.ExpectedReturn)
	if err != nil {
		return nil, apierr.Invalid("invalid expected_return_date, expected YYYY-MM-DD")
	}
	conditionOut := ""
	if req.ConditionOut != nil && *req.ConditionOut != "" {
		if !equipment.ValidCondition(*req.ConditionOut) {
			return nil, apierr.Invalid("unknown condition_out: " + *req.ConditionOut)
		}
		conditionOut = *req.ConditionOut
	}

	now := s.clock.Now()
	m := &Checkout{
		CheckoutULID:   s.id.NewULID(now),
		EquipmentID:    req.EquipmentID,
		CheckedOutBy:   req.CheckedOutBy,
		QuantityOut:    req.Quantity,
		ConditionOut:   conditionOut,
		CheckoutDate:   now,
		ExpectedReturn: expected,
	}
	if req.ApprovedBy != nil && *req.ApprovedBy != "" {
		m.ApprovedBy = sql.NullString{String: *req.ApprovedBy, Valid: true}
	}
	if req.EventName != nil && *req.EventName != "" {
		m.EventName = sql.NullString{String: *req.EventName, Valid: true}
	}

	if err := s.store.Create(ctx, m); err != nil {
		return nil, err
	}

	// Re-read for the joined item columns.
	created, err := s.store.GetByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	resp := created.toDTO(now)
	return &resp, nil
}

// RecordReturn performs the single OUT -> RETURNED transition. Calling it on
// an already-returned checkout fails with INVALID_STATE and never credits
// availability twice.
func (s *Service) RecordReturn(ctx context.Context, id uint64, req ReturnRequest) (*CheckoutResponse, error) {
	if !equipment.ValidCondition(req.ConditionIn) {
		return nil, apierr.Invalid("unknown condition_in: " + req.ConditionIn)
	}

	now := s.clock.Now()
	if err := s.store.Return(ctx, id, req.ConditionIn, req.ReturnNotes, now); err != nil {
		return nil, err
	}

	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := m.toDTO(now)
	return &resp, nil
}

// GetByKey resolves a checkout by numeric id or by its public ULID.
func (s *Service) GetByKey(ctx context.Context, key string) (*CheckoutResponse, error) {
	if key == "" {
		return nil, apierr.Invalid("id or ulid is required")
	}

	var m *Checkout
	var err error
	if id, perr := strconv.ParseUint(key, 10, 64); perr == nil && id > 0 {
		m, err = s.store.GetByID(ctx, id)
	} else {
		m, err = s.store.GetByULID(ctx, key)
	}
	if err != nil {
		return nil, err
	}
	resp := m.toDTO(s.clock.Now())
	return &resp, nil
}

func (s *Service) ListCheckouts(ctx context.Context, f Filter, p Page) ([]CheckoutResponse, error) {
	list, err := s.store.List(ctx, f, p)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	out := make([]CheckoutResponse, 0, len(list))
	for i := range list {
		out = append(out, list[i].toDTO(now))
	}
	return out, nil
}

func (s *Service) EquipmentHistory(ctx context.Context, equipmentID uint64, p Page) ([]CheckoutResponse, error) {
	list, err := s.store.HistoryByEquipment(ctx, equipmentID, p)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	out := make([]CheckoutResponse, 0, len(list))
	for i := range list {
		out = append(out, list[i].toDTO(now))
	}
	return out, nil
}
