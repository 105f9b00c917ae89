package checkouts

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"basecamp-backend/internal/platform/apierr"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fixedIDGen struct{ s string }

func (g fixedIDGen) NewULID(time.Time) string { return g.s }

type ledgerMock struct {
	createFn  func(ctx context.Context, m *Checkout) error
	returnFn  func(ctx context.Context, id uint64, conditionIn string, notes *string, now time.Time) error
	getByIDFn func(ctx context.Context, id uint64) (*Checkout, error)
	getULIDFn func(ctx context.Context, ulid string) (*Checkout, error)
	listFn    func(ctx context.Context, f Filter, p Page) ([]Checkout, error)
	historyFn func(ctx context.Context, equipmentID uint64, p Page) ([]Checkout, error)
}

func (m *ledgerMock) Create(ctx context.Context, c *Checkout) error { return m.createFn(ctx, c) }
func (m *ledgerMock) Return(ctx context.Context, id uint64, conditionIn string, notes *string, now time.Time) error {
	return m.returnFn(ctx, id, conditionIn, notes, now)
}
func (m *ledgerMock) GetByID(ctx context.Context, id uint64) (*Checkout, error) {
	return m.getByIDFn(ctx, id)
}
func (m *ledgerMock) GetByULID(ctx context.Context, ulid string) (*Checkout, error) {
	return m.getULIDFn(ctx, ulid)
}
func (m *ledgerMock) List(ctx context.Context, f Filter, p Page) ([]Checkout, error) {
	return m.listFn(ctx, f, p)
}
func (m *ledgerMock) HistoryByEquipment(ctx context.Context, equipmentID uint64, p Page) ([]Checkout, error) {
	return m.historyFn(ctx, equipmentID, p)
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(store LedgerStore) *Service {
	return &Service{
		store: store,
		clock: fixedClock{t: testNow},
		id:    fixedIDGen{s: "01HTESTULID0000000000000000"},
	}
}

func validCreateReq() CreateCheckoutRequest {
	return CreateCheckoutRequest{
		EquipmentID:    7,
		CheckedOutBy:   "Jordan Reyes",
		Quantity:       3,
		ExpectedReturn: "2026-03-15",
	}
}

func TestRecordCheckout(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		var created *Checkout
		mock := &ledgerMock{
			createFn: func(_ context.Context, m *Checkout) error {
				m.ID = 42
				created = m
				return nil
			},
			getByIDFn: func(_ context.Context, id uint64) (*Checkout, error) {
				require.EqualValues(t, 42, id)
				return &Checkout{
					ID:             42,
					CheckoutULID:   created.CheckoutULID,
					EquipmentID:    created.EquipmentID,
					CheckedOutBy:   created.CheckedOutBy,
					QuantityOut:    created.QuantityOut,
					ConditionOut:   "Good",
					CheckoutDate:   created.CheckoutDate,
					ExpectedReturn: created.ExpectedReturn,
					Status:         StatusOut,
					ItemName:       "MSR Elixir 3 Tent",
					ItemNumber:     "TENT-003",
				}, nil
			},
		}
		svc := newTestService(mock)

		resp, err := svc.RecordCheckout(context.Background(), validCreateReq())
		require.NoError(t, err)
		require.Equal(t, "01HTESTULID0000000000000000", created.CheckoutULID)
		require.Equal(t, testNow, created.CheckoutDate)
		require.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), created.ExpectedReturn)
		require.EqualValues(t, 42, resp.ID)
		require.Equal(t, "MSR Elixir 3 Tent", resp.ItemName)
		require.Equal(t, StatusOut, resp.Status)
		// Due in 5 days with a 2-day threshold.
		require.Equal(t, DisplayActive, resp.DisplayStatus)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		svc := newTestService(&ledgerMock{})
		req := validCreateReq()
		req.Quantity = 0

		_, err := svc.RecordCheckout(context.Background(), req)
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeInvalidArgument, ae.Code)
	})

	t.Run("missing borrower rejected", func(t *testing.T) {
		svc := newTestService(&ledgerMock{})
		req := validCreateReq()
		req.CheckedOutBy = ""

		_, err := svc.RecordCheckout(context.Background(), req)
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeInvalidArgument, ae.Code)
	})

	t.Run("bad date rejected", func(t *testing.T) {
		svc := newTestService(&ledgerMock{})
		req := validCreateReq()
		req.ExpectedReturn = "15/03/2026"

		_, err := svc.RecordCheckout(context.Background(), req)
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeInvalidArgument, ae.Code)
	})

	t.Run("unknown condition_out rejected", func(t *testing.T) {
		svc := newTestService(&ledgerMock{})
		req := validCreateReq()
		bad := "Shiny"
		req.ConditionOut = &bad

		_, err := svc.RecordCheckout(context.Background(), req)
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeInvalidArgument, ae.Code)
	})

	t.Run("insufficient stock surfaces from store", func(t *testing.T) {
		mock := &ledgerMock{
			createFn: func(context.Context, *Checkout) error {
				return apierr.InsufficientStock("requested 3 but only 2 available")
			},
		}
		svc := newTestService(mock)

		_, err := svc.RecordCheckout(context.Background(), validCreateReq())
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeInsufficientStock, ae.Code)
		require.Contains(t, ae.Message, "only 2 available")
	})
}

func TestRecordReturn(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		var gotCondition string
		var gotNow time.Time
		mock := &ledgerMock{
			returnFn: func(_ context.Context, id uint64, conditionIn string, notes *string, now time.Time) error {
				require.EqualValues(t, 42, id)
				gotCondition = conditionIn
				gotNow = now
				require.NotNil(t, notes)
				require.Equal(t, "small tear in rainfly", *notes)
				return nil
			},
			getByIDFn: func(_ context.Context, id uint64) (*Checkout, error) {
				return &Checkout{
					ID:             id,
					Status:         StatusReturned,
					ExpectedReturn: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
					ActualReturn:   sql.NullTime{Time: testNow, Valid: true},
					ConditionIn:    sql.NullString{String: "Fair", Valid: true},
				}, nil
			},
		}
		svc := newTestService(mock)

		notes := "small tear in rainfly"
		resp, err := svc.RecordReturn(context.Background(), 42, ReturnRequest{ConditionIn: "Fair", ReturnNotes: &notes})
		require.NoError(t, err)
		require.Equal(t, "Fair", gotCondition)
		require.Equal(t, testNow, gotNow)
		// Returned is terminal even though the due date is in the past.
		require.Equal(t, DisplayReturned, resp.DisplayStatus)
		require.NotNil(t, resp.ConditionIn)
		require.Equal(t, "Fair", *resp.ConditionIn)
	})

	t.Run("unknown condition_in rejected before store", func(t *testing.T) {
		svc := newTestService(&ledgerMock{})

		_, err := svc.RecordReturn(context.Background(), 42, ReturnRequest{ConditionIn: "Okayish"})
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeInvalidArgument, ae.Code)
	})

	t.Run("double return surfaces INVALID_STATE", func(t *testing.T) {
		mock := &ledgerMock{
			returnFn: func(context.Context, uint64, string, *string, time.Time) error {
				return apierr.InvalidState("checkout already returned")
			},
		}
		svc := newTestService(mock)

		_, err := svc.RecordReturn(context.Background(), 42, ReturnRequest{ConditionIn: "Good"})
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeInvalidState, ae.Code)
	})
}

func TestGetByKey(t *testing.T) {
	out := &Checkout{
		ID:             42,
		CheckoutULID:   "01HTESTULID0000000000000000",
		Status:         StatusOut,
		ExpectedReturn: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	}

	t.Run("numeric id", func(t *testing.T) {
		mock := &ledgerMock{
			getByIDFn: func(_ context.Context, id uint64) (*Checkout, error) {
				require.EqualValues(t, 42, id)
				return out, nil
			},
		}
		svc := newTestService(mock)

		resp, err := svc.GetByKey(context.Background(), "42")
		require.NoError(t, err)
		require.Equal(t, DisplayOverdue, resp.DisplayStatus)
	})

	t.Run("ulid", func(t *testing.T) {
		mock := &ledgerMock{
			getULIDFn: func(_ context.Context, ulid string) (*Checkout, error) {
				require.Equal(t, out.CheckoutULID, ulid)
				return out, nil
			},
		}
		svc := newTestService(mock)

		resp, err := svc.GetByKey(context.Background(), out.CheckoutULID)
		require.NoError(t, err)
		require.EqualValues(t, 42, resp.ID)
	})

	t.Run("empty key", func(t *testing.T) {
		svc := newTestService(&ledgerMock{})
		_, err := svc.GetByKey(context.Background(), "")
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeInvalidArgument, ae.Code)
	})
}

func TestListCheckoutsDisplayStatus(t *testing.T) {
	mock := &ledgerMock{
		listFn: func(context.Context, Filter, Page) ([]Checkout, error) {
			return []Checkout{
				{ID: 1, Status: StatusOut, ExpectedReturn: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)},
				{ID: 2, Status: StatusOut, ExpectedReturn: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)},
				{ID: 3, Status: StatusOut, ExpectedReturn: time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC)},
				{ID: 4, Status: StatusReturned, ExpectedReturn: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	svc := newTestService(mock)

	list, err := svc.ListCheckouts(context.Background(), Filter{}, Page{Limit: 50})
	require.NoError(t, err)
	require.Len(t, list, 4)
	require.Equal(t, DisplayOverdue, list[0].DisplayStatus)
	require.Equal(t, DisplayDueSoon, list[1].DisplayStatus)
	require.Equal(t, DisplayActive, list[2].DisplayStatus)
	require.Equal(t, DisplayReturned, list[3].DisplayStatus)
}
