package vendors

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

type storeMock struct {
	listFn        func(ctx context.Context, f Filter) ([]Vendor, error)
	getByIDFn     func(ctx context.Context, id uint64) (*Vendor, error)
	insertFn      func(ctx context.Context, m *Vendor) error
	updateFn      func(ctx context.Context, id uint64, in UpdateVendorRequest) (*Vendor, error)
	deleteFn      func(ctx context.Context, id uint64) error
	recordUsageFn func(ctx context.Context, id uint64, now time.Time) (*Vendor, error)
}

func (m *storeMock) List(ctx context.Context, f Filter) ([]Vendor, error) { return m.listFn(ctx, f) }
func (m *storeMock) GetByID(ctx context.Context, id uint64) (*Vendor, error) {
	return m.getByIDFn(ctx, id)
}
func (m *storeMock) Insert(ctx context.Context, v *Vendor) error { return m.insertFn(ctx, v) }
func (m *storeMock) Update(ctx context.Context, id uint64, in UpdateVendorRequest) (*Vendor, error) {
	return m.updateFn(ctx, id, in)
}
func (m *storeMock) Delete(ctx context.Context, id uint64) error { return m.deleteFn(ctx, id) }
func (m *storeMock) RecordUsage(ctx context.Context, id uint64, now time.Time) (*Vendor, error) {
	return m.recordUsageFn(ctx, id, now)
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(store VendorStore) *Service {
	return &Service{store: store, clock: fixedClock{t: testNow}}
}

func TestCreateVendor(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		var inserted *Vendor
		mock := &storeMock{
			insertFn: func(_ context.Context, m *Vendor) error {
				m.ID = 4
				inserted = m
				return nil
			},
			getByIDFn: func(_ context.Context, id uint64) (*Vendor, error) {
				cp := *inserted
				return &cp, nil
			},
		}
		svc := newTestService(mock)

		rating := 4.5
		cat := "Outfitter"
		resp, err := svc.Create(context.Background(), CreateVendorRequest{
			Name:      "  River Rats Rafting  ",
			Category:  &cat,
			Rating:    &rating,
			Preferred: true,
		})
		require.NoError(t, err)
		require.Equal(t, "River Rats Rafting", resp.Name)
		require.True(t, resp.Preferred)
		require.NotNil(t, resp.Rating)
		require.Equal(t, 4.5, *resp.Rating)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		svc := newTestService(&storeMock{})
		_, err := svc.Create(context.Background(), CreateVendorRequest{Name: "  "})
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeInvalidArgument, ae.Code)
	})

	t.Run("rating out of range rejected", func(t *testing.T) {
		svc := newTestService(&storeMock{})
		bad := 5.5
		_, err := svc.Create(context.Background(), CreateVendorRequest{Name: "X", Rating: &bad})
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeInvalidArgument, ae.Code)
	})
}

func TestUpdateVendorRatingValidated(t *testing.T) {
	svc := newTestService(&storeMock{})
	bad := -1.0
	_, err := svc.Update(context.Background(), 4, UpdateVendorRequest{Rating: &bad})
	var ae *apierr.APIError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, apierr.CodeInvalidArgument, ae.Code)
}

func TestRecordUsageStampsClock(t *testing.T) {
	mock := &storeMock{
		recordUsageFn: func(_ context.Context, id uint64, now time.Time) (*Vendor, error) {
			require.EqualValues(t, 4, id)
			require.Equal(t, testNow, now)
			return &Vendor{
				ID:         4,
				Name:       "River Rats Rafting",
				TimesUsed:  3,
				LastUsedAt: sql.NullTime{Time: now, Valid: true},
			}, nil
		},
	}
	svc := newTestService(mock)

	resp, err := svc.RecordUsage(context.Background(), 4)
	require.NoError(t, err)
	require.EqualValues(t, 3, resp.TimesUsed)
	require.NotNil(t, resp.LastUsedAt)
	require.Equal(t, testNow, *resp.LastUsedAt)
}

func TestPerformance(t *testing.T) {
	mock := &storeMock{
		getByIDFn: func(_ context.Context, id uint64) (*Vendor, error) {
			return &Vendor{
				ID:         4,
				Name:       "River Rats Rafting",
				TimesUsed:  3,
				Rating:     sql.NullFloat64{Float64: 4.5, Valid: true},
				LastUsedAt: sql.NullTime{Time: testNow, Valid: true},
			}, nil
		},
	}
	svc := newTestService(mock)

	p, err := svc.Performance(context.Background(), 4)
	require.NoError(t, err)
	require.EqualValues(t, 4, p.VendorID)
	require.EqualValues(t, 3, p.TimesUsed)
	require.NotNil(t, p.Rating)
	require.Equal(t, 4.5, *p.Rating)
}

func TestPerformanceNotFound(t *testing.T) {
	mock := &storeMock{
		getByIDFn: func(context.Context, uint64) (*Vendor, error) {
			return nil, apierr.NotFound("vendor not found")
		},
	}
	svc := newTestService(mock)

	_, err := svc.Performance(context.Background(), 99)
	var ae *apierr.APIError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, apierr.CodeNotFound, ae.Code)
}
