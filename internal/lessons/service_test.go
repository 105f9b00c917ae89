package lessons

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"basecamp-backend/internal/platform/apierr"
)

type storeMock struct {
	listFn    func(ctx context.Context, f Filter) ([]Lesson, error)
	searchFn  func(ctx context.Context, query string) ([]Lesson, error)
	getByIDFn func(ctx context.Context, id uint64) (*Lesson, error)
	insertFn  func(ctx context.Context, m *Lesson) error
	updateFn  func(ctx context.Context, id uint64, in UpdateLessonRequest) (*Lesson, error)
	deleteFn  func(ctx context.Context, id uint64) error
	upvoteFn  func(ctx context.Context, id uint64) (*Lesson, error)
}

func (m *storeMock) List(ctx context.Context, f Filter) ([]Lesson, error) { return m.listFn(ctx, f) }
func (m *storeMock) Search(ctx context.Context, query string) ([]Lesson, error) {
	return m.searchFn(ctx, query)
}
func (m *storeMock) GetByID(ctx context.Context, id uint64) (*Lesson, error) {
	return m.getByIDFn(ctx, id)
}
func (m *storeMock) Insert(ctx context.Context, l *Lesson) error { return m.insertFn(ctx, l) }
func (m *storeMock) Update(ctx context.Context, id uint64, in UpdateLessonRequest) (*Lesson, error) {
	return m.updateFn(ctx, id, in)
}
func (m *storeMock) Delete(ctx context.Context, id uint64) error { return m.deleteFn(ctx, id) }
func (m *storeMock) Upvote(ctx context.Context, id uint64) (*Lesson, error) {
	return m.upvoteFn(ctx, id)
}

func TestCreateLesson(t *testing.T) {
	t.Run("happy path with trip link", func(t *testing.T) {
		var inserted *Lesson
		mock := &storeMock{
			insertFn: func(_ context.Context, m *Lesson) error {
				m.ID = 11
				inserted = m
				return nil
			},
			getByIDFn: func(_ context.Context, id uint64) (*Lesson, error) {
				cp := *inserted
				return &cp, nil
			},
		}
		svc := &Service{store: mock}

		tripID := uint64(9)
		resp, err := svc.Create(context.Background(), CreateLessonRequest{
			TripID:      &tripID,
			Title:       "  Bring extra tent stakes  ",
			Description: "Two stakes snapped in rocky ground; carry spares.",
		})
		require.NoError(t, err)
		require.Equal(t, "Bring extra tent stakes", resp.Title)
		require.NotNil(t, resp.TripID)
		require.EqualValues(t, 9, *resp.TripID)
		require.True(t, inserted.TripID.Valid)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		svc := &Service{store: &storeMock{}}
		_, err := svc.Create(context.Background(), CreateLessonRequest{Title: " ", Description: "x"})
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeInvalidArgument, ae.Code)
	})

	t.Run("dangling trip id surfaces from store", func(t *testing.T) {
		mock := &storeMock{
			insertFn: func(context.Context, *Lesson) error {
				return apierr.Invalid("trip_id does not reference an existing trip")
			},
		}
		svc := &Service{store: mock}
		tripID := uint64(999)
		_, err := svc.Create(context.Background(), CreateLessonRequest{
			TripID: &tripID, Title: "T", Description: "D",
		})
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeInvalidArgument, ae.Code)
	})
}

func TestSearchRequiresQuery(t *testing.T) {
	svc := &Service{store: &storeMock{}}
	_, err := svc.Search(context.Background(), "   ")
	var ae *apierr.APIError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, apierr.CodeInvalidArgument, ae.Code)
}

func TestSearchTrimsQuery(t *testing.T) {
	mock := &storeMock{
		searchFn: func(_ context.Context, query string) ([]Lesson, error) {
			require.Equal(t, "stove", query)
			return []Lesson{{ID: 1, Title: "Test stoves before trips", Description: "..."}}, nil
		},
	}
	svc := &Service{store: mock}

	list, err := svc.Search(context.Background(), "  stove  ")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestUpvote(t *testing.T) {
	mock := &storeMock{
		upvoteFn: func(_ context.Context, id uint64) (*Lesson, error) {
			require.EqualValues(t, 11, id)
			return &Lesson{
				ID:      11,
				Title:   "Bring extra tent stakes",
				Upvotes: 6,
				TripID:  sql.NullInt64{Int64: 9, Valid: true},
			}, nil
		},
	}
	svc := &Service{store: mock}

	resp, err := svc.Upvote(context.Background(), 11)
	require.NoError(t, err)
	require.EqualValues(t, 6, resp.Upvotes)
}

func TestUpvoteNotFound(t *testing.T) {
	mock := &storeMock{
		upvoteFn: func(context.Context, uint64) (*Lesson, error) {
			return nil, apierr.NotFound("lesson not found")
		},
	}
	svc := &Service{store: mock}

	_, err := svc.Upvote(context.Background(), 99)
	var ae *apierr.APIError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, apierr.CodeNotFound, ae.Code)
}
