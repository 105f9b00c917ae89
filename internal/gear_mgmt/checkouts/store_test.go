package checkouts

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"basecamp-backend/internal/platform/apierr"
)

const (
	qLockEquipment = "SELECT quantity, `condition` FROM equipment WHERE id = ? FOR UPDATE"
	qSumOpen       = "SELECT COALESCE(SUM(quantity_out), 0) FROM checkouts WHERE equipment_id = ? AND status = ?"
	qLockCheckout  = "SELECT status, equipment_id FROM checkouts WHERE id = ? FOR UPDATE"
	qUpdateItem    = "UPDATE equipment SET `condition` = ? WHERE id = ?"
)

func newCheckout(qty uint) *Checkout {
	return &Checkout{
		CheckoutULID:   "01HTESTULID0000000000000000",
		EquipmentID:    7,
		CheckedOutBy:   "Jordan Reyes",
		QuantityOut:    qty,
		CheckoutDate:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		ExpectedReturn: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

// Walks the lifecycle of one item with quantity 5: a checkout of 3 passes the
// stock check, a second checkout of 3 is short by one, and the return flips
// the row and folds condition_in onto the item.
func TestStoreCheckoutLifecycle(t *testing.T) {
	t.Run("checkout within stock passes", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(qLockEquipment)).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"quantity", "condition"}).AddRow(5, "Good"))
		mock.ExpectQuery(regexp.QuoteMeta(qSumOpen)).
			WithArgs(int64(7), StatusOut).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(0))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO checkouts")).
			WillReturnResult(sqlmock.NewResult(42, 1))
		mock.ExpectCommit()

		m := newCheckout(3)
		require.NoError(t, NewStore(db).Create(context.Background(), m))
		require.EqualValues(t, 42, m.ID)
		require.Equal(t, StatusOut, m.Status)
		// Empty condition_out inherits the item's current condition.
		require.Equal(t, "Good", m.ConditionOut)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("checkout beyond remaining stock is rejected with the shortfall", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(qLockEquipment)).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"quantity", "condition"}).AddRow(5, "Good"))
		mock.ExpectQuery(regexp.QuoteMeta(qSumOpen)).
			WithArgs(int64(7), StatusOut).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(3))
		mock.ExpectRollback()

		err = NewStore(db).Create(context.Background(), newCheckout(3))
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeInsufficientStock, ae.Code)
		require.Equal(t, "requested 3 but only 2 available", ae.Message)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown equipment is not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(qLockEquipment)).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"quantity", "condition"}))
		mock.ExpectRollback()

		err = NewStore(db).Create(context.Background(), newCheckout(1))
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeNotFound, ae.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("return updates the row and the item condition", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(qLockCheckout)).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"status", "equipment_id"}).AddRow(StatusOut, 7))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE checkouts")).
			WithArgs(StatusReturned, now, "Fair", nil, int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(qUpdateItem)).
			WithArgs("Fair", int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, NewStore(db).Return(context.Background(), 42, "Fair", nil, now))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second return of the same row is rejected before any write", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(qLockCheckout)).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"status", "equipment_id"}).AddRow(StatusReturned, 7))
		mock.ExpectRollback()

		err = NewStore(db).Return(context.Background(), 42, "Good", nil, time.Now())
		var ae *apierr.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, apierr.CodeInvalidState, ae.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
