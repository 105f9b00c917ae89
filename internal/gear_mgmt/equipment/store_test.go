package equipment

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func itemRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "item_name", "item_number", "category", "description", "quantity",
		"condition", "purchase_price", "purchase_date", "location",
		"requires_inspection", "last_inspection", "notes", "created_at",
		"quantity_available",
	})
}

// The availability column comes out of the same statement as the row: the
// listing query subtracts the open-checkout sum from quantity.
func TestStoreDerivedAvailability(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("get scans quantity and availability separately", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`LEFT JOIN .+ WHERE e\.id = \?`).
			WithArgs(int64(7)).
			WillReturnRows(itemRows().AddRow(
				7, "MSR Elixir 3 Tent", "TENT-003", "Shelter", nil, 5,
				"Good", nil, nil, nil, false, nil, nil, now, 2,
			))

		m, err := NewStore(db).GetByID(context.Background(), 7)
		require.NoError(t, err)
		require.EqualValues(t, 5, m.Quantity)
		require.Equal(t, 2, m.Available)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("available filter constrains the derived column", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`e\.quantity - COALESCE\(o\.out_qty, 0\) > 0`).
			WillReturnRows(itemRows().AddRow(
				7, "MSR Elixir 3 Tent", "TENT-003", "Shelter", nil, 5,
				"Good", nil, nil, nil, false, nil, nil, now, 2,
			))

		items, err := NewStore(db).List(context.Background(), Filter{OnlyAvailable: true}, Page{Limit: 50})
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, 2, items[0].Available)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
