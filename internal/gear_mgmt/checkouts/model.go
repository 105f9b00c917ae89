package checkouts

import (
	"database/sql"
	"time"
)

// Stored lifecycle states. OUT -> RETURNED is the only transition.
const (
	StatusOut      = "OUT"
	StatusReturned = "RETURNED"
)

// Checkout is one ledger row, optionally joined with the item it references.
// Rows are append-only once RETURNED; corrections are new rows.
type Checkout struct {
	ID             uint64
	CheckoutULID   string
	EquipmentID    uint64
	CheckedOutBy   string
	ApprovedBy     sql.NullString // adult co-signer for youth checkouts
	EventName      sql.NullString
	QuantityOut    uint
	ConditionOut   string
	CheckoutDate   time.Time
	ExpectedReturn time.Time
	Status         string
	ActualReturn   sql.NullTime
	ConditionIn    sql.NullString
	ReturnNotes    sql.NullString

	// joined from equipment for display
	ItemName   string
	ItemNumber string
}

type Filter struct {
	Status       *string // OUT or RETURNED; nil means all
	CheckedOutBy *string
	EventName    *string
}

type Page struct {
	Limit  int
	Offset int
}
