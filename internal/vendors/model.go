package vendors

import (
	"database/sql"
	"time"
)

// Vendor is a directory entry: outfitters, bus companies, campgrounds and the
// like that the club books trips with.
type Vendor struct {
	ID          uint64
	Name        string
	Category    sql.NullString
	ContactName sql.NullString
	Phone       sql.NullString
	Email       sql.NullString
	Website     sql.NullString
	Rating      sql.NullFloat64
	Preferred   bool
	Notes       sql.NullString
	TimesUsed   uint
	LastUsedAt  sql.NullTime
	CreatedAt   time.Time
}

type Filter struct {
	Category  *string
	Preferred *bool
}

// Performance is the usage summary shown on the vendor detail page.
type Performance struct {
	VendorID   uint64     `json:"vendor_id"`
	TimesUsed  uint       `json:"times_used"`
	Rating     *float64   `json:"rating,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}
