package equipment

import (
	"database/sql"
	"time"
)

// Item condition ratings, best to worst, plus the two terminal-ish states.
const (
	ConditionExcellent   = "Excellent"
	ConditionGood        = "Good"
	ConditionFair        = "Fair"
	ConditionPoor        = "Poor"
	ConditionNeedsRepair = "Needs Repair"
	ConditionDamaged     = "Damaged"
	ConditionRetired     = "Retired"
)

func ValidCondition(c string) bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor,
		ConditionNeedsRepair, ConditionDamaged, ConditionRetired:
		return true
	}
	return false
}

// Item is one row of the equipment table. Available is derived at query
// time (quantity minus open checkouts), never stored.
type Item struct {
	ID                 uint64
	ItemName           string
	ItemNumber         string
	Category           string
	Description        sql.NullString
	Quantity           uint
	Condition          string
	PurchasePrice      sql.NullFloat64
	PurchaseDate       sql.NullTime
	Location           sql.NullString
	RequiresInspection bool
	LastInspection     sql.NullTime
	Notes              sql.NullString
	CreatedAt          time.Time
	Available          int
}

// Inspection is one row of the equipment_inspections log.
type Inspection struct {
	ID             uint64
	InspectionULID string
	EquipmentID    uint64
	InspectedBy    string
	Condition      string
	Notes          sql.NullString
	InspectedAt    time.Time
}

// Filter narrows equipment listings.
type Filter struct {
	Category      *string
	Condition     *string
	OnlyAvailable bool
}

type Page struct {
	Limit  int
	Offset int
}
