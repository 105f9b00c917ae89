package checkouts

import "time"

// ===== Requests =====

type CreateCheckoutRequest struct {
	EquipmentID    uint64  `json:"equipment_id" binding:"required"`
	CheckedOutBy   string  `json:"checked_out_by" binding:"required"`
	ApprovedBy     *string `json:"approved_by,omitempty"`
	EventName      *string `json:"event_name,omitempty"`
	Quantity       uint    `json:"quantity" binding:"required"`
	ExpectedReturn string  `json:"expected_return_date" binding:"required"` // YYYY-MM-DD
	ConditionOut   *string `json:"condition_out,omitempty"`                 // defaults to the item's current condition
}

type ReturnRequest struct {
	ConditionIn string  `json:"condition_in" binding:"required"`
	ReturnNotes *string `json:"return_notes,omitempty"`
}

// ===== Responses =====

type CheckoutResponse struct {
	ID             uint64     `json:"id"`
	CheckoutULID   string     `json:"checkout_ulid"`
	EquipmentID    uint64     `json:"equipment_id"`
	ItemName       string     `json:"item_name"`
	ItemNumber     string     `json:"item_number"`
	CheckedOutBy   string     `json:"checked_out_by"`
	ApprovedBy     *string    `json:"approved_by,omitempty"`
	EventName      *string    `json:"event_name,omitempty"`
	QuantityOut    uint       `json:"quantity_out"`
	ConditionOut   string     `json:"condition_out"`
	CheckoutDate   time.Time  `json:"checkout_date"`
	ExpectedReturn time.Time  `json:"expected_return_date"`
	Status         string     `json:"status"`
	DisplayStatus  string     `json:"display_status"`
	ActualReturn   *time.Time `json:"actual_return_date,omitempty"`
	ConditionIn    *string    `json:"condition_in,omitempty"`
	ReturnNotes    *string    `json:"return_notes,omitempty"`
}

func (m *Checkout) toDTO(now time.Time) CheckoutResponse {
	r := CheckoutResponse{
		ID:             m.ID,
		CheckoutULID:   m.CheckoutULID,
		EquipmentID:    m.EquipmentID,
		ItemName:       m.ItemName,
		ItemNumber:     m.ItemNumber,
		CheckedOutBy:   m.CheckedOutBy,
		QuantityOut:    m.QuantityOut,
		ConditionOut:   m.ConditionOut,
		CheckoutDate:   m.CheckoutDate,
		ExpectedReturn: m.ExpectedReturn,
		Status:         m.Status,
		DisplayStatus:  DisplayStatus(m.Status, m.ExpectedReturn, now),
	}
	if m.ApprovedBy.Valid {
		v := m.ApprovedBy.String
		r.ApprovedBy = &v
	}
	if m.EventName.Valid {
		v := m.EventName.String
		r.EventName = &v
	}
	if m.ActualReturn.Valid {
		v := m.ActualReturn.Time
		r.ActualReturn = &v
	}
	if m.ConditionIn.Valid {
		v := m.ConditionIn.String
		r.ConditionIn = &v
	}
	if m.ReturnNotes.Valid {
		v := m.ReturnNotes.String
		r.ReturnNotes = &v
	}
	return r
}
