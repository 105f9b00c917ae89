package equipment

import "time"

// ===== Requests =====

type CreateItemRequest struct {
	ItemName           string   `json:"item_name" binding:"required"`
	ItemNumber         string   `json:"item_number" binding:"required"`
	Category           string   `json:"category" binding:"required"`
	Description        *string  `json:"description,omitempty"`
	Quantity           uint     `json:"quantity"`
	Condition          string   `json:"condition" binding:"required"`
	PurchasePrice      *float64 `json:"purchase_price,omitempty"`
	PurchaseDate       *string  `json:"purchase_date,omitempty"` // YYYY-MM-DD
	Location           *string  `json:"location,omitempty"`
	RequiresInspection bool     `json:"requires_inspection"`
	Notes              *string  `json:"notes,omitempty"`
}

// UpdateItemRequest is a partial update; nil fields are left unchanged.
type UpdateItemRequest struct {
	ItemName           *string  `json:"item_name,omitempty"`
	Category           *string  `json:"category,omitempty"`
	Description        *string  `json:"description,omitempty"`
	Quantity           *uint    `json:"quantity,omitempty"`
	Condition          *string  `json:"condition,omitempty"`
	PurchasePrice      *float64 `json:"purchase_price,omitempty"`
	Location           *string  `json:"location,omitempty"`
	RequiresInspection *bool    `json:"requires_inspection,omitempty"`
	LastInspection     *string  `json:"last_inspection,omitempty"` // YYYY-MM-DD
	Notes              *string  `json:"notes,omitempty"`
}

type CreateInspectionRequest struct {
	InspectedBy string  `json:"inspected_by" binding:"required"`
	Condition   string  `json:"condition" binding:"required"`
	Notes       *string `json:"notes,omitempty"`
}

// ===== Responses =====

type ItemResponse struct {
	ID                 uint64     `json:"id"`
	ItemName           string     `json:"item_name"`
	ItemNumber         string     `json:"item_number"`
	Category           string     `json:"category"`
	Description        *string    `json:"description,omitempty"`
	Quantity           uint       `json:"quantity"`
	QuantityAvailable  int        `json:"quantity_available"`
	Condition          string     `json:"condition"`
	PurchasePrice      *float64   `json:"purchase_price,omitempty"`
	PurchaseDate       *time.Time `json:"purchase_date,omitempty"`
	Location           *string    `json:"location,omitempty"`
	RequiresInspection bool       `json:"requires_inspection"`
	LastInspection     *time.Time `json:"last_inspection,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type InspectionResponse struct {
	ID             uint64    `json:"id"`
	InspectionULID string    `json:"inspection_ulid"`
	EquipmentID    uint64    `json:"equipment_id"`
	InspectedBy    string    `json:"inspected_by"`
	Condition      string    `json:"condition"`
	Notes          *string   `json:"notes,omitempty"`
	InspectedAt    time.Time `json:"inspected_at"`
}

func (m *Item) toDTO() ItemResponse {
	r := ItemResponse{
		ID:                 m.ID,
		ItemName:           m.ItemName,
		ItemNumber:         m.ItemNumber,
		Category:           m.Category,
		Quantity:           m.Quantity,
		QuantityAvailable:  m.Available,
		Condition:          m.Condition,
		RequiresInspection: m.RequiresInspection,
		CreatedAt:          m.CreatedAt,
	}
	if m.Description.Valid {
		v := m.Description.String
		r.Description = &v
	}
	if m.PurchasePrice.Valid {
		v := m.PurchasePrice.Float64
		r.PurchasePrice = &v
	}
	if m.PurchaseDate.Valid {
		v := m.PurchaseDate.Time
		r.PurchaseDate = &v
	}
	if m.Location.Valid {
		v := m.Location.String
		r.Location = &v
	}
	if m.LastInspection.Valid {
		v := m.LastInspection.Time
		r.LastInspection = &v
	}
	if m.Notes.Valid {
		v := m.Notes.String
		r.Notes = &v
	}
	return r
}

func (m *Inspection) toDTO() InspectionResponse {
	r := InspectionResponse{
		ID:             m.ID,
		InspectionULID: m.InspectionULID,
		EquipmentID:    m.EquipmentID,
		InspectedBy:    m.InspectedBy,
		Condition:      m.Condition,
		InspectedAt:    m.InspectedAt,
	}
	if m.Notes.Valid {
		v := m.Notes.String
		r.Notes = &v
	}
	return r
}
