package trips

import "time"

type CreateTripRequest struct {
	TripName        string   `json:"trip_name" binding:"required"`
	Destination     string   `json:"destination" binding:"required"`
	StateCountry    *string  `json:"state_country,omitempty"`
	StartDate       string   `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate         string   `json:"end_date" binding:"required"`   // YYYY-MM-DD
	NumParticipants uint     `json:"num_participants"`
	Difficulty      *string  `json:"difficulty,omitempty"`
	Status          *string  `json:"status,omitempty"` // defaults to Planned
	Description     *string  `json:"description,omitempty"`
	BudgetTotal     *float64 `json:"budget_total,omitempty"`
}

type UpdateTripRequest struct {
	TripName        *string  `json:"trip_name,omitempty"`
	Destination     *string  `json:"destination,omitempty"`
	StateCountry    *string  `json:"state_country,omitempty"`
	StartDate       *string  `json:"start_date,omitempty"`
	EndDate         *string  `json:"end_date,omitempty"`
	NumParticipants *uint    `json:"num_participants,omitempty"`
	Difficulty      *string  `json:"difficulty,omitempty"`
	Status          *string  `json:"status,omitempty"`
	Description     *string  `json:"description,omitempty"`
	BudgetTotal     *float64 `json:"budget_total,omitempty"`
}

type TripResponse struct {
	ID              uint64    `json:"id"`
	TripName        string    `json:"trip_name"`
	Destination     string    `json:"destination"`
	StateCountry    *string   `json:"state_country,omitempty"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	NumParticipants uint      `json:"num_participants"`
	Difficulty      *string   `json:"difficulty,omitempty"`
	Status          string    `json:"status"`
	Description     *string   `json:"description,omitempty"`
	BudgetTotal     *float64  `json:"budget_total,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func (m *Trip) toDTO() TripResponse {
	r := TripResponse{
		ID:              m.ID,
		TripName:        m.TripName,
		Destination:     m.Destination,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		NumParticipants: m.NumParticipants,
		Status:          m.Status,
		CreatedAt:       m.CreatedAt,
	}
	if m.StateCountry.Valid {
		v := m.StateCountry.String
		r.StateCountry = &v
	}
	if m.Difficulty.Valid {
		v := m.Difficulty.String
		r.Difficulty = &v
	}
	if m.Description.Valid {
		v := m.Description.String
		r.Description = &v
	}
	if m.BudgetTotal.Valid {
		v := m.BudgetTotal.Float64
		r.BudgetTotal = &v
	}
	return r
}
