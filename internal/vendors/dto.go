package vendors

import "time"

type CreateVendorRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    *string  `json:"category,omitempty"`
	ContactName *string  `json:"contact_name,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Website     *string  `json:"website,omitempty"`
	Rating      *float64 `json:"rating,omitempty"` // 0-5
	Preferred   bool     `json:"preferred"`
	Notes       *string  `json:"notes,omitempty"`
}

type UpdateVendorRequest struct {
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	ContactName *string  `json:"contact_name,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Website     *string  `json:"website,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Preferred   *bool    `json:"preferred,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

type VendorResponse struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Category    *string    `json:"category,omitempty"`
	ContactName *string    `json:"contact_name,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Website     *string    `json:"website,omitempty"`
	Rating      *float64   `json:"rating,omitempty"`
	Preferred   bool       `json:"preferred"`
	Notes       *string    `json:"notes,omitempty"`
	TimesUsed   uint       `json:"times_used"`
	LastUsedAt  *time.Time `json:"last_used_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (m *Vendor) toDTO() VendorResponse {
	r := VendorResponse{
		ID:        m.ID,
		Name:      m.Name,
		Preferred: m.Preferred,
		TimesUsed: m.TimesUsed,
		CreatedAt: m.CreatedAt,
	}
	if m.Category.Valid {
		v := m.Category.String
		r.Category = &v
	}
	if m.ContactName.Valid {
		v := m.ContactName.String
		r.ContactName = &v
	}
	if m.Phone.Valid {
		v := m.Phone.String
		r.Phone = &v
	}
	if m.Email.Valid {
		v := m.Email.String
		r.Email = &v
	}
	if m.Website.Valid {
		v := m.Website.String
		r.Website = &v
	}
	if m.Rating.Valid {
		v := m.Rating.Float64
		r.Rating = &v
	}
	if m.Notes.Valid {
		v := m.Notes.String
		r.Notes = &v
	}
	if m.LastUsedAt.Valid {
		v := m.LastUsedAt.Time
		r.LastUsedAt = &v
	}
	return r
}
