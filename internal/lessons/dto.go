package lessons

import "time"

type CreateLessonRequest struct {
	TripID      *uint64 `json:"trip_id,omitempty"`
	Title       string  `json:"title" binding:"required"`
	Category    *string `json:"category,omitempty"`
	Description string  `json:"description" binding:"required"`
	CreatedBy   *string `json:"created_by,omitempty"`
}

type UpdateLessonRequest struct {
	Title       *string `json:"title,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
}

type LessonResponse struct {
	ID          uint64    `json:"id"`
	TripID      *uint64   `json:"trip_id,omitempty"`
	Title       string    `json:"title"`
	Category    *string   `json:"category,omitempty"`
	Description string    `json:"description"`
	Upvotes     uint      `json:"upvotes"`
	CreatedBy   *string   `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (m *Lesson) toDTO() LessonResponse {
	r := LessonResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Upvotes:     m.Upvotes,
		CreatedAt:   m.CreatedAt,
	}
	if m.TripID.Valid {
		v := uint64(m.TripID.Int64)
		r.TripID = &v
	}
	if m.Category.Valid {
		v := m.Category.String
		r.Category = &v
	}
	if m.CreatedBy.Valid {
		v := m.CreatedBy.String
		r.CreatedBy = &v
	}
	return r
}
