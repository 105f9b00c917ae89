package skus

import "time"

type CreateSKURequest struct {
	Name      string `json:"name" binding:"required"`
	SkuNumber string `json:"sku_number" binding:"required"`
}

type SKUResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	SkuNumber string    `json:"sku_number"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *SKU) toDTO() SKUResponse {
	return SKUResponse{
		ID:        m.ID,
		Name:      m.Name,
		SkuNumber: m.SkuNumber,
		CreatedAt: m.CreatedAt,
	}
}
