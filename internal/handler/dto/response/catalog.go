package response

import (
	"festserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type StallResponse struct {
	StallID      uuid.UUID `json:"stall_id"`
	LocationName string    `json:"location_name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Date         string    `json:"date"`
}

type ProductResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}

func FromStallView(v *queries.StallView) *StallResponse {
	return &StallResponse{
		StallID:      v.ID,
		LocationName: v.LocationName,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		Date:         v.Date.Format("2006-01-02"),
	}
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ProductID:   v.ID,
		Name:        v.Name,
		Description: v.Description,
	}
}
