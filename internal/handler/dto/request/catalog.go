package request

import "time"

type CreateStallRequest struct {
	LocationName string  `json:"location_name" binding:"required"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Date         string  `json:"date" binding:"required,datetime=2006-01-02"`
}

func (r *CreateStallRequest) ParsedDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}
