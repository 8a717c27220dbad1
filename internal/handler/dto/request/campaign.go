package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateCampaignRequest struct {
	StallID        uuid.UUID `json:"stall_id" binding:"required"`
	ProductID      uuid.UUID `json:"product_id" binding:"required"`
	UnitsAllocated int32     `json:"units_allocated" binding:"required"`
	StartDatetime  time.Time `json:"start_datetime" binding:"required"`
	EndDatetime    time.Time `json:"end_datetime" binding:"required"`
}

// UpdateCampaignRequest applies patch semantics: absent fields leave the
// stored value untouched.
type UpdateCampaignRequest struct {
	UnitsAllocated *int32     `json:"units_allocated,omitempty"`
	StartDatetime  *time.Time `json:"start_datetime,omitempty"`
	EndDatetime    *time.Time `json:"end_datetime,omitempty"`
	Status         *string    `json:"status,omitempty" binding:"omitempty,oneof=scheduled active completed"`
}
