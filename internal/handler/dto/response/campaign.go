package response

import (
	"time"

	"festserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type CampaignResponse struct {
	CampaignID     uuid.UUID `json:"campaign_id"`
	AdvertiserID   uuid.UUID `json:"advertiser_id"`
	StallID        uuid.UUID `json:"stall_id"`
	ProductID      uuid.UUID `json:"product_id"`
	UnitsAllocated int32     `json:"units_allocated"`
	StartDatetime  time.Time `json:"start_datetime"`
	EndDatetime    time.Time `json:"end_datetime"`
	Status         string    `json:"status"`
}

func FromCampaignView(v *queries.CampaignView) *CampaignResponse {
	return &CampaignResponse{
		CampaignID:     v.ID,
		AdvertiserID:   v.AdvertiserID,
		StallID:        v.StallID,
		ProductID:      v.ProductID,
		UnitsAllocated: v.UnitsAllocated,
		StartDatetime:  v.StartDatetime,
		EndDatetime:    v.EndDatetime,
		Status:         v.Status,
	}
}

func FromCampaignViews(views []*queries.CampaignView) []*CampaignResponse {
	out := make([]*CampaignResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCampaignView(v))
	}
	return out
}
