package response

import (
	"time"

	"festserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type SnapshotResponse struct {
	SnapshotID     uuid.UUID `json:"snapshot_id"`
	CampaignID     uuid.UUID `json:"campaign_id"`
	SnapshotTime   time.Time `json:"snapshot_time"`
	TotalScans     int32     `json:"total_scans"`
	RemainingUnits int32     `json:"remaining_units"`
}

func FromSnapshotView(v *queries.SnapshotView) *SnapshotResponse {
	return &SnapshotResponse{
		SnapshotID:     v.ID,
		CampaignID:     v.CampaignID,
		SnapshotTime:   v.SnapshotTime,
		TotalScans:     v.TotalScans,
		RemainingUnits: v.RemainingUnits,
	}
}

func FromSnapshotViews(views []*queries.SnapshotView) []*SnapshotResponse {
	out := make([]*SnapshotResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromSnapshotView(v))
	}
	return out
}
