package response

import (
	"time"

	"festserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScanEventResponse struct {
	ScanEventID       uuid.UUID `json:"scan_event_id"`
	CampaignID        uuid.UUID `json:"campaign_id"`
	ScannerUserID     uuid.UUID `json:"scanner_user_id"`
	ScannedAt         time.Time `json:"scanned_at"`
	DeviceFingerprint *string   `json:"device_fingerprint,omitempty"`
}

type ScanCountResponse struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	TotalScans int64     `json:"total_scans"`
}

func FromScanEventView(v *queries.ScanEventView) *ScanEventResponse {
	return &ScanEventResponse{
		ScanEventID:       v.ID,
		CampaignID:        v.CampaignID,
		ScannerUserID:     v.ScannerUserID,
		ScannedAt:         v.ScannedAt,
		DeviceFingerprint: v.DeviceFingerprint,
	}
}

func FromScanEventViews(views []*queries.ScanEventView) []*ScanEventResponse {
	out := make([]*ScanEventResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromScanEventView(v))
	}
	return out
}

func FromScanCountView(v *queries.ScanCountView) *ScanCountResponse {
	return &ScanCountResponse{CampaignID: v.CampaignID, TotalScans: v.TotalScans}
}
