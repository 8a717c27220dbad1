package request

import "github.com/google/uuid"

type CreateScanEventRequest struct {
	CampaignID        uuid.UUID `json:"campaign_id" binding:"required"`
	DeviceFingerprint *string   `json:"device_fingerprint,omitempty"`
}
