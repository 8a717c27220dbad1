package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ScanEventView struct {
	ID                uuid.UUID `json:"scan_event_id"`
	CampaignID        uuid.UUID `json:"campaign_id"`
	ScannerUserID     uuid.UUID `json:"scanner_user_id"`
	ScannedAt         time.Time `json:"scanned_at"`
	DeviceFingerprint *string   `json:"device_fingerprint,omitempty"`
}

type ScanCountView struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	TotalScans int64     `json:"total_scans"`
}

type ScanReadStore interface {
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*ScanEventView, error)
	ListByScanner(ctx context.Context, scannerUserID uuid.UUID) ([]*ScanEventView, error)
	CountByCampaign(ctx context.Context, campaignID uuid.UUID) (int64, error)
}

type ScanQueries interface {
	ListForCampaign(ctx context.Context, advertiserID uuid.UUID, campaignID uuid.UUID) ([]*ScanEventView, error)
	CountForCampaign(ctx context.Context, advertiserID uuid.UUID, campaignID uuid.UUID) (*ScanCountView, error)
	ListOwn(ctx context.Context, scannerUserID uuid.UUID) ([]*ScanEventView, error)
}

type scanQueriesImpl struct {
	readStore ScanReadStore
	campaigns CampaignQueries
}

func NewScanQueries(readStore ScanReadStore, campaigns CampaignQueries) ScanQueries {
	return &scanQueriesImpl{readStore: readStore, campaigns: campaigns}
}

func (q *scanQueriesImpl) ListForCampaign(ctx context.Context, advertiserID uuid.UUID, campaignID uuid.UUID) ([]*ScanEventView, error) {
	if _, err := q.campaigns.GetOwned(ctx, advertiserID, campaignID); err != nil {
		return nil, err
	}
	return q.readStore.ListByCampaign(ctx, campaignID)
}

func (q *scanQueriesImpl) CountForCampaign(ctx context.Context, advertiserID uuid.UUID, campaignID uuid.UUID) (*ScanCountView, error) {
	if _, err := q.campaigns.GetOwned(ctx, advertiserID, campaignID); err != nil {
		return nil, err
	}
	total, err := q.readStore.CountByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return &ScanCountView{CampaignID: campaignID, TotalScans: total}, nil
}

func (q *scanQueriesImpl) ListOwn(ctx context.Context, scannerUserID uuid.UUID) ([]*ScanEventView, error) {
	return q.readStore.ListByScanner(ctx, scannerUserID)
}
