package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type SnapshotView struct {
	ID             uuid.UUID `json:"snapshot_id"`
	CampaignID     uuid.UUID `json:"campaign_id"`
	SnapshotTime   time.Time `json:"snapshot_time"`
	TotalScans     int32     `json:"total_scans"`
	RemainingUnits int32     `json:"remaining_units"`
}

type SnapshotReadStore interface {
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*SnapshotView, error)
}

type SnapshotQueries interface {
	ListForCampaign(ctx context.Context, advertiserID uuid.UUID, campaignID uuid.UUID) ([]*SnapshotView, error)
}

type snapshotQueriesImpl struct {
	readStore SnapshotReadStore
	campaigns CampaignQueries
}

func NewSnapshotQueries(readStore SnapshotReadStore, campaigns CampaignQueries) SnapshotQueries {
	return &snapshotQueriesImpl{readStore: readStore, campaigns: campaigns}
}

func (q *snapshotQueriesImpl) ListForCampaign(ctx context.Context, advertiserID uuid.UUID, campaignID uuid.UUID) ([]*SnapshotView, error) {
	if _, err := q.campaigns.GetOwned(ctx, advertiserID, campaignID); err != nil {
		return nil, err
	}
	return q.readStore.ListByCampaign(ctx, campaignID)
}
