package queries

import (
	"context"
	"time"

	"festserve/internal/infra"
	"festserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCampaignNotFound = errs.New("campaign not found")

type CampaignView struct {
	ID             uuid.UUID `json:"campaign_id"`
	AdvertiserID   uuid.UUID `json:"advertiser_id"`
	StallID        uuid.UUID `json:"stall_id"`
	ProductID      uuid.UUID `json:"product_id"`
	UnitsAllocated int32     `json:"units_allocated"`
	StartDatetime  time.Time `json:"start_datetime"`
	EndDatetime    time.Time `json:"end_datetime"`
	Status         string    `json:"status"`
}

type StallView struct {
	ID           uuid.UUID `json:"stall_id"`
	LocationName string    `json:"location_name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Date         time.Time `json:"date"`
}

type ProductView struct {
	ID          uuid.UUID `json:"product_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}

type CampaignReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CampaignView, error)
	ListByAdvertiser(ctx context.Context, advertiserID uuid.UUID) ([]*CampaignView, error)
	ListAll(ctx context.Context) ([]*CampaignView, error)
}

type CampaignQueries interface {
	// GetOwned returns ErrCampaignNotFound both for absent campaigns and for
	// campaigns owned by another advertiser, so ids cannot be probed.
	GetOwned(ctx context.Context, advertiserID uuid.UUID, id uuid.UUID) (*CampaignView, error)
	ListOwned(ctx context.Context, advertiserID uuid.UUID) ([]*CampaignView, error)
}

type campaignQueriesImpl struct {
	readStore CampaignReadStore
}

func NewCampaignQueries(readStore CampaignReadStore) CampaignQueries {
	return &campaignQueriesImpl{readStore: readStore}
}

func (q *campaignQueriesImpl) GetOwned(ctx context.Context, advertiserID uuid.UUID, id uuid.UUID) (*CampaignView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	if view.AdvertiserID != advertiserID {
		return nil, ErrCampaignNotFound
	}
	return view, nil
}

func (q *campaignQueriesImpl) ListOwned(ctx context.Context, advertiserID uuid.UUID) ([]*CampaignView, error) {
	return q.readStore.ListByAdvertiser(ctx, advertiserID)
}
