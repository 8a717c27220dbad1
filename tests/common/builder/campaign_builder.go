//go:build unit || e2e

package builder

import (
	"time"

	domcampaign "festserve/internal/domain/campaign"
	reqdto "festserve/internal/handler/dto/request"
	sqlc "festserve/internal/infra/sqlc/generated"
	"festserve/internal/usecase/queries"
	"festserve/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CampaignBuilder struct {
	AdvertiserID   uuid.UUID
	StallID        uuid.UUID
	ProductID      uuid.UUID
	UnitsAllocated int32
	StartDatetime  time.Time
	EndDatetime    time.Time
	Status         string
}

func NewCampaignBuilder() *CampaignBuilder {
	start := time.Date(2026, 7, 18, 10, 0, 0, 0, time.UTC)
	return &CampaignBuilder{
		AdvertiserID:   uuid.New(),
		StallID:        uuid.New(),
		ProductID:      uuid.New(),
		UnitsAllocated: 100,
		StartDatetime:  start,
		EndDatetime:    start.Add(8 * time.Hour),
		Status:         "scheduled",
	}
}

func (b *CampaignBuilder) With(mutate func(*CampaignBuilder)) *CampaignBuilder {
	mutate(b)
	return b
}

func (b *CampaignBuilder) WithUnits(units int32) *CampaignBuilder {
	b.UnitsAllocated = units
	return b
}

func (b *CampaignBuilder) WithWindow(start, end time.Time) *CampaignBuilder {
	b.StartDatetime = start
	b.EndDatetime = end
	return b
}

func (b *CampaignBuilder) WithAdvertiser(id uuid.UUID) *CampaignBuilder {
	b.AdvertiserID = id
	return b
}

// Build methods
func (b *CampaignBuilder) BuildDomain() (*domcampaign.Campaign, error) {
	return domcampaign.NewCampaign(b.AdvertiserID, b.StallID, b.ProductID, b.UnitsAllocated, b.StartDatetime, b.EndDatetime)
}

func (b *CampaignBuilder) BuildInfra() sqlc.Campaign {
	return sqlc.Campaign{
		CampaignID:     uuid.New(),
		AdvertiserID:   b.AdvertiserID,
		StallID:        b.StallID,
		ProductID:      b.ProductID,
		UnitsAllocated: b.UnitsAllocated,
		StartDatetime:  pgtype.Timestamptz{Time: b.StartDatetime, Valid: true},
		EndDatetime:    pgtype.Timestamptz{Time: b.EndDatetime, Valid: true},
		Status:         sqlc.CampaignStatus(b.Status),
	}
}

func (b *CampaignBuilder) BuildCreateRequestDTO() reqdto.CreateCampaignRequest {
	return reqdto.CreateCampaignRequest{
		StallID:        b.StallID,
		ProductID:      b.ProductID,
		UnitsAllocated: b.UnitsAllocated,
		StartDatetime:  b.StartDatetime,
		EndDatetime:    b.EndDatetime,
	}
}

func (b *CampaignBuilder) BuildUpdateRequestDTO() reqdto.UpdateCampaignRequest {
	units := b.UnitsAllocated
	status := b.Status
	return reqdto.UpdateCampaignRequest{
		UnitsAllocated: &units,
		Status:         &status,
	}
}

func (b *CampaignBuilder) BuildView() *queries.CampaignView {
	return &queries.CampaignView{
		ID:             uuid.New(),
		AdvertiserID:   b.AdvertiserID,
		StallID:        b.StallID,
		ProductID:      b.ProductID,
		UnitsAllocated: b.UnitsAllocated,
		StartDatetime:  b.StartDatetime,
		EndDatetime:    b.EndDatetime,
		Status:         b.Status,
	}
}

func (b *CampaignBuilder) BuildSnapshot(id uuid.UUID) *shared.CampaignSnapshot {
	return &shared.CampaignSnapshot{
		ID:             id,
		AdvertiserID:   b.AdvertiserID,
		StallID:        b.StallID,
		ProductID:      b.ProductID,
		UnitsAllocated: b.UnitsAllocated,
		StartDatetime:  b.StartDatetime,
		EndDatetime:    b.EndDatetime,
		Status:         b.Status,
	}
}
