package repository

import (
	"context"

	"festserve/internal/domain/campaign"
	"festserve/internal/infra"
	sqlc "festserve/internal/infra/sqlc/generated"
	"festserve/internal/pkg/pgconv"
	"festserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type CampaignWriteQueries interface {
	CreateCampaign(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCampaignParams) (sqlc.Campaign, error)
	UpdateCampaign(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCampaignParams) (sqlc.Campaign, error)
	DeleteCampaign(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) (int64, error)
}

type CampaignRepository struct {
	queries CampaignWriteQueries
}

func NewCampaignRepository(queries CampaignWriteQueries) *CampaignRepository {
	return &CampaignRepository{queries: queries}
}

func (r *CampaignRepository) Create(ctx context.Context, db sqlc.DBTX, c *campaign.Campaign) (uuid.UUID, error) {
	params := sqlc.CreateCampaignParams{
		CampaignID:     c.ID(),
		AdvertiserID:   c.AdvertiserID(),
		StallID:        c.StallID(),
		ProductID:      c.ProductID(),
		UnitsAllocated: c.UnitsAllocated(),
		StartDatetime:  pgconv.TimeToPgtype(c.StartDatetime()),
		EndDatetime:    pgconv.TimeToPgtype(c.EndDatetime()),
		Status:         sqlc.CampaignStatus(c.Status()),
	}

	row, err := r.queries.CreateCampaign(ctx, db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create campaign", err)
	}

	return row.CampaignID, nil
}

func (r *CampaignRepository) Update(ctx context.Context, db sqlc.DBTX, id uuid.UUID, patch shared.CampaignPatch) error {
	params := sqlc.UpdateCampaignParams{
		CampaignID:     id,
		UnitsAllocated: pgconv.Int32PtrToPgtype(patch.UnitsAllocated),
		StartDatetime:  pgconv.TimePtrToPgtype(patch.StartDatetime),
		EndDatetime:    pgconv.TimePtrToPgtype(patch.EndDatetime),
		Status:         statusToNull(patch.Status),
	}

	_, err := r.queries.UpdateCampaign(ctx, db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("campaign not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update campaign", err)
	}

	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	affected, err := r.queries.DeleteCampaign(ctx, db, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete campaign", err)
	}
	return affected, nil
}

func statusToNull(s *campaign.Status) sqlc.NullCampaignStatus {
	if s == nil {
		return sqlc.NullCampaignStatus{Valid: false}
	}
	return sqlc.NullCampaignStatus{CampaignStatus: sqlc.CampaignStatus(*s), Valid: true}
}
