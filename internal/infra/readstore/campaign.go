package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"festserve/internal/infra"
	sqlc "festserve/internal/infra/sqlc/generated"
	"festserve/internal/pkg/pgconv"
	"festserve/internal/usecase/queries"
)

type CampaignReadQueries interface {
	GetCampaignByID(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) (sqlc.Campaign, error)
	ListCampaignsByAdvertiser(ctx context.Context, db sqlc.DBTX, advertiserID uuid.UUID) ([]sqlc.Campaign, error)
	ListAllCampaigns(ctx context.Context, db sqlc.DBTX) ([]sqlc.Campaign, error)
}

type CampaignReadStore struct {
	pool    *pgxpool.Pool
	queries CampaignReadQueries
}

func NewCampaignReadStore(pool *pgxpool.Pool, queries CampaignReadQueries) *CampaignReadStore {
	return &CampaignReadStore{pool: pool, queries: queries}
}

func (r *CampaignReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CampaignView, error) {
	row, err := r.queries.GetCampaignByID(ctx, r.pool, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("campaign not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find campaign by id", err)
	}
	return toCampaignView(row), nil
}

func (r *CampaignReadStore) ListByAdvertiser(ctx context.Context, advertiserID uuid.UUID) ([]*queries.CampaignView, error) {
	rows, err := r.queries.ListCampaignsByAdvertiser(ctx, r.pool, advertiserID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campaigns by advertiser", err)
	}
	return toCampaignViews(rows), nil
}

func (r *CampaignReadStore) ListAll(ctx context.Context) ([]*queries.CampaignView, error) {
	rows, err := r.queries.ListAllCampaigns(ctx, r.pool)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campaigns", err)
	}
	return toCampaignViews(rows), nil
}

func toCampaignView(row sqlc.Campaign) *queries.CampaignView {
	return &queries.CampaignView{
		ID:             row.CampaignID,
		AdvertiserID:   row.AdvertiserID,
		StallID:        row.StallID,
		ProductID:      row.ProductID,
		UnitsAllocated: row.UnitsAllocated,
		StartDatetime:  pgconv.TimeFromPgtype(row.StartDatetime),
		EndDatetime:    pgconv.TimeFromPgtype(row.EndDatetime),
		Status:         string(row.Status),
	}
}

func toCampaignViews(rows []sqlc.Campaign) []*queries.CampaignView {
	views := make([]*queries.CampaignView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toCampaignView(row))
	}
	return views
}
