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

type SnapshotReadQueries interface {
	ListSnapshotsByCampaign(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) ([]sqlc.ReportingSnapshot, error)
}

type SnapshotReadStore struct {
	pool    *pgxpool.Pool
	queries SnapshotReadQueries
}

func NewSnapshotReadStore(pool *pgxpool.Pool, queries SnapshotReadQueries) *SnapshotReadStore {
	return &SnapshotReadStore{pool: pool, queries: queries}
}

func (r *SnapshotReadStore) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*queries.SnapshotView, error) {
	rows, err := r.queries.ListSnapshotsByCampaign(ctx, r.pool, campaignID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list snapshots by campaign", err)
	}
	views := make([]*queries.SnapshotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.SnapshotView{
			ID:             row.SnapshotID,
			CampaignID:     row.CampaignID,
			SnapshotTime:   pgconv.TimeFromPgtype(row.SnapshotTime),
			TotalScans:     row.TotalScans,
			RemainingUnits: row.RemainingUnits,
		})
	}
	return views, nil
}
