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

type ScanReadQueries interface {
	ListScanEventsByCampaign(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) ([]sqlc.ScanEvent, error)
	ListScanEventsByScanner(ctx context.Context, db sqlc.DBTX, scannerUserID uuid.UUID) ([]sqlc.ScanEvent, error)
	CountScanEventsByCampaign(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) (int64, error)
}

type ScanReadStore struct {
	pool    *pgxpool.Pool
	queries ScanReadQueries
}

func NewScanReadStore(pool *pgxpool.Pool, queries ScanReadQueries) *ScanReadStore {
	return &ScanReadStore{pool: pool, queries: queries}
}

func (r *ScanReadStore) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*queries.ScanEventView, error) {
	rows, err := r.queries.ListScanEventsByCampaign(ctx, r.pool, campaignID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scan events by campaign", err)
	}
	return toScanEventViews(rows), nil
}

func (r *ScanReadStore) ListByScanner(ctx context.Context, scannerUserID uuid.UUID) ([]*queries.ScanEventView, error) {
	rows, err := r.queries.ListScanEventsByScanner(ctx, r.pool, scannerUserID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scan events by scanner", err)
	}
	return toScanEventViews(rows), nil
}

func (r *ScanReadStore) CountByCampaign(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	count, err := r.queries.CountScanEventsByCampaign(ctx, r.pool, campaignID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count scan events", err)
	}
	return count, nil
}

func toScanEventViews(rows []sqlc.ScanEvent) []*queries.ScanEventView {
	views := make([]*queries.ScanEventView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.ScanEventView{
			ID:                row.ScanEventID,
			CampaignID:        row.CampaignID,
			ScannerUserID:     row.ScannerUserID,
			ScannedAt:         pgconv.TimeFromPgtype(row.ScannedAt),
			DeviceFingerprint: pgconv.StringPtrFromPgtype(row.DeviceFingerprint),
		})
	}
	return views
}
