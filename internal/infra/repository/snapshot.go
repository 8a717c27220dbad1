package repository

import (
	"context"
	"time"

	"festserve/internal/infra"
	sqlc "festserve/internal/infra/sqlc/generated"
	"festserve/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SnapshotWriteQueries interface {
	CreateReportingSnapshot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReportingSnapshotParams) (sqlc.ReportingSnapshot, error)
	DeleteSnapshotsByCampaign(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) error
}

type SnapshotRepository struct {
	queries SnapshotWriteQueries
}

func NewSnapshotRepository(queries SnapshotWriteQueries) *SnapshotRepository {
	return &SnapshotRepository{queries: queries}
}

// Create appends an immutable snapshot row; prior rows are never touched.
func (r *SnapshotRepository) Create(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID, snapshotTime time.Time, totalScans int64, remainingUnits int32) (uuid.UUID, error) {
	params := sqlc.CreateReportingSnapshotParams{
		SnapshotID:     uuid.New(),
		CampaignID:     campaignID,
		SnapshotTime:   pgconv.TimeToPgtype(snapshotTime),
		TotalScans:     int32(totalScans),
		RemainingUnits: remainingUnits,
	}

	row, err := r.queries.CreateReportingSnapshot(ctx, db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reporting snapshot", err)
	}

	return row.SnapshotID, nil
}

func (r *SnapshotRepository) DeleteByCampaign(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) error {
	if err := r.queries.DeleteSnapshotsByCampaign(ctx, db, campaignID); err != nil {
		return infra.WrapRepoErr("failed to delete snapshots for campaign", err)
	}
	return nil
}
