package repository

import (
	"context"
	"time"

	"festserve/internal/infra"
	sqlc "festserve/internal/infra/sqlc/generated"
	"festserve/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ScanEventWriteQueries interface {
	CreateScanEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateScanEventParams) (sqlc.ScanEvent, error)
	DeleteScanEventsByCampaign(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) error
}

type ScanEventRepository struct {
	queries ScanEventWriteQueries
}

func NewScanEventRepository(queries ScanEventWriteQueries) *ScanEventRepository {
	return &ScanEventRepository{queries: queries}
}

func (r *ScanEventRepository) Create(ctx context.Context, db sqlc.DBTX, campaignID, scannerUserID uuid.UUID, scannedAt time.Time, deviceFingerprint *string) (uuid.UUID, error) {
	params := sqlc.CreateScanEventParams{
		ScanEventID:       uuid.New(),
		CampaignID:        campaignID,
		ScannerUserID:     scannerUserID,
		ScannedAt:         pgconv.TimeToPgtype(scannedAt),
		DeviceFingerprint: pgconv.StringPtrToPgtype(deviceFingerprint),
	}

	row, err := r.queries.CreateScanEvent(ctx, db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create scan event", err)
	}

	return row.ScanEventID, nil
}

func (r *ScanEventRepository) DeleteByCampaign(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) error {
	if err := r.queries.DeleteScanEventsByCampaign(ctx, db, campaignID); err != nil {
		return infra.WrapRepoErr("failed to delete scan events for campaign", err)
	}
	return nil
}
