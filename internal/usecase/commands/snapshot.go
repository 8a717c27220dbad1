package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"festserve/internal/domain/campaign"
	"festserve/internal/infra"
	"festserve/internal/metrics"
	"festserve/internal/pkg/clock"
	"festserve/internal/usecase/queries"
	"festserve/internal/usecase/shared"
)

type SnapshotCommands interface {
	Take(ctx context.Context, advertiserID uuid.UUID, campaignID uuid.UUID) (*queries.SnapshotView, error)
	// TakeAll snapshots every campaign in the system. Per-campaign failures
	// are logged and the batch continues; the returned count is the number
	// of snapshots actually written.
	TakeAll(ctx context.Context) (int, error)
}

type snapshotCommandsImpl struct {
	uow       shared.UnitOfWork
	campaigns queries.CampaignReadStore
	clock     clock.Clock
}

func NewSnapshotCommands(uow shared.UnitOfWork, campaigns queries.CampaignReadStore, clock clock.Clock) SnapshotCommands {
	return &snapshotCommandsImpl{
		uow:       uow,
		campaigns: campaigns,
		clock:     clock,
	}
}

func (s *snapshotCommandsImpl) Take(ctx context.Context, advertiserID uuid.UUID, campaignID uuid.UUID) (*queries.SnapshotView, error) {
	var view *queries.SnapshotView
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().CampaignByID(ctx, tx.DB(), campaignID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrCampaignNotFound
			}
			return readErr
		}
		if snap.AdvertiserID != advertiserID {
			return ErrCampaignNotFound
		}

		taken, takeErr := s.takeInTx(ctx, tx, campaignID, snap.UnitsAllocated)
		if takeErr != nil {
			return takeErr
		}
		view = taken
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.SnapshotsWritten.WithLabelValues("manual").Inc()
	return view, nil
}

func (s *snapshotCommandsImpl) TakeAll(ctx context.Context) (int, error) {
	views, err := s.campaigns.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, c := range views {
		err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, takeErr := s.takeInTx(ctx, tx, c.ID, c.UnitsAllocated)
			return takeErr
		})
		if err != nil {
			slog.Error("failed to snapshot campaign", "campaign_id", c.ID, "error", err.Error())
			continue
		}
		metrics.SnapshotsWritten.WithLabelValues("scheduled").Inc()
		written++
	}
	return written, nil
}

// takeInTx is the aggregation core: one count, one derived remainder, one
// appended row. Earlier snapshots are never revised.
func (s *snapshotCommandsImpl) takeInTx(ctx context.Context, tx shared.Tx, campaignID uuid.UUID, unitsAllocated int32) (*queries.SnapshotView, error) {
	totalScans, err := tx.Reads().CountScanEvents(ctx, tx.DB(), campaignID)
	if err != nil {
		return nil, err
	}

	snapshotTime := s.clock.Now().UTC()
	remaining := campaign.RemainingUnits(unitsAllocated, totalScans)

	id, err := tx.Snapshots().Create(ctx, tx.DB(), campaignID, snapshotTime, totalScans, remaining)
	if err != nil {
		return nil, err
	}

	return &queries.SnapshotView{
		ID:             id,
		CampaignID:     campaignID,
		SnapshotTime:   snapshotTime,
		TotalScans:     int32(totalScans),
		RemainingUnits: remaining,
	}, nil
}
