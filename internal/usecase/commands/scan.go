package commands

import (
	"context"

	"github.com/google/uuid"

	reqdto "festserve/internal/handler/dto/request"
	"festserve/internal/infra"
	"festserve/internal/metrics"
	"festserve/internal/pkg/clock"
	"festserve/internal/usecase/queries"
	"festserve/internal/usecase/shared"
)

type ScanCommands interface {
	Record(ctx context.Context, scannerUserID uuid.UUID, req reqdto.CreateScanEventRequest) (*queries.ScanEventView, error)
}

type scanCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewScanCommands(uow shared.UnitOfWork, clock clock.Clock) ScanCommands {
	return &scanCommandsImpl{uow: uow, clock: clock}
}

// Record accepts a scan for any existing campaign. Stall assignment is data
// only; a scanner is not restricted to its assigned stall when recording.
func (s *scanCommandsImpl) Record(ctx context.Context, scannerUserID uuid.UUID, req reqdto.CreateScanEventRequest) (*queries.ScanEventView, error) {
	scannedAt := s.clock.Now().UTC()

	var view *queries.ScanEventView
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, readErr := tx.Reads().CampaignByID(ctx, tx.DB(), req.CampaignID); readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrCampaignNotFound
			}
			return readErr
		}

		id, createErr := tx.ScanEvents().Create(ctx, tx.DB(), req.CampaignID, scannerUserID, scannedAt, req.DeviceFingerprint)
		if createErr != nil {
			return createErr
		}

		view = &queries.ScanEventView{
			ID:                id,
			CampaignID:        req.CampaignID,
			ScannerUserID:     scannerUserID,
			ScannedAt:         scannedAt,
			DeviceFingerprint: req.DeviceFingerprint,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ScanEventsRecorded.Inc()
	return view, nil
}
