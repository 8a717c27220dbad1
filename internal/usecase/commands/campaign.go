package commands

import (
	"context"

	"github.com/google/uuid"

	"festserve/internal/domain/campaign"
	reqdto "festserve/internal/handler/dto/request"
	"festserve/internal/infra"
	"festserve/internal/pkg/errs"
	"festserve/internal/pkg/patch"
	"festserve/internal/usecase/queries"
	"festserve/internal/usecase/shared"
)

var (
	ErrCampaignNotFound   = errs.New("campaign not found")
	ErrStallNotFound      = errs.New("stall not found")
	ErrProductNotFound    = errs.New("product not found")
	ErrDuplicateCampaign  = errs.New("campaign already exists for this run")
	ErrCampaignValidation = errs.New("campaign validation failed")
)

type CampaignCommands interface {
	Create(ctx context.Context, advertiserID uuid.UUID, req reqdto.CreateCampaignRequest) (*queries.CampaignView, error)
	Update(ctx context.Context, advertiserID uuid.UUID, id uuid.UUID, req reqdto.UpdateCampaignRequest) (*queries.CampaignView, error)
	Delete(ctx context.Context, advertiserID uuid.UUID, id uuid.UUID) error
}

type campaignCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCampaignCommands(uow shared.UnitOfWork) CampaignCommands {
	return &campaignCommandsImpl{uow: uow}
}

func (c *campaignCommandsImpl) Create(ctx context.Context, advertiserID uuid.UUID, req reqdto.CreateCampaignRequest) (*queries.CampaignView, error) {
	entity, err := campaign.NewCampaign(
		advertiserID,
		req.StallID,
		req.ProductID,
		req.UnitsAllocated,
		req.StartDatetime,
		req.EndDatetime,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrCampaignValidation)
	}

	var view *queries.CampaignView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stallOK, readErr := tx.Reads().StallExists(ctx, tx.DB(), req.StallID)
		if readErr != nil {
			return readErr
		}
		if !stallOK {
			return ErrStallNotFound
		}

		productOK, readErr := tx.Reads().ProductExists(ctx, tx.DB(), req.ProductID)
		if readErr != nil {
			return readErr
		}
		if !productOK {
			return ErrProductNotFound
		}

		id, createErr := tx.Campaigns().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.Mark(createErr, ErrDuplicateCampaign)
			}
			return createErr
		}

		view = &queries.CampaignView{
			ID:             id,
			AdvertiserID:   entity.AdvertiserID(),
			StallID:        entity.StallID(),
			ProductID:      entity.ProductID(),
			UnitsAllocated: entity.UnitsAllocated(),
			StartDatetime:  entity.StartDatetime(),
			EndDatetime:    entity.EndDatetime(),
			Status:         entity.Status().String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *campaignCommandsImpl) Update(ctx context.Context, advertiserID uuid.UUID, id uuid.UUID, req reqdto.UpdateCampaignRequest) (*queries.CampaignView, error) {
	var view *queries.CampaignView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, readErr := c.ownedCampaign(ctx, tx, advertiserID, id)
		if readErr != nil {
			return readErr
		}

		// Validation runs against the effective post-patch values so a
		// partial update cannot sneak an invalid combination past D-checks.
		effectiveUnits := patch.Coalesce(req.UnitsAllocated, current.UnitsAllocated)
		effectiveStart := patch.Coalesce(req.StartDatetime, current.StartDatetime)
		effectiveEnd := patch.Coalesce(req.EndDatetime, current.EndDatetime)

		if validateErr := campaign.ValidateAllocation(effectiveUnits); validateErr != nil {
			return errs.Mark(validateErr, ErrCampaignValidation)
		}
		if validateErr := campaign.ValidateWindow(effectiveStart, effectiveEnd); validateErr != nil {
			return errs.Mark(validateErr, ErrCampaignValidation)
		}

		effectiveStatus := campaign.Status(current.Status)
		campaignPatch := shared.CampaignPatch{
			UnitsAllocated: req.UnitsAllocated,
			StartDatetime:  req.StartDatetime,
			EndDatetime:    req.EndDatetime,
		}
		if req.Status != nil {
			status, statusErr := campaign.NewStatus(*req.Status)
			if statusErr != nil {
				return errs.Mark(statusErr, ErrCampaignValidation)
			}
			effectiveStatus = status
			campaignPatch.Status = &status
		}

		if !campaignPatch.IsEmpty() {
			if updateErr := tx.Campaigns().Update(ctx, tx.DB(), id, campaignPatch); updateErr != nil {
				if infra.IsKind(updateErr, infra.KindNotFound) {
					return ErrCampaignNotFound
				}
				if infra.IsKind(updateErr, infra.KindDuplicateKey) {
					return errs.Mark(updateErr, ErrDuplicateCampaign)
				}
				return updateErr
			}
		}

		view = &queries.CampaignView{
			ID:             current.ID,
			AdvertiserID:   current.AdvertiserID,
			StallID:        current.StallID,
			ProductID:      current.ProductID,
			UnitsAllocated: effectiveUnits,
			StartDatetime:  effectiveStart,
			EndDatetime:    effectiveEnd,
			Status:         effectiveStatus.String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Delete removes the campaign together with its scan events and snapshots in
// one transaction so no orphaned rows survive a partial failure.
func (c *campaignCommandsImpl) Delete(ctx context.Context, advertiserID uuid.UUID, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, readErr := c.ownedCampaign(ctx, tx, advertiserID, id); readErr != nil {
			return readErr
		}

		if err := tx.ScanEvents().DeleteByCampaign(ctx, tx.DB(), id); err != nil {
			return err
		}
		if err := tx.Snapshots().DeleteByCampaign(ctx, tx.DB(), id); err != nil {
			return err
		}

		affected, err := tx.Campaigns().Delete(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCampaignNotFound
		}
		return nil
	})
}

// ownedCampaign conflates "absent" and "owned by someone else" into the same
// not-found error so campaign ids cannot be probed across advertisers.
func (c *campaignCommandsImpl) ownedCampaign(ctx context.Context, tx shared.Tx, advertiserID uuid.UUID, id uuid.UUID) (*shared.CampaignSnapshot, error) {
	snap, err := tx.Reads().CampaignByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	if snap.AdvertiserID != advertiserID {
		return nil, ErrCampaignNotFound
	}
	return snap, nil
}
