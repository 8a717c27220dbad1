package campaign

import (
	"time"

	"github.com/google/uuid"
)

// Campaign is a time-boxed allocation of product units at a stall, owned
// exclusively by one advertiser. Uniqueness on (advertiser, stall, product,
// start) is enforced by the store.
type Campaign struct {
	id             uuid.UUID
	advertiserID   uuid.UUID
	stallID        uuid.UUID
	productID      uuid.UUID
	unitsAllocated int32
	startDatetime  time.Time
	endDatetime    time.Time
	status         Status
}

func NewCampaign(
	advertiserID uuid.UUID,
	stallID uuid.UUID,
	productID uuid.UUID,
	unitsAllocated int32,
	startDatetime time.Time,
	endDatetime time.Time,
) (*Campaign, error) {
	if err := ValidateAllocation(unitsAllocated); err != nil {
		return nil, err
	}
	if err := ValidateWindow(startDatetime, endDatetime); err != nil {
		return nil, err
	}

	return &Campaign{
		id:             uuid.New(),
		advertiserID:   advertiserID,
		stallID:        stallID,
		productID:      productID,
		unitsAllocated: unitsAllocated,
		startDatetime:  startDatetime,
		endDatetime:    endDatetime,
		status:         StatusScheduled,
	}, nil
}

func ValidateAllocation(units int32) error {
	if units <= 0 {
		return ErrInvalidAllocation
	}
	return nil
}

func ValidateWindow(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidWindow
	}
	return nil
}

// RemainingUnits is the snapshot computation: allocation minus total scans.
// Not clamped at zero; a negative value signals an over-scanned campaign.
func RemainingUnits(unitsAllocated int32, totalScans int64) int32 {
	return unitsAllocated - int32(totalScans)
}

func (c *Campaign) ID() uuid.UUID            { return c.id }
func (c *Campaign) AdvertiserID() uuid.UUID  { return c.advertiserID }
func (c *Campaign) StallID() uuid.UUID       { return c.stallID }
func (c *Campaign) ProductID() uuid.UUID     { return c.productID }
func (c *Campaign) UnitsAllocated() int32    { return c.unitsAllocated }
func (c *Campaign) StartDatetime() time.Time { return c.startDatetime }
func (c *Campaign) EndDatetime() time.Time   { return c.endDatetime }
func (c *Campaign) Status() Status           { return c.status }
