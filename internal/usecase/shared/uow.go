package shared

import (
	"context"
	"time"

	"festserve/internal/domain/campaign"
	sqlc "festserve/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Campaigns() CampaignRepository
	ScanEvents() ScanEventRepository
	Snapshots() SnapshotRepository
	Catalog() CatalogRepository
	Identities() IdentityRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// Minimal snapshots for command-side reads, kept separate from the
// read-side view types (CQRS separation).
type CampaignSnapshot struct {
	ID             uuid.UUID
	AdvertiserID   uuid.UUID
	StallID        uuid.UUID
	ProductID      uuid.UUID
	UnitsAllocated int32
	StartDatetime  time.Time
	EndDatetime    time.Time
	Status         string
}

type CommandReads interface {
	CampaignByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*CampaignSnapshot, error)
	StallExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	ProductExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	CountScanEvents(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) (int64, error)
}

// CampaignPatch applies partial updates: nil fields are left untouched.
type CampaignPatch struct {
	UnitsAllocated *int32
	StartDatetime  *time.Time
	EndDatetime    *time.Time
	Status         *campaign.Status
}

func (p CampaignPatch) IsEmpty() bool {
	return p.UnitsAllocated == nil && p.StartDatetime == nil && p.EndDatetime == nil && p.Status == nil
}

type CampaignRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, c *campaign.Campaign) (uuid.UUID, error)
	Update(ctx context.Context, db sqlc.DBTX, id uuid.UUID, patch CampaignPatch) error
	Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ScanEventRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, campaignID, scannerUserID uuid.UUID, scannedAt time.Time, deviceFingerprint *string) (uuid.UUID, error)
	DeleteByCampaign(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) error
}

type SnapshotRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID, snapshotTime time.Time, totalScans int64, remainingUnits int32) (uuid.UUID, error)
	DeleteByCampaign(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) error
}

type NewStall struct {
	LocationName string
	Latitude     float64
	Longitude    float64
	Date         time.Time
}

type NewProduct struct {
	Name        string
	Description *string
}

type CatalogRepository interface {
	CreateStall(ctx context.Context, db sqlc.DBTX, stall NewStall) (uuid.UUID, error)
	CreateProduct(ctx context.Context, db sqlc.DBTX, product NewProduct) (uuid.UUID, error)
}

type NewAdvertiser struct {
	Name         string
	ContactEmail string
	PasswordHash string
}

type NewScannerUser struct {
	Username        string
	PasswordHash    string
	AssignedStallID *uuid.UUID
}

type IdentityRepository interface {
	CreateAdvertiser(ctx context.Context, db sqlc.DBTX, adv NewAdvertiser) (uuid.UUID, error)
	CreateScannerUser(ctx context.Context, db sqlc.DBTX, scanner NewScannerUser) (uuid.UUID, error)
	DeleteAdvertiserByEmail(ctx context.Context, db sqlc.DBTX, contactEmail string) error
	DeleteScannerUserByUsername(ctx context.Context, db sqlc.DBTX, username string) error
}
