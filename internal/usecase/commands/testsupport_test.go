//go:build unit

package commands_test

import (
	"context"
	"time"

	"festserve/internal/domain/campaign"
	sqlc "festserve/internal/infra/sqlc/generated"
	"festserve/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(ctx context.Context, db sqlc.DBTX, c *campaign.Campaign) (uuid.UUID, error) {
	args := m.Called(ctx, db, c)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCampaignRepository) Update(ctx context.Context, db sqlc.DBTX, id uuid.UUID, patch shared.CampaignPatch) error {
	args := m.Called(ctx, db, id, patch)
	return args.Error(0)
}

func (m *MockCampaignRepository) Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockScanEventRepository struct {
	mock.Mock
}

func (m *MockScanEventRepository) Create(ctx context.Context, db sqlc.DBTX, campaignID, scannerUserID uuid.UUID, scannedAt time.Time, deviceFingerprint *string) (uuid.UUID, error) {
	args := m.Called(ctx, db, campaignID, scannerUserID, scannedAt, deviceFingerprint)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockScanEventRepository) DeleteByCampaign(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) error {
	args := m.Called(ctx, db, campaignID)
	return args.Error(0)
}

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Create(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID, snapshotTime time.Time, totalScans int64, remainingUnits int32) (uuid.UUID, error) {
	args := m.Called(ctx, db, campaignID, snapshotTime, totalScans, remainingUnits)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSnapshotRepository) DeleteByCampaign(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) error {
	args := m.Called(ctx, db, campaignID)
	return args.Error(0)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) CreateStall(ctx context.Context, db sqlc.DBTX, stall shared.NewStall) (uuid.UUID, error) {
	args := m.Called(ctx, db, stall)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCatalogRepository) CreateProduct(ctx context.Context, db sqlc.DBTX, product shared.NewProduct) (uuid.UUID, error) {
	args := m.Called(ctx, db, product)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockIdentityRepository struct {
	mock.Mock
}

func (m *MockIdentityRepository) CreateAdvertiser(ctx context.Context, db sqlc.DBTX, adv shared.NewAdvertiser) (uuid.UUID, error) {
	args := m.Called(ctx, db, adv)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockIdentityRepository) CreateScannerUser(ctx context.Context, db sqlc.DBTX, scanner shared.NewScannerUser) (uuid.UUID, error) {
	args := m.Called(ctx, db, scanner)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockIdentityRepository) DeleteAdvertiserByEmail(ctx context.Context, db sqlc.DBTX, contactEmail string) error {
	args := m.Called(ctx, db, contactEmail)
	return args.Error(0)
}

func (m *MockIdentityRepository) DeleteScannerUserByUsername(ctx context.Context, db sqlc.DBTX, username string) error {
	args := m.Called(ctx, db, username)
	return args.Error(0)
}

type MockCommandReads struct {
	mock.Mock
}

func (m *MockCommandReads) CampaignByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*shared.CampaignSnapshot, error) {
	args := m.Called(ctx, db, id)
	var snap *shared.CampaignSnapshot
	if v := args.Get(0); v != nil {
		snap = v.(*shared.CampaignSnapshot)
	}
	return snap, args.Error(1)
}

func (m *MockCommandReads) StallExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommandReads) ProductExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommandReads) CountScanEvents(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, campaignID)
	return args.Get(0).(int64), args.Error(1)
}

// stubTx satisfies shared.Tx by handing out the mocks above.
type stubTx struct {
	campaigns  *MockCampaignRepository
	scanEvents *MockScanEventRepository
	snapshots  *MockSnapshotRepository
	catalog    *MockCatalogRepository
	identities *MockIdentityRepository
	reads      *MockCommandReads
}

func (t *stubTx) Campaigns() shared.CampaignRepository   { return t.campaigns }
func (t *stubTx) ScanEvents() shared.ScanEventRepository { return t.scanEvents }
func (t *stubTx) Snapshots() shared.SnapshotRepository   { return t.snapshots }
func (t *stubTx) Catalog() shared.CatalogRepository      { return t.catalog }
func (t *stubTx) Identities() shared.IdentityRepository  { return t.identities }
func (t *stubTx) Reads() shared.CommandReads             { return t.reads }
func (t *stubTx) DB() sqlc.DBTX                          { return nil }

// stubUoW runs the transactional closure directly, no database involved.
type stubUoW struct {
	tx *stubTx
}

func newStubUoW() *stubUoW {
	return &stubUoW{
		tx: &stubTx{
			campaigns:  new(MockCampaignRepository),
			scanEvents: new(MockScanEventRepository),
			snapshots:  new(MockSnapshotRepository),
			catalog:    new(MockCatalogRepository),
			identities: new(MockIdentityRepository),
			reads:      new(MockCommandReads),
		},
	}
}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *stubUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}
