//go:build unit || e2e

package builder

import (
	"time"

	sqlc "festserve/internal/infra/sqlc/generated"
	"festserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AdvertiserBuilder struct {
	Name         string
	ContactEmail string
	PasswordHash string
	CreatedAt    time.Time
}

func NewAdvertiserBuilder() *AdvertiserBuilder {
	return &AdvertiserBuilder{
		Name:         "Takoyaki Taro",
		ContactEmail: "advertiser@example.com",
		// bcrypt hash of "password123"
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		CreatedAt:    time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *AdvertiserBuilder) WithEmail(email string) *AdvertiserBuilder {
	b.ContactEmail = email
	return b
}

func (b *AdvertiserBuilder) WithPasswordHash(hash string) *AdvertiserBuilder {
	b.PasswordHash = hash
	return b
}

func (b *AdvertiserBuilder) BuildInfra() sqlc.Advertiser {
	return sqlc.Advertiser{
		AdvertiserID: uuid.New(),
		Name:         b.Name,
		ContactEmail: b.ContactEmail,
		PasswordHash: b.PasswordHash,
		CreatedAt:    pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *AdvertiserBuilder) BuildView() *queries.AdvertiserView {
	return &queries.AdvertiserView{
		ID:           uuid.New(),
		Name:         b.Name,
		ContactEmail: b.ContactEmail,
		CreatedAt:    b.CreatedAt,
	}
}

type ScannerBuilder struct {
	Username        string
	PasswordHash    string
	AssignedStallID *uuid.UUID
	CreatedAt       time.Time
}

func NewScannerBuilder() *ScannerBuilder {
	return &ScannerBuilder{
		Username: "gate-scanner-1",
		// bcrypt hash of "password123"
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		CreatedAt:    time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ScannerBuilder) WithAssignedStall(id uuid.UUID) *ScannerBuilder {
	b.AssignedStallID = &id
	return b
}

func (b *ScannerBuilder) BuildInfra() sqlc.ScannerUser {
	assigned := pgtype.UUID{}
	if b.AssignedStallID != nil {
		assigned = pgtype.UUID{Bytes: *b.AssignedStallID, Valid: true}
	}
	return sqlc.ScannerUser{
		UserID:          uuid.New(),
		Username:        b.Username,
		PasswordHash:    b.PasswordHash,
		AssignedStallID: assigned,
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ScannerBuilder) BuildView() *queries.ScannerView {
	return &queries.ScannerView{
		ID:              uuid.New(),
		Username:        b.Username,
		AssignedStallID: b.AssignedStallID,
		CreatedAt:       b.CreatedAt,
	}
}
