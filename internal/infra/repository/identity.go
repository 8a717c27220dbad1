package repository

import (
	"context"

	"festserve/internal/infra"
	sqlc "festserve/internal/infra/sqlc/generated"
	"festserve/internal/pkg/pgconv"
	"festserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdentityWriteQueries interface {
	CreateAdvertiser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAdvertiserParams) (sqlc.Advertiser, error)
	CreateScannerUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateScannerUserParams) (sqlc.ScannerUser, error)
	DeleteAdvertiserByEmail(ctx context.Context, db sqlc.DBTX, contactEmail string) error
	DeleteScannerUserByUsername(ctx context.Context, db sqlc.DBTX, username string) error
}

type IdentityRepository struct {
	queries IdentityWriteQueries
}

func NewIdentityRepository(queries IdentityWriteQueries) *IdentityRepository {
	return &IdentityRepository{queries: queries}
}

func (r *IdentityRepository) CreateAdvertiser(ctx context.Context, db sqlc.DBTX, adv shared.NewAdvertiser) (uuid.UUID, error) {
	params := sqlc.CreateAdvertiserParams{
		AdvertiserID: uuid.New(),
		Name:         adv.Name,
		ContactEmail: adv.ContactEmail,
		PasswordHash: adv.PasswordHash,
	}

	row, err := r.queries.CreateAdvertiser(ctx, db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create advertiser", err)
	}

	return row.AdvertiserID, nil
}

func (r *IdentityRepository) CreateScannerUser(ctx context.Context, db sqlc.DBTX, scanner shared.NewScannerUser) (uuid.UUID, error) {
	params := sqlc.CreateScannerUserParams{
		UserID:          uuid.New(),
		Username:        scanner.Username,
		PasswordHash:    scanner.PasswordHash,
		AssignedStallID: pgconv.UUIDPtrToPgtype(scanner.AssignedStallID),
	}

	row, err := r.queries.CreateScannerUser(ctx, db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create scanner user", err)
	}

	return row.UserID, nil
}

func (r *IdentityRepository) DeleteAdvertiserByEmail(ctx context.Context, db sqlc.DBTX, contactEmail string) error {
	if err := r.queries.DeleteAdvertiserByEmail(ctx, db, contactEmail); err != nil {
		return infra.WrapRepoErr("failed to delete advertiser", err)
	}
	return nil
}

func (r *IdentityRepository) DeleteScannerUserByUsername(ctx context.Context, db sqlc.DBTX, username string) error {
	if err := r.queries.DeleteScannerUserByUsername(ctx, db, username); err != nil {
		return infra.WrapRepoErr("failed to delete scanner user", err)
	}
	return nil
}
