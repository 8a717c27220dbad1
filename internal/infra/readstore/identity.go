package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"festserve/internal/infra"
	sqlc "festserve/internal/infra/sqlc/generated"
	"festserve/internal/pkg/pgconv"
	"festserve/internal/usecase/queries"
)

type IdentityReadQueries interface {
	GetAdvertiserByID(ctx context.Context, db sqlc.DBTX, advertiserID uuid.UUID) (sqlc.Advertiser, error)
	GetAdvertiserByEmail(ctx context.Context, db sqlc.DBTX, contactEmail string) (sqlc.Advertiser, error)
	GetScannerUserByID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.ScannerUser, error)
	GetScannerUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.ScannerUser, error)
}

type IdentityReadStore struct {
	pool    *pgxpool.Pool
	queries IdentityReadQueries
}

func NewIdentityReadStore(pool *pgxpool.Pool, queries IdentityReadQueries) *IdentityReadStore {
	return &IdentityReadStore{pool: pool, queries: queries}
}

func (r *IdentityReadStore) FindAdvertiserByID(ctx context.Context, id uuid.UUID) (*queries.AdvertiserView, error) {
	row, err := r.queries.GetAdvertiserByID(ctx, r.pool, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("advertiser not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find advertiser by id", err)
	}
	return toAdvertiserView(row), nil
}

func (r *IdentityReadStore) FindAdvertiserByEmail(ctx context.Context, email string) (*queries.AdvertiserView, string, error) {
	row, err := r.queries.GetAdvertiserByEmail(ctx, r.pool, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("advertiser not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find advertiser by email", err)
	}
	return toAdvertiserView(row), row.PasswordHash, nil
}

func (r *IdentityReadStore) FindScannerByID(ctx context.Context, id uuid.UUID) (*queries.ScannerView, error) {
	row, err := r.queries.GetScannerUserByID(ctx, r.pool, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("scanner user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find scanner user by id", err)
	}
	return toScannerView(row), nil
}

func (r *IdentityReadStore) FindScannerByUsername(ctx context.Context, username string) (*queries.ScannerView, string, error) {
	row, err := r.queries.GetScannerUserByUsername(ctx, r.pool, username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("scanner user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find scanner user by username", err)
	}
	return toScannerView(row), row.PasswordHash, nil
}

func toAdvertiserView(row sqlc.Advertiser) *queries.AdvertiserView {
	return &queries.AdvertiserView{
		ID:           row.AdvertiserID,
		Name:         row.Name,
		ContactEmail: row.ContactEmail,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toScannerView(row sqlc.ScannerUser) *queries.ScannerView {
	return &queries.ScannerView{
		ID:              row.UserID,
		Username:        row.Username,
		AssignedStallID: pgconv.UUIDPtrFromPgtype(row.AssignedStallID),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
