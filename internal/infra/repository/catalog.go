package repository

import (
	"context"

	"festserve/internal/infra"
	sqlc "festserve/internal/infra/sqlc/generated"
	"festserve/internal/pkg/pgconv"
	"festserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogWriteQueries interface {
	CreateStall(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateStallParams) (sqlc.Stall, error)
	CreateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProductParams) (sqlc.Product, error)
}

type CatalogRepository struct {
	queries CatalogWriteQueries
}

func NewCatalogRepository(queries CatalogWriteQueries) *CatalogRepository {
	return &CatalogRepository{queries: queries}
}

func (r *CatalogRepository) CreateStall(ctx context.Context, db sqlc.DBTX, stall shared.NewStall) (uuid.UUID, error) {
	params := sqlc.CreateStallParams{
		StallID:      uuid.New(),
		LocationName: stall.LocationName,
		Latitude:     stall.Latitude,
		Longitude:    stall.Longitude,
		Date:         pgconv.DateToPgtype(stall.Date),
	}

	row, err := r.queries.CreateStall(ctx, db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create stall", err)
	}

	return row.StallID, nil
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, db sqlc.DBTX, product shared.NewProduct) (uuid.UUID, error) {
	params := sqlc.CreateProductParams{
		ProductID:   uuid.New(),
		Name:        product.Name,
		Description: pgconv.StringPtrToPgtype(product.Description),
	}

	row, err := r.queries.CreateProduct(ctx, db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create product", err)
	}

	return row.ProductID, nil
}
