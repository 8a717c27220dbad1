package components

import (
	"festserve/internal/infra/readstore"
	sqlc "festserve/internal/infra/sqlc/generated"
	"festserve/internal/infra/uow"
	"festserve/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write repositories are constructed inside the unit of work; only the
// read stores and the UoW itself are wired here.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		uow.NewPostgresUoW,
	),
	readstoreModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Identity
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.IdentityReadQueries)),
		),
		fx.Annotate(
			readstore.NewIdentityReadStore,
			fx.As(new(queries.IdentityReadStore)),
		),
		// Campaign
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CampaignReadQueries)),
		),
		fx.Annotate(
			readstore.NewCampaignReadStore,
			fx.As(new(queries.CampaignReadStore)),
		),
		// Scan events
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ScanReadQueries)),
		),
		fx.Annotate(
			readstore.NewScanReadStore,
			fx.As(new(queries.ScanReadStore)),
		),
		// Snapshots
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SnapshotReadQueries)),
		),
		fx.Annotate(
			readstore.NewSnapshotReadStore,
			fx.As(new(queries.SnapshotReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
