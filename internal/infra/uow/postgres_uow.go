package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"festserve/internal/infra"
	"festserve/internal/infra/repository"
	sqlc "festserve/internal/infra/sqlc/generated"
	"festserve/internal/pkg/errs"
	"festserve/internal/pkg/pgconv"
	"festserve/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxTxRetries = 3
	retryBackoff = 50 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}

		err := u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
		if err == nil {
			return nil
		}

		if !isRetryablePgError(err) {
			return err
		}

		slog.Warn("retrying transaction after transient failure", "attempt", attempt+1, "error", err.Error())
		lastErr = err
	}

	return errs.Mark(lastErr, errMaxRetriesExceeded)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) runInTx(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		_ = pgxTx.Rollback(ctx)
	}()

	if err := fn(ctx, newTx(pgxTx, u.q)); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func isRetryablePgError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type txImpl struct {
	db sqlc.DBTX
	q  *sqlc.Queries
}

func newTx(db sqlc.DBTX, q *sqlc.Queries) shared.Tx {
	return &txImpl{db: db, q: q}
}

func (t *txImpl) Campaigns() shared.CampaignRepository {
	return repository.NewCampaignRepository(t.q)
}

func (t *txImpl) ScanEvents() shared.ScanEventRepository {
	return repository.NewScanEventRepository(t.q)
}

func (t *txImpl) Snapshots() shared.SnapshotRepository {
	return repository.NewSnapshotRepository(t.q)
}

func (t *txImpl) Catalog() shared.CatalogRepository {
	return repository.NewCatalogRepository(t.q)
}

func (t *txImpl) Identities() shared.IdentityRepository {
	return repository.NewIdentityRepository(t.q)
}

func (t *txImpl) Reads() shared.CommandReads {
	return &commandReads{q: t.q}
}

func (t *txImpl) DB() sqlc.DBTX {
	return t.db
}

type commandReads struct {
	q *sqlc.Queries
}

func (r *commandReads) CampaignByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*shared.CampaignSnapshot, error) {
	row, err := r.q.GetCampaignByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("campaign not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find campaign by ID", err)
	}

	return &shared.CampaignSnapshot{
		ID:             row.CampaignID,
		AdvertiserID:   row.AdvertiserID,
		StallID:        row.StallID,
		ProductID:      row.ProductID,
		UnitsAllocated: row.UnitsAllocated,
		StartDatetime:  pgconv.TimeFromPgtype(row.StartDatetime),
		EndDatetime:    pgconv.TimeFromPgtype(row.EndDatetime),
		Status:         string(row.Status),
	}, nil
}

func (r *commandReads) StallExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error) {
	_, err := r.q.GetStallByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to find stall by ID", err)
	}
	return true, nil
}

func (r *commandReads) CountScanEvents(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) (int64, error) {
	count, err := r.q.CountScanEventsByCampaign(ctx, db, campaignID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count scan events", err)
	}
	return count, nil
}

func (r *commandReads) ProductExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error) {
	_, err := r.q.GetProductByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return true, nil
}
