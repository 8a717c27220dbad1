//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"festserve/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const FixturePassword = "password123"

var (
	hashOnce     sync.Once
	passwordHash string
)

// FixturePasswordHash hashes FixturePassword once per process so every
// seeded identity can log in through the real token endpoint.
func FixturePasswordHash() string {
	hashOnce.Do(func() {
		h, err := password.HashPassword(FixturePassword)
		if err != nil {
			panic(err)
		}
		passwordHash = h
	})
	return passwordHash
}

func CreateTestAdvertiser(t *testing.T, db DBLike, name, contactEmail string) uuid.UUID {
	t.Helper()

	advertiserID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO advertisers (advertiser_id, name, contact_email, password_hash) VALUES ($1, $2, $3, $4) ON CONFLICT (contact_email) DO NOTHING",
		advertiserID, name, contactEmail, FixturePasswordHash())
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT advertiser_id FROM advertisers WHERE contact_email = $1", contactEmail).Scan(&advertiserID)
	}

	return advertiserID
}

func CreateTestScanner(t *testing.T, db DBLike, username string, assignedStallID *uuid.UUID) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO scanner_users (user_id, username, password_hash, assigned_stall_id) VALUES ($1, $2, $3, $4) ON CONFLICT (username) DO NOTHING",
		userID, username, FixturePasswordHash(), assignedStallID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT user_id FROM scanner_users WHERE username = $1", username).Scan(&userID)
	}

	return userID
}

func CreateTestStall(t *testing.T, db DBLike, locationName string, date time.Time) uuid.UUID {
	t.Helper()

	stallID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO stalls (stall_id, location_name, latitude, longitude, date) VALUES ($1, $2, 35.6595, 139.7005, $3) ON CONFLICT (location_name, date) DO NOTHING",
		stallID, locationName, date)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT stall_id FROM stalls WHERE location_name = $1 AND date = $2", locationName, date).Scan(&stallID)
	}

	return stallID
}

func CreateTestProduct(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO products (product_id, name, description) VALUES ($1, $2, 'test product')",
		productID, name)
	require.NoError(t, err)

	return productID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO advertisers (advertiser_id, name, contact_email, password_hash) VALUES
		    (gen_random_uuid(), 'Seed Advertiser', 'seed-advertiser@example.com', $1)
		ON CONFLICT (contact_email) DO NOTHING;
	`, FixturePasswordHash())
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO scanner_users (user_id, username, password_hash) VALUES
		    (gen_random_uuid(), 'seed-scanner', $1)
		ON CONFLICT (username) DO NOTHING;
	`, FixturePasswordHash())
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
