//go:build integration || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertSeller stores a seller profile directly, bypassing the sync endpoint.
func InsertSeller(t *testing.T, db DBLike, identityVerified, payoutVerified bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO seller_profiles (id, display_name, identity_verified, payout_verified) VALUES ($1, $2, $3, $4)`,
		id, "seller-"+id.String()[:8], identityVerified, payoutVerified)
	require.NoError(t, err)
	return id
}

// CountRows is a raw check that bypasses the repositories under test.
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table+" WHERE "+where, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	truncateMu  sync.Mutex
	truncateSQL = map[*pgxpool.Pool]string{}
)

// ResetDB truncates every application table in the pool's database.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateMu.Lock()
	stmt, ok := truncateSQL[pool]
	if !ok {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateMu.Unlock()
			return err
		}
		var tables []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				rows.Close()
				truncateMu.Unlock()
				return err
			}
			tables = append(tables, name)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			truncateMu.Unlock()
			return err
		}
		if len(tables) == 0 {
			truncateMu.Unlock()
			return fmt.Errorf("no tables to truncate")
		}
		stmt = "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE"
		truncateSQL[pool] = stmt
	}
	truncateMu.Unlock()

	_, err := pool.Exec(ctx, stmt)
	return err
}
