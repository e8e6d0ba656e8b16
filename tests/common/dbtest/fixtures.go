//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"drop-arbiter/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const TestAccessCode = "forge-2024"

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of TestAccessCode
var testAccessCodeHash = sync.OnceValue(func() string {
	hash, err := password.Hash(TestAccessCode)
	if err != nil {
		panic(err)
	}
	return hash
})

func CreateTestOperator(t *testing.T, db DBLike, businessName string) uuid.UUID {
	t.Helper()

	operatorID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO operators (id, business_name, access_code_hash) VALUES ($1, $2, $3)",
		operatorID, businessName, testAccessCodeHash())
	require.NoError(t, err)

	return operatorID
}

// CreateTestDrop inserts a live drop that launched at now.
func CreateTestDrop(t *testing.T, db DBLike, operatorID uuid.UUID, spots, timerSeconds int32, now time.Time) uuid.UUID {
	t.Helper()

	dropID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO drops (id, operator_id, offering_id, title, spots_available, price_cents,
		                   timer_seconds, status, launched_at, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6, 'live', $7, $8, $7)`,
		dropID, operatorID, uuid.New(), "Test Drop", spots, timerSeconds,
		now, now.Add(time.Duration(timerSeconds)*time.Second))
	require.NoError(t, err)

	return dropID
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	truncateOnce sync.Once
	truncateStmt string
	truncateErr  error
)

// ResetDB empties every table in the public schema. The statement is built
// from the catalog on first use.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateOnce.Do(func() {
		truncateStmt, truncateErr = buildTruncate(ctx, pool)
	})
	if truncateErr != nil {
		return truncateErr
	}
	_, err := pool.Exec(ctx, truncateStmt)
	return err
}

func buildTruncate(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	rows, err := pool.Query(ctx, `
		SELECT format('%I.%I', schemaname, tablename)
		FROM pg_tables
		WHERE schemaname = 'public'
		ORDER BY tablename`)
	if err != nil {
		return "", fmt.Errorf("list tables: %w", err)
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return "", fmt.Errorf("scan tables: %w", err)
	}
	if len(tables) == 0 {
		return "SELECT 1", nil
	}
	return "TRUNCATE " + strings.Join(tables, ", ") + " CASCADE", nil
}
