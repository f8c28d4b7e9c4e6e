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

	"pricewatch/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, id uuid.UUID, displayName string) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, display_name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING",
		id, displayName)
	require.NoError(t, err)
	return id
}

// InsertSubmission stores b as is, bypassing the API.
func InsertSubmission(t *testing.T, db DBLike, b *builder.SubmissionBuilder) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO submissions (id, submitter_id, submitter_display_name, product_id, product_name,
			product_image, supermarket_id, branch, price, latitude, longitude, status, created_at,
			reviewed_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		b.ID, b.SubmitterID, b.SubmitterDisplayName, b.ProductID, b.ProductName,
		b.ProductImage, b.SupermarketID, b.Branch, b.Price, b.Latitude, b.Longitude, b.Status.String(),
		b.CreatedAt, b.ReviewedAt, b.Version)
	require.NoError(t, err)
	return b.ID
}

type UserRewards struct {
	Points            int64
	ContributionCount int64
}

func GetUserRewards(t *testing.T, db DBLike, id uuid.UUID) UserRewards {
	t.Helper()

	var r UserRewards
	err := db.QueryRow(context.Background(),
		"SELECT points, contribution_count FROM users WHERE id = $1", id).Scan(&r.Points, &r.ContributionCount)
	require.NoError(t, err)
	return r
}

func CountOutboxEvents(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM outbox_events WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
