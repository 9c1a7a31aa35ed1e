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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMye1J9dZw0eoYjzPz0lPtLxhKCFBPJU8hG"

func CreateTestAdmin(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	adminID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO admins (id, name, email, password_hash) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		adminID, name, email, testPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM admins WHERE email = $1", email).Scan(&adminID)
	}

	return adminID
}

func CreateTestCoupon(t *testing.T, db DBLike, code string) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO coupon_codes (id, code) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING",
		couponID, code)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM coupon_codes WHERE code = $1", code).Scan(&couponID)
	}

	return couponID
}

func CreateTestGuest(t *testing.T, db DBLike, lumaEventID, lumaGuestID, name, email string) uuid.UUID {
	t.Helper()

	guestID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO luma_events (luma_event_id, name)
		VALUES ($1, 'Test Event')
		ON CONFLICT (luma_event_id) DO NOTHING`, lumaEventID)
	require.NoError(t, err)

	tag, err := db.Exec(ctx, `
		INSERT INTO luma_guests (id, luma_guest_id, luma_event_id, name, email, registration_status)
		VALUES ($1, $2, $3, $4, $5, 'confirmed')
		ON CONFLICT (luma_guest_id) DO NOTHING`,
		guestID, lumaGuestID, lumaEventID, name, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM luma_guests WHERE luma_guest_id = $1", lumaGuestID).Scan(&guestID)
	}

	return guestID
}

// inserts the singleton settings row tests rely on
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO app_settings (id, city_name, timezone)
		VALUES (1, 'Cafe Cursor', 'America/Toronto')
		ON CONFLICT (id) DO NOTHING;
	`)
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
