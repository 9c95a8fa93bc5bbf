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

	"hotel-booking/internal/infra/mongostore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// bcrypt hash of TestPassword
const (
	TestPassword     = "password123"
	testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	now := time.Now().UTC()

	name := strings.SplitN(email, "@", 2)[0]
	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, name, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, true, $6, $6) ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, name, role, now)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, email string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

func CreateTestHotel(t *testing.T, db DBLike, title string) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(),
		"INSERT INTO hotels (id, title, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $4)",
		hotelID, title, title+" description", now)
	require.NoError(t, err)

	return hotelID
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID uuid.UUID, enabled bool) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(),
		`INSERT INTO rooms (id, hotel_id, description, images, is_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		roomID, hotelID, "Standard room", []string{"https://img.example.com/room.jpg"}, enabled, now)
	require.NoError(t, err)

	return roomID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every public table.
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}

// ResetMongo empties the support request collection but keeps its indexes.
func ResetMongo(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := db.Collection(mongostore.ThreadCollection).DeleteMany(ctx, map[string]any{})
	return err
}
