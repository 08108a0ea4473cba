package repositories

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-wish-tree/internal/logger"
	"github.com/sbilibin2017/gw-wish-tree/internal/migrations"
	"github.com/sbilibin2017/gw-wish-tree/internal/models"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) *sqlx.DB {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	require.NoError(t, migrations.Up(dsn))

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)

	return db
}

func insertWish(t *testing.T, db *sqlx.DB, name string, createdAt time.Time) int64 {
	t.Helper()
	var id int64
	err := db.Get(&id, `
		INSERT INTO wishes (child_name, age, wish, category, color, position_x, position_y, created_at)
		VALUES ($1, 7, 'bike', 'toys', 'red', 0, 0, $2)
		RETURNING id`, name, createdAt)
	require.NoError(t, err)
	return id
}

func TestWishRepositories_Postgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	reader := NewWishReadRepository(db, nil)
	writer := NewWishWriteRepository(db, nil)

	t.Run("round trip keeps coordinates", func(t *testing.T) {
		id, err := writer.Save(ctx, models.NewWish{
			ChildName: "Alice", Age: 7, Wish: "bike", Category: "toys", Color: "red",
			PositionX: 1.5, PositionY: -2.25,
		})
		require.NoError(t, err)

		wishes, err := reader.List(ctx)
		require.NoError(t, err)

		var found *models.WishDB
		for i := range wishes {
			if wishes[i].ID == id {
				found = &wishes[i]
			}
		}
		require.NotNil(t, found)
		assert.Equal(t, 1.5, found.PositionX)
		assert.Equal(t, -2.25, found.PositionY)
		assert.Equal(t, models.StatusAvailable, found.Status)
		assert.Nil(t, found.FulfilledBy)
	})

	t.Run("list is ordered by creation time, newest first", func(t *testing.T) {
		_, err := db.Exec(`DELETE FROM wishes`)
		require.NoError(t, err)

		base := time.Now().Add(-time.Hour)
		// Insert so that id order and creation order disagree.
		newest := insertWish(t, db, "newest", base.Add(3*time.Minute))
		oldest := insertWish(t, db, "oldest", base.Add(1*time.Minute))
		middle := insertWish(t, db, "middle", base.Add(2*time.Minute))

		wishes, err := reader.List(ctx)
		require.NoError(t, err)
		require.Len(t, wishes, 3)
		assert.Equal(t, []int64{newest, middle, oldest}, []int64{wishes[0].ID, wishes[1].ID, wishes[2].ID})
	})

	t.Run("fulfill then reset", func(t *testing.T) {
		_, err := db.Exec(`DELETE FROM wishes`)
		require.NoError(t, err)

		fulfilled := insertWish(t, db, "a", time.Now())
		untouched := insertWish(t, db, "b", time.Now())
		contact := "bob@example.com"

		ok, err := writer.Fulfill(ctx, fulfilled, "Bob", &contact)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = writer.Fulfill(ctx, fulfilled, "Eve", nil)
		require.NoError(t, err)
		assert.False(t, ok, "second fulfill must not match")

		ok, err = writer.Fulfill(ctx, 999999, "Eve", nil)
		require.NoError(t, err)
		assert.False(t, ok, "missing id must not match")

		var row models.WishDB
		require.NoError(t, db.Get(&row, `SELECT * FROM wishes WHERE id = $1`, fulfilled))
		assert.Equal(t, models.StatusFulfilled, row.Status)
		assert.Equal(t, "Bob", *row.FulfilledBy)
		assert.Equal(t, contact, *row.FulfilledContact)

		n, err := writer.ResetFulfilled(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		wishes, err := reader.List(ctx)
		require.NoError(t, err)
		for _, w := range wishes {
			assert.Equal(t, models.StatusAvailable, w.Status)
			assert.Nil(t, w.FulfilledBy)
			assert.Nil(t, w.FulfilledContact)
		}

		n, err = writer.ResetFulfilled(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		var status string
		require.NoError(t, db.Get(&status, `SELECT status FROM wishes WHERE id = $1`, untouched))
		assert.Equal(t, models.StatusAvailable, status)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		id := insertWish(t, db, "gone", time.Now())

		n, err := writer.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = writer.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})
}

func TestWishWriteRepository_FulfillConcurrency(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	id := insertWish(t, db, "contested", time.Now())
	writer := NewWishWriteRepository(db, nil)

	const numGoroutines = 50
	var wins atomic.Int32
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			ok, err := writer.Fulfill(ctx, id, fmt.Sprintf("benefactor-%d", i), nil)
			assert.NoError(t, err)
			if ok {
				wins.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load(), "exactly one fulfill must win")
}

func TestWishCacheRepository_Redis(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewWishCacheRepository(rdb, 2*time.Second)
	bob := "Bob"
	wishes := []models.Wish{
		{ID: 2, ChildName: "Alice", Age: 7, Wish: "bike", Category: "toys", Color: "red",
			Position: models.Position{X: 1.5, Y: -2.25}, Status: models.StatusFulfilled, FulfilledBy: &bob},
		{ID: 1, ChildName: "Max", Age: 5, Wish: "book", Category: "books", Color: "blue",
			Position: models.Position{X: 10, Y: 20}, Status: models.StatusAvailable},
	}

	t.Run("miss before set", func(t *testing.T) {
		_, err := repo.GetList(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("set and get", func(t *testing.T) {
		version, err := repo.Version(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.SetList(ctx, version, wishes))

		got, err := repo.GetList(ctx)
		require.NoError(t, err)
		assert.Equal(t, wishes, got)
	})

	t.Run("invalidate", func(t *testing.T) {
		version, err := repo.Version(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.SetList(ctx, version, wishes))
		require.NoError(t, repo.Invalidate(ctx))

		_, err = repo.GetList(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)

		next, err := repo.Version(ctx)
		require.NoError(t, err)
		assert.Equal(t, version+1, next)
	})

	t.Run("list read before invalidation is not stored", func(t *testing.T) {
		version, err := repo.Version(ctx)
		require.NoError(t, err)

		// A mutation lands between the version read and the write back.
		require.NoError(t, repo.Invalidate(ctx))

		assert.ErrorIs(t, repo.SetList(ctx, version, wishes), ErrCacheStale)
		_, err = repo.GetList(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("cached value expires", func(t *testing.T) {
		version, err := repo.Version(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.SetList(ctx, version, wishes))

		time.Sleep(3 * time.Second)

		_, err = repo.GetList(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}
