package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-wish-tree/internal/logger"
	"github.com/sbilibin2017/gw-wish-tree/internal/models"
)

// Redis keys
const (
	wishListKey        = "wishes:list"    // rendered wish list
	wishListVersionKey = "wishes:version" // bumped by every invalidation
)

var (
	// ErrCacheMiss is returned when the wish list is not cached.
	ErrCacheMiss = errors.New("wish list not found in cache")
	// ErrCacheStale is returned by SetList when the list was invalidated
	// after the caller read the version.
	ErrCacheStale = errors.New("wish list changed since version was read")
)

// WishCacheRepository caches the public wish list in Redis
type WishCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached list
}

// NewWishCacheRepository creates a new repository instance with the given TTL
func NewWishCacheRepository(client *redis.Client, expiration time.Duration) *WishCacheRepository {
	return &WishCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetList returns the cached wish list or ErrCacheMiss.
func (r *WishCacheRepository) GetList(ctx context.Context) ([]models.Wish, error) {
	val, err := r.client.Get(ctx, wishListKey).Bytes()
	if err != nil {
		logger.FromContext(ctx).Debugw("cache get", "key", wishListKey, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var wishes []models.Wish
	if err := json.Unmarshal(val, &wishes); err != nil {
		logger.FromContext(ctx).Warnw("cache decode", "key", wishListKey, "error", err)
		return nil, err
	}

	logger.FromContext(ctx).Debugw("cache get", "key", wishListKey, "result", len(wishes))
	return wishes, nil
}

// Version returns the current list version. A missing counter is version 0.
func (r *WishCacheRepository) Version(ctx context.Context) (int64, error) {
	v, err := r.client.Get(ctx, wishListVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// SetList stores the wish list with expiration, but only while the list
// version still equals version. Otherwise it returns ErrCacheStale.
func (r *WishCacheRepository) SetList(ctx context.Context, version int64, wishes []models.Wish) error {
	data, err := json.Marshal(wishes)
	if err != nil {
		return err
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, wishListVersionKey).Int64()
		if errors.Is(err, redis.Nil) {
			current, err = 0, nil
		}
		if err != nil {
			return err
		}
		if current != version {
			return ErrCacheStale
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, wishListKey, data, r.exp)
			return nil
		})
		return err
	}, wishListVersionKey)
	if errors.Is(err, redis.TxFailedErr) {
		err = ErrCacheStale
	}

	logger.FromContext(ctx).Debugw("cache set", "key", wishListKey, "version", version, "result", len(wishes), "error", err)

	return err
}

// Invalidate bumps the list version and drops the cached list in one transaction.
func (r *WishCacheRepository) Invalidate(ctx context.Context) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, wishListVersionKey)
		pipe.Del(ctx, wishListKey)
		return nil
	})

	logger.FromContext(ctx).Debugw("cache invalidate", "key", wishListKey, "error", err)

	return err
}
