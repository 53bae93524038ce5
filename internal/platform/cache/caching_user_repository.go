// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"user_directory/internal/feature/users/domain/entity"
	"user_directory/internal/feature/users/usecase"
)

// CachingUserRepository decorates a UserRepository with Redis caching of the
// left-join reads. Cache keys carry a generation number stored under
// "<namespace>:gen". Update bumps the generation after a successful write, so
// entries filled from a read that raced the write are never looked up again
// and expire by TTL. Rows created or deleted outside this system become
// visible once the TTL elapses.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// DefaultTTL is used when no positive TTL is given.
const DefaultTTL = time.Minute

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to DefaultTTL. If namespace is empty, it uses "users".
// A nil rdb disables caching entirely.
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List returns all combined rows, checking the cache first.
func (c *CachingUserRepository) List(ctx context.Context) ([]entity.User, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}
	gen, ok := c.generation(ctx)
	if !ok {
		return c.inner.List(ctx)
	}

	key := c.listKey(gen)
	var out []entity.User
	if c.get(ctx, key, &out) {
		return out, nil
	}

	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, out)
	return out, nil
}

// FindByID returns one combined row, checking the cache first.
// Not-found results are never cached.
func (c *CachingUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}
	gen, ok := c.generation(ctx)
	if !ok {
		return c.inner.FindByID(ctx, id)
	}

	key := c.idKey(gen, id)
	var cached entity.User
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	u, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, u)
	return u, nil
}

// FindEmployedByID always reads through; it backs the post-update re-read.
func (c *CachingUserRepository) FindEmployedByID(ctx context.Context, id uint) (*entity.User, error) {
	return c.inner.FindEmployedByID(ctx, id)
}

// Update writes through and then bumps the cache generation.
func (c *CachingUserRepository) Update(ctx context.Context, in entity.UpdateUser) (int64, error) {
	affected, err := c.inner.Update(ctx, in)
	if err != nil {
		return 0, err
	}
	if c.rdb == nil || affected == 0 {
		return affected, nil
	}
	if err := c.rdb.Incr(ctx, c.genKey()).Err(); err != nil {
		// 失効に失敗してもTTL経過で解消されるため、更新自体は成功扱いにする
		slog.WarnContext(ctx, "cache invalidation failed", "user_id", in.ID, "error", err)
	}
	return affected, nil
}

// generation reads the current cache generation. A missing key is generation 0.
// ok is false when Redis cannot be read, in which case the cache is bypassed.
func (c *CachingUserRepository) generation(ctx context.Context) (int64, bool) {
	gen, err := c.rdb.Get(ctx, c.genKey()).Int64()
	switch {
	case err == nil:
		return gen, true
	case errors.Is(err, redis.Nil):
		return 0, true
	default:
		slog.WarnContext(ctx, "cache generation unavailable", "error", err)
		return 0, false
	}
}

// get loads key into dst. Corrupted entries are deleted and reported as a miss.
func (c *CachingUserRepository) get(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// set stores v under key (best effort).
func (c *CachingUserRepository) set(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func (c *CachingUserRepository) genKey() string {
	return c.namespace + ":gen"
}

func (c *CachingUserRepository) listKey(gen int64) string {
	return fmt.Sprintf("%s:%d:list", c.namespace, gen)
}

func (c *CachingUserRepository) idKey(gen int64, id uint) string {
	return fmt.Sprintf("%s:%d:id:%d", c.namespace, gen, id)
}
