// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	usersadapters "user_directory/internal/feature/users/adapters"
	"user_directory/internal/feature/users/usecase"
	"user_directory/internal/platform/cache"
)

// NewUserRepository creates a UserRepository implementation.
// If Redis is available, the gorm repository is wrapped with a read-through cache.
// Otherwise, the gorm repository is used directly.
func NewUserRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.UserRepository {
	repo := usersadapters.NewUserMySQL(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, ttl, repo, "users")
	}
	return repo
}
