package services

import (
	"context"
	"encoding/json"
	"time"

	"taprobane/constants"

	"github.com/redis/go-redis/v9"
)

// Listing caches are read-through with a short TTL and are dropped wholesale
// whenever the entity type is written.
const listCacheTTL = 10 * time.Minute

// GetFromRedis loads a cached value into target. A cache miss leaves target
// untouched and returns redis.Nil.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cached, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(cached), target)
}

// SetToRedis stores value as JSON under key.
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, data, ttl).Err()
}

// ListCacheKey keys a listing response by entity and the raw query string.
func ListCacheKey(entity, rawQuery string) string {
	return "cache:" + entity + ":" + rawQuery
}

// CacheList stores a listing envelope for its entity.
func CacheList(ctx context.Context, rdb *redis.Client, entity, rawQuery string, value interface{}) error {
	return SetToRedis(ctx, rdb, ListCacheKey(entity, rawQuery), value, listCacheTTL)
}

// InvalidateProfileCaches drops the cached guide listings when a profile
// write belongs to a guide. Guide profile fields (bio, languages, rates)
// surface in /guides listings; tourist and admin profiles are not listed.
func InvalidateProfileCaches(ctx context.Context, rdb *redis.Client, role string) error {
	if role != constants.RoleGuide {
		return nil
	}
	return InvalidateListCache(ctx, rdb, "guides")
}

// InvalidateListCache drops every cached listing for an entity type.
func InvalidateListCache(ctx context.Context, rdb *redis.Client, entity string) error {
	keys, err := rdb.Keys(ctx, "cache:"+entity+":*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}
