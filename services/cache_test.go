package services

import (
	"context"
	"testing"

	"taprobane/constants"

	"github.com/redis/go-redis/v9"
)

// unreachableRedis fails every command immediately, which is enough to
// observe whether a code path touches the cache at all.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
}

func TestListCacheKey(t *testing.T) {
	if got := ListCacheKey("guides", "page=2&limit=10"); got != "cache:guides:page=2&limit=10" {
		t.Errorf("unexpected cache key %q", got)
	}
}

// Guide profile fields surface in the guide listings, so a guide profile
// write must reach the cache; tourist and admin writes must not.
func TestInvalidateProfileCachesRoleGating(t *testing.T) {
	ctx := context.Background()
	rdb := unreachableRedis()
	defer rdb.Close()

	if err := InvalidateProfileCaches(ctx, rdb, constants.RoleTourist); err != nil {
		t.Errorf("tourist profile write touched the cache: %v", err)
	}
	if err := InvalidateProfileCaches(ctx, rdb, constants.RoleAdmin); err != nil {
		t.Errorf("admin profile write touched the cache: %v", err)
	}
	if err := InvalidateProfileCaches(ctx, rdb, constants.RoleGuide); err == nil {
		t.Error("guide profile write never reached the cache")
	}
}
