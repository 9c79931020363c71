package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemberCountCache caches per-room member counts for the room directory.
// The cache is strictly best-effort: a miss or a redis failure falls back to
// the authoritative count query, so none of these methods return errors.
type MemberCountCache interface {
	Get(ctx context.Context, roomID string) (int64, bool)
	Set(ctx context.Context, roomID string, count int64)
	Invalidate(ctx context.Context, roomID string)
}

type memberCountCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewMemberCountCache(rdb *redis.Client) MemberCountCache {
	return &memberCountCache{
		rdb: rdb,
		ttl: 60 * time.Second,
	}
}

func memberCountKey(roomID string) string {
	return fmt.Sprintf("room:%s:member_count", roomID)
}

func (c *memberCountCache) Get(ctx context.Context, roomID string) (int64, bool) {
	n, err := c.rdb.Get(ctx, memberCountKey(roomID)).Int64()
	if err != nil {
		if err != redis.Nil {
			log.Printf("member count cache get failed for room %s: %v", roomID, err)
		}
		return 0, false
	}
	return n, true
}

func (c *memberCountCache) Set(ctx context.Context, roomID string, count int64) {
	if err := c.rdb.Set(ctx, memberCountKey(roomID), count, c.ttl).Err(); err != nil {
		log.Printf("member count cache set failed for room %s: %v", roomID, err)
	}
}

func (c *memberCountCache) Invalidate(ctx context.Context, roomID string) {
	if err := c.rdb.Del(ctx, memberCountKey(roomID)).Err(); err != nil {
		log.Printf("member count cache invalidate failed for room %s: %v", roomID, err)
	}
}

// NoopMemberCountCache is used when redis is not configured.
type NoopMemberCountCache struct{}

func NewNoopMemberCountCache() MemberCountCache {
	return NoopMemberCountCache{}
}

func (NoopMemberCountCache) Get(context.Context, string) (int64, bool) { return 0, false }
func (NoopMemberCountCache) Set(context.Context, string, int64)        {}
func (NoopMemberCountCache) Invalidate(context.Context, string)        {}
