package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// CanAttemptLogin rate-limits login attempts per account: at most 5 per
// minute and 30 per hour. With no redis configured the limit is off.
func CanAttemptLogin(rdb *redis.Client, key string) (bool, string) {
	if rdb == nil {
		return true, ""
	}
	ctx := context.Background()
	minuteKey := fmt.Sprintf("login_minute_%s", key)
	hourKey := fmt.Sprintf("login_hour_%s", key)

	if n, _ := rdb.Get(ctx, minuteKey).Int(); n >= 5 {
		return false, "Too many login attempts, try again in a minute"
	}
	if n, _ := rdb.Get(ctx, hourKey).Int(); n >= 30 {
		return false, "Too many login attempts, try again later"
	}
	return true, ""
}

// MarkLoginAttempt bumps both counters.
func MarkLoginAttempt(rdb *redis.Client, key string) {
	if rdb == nil {
		return
	}
	ctx := context.Background()
	minuteKey := fmt.Sprintf("login_minute_%s", key)
	hourKey := fmt.Sprintf("login_hour_%s", key)

	if rdb.Incr(ctx, minuteKey).Val() == 1 {
		rdb.Expire(ctx, minuteKey, time.Minute)
	}
	if rdb.Incr(ctx, hourKey).Val() == 1 {
		rdb.Expire(ctx, hourKey, time.Hour)
	}
}
