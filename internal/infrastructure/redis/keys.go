package redis

import (
	"context"
	"time"
)

// RosterKeyPrefix namespaces every key written by CachedRoster.
const RosterKeyPrefix = "roster:"

type KeyInfo struct {
	Key string
	TTL time.Duration
}

// ScanKeys lists keys matching pattern with their remaining TTL.
func (c *Client) ScanKeys(ctx context.Context, pattern string, count int64) ([]KeyInfo, error) {
	var (
		cursor uint64
		out    []KeyInfo
	)
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, count).Result()
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			ttl, err := c.rdb.TTL(ctx, k).Result()
			if err != nil {
				return nil, err
			}
			out = append(out, KeyInfo{Key: k, TTL: ttl})
		}
		cursor = next
		if cursor == 0 {
			return out, nil
		}
	}
}

// FlushRosterCache deletes every cached roster entry and match result.
// Needed after roster rows are removed or corrected at the source.
func (c *Client) FlushRosterCache(ctx context.Context) (int64, error) {
	keys, err := c.ScanKeys(ctx, RosterKeyPrefix+"*", 200)
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.Key
	}
	return c.rdb.Del(ctx, names...).Result()
}
