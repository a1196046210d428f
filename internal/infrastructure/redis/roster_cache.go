package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/application/identity"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/logger"
)

// CachedRoster decorates an identity.RosterLookup with a Redis read-through cache
// of email/DNI matches.
// Only positive matches are cached: the roster is append-only from our point
// of view, so a hit can't go stale but a miss can.
// Cached values are bare markers under a hashed key; entries themselves (DNI,
// phone, birth date) are always read from inner and never written to Redis.
// - Read path: Redis -> inner -> Redis set (best effort)
// - Redis errors fall back to inner and never fail the lookup.
type CachedRoster struct {
	inner   identity.RosterLookup
	rdb     *goredis.Client
	ttl     time.Duration
	keyPref string
}

func NewCachedRoster(inner identity.RosterLookup, client *Client, ttl time.Duration) *CachedRoster {
	var rdb *goredis.Client
	if client != nil {
		rdb = client.rdb
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CachedRoster{
		inner:   inner,
		rdb:     rdb,
		ttl:     ttl,
		keyPref: RosterKeyPrefix,
	}
}

func (c *CachedRoster) matchKey(email, dni string) string {
	sum := sha256.Sum256([]byte(email + "\x00" + dni))
	return c.keyPref + "match:" + hex.EncodeToString(sum[:])
}

func (c *CachedRoster) MatchesEmailAndDNI(ctx context.Context, email, dni string) (bool, error) {
	email = domain.NormalizeEmail(email)
	key := c.matchKey(email, dni)

	if c.rdb != nil {
		n, err := c.rdb.Exists(ctx, key).Result()
		if err == nil && n > 0 {
			return true, nil
		}
		if err != nil {
			logger.WithCtx(ctx).Debug().Err(err).Msg("roster cache read failed")
		}
	}

	ok, err := c.inner.MatchesEmailAndDNI(ctx, email, dni)
	if err != nil || !ok {
		return ok, err
	}

	if c.rdb != nil {
		_ = c.rdb.Set(ctx, key, "1", c.ttl).Err()
	}
	return true, nil
}

// FindByInstitutionalEmail is not cached; it runs once per signup.
func (c *CachedRoster) FindByInstitutionalEmail(ctx context.Context, email string) (domain.RosterEntry, error) {
	return c.inner.FindByInstitutionalEmail(ctx, domain.NormalizeEmail(email))
}
