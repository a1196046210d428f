package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/infrastructure/redis"
)

// Lists cached roster keys and optionally flushes them, e.g. after a roster correction.
func main() {
	var (
		addr    = flag.String("addr", "127.0.0.1:6379", "redis address host:port")
		pass    = flag.String("pass", "", "redis password")
		db      = flag.Int("db", 0, "redis db")
		doDel   = flag.Bool("del", false, "delete every cached roster key")
		limit   = flag.Int64("count", 200, "SCAN COUNT hint")
		timeout = flag.Duration("timeout", 5*time.Second, "overall timeout")
	)
	flag.Parse()

	c := redis.New(*addr, *pass, *db)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "redis ping failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Connected: addr=%s db=%d prefix=%q\n", *addr, *db, redis.RosterKeyPrefix)

	keys, err := c.ScanKeys(ctx, redis.RosterKeyPrefix+"*", *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "SCAN error: %v\n", err)
		os.Exit(1)
	}
	for i, k := range keys {
		fmt.Printf("%d) %s ttl=%s\n", i+1, k.Key, k.TTL)
	}
	if len(keys) == 0 {
		fmt.Println("No keys matched.")
		return
	}

	if *doDel {
		n, err := c.FlushRosterCache(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "DEL error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("DEL ok: %d\n", n)
	}
}
