package sales

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keeps the generated series stable for a day per period, so repeated
// dashboard loads chart the same numbers. A miss (or an unreachable Redis)
// just means the caller regenerates.
type Cache struct {
	redisdb *redis.Client
}

type CacheConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewCache(cfg CacheConfig) *Cache {
	redisdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	return &Cache{redisdb: redisdb}
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.redisdb.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.redisdb.Close()
}

func key(period string) string {
	return "sales:" + period + ":" + time.Now().Format("2006-01-02")
}

func (c *Cache) Get(ctx context.Context, period string) ([]Point, bool) {
	raw, err := c.redisdb.Get(ctx, key(period)).Bytes()

	if err != nil {
		return nil, false
	}

	var points []Point

	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, false
	}

	return points, true
}

func (c *Cache) Set(ctx context.Context, period string, points []Point) {
	raw, err := json.Marshal(points)

	if err != nil {
		return
	}

	// expire at the day boundary; 24h is close enough since the key embeds
	// the date anyway
	_ = c.redisdb.Set(ctx, key(period), raw, 24*time.Hour).Err()
}
