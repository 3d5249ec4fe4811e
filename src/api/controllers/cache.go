package controllers

import (
	"time"

	"cotas/src/config"
	"cotas/src/schemas"
	"cotas/src/utils"
	redis_utils "cotas/src/utils/redis"
)

// ListingCache is the read-through cache for listing results. The in-process
// implementation is the default; Redis is used when configured so multiple
// instances share one cache.
type ListingCache interface {
	Get(key string) ([]schemas.CotaWithAdmin, bool)
	Set(key string, value []schemas.CotaWithAdmin)
	Len() int
}

// NewListingCache selects the cache backend from the config.
func NewListingCache(cfg *config.Config) (ListingCache, error) {
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	if cfg.Databases.Redis.Host != "" {
		handler, err := redis_utils.NewRedisHandler(cfg)
		if err != nil {
			return nil, err
		}
		return &redisListingCache{handler: handler, ttl: ttl}, nil
	}
	return utils.NewKeyedCache[[]schemas.CotaWithAdmin](cfg.Cache.MaxEntries, ttl), nil
}

type redisListingCache struct {
	handler *redis_utils.RedisHandler
	ttl     time.Duration
}

func (c *redisListingCache) Get(key string) ([]schemas.CotaWithAdmin, bool) {
	var cotas []schemas.CotaWithAdmin
	found, err := c.handler.Get(key, &cotas)
	if err != nil || !found {
		return nil, false
	}
	return cotas, true
}

func (c *redisListingCache) Set(key string, value []schemas.CotaWithAdmin) {
	_ = c.handler.Set(key, value, c.ttl)
}

func (c *redisListingCache) Len() int {
	size, err := c.handler.Size()
	if err != nil {
		return 0
	}
	return int(size)
}
