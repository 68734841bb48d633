// Package redissvc caches the product listing in Redis. The cache is
// best-effort: any Redis failure is treated as a miss and never fails the
// request it serves.
package redissvc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	models "github.com/rogerio-castellano/grocery-inventory/internal/models"
)

const productListKey = "products:all"

type RedisService struct {
	rdb *redis.Client
	ctx context.Context
	ttl time.Duration
}

func NewRedisService(rdb *redis.Client, ctx context.Context, ttl time.Duration) *RedisService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
		ttl: ttl,
	}
}

// GetProductList returns the cached listing, reporting whether it was present.
func (s *RedisService) GetProductList() ([]models.Product, bool) {
	data, err := s.rdb.Get(s.ctx, productListKey).Bytes()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetProductList stores the listing under the cache TTL.
func (s *RedisService) SetProductList(products []models.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	s.rdb.Set(s.ctx, productListKey, data, s.ttl)
}

// InvalidateProductList drops the cached listing. Called after every
// successful create, update, or delete.
func (s *RedisService) InvalidateProductList() {
	s.rdb.Del(s.ctx, productListKey)
}
